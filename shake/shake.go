// Package shake implements a keyed SHAKE128 keystream as a cipherkit stream
// core.
//
// The keystream is the XOF output of SHAKE128 over the key and nonce. As a
// sponge construction it has no block counter and no fixed wraparound, so
// Remaining reports an unbounded budget and the core is not seekable:
// restarting a stream means constructing a new Cipher.
package shake

import (
	"errors"

	"golang.org/x/crypto/sha3"

	"github.com/cipherkit/cipherkit"
)

const (
	// KeySize is the key length in bytes.
	KeySize = 32
	// BlockSize is the keystream block length in bytes, the SHAKE128 rate.
	BlockSize = 168
)

// A Cipher squeezes keystream from a keyed SHAKE128 sponge. Instances are
// not concurrent-safe.
type Cipher struct {
	xof sha3.ShakeHash
}

// New returns a Cipher keyed with the given 32-byte key and nonce. The
// nonce may be any length; the fixed key length keeps the (key, nonce)
// encoding unambiguous.
func New(key, nonce []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, errors.New("shake: invalid key length")
	}
	xof := sha3.NewShake128()
	_, _ = xof.Write(key)
	_, _ = xof.Write(nonce)
	return &Cipher{xof: xof}, nil
}

// BlockSize returns the keystream block length in bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Remaining always reports an unbounded keystream budget.
func (c *Cipher) Remaining() (uint64, bool) { return 0, false }

// Keystream squeezes the next keystream block into dst.
func (c *Cipher) Keystream(dst []byte) {
	if len(dst) != BlockSize {
		panic("shake: dst is not a whole keystream block")
	}
	_, _ = c.xof.Read(dst)
}

var _ cipherkit.StreamCore = (*Cipher)(nil)
