// Package chacha implements the ChaCha20 stream cipher as a seekable,
// batch-capable cipherkit stream core.
//
// This is the IETF variant from RFC 8439: a 256-bit key, a 96-bit nonce,
// and a 32-bit block counter, giving 2^32 64-byte keystream blocks per
// (key, nonce) pair.
package chacha

import (
	"encoding/binary"
	"errors"
	"math/bits"

	"github.com/cipherkit/cipherkit"
	"github.com/cipherkit/cipherkit/internal/lanes"
)

const (
	// KeySize is the key length in bytes.
	KeySize = 32
	// NonceSize is the nonce length in bytes.
	NonceSize = 12
	// BlockSize is the keystream block length in bytes.
	BlockSize = 64

	// maxBlocks is the counter space per (key, nonce) pair.
	maxBlocks = 1 << 32
)

// The first four state words, "expand 32-byte k" in little-endian order.
var constants = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574} //nolint:gochecknoglobals // fixed by RFC 8439

// A Cipher holds the ChaCha20 state for one (key, nonce) pair. Instances
// are not concurrent-safe.
type Cipher struct {
	key     [8]uint32
	nonce   [3]uint32
	counter uint32
	lanes   int
}

// New returns a Cipher for the given 32-byte key and 12-byte nonce with the
// block counter at zero.
func New(key, nonce []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, errors.New("chacha: invalid key length")
	}
	if len(nonce) != NonceSize {
		return nil, errors.New("chacha: invalid nonce length")
	}
	c := &Cipher{lanes: lanes.Hint()}
	for i := range c.key {
		c.key[i] = binary.LittleEndian.Uint32(key[i*4:])
	}
	for i := range c.nonce {
		c.nonce[i] = binary.LittleEndian.Uint32(nonce[i*4:])
	}
	return c, nil
}

// BlockSize returns the keystream block length in bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Remaining reports the number of keystream blocks left before the 32-bit
// block counter wraps.
func (c *Cipher) Remaining() (uint64, bool) {
	return maxBlocks - uint64(c.counter), true
}

// Keystream writes the keystream block at the current counter into dst and
// advances the counter by one. The counter wraps silently at 2^32; callers
// guard with Remaining.
func (c *Cipher) Keystream(dst []byte) {
	if len(dst) != BlockSize {
		panic("chacha: dst is not a whole keystream block")
	}
	c.block(dst)
	c.counter++
}

// Lanes returns the group width used for batched keystream generation.
func (c *Cipher) Lanes() int { return c.lanes }

// KeystreamLanes writes the next Lanes keystream blocks into dst and
// advances the counter by Lanes.
func (c *Cipher) KeystreamLanes(dst []byte) {
	if len(dst) != c.lanes*BlockSize {
		panic("chacha: dst is not a whole lane group")
	}
	for off := 0; off < len(dst); off += BlockSize {
		c.block(dst[off : off+BlockSize])
		c.counter++
	}
}

// BlockPos returns the current block counter.
func (c *Cipher) BlockPos() uint64 { return uint64(c.counter) }

// SetBlockPos repositions the block counter. It panics if pos does not fit
// in the 32-bit counter. Repositioning is unconditional: avoiding keystream
// reuse under the same (key, nonce) pair is the caller's responsibility.
func (c *Cipher) SetBlockPos(pos uint64) {
	if pos >= maxBlocks {
		panic("chacha: block position outside counter range")
	}
	c.counter = uint32(pos)
}

// block computes the keystream block at the current counter into dst
// without advancing the counter.
func (c *Cipher) block(dst []byte) {
	x0, x1, x2, x3 := constants[0], constants[1], constants[2], constants[3]
	x4, x5, x6, x7 := c.key[0], c.key[1], c.key[2], c.key[3]
	x8, x9, x10, x11 := c.key[4], c.key[5], c.key[6], c.key[7]
	x12 := c.counter
	x13, x14, x15 := c.nonce[0], c.nonce[1], c.nonce[2]

	for range 10 {
		// Column round.
		x0, x4, x8, x12 = quarterRound(x0, x4, x8, x12)
		x1, x5, x9, x13 = quarterRound(x1, x5, x9, x13)
		x2, x6, x10, x14 = quarterRound(x2, x6, x10, x14)
		x3, x7, x11, x15 = quarterRound(x3, x7, x11, x15)

		// Diagonal round.
		x0, x5, x10, x15 = quarterRound(x0, x5, x10, x15)
		x1, x6, x11, x12 = quarterRound(x1, x6, x11, x12)
		x2, x7, x8, x13 = quarterRound(x2, x7, x8, x13)
		x3, x4, x9, x14 = quarterRound(x3, x4, x9, x14)
	}

	binary.LittleEndian.PutUint32(dst[0:], x0+constants[0])
	binary.LittleEndian.PutUint32(dst[4:], x1+constants[1])
	binary.LittleEndian.PutUint32(dst[8:], x2+constants[2])
	binary.LittleEndian.PutUint32(dst[12:], x3+constants[3])
	binary.LittleEndian.PutUint32(dst[16:], x4+c.key[0])
	binary.LittleEndian.PutUint32(dst[20:], x5+c.key[1])
	binary.LittleEndian.PutUint32(dst[24:], x6+c.key[2])
	binary.LittleEndian.PutUint32(dst[28:], x7+c.key[3])
	binary.LittleEndian.PutUint32(dst[32:], x8+c.key[4])
	binary.LittleEndian.PutUint32(dst[36:], x9+c.key[5])
	binary.LittleEndian.PutUint32(dst[40:], x10+c.key[6])
	binary.LittleEndian.PutUint32(dst[44:], x11+c.key[7])
	binary.LittleEndian.PutUint32(dst[48:], x12+c.counter)
	binary.LittleEndian.PutUint32(dst[52:], x13+c.nonce[0])
	binary.LittleEndian.PutUint32(dst[56:], x14+c.nonce[1])
	binary.LittleEndian.PutUint32(dst[60:], x15+c.nonce[2])
}

func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 16)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 12)
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 8)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 7)
	return a, b, c, d
}

var (
	_ cipherkit.ParStreamCore  = (*Cipher)(nil)
	_ cipherkit.SeekStreamCore = (*Cipher)(nil)
)
