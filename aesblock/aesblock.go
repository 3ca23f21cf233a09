// Package aesblock exposes AES, or any crypto/cipher.Block, as a
// batch-capable cipherkit block primitive.
package aesblock

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/cipherkit/cipherkit"
	"github.com/cipherkit/cipherkit/internal/lanes"
)

// A Cipher wraps a crypto/cipher.Block and additionally processes lane
// groups of blocks per wide call. The wide path iterates the underlying
// single-block transform, so it is observably identical to the scalar path;
// the grouping drives the substrate's batched dispatch. Cipher is safe for
// concurrent use if the wrapped block is.
type Cipher struct {
	b     cipher.Block
	lanes int
}

// New returns a Cipher keyed for AES-128, AES-192, or AES-256, selected by
// key length.
func New(key []byte) (*Cipher, error) {
	b, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return Wrap(b), nil
}

// Wrap adapts an existing crypto/cipher.Block.
func Wrap(b cipher.Block) *Cipher {
	return &Cipher{b: b, lanes: lanes.Hint()}
}

// BlockSize returns the block length in bytes of the wrapped cipher.
func (c *Cipher) BlockSize() int { return c.b.BlockSize() }

// Encrypt encrypts a single block from src into dst, which may alias.
func (c *Cipher) Encrypt(dst, src []byte) { c.b.Encrypt(dst, src) }

// Decrypt decrypts a single block from src into dst, which may alias.
func (c *Cipher) Decrypt(dst, src []byte) { c.b.Decrypt(dst, src) }

// Lanes returns the group width used for batched processing.
func (c *Cipher) Lanes() int { return c.lanes }

// EncryptLanes encrypts a full group of Lanes blocks from src into dst.
func (c *Cipher) EncryptLanes(dst, src []byte) {
	bs := c.b.BlockSize()
	for off := 0; off < len(src); off += bs {
		c.b.Encrypt(dst[off:off+bs], src[off:off+bs])
	}
}

// DecryptLanes decrypts a full group of Lanes blocks from src into dst.
func (c *Cipher) DecryptLanes(dst, src []byte) {
	bs := c.b.BlockSize()
	for off := 0; off < len(src); off += bs {
		c.b.Decrypt(dst[off:off+bs], src[off:off+bs])
	}
}

var _ cipherkit.ParBlock = (*Cipher)(nil)
