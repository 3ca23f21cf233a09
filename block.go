package cipherkit

// A Block is a keyed permutation of fixed-width blocks: the primitive-facing
// contract for block ciphers. Encrypt and Decrypt operate on exactly one
// block; dst may alias src exactly or not at all. The interface is
// shape-compatible with crypto/cipher.Block, so standard library primitives
// satisfy it directly.
//
// Implementations that do not mutate internal state during Encrypt and
// Decrypt may be shared across goroutines. Stateful implementations, such as
// engines backed by a hardware peripheral, require exclusive use for the
// duration of each call and must not be shared.
type Block interface {
	BlockSize() int
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
}

// A ParBlock is a Block that can also process a full group of Lanes blocks
// per call, under the same equivalence contract as ParBackend.
type ParBlock interface {
	Block
	Lanes() int
	EncryptLanes(dst, src []byte)
	DecryptLanes(dst, src []byte)
}

// EncryptBlock encrypts a single block from src into dst. dst may alias src.
// It panics if either slice is not exactly one block long.
func EncryptBlock(c Block, dst, src []byte) {
	checkBlock(c, dst, src)
	c.Encrypt(dst, src)
}

// DecryptBlock decrypts a single block from src into dst. dst may alias src.
// It panics if either slice is not exactly one block long.
func DecryptBlock(c Block, dst, src []byte) {
	checkBlock(c, dst, src)
	c.Decrypt(dst, src)
}

func checkBlock(c Block, dst, src []byte) {
	if len(dst) != c.BlockSize() || len(src) != c.BlockSize() {
		panic("cipherkit: block length does not match cipher block size")
	}
}

// EncryptBlocks encrypts the blocks of src into dst, batching through the
// cipher's wide path when it has one. Pass the same slice as dst and src to
// encrypt in place. It returns ErrLengthMismatch if the lengths differ,
// leaving dst untouched, and panics if src is not a whole number of blocks.
func EncryptBlocks(c Block, dst, src []byte) error {
	v, err := NewInOut(src, dst)
	if err != nil {
		return err
	}
	b := blockBackend{bs: c.BlockSize(), one: c.Encrypt, lanes: 1}
	if pc, ok := c.(ParBlock); ok {
		b.lanes, b.group = pc.Lanes(), pc.EncryptLanes
	}
	ProcessBlocks(&b, v)
	return nil
}

// DecryptBlocks decrypts the blocks of src into dst. See EncryptBlocks.
func DecryptBlocks(c Block, dst, src []byte) error {
	v, err := NewInOut(src, dst)
	if err != nil {
		return err
	}
	b := blockBackend{bs: c.BlockSize(), one: c.Decrypt, lanes: 1}
	if pc, ok := c.(ParBlock); ok {
		b.lanes, b.group = pc.Lanes(), pc.DecryptLanes
	}
	ProcessBlocks(&b, v)
	return nil
}

// blockBackend adapts one direction of a Block to the backend protocol.
type blockBackend struct {
	bs    int
	one   func(dst, src []byte)
	lanes int
	group func(dst, src []byte)
}

func (b *blockBackend) BlockSize() int                 { return b.bs }
func (b *blockBackend) Transform(dst, src []byte)      { b.one(dst, src) }
func (b *blockBackend) Lanes() int                     { return b.lanes }
func (b *blockBackend) TransformLanes(dst, src []byte) { b.group(dst, src) }

var _ ParBackend = (*blockBackend)(nil)
