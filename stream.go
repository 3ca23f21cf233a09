package cipherkit

import "github.com/cipherkit/cipherkit/internal/mem"

// A StreamCore generates keystream one block at a time: the primitive-facing
// contract for synchronous stream ciphers.
//
// Keystream is a pure function of the core's key material and its block
// counter; each Keystream call advances the counter by exactly one block.
// Stream cores are stateful and require exclusive use: one core per logical
// stream, never shared between goroutines.
type StreamCore interface {
	BlockSize() int

	// Remaining reports how many keystream blocks are left before the
	// counter wraps. ok is false when no bound is known, e.g. for
	// sponge-based constructions or counters wider than 64 bits.
	Remaining() (blocks uint64, ok bool)

	// Keystream writes the next keystream block into dst, which must be
	// exactly BlockSize bytes long, and advances the counter by one.
	Keystream(dst []byte)
}

// A ParStreamCore is a StreamCore that can also generate a full group of
// Lanes keystream blocks per call, under the same equivalence contract as
// ParBackend.
type ParStreamCore interface {
	StreamCore
	Lanes() int

	// KeystreamLanes writes the next Lanes keystream blocks into dst,
	// which must be exactly Lanes*BlockSize bytes long, and advances the
	// counter by Lanes.
	KeystreamLanes(dst []byte)
}

// A SeekStreamCore is a StreamCore whose block counter can be read and
// repositioned. Repositioning is unconditional with respect to history: the
// substrate does not track which positions have been used, and avoiding
// keystream reuse across calls under the same key is the caller's
// responsibility. Implementations panic on positions their counter cannot
// represent.
type SeekStreamCore interface {
	StreamCore
	BlockPos() uint64
	SetBlockPos(pos uint64)
}

// WriteKeystreamBlocks fills dst, which must hold a whole number of blocks,
// with raw keystream.
//
// It performs no budget check: generating more blocks than the core has
// remaining silently wraps the counter. Callers must consult Remaining
// first, or use ApplyKeystream which checks for them.
func WriteKeystreamBlocks(s StreamCore, dst []byte) {
	b := streamBackend{s: s, lanes: 1}
	if ps, ok := s.(ParStreamCore); ok {
		b.lanes = ps.Lanes()
	}
	ProcessBlocks(&b, InPlace(dst))
}

// ApplyKeystreamBlocks XORs keystream into the blocks of v, writing the
// combined result to the output side. The output may alias the input: each
// byte is read once, combined, and written, never re-read. If post is
// non-nil it is invoked once per produced chunk (each full lane group, then
// each tail block) with the already-combined output, letting callers layer
// bookkeeping such as a running MAC over the same pass.
//
// It performs no budget check; see WriteKeystreamBlocks. It panics if v does
// not hold a whole number of blocks.
func ApplyKeystreamBlocks(s StreamCore, v InOut, post func(out []byte)) {
	b := streamBackend{s: s, lanes: 1, apply: true, post: post}
	if ps, ok := s.(ParStreamCore); ok {
		b.lanes = ps.Lanes()
	}
	ProcessBlocks(&b, v)
}

// ApplyKeystream applies keystream to data of any length, reading from src
// and writing to dst. dst may alias src; passing the same slice operates in
// place. It returns ErrLengthMismatch if the lengths differ.
//
// Unlike the block-granular operations it checks the core's budget first:
// if the core is bounded and ceil(len(src)/BlockSize) exceeds the remaining
// block count it returns ErrKeystreamExhausted before reading or writing a
// single byte.
//
// A call whose length is not a whole number of blocks consumes the final
// keystream block only partially; the discarded tail bytes are not
// retained, so the core must be explicitly repositioned before reuse.
func ApplyKeystream(s StreamCore, dst, src []byte) error {
	v, err := NewInOut(src, dst)
	if err != nil {
		return err
	}
	bs := s.BlockSize()
	if rem, ok := s.Remaining(); ok {
		need := uint64(len(src) / bs)
		if len(src)%bs != 0 {
			need++
		}
		if need > rem {
			return ErrKeystreamExhausted
		}
	}

	full := v.Len() / bs * bs
	ApplyKeystreamBlocks(s, v.Slice(0, full), nil)
	tail := v.Slice(full, v.Len())
	if tail.Len() == 0 {
		return nil
	}

	block := make([]byte, bs)
	copy(block, tail.In())
	ApplyKeystreamBlocks(s, InPlace(block), nil)
	copy(tail.Out(), block[:tail.Len()])
	return nil
}

// MustApplyKeystream is like ApplyKeystream but treats failure as a
// precondition violation and panics. Use it only when buffer lengths and
// remaining capacity have already been checked.
func MustApplyKeystream(s StreamCore, dst, src []byte) {
	if err := ApplyKeystream(s, dst, src); err != nil {
		panic(err)
	}
}

// streamBackend adapts keystream generation to the backend protocol, either
// writing raw keystream or combining it with the input via XOR.
type streamBackend struct {
	s       StreamCore
	lanes   int
	apply   bool
	post    func(out []byte)
	scratch []byte
}

func (b *streamBackend) BlockSize() int { return b.s.BlockSize() }
func (b *streamBackend) Lanes() int     { return b.lanes }

func (b *streamBackend) Transform(dst, src []byte) {
	if !b.apply {
		b.s.Keystream(dst)
		return
	}
	ks := b.grow(len(dst))
	b.s.Keystream(ks)
	mem.XOR(dst, src, ks)
	if b.post != nil {
		b.post(dst)
	}
}

func (b *streamBackend) TransformLanes(dst, src []byte) {
	ps := b.s.(ParStreamCore)
	if !b.apply {
		ps.KeystreamLanes(dst)
		return
	}
	ks := b.grow(len(dst))
	ps.KeystreamLanes(ks)
	mem.XOR(dst, src, ks)
	if b.post != nil {
		b.post(dst)
	}
}

func (b *streamBackend) grow(n int) []byte {
	if cap(b.scratch) < n {
		b.scratch = make([]byte, n)
	}
	return b.scratch[:n]
}

var _ ParBackend = (*streamBackend)(nil)
