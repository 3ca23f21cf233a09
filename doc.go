// Package cipherkit provides the buffer, chunking, and dispatch machinery for
// applying keyed fixed-width transforms over byte buffers: single blocks,
// batched lane groups of blocks, and unbounded byte streams produced by
// XOR-ing against a generated keystream.
//
// The package deliberately contains no cipher mathematics. Concrete
// primitives plug in through two small contracts: [Block] (and optionally
// [ParBlock]) for fixed-width permutations, and [StreamCore] (optionally
// [ParStreamCore] and [SeekStreamCore]) for keystream generators. The
// substrate supplies what is easy to get wrong around them: the in-place
// aliasing discipline, the split of a block run into full lane groups plus a
// tail, the partial trailing bytes of a keystream application, and the
// bookkeeping that keeps a bounded block counter from silently wrapping.
//
// Reference primitives live in the chacha, shake, and aesblock subpackages.
package cipherkit
