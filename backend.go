package cipherkit

// A Backend transforms fixed-width blocks one at a time in a single
// direction. Transform operates on exactly one block: dst and src are
// BlockSize bytes long, and dst may alias src exactly or not at all.
type Backend interface {
	BlockSize() int
	Transform(dst, src []byte)
}

// A ParBackend is a Backend that can also transform a full group of Lanes
// blocks per call. TransformLanes must be observably identical to calling
// Transform on each block of the group in order: the wide path is a
// throughput grouping only, never visible in output.
type ParBackend interface {
	Backend

	// Lanes returns the backend's group width in blocks. A width of one
	// means the backend has no meaningful wide path and every block takes
	// the scalar path.
	Lanes() int

	// TransformLanes transforms exactly Lanes blocks. dst and src are
	// Lanes*BlockSize bytes long; dst may alias src exactly or not at all.
	TransformLanes(dst, src []byte)
}

// ProcessBlocks drives b over every block of v in order: full lane groups
// first, then the remaining tail blocks (fewer than one group) one at a
// time. Backends that do not implement ParBackend, or that report a lane
// width of one, take the scalar path for every block.
//
// v must hold a whole number of blocks; ProcessBlocks panics otherwise.
func ProcessBlocks(b Backend, v InOut) {
	bs := b.BlockSize()
	if v.Len()%bs != 0 {
		panic("cipherkit: input not a whole number of blocks")
	}
	n := v.Len() / bs

	if pb, ok := b.(ParBackend); ok {
		if l := pb.Lanes(); l > 1 {
			group := l * bs
			full := n / l * group
			for off := 0; off < full; off += group {
				g := v.Slice(off, off+group)
				pb.TransformLanes(g.Out(), g.In())
			}
			v = v.Slice(full, v.Len())
			n -= full / bs
		}
	}

	for i := range n {
		blk := v.Slice(i*bs, (i+1)*bs)
		b.Transform(blk.Out(), blk.In())
	}
}
