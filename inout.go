package cipherkit

// An InOut pairs an input buffer with an equal-length output buffer. The two
// sides may be backed by the same memory (in-place operation) or by disjoint
// memory; partial overlap is not supported.
//
// An InOut is a view: constructing or re-slicing one touches no memory.
// Writes happen only when a transform is driven over it.
type InOut struct {
	in  []byte
	out []byte
}

// NewInOut pairs in with out for buffer-to-buffer operation. It returns
// ErrLengthMismatch if the slices have different lengths.
func NewInOut(in, out []byte) (InOut, error) {
	if len(in) != len(out) {
		return InOut{}, ErrLengthMismatch
	}
	return InOut{in: in, out: out}, nil
}

// InPlace pairs buf with itself for in-place operation.
func InPlace(buf []byte) InOut {
	return InOut{in: buf, out: buf}
}

// Len returns the length in bytes of each side of the pair.
func (v InOut) Len() int { return len(v.in) }

// Slice re-slices both sides to [lo:hi].
func (v InOut) Slice(lo, hi int) InOut {
	return InOut{in: v.in[lo:hi], out: v.out[lo:hi]}
}

// In returns the input side of the pair.
func (v InOut) In() []byte { return v.in }

// Out returns the output side of the pair.
func (v InOut) Out() []byte { return v.out }
