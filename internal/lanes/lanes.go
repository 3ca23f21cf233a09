// Package lanes suggests how many cipher blocks batching-capable primitives
// should group per wide call on the current CPU.
//
// Grouping matters because the substrate combines keystream with data one
// chunk at a time: wider chunks let subtle.XORBytes use wider vector loads
// and stores. The hint is derived from CPU features once at startup and can
// be pinned to 1 with the purego build tag.
package lanes

// Hint returns the suggested group width in blocks. It is always at least 1.
func Hint() int { return hint }
