//go:build amd64 && !purego

package lanes

import "golang.org/x/sys/cpu"

var hint = pick() //nolint:gochecknoglobals // should only check once

func pick() int {
	if cpu.X86.HasAVX2 {
		return 8
	}
	return 4
}
