//go:build arm64 && !purego

package lanes

import "golang.org/x/sys/cpu"

var hint = pick() //nolint:gochecknoglobals // should only check once

func pick() int {
	if cpu.ARM64.HasASIMD {
		return 4
	}
	return 1
}
