//go:build (!amd64 && !arm64) || purego

package lanes

var hint = 1 //nolint:gochecknoglobals // should only check once
