//go:build arm64

package engine

import "golang.org/x/sys/cpu"

func init() {
	// FMADD is part of the ARMv8-A base architecture. We still check the cpu
	// package for consistency with the amd64 path.
	setLevel(cpu.ARM64.HasASIMD)
}
