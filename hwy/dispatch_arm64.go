//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check for LSE_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available; it is part of the
	// ARMv8-A base architecture. We still consult the cpu package for
	// consistency with the amd64 path.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
	} else {
		// Should never happen on ARMv8+
		setScalarMode()
	}
}
