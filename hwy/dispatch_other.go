//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures fall back to 16-byte scalar mode. The kernels
	// still see a fixed lane count, only the arithmetic runs one lane at
	// a time.
	setScalarMode()
}
