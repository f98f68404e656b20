// Package hwy provides a small portable SIMD abstraction for floating-point
// kernels, with runtime CPU dispatch.
//
// It follows the Highway C++ library's design philosophy: write the kernel
// once against an abstract lane width and let dispatch pick the widest
// vector the CPU offers. In base (scalar) mode a Vec wraps a slice sized to
// the detected register width, so the same kernel code covers both the
// vectorized and the portable path.
//
// Basic usage:
//
//	a := hwy.Load(data1)
//	b := hwy.Load(data2)
//	m := hwy.Max(a, b)
//	hwy.Store(m, output)
package hwy

// Floats is a constraint for the lane types supported by this package.
type Floats interface {
	~float32 | ~float64
}

// Vec is a portable vector handle. It holds at most MaxLanes[T]() elements;
// loading from a shorter slice yields a shorter vector, which every
// operation respects.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Floats] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in
// performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(v.data), len(dst))
	copy(dst[:n], v.data[:n])
}
