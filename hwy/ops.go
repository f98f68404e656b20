// Copyright 2026 go-logsumexp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

// This file provides the pure Go (scalar) implementations of the vector
// operations. They serve as the portable fallback for every architecture;
// the dispatch layer only decides how many lanes each vector carries.

// Load creates a vector by loading data from a slice.
// If the slice is shorter than MaxLanes[T](), the vector is shorter too.
func Load[T Floats](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Floats](v Vec[T], dst []T) {
	n := min(len(v.data), len(dst))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Floats](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Floats]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Add performs element-wise addition.
func Add[T Floats](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction.
func Sub[T Floats](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Floats](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Min returns the element-wise minimum.
//
// Lanes are combined by compare-and-select: the first operand wins when it
// compares less, otherwise the second operand is taken. A NaN in the first
// operand therefore loses (the comparison is false), matching hardware
// min instructions on x86.
func Min[T Floats](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if a.data[i] < b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Max returns the element-wise maximum.
//
// Same compare-and-select convention as Min: when a lane of the first
// operand is NaN the comparison is false and the second operand wins.
func Max[T Floats](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if a.data[i] > b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// ReduceSum sums all lanes into a scalar.
func ReduceSum[T Floats](v Vec[T]) T {
	var sum T
	for i := 0; i < len(v.data); i++ {
		sum += v.data[i]
	}
	return sum
}

// ReduceMax returns the maximum value across all lanes, using the same
// compare-and-select convention as Max. Returns the zero value for an
// empty vector.
func ReduceMax[T Floats](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	result := v.data[0]
	for i := 1; i < len(v.data); i++ {
		if v.data[i] > result {
			result = v.data[i]
		}
	}
	return result
}

// ReduceMin returns the minimum value across all lanes. Returns the zero
// value for an empty vector.
func ReduceMin[T Floats](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	result := v.data[0]
	for i := 1; i < len(v.data); i++ {
		if v.data[i] < result {
			result = v.data[i]
		}
	}
	return result
}
