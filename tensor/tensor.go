// Copyright 2025 Prime ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/prime-ml/prime/internal/tensor"
)

// Type aliases for public API

// Float is a constraint for supported parameter element types.
type Float = tensor.Float

// DataType represents the underlying data type of a blob.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a blob.
// Example: Shape{2, 3, 4} represents a 3D blob with dimensions 2×3×4.
type Shape = tensor.Shape

// Blob is a shaped parameter container backed by a flat row-major buffer.
type Blob[T Float] = tensor.Blob[T]

// Creation functions

// New creates a zero-valued blob with the given shape.
//
// Example:
//
//	weights, err := tensor.New[float32](tensor.Shape{64, 3, 7, 7})
func New[T Float](shape Shape) (*Blob[T], error) {
	return tensor.New[T](shape)
}

// FromSlice creates a blob that copies data into the given shape.
//
// Example:
//
//	b, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice[T Float](data []T, shape Shape) (*Blob[T], error) {
	return tensor.FromSlice(data, shape)
}
