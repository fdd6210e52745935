package tensor

import (
	"fmt"
)

// Blob is a shaped parameter container backed by a flat row-major buffer.
//
// The axis convention follows the usual parameter layouts: axis 0 is the
// "num"/output-group axis and axis 1 the channel axis. Image-like blobs are
// (num, channels, height, width) with 4 axes, or
// (num, channels, depth, height, width) with 5.
//
// Example:
//
//	weights, err := tensor.New[float32](tensor.Shape{64, 3, 7, 7})
//	if err != nil { ... }
//	data := weights.Data() // flat buffer of length 64*3*7*7
type Blob[T Float] struct {
	shape Shape
	data  []T
}

// New creates a zero-valued blob with the given shape.
func New[T Float](shape Shape) (*Blob[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Blob[T]{
		shape: shape.Clone(),
		data:  make([]T, shape.NumElements()),
	}, nil
}

// FromSlice creates a blob that copies data into the given shape.
func FromSlice[T Float](data []T, shape Shape) (*Blob[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %s (%d elements)",
			len(data), shape, shape.NumElements())
	}
	b := &Blob[T]{
		shape: shape.Clone(),
		data:  make([]T, len(data)),
	}
	copy(b.data, data)
	return b, nil
}

// Shape returns a copy of the blob's shape.
func (b *Blob[T]) Shape() Shape {
	return b.shape.Clone()
}

// NumAxes returns the number of axes.
func (b *Blob[T]) NumAxes() int {
	return len(b.shape)
}

// Dim returns the size of the given axis.
// Panics if the axis index is out of range.
func (b *Blob[T]) Dim(axis int) int {
	if axis < 0 || axis >= len(b.shape) {
		panic(fmt.Sprintf("tensor: axis %d out of range for %d-axis blob", axis, len(b.shape)))
	}
	return b.shape[axis]
}

// Count returns the total number of elements.
func (b *Blob[T]) Count() int {
	return len(b.data)
}

// Data returns the mutable flat buffer. The buffer has length Count() and is
// laid out row-major (the last axis varies fastest).
func (b *Blob[T]) Data() []T {
	return b.data
}

// DataType returns runtime type information for the element type.
func (b *Blob[T]) DataType() DataType {
	return InferDataType[T]()
}

// Legacy 4-axis accessors. Missing trailing axes read as size 1.

// Num returns the size of axis 0 of a blob with at most 4 axes.
func (b *Blob[T]) Num() int { return b.legacyDim(0) }

// Channels returns the size of axis 1 of a blob with at most 4 axes.
func (b *Blob[T]) Channels() int { return b.legacyDim(1) }

// Height returns the size of axis 2 of a blob with at most 4 axes.
func (b *Blob[T]) Height() int { return b.legacyDim(2) }

// Width returns the size of axis 3 of a blob with at most 4 axes.
func (b *Blob[T]) Width() int { return b.legacyDim(3) }

func (b *Blob[T]) legacyDim(axis int) int {
	if len(b.shape) > 4 {
		panic(fmt.Sprintf("tensor: legacy accessor on %d-axis blob (max 4)", len(b.shape)))
	}
	if axis >= len(b.shape) {
		return 1
	}
	return b.shape[axis]
}
