// Package tensor provides the shaped, flat-buffer-backed blobs that hold
// network parameters in the Prime ML framework.
package tensor

// Float is a constraint for supported parameter element types.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for blobs.
type DataType int

// Supported data types for blobs.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// InferDataType infers DataType from a generic type T.
func InferDataType[T Float]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported type")
	}
}
