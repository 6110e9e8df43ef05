// Package ndarray provides the dense 2-D matrix core for matkit.
package ndarray

// DataType represents runtime element type information for matrix buffers.
type DataType int

// Supported element types.
const (
	Int8 DataType = iota
	Uint8
	Int16
	Uint16
	Float64
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}
