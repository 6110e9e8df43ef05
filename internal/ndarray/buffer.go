package ndarray

import (
	"fmt"
	"unsafe"
)

// Buffer is contiguous storage for matrix elements, tagged with the element
// type used to interpret its bytes. A Buffer belongs to exactly one Matrix.
type Buffer struct {
	data  []byte
	dtype DataType
	n     int // element count
}

// NewBuffer allocates zeroed storage for n elements of dtype.
func NewBuffer(n int, dtype DataType) *Buffer {
	return &Buffer{
		data:  make([]byte, n*dtype.Size()),
		dtype: dtype,
		n:     n,
	}
}

// DType returns the element type tag.
func (b *Buffer) DType() DataType {
	return b.dtype
}

// Len returns the number of elements.
func (b *Buffer) Len() int {
	return b.n
}

// ByteSize returns the total storage size in bytes.
func (b *Buffer) ByteSize() int {
	return len(b.data)
}

// Bytes returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// AsInt8 interprets the data as []int8.
// Panics if the buffer's dtype is not Int8.
func (b *Buffer) AsInt8() []int8 {
	if b.dtype != Int8 {
		panic(fmt.Sprintf("buffer dtype is %s, not int8", b.dtype))
	}
	if b.n == 0 {
		return nil
	}
	return unsafe.Slice((*int8)(unsafe.Pointer(&b.data[0])), b.n)
}

// AsUint8 interprets the data as []uint8.
// Panics if the buffer's dtype is not Uint8.
func (b *Buffer) AsUint8() []uint8 {
	if b.dtype != Uint8 {
		panic(fmt.Sprintf("buffer dtype is %s, not uint8", b.dtype))
	}
	return b.data // Already []byte = []uint8
}

// AsInt16 interprets the data as []int16.
// Panics if the buffer's dtype is not Int16.
func (b *Buffer) AsInt16() []int16 {
	if b.dtype != Int16 {
		panic(fmt.Sprintf("buffer dtype is %s, not int16", b.dtype))
	}
	if b.n == 0 {
		return nil
	}
	return unsafe.Slice((*int16)(unsafe.Pointer(&b.data[0])), b.n)
}

// AsUint16 interprets the data as []uint16.
// Panics if the buffer's dtype is not Uint16.
func (b *Buffer) AsUint16() []uint16 {
	if b.dtype != Uint16 {
		panic(fmt.Sprintf("buffer dtype is %s, not uint16", b.dtype))
	}
	if b.n == 0 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&b.data[0])), b.n)
}

// AsFloat64 interprets the data as []float64.
// Panics if the buffer's dtype is not Float64.
func (b *Buffer) AsFloat64() []float64 {
	if b.dtype != Float64 {
		panic(fmt.Sprintf("buffer dtype is %s, not float64", b.dtype))
	}
	if b.n == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&b.data[0])), b.n)
}

// At reads element i promoted to float64, regardless of dtype. The numeric
// routines in this package operate only on promoted values, which keeps
// per-dtype branching out of their inner loops.
func (b *Buffer) At(i int) float64 {
	switch b.dtype {
	case Int8:
		return float64(b.AsInt8()[i])
	case Uint8:
		return float64(b.data[i])
	case Int16:
		return float64(b.AsInt16()[i])
	case Uint16:
		return float64(b.AsUint16()[i])
	case Float64:
		return b.AsFloat64()[i]
	default:
		panic("unknown data type")
	}
}

// SetAt writes v to element i through the dtype's representation. Integer
// dtypes truncate toward zero.
func (b *Buffer) SetAt(i int, v float64) {
	switch b.dtype {
	case Int8:
		b.AsInt8()[i] = int8(v)
	case Uint8:
		b.data[i] = uint8(v)
	case Int16:
		b.AsInt16()[i] = int16(v)
	case Uint16:
		b.AsUint16()[i] = uint16(v)
	case Float64:
		b.AsFloat64()[i] = v
	default:
		panic("unknown data type")
	}
}
