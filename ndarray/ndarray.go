// Package ndarray provides the public API for matkit's dense 2-D matrix
// kernel.
//
// The package exposes a Matrix handle backed by a contiguous, row-major,
// typed buffer, plus shape transforms, Gauss-Jordan inversion, determinant,
// matrix multiplication, and structured constructors:
//
//	a, _ := ndarray.FromSlice([]float64{4, 7, 2, 6}, 2, 2, ndarray.Float64)
//	inv, _ := a.Invert()
//	prod, _ := ndarray.Dot(a, inv) // ≈ identity
//
// All numeric results (Invert, Det, Dot) are Float64, regardless of the
// operand dtypes; element reads inside the numeric loops are promoted to
// float64.
package ndarray

import (
	"github.com/matkit-ml/matkit/internal/ndarray"
)

// DataType represents the underlying element type of a matrix buffer.
type DataType = ndarray.DataType

// Element type constants.
const (
	Int8    DataType = ndarray.Int8
	Uint8   DataType = ndarray.Uint8
	Int16   DataType = ndarray.Int16
	Uint16  DataType = ndarray.Uint16
	Float64 DataType = ndarray.Float64
)

// Matrix is a 2-D matrix handle owning a contiguous row-major typed buffer.
type Matrix = ndarray.Matrix

// Buffer is the typed element storage backing a Matrix.
type Buffer = ndarray.Buffer

// Shape is a dimension specification: one element means a 1×n row vector,
// two elements mean rows×cols.
type Shape = ndarray.Shape

// EyeOption configures Eye.
type EyeOption = ndarray.EyeOption

// Sentinel errors. Match with errors.Is.
var (
	ErrShapeMismatch   = ndarray.ErrShapeMismatch
	ErrSingularMatrix  = ndarray.ErrSingularMatrix
	ErrInvalidArgument = ndarray.ErrInvalidArgument
)

// Creation functions

// New allocates a zeroed rows×cols matrix of the given dtype.
func New(rows, cols int, dtype DataType) (*Matrix, error) {
	return ndarray.New(rows, cols, dtype)
}

// FromSlice builds a rows×cols matrix of the given dtype from values in
// row-major order.
//
// Example:
//
//	m, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3, ndarray.Float64)
func FromSlice(data []float64, rows, cols int, dtype DataType) (*Matrix, error) {
	return ndarray.FromSlice(data, rows, cols, dtype)
}

// Zeros creates a matrix filled with zeros.
//
// Example:
//
//	m, err := ndarray.Zeros(ndarray.Shape{3, 4}, ndarray.Int16)
func Zeros(shape Shape, dtype DataType) (*Matrix, error) {
	return ndarray.Zeros(shape, dtype)
}

// Ones creates a matrix filled with ones.
func Ones(shape Shape, dtype DataType) (*Matrix, error) {
	return ndarray.Ones(shape, dtype)
}

// Eye creates a matrix with ones along a (possibly offset) diagonal.
//
// Example:
//
//	m, err := ndarray.Eye(3, ndarray.WithOffset(1)) // superdiagonal ones
func Eye(n int, opts ...EyeOption) (*Matrix, error) {
	return ndarray.Eye(n, opts...)
}

// WithRows sets Eye's row count (default: n, a square matrix).
func WithRows(m int) EyeOption {
	return ndarray.WithRows(m)
}

// WithOffset shifts Eye's ones diagonal by k columns (positive) or rows
// (negative).
func WithOffset(k int) EyeOption {
	return ndarray.WithOffset(k)
}

// WithDType selects Eye's element type (default Float64).
func WithDType(dt DataType) EyeOption {
	return ndarray.WithDType(dt)
}

// Algebra

// Dot returns the matrix product a·b as a new Float64 matrix.
func Dot(a, b *Matrix) (*Matrix, error) {
	return ndarray.Dot(a, b)
}
