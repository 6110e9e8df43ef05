package ndarray

import "fmt"

// Matrix pairs a typed buffer with declared 2-D dimensions. Storage is
// row-major: the element at (row i, column j) lives at linear index
// i*cols + j. A Matrix owns its buffer exclusively; operations either mutate
// it in place or allocate a fresh buffer for a new Matrix, never alias
// another handle's storage.
type Matrix struct {
	rows, cols int
	buf        *Buffer
}

// New allocates a zeroed rows×cols matrix of the given dtype.
func New(rows, cols int, dtype DataType) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative dimension (%d, %d)", ErrInvalidArgument, rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, buf: NewBuffer(rows*cols, dtype)}, nil
}

// FromSlice builds a rows×cols matrix of the given dtype from values in
// row-major order. Values go through the typed writer, so integer dtypes
// truncate.
func FromSlice(data []float64, rows, cols int, dtype DataType) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative dimension (%d, %d)", ErrInvalidArgument, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for a %dx%d matrix", ErrShapeMismatch, len(data), rows, cols)
	}
	m := &Matrix{rows: rows, cols: cols, buf: NewBuffer(rows*cols, dtype)}
	for i, v := range data {
		m.buf.SetAt(i, v)
	}
	return m, nil
}

// Rows returns the declared row count.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the declared column count.
func (m *Matrix) Cols() int {
	return m.cols
}

// DType returns the element type of the backing buffer.
func (m *Matrix) DType() DataType {
	return m.buf.DType()
}

// Buffer returns the backing buffer.
func (m *Matrix) Buffer() *Buffer {
	return m.buf
}

// At returns the element at (i, j) promoted to float64.
func (m *Matrix) At(i, j int) float64 {
	return m.buf.At(i*m.cols + j)
}

// Set writes v at (i, j) through the dtype's representation.
func (m *Matrix) Set(i, j int, v float64) {
	m.buf.SetAt(i*m.cols+j, v)
}
