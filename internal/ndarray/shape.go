package ndarray

import "fmt"

// Shape is a dimension specification for the constructors and Reshape: one
// element means a 1×n row vector, two elements mean rows×cols.
type Shape []int

// dims resolves a Shape to matrix dimensions.
func (s Shape) dims() (rows, cols int, err error) {
	switch len(s) {
	case 1:
		rows, cols = 1, s[0]
	case 2:
		rows, cols = s[0], s[1]
	default:
		return 0, 0, fmt.Errorf("%w: shape must be an integer or a 2-tuple, got %v", ErrInvalidArgument, []int(s))
	}
	if rows < 0 || cols < 0 {
		return 0, 0, fmt.Errorf("%w: negative dimension in shape %v", ErrInvalidArgument, []int(s))
	}
	return rows, cols, nil
}

// Transpose flips m in place: afterward the value at (j, i) is the value
// previously at (i, j), and the declared dimensions are swapped.
//
// A vector needs no element movement, only the dimension swap. Rectangular
// matrices cannot be transposed by pairwise swaps (the permutation cycles
// have irregular lengths), so the general path moves element bytes through a
// scratch buffer of the same size.
func (m *Matrix) Transpose() {
	if m.rows != 1 && m.cols != 1 {
		size := m.buf.DType().Size()
		src := m.buf.Bytes()
		tmp := make([]byte, m.buf.ByteSize())
		for i := 0; i < m.rows; i++ {
			for j := 0; j < m.cols; j++ {
				// old (i, j) at i*cols+j lands at new (j, i) at j*rows+i
				dst := size * (j*m.rows + i)
				off := size * (i*m.cols + j)
				copy(tmp[dst:dst+size], src[off:off+size])
			}
		}
		copy(src, tmp)
	}
	m.rows, m.cols = m.cols, m.rows
}

// Reshape reinterprets the same linear buffer with new declared dimensions.
// The shape must be exactly two non-negative integers whose product matches
// the current element count. No data moves.
func (m *Matrix) Reshape(shape Shape) error {
	if len(shape) != 2 || shape[0] < 0 || shape[1] < 0 {
		return fmt.Errorf("%w: shape must be a 2-tuple of non-negative integers, got %v", ErrInvalidArgument, []int(shape))
	}
	if shape[0]*shape[1] != m.rows*m.cols {
		return fmt.Errorf("%w: cannot reshape %dx%d matrix to %dx%d", ErrShapeMismatch, m.rows, m.cols, shape[0], shape[1])
	}
	m.rows, m.cols = shape[0], shape[1]
	return nil
}
