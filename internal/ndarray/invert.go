package ndarray

import "fmt"

// Invert returns a new Float64 matrix holding the inverse of m.
//
// Elements are promoted into a scratch working copy, so m itself is never
// modified, even on failure. Returns ErrShapeMismatch for non-square input
// and ErrSingularMatrix when elimination hits a pivot below the fixed
// threshold.
func (m *Matrix) Invert() (*Matrix, error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("%w: cannot invert %dx%d matrix", ErrShapeMismatch, m.rows, m.cols)
	}
	n := m.rows

	work := promote(m)
	unit := make([]float64, n*n)
	for i := 0; i < n; i++ {
		unit[i*(n+1)] = 1
	}

	if err := gaussJordan(work, unit, n, n); err != nil {
		return nil, err
	}

	// Elimination leaves work diagonal; normalizing every row turns unit
	// into the inverse.
	for i := 0; i < n; i++ {
		d := work[i*(n+1)]
		for j := 0; j < n; j++ {
			work[i*n+j] /= d
			unit[i*n+j] /= d
		}
	}

	out, err := New(n, n, Float64)
	if err != nil {
		return nil, err
	}
	copy(out.buf.AsFloat64(), unit)
	return out, nil
}
