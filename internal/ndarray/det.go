package ndarray

import "fmt"

// Det returns the determinant of m as a float64 scalar.
//
// Forward elimination runs over pivot rows [0, n-1); the last row needs no
// elimination, and its diagonal entry still contributes to the product. A
// small pivot along the way reports ErrSingularMatrix even though a
// different pivot order might have succeeded (positional pivoting, see
// gaussJordan). A 1×1 matrix degenerates to its sole element.
func (m *Matrix) Det() (float64, error) {
	if m.rows != m.cols {
		return 0, fmt.Errorf("%w: determinant requires a square matrix, got %dx%d", ErrShapeMismatch, m.rows, m.cols)
	}
	n := m.rows

	work := promote(m)
	if err := gaussJordan(work, nil, n, n-1); err != nil {
		return 0, err
	}

	det := 1.0
	for i := 0; i < n; i++ {
		det *= work[i*(n+1)]
	}
	return det, nil
}
