package ndarray

import "math"

// pivotEpsilon is the absolute magnitude below which a pivot counts as zero.
// The test is not scaled by matrix magnitude.
const pivotEpsilon = 1.2e-7

// gaussJordan row-reduces the n×n matrix in data, using the diagonal entry
// of each of the first pivotRows rows as the pivot for its column. When acc
// is non-nil it receives the identical row operations in lockstep, so an
// identity-seeded acc accumulates the inverse transform.
//
// Pivoting is purely positional: row m is always the pivot for column m, and
// a pivot below pivotEpsilon reports ErrSingularMatrix rather than trying a
// row exchange. A matrix that merely has a zero on the natural diagonal is
// therefore rejected even when another pivot order would succeed.
func gaussJordan(data, acc []float64, n, pivotRows int) error {
	for m := 0; m < pivotRows; m++ {
		pivot := data[m*(n+1)]
		if math.Abs(pivot) < pivotEpsilon {
			return ErrSingularMatrix
		}
		for r := 0; r < n; r++ {
			if r == m {
				continue
			}
			c := data[r*n+m] / pivot
			for k := 0; k < n; k++ {
				data[r*n+k] -= c * data[m*n+k]
			}
			if acc != nil {
				for k := 0; k < n; k++ {
					acc[r*n+k] -= c * acc[m*n+k]
				}
			}
		}
	}
	return nil
}

// promote copies every element of m, in row-major order, into a fresh
// float64 slice. Invert and Det work on promoted copies so that a failing
// operation never touches the input matrix.
func promote(m *Matrix) []float64 {
	out := make([]float64, m.rows*m.cols)
	for i := range out {
		out[i] = m.buf.At(i)
	}
	return out
}
