package ndarray

import "fmt"

// Dot returns the matrix product a·b as a new Float64 matrix:
// C[i,j] = sum_k A[i,k] * B[k,j].
//
// Operands may have different dtypes; every element read is promoted to
// float64 and the result is always Float64, even for integer inputs.
// Returns ErrShapeMismatch unless a.Cols() == b.Rows().
func Dot(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, fmt.Errorf("%w: cannot multiply %dx%d by %dx%d", ErrShapeMismatch, a.rows, a.cols, b.rows, b.cols)
	}
	p, q, r := a.rows, a.cols, b.cols

	out, err := New(p, r, Float64)
	if err != nil {
		return nil, err
	}
	data := out.buf.AsFloat64()
	for i := 0; i < p; i++ {
		for j := 0; j < r; j++ {
			sum := 0.0
			for k := 0; k < q; k++ {
				sum += a.buf.At(i*q+k) * b.buf.At(k*r+j)
			}
			data[i*r+j] = sum
		}
	}
	return out, nil
}
