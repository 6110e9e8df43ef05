package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeros(t *testing.T) {
	for _, dtype := range []DataType{Int8, Uint8, Int16, Uint16, Float64} {
		m, err := Zeros(Shape{3, 4}, dtype)
		require.NoError(t, err)

		require.Equal(t, 3, m.Rows())
		require.Equal(t, 4, m.Cols())
		require.Equal(t, dtype, m.DType())
		for i := 0; i < m.Buffer().Len(); i++ {
			assert.Equal(t, 0.0, m.Buffer().At(i), "dtype %v element %d", dtype, i)
		}
	}
}

func TestOnes(t *testing.T) {
	for _, dtype := range []DataType{Int8, Uint8, Int16, Uint16, Float64} {
		m, err := Ones(Shape{2, 2}, dtype)
		require.NoError(t, err)

		for i := 0; i < m.Buffer().Len(); i++ {
			assert.Equal(t, 1.0, m.Buffer().At(i), "dtype %v element %d", dtype, i)
		}
	}
}

func TestZerosScalarShapeIsRowVector(t *testing.T) {
	m, err := Zeros(Shape{5}, Float64)
	require.NoError(t, err)

	assert.Equal(t, 1, m.Rows())
	assert.Equal(t, 5, m.Cols())
}

func TestZerosRejectsBadShape(t *testing.T) {
	for _, shape := range []Shape{{}, {1, 2, 3}, {-1, 4}, {2, -1}} {
		_, err := Zeros(shape, Float64)
		assert.ErrorIs(t, err, ErrInvalidArgument, "shape %v", shape)
	}
}

func TestEye(t *testing.T) {
	m, err := Eye(3)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, Float64, m.DType())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.Equal(t, want, m.At(i, j), "(%d, %d)", i, j)
		}
	}
}

func TestEyePositiveOffset(t *testing.T) {
	m, err := Eye(3, WithOffset(1))
	require.NoError(t, err)

	want := [][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	}
	for i := range want {
		for j := range want[i] {
			assert.Equal(t, want[i][j], m.At(i, j), "(%d, %d)", i, j)
		}
	}
}

func TestEyeNegativeOffset(t *testing.T) {
	m, err := Eye(3, WithOffset(-1))
	require.NoError(t, err)

	want := [][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}
	for i := range want {
		for j := range want[i] {
			assert.Equal(t, want[i][j], m.At(i, j), "(%d, %d)", i, j)
		}
	}
}

func TestEyeRectangular(t *testing.T) {
	m, err := Eye(4, WithRows(2))
	require.NoError(t, err)

	require.Equal(t, 2, m.Rows())
	require.Equal(t, 4, m.Cols())
	for i := 0; i < 2; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.Equal(t, want, m.At(i, j), "(%d, %d)", i, j)
		}
	}
}

func TestEyeOffsetOutOfRange(t *testing.T) {
	for _, k := range []int{3, -3, 10} {
		m, err := Eye(3, WithOffset(k))
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				assert.Equal(t, 0.0, m.At(i, j), "offset %d at (%d, %d)", k, i, j)
			}
		}
	}
}

func TestEyeDType(t *testing.T) {
	m, err := Eye(2, WithDType(Uint8))
	require.NoError(t, err)

	require.Equal(t, Uint8, m.DType())
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 1.0, m.At(1, 1))
	assert.Equal(t, 0.0, m.At(0, 1))
}

func TestEyeNegativeSize(t *testing.T) {
	_, err := Eye(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
