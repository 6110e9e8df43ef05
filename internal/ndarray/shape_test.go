package ndarray

import (
	"errors"
	"testing"
)

// Transpose Tests

func TestTransposeRectangular(t *testing.T) {
	m, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3, Float64)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	m.Transpose()

	if m.Rows() != 3 || m.Cols() != 2 {
		t.Fatalf("dims after transpose = %dx%d, want 3x2", m.Rows(), m.Cols())
	}
	want := []float64{1, 4, 2, 5, 3, 6}
	for i, w := range want {
		if got := m.Buffer().At(i); got != w {
			t.Errorf("element %d = %v, want %v", i, got, w)
		}
	}
}

func TestTransposeInvolution(t *testing.T) {
	orig := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	m, _ := FromSlice(orig, 3, 4, Int16)

	m.Transpose()
	m.Transpose()

	if m.Rows() != 3 || m.Cols() != 4 {
		t.Fatalf("dims after double transpose = %dx%d, want 3x4", m.Rows(), m.Cols())
	}
	for i, w := range orig {
		if got := m.Buffer().At(i); got != w {
			t.Errorf("element %d = %v, want %v", i, got, w)
		}
	}
}

func TestTransposeVectorSwapsDimsOnly(t *testing.T) {
	m, _ := FromSlice([]float64{1, 2, 3, 4}, 1, 4, Float64)

	m.Transpose()

	if m.Rows() != 4 || m.Cols() != 1 {
		t.Fatalf("dims after transpose = %dx%d, want 4x1", m.Rows(), m.Cols())
	}
	for i := 0; i < 4; i++ {
		if got := m.Buffer().At(i); got != float64(i+1) {
			t.Errorf("element %d = %v, want %v", i, got, i+1)
		}
	}
}

func TestTransposeSquare(t *testing.T) {
	m, _ := FromSlice([]float64{1, 2, 3, 4}, 2, 2, Float64)

	m.Transpose()

	want := []float64{1, 3, 2, 4}
	for i, w := range want {
		if got := m.Buffer().At(i); got != w {
			t.Errorf("element %d = %v, want %v", i, got, w)
		}
	}
}

// Reshape Tests

func TestReshapePreservesLinearContent(t *testing.T) {
	m, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3, Uint8)

	if err := m.Reshape(Shape{3, 2}); err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}

	if m.Rows() != 3 || m.Cols() != 2 {
		t.Fatalf("dims after reshape = %dx%d, want 3x2", m.Rows(), m.Cols())
	}
	for i := 0; i < 6; i++ {
		if got := m.Buffer().At(i); got != float64(i+1) {
			t.Errorf("element %d = %v, want %v", i, got, i+1)
		}
	}
}

func TestReshapeRejectsSizeChange(t *testing.T) {
	m, _ := New(2, 3, Float64)

	err := m.Reshape(Shape{2, 2})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Reshape(2,2) error = %v, want ErrShapeMismatch", err)
	}

	// Failed reshape must leave the dims untouched
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Errorf("dims after failed reshape = %dx%d, want 2x3", m.Rows(), m.Cols())
	}
}

func TestReshapeRejectsMalformedShape(t *testing.T) {
	m, _ := New(2, 3, Float64)

	for _, shape := range []Shape{{6}, {1, 2, 3}, {-2, -3}, nil} {
		if err := m.Reshape(shape); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Reshape(%v) error = %v, want ErrInvalidArgument", shape, err)
		}
	}
}

// Shape / constructor validation

func TestNewRejectsNegativeDims(t *testing.T) {
	if _, err := New(-1, 2, Float64); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("New(-1, 2) error = %v, want ErrInvalidArgument", err)
	}
}

func TestFromSliceLengthCheck(t *testing.T) {
	if _, err := FromSlice([]float64{1, 2, 3}, 2, 2, Float64); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("FromSlice error = %v, want ErrShapeMismatch", err)
	}
}
