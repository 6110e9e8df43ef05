package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/matkit-ml/matkit/ndarray"
)

// parseMatrix decodes a JSON array-of-arrays literal like [[1,2],[3,4]] into
// a Float64 matrix.
func parseMatrix(literal string) (*ndarray.Matrix, error) {
	var rows [][]float64
	if err := json.Unmarshal([]byte(literal), &rows); err != nil {
		return nil, fmt.Errorf("invalid matrix literal %q: %w", literal, err)
	}
	if len(rows) == 0 {
		return ndarray.New(0, 0, ndarray.Float64)
	}
	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("ragged matrix literal: row %d has %d columns, want %d", i, len(r), cols)
		}
		flat = append(flat, r...)
	}
	return ndarray.FromSlice(flat, len(rows), cols, ndarray.Float64)
}

// printMatrix writes m to stdout as a JSON array-of-arrays.
func printMatrix(m *ndarray.Matrix) error {
	rows := make([][]float64, m.Rows())
	for i := range rows {
		row := make([]float64, m.Cols())
		for j := range row {
			row[j] = m.At(i, j)
		}
		rows[i] = row
	}
	out, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// parseShape turns a "rows,cols" flag value into a shape.
func parseShape(s string) (ndarray.Shape, error) {
	parts := strings.Split(s, ",")
	shape := make(ndarray.Shape, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid shape %q: %w", s, err)
		}
		shape = append(shape, v)
	}
	return shape, nil
}

// parseDType maps a dtype flag value to an element type.
func parseDType(name string) (ndarray.DataType, error) {
	switch name {
	case "", "float64", "float":
		return ndarray.Float64, nil
	case "int8":
		return ndarray.Int8, nil
	case "uint8":
		return ndarray.Uint8, nil
	case "int16":
		return ndarray.Int16, nil
	case "uint16":
		return ndarray.Uint16, nil
	default:
		return 0, fmt.Errorf("unknown dtype %q", name)
	}
}
