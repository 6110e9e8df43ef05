package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/matkit-ml/matkit/ndarray"
)

func matrixFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "json",
		Aliases:     []string{"j"},
		Usage:       "matrix literal as a JSON array of rows, e.g. '[[1,2],[3,4]]'",
		Destination: dst,
		Required:    true,
	}
}

func detCmd() *cli.Command {
	var literal string
	return &cli.Command{
		Name:  "det",
		Usage: "Compute the determinant of a square matrix",
		Flags: []cli.Flag{matrixFlag(&literal)},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			m, err := parseMatrix(literal)
			if err != nil {
				return err
			}
			det, err := m.Det()
			if err != nil {
				return err
			}
			fmt.Println(det)
			return nil
		},
	}
}

func invCmd() *cli.Command {
	var literal string
	return &cli.Command{
		Name:  "inv",
		Usage: "Invert a square matrix",
		Flags: []cli.Flag{matrixFlag(&literal)},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			m, err := parseMatrix(literal)
			if err != nil {
				return err
			}
			inv, err := m.Invert()
			if err != nil {
				return err
			}
			return printMatrix(inv)
		},
	}
}

func dotCmd() *cli.Command {
	var aLit, bLit string
	return &cli.Command{
		Name:  "dot",
		Usage: "Multiply two matrices",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "a", Usage: "left operand as a JSON array of rows", Destination: &aLit, Required: true},
			&cli.StringFlag{Name: "b", Usage: "right operand as a JSON array of rows", Destination: &bLit, Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := parseMatrix(aLit)
			if err != nil {
				return err
			}
			b, err := parseMatrix(bLit)
			if err != nil {
				return err
			}
			c, err := ndarray.Dot(a, b)
			if err != nil {
				return err
			}
			return printMatrix(c)
		},
	}
}

func transposeCmd() *cli.Command {
	var literal string
	return &cli.Command{
		Name:  "transpose",
		Usage: "Transpose a matrix",
		Flags: []cli.Flag{matrixFlag(&literal)},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			m, err := parseMatrix(literal)
			if err != nil {
				return err
			}
			m.Transpose()
			return printMatrix(m)
		},
	}
}

func reshapeCmd() *cli.Command {
	var literal, shapeStr string
	return &cli.Command{
		Name:  "reshape",
		Usage: "Reshape a matrix without moving data",
		Flags: []cli.Flag{
			matrixFlag(&literal),
			&cli.StringFlag{Name: "shape", Aliases: []string{"s"}, Usage: "target shape as rows,cols", Destination: &shapeStr, Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			m, err := parseMatrix(literal)
			if err != nil {
				return err
			}
			shape, err := parseShape(shapeStr)
			if err != nil {
				return err
			}
			if err := m.Reshape(shape); err != nil {
				return err
			}
			return printMatrix(m)
		},
	}
}

func eyeCmd() *cli.Command {
	var (
		n, rows, offset int
		dtypeName       string
	)
	return &cli.Command{
		Name:  "eye",
		Usage: "Build a matrix with ones along a diagonal",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "n", Usage: "column count", Destination: &n, Required: true},
			&cli.IntFlag{Name: "rows", Aliases: []string{"m"}, Usage: "row count (default: n)", Destination: &rows},
			&cli.IntFlag{Name: "k", Usage: "diagonal offset", Destination: &offset},
			&cli.StringFlag{Name: "dtype", Usage: "element type (int8, uint8, int16, uint16, float64)", Destination: &dtypeName},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dtype, err := parseDType(dtypeName)
			if err != nil {
				return err
			}
			opts := []ndarray.EyeOption{ndarray.WithOffset(offset), ndarray.WithDType(dtype)}
			if cmd.IsSet("rows") {
				opts = append(opts, ndarray.WithRows(rows))
			}
			m, err := ndarray.Eye(n, opts...)
			if err != nil {
				return err
			}
			return printMatrix(m)
		},
	}
}

func zerosCmd() *cli.Command {
	return fillCmd("zeros", "Build a zero-filled matrix", ndarray.Zeros)
}

func onesCmd() *cli.Command {
	return fillCmd("ones", "Build a one-filled matrix", ndarray.Ones)
}

func fillCmd(name, usage string, build func(ndarray.Shape, ndarray.DataType) (*ndarray.Matrix, error)) *cli.Command {
	var shapeStr, dtypeName string
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "shape", Aliases: []string{"s"}, Usage: "shape as n or rows,cols", Destination: &shapeStr, Required: true},
			&cli.StringFlag{Name: "dtype", Usage: "element type (int8, uint8, int16, uint16, float64)", Destination: &dtypeName},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shape, err := parseShape(shapeStr)
			if err != nil {
				return err
			}
			dtype, err := parseDType(dtypeName)
			if err != nil {
				return err
			}
			m, err := build(shape, dtype)
			if err != nil {
				return err
			}
			return printMatrix(m)
		},
	}
}
