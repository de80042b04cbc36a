// Package tensor2d rotates dense row-major float32 matrices held in
// gonum's blas32.General.
package tensor2d

import (
	"slices"

	"github.com/sw965/gridrot/matrix/2d"
	"gonum.org/v1/gonum/blas/blas32"
)

func NewZeros(rows, cols int) blas32.General {
	return blas32.General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   make([]float32, rows*cols),
	}
}

// FromRows packs rows into a new General with Stride == Cols. Every row must
// have the same length.
func FromRows(rows [][]float32) (blas32.General, error) {
	if len(rows) == 0 {
		return NewZeros(0, 0), nil
	}
	cols := len(rows[0])
	gen := NewZeros(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return blas32.General{}, &matrix2d.InvalidShapeError{Row: i, Got: len(row), Want: cols}
		}
		copy(gen.Data[i*gen.Stride:], row)
	}
	return gen, nil
}

// ToRows copies gen into a fresh slice of rows, dropping any stride padding.
func ToRows(gen blas32.General) [][]float32 {
	rows := make([][]float32, gen.Rows)
	for i := range rows {
		offset := i * gen.Stride
		rows[i] = slices.Clone(gen.Data[offset : offset+gen.Cols])
	}
	return rows
}

func N(gen blas32.General) int {
	return gen.Rows * gen.Cols
}

func Clone(gen blas32.General) blas32.General {
	return blas32.General{
		Rows:   gen.Rows,
		Cols:   gen.Cols,
		Stride: gen.Stride,
		Data:   slices.Clone(gen.Data),
	}
}

func At(gen blas32.General, row, col int) int {
	return row*gen.Stride + col
}

func validate(gen blas32.General) error {
	if gen.Rows == 0 {
		return nil
	}
	if gen.Stride < gen.Cols {
		return &matrix2d.InvalidShapeError{Row: 0, Got: gen.Stride, Want: gen.Cols}
	}
	for r := 0; r < gen.Rows; r++ {
		if end := At(gen, r, gen.Cols); end > len(gen.Data) {
			return &matrix2d.InvalidShapeError{Row: r, Got: max(len(gen.Data)-At(gen, r, 0), 0), Want: gen.Cols}
		}
	}
	return nil
}

// ValidateSquare checks that gen is square and that Data backs every row.
func ValidateSquare(gen blas32.General) error {
	if gen.Rows != gen.Cols {
		return &matrix2d.InvalidShapeError{Row: -1, Got: gen.Rows, Want: gen.Cols}
	}
	return validate(gen)
}

// ReverseRows reverses every row in place by swapping its left half with its
// right half read backwards.
func ReverseRows(gen blas32.General) {
	h := gen.Cols / 2
	for r := 0; r < gen.Rows; r++ {
		offset := At(gen, r, 0)
		row := gen.Data[offset : offset+gen.Cols]
		blas32.Swap(
			blas32.Vector{N: h, Inc: 1, Data: row[:h]},
			blas32.Vector{N: h, Inc: -1, Data: row[gen.Cols-h:]},
		)
	}
}

// TransposeInPlace swaps the part of row i right of the diagonal with the
// part of column i below it, for every i.
func TransposeInPlace(gen blas32.General) error {
	if err := ValidateSquare(gen); err != nil {
		return err
	}
	transpose(gen)
	return nil
}

func transpose(gen blas32.General) {
	n := gen.Rows
	for i := 0; i < n-1; i++ {
		m := n - 1 - i
		right := At(gen, i, i+1)
		below := At(gen, i+1, i)
		blas32.Swap(
			blas32.Vector{N: m, Inc: 1, Data: gen.Data[right : right+m]},
			blas32.Vector{N: m, Inc: gen.Stride, Data: gen.Data[below:]},
		)
	}
}

// RotateAnticlockwise turns a square matrix a quarter turn anticlockwise in
// place, moving element (i, j) to (n-1-j, i). Stride padding is left alone.
// On error gen is unchanged.
func RotateAnticlockwise(gen blas32.General) error {
	if err := ValidateSquare(gen); err != nil {
		return err
	}
	ReverseRows(gen)
	transpose(gen)
	return nil
}

// Transpose returns a new Cols x Rows matrix. gen may be rectangular.
func Transpose(gen blas32.General) blas32.General {
	t := blas32.General{
		Rows:   gen.Cols,
		Cols:   gen.Rows,
		Stride: gen.Rows,
		Data:   make([]float32, N(gen)),
	}

	for i := 0; i < t.Rows; i++ {
		for j := 0; j < t.Cols; j++ {
			newIdx := At(t, i, j)
			oldIdx := At(gen, j, i)
			t.Data[newIdx] = gen.Data[oldIdx]
		}
	}
	return t
}
