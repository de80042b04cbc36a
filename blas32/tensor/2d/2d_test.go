package tensor2d_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/sw965/gridrot/blas32/tensor/2d"
	"github.com/sw965/gridrot/matrix/2d"
	"gonum.org/v1/gonum/blas/blas32"
)

func TestTranspose(t *testing.T) {
	x := blas32.General{
		Rows:   3,
		Cols:   5,
		Stride: 5,
		Data: []float32{
			1, 2, 3, 4, 5,
			2, 5, 4, 1, 3,
			3, 1, 5, 2, 4,
		},
	}

	result := tensor2d.Transpose(x)
	expected := blas32.General{
		Rows:   5,
		Cols:   3,
		Stride: 3,
		Data: []float32{
			1, 2, 3,
			2, 5, 1,
			3, 4, 5,
			4, 1, 2,
			5, 3, 4,
		},
	}

	if result.Rows != expected.Rows || result.Cols != expected.Cols || result.Stride != expected.Stride {
		t.Fatalf("got %dx%d stride %d, want %dx%d stride %d",
			result.Rows, result.Cols, result.Stride, expected.Rows, expected.Cols, expected.Stride)
	}
	if !slices.Equal(result.Data, expected.Data) {
		t.Errorf("got %v, want %v", result.Data, expected.Data)
	}
}

func TestRotateAnticlockwise(t *testing.T) {
	x := blas32.General{
		Rows:   3,
		Cols:   3,
		Stride: 3,
		Data: []float32{
			1, 2, 3,
			4, 5, 6,
			7, 8, 9,
		},
	}
	expected := []float32{
		3, 6, 9,
		2, 5, 8,
		1, 4, 7,
	}

	if err := tensor2d.RotateAnticlockwise(x); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if x.Rows != 3 || x.Cols != 3 {
		t.Errorf("shape changed to %dx%d", x.Rows, x.Cols)
	}
	if !slices.Equal(x.Data, expected) {
		t.Errorf("got %v, want %v", x.Data, expected)
	}
}

func TestRotateAnticlockwiseMatchesGeneric(t *testing.T) {
	for n := 0; n <= 6; n++ {
		rows := make([][]float32, n)
		for i := range rows {
			rows[i] = make([]float32, n)
			for j := range rows[i] {
				rows[i][j] = float32(i*n + j)
			}
		}

		x, err := tensor2d.FromRows(rows)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if err := tensor2d.RotateAnticlockwise(x); err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		matrix2d.MustRotateAnticlockwise(rows)

		got := tensor2d.ToRows(x)
		if !matrix2d.EqualFunc(got, rows, func(a, b float32) bool { return a == b }) {
			t.Errorf("n=%d: got %v, want %v", n, got, rows)
		}
	}
}

func TestRotateAnticlockwiseFourTimes(t *testing.T) {
	x := tensor2d.NewZeros(5, 5)
	for i := range x.Data {
		x.Data[i] = float32(i)
	}
	original := tensor2d.Clone(x)

	for k := 0; k < 4; k++ {
		if err := tensor2d.RotateAnticlockwise(x); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if !slices.Equal(x.Data, original.Data) {
		t.Errorf("got %v, want %v", x.Data, original.Data)
	}
}

func TestRotateAnticlockwiseStride(t *testing.T) {
	const pad = -1
	x := blas32.General{
		Rows:   2,
		Cols:   2,
		Stride: 3,
		Data: []float32{
			1, 2, pad,
			3, 4,
		},
	}
	expected := []float32{
		2, 4, pad,
		1, 3,
	}

	if err := tensor2d.RotateAnticlockwise(x); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(x.Data, expected) {
		t.Errorf("got %v, want %v", x.Data, expected)
	}
}

func TestRotateAnticlockwiseSingle(t *testing.T) {
	x := blas32.General{Rows: 1, Cols: 1, Stride: 1, Data: []float32{42}}
	if err := tensor2d.RotateAnticlockwise(x); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if x.Data[0] != 42 {
		t.Errorf("got %v", x.Data)
	}

	if err := tensor2d.RotateAnticlockwise(tensor2d.NewZeros(0, 0)); err != nil {
		t.Errorf("empty: unexpected error: %v", err)
	}
}

func TestRotateAnticlockwiseInvalidShape(t *testing.T) {
	testCases := []struct {
		name string
		gen  blas32.General
	}{
		{"non-square", blas32.General{Rows: 2, Cols: 3, Stride: 3, Data: []float32{1, 2, 3, 4, 5, 6}}},
		{"short data", blas32.General{Rows: 2, Cols: 2, Stride: 2, Data: []float32{1, 2, 3}}},
		{"short stride", blas32.General{Rows: 2, Cols: 2, Stride: 1, Data: []float32{1, 2, 3, 4}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := slices.Clone(tc.gen.Data)
			err := tensor2d.RotateAnticlockwise(tc.gen)
			if !errors.Is(err, matrix2d.ErrInvalidShape) {
				t.Fatalf("got %v, want ErrInvalidShape", err)
			}
			if !slices.Equal(tc.gen.Data, before) {
				t.Errorf("data was modified: got %v, want %v", tc.gen.Data, before)
			}
		})
	}
}

func TestReverseRows(t *testing.T) {
	x := blas32.General{
		Rows:   2,
		Cols:   3,
		Stride: 3,
		Data: []float32{
			1, 2, 3,
			4, 5, 6,
		},
	}
	tensor2d.ReverseRows(x)
	expected := []float32{
		3, 2, 1,
		6, 5, 4,
	}
	if !slices.Equal(x.Data, expected) {
		t.Errorf("got %v, want %v", x.Data, expected)
	}
}

func TestTransposeInPlace(t *testing.T) {
	x := blas32.General{
		Rows:   3,
		Cols:   3,
		Stride: 3,
		Data: []float32{
			1, 2, 3,
			4, 5, 6,
			7, 8, 9,
		},
	}
	if err := tensor2d.TransposeInPlace(x); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := tensor2d.Transpose(blas32.General{
		Rows:   3,
		Cols:   3,
		Stride: 3,
		Data:   []float32{1, 2, 3, 4, 5, 6, 7, 8, 9},
	})
	if !slices.Equal(x.Data, expected.Data) {
		t.Errorf("got %v, want %v", x.Data, expected.Data)
	}
}

func TestFromRowsRagged(t *testing.T) {
	_, err := tensor2d.FromRows([][]float32{{1, 2}, {3}})
	var shapeErr *matrix2d.InvalidShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("got %v, want *InvalidShapeError", err)
	}
	if shapeErr.Row != 1 || shapeErr.Got != 1 || shapeErr.Want != 2 {
		t.Errorf("got %+v", shapeErr)
	}
}
