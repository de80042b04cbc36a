// Package matrix2d rotates and transposes grids stored as slices of rows.
//
// The in-place functions take the grid by value, but a slice header shares its
// backing arrays with the caller, so the caller's rows are rearranged directly.
// The caller keeps ownership and must not touch the grid from another
// goroutine while a call is running.
package matrix2d

import (
	"golang.org/x/exp/slices"
)

// ValidateSquare returns an *InvalidShapeError unless every row of ss has
// exactly len(ss) elements. An empty grid is square.
func ValidateSquare[Ss ~[]S, S ~[]E, E any](ss Ss) error {
	n := len(ss)
	for i, s := range ss {
		if len(s) != n {
			return &InvalidShapeError{Row: i, Got: len(s), Want: n}
		}
	}
	return nil
}

// ReverseRows reverses the order of the elements of every row in place.
// Rows may have different lengths.
func ReverseRows[Ss ~[]S, S ~[]E, E any](ss Ss) {
	for _, s := range ss {
		for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
			s[l], s[r] = s[r], s[l]
		}
	}
}

// TransposeInPlace reflects a square grid across its main diagonal.
// Diagonal elements stay where they are.
func TransposeInPlace[Ss ~[]S, S ~[]E, E any](ss Ss) error {
	if err := ValidateSquare(ss); err != nil {
		return err
	}
	transpose(ss)
	return nil
}

func transpose[Ss ~[]S, S ~[]E, E any](ss Ss) {
	n := len(ss)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ss[i][j], ss[j][i] = ss[j][i], ss[i][j]
		}
	}
}

// RotateAnticlockwise turns a square grid a quarter turn anticlockwise in
// place: the element at (i, j) moves to (n-1-j, i).
//
// Each row is reversed and the result is transposed, so no second grid is
// allocated. The shape is checked before anything moves; on error ss is
// unchanged.
func RotateAnticlockwise[Ss ~[]S, S ~[]E, E any](ss Ss) error {
	if err := ValidateSquare(ss); err != nil {
		return err
	}
	ReverseRows(ss)
	transpose(ss)
	return nil
}

// MustRotateAnticlockwise is RotateAnticlockwise for grids known to be square.
func MustRotateAnticlockwise[Ss ~[]S, S ~[]E, E any](ss Ss) {
	if err := RotateAnticlockwise(ss); err != nil {
		panic(err)
	}
}

// RotateClockwise turns a square grid a quarter turn clockwise in place:
// the element at (i, j) moves to (j, n-1-i).
func RotateClockwise[Ss ~[]S, S ~[]E, E any](ss Ss) error {
	if err := ValidateSquare(ss); err != nil {
		return err
	}
	transpose(ss)
	ReverseRows(ss)
	return nil
}

// RotateAnticlockwiseN applies turns anticlockwise quarter turns in place.
// Negative turns rotate clockwise. The count is taken mod 4, so a half turn
// is done as two quarter turns and three quarter turns as one clockwise turn.
func RotateAnticlockwiseN[Ss ~[]S, S ~[]E, E any](ss Ss, turns int) error {
	if err := ValidateSquare(ss); err != nil {
		return err
	}
	switch ((turns % 4) + 4) % 4 {
	case 1:
		ReverseRows(ss)
		transpose(ss)
	case 2:
		// half turn: reverse the rows, then reverse their order
		ReverseRows(ss)
		for l, r := 0, len(ss)-1; l < r; l, r = l+1, r-1 {
			ss[l], ss[r] = ss[r], ss[l]
		}
	case 3:
		transpose(ss)
		ReverseRows(ss)
	}
	return nil
}

// Rotate90 returns a new grid holding ss turned a quarter turn clockwise.
// ss may be rectangular and is not modified.
func Rotate90[Ss ~[]S, S ~[]E, E any](ss Ss) Ss {
	if len(ss) == 0 {
		return Ss{}
	}
	m := len(ss)
	n := len(ss[0])
	rotated := make(Ss, n)
	for i := range rotated {
		rotated[i] = make(S, m)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			rotated[j][m-1-i] = ss[i][j]
		}
	}
	return rotated
}

func Rotate180[Ss ~[]S, S ~[]E, E any](ss Ss) Ss {
	return Rotate90(Rotate90(ss))
}

func Rotate270[Ss ~[]S, S ~[]E, E any](ss Ss) Ss {
	return Rotate90(Rotate180(ss))
}

// Clone returns a deep copy of ss whose rows share nothing with it.
func Clone[Ss ~[]S, S ~[]E, E any](ss Ss) Ss {
	if ss == nil {
		return nil
	}
	c := make(Ss, len(ss))
	for i, s := range ss {
		c[i] = slices.Clone[S, E](s)
	}
	return c
}

// EqualFunc reports whether a and b have the same shape and eq holds for
// every pair of elements at the same position.
func EqualFunc[Ss1 ~[]S1, S1 ~[]E1, Ss2 ~[]S2, S2 ~[]E2, E1, E2 any](a Ss1, b Ss2, eq func(E1, E2) bool) bool {
	return slices.EqualFunc([]S1(a), []S2(b), func(s1 S1, s2 S2) bool {
		return slices.EqualFunc([]E1(s1), []E2(s2), eq)
	})
}
