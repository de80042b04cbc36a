package matrix2d

import (
	"errors"
	"fmt"
)

// ErrInvalidShape is matched by every shape failure returned from this package.
var ErrInvalidShape = errors.New("matrix2d: invalid shape")

// InvalidShapeError reports the first row whose length breaks the square
// shape of a grid. Row is -1 when the row count itself is the problem.
type InvalidShapeError struct {
	Row  int
	Got  int
	Want int
}

func (e *InvalidShapeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("matrix2d: invalid shape: %d rows, want %d", e.Got, e.Want)
	}
	return fmt.Sprintf("matrix2d: invalid shape: row %d has %d elements, want %d", e.Row, e.Got, e.Want)
}

func (e *InvalidShapeError) Unwrap() error {
	return ErrInvalidShape
}
