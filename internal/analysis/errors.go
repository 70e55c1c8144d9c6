package analysis

import (
	"errors"
	"fmt"
)

// Domain errors for sweep operations.
var (
	// ErrShapeMismatch indicates an output matrix whose shape does not match
	// the r values and the stable-output buffer.
	ErrShapeMismatch = errors.New("analysis: output matrix shape mismatch")

	// ErrNegativeTransient indicates a negative transient iteration count.
	ErrNegativeTransient = errors.New("analysis: negative transient iteration count")

	// ErrNilMatrix indicates a sweep was started without an output matrix.
	ErrNilMatrix = errors.New("analysis: nil output matrix")
)

// ShapeError records the shape a sweep expected and the one it was given.
type ShapeError struct {
	WantRows, WantCols int
	GotRows, GotCols   int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: want %dx%d, got %dx%d",
		ErrShapeMismatch, e.WantRows, e.WantCols, e.GotRows, e.GotCols)
}

func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

func checkShape(rows, cols int, stored *Matrix) error {
	if stored == nil {
		return ErrNilMatrix
	}
	if stored.Rows() != rows || stored.Cols() != cols {
		return &ShapeError{
			WantRows: rows,
			WantCols: cols,
			GotRows:  stored.Rows(),
			GotCols:  stored.Cols(),
		}
	}
	return nil
}
