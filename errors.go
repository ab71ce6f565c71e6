package kdgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kdgo/internal/kdtree"
)

var (
	// ErrInvalidConcurrency is returned when the batch concurrency is not positive.
	ErrInvalidConcurrency = errors.New("concurrency must be positive")
)

// ErrDimensionMismatch indicates a point/query dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidDimension indicates an invalid configured or inferred dimension.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }

// ErrInvalidCoordinate indicates a NaN or infinite coordinate.
// Index is the input position of the offending point, or -1 for a query.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidCoordinate struct {
	Index int
	Dim   int
	cause error
}

func (e *ErrInvalidCoordinate) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid coordinate in query dimension %d", e.Dim)
	}
	return fmt.Sprintf("invalid coordinate in point %d dimension %d", e.Index, e.Dim)
}

func (e *ErrInvalidCoordinate) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var dm *kdtree.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	var id *kdtree.ErrInvalidDimension
	if errors.As(err, &id) {
		return &ErrInvalidDimension{Dimension: id.Dimension, cause: err}
	}
	var ic *kdtree.ErrInvalidCoordinate
	if errors.As(err, &ic) {
		return &ErrInvalidCoordinate{Index: ic.Index, Dim: ic.Dim, cause: err}
	}

	return err
}
