package kdtree

import "fmt"

// ErrDimensionMismatch is returned when a point or query does not have the
// tree's dimensionality.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

// Error returns the error message for dimension mismatch
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension is returned for a dimensionality that cannot describe a point.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrInvalidCoordinate is returned when a point or query holds NaN or ±Inf.
// Index is the input position of the point, or -1 for a query.
type ErrInvalidCoordinate struct {
	Index int
	Dim   int
}

func (e *ErrInvalidCoordinate) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid coordinate: query dimension %d is not finite", e.Dim)
	}
	return fmt.Sprintf("invalid coordinate: point %d dimension %d is not finite", e.Index, e.Dim)
}
