package model

import (
	"fmt"
	"math"
	"slices"
)

// Point is an ordered sequence of coordinates.
// Once handed to an index a Point is treated as immutable.
type Point []float64

// Dims returns the number of coordinates in p.
func (p Point) Dims() int { return len(p) }

// Clone returns a copy of p that shares no memory with it.
func (p Point) Clone() Point {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}

// Equal reports whether p and q have the same coordinates.
func (p Point) Equal(q Point) bool {
	return slices.Equal(p, q)
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprint([]float64(p))
}

// IsFinite reports whether every coordinate of p is neither NaN nor ±Inf.
// The first offending dimension is returned when it is not.
func IsFinite(p Point) (int, bool) {
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i, false
		}
	}
	return -1, true
}

// CheckDimension reports whether p has exactly dim coordinates.
func CheckDimension(p Point, dim int) bool {
	return p.Dims() == dim
}

// Neighbor is the answer to a nearest-neighbor query.
type Neighbor struct {
	// Point is a copy of the stored point closest to the query.
	Point Point

	// Index is the position of Point in the slice the index was built from.
	Index int

	// Distance is the Euclidean distance between Point and the query.
	Distance float64
}

// String returns a string representation of the Neighbor.
func (n Neighbor) String() string {
	return fmt.Sprintf("Neighbor(%d %v d=%.4f)", n.Index, n.Point, n.Distance)
}
