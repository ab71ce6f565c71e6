package distance

import "math"

// SquaredL2 calculates the squared L2 (Euclidean) distance between two points.
// Assumes points are the same length (caller's responsibility).
func SquaredL2(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Euclidean calculates the Euclidean distance between two points.
// Assumes points are the same length (caller's responsibility).
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredL2(a, b))
}

// Compare returns a[dim] - b[dim].
// A positive value means a lies on the high side of b along dim.
func Compare(a, b []float64, dim int) float64 {
	return a[dim] - b[dim]
}
