// Package search holds the per-query state of a nearest-neighbor traversal.
package search

import "math"

// Context is the mutable state of exactly one nearest-neighbor query.
// It is created at the start of a query, threaded through the traversal by
// pointer and discarded when the query returns. Nothing in it is ever stored
// on the tree.
//
// Context is NOT thread-safe. It is owned by a single goroutine during a query.
type Context struct {
	// Query is the point being searched for.
	Query []float64

	// Filter restricts which stored points may become the best match.
	// Nil admits every point.
	Filter func(index int) bool

	// BestPoint is the closest eligible point seen so far, nil until one is found.
	BestPoint []float64

	// BestIndex is the input index of BestPoint, -1 until one is found.
	BestIndex int

	// BestDistance is the Euclidean distance to BestPoint, +Inf until one is found.
	BestDistance float64

	// Visited counts the nodes whose distance was evaluated.
	Visited int
}

// New returns a fresh Context for query.
func New(query []float64, filter func(index int) bool) Context {
	return Context{
		Query:        query,
		Filter:       filter,
		BestIndex:    -1,
		BestDistance: math.Inf(1),
	}
}

// Offer records a visit to point and makes it the best match when it is
// eligible and strictly closer than the current best. Ties keep the earlier
// visited point. It reports whether the best match changed.
func (c *Context) Offer(point []float64, index int, dist float64) bool {
	c.Visited++
	if dist >= c.BestDistance {
		return false
	}
	if c.Filter != nil && !c.Filter(index) {
		return false
	}
	c.BestPoint = point
	c.BestIndex = index
	c.BestDistance = dist
	return true
}

// Found reports whether an eligible point has been recorded.
func (c *Context) Found() bool {
	return c.BestPoint != nil
}
