package kdgo

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"
)

// Search creates a new fluent search builder for the given query point.
//
// Example:
//
//	n, found, err := idx.Search(query).
//	    Filter(allowed).
//	    Execute(ctx)
func (ix *Index) Search(query Point) *SearchBuilder {
	return &SearchBuilder{
		ix:    ix,
		query: query,
	}
}

// SearchBuilder is a fluent builder for constructing a nearest-neighbor query.
type SearchBuilder struct {
	ix    *Index
	query Point
	opts  []SearchOption
}

// Filter restricts the answer to input indices set in allowed.
func (sb *SearchBuilder) Filter(allowed *roaring.Bitmap) *SearchBuilder {
	sb.opts = append(sb.opts, WithFilter(allowed))
	return sb
}

// WhereIndex restricts the answer to input indices fn accepts.
func (sb *SearchBuilder) WhereIndex(fn func(index int) bool) *SearchBuilder {
	sb.opts = append(sb.opts, WithFilterFunc(fn))
	return sb
}

// Execute runs the query.
func (sb *SearchBuilder) Execute(ctx context.Context) (Neighbor, bool, error) {
	return sb.ix.Nearest(ctx, sb.query, sb.opts...)
}

// MustExecute runs the query, panicking on error.
// Use this only in tests or when you're certain the query is valid.
func (sb *SearchBuilder) MustExecute(ctx context.Context) (Neighbor, bool) {
	n, found, err := sb.Execute(ctx)
	if err != nil {
		panic(err)
	}
	return n, found
}

// Exists reports whether any stored point passes the filters.
func (sb *SearchBuilder) Exists(ctx context.Context) (bool, error) {
	_, found, err := sb.Execute(ctx)
	return found, err
}
