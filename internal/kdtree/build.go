package kdtree

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/hupe1980/kdgo/model"
)

type entry struct {
	point model.Point
	index int
}

// Build constructs a tree from points.
//
// dim fixes the dimensionality; 0 infers it from the first point. An empty
// input yields an empty tree. Points are copied, so callers may reuse the
// input afterwards.
func Build(points []model.Point, dim int) (*Tree, error) {
	if dim < 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	if len(points) == 0 {
		return &Tree{dim: dim}, nil
	}
	if dim == 0 {
		dim = len(points[0])
		if dim == 0 {
			return nil, &ErrInvalidDimension{Dimension: dim}
		}
	}

	entries := make([]entry, len(points))
	for i, p := range points {
		if !model.CheckDimension(p, dim) {
			return nil, fmt.Errorf("point %d: %w", i, &ErrDimensionMismatch{Expected: dim, Actual: len(p)})
		}
		if d, ok := model.IsFinite(p); !ok {
			return nil, &ErrInvalidCoordinate{Index: i, Dim: d}
		}
		entries[i] = entry{point: p.Clone(), index: i}
	}

	return &Tree{
		root: build(entries, 0, dim),
		dim:  dim,
		size: len(points),
	}, nil
}

// build sorts entries in place on splitDim and recurses on both halves of the
// median. The sort must be stable so equal coordinates keep their relative
// order from the parent level.
func build(entries []entry, splitDim, dim int) *Node {
	if len(entries) == 0 {
		return nil
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.point[splitDim], b.point[splitDim])
	})

	mid := len(entries) / 2
	next := (splitDim + 1) % dim

	return &Node{
		Point:    entries[mid].point,
		Index:    entries[mid].index,
		SplitDim: splitDim,
		Left:     build(entries[:mid], next, dim),
		Right:    build(entries[mid+1:], next, dim),
	}
}
