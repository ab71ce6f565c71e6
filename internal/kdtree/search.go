package kdtree

import (
	"math"

	"github.com/hupe1980/kdgo/distance"
	"github.com/hupe1980/kdgo/internal/search"
	"github.com/hupe1980/kdgo/model"
)

// Stats describes the work done by one query.
type Stats struct {
	// Visited is the number of nodes whose distance to the query was computed.
	Visited int
}

// Nearest returns the stored point closest to query.
//
// filter, when non-nil, restricts the answer to points whose input index it
// accepts. found is false when the tree is empty or no point passes the filter.
// A tree built empty without an explicit dimension accepts queries of any length.
func (t *Tree) Nearest(query model.Point, filter func(index int) bool) (n model.Neighbor, stats Stats, found bool, err error) {
	if t.root == nil && t.dim == 0 {
		return model.Neighbor{}, Stats{}, false, nil
	}
	if !model.CheckDimension(query, t.dim) {
		return model.Neighbor{}, Stats{}, false, &ErrDimensionMismatch{Expected: t.dim, Actual: len(query)}
	}
	if d, ok := model.IsFinite(query); !ok {
		return model.Neighbor{}, Stats{}, false, &ErrInvalidCoordinate{Index: -1, Dim: d}
	}
	if t.root == nil {
		return model.Neighbor{}, Stats{}, false, nil
	}

	sc := search.New(query, filter)
	nearest(t.root, &sc)

	stats = Stats{Visited: sc.Visited}
	if !sc.Found() {
		return model.Neighbor{}, stats, false, nil
	}

	return model.Neighbor{
		Point:    model.Point(sc.BestPoint).Clone(),
		Index:    sc.BestIndex,
		Distance: sc.BestDistance,
	}, stats, true, nil
}

func nearest(n *Node, sc *search.Context) {
	if n == nil {
		return
	}

	// diff == 0 descends right first.
	diff := distance.Compare(n.Point, sc.Query, n.SplitDim)
	near, far := n.Right, n.Left
	if diff > 0 {
		near, far = n.Left, n.Right
	}

	nearest(near, sc)

	sc.Offer(n.Point, n.Index, distance.Euclidean(n.Point, sc.Query))

	// The far side can only hold a closer point if the hyperplane is nearer
	// than the current best.
	if sc.BestDistance > math.Abs(diff) {
		nearest(far, sc)
	}
}
