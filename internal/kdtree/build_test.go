package kdtree

import (
	"math"
	"testing"

	"github.com/hupe1980/kdgo/model"
	"github.com/hupe1980/kdgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func examplePoints() []model.Point {
	return []model.Point{{2, 3}, {4, 7}, {5, 4}, {7, 4}, {8, 7}, {9, 1}}
}

// checkInvariants asserts split_dim == depth mod D and the ordering of both
// subtrees against every node on its split dimension.
func checkInvariants(t *testing.T, tr *Tree) {
	t.Helper()

	tr.Walk(func(n *Node, depth int) bool {
		require.Equal(t, depth%tr.Dimension(), n.SplitDim)
		v := n.Point[n.SplitDim]
		walk(n.Left, 0, func(c *Node, _ int) bool {
			require.LessOrEqual(t, c.Point[n.SplitDim], v)
			return true
		})
		walk(n.Right, 0, func(c *Node, _ int) bool {
			require.GreaterOrEqual(t, c.Point[n.SplitDim], v)
			return true
		})
		return true
	})
}

func TestBuild(t *testing.T) {
	t.Run("Example", func(t *testing.T) {
		tr, err := Build(examplePoints(), 0)
		require.NoError(t, err)

		assert.Equal(t, 2, tr.Dimension())
		assert.Equal(t, 6, tr.Len())
		assert.Equal(t, 3, tr.Height())
		assert.Equal(t, [][]model.Point{
			{{7, 4}},
			{{5, 4}, {8, 7}},
			{{2, 3}, {4, 7}, {9, 1}},
		}, tr.Levels())

		require.NotNil(t, tr.root)
		assert.Equal(t, 3, tr.root.Index)
		assert.Equal(t, 2, tr.root.Left.Index)
		assert.Equal(t, 4, tr.root.Right.Index)
		assert.Nil(t, tr.root.Right.Right)
		assert.True(t, tr.root.Right.Left.IsLeaf())

		checkInvariants(t, tr)
	})

	t.Run("Empty", func(t *testing.T) {
		tr, err := Build(nil, 0)
		require.NoError(t, err)

		assert.True(t, tr.Empty())
		assert.Equal(t, 0, tr.Len())
		assert.Equal(t, 0, tr.Height())
		assert.Equal(t, 0, tr.Dimension())
		assert.Nil(t, tr.Levels())
	})

	t.Run("EmptyWithDimension", func(t *testing.T) {
		tr, err := Build([]model.Point{}, 3)
		require.NoError(t, err)

		assert.True(t, tr.Empty())
		assert.Equal(t, 3, tr.Dimension())
	})

	t.Run("SinglePoint", func(t *testing.T) {
		tr, err := Build([]model.Point{{0, 0}}, 0)
		require.NoError(t, err)

		assert.Equal(t, 1, tr.Height())
		assert.True(t, tr.root.IsLeaf())
		assert.Equal(t, 0, tr.root.SplitDim)
	})

	t.Run("CopiesInput", func(t *testing.T) {
		points := examplePoints()
		tr, err := Build(points, 0)
		require.NoError(t, err)

		points[3][0] = 100
		points[0] = model.Point{-1, -1}

		assert.Equal(t, model.Point{7, 4}, tr.root.Point)
		assert.Equal(t, examplePoints(), sortedByIndex(tr))
	})

	t.Run("StableTieBreak", func(t *testing.T) {
		tr, err := Build([]model.Point{{1, 0}, {1, 1}, {1, 2}}, 0)
		require.NoError(t, err)

		assert.Equal(t, 1, tr.root.Index)
		assert.Equal(t, 0, tr.root.Left.Index)
		assert.Equal(t, 2, tr.root.Right.Index)

		// Equal keys keep input order, so reversing the input mirrors the tree.
		tr, err = Build([]model.Point{{1, 2}, {1, 1}, {1, 0}}, 0)
		require.NoError(t, err)

		assert.Equal(t, model.Point{1, 1}, tr.root.Point)
		assert.Equal(t, model.Point{1, 2}, tr.root.Left.Point)
		assert.Equal(t, model.Point{1, 0}, tr.root.Right.Point)
	})

	t.Run("Deterministic", func(t *testing.T) {
		points := testutil.NewRNG(7).GridPoints(200, 3, 4)

		a, err := Build(points, 0)
		require.NoError(t, err)
		b, err := Build(points, 0)
		require.NoError(t, err)

		assert.Equal(t, a.Levels(), b.Levels())
		checkInvariants(t, a)
	})

	t.Run("Balanced", func(t *testing.T) {
		points := testutil.NewRNG(42).UniformPoints(1023, 3)

		tr, err := Build(points, 0)
		require.NoError(t, err)

		assert.Equal(t, 10, tr.Height())
		checkInvariants(t, tr)
	})
}

func TestBuild_Errors(t *testing.T) {
	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := Build([]model.Point{{1, 2}, {1, 2, 3}}, 0)

		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 2, dm.Expected)
		assert.Equal(t, 3, dm.Actual)
		assert.Contains(t, err.Error(), "point 1")
	})

	t.Run("ExplicitDimensionMismatch", func(t *testing.T) {
		_, err := Build([]model.Point{{1, 2}}, 3)

		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 3, dm.Expected)
		assert.Equal(t, 2, dm.Actual)
	})

	t.Run("ZeroLengthPoint", func(t *testing.T) {
		_, err := Build([]model.Point{{}}, 0)

		var id *ErrInvalidDimension
		require.ErrorAs(t, err, &id)
		assert.Equal(t, 0, id.Dimension)
	})

	t.Run("NegativeDimension", func(t *testing.T) {
		_, err := Build(nil, -1)

		var id *ErrInvalidDimension
		require.ErrorAs(t, err, &id)
	})

	t.Run("NotFinite", func(t *testing.T) {
		_, err := Build([]model.Point{{1, 2}, {3, math.NaN()}}, 0)

		var ic *ErrInvalidCoordinate
		require.ErrorAs(t, err, &ic)
		assert.Equal(t, 1, ic.Index)
		assert.Equal(t, 1, ic.Dim)
	})
}

func sortedByIndex(tr *Tree) []model.Point {
	out := make([]model.Point, tr.Len())
	tr.Walk(func(n *Node, _ int) bool {
		out[n.Index] = n.Point
		return true
	})
	return out
}
