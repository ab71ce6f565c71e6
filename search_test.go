package kdgo

import (
	"context"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchBuilder(t *testing.T) {
	ctx := context.Background()
	idx, err := Build(ctx, examplePoints())
	require.NoError(t, err)

	t.Run("Execute", func(t *testing.T) {
		n, found, err := idx.Search(Point{3, 4.5}).Execute(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, Point{2, 3}, n.Point)
	})

	t.Run("Filters", func(t *testing.T) {
		n, found := idx.Search(Point{3, 4.5}).
			Filter(roaring.BitmapOf(1, 2, 3)).
			WhereIndex(func(i int) bool { return i != 2 }).
			MustExecute(ctx)

		require.True(t, found)
		assert.Equal(t, Point{4, 7}, n.Point)
		assert.Equal(t, 1, n.Index)
	})

	t.Run("Exists", func(t *testing.T) {
		ok, err := idx.Search(Point{0, 0}).Filter(roaring.BitmapOf(5)).Exists(ctx)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = idx.Search(Point{0, 0}).Filter(roaring.BitmapOf(99)).Exists(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("MustExecutePanics", func(t *testing.T) {
		assert.Panics(t, func() {
			idx.Search(Point{1}).MustExecute(ctx)
		})
	})
}
