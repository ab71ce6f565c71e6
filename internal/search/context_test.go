package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContext_New(t *testing.T) {
	c := New([]float64{1, 2}, nil)

	assert.False(t, c.Found())
	assert.Equal(t, -1, c.BestIndex)
	assert.True(t, math.IsInf(c.BestDistance, 1))
	assert.Equal(t, 0, c.Visited)
}

func TestContext_Offer(t *testing.T) {
	c := New([]float64{0, 0}, nil)

	assert.True(t, c.Offer([]float64{3, 4}, 0, 5))
	assert.False(t, c.Offer([]float64{4, 3}, 1, 5), "ties keep the first visited point")
	assert.False(t, c.Offer([]float64{6, 8}, 2, 10))
	assert.True(t, c.Offer([]float64{1, 0}, 3, 1))

	assert.True(t, c.Found())
	assert.Equal(t, 3, c.BestIndex)
	assert.Equal(t, 1.0, c.BestDistance)
	assert.Equal(t, []float64{1, 0}, c.BestPoint)
	assert.Equal(t, 4, c.Visited)
}

func TestContext_Filter(t *testing.T) {
	even := func(index int) bool { return index%2 == 0 }
	c := New([]float64{0}, even)

	assert.False(t, c.Offer([]float64{1}, 1, 1))
	assert.False(t, c.Found())
	assert.True(t, c.Offer([]float64{2}, 2, 2))
	assert.Equal(t, 2, c.BestIndex)
	assert.Equal(t, 2, c.Visited)
}
