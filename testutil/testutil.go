package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/kdgo/distance"
	"github.com/hupe1980/kdgo/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformPoints generates random points with coordinates in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num int, dimensions int) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([]model.Point, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.Float64()
		}
		points[i] = p
	}

	return points
}

// GaussianPoints generates random points drawn from a standard normal distribution.
func (r *RNG) GaussianPoints(num int, dimensions int) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([]model.Point, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.NormFloat64()
		}
		points[i] = p
	}

	return points
}

// ClusteredPoints generates points scattered with Gaussian noise around random
// centroids in [0, 1)^dim. Useful for skewed, non-uniform inputs.
func (r *RNG) ClusteredPoints(num, dim, clusters int, spread float64) []model.Point {
	centroids := r.UniformPoints(clusters, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]model.Point, num)
	for i := range num {
		centroid := centroids[i%clusters]
		p := make(model.Point, dim)
		for j := range dim {
			p[j] = centroid[j] + r.rand.NormFloat64()*spread
		}
		points[i] = p
	}

	return points
}

// GridPoints generates points whose coordinates are integers in [0, side).
// With num close to side^dim the set is dense in exact ties and duplicates.
func (r *RNG) GridPoints(num, dim, side int) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]model.Point, num)
	for i := range num {
		p := make(model.Point, dim)
		for j := range dim {
			p[j] = float64(r.rand.Intn(side))
		}
		points[i] = p
	}

	return points
}

// ExactNearest scans points and returns the closest one to query.
//
// Among points at exactly the same distance the lowest input index wins.
// filter, when non-nil, restricts the candidates to the indices it accepts.
func ExactNearest(points []model.Point, query model.Point, filter func(index int) bool) (model.Neighbor, bool) {
	best := model.Neighbor{Index: -1, Distance: math.Inf(1)}
	for i, p := range points {
		if filter != nil && !filter(i) {
			continue
		}
		if d := distance.Euclidean(p, query); d < best.Distance {
			best = model.Neighbor{Point: p, Index: i, Distance: d}
		}
	}
	if best.Index < 0 {
		return model.Neighbor{}, false
	}
	return best, true
}

// MinDistanceIndices returns every input index whose point lies at exactly dist
// from query. It is used to accept any member of a tie.
func MinDistanceIndices(points []model.Point, query model.Point, dist float64) []int {
	var out []int
	for i, p := range points {
		if distance.Euclidean(p, query) == dist {
			out = append(out, i)
		}
	}
	return out
}
