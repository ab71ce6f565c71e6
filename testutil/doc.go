// Package testutil provides testing utilities for kdgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random point sets and computing exact
// nearest neighbors by brute force.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(1000, 3)     // uniform [0, 1)
//	points = rng.GaussianPoints(1000, 3)     // standard normal
//	points = rng.GridPoints(1000, 2, 4)      // many ties and duplicates
//
// # Exact Search (Ground Truth)
//
//	want, ok := testutil.ExactNearest(points, query, nil)
package testutil
