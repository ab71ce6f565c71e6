// Package distance provides the point arithmetic used by the k-d tree.
//
// # Functions
//
//   - Euclidean: straight-line distance, the only metric an index answers with
//   - SquaredL2: squared Euclidean distance
//   - Compare: signed difference of two points on a single dimension
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	diff := distance.Compare(node, query, splitDim)
package distance
