// Package kdtree implements a static k-d tree with exact nearest-neighbor search.
//
// A tree is built once from a point set by recursively splitting on the median of
// a stable sort, rotating the split dimension with depth (depth mod D). After
// construction it is read-only and may serve any number of concurrent queries:
// every query owns its own search.Context and nothing is written back to the tree.
//
// # Search
//
// Nearest performs a depth-first descent toward the query's side of each
// splitting hyperplane, evaluates the node on the way back up and visits the
// opposite subtree only when the current best distance exceeds the distance to
// the hyperplane. Expected cost is O(log n) for well-spread data and O(n) in the
// worst case.
package kdtree
