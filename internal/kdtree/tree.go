package kdtree

import "github.com/hupe1980/kdgo/model"

// Node is a single tree node. Children are exclusively owned; a nil child is an
// absent subtree.
type Node struct {
	Point    model.Point
	Index    int // position of Point in the input slice
	SplitDim int // depth mod D
	Left     *Node
	Right    *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree is an immutable k-d tree.
type Tree struct {
	root *Node
	dim  int
	size int
}

// Dimension returns D, or 0 when the tree was built empty without an explicit dimension.
func (t *Tree) Dimension() int { return t.dim }

// Len returns the number of stored points.
func (t *Tree) Len() int { return t.size }

// Empty reports whether the tree holds no points.
func (t *Tree) Empty() bool { return t.root == nil }

// Height returns the number of levels; an empty tree has height 0.
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.Left), height(n.Right))
}

// Walk visits nodes in pre-order, passing each node's depth.
// Returning false from fn stops the walk below that node.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	walk(t.root, 0, fn)
}

func walk(n *Node, depth int, fn func(n *Node, depth int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	walk(n.Left, depth+1, fn)
	walk(n.Right, depth+1, fn)
}

// Levels returns copies of the stored points grouped by depth, root first,
// each level ordered left to right.
func (t *Tree) Levels() [][]model.Point {
	if t.root == nil {
		return nil
	}

	var levels [][]model.Point
	current := []*Node{t.root}
	for len(current) > 0 {
		level := make([]model.Point, 0, len(current))
		next := make([]*Node, 0, 2*len(current))
		for _, n := range current {
			level = append(level, n.Point.Clone())
			if n.Left != nil {
				next = append(next, n.Left)
			}
			if n.Right != nil {
				next = append(next, n.Right)
			}
		}
		levels = append(levels, level)
		current = next
	}
	return levels
}
