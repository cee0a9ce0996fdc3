package Trees

import "golang.org/x/exp/constraints"

// Node is a node in the BSTree.
// A node exclusively owns its children; there are no parent links.
// Callers only get read access through the exported methods.
type Node[K constraints.Ordered] struct {
	k    K
	l, r *Node[K]
}

// Key stored at n.
func (n *Node[K]) Key() K {
	return n.k
}

// Left child of n, nil if absent.
func (n *Node[K]) Left() *Node[K] {
	return n.l
}

// Right child of n, nil if absent.
func (n *Node[K]) Right() *Node[K] {
	return n.r
}

func (n *Node[K]) HasLeft() bool {
	return n.l != nil
}

func (n *Node[K]) HasRight() bool {
	return n.r != nil
}

// Children returns how many of the two child slots are occupied.
func (n *Node[K]) Children() int {
	c := 0
	if n.l != nil {
		c++
	}
	if n.r != nil {
		c++
	}
	return c
}

// lowest follows left children from n until there are none.
// n must not be nil.
// Time: O(D); Space: O(1)
func lowest[K constraints.Ordered](n *Node[K]) *Node[K] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// highest is the mirror of lowest.
func highest[K constraints.Ordered](n *Node[K]) *Node[K] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// height of the subtree rooted at n in edges, with an empty subtree
// counted as -1 so that a leaf is 0.
// Recursive. Time: O(n)
func height[K constraints.Ordered](n *Node[K]) int {
	if n == nil {
		return -1
	}
	return max(height(n.l), height(n.r)) + 1
}

// balanced reports whether every node under n has subtrees whose heights
// differ by at most one, together with the height of n.
// Recursive. Time: O(n)
func balanced[K constraints.Ordered](n *Node[K]) (bool, int) {
	if n == nil {
		return true, -1
	}
	lb, lh := balanced(n.l)
	if !lb {
		return false, 0
	}
	rb, rh := balanced(n.r)
	if !rb {
		return false, 0
	}
	if d := lh - rh; d > 1 || d < -1 {
		return false, 0
	}
	return true, max(lh, rh) + 1
}
