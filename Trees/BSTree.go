package Trees

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no repeated keys. It holds the root
// pointer and the number of keys; a nil root means the tree is empty.
// Insert and Delete don't rebalance, so a run of skewed insertions can
// make the height D approach n. Rebalance rebuilds the tree to height
// floor(log2(n)).
// The zero value is an empty tree ready to use. BSTree is not safe for
// concurrent use.
type BSTree[K constraints.Ordered] struct {
	root *Node[K]
	size int
}

// New builds a balanced BSTree holding the distinct elements of keys.
// keys is not modified. It returns an *UnorderedKeyError, before building
// anything, if some key is NaN.
// Time: O(n log n)
func New[K constraints.Ordered](keys []K) (*BSTree[K], error) {
	for i, k := range keys {
		if unordered(k) {
			return nil, &UnorderedKeyError{k, i}
		}
	}
	s := slices.Clone(keys)
	slices.Sort(s)
	return Build(slices.Compact(s), false), nil
}

// Build builds a BSTree using the given sorted slice recursively, always
// picking the element at (len-1)/2 as the subtree root. Sibling subtrees
// then differ in size by at most one and the height is floor(log2(n)).
// The slice must be sorted in ascending order and mustn't contain
// duplicate elements.
// If safe==true, this function checks the conditions first and panics
// with InvalidSliceError (or *UnorderedKeyError for NaN) if they are
// broken. Otherwise it is up to the caller, and a bad slice gives a
// corrupt tree.
// Time: O(n).
func Build[K constraints.Ordered](sorted []K, safe bool) *BSTree[K] {
	if safe {
		for i, k := range sorted {
			if unordered(k) {
				panic(&UnorderedKeyError{k, i})
			}
			if i > 0 && !(sorted[i-1] < k) {
				panic(InvalidSliceError{sorted[i-1], k, i})
			}
		}
	}
	return &BSTree[K]{build(sorted), len(sorted)}
}

func build[K constraints.Ordered](s []K) *Node[K] {
	if len(s) == 0 {
		return nil
	}
	mid := (len(s) - 1) >> 1
	return &Node[K]{s[mid], build(s[:mid]), build(s[mid+1:])}
}

// Size returns the number of keys in the tree.
// Time: O(1); Space: O(1)
func (u *BSTree[K]) Size() int {
	return u.size
}

// Root of the tree, false when the tree is empty.
func (u *BSTree[K]) Root() (*Node[K], bool) {
	return u.root, u.root != nil
}

// insert the key k to the subtree rooting at cur recursively. cur is
// passed by reference. A successful insertion returns true. A failed insertion
// happens when k is already in u, in which case it returns false.
func (u *BSTree[K]) insert(curPtr **Node[K], k K) bool {
	if cur := *curPtr; cur == nil {
		*curPtr = &Node[K]{k: k}
		return true
	} else if k < cur.k {
		return u.insert(&cur.l, k)
	} else if k == cur.k {
		return false
	} else {
		return u.insert(&cur.r, k)
	}
}

// Insert [Tree.Insert]. Recursive.
// It is a wrapper for insert. Panics with *UnorderedKeyError if k is NaN.
// Time: O(D)
func (u *BSTree[K]) Insert(k K) bool {
	if unordered(k) {
		panic(&UnorderedKeyError{k, -1})
	}
	if u.insert(&u.root, k) {
		u.size++
		return true
	}
	return false
}

// remove the key k from the subtree rooting at cur recursively. cur is
// passed by reference. Returns false if k doesn't exist in u.
// A node with at most one child is spliced out and replaced by that child.
// A node with two children keeps its place and links: it takes the key of
// its in-order successor, the lowest node of the right subtree, and that
// key is then removed from the right subtree, where its node has no left
// child and so is spliced out.
// Time: O(D)
func (u *BSTree[K]) remove(curPtr **Node[K], k K) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	if k < cur.k {
		return u.remove(&cur.l, k)
	} else if k != cur.k {
		return u.remove(&cur.r, k)
	}
	if cur.l == nil {
		*curPtr = cur.r
	} else if cur.r == nil {
		*curPtr = cur.l
	} else {
		cur.k = lowest(cur.r).k
		return u.remove(&cur.r, cur.k)
	}
	return true
}

// Delete [Tree.Delete]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *BSTree[K]) Delete(k K) bool {
	if u.remove(&u.root, k) {
		u.size--
		return true
	}
	return false
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *BSTree[K]) Find(k K) (*Node[K], bool) {
	for cur := u.root; cur != nil; {
		if k < cur.k {
			cur = cur.l
		} else if k == cur.k {
			return cur, true
		} else {
			cur = cur.r
		}
	}
	return nil, false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[K]) Has(k K) bool {
	_, ok := u.Find(k)
	return ok
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[K]) Minimum() (K, bool) {
	if u.root == nil {
		return *new(K), false
	}
	return lowest(u.root).k, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[K]) Maximum() (K, bool) {
	if u.root == nil {
		return *new(K), false
	}
	return highest(u.root).k, true
}

// Height is the number of edges on the longest downward path from n to a
// leaf, so a leaf has height 0. Returns (0, false) for a nil n.
// Time: O(size of n's subtree)
func Height[K constraints.Ordered](n *Node[K]) (int, bool) {
	if n == nil {
		return 0, false
	}
	return height(n), true
}

// TreeHeight is Height of the root, (0, false) for an empty tree.
func (u *BSTree[K]) TreeHeight() (int, bool) {
	return Height(u.root)
}

// DepthFrom counts the edges from the node from down to a node holding the
// key of n, descending by key comparison. Returns (0, false) if either is
// nil or the key isn't reachable from from.
// Time: O(D); Space: O(1)
func DepthFrom[K constraints.Ordered](from, n *Node[K]) (int, bool) {
	if n == nil {
		return 0, false
	}
	d := 0
	for cur := from; cur != nil; d++ {
		if n.k < cur.k {
			cur = cur.l
		} else if n.k == cur.k {
			return d, true
		} else {
			cur = cur.r
		}
	}
	return 0, false
}

// Depth is DepthFrom the root of u.
func (u *BSTree[K]) Depth(n *Node[K]) (int, bool) {
	return DepthFrom(u.root, n)
}

// Balanced [Tree.Balanced]. An empty tree is balanced. Recursive.
// Time: O(n)
func (u *BSTree[K]) Balanced() bool {
	b, _ := balanced(u.root)
	return b
}

// Rebalance [Tree.Rebalance]. The in-order keys are already sorted, so the
// whole tree is dropped and rebuilt from them with Build. Calling it on a
// tree that came out of Build or Rebalance gives the same shape again.
// Time: O(n); Space: O(n)
func (u *BSTree[K]) Rebalance() {
	u.root = build(u.Keys(InOrder))
}
