// Package Trees implements an ordered binary search tree over scalar keys.
package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Tree represents an ordered set of keys implemented using nodes.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, calling Minimum on an
// empty tree returns (x K, false), and x should not be used.
// Mutations never rebalance; balance is restored only by Rebalance.
type Tree[K constraints.Ordered] interface {
	//Insert k into the Tree. Returns true if a node was added, false if
	//k was already present.
	Insert(k K) bool
	//Delete k from the Tree. Returns true if a node was removed, false if
	//k was absent. Deleting an absent key is not an error.
	Delete(k K) bool
	//Find the node holding k.
	Find(k K) (*Node[K], bool)
	//Has element k.
	Has(k K) bool
	//Minimum element of the tree.
	Minimum() (K, bool)
	//Maximum element of the tree.
	Maximum() (K, bool)
	//Size of the tree.
	Size() int
	//Keys in the given traversal order.
	Keys(o Order) []K
	//Walk calls visit once per node in the given traversal order.
	Walk(o Order, visit func(*Node[K]))
	//Iter returns a closure f acting like an iterator over the nodes in
	//the given order. Calling f is like calling "Next()": n, valid=f().
	//n is meaningful only if valid is true. The tree must not be modified
	//while f is in use.
	Iter(o Order) func() (*Node[K], bool)
	//Balanced reports whether the height of the two subtrees of every node
	//differs by at most one.
	Balanced() bool
	//Rebalance rebuilds the tree into minimal height.
	Rebalance()
}

// InvalidSliceError is the panic value of Build when the slice is not
// strictly ascending. Prev and Next are the offending neighbours and
// Index is the position of Next.
type InvalidSliceError struct {
	Prev, Next any
	Index      int
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice is not strictly ascending at index %d: %v then %v", e.Index, e.Prev, e.Next)
}

// UnorderedKeyError reports a key that has no place in a total order,
// which for the Ordered types means a floating point NaN.
type UnorderedKeyError struct {
	Key   any
	Index int // position in the input, -1 for a single key.
}

func (e *UnorderedKeyError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("key %v is not totally ordered", e.Key)
	}
	return fmt.Sprintf("key %v at index %d is not totally ordered", e.Key, e.Index)
}

// unordered is true only for NaN.
func unordered[K constraints.Ordered](k K) bool {
	return k != k
}
