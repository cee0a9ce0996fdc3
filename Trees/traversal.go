package Trees

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/bstree/Queues"
	"golang.org/x/exp/constraints"
)

// Order is a traversal order.
type Order uint8

const (
	InOrder    Order = iota // left, node, right; ascending keys.
	PreOrder                // node, left, right.
	PostOrder               // left, right, node.
	LevelOrder              // by increasing depth, left to right within a depth.
)

// Orders lists every Order.
var Orders = [...]Order{InOrder, PreOrder, PostOrder, LevelOrder}

var orderNames = [...]string{"inorder", "preorder", "postorder", "levelorder"}

func (o Order) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return fmt.Sprintf("Order(%d)", uint8(o))
}

// ParseOrder is the inverse of Order.String. "in", "pre", "post" and
// "level" are accepted as well.
func ParseOrder(s string) (Order, error) {
	for i, n := range orderNames {
		if s == n || s+"order" == n {
			return Order(i), nil
		}
	}
	return 0, fmt.Errorf("unknown traversal order %q", s)
}

func (o Order) check() {
	if o > LevelOrder {
		panic(fmt.Sprintf("Trees: unknown traversal order %d", uint8(o)))
	}
}

// Keys [Tree.Keys]. An empty tree gives an empty, non-nil slice.
// Time: O(n)
func (u *BSTree[K]) Keys(o Order) []K {
	ks := make([]K, 0, u.size)
	u.Walk(o, func(n *Node[K]) {
		ks = append(ks, n.k)
	})
	return ks
}

// Walk [Tree.Walk]. The depth first orders are recursive; LevelOrder uses
// a queue seeded with the root. visit must not modify the tree.
// Time: O(n)
func (u *BSTree[K]) Walk(o Order, visit func(*Node[K])) {
	o.check()
	if u.root == nil {
		return
	}
	switch o {
	case InOrder:
		walkIn(u.root, visit)
	case PreOrder:
		walkPre(u.root, visit)
	case PostOrder:
		walkPost(u.root, visit)
	case LevelOrder:
		q := Queues.MakeArrayQueueOf(u.root)
		for !q.Empty() {
			n, _ := q.Pop()
			visit(n)
			pushChildren[K](q, n)
		}
	}
}

func walkIn[K constraints.Ordered](n *Node[K], visit func(*Node[K])) {
	if n.l != nil {
		walkIn(n.l, visit)
	}
	visit(n)
	if n.r != nil {
		walkIn(n.r, visit)
	}
}

func walkPre[K constraints.Ordered](n *Node[K], visit func(*Node[K])) {
	visit(n)
	if n.l != nil {
		walkPre(n.l, visit)
	}
	if n.r != nil {
		walkPre(n.r, visit)
	}
}

func walkPost[K constraints.Ordered](n *Node[K], visit func(*Node[K])) {
	if n.l != nil {
		walkPost(n.l, visit)
	}
	if n.r != nil {
		walkPost(n.r, visit)
	}
	visit(n)
}

// pushChildren of n onto q, left then right, skipping absent ones.
func pushChildren[K constraints.Ordered](q Queues.Queue[*Node[K]], n *Node[K]) {
	if n.l != nil {
		q.Push(n.l)
	}
	if n.r != nil {
		q.Push(n.r)
	}
}

// levelRec visits the front of q, queues its children and recurses on the
// same queue until it is drained. The recursion depth is the number of
// nodes drained.
func levelRec[K constraints.Ordered](q Queues.Queue[*Node[K]], visit func(*Node[K])) {
	n, err := q.Pop()
	if err != nil {
		return
	}
	visit(n)
	pushChildren[K](q, n)
	levelRec[K](q, visit)
}

// WalkLevelRec is Walk(LevelOrder, visit) with the queue carried through
// recursive calls instead of a loop. It visits in the same order.
func (u *BSTree[K]) WalkLevelRec(visit func(*Node[K])) {
	if u.root == nil {
		return
	}
	levelRec[K](Queues.MakeArrayQueueOf(u.root), visit)
}

// LevelOrderRec collects the keys of WalkLevelRec.
func (u *BSTree[K]) LevelOrderRec() []K {
	ks := make([]K, 0, u.size)
	u.WalkLevelRec(func(n *Node[K]) {
		ks = append(ks, n.k)
	})
	return ks
}

// Iter [Tree.Iter]. The depth first orders keep an explicit stack of at
// most D+1 nodes; LevelOrder keeps a queue of at most one level.
// Time: f(): amortized O(1) at each call to the returned function.
func (u *BSTree[K]) Iter(o Order) func() (*Node[K], bool) {
	o.check()
	switch o {
	case PreOrder:
		return u.preIter()
	case PostOrder:
		return u.postIter()
	case LevelOrder:
		return u.levelIter()
	default:
		return u.inIter()
	}
}

func (u *BSTree[K]) inIter() func() (*Node[K], bool) {
	st := arraystack.New()
	pushLeft := func(n *Node[K]) {
		for ; n != nil; n = n.l {
			st.Push(n)
		}
	}
	pushLeft(u.root)
	return func() (*Node[K], bool) {
		v, ok := st.Pop()
		if !ok {
			return nil, false
		}
		n := v.(*Node[K])
		pushLeft(n.r)
		return n, true
	}
}

func (u *BSTree[K]) preIter() func() (*Node[K], bool) {
	st := arraystack.New()
	if u.root != nil {
		st.Push(u.root)
	}
	return func() (*Node[K], bool) {
		v, ok := st.Pop()
		if !ok {
			return nil, false
		}
		n := v.(*Node[K])
		if n.r != nil {
			st.Push(n.r)
		}
		if n.l != nil {
			st.Push(n.l)
		}
		return n, true
	}
}

// postIter descends left pushing nodes; a node on top of the stack is
// emitted once its right subtree is absent or was the last one emitted.
func (u *BSTree[K]) postIter() func() (*Node[K], bool) {
	st := arraystack.New()
	cur := u.root
	var last *Node[K]
	return func() (*Node[K], bool) {
		for {
			for ; cur != nil; cur = cur.l {
				st.Push(cur)
			}
			v, ok := st.Peek()
			if !ok {
				return nil, false
			}
			n := v.(*Node[K])
			if n.r != nil && n.r != last {
				cur = n.r
				continue
			}
			st.Pop()
			last = n
			return n, true
		}
	}
}

func (u *BSTree[K]) levelIter() func() (*Node[K], bool) {
	q := Queues.MakeArrayQueue[*Node[K]](0)
	if u.root != nil {
		q.Push(u.root)
	}
	return func() (*Node[K], bool) {
		n, err := q.Pop()
		if err != nil {
			return nil, false
		}
		pushChildren[K](q, n)
		return n, true
	}
}
