// Package Render draws binary trees for people to read. It only needs a
// read-only view of each node and knows nothing about how the tree is
// stored or kept ordered.
package Render

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// View is the read-only face of a binary tree node. Left and Right are only
// called when the matching Has method returned true.
// *Trees.Node satisfies View.
type View[K any, N any] interface {
	Key() K
	HasLeft() bool
	HasRight() bool
	Left() N
	Right() N
}

// Pretty writes the tree rooted at root sideways: the right subtree above
// its parent, the left one below, one node per line.
//
//	│   ┌── 3
//	└── 2
//	    └── 1
//
// Returns the first write error.
func Pretty[K any, N View[K, N]](w io.Writer, root N) error {
	p := printer{w: w}
	pretty[K](&p, root, "", true)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(prefix, connector string, key any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, "%s%s%v\n", prefix, connector, key)
	}
}

func pretty[K any, N View[K, N]](p *printer, n N, prefix string, isLeft bool) {
	if n.HasRight() {
		next := prefix + "    "
		if isLeft {
			next = prefix + "│   "
		}
		pretty[K](p, n.Right(), next, false)
	}
	if isLeft {
		p.line(prefix, "└── ", n.Key())
	} else {
		p.line(prefix, "┌── ", n.Key())
	}
	if n.HasLeft() {
		next := prefix + "│   "
		if isLeft {
			next = prefix + "    "
		}
		pretty[K](p, n.Left(), next, true)
	}
}

// TreePrint renders root top down with treeprint, children listed left
// before right and tagged [L] or [R].
func TreePrint[K any, N View[K, N]](root N) string {
	t := treeprint.NewWithRoot(root.Key())
	branch[K](t, root)
	return t.String()
}

func branch[K any, N View[K, N]](t treeprint.Tree, n N) {
	if n.HasLeft() {
		add[K](t, "L", n.Left())
	}
	if n.HasRight() {
		add[K](t, "R", n.Right())
	}
}

func add[K any, N View[K, N]](t treeprint.Tree, side string, c N) {
	if !c.HasLeft() && !c.HasRight() {
		t.AddMetaNode(side, c.Key())
		return
	}
	branch[K](t.AddMetaBranch(side, c.Key()), c)
}
