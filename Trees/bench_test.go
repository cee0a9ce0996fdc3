package Trees

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const (
	size = 1 << 15
	iter = 10
)

func BenchmarkBSTree_Insert(b *testing.B) {
	var t *BSTree[int]
	for i := 0; i < b.N; i++ {
		t = new(BSTree[int])
		for _, j := range rand.Perm(size) {
			t.Insert(j)
		}
	}
	b.Log(averageDepth(t))
}

func BenchmarkBSTree_Delete(b *testing.B) {
	var t Tree[int]
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t = new(BSTree[int])
		for _, j := range rand.Perm(size) {
			t.Insert(j)
		}
		b.StartTimer()
		for j := 0; j < size; j++ {
			t.Delete(j)
		}
	}
}

func BenchmarkBSTree_Rebalance(b *testing.B) {
	t := new(BSTree[int])
	for j := range size / 8 {
		t.Insert(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Rebalance()
	}
}

func BenchmarkBuild(b *testing.B) {
	s := make([]int, size)
	for i := range s {
		s[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Build(s, false)
	}
}

func BenchmarkIter(b *testing.B) {
	t := new(BSTree[int])
	for _, j := range rand.Perm(size) {
		t.Insert(j)
	}
	for _, o := range Orders {
		b.Run(o.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				f := t.Iter(o)
				for _, ok := f(); ok; _, ok = f() {
				}
			}
		})
	}
}

// BenchmarkInsert compares random insertion with the ordered containers
// of other libraries.
func BenchmarkInsert(b *testing.B) {
	perm := rand.Perm(size)
	b.Run("BSTree", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var t BSTree[int]
			for _, j := range perm {
				t.Insert(j)
			}
		}
	})
	b.Run("btree", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			t := btree.NewOrderedG[int](32)
			for _, j := range perm {
				t.ReplaceOrInsert(j)
			}
		}
	})
	b.Run("llrb", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			t := llrb.New()
			for _, j := range perm {
				t.ReplaceOrInsert(llrb.Int(j))
			}
		}
	})
	b.Run("redblacktree", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			t := redblacktree.NewWithIntComparator()
			for _, j := range perm {
				t.Put(j, nil)
			}
		}
	})
}

var sideEff bool

// BenchmarkFind compares lookups, with a hash map as the unordered baseline.
func BenchmarkFind(b *testing.B) {
	perm := rand.Perm(size)
	tree := new(BSTree[int])
	bt := btree.NewOrderedG[int](32)
	lt := llrb.New()
	rbt := redblacktree.NewWithIntComparator()
	hm := haxmap.New[int, struct{}]()
	for _, j := range perm {
		tree.Insert(j)
		bt.ReplaceOrInsert(j)
		lt.ReplaceOrInsert(llrb.Int(j))
		rbt.Put(j, nil)
		hm.Set(j, struct{}{})
	}
	queries := rand.Perm(size * 2)
	b.Run("BSTree", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for _, q := range queries {
				sideEff = tree.Has(q)
			}
		}
	})
	b.Run("BSTree/rebalanced", func(b *testing.B) {
		bal := Build(tree.Keys(InOrder), false)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for _, q := range queries {
				sideEff = bal.Has(q)
			}
		}
	})
	b.Run("btree", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for _, q := range queries {
				sideEff = bt.Has(q)
			}
		}
	})
	b.Run("llrb", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for _, q := range queries {
				sideEff = lt.Has(llrb.Int(q))
			}
		}
	})
	b.Run("redblacktree", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for _, q := range queries {
				_, sideEff = rbt.Get(q)
			}
		}
	})
	b.Run("haxmap", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for _, q := range queries {
				_, sideEff = hm.Get(q)
			}
		}
	})
}

// BenchmarkMixed interleaves inserts and deletes, rebalancing every iter
// rounds.
func BenchmarkMixed(b *testing.B) {
	var t *BSTree[int]
	for i := 0; i < b.N; i++ {
		t = new(BSTree[int])
		for r := range iter * 2 {
			for j, k := range rand.Perm(size / iter) {
				if k&1 == 1 {
					t.Delete(j)
				} else {
					t.Insert(j + r)
				}
			}
			if r%iter == 0 {
				t.Rebalance()
			}
		}
	}
	b.Log(averageDepth(t))
}
