package Trees

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	Go_Ordered "github.com/g-m-twostay/go-ordered"
)

// checkRB verifies the red-black invariants: black root, no red node with a
// red child, equal black count on every root-to-absent-descendant path.
func checkRB[T any](t *testing.T, u *RBT[T]) {
	t.Helper()
	if isRed(u.root) {
		t.Error("root is red")
	}
	var bh func(*node[T]) int
	bh = func(n *node[T]) int {
		if n == nil {
			return 1
		}
		if n.red && (isRed(n.c[dL]) || isRed(n.c[dR])) {
			t.Errorf("red node %v has a red child", n.v)
		}
		l, r := bh(n.c[dL]), bh(n.c[dR])
		if l != r {
			t.Errorf("black heights under %v differ: %d vs %d", n.v, l, r)
		}
		if n.red {
			return l
		}
		return l + 1
	}
	bh(u.root)
	checkLinks(t, &u.base)
}

// colorPattern flattens shape and colors into one preorder sequence; absent
// children are marked so that equal patterns imply identical trees.
func colorPattern[T any](u *RBT[T]) []int8 {
	var s []int8
	var walk func(*node[T])
	walk = func(n *node[T]) {
		if n == nil {
			s = append(s, -1)
			return
		}
		if n.red {
			s = append(s, 1)
		} else {
			s = append(s, 0)
		}
		walk(n.c[dL])
		walk(n.c[dR])
	}
	walk(u.root)
	return s
}

func TestRBT_InsertFindRemove(t *testing.T) {
	tree := RBTFromOrdered([]int{3, 10, 13, 4, 6, 7, 1, 14})
	if got, want := collect(tree.InOrder()), []int{1, 3, 4, 6, 7, 10, 13, 14}; !slices.Equal(got, want) {
		t.Errorf("in-order = %v, want %v", got, want)
	}
	if v, ok := tree.Min(); !ok || v != 1 {
		t.Errorf("min = %d", v)
	}
	if v, ok := tree.Max(); !ok || v != 14 {
		t.Errorf("max = %d", v)
	}
	if _, ok := tree.Get(42); ok {
		t.Error("found 42")
	}
	if v, ok := tree.Get(7); !ok || v != 7 {
		t.Error("did not find 7")
	}
	if tree.Remove(42) {
		t.Error("removed absent 42")
	}
	if !tree.Remove(7) {
		t.Error("failed to remove 7")
	}
	if got, want := collect(tree.InOrder()), []int{1, 3, 4, 6, 10, 13, 14}; !slices.Equal(got, want) {
		t.Errorf("in-order after removal = %v, want %v", got, want)
	}
	checkRB(t, tree)
}

func TestRBT_Descend(t *testing.T) {
	tree := RBTFrom([]int{3, 10, 13, 4, 6, 7, 1, 14}, Go_Ordered.Descend[int])
	if got, want := collect(tree.InOrder()), []int{14, 13, 10, 7, 6, 4, 3, 1}; !slices.Equal(got, want) {
		t.Errorf("in-order = %v, want %v", got, want)
	}
	if v, _ := tree.Min(); v != 14 {
		t.Errorf("min = %d", v)
	}
	if v, _ := tree.Max(); v != 1 {
		t.Errorf("max = %d", v)
	}
	checkRB(t, tree)
}

func TestRBT_InsertRebalance(t *testing.T) {
	tree := RBTFromOrdered([]int{8, 4, 10, 0, 6, 11, -2, 2})
	if got, want := collect(tree.PreOrder()), []int{8, 4, 0, -2, 2, 6, 10, 11}; !slices.Equal(got, want) {
		t.Fatalf("pre-order = %v, want %v", got, want)
	}
	tree.Insert(-3)
	if got, want := collect(tree.PreOrder()), []int{4, 0, -2, -3, 2, 8, 6, 10, 11}; !slices.Equal(got, want) {
		t.Errorf("pre-order after insert = %v, want %v", got, want)
	}
	if got, want := collect(tree.LevelOrder()), []int{4, 0, 8, -2, 2, 6, 10, -3, 11}; !slices.Equal(got, want) {
		t.Errorf("level-order after insert = %v, want %v", got, want)
	}
	checkRB(t, tree)
}

func TestRBT_RemoveRoot(t *testing.T) {
	tree := RBTFromOrdered([]int{0, -1, 1})
	if got, want := collect(tree.PreOrder()), []int{0, -1, 1}; !slices.Equal(got, want) {
		t.Fatalf("pre-order = %v, want %v", got, want)
	}
	if !tree.Remove(0) {
		t.Fatal("failed to remove the root")
	}
	if got, want := collect(tree.PreOrder()), []int{1, -1}; !slices.Equal(got, want) {
		t.Errorf("pre-order after removal = %v, want %v", got, want)
	}
	checkRB(t, tree)
}

func TestRBT_CompositeCmp(t *testing.T) {
	byLenThenLex := func(a, b string) int {
		if c := Go_Ordered.Ascend(len(a), len(b)); c != 0 {
			return c
		}
		return Go_Ordered.Ascend(a, b)
	}
	tree := RBTFrom([]string{"truck", "car", "helicopter", "tank", "train", "suv", "semi", "van"}, byLenThenLex)
	want := []string{"car", "suv", "van", "semi", "tank", "train", "truck", "helicopter"}
	if got := collect(tree.InOrder()); !slices.Equal(got, want) {
		t.Errorf("in-order = %v, want %v", got, want)
	}
	if !tree.Remove("tank") {
		t.Error("failed to remove tank")
	}
	want = []string{"car", "suv", "van", "semi", "train", "truck", "helicopter"}
	if got := collect(tree.InOrder()); !slices.Equal(got, want) {
		t.Errorf("in-order after removal = %v, want %v", got, want)
	}
	checkRB(t, tree)
}

func TestRBT_Random(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	tree := NewOrderedRBT[int]()
	content := make(map[int]struct{})
	for range tAddN {
		b := r.Intn(tAddValRange)
		_, in := content[b]
		if tree.Insert(b) == in {
			t.Fatalf("insert of %v returned %v", b, in)
		}
		content[b] = struct{}{}
	}
	checkRB(t, tree)
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if h, n := float64(tree.Height()), float64(tree.Size()); h > 2*math.Log2(n+1) {
		t.Errorf("height %v exceeds 2*log2(%v+1)", h, n)
	}
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	i := 0
	for k := range content {
		if i++; i&3 != 0 {
			if !tree.Remove(k) {
				t.Fatalf("failed to remove key %v", k)
			}
			if tree.Remove(k) {
				t.Fatalf("can remove a second time key %v", k)
			}
			delete(content, k)
		}
		if i&255 == 0 {
			checkRB(t, tree)
		}
	}
	checkRB(t, tree)
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	s := checkOrdered(t, tree.InOrder(), tree.cmp)
	if len(s) != len(content) {
		t.Errorf("in-order yielded %d values, want %d", len(s), len(content))
	}
	if h, n := float64(tree.Height()), float64(tree.Size()); h > 2*math.Log2(n+1) {
		t.Errorf("height %v exceeds 2*log2(%v+1)", h, n)
	}
}

func TestRBT_Drained(t *testing.T) {
	tree := NewOrderedRBT[int]()
	for i := range tAddN {
		tree.Insert(i)
	}
	for i := range tAddN {
		if !tree.Remove(i) {
			t.Fatalf("failed to remove %d", i)
		}
		if i&127 == 0 {
			checkRB(t, tree)
		}
	}
	if !tree.Empty() {
		t.Errorf("tree still holds %d values", tree.Size())
	}
	if _, ok := tree.InOrder()(); ok {
		t.Error("drained tree yields values")
	}
}

func TestRBT_Clone(t *testing.T) {
	tree := NewOrderedRBT[int]()
	for range tAddN {
		tree.Insert(rg.Intn(tAddValRange))
	}
	cl := tree.Clone()
	if cl.Size() != tree.Size() {
		t.Errorf("clone size is %d, want %d", cl.Size(), tree.Size())
	}
	if !slices.Equal(colorPattern(cl), colorPattern(tree)) {
		t.Error("clone colors or shape differ")
	}
	if !slices.Equal(collect(cl.InOrder()), collect(tree.InOrder())) {
		t.Error("clone values differ")
	}
	checkRB(t, cl)
	cl.Remove(collect(cl.InOrder())[0])
	if cl.Size()+1 != tree.Size() {
		t.Error("mutating the clone leaked into the source")
	}
}

func TestRBT_FromIterReverse(t *testing.T) {
	tree := NewOrderedRBT[int]()
	for range tAddN {
		tree.Insert(rg.Intn(tAddValRange))
	}
	rev := RBTFromIter(tree.InOrder(), Go_Ordered.Descend[int])
	fwd, bwd := collect(tree.InOrder()), collect(rev.InOrder())
	slices.Reverse(bwd)
	if !slices.Equal(fwd, bwd) {
		t.Error("reversed-comparator rebuild does not mirror the source")
	}
	checkRB(t, rev)
}

func TestRBT_ClearReinsert(t *testing.T) {
	vals := rg.Perm(tAddN)
	tree := RBTFromOrdered(vals)
	before := collect(tree.InOrder())
	tree.Clear()
	if !tree.Empty() {
		t.Fatal("clear left elements behind")
	}
	for _, v := range vals {
		tree.Insert(v)
	}
	if !slices.Equal(before, collect(tree.InOrder())) {
		t.Error("reinserted multiset differs in order")
	}
	checkRB(t, tree)
}
