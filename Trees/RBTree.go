package Trees

import (
	Go_Ordered "github.com/g-m-twostay/go-ordered"
	"golang.org/x/exp/constraints"
)

// RBT is a red-black tree: a BST that recolors and rotates after each
// mutation so that the classical invariants hold.
//  1. The root is black.
//  2. Absent children count as black.
//  3. A red node has no red child.
//  4. Every root-to-absent-descendant path has the same number of black
//     nodes.
//
// These bound the height by 2*log2(n+1), so Insert, Remove, Has, Get, Min,
// Max, Predecessor and Successor are O(log n) worst case. RBT reuses the BST
// descent, splice-out and rotation primitives and only adds the fix-ups.
// RBT shouldn't be created directly using struct literal.
type RBT[T any] struct {
	base[T]
}

// NewRBT returns an empty RBT ordered by cmp. Panics with
// InvalidComparatorError if cmp is nil.
func NewRBT[T any](cmp Go_Ordered.Cmp[T]) *RBT[T] {
	if cmp == nil {
		panic(&Go_Ordered.InvalidComparatorError{})
	}
	return &RBT[T]{base[T]{cmp: cmp}}
}

// NewOrderedRBT is NewRBT with the natural ascending order of T.
func NewOrderedRBT[T constraints.Ordered]() *RBT[T] {
	return NewRBT[T](Go_Ordered.Ascend[T])
}

// RBTFrom builds an RBT ordered by cmp by inserting each element of vals in
// slice order. Duplicates under cmp are kept once.
func RBTFrom[T any](vals []T, cmp Go_Ordered.Cmp[T]) *RBT[T] {
	u := NewRBT[T](cmp)
	for _, v := range vals {
		u.Insert(v)
	}
	return u
}

// RBTFromOrdered is RBTFrom with the natural ascending order of T.
func RBTFromOrdered[T constraints.Ordered](vals []T) *RBT[T] {
	return RBTFrom(vals, Go_Ordered.Ascend[T])
}

// RBTFromFunc builds an RBT ordered by cmp from src, storing f(src[i], i)
// instead of src[i]. Context for f travels in its closure.
func RBTFromFunc[E, T any](src []E, cmp Go_Ordered.Cmp[T], f func(E, int) T) *RBT[T] {
	u := NewRBT[T](cmp)
	for i, e := range src {
		u.Insert(f(e, i))
	}
	return u
}

// RBTFromIter drains an iterator in the closure form the traversals return
// into a fresh RBT ordered by cmp. Feeding it another tree's InOrder is how a
// tree is rebuilt under a different comparator; the source shape is
// discarded.
func RBTFromIter[T any](next func() (T, bool), cmp Go_Ordered.Cmp[T]) *RBT[T] {
	u := NewRBT[T](cmp)
	drain(next, u.Insert)
	return u
}

// Clone structurally copies u: same shape, same colors, same comparator,
// same size. The values are copied shallowly.
func (u *RBT[T]) Clone() *RBT[T] {
	return &RBT[T]{base[T]{root: cloneNodes(u.root, nil), cmp: u.cmp, sz: u.sz}}
}

// Insert [Tree.Insert]
// The value enters as a red leaf through the shared descent, then recoloring
// walks up while the parent is red: a red uncle pushes the violation two
// levels up, a black uncle resolves it with at most two rotations. The root
// leaves black.
// Time: O(log n)
func (u *RBT[T]) Insert(v T) bool {
	x := u.insertNode(v, func(v T) *node[T] { return &node[T]{v: v, red: true} })
	if x == nil {
		return false
	}
	for x.p != nil && x.p.red {
		p := x.p
		g := p.p // exists: p is red, so not the root
		pd := dL
		if g.c[dR] == p {
			pd = dR
		}
		ud := 1 - pd
		if un := g.c[ud]; isRed(un) {
			p.red, un.red, g.red = false, false, true
			x = g
		} else {
			if x == p.c[ud] { // inner child: straighten first
				x = p
				u.rotate(x, pd)
				p = x.p
			}
			p.red, g.red = false, true
			u.rotate(g, ud)
		}
	}
	u.root.red = false
	return true
}

// Remove [Tree.Remove]
// The shared splice-out detaches the physical victim y and leaves its only
// child r (absent allowed) in its slot. Detaching a red y changes no black
// count; a black y leaves r's subtree one black short, which the loop repays
// by recoloring or by borrowing through the sibling with at most three
// rotations. Which slot of the old parent r sits in is read off the parent's
// links: the cleared slot equals the absent r, and a non-nil sibling is
// guaranteed there whenever the loop runs.
// Time: O(log n)
func (u *RBT[T]) Remove(v T) bool {
	x := u.findNode(v)
	if x == nil {
		return false
	}
	y, r := u.removeNode(x)
	if y.red {
		return true
	}
	cur, par := r, y.p
	for par != nil && !isRed(cur) {
		d := dR
		if par.c[dL] == cur {
			d = dL
		}
		sd := 1 - d
		s := par.c[sd]
		if isRed(s) {
			s.red, par.red = false, true
			u.rotate(par, d)
			s = par.c[sd]
		}
		if s == nil {
			cur, par = par, par.p
		} else if !isRed(s.c[dL]) && !isRed(s.c[dR]) {
			s.red = true
			cur, par = par, par.p
		} else {
			if !isRed(s.c[sd]) {
				s.c[d].red = false
				s.red = true
				u.rotate(s, sd)
				s = par.c[sd]
			}
			s.red = par.red
			par.red = false
			s.c[sd].red = false
			u.rotate(par, d)
			cur, par = u.root, nil
		}
	}
	if cur != nil {
		cur.red = false
	}
	return true
}
