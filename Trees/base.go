package Trees

import (
	Go_Ordered "github.com/g-m-twostay/go-ordered"
	"github.com/g-m-twostay/go-ordered/Queues"
)

// base holds the unbalanced primitives shared by BST and RBT: comparator
// driven descent, leaf insertion through a node factory, splice-out returning
// the physically detached node, and rotation. The public read-only surface
// lives here too and is promoted to both containers.
type base[T any] struct {
	root *node[T]
	cmp  Go_Ordered.Cmp[T]
	sz   uint
}

// findNode descends from the root comparing v at each node.
func (u *base[T]) findNode(v T) *node[T] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c == 0 {
			return cur
		} else if c < 0 {
			cur = cur.c[dL]
		} else {
			cur = cur.c[dR]
		}
	}
	return nil
}

// insertNode attaches a new leaf holding v created by mk, which lets the
// red-black container allocate red nodes without duplicating the descent.
// Returns nil when an equivalent value is already present.
func (u *base[T]) insertNode(v T, mk func(T) *node[T]) *node[T] {
	if u.root == nil {
		u.root = mk(v)
		u.sz++
		return u.root
	}
	for cur := u.root; ; {
		c := u.cmp(v, cur.v)
		if c == 0 {
			return nil
		}
		d := dL
		if c > 0 {
			d = dR
		}
		if cur.c[d] == nil {
			n := mk(v)
			n.p = cur
			cur.c[d] = n
			u.sz++
			return n
		}
		cur = cur.c[d]
	}
}

// removeNode splices the value at x out of the tree. When x has two children
// the in-order successor y (which has no left child) is detached instead and
// its value copied into x. Returns the physically detached node y, whose p
// link still names its old parent, and the child r that took y's slot
// (possibly nil, with r.p already set). The red-black fix-up starts from
// (y.p, r).
func (u *base[T]) removeNode(x *node[T]) (y, r *node[T]) {
	y = x
	if x.c[dL] != nil && x.c[dR] != nil {
		y = edge(x.c[dR], dL)
	}
	if r = y.c[dL]; r == nil {
		r = y.c[dR]
	}
	if r != nil {
		r.p = y.p
	}
	if y.p == nil {
		u.root = r
	} else if y.p.c[dL] == y {
		y.p.c[dL] = r
	} else {
		y.p.c[dR] = r
	}
	if y != x {
		x.v = y.v
	}
	u.sz--
	return
}

// rotate moves n down in direction d; its child opposite d takes its place.
// Preserves the ordering invariant.
func (u *base[T]) rotate(n *node[T], d int) {
	c := n.c[1-d]
	if c == nil {
		panic(&RotationError{})
	}
	n.c[1-d] = c.c[d]
	if c.c[d] != nil {
		c.c[d].p = n
	}
	c.p = n.p
	if n.p == nil {
		u.root = c
	} else if n.p.c[dL] == n {
		n.p.c[dL] = c
	} else {
		n.p.c[dR] = c
	}
	c.c[d] = n
	n.p = c
}

// Size [Tree.Size]
// Time: O(1)
func (u *base[T]) Size() uint {
	return u.sz
}

// Empty [Tree.Empty]
func (u *base[T]) Empty() bool {
	return u.sz == 0
}

// Clear [Tree.Clear]
// Drops the whole node graph at once.
func (u *base[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *base[T]) Has(v T) bool {
	return u.findNode(v) != nil
}

// Get [Tree.Get]
// The returned value is the stored one, which a coarse comparator may
// distinguish from v even though they compare equal.
// Time: O(D); Space: O(1)
func (u *base[T]) Get(v T) (T, bool) {
	if n := u.findNode(v); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Min [Tree.Min]
// Time: O(D); Space: O(1)
func (u *base[T]) Min() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return edge(u.root, dL).v, true
}

// Max [Tree.Max]
// Time: O(D); Space: O(1)
func (u *base[T]) Max() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return edge(u.root, dR).v, true
}

// Predecessor [Tree.Predecessor]
// v itself needs not be stored.
// Time: O(D); Space: O(1)
func (u *base[T]) Predecessor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) <= 0 {
			cur = cur.c[dL]
		} else {
			p = cur
			cur = cur.c[dR]
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// v itself needs not be stored.
// Time: O(D); Space: O(1)
func (u *base[T]) Successor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) < 0 {
			p = cur
			cur = cur.c[dL]
		} else {
			cur = cur.c[dR]
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Height [Tree.Height]. Recursive.
func (u *base[T]) Height() uint {
	return height(u.root)
}

// ordered walks the tree with the d spine pushed on an explicit stack; d==dL
// yields comparator order, d==dR the reverse.
func (u *base[T]) ordered(d int) func() (T, bool) {
	var st []*node[T]
	for cur := u.root; cur != nil; cur = cur.c[d] {
		st = append(st, cur)
	}
	return func() (r T, ok bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		r, ok = cur.v, true
		for cur = cur.c[1-d]; cur != nil; cur = cur.c[d] {
			st = append(st, cur)
		}
		return
	}
}

// InOrder [Tree.InOrder]
// Time: amortized O(1) per call to the returned function; Space: O(D)
func (u *base[T]) InOrder() func() (T, bool) {
	return u.ordered(dL)
}

// ReverseOrder [Tree.ReverseOrder]
// Time: amortized O(1) per call to the returned function; Space: O(D)
func (u *base[T]) ReverseOrder() func() (T, bool) {
	return u.ordered(dR)
}

// PreOrder [Tree.PreOrder]
// Time: O(1) per call to the returned function; Space: O(D)
func (u *base[T]) PreOrder() func() (T, bool) {
	var st []*node[T]
	if u.root != nil {
		st = append(st, u.root)
	}
	return func() (r T, ok bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if cur.c[dR] != nil {
			st = append(st, cur.c[dR])
		}
		if cur.c[dL] != nil {
			st = append(st, cur.c[dL])
		}
		return cur.v, true
	}
}

// PostOrder [Tree.PostOrder]
// Time: amortized O(1) per call to the returned function; Space: O(D)
func (u *base[T]) PostOrder() func() (T, bool) {
	var st []*node[T]
	cur, last := u.root, (*node[T])(nil)
	return func() (r T, ok bool) {
		for cur != nil || len(st) > 0 {
			if cur != nil {
				st = append(st, cur)
				cur = cur.c[dL]
			} else if top := st[len(st)-1]; top.c[dR] != nil && last != top.c[dR] {
				cur = top.c[dR]
			} else {
				st = st[:len(st)-1]
				last = top
				return top.v, true
			}
		}
		return
	}
}

// LevelOrder [Tree.LevelOrder]
// Time: O(1) per call to the returned function; Space: O(n)
func (u *base[T]) LevelOrder() func() (T, bool) {
	q := Queues.MakeRing[*node[T]](8)
	if u.root != nil {
		q.Push(u.root)
	}
	return func() (r T, ok bool) {
		var cur *node[T]
		if cur, ok = q.Pop(); !ok {
			return
		}
		if cur.c[dL] != nil {
			q.Push(cur.c[dL])
		}
		if cur.c[dR] != nil {
			q.Push(cur.c[dR])
		}
		return cur.v, true
	}
}

// drain builds a tree by exhausting an iterator in the closure form the
// traversals return, inserting through ins.
func drain[T any](next func() (T, bool), ins func(T) bool) {
	for v, ok := next(); ok; v, ok = next() {
		ins(v)
	}
}
