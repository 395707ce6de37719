package Trees

import (
	Go_Ordered "github.com/g-m-twostay/go-ordered"
	"golang.org/x/exp/constraints"
)

// BST is an unbalanced binary search tree ordered by a user supplied
// comparator. Every value in a node's left subtree orders strictly before the
// node's value and every value in its right subtree strictly after. Lookups
// and mutations cost O(D) where D is the height, O(n) in the worst case and
// O(log n) on average for random input; use RBT when a worst-case bound is
// needed. BST shouldn't be created directly using struct literal.
type BST[T any] struct {
	base[T]
}

// NewBST returns an empty BST ordered by cmp. Panics with
// InvalidComparatorError if cmp is nil.
func NewBST[T any](cmp Go_Ordered.Cmp[T]) *BST[T] {
	if cmp == nil {
		panic(&Go_Ordered.InvalidComparatorError{})
	}
	return &BST[T]{base[T]{cmp: cmp}}
}

// NewOrderedBST is NewBST with the natural ascending order of T.
func NewOrderedBST[T constraints.Ordered]() *BST[T] {
	return NewBST[T](Go_Ordered.Ascend[T])
}

// BSTFrom builds a BST ordered by cmp by inserting each element of vals in
// slice order. Duplicates under cmp are kept once.
func BSTFrom[T any](vals []T, cmp Go_Ordered.Cmp[T]) *BST[T] {
	u := NewBST[T](cmp)
	for _, v := range vals {
		u.Insert(v)
	}
	return u
}

// BSTFromOrdered is BSTFrom with the natural ascending order of T.
func BSTFromOrdered[T constraints.Ordered](vals []T) *BST[T] {
	return BSTFrom(vals, Go_Ordered.Ascend[T])
}

// BSTFromFunc builds a BST ordered by cmp from src, storing f(src[i], i)
// instead of src[i]. Context for f travels in its closure.
func BSTFromFunc[E, T any](src []E, cmp Go_Ordered.Cmp[T], f func(E, int) T) *BST[T] {
	u := NewBST[T](cmp)
	for i, e := range src {
		u.Insert(f(e, i))
	}
	return u
}

// BSTFromIter drains an iterator in the closure form the traversals return
// into a fresh BST ordered by cmp. Feeding it another tree's InOrder is how a
// tree is rebuilt under a different comparator; the source shape is
// discarded.
func BSTFromIter[T any](next func() (T, bool), cmp Go_Ordered.Cmp[T]) *BST[T] {
	u := NewBST[T](cmp)
	drain(next, u.Insert)
	return u
}

// Clone structurally copies u: same shape, same comparator, same size. The
// values are copied shallowly.
func (u *BST[T]) Clone() *BST[T] {
	return &BST[T]{base[T]{root: cloneNodes(u.root, nil), cmp: u.cmp, sz: u.sz}}
}

// Insert [Tree.Insert]
// The new value always becomes a leaf; no rebalancing happens.
// Time: O(D)
func (u *BST[T]) Insert(v T) bool {
	return u.insertNode(v, func(v T) *node[T] { return &node[T]{v: v} }) != nil
}

// Remove [Tree.Remove]
// A node with two children trades values with its in-order successor so that
// the spliced node has at most one child.
// Time: O(D)
func (u *BST[T]) Remove(v T) bool {
	x := u.findNode(v)
	if x == nil {
		return false
	}
	u.removeNode(x)
	return true
}
