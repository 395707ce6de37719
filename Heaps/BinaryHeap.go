package Heaps

import (
	Go_Ordered "github.com/g-m-twostay/go-ordered"
	"golang.org/x/exp/constraints"
)

// Binary is a Heap backed by a dense array holding an implicit binary tree:
// the children of data[i] are data[2i+1] and data[2i+2]. For every i>0,
// cmp(data[(i-1)/2], data[i]) <= 0, so data[0] is the top. Unlike the trees,
// Binary keeps duplicates. Binary shouldn't be created directly using struct
// literal.
type Binary[T any] struct {
	data []T
	cmp  Go_Ordered.Cmp[T]
}

// New returns an empty Binary ordered by cmp. Panics with
// InvalidComparatorError if cmp is nil.
func New[T any](cmp Go_Ordered.Cmp[T]) *Binary[T] {
	if cmp == nil {
		panic(&Go_Ordered.InvalidComparatorError{})
	}
	return &Binary[T]{cmp: cmp}
}

// NewOrdered is New with the descending natural order of T, so the top is
// the greatest element.
func NewOrdered[T constraints.Ordered]() *Binary[T] {
	return New[T](Go_Ordered.Descend[T])
}

// From builds a Binary ordered by cmp by pushing each element of vals.
func From[T any](vals []T, cmp Go_Ordered.Cmp[T]) *Binary[T] {
	u := New[T](cmp)
	u.Push(vals...)
	return u
}

// FromOrdered is From with the descending natural order of T.
func FromOrdered[T constraints.Ordered](vals []T) *Binary[T] {
	return From(vals, Go_Ordered.Descend[T])
}

// FromFunc builds a Binary ordered by cmp from src, pushing f(src[i], i)
// instead of src[i]. Context for f travels in its closure.
func FromFunc[E, T any](src []E, cmp Go_Ordered.Cmp[T], f func(E, int) T) *Binary[T] {
	u := New[T](cmp)
	for i, e := range src {
		u.Push(f(e, i))
	}
	return u
}

// Clone copies the backing array as-is, order preserved; no sifting happens.
func (u *Binary[T]) Clone() *Binary[T] {
	data := make([]T, len(u.data))
	copy(data, u.data)
	return &Binary[T]{data: data, cmp: u.cmp}
}

func (u *Binary[T]) Len() uint {
	return uint(len(u.data))
}

func (u *Binary[T]) Empty() bool {
	return len(u.data) == 0
}

// Clear [Heap.Clear]
func (u *Binary[T]) Clear() {
	u.data = nil
}

// Peek [Heap.Peek]
// Time: O(1)
func (u *Binary[T]) Peek() (T, bool) {
	if len(u.data) == 0 {
		return *new(T), false
	}
	return u.data[0], true
}

// Push [Heap.Push]
// Each value is appended and sifted up by swapping with its parent while it
// orders before it.
// Time: amortized O(1) per value, O(log n) worst case
func (u *Binary[T]) Push(vs ...T) uint {
	for _, v := range vs {
		u.data = append(u.data, v)
		for i := len(u.data) - 1; i > 0; {
			p := (i - 1) / 2
			if u.cmp(u.data[i], u.data[p]) >= 0 {
				break
			}
			u.data[i], u.data[p] = u.data[p], u.data[i]
			i = p
		}
	}
	return u.Len()
}

// Pop [Heap.Pop]
// The last element replaces the top and sifts down, swapping with whichever
// child orders first while that child orders before it.
// Time: O(log n)
func (u *Binary[T]) Pop() (T, bool) {
	if len(u.data) == 0 {
		return *new(T), false
	}
	last := len(u.data) - 1
	u.data[0], u.data[last] = u.data[last], u.data[0]
	top := u.data[last]
	u.data[last] = *new(T)
	u.data = u.data[:last]
	for i := 0; ; {
		c := 2*i + 1
		if c >= last {
			break
		}
		if r := c + 1; r < last && u.cmp(u.data[r], u.data[c]) < 0 {
			c = r
		}
		if u.cmp(u.data[c], u.data[i]) >= 0 {
			break
		}
		u.data[i], u.data[c] = u.data[c], u.data[i]
		i = c
	}
	return top, true
}

// ToSlice [Heap.ToSlice]
func (u *Binary[T]) ToSlice() []T {
	s := make([]T, len(u.data))
	copy(s, u.data)
	return s
}

// Drain [Heap.Drain]
// Time: O(log n) per call to the returned function; Space: O(1)
func (u *Binary[T]) Drain() func() (T, bool) {
	return u.Pop
}
