package Heaps

// Heap is a priority queue of T. The top element is the one ordering first
// under the container's comparator. Receivers with a bool second return value
// report whether the first return value is defined; Pop and Peek on an empty
// Heap return (x, false) with x undefined.
type Heap[T any] interface {
	//Push vs onto the Heap, returning the new length.
	Push(vs ...T) uint
	//Pop the top element off the Heap.
	Pop() (T, bool)
	//Peek at the top element without removing it.
	Peek() (T, bool)
	//Len is the number of held elements.
	Len() uint
	//Empty is Len()==0.
	Empty() bool
	//Clear drops every element.
	Clear()
	//ToSlice is a shallow snapshot of the backing array in heap order, not
	//sorted order.
	ToSlice() []T
	//Drain returns a closure function f acting like an iterator; every call
	//to f pops the current top, so exhausting f empties the Heap. f is
	//single pass and can't be restarted. Drain is the canonical iteration of
	//a Heap.
	Drain() func() (T, bool)
}
