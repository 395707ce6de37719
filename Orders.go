package Go_Ordered

import "golang.org/x/exp/constraints"

// Cmp defines a total order over T. The sign of the return value is all that
// matters: negative when a orders before b, positive when a orders after b,
// and 0 when a and b are equivalent. Containers in this module store at most
// one value per equivalence class of their Cmp.
// A Cmp must be consistent: Cmp(a,a)==0, the sign of Cmp(a,b) is the opposite
// of Cmp(b,a) when nonzero, and Cmp(a,b)<=0 && Cmp(b,c)<=0 implies
// Cmp(a,c)<=0. It must not mutate the container it orders.
type Cmp[T any] func(a, b T) int

// Ascend is the natural order of T: smaller values order first.
func Ascend[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// Descend is the reversed natural order of T: greater values order first.
func Descend[T constraints.Ordered](a, b T) int {
	if a < b {
		return 1
	} else if a > b {
		return -1
	}
	return 0
}

// InvalidComparatorError is raised by container constructors given a nil Cmp.
type InvalidComparatorError struct {
}

func (e *InvalidComparatorError) Error() string {
	return "Cmp is nil: containers need a total order."
}
