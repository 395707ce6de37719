package Trees

// Tree represents an ordered set implemented using nodes. Values are unique
// under the container's comparator: at most one stored value per equivalence
// class. Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, if calling Min on an empty
// tree, the return value will be (x T, false bool). In this case the value of
// x should be undefined and it's advised that x not to be used.
// Expected absence (missing value, empty tree, duplicate insert) is reported
// through these return values and is never an error; contract violations
// panic.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if v was added, false if an
	//equivalent value is already present.
	Insert(v T) bool
	//Remove the value equivalent to v. Returning true if something was
	//removed, false otherwise.
	Remove(v T) bool
	//Has reports whether a value equivalent to v is present.
	Has(v T) bool
	//Get the stored value equivalent to v.
	Get(v T) (T, bool)
	//Min is the least stored value under the comparator.
	Min() (T, bool)
	//Max is the greatest stored value under the comparator.
	Max() (T, bool)
	//Predecessor returns the greatest stored value ordering before v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest stored value ordering after v.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() uint
	//Empty is Size()==0.
	Empty() bool
	//Clear drops every value.
	Clear()
	//Height is the number of nodes on the longest root-to-leaf path.
	Height() uint
	//InOrder returns a closure function f acting like an iterator. f gives
	//values in comparator order. Calling f is like calling "Next()" of
	//iterators: val, valid=f(). val is meaningful only if valid is true.
	//When valid==false, then f is exhausted. valid can't turn true after it
	//first became false. f is single pass and can't be restarted. The tree
	//must not be modified during the iteration of f, otherwise the yielded
	//sequence is unspecified. There will be no panic if such cases happen so
	//design the algorithm with this in mind. InOrder is the canonical
	//traversal of a Tree.
	InOrder() func() (T, bool)
	//ReverseOrder is InOrder reversed.
	ReverseOrder() func() (T, bool)
	//PreOrder yields each node before either of its subtrees.
	PreOrder() func() (T, bool)
	//PostOrder yields each node after both of its subtrees.
	PostOrder() func() (T, bool)
	//LevelOrder yields values breadth first, shallowest first.
	LevelOrder() func() (T, bool)
}

// RotationError is raised when a rotation is asked of a node lacking the
// child that would take its place. Unreachable from the public surface.
type RotationError struct {
}

func (e *RotationError) Error() string {
	return "rotation needs the child opposite the rotation direction."
}
