package fstree

// Tree is an ordered set of T kept in a shallow b-tree.  Elements which
// compare equal under Less are considered the same element.
type Tree[T any] struct {
	Less func(a, b T) bool
	root *node[T]
}

func NewTree[T any](less func(a, b T) bool) *Tree[T] {
	return &Tree[T]{
		Less: less,
		root: newLeaf[T](less),
	}
}

// Insert adds v to the tree.  It returns false and leaves the tree
// unchanged if an element equal to v is already present.
func (t *Tree[T]) Insert(v T) bool {
	added, sib := t.root.add(v)
	if sib != nil {
		t.root = merge(t.root, sib)
	}
	return added
}

// Get returns the element equal to v, if any.
func (t *Tree[T]) Get(v T) (T, bool) {
	return t.root.get(v)
}

func (t *Tree[T]) Len() int {
	return t.root.N
}

// All applies f to all elements in T in ascending order
// until f returns false.  All returns whether or not f returns false
func (t *Tree[T]) All(f func(T) bool) bool {
	return t.root.all(f)
}

// Range applies f to all elements e such that r(e) == 0, in ascending
// order, until f returns false.
// r should return a negative integer for elements less than
// those such that r(e) == 0 and likewise a positive integer
// for those elements greater than those such that r(e) == 0
func (t *Tree[T]) Range(f func(T) bool, r func(T) int) bool {
	return t.root.rangeFunc(f, r)
}

// Ascend returns a function that can be used with for-range to iterate
// elements in ascending order.
func (t *Tree[T]) Ascend() func(func(T) bool) {
	return func(yield func(T) bool) {
		t.All(yield)
	}
}
