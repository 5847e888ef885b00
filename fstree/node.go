package fstree

import (
	"slices"
	"sort"
)

const maxItems = 32

// node is either a leaf, holding sorted elements in D, or a parent,
// holding children in C and its own [min, max] bounds in D.
type node[T any] struct {
	N    int
	D    []T
	C    []*node[T]
	Less func(a, b T) bool
}

func newLeaf[T any](less func(a, b T) bool) *node[T] {
	return &node[T]{
		D:    make([]T, 0, maxItems+1),
		Less: less,
	}
}

func newParent[T any](less func(a, b T) bool) *node[T] {
	return &node[T]{
		C:    make([]*node[T], 0, maxItems+1),
		D:    make([]T, 2),
		Less: less,
	}
}

func (n *node[T]) isLeaf() bool {
	return n.C == nil
}

// split moves the upper half of n into a new sibling and returns it.
func (n *node[T]) split() *node[T] {
	if n.isLeaf() {
		mid := len(n.D) / 2
		res := newLeaf[T](n.Less)
		res.D = append(res.D, n.D[mid:]...)
		clear(n.D[mid:])
		n.D = n.D[:mid]
		n.N = len(n.D)
		res.N = len(res.D)
		return res
	}
	res := newParent[T](n.Less)
	mid := len(n.C) / 2
	res.C = append(res.C, n.C[mid:]...)
	clear(n.C[mid:])
	n.C = n.C[:mid]
	n.N = 0
	for _, c := range n.C {
		n.N += c.N
	}
	for _, c := range res.C {
		res.N += c.N
	}
	n.updateBounds()
	res.updateBounds()
	return res
}

// merge makes a new parent over two adjacent siblings.
func merge[T any](a, b *node[T]) *node[T] {
	res := newParent[T](a.Less)
	res.C = append(res.C, a, b)
	res.N = a.N + b.N
	res.updateBounds()
	return res
}

// add inserts v below n.  It returns whether v was added and, when n
// overflowed, the new right sibling which the caller must link in.
func (n *node[T]) add(v T) (bool, *node[T]) {
	if n.isLeaf() {
		i, found := slices.BinarySearchFunc(n.D, v, n.cmpFunc())
		if found {
			return false, nil
		}
		n.D = slices.Insert(n.D, i, v)
		n.N++
		if len(n.D) > maxItems {
			return true, n.split()
		}
		return true, nil
	}
	i := n.childFor(v)
	added, sib := n.C[i].add(v)
	if !added {
		return false, nil
	}
	n.N++
	if sib != nil {
		n.C = slices.Insert(n.C, i+1, sib)
	}
	n.updateBounds()
	if len(n.C) > maxItems {
		return true, n.split()
	}
	return true, nil
}

// childFor returns the index of the child whose range covers v, or the
// last child when v is greater than everything in n.
// pre: parent
func (n *node[T]) childFor(v T) int {
	last := len(n.C) - 1
	for i, c := range n.C[:last] {
		if !n.Less(c.max(), v) {
			return i
		}
	}
	return last
}

func (n *node[T]) get(v T) (T, bool) {
	if n.isLeaf() {
		i, found := slices.BinarySearchFunc(n.D, v, n.cmpFunc())
		if found {
			return n.D[i], true
		}
		var zero T
		return zero, false
	}
	return n.C[n.childFor(v)].get(v)
}

func (n *node[T]) all(f func(T) bool) bool {
	if n.isLeaf() {
		for _, elt := range n.D {
			if !f(elt) {
				return false
			}
		}
		return true
	}
	for _, c := range n.C {
		if !c.all(f) {
			return false
		}
	}
	return true
}

func (n *node[T]) rangeFunc(f func(T) bool, r func(a T) int) bool {
	if n.isLeaf() {
		return n.leafRange(f, r)
	}
	return n.parentRange(f, r)
}

func (n *node[T]) leafRange(f func(T) bool, r func(a T) int) bool {
	i := sort.Search(len(n.D), func(i int) bool { return r(n.D[i]) >= 0 })
	for i < len(n.D) {
		elt := n.D[i]
		if r(elt) != 0 {
			return true
		}
		if !f(elt) {
			return false
		}
		i++
	}
	return true
}

func (n *node[T]) parentRange(f func(T) bool, r func(a T) int) bool {
	for _, c := range n.C {
		if r(c.max()) < 0 {
			continue
		}
		if r(c.min()) > 0 {
			return true
		}
		if !c.rangeFunc(f, r) {
			return false
		}
	}
	return true
}

func (n *node[T]) cmpFunc() func(a, b T) int {
	return func(a, b T) int {
		if n.Less(a, b) {
			return -1
		}
		if n.Less(b, a) {
			return 1
		}
		return 0
	}
}

// pre: nonempty
func (n *node[T]) min() T {
	return n.D[0]
}

// pre: nonempty
func (n *node[T]) max() T {
	if n.isLeaf() {
		return n.D[len(n.D)-1]
	}
	return n.D[1]
}

func (n *node[T]) updateBounds() {
	if n.isLeaf() || len(n.C) == 0 {
		return
	}
	n.D[0] = n.C[0].min()
	n.D[1] = n.C[len(n.C)-1].max()
}
