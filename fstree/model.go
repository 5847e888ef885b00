package fstree

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/signadot/advent/ir/fpath"
)

var ErrRootLeaf = errors.New("root cannot be a leaf")

type Kind int

const (
	Container Kind = iota
	Leaf
)

func (k Kind) String() string {
	switch k {
	case Container:
		return "dir"
	case Leaf:
		return "file"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Entry is the record stored at one path of a Model.  Size is only
// meaningful for leaves; container sizes are computed by Model.Total.
type Entry struct {
	Path fpath.Path
	Kind Kind
	Size uint64
}

// Sized is a container path together with its total size.
type Sized struct {
	Path  fpath.Path
	Total uint64
}

// Model is a hierarchical size index: an ordered map from path to
// Entry.  Containers and leaves share one key space, so the entries
// under a container form a contiguous run and container totals are
// computed by a single range scan.
type Model struct {
	entries *Tree[*Entry]
}

// New returns a model holding only the root container.
func New() *Model {
	m := &Model{
		entries: NewTree(func(a, b *Entry) bool {
			return a.Path.Compare(b.Path) < 0
		}),
	}
	m.entries.Insert(&Entry{Path: fpath.Root(), Kind: Container})
	return m
}

func (m *Model) Len() int {
	return m.entries.Len()
}

// Lookup returns a copy of the entry at p.
func (m *Model) Lookup(p fpath.Path) (Entry, bool) {
	e, ok := m.get(p)
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

func (m *Model) get(p fpath.Path) (*Entry, bool) {
	return m.entries.Get(&Entry{Path: p})
}

// EnsureContainer records a container at p and at each of its ancestors
// that is absent.  Existing entries are never modified.  It returns
// whether p itself was added.
func (m *Model) EnsureContainer(p fpath.Path) bool {
	for i := 1; i < len(p); i++ {
		m.entries.Insert(&Entry{Path: fpath.New(p[:i]...), Kind: Container})
	}
	if p.IsRoot() {
		return false
	}
	return m.entries.Insert(&Entry{Path: fpath.New(p...), Kind: Container})
}

// RecordLeaf records a leaf of the given size at p, creating missing
// ancestor containers.  Recording at an existing path replaces that
// entry's kind and size.
func (m *Model) RecordLeaf(p fpath.Path, size uint64) error {
	if p.IsRoot() {
		return ErrRootLeaf
	}
	m.EnsureContainer(p.Parent())
	if e, ok := m.get(p); ok {
		e.Kind = Leaf
		e.Size = size
		return nil
	}
	m.entries.Insert(&Entry{Path: fpath.New(p...), Kind: Leaf, Size: size})
	return nil
}

// AddSizes returns a+b, or math.MaxUint64 if the sum does not fit.
func AddSizes(a, b uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return s
}

// Total returns the sum of the sizes of all leaves at or below p.  The
// sum saturates at math.MaxUint64.
func (m *Model) Total(p fpath.Path) uint64 {
	var ttl uint64
	m.entries.Range(func(e *Entry) bool {
		if e.Kind == Leaf {
			ttl = AddSizes(ttl, e.Size)
		}
		return true
	}, prefixRange(p))
	return ttl
}

func prefixRange(p fpath.Path) func(*Entry) int {
	return func(e *Entry) int {
		if e.Path.HasPrefix(p) {
			return 0
		}
		return e.Path.Compare(p)
	}
}

// Containers returns the paths of all containers in ascending order.
func (m *Model) Containers() []fpath.Path {
	var res []fpath.Path
	for e := range m.entries.Ascend() {
		if e.Kind == Container {
			res = append(res, e.Path)
		}
	}
	return res
}

// ContainerTotals returns every container with its total, in ascending
// path order, computed in one pass over the model.  Totals saturate as
// in Total.
func (m *Model) ContainerTotals() []Sized {
	var (
		res   []Sized
		stack []int // indexes into res of the open ancestors
	)
	pop := func() {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			res[stack[len(stack)-1]].Total += res[top].Total
		}
	}
	for e := range m.entries.Ascend() {
		for len(stack) > 0 && !e.Path.HasPrefix(res[stack[len(stack)-1]].Path) {
			pop()
		}
		switch e.Kind {
		case Container:
			res = append(res, Sized{Path: e.Path})
			stack = append(stack, len(res)-1)
		case Leaf:
			if len(stack) > 0 {
				top := &res[stack[len(stack)-1]]
				top.Total = AddSizes(top.Total, e.Size)
			}
		}
	}
	for len(stack) > 0 {
		pop()
	}
	return res
}

// Walk calls f for every entry in ascending path order, which is a
// depth first pre-order with siblings sorted by name.  depth is the
// number of segments in the entry's path.  Walk stops when f returns
// false.
func (m *Model) Walk(f func(e Entry, depth int) bool) {
	m.entries.All(func(e *Entry) bool {
		return f(*e, len(e.Path))
	})
}
