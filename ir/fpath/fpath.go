package fpath

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadPath = errors.New("bad path")

// Path is a sequence of path segments. The zero value is the root.
type Path []string

// Root returns the root path.
func Root() Path {
	return nil
}

// New returns a path with the given segments.
func New(segs ...string) Path {
	if len(segs) == 0 {
		return nil
	}
	return Path(append([]string(nil), segs...))
}

// Parse parses a slash separated absolute path such as "/a/e".
// "/" and "" both denote the root.
func Parse(s string) (Path, error) {
	if s == "" || s == "/" {
		return Root(), nil
	}
	if s[0] != '/' {
		return nil, fmt.Errorf("%w: %q is not absolute", ErrBadPath, s)
	}
	parts := strings.Split(s[1:], "/")
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrBadPath, s)
		}
	}
	return Path(parts), nil
}

// MustParse is like Parse but panics on error. It is intended
// for tests and constant paths.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the slash separated form of p, "/" for the root.
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	return "/" + strings.Join(p, "/")
}

func (p Path) IsRoot() bool {
	return len(p) == 0
}

func (p Path) Len() int {
	return len(p)
}

// Segments returns a copy of the segments of p.
func (p Path) Segments() []string {
	return append([]string(nil), p...)
}

// Append returns a new path with seg added at the end.  p is not
// modified and the result never shares storage with p.
func (p Path) Append(seg string) Path {
	res := make(Path, len(p)+1)
	copy(res, p)
	res[len(p)] = seg
	return res
}

// Parent returns the parent path (all segments except the last).
// The parent of the root is the root.
func (p Path) Parent() Path {
	if len(p) <= 1 {
		return Root()
	}
	return p[:len(p)-1:len(p)-1]
}

// Last returns the last segment, or "" for the root.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// HasPrefix reports whether prefix is a segment prefix of p.  Every path
// has the root and itself as prefix.  Matching is by whole segments, so
// "/ab" does not have "/a" as prefix.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}
	return true
}

// IsChildOf returns true if p is strictly below parent.
func (p Path) IsChildOf(parent Path) bool {
	return len(p) > len(parent) && p.HasPrefix(parent)
}

func (p Path) Equal(other Path) bool {
	return len(p) == len(other) && p.HasPrefix(other)
}

// Compare compares two paths segment by segment.
// Returns -1 if p < other, 0 if p == other, 1 if p > other.
// A path compares less than every path it is a prefix of.
func (p Path) Compare(other Path) int {
	n := min(len(p), len(other))
	for i := 0; i < n; i++ {
		if c := strings.Compare(p[i], other[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(p) < len(other):
		return -1
	case len(p) > len(other):
		return 1
	}
	return 0
}

func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Path) UnmarshalText(d []byte) error {
	res, err := Parse(string(d))
	if err != nil {
		return err
	}
	*p = res
	return nil
}
