// Package fpath provides segmented container paths.
//
// A Path is an ordered sequence of segments. The root is the empty path
// and renders as "/".
//
// # Usage
//
//	p, err := fpath.Parse("/a/e")
//	parent := p.Parent()          // "/a"
//	child := parent.Append("f")   // "/a/f"
//	p.HasPrefix(parent)           // true
//	fpath.New("a").HasPrefix(fpath.New("ab")) // false
//
// # Ordering
//
// Paths compare segment by segment and a path sorts before all of its
// extensions, so the paths under a given prefix form one contiguous run
// in any ordered collection keyed by Path. The fstree package relies on
// this to compute container totals with a single range scan.
//
// # Related Packages
//
//   - github.com/signadot/advent/fstree - hierarchical size index
package fpath
