// Package fstree provides the hierarchical size index that replayed
// instructions are recorded into.
//
// # Structure
//
// [Model] maps an [fpath.Path] to an [Entry], either a container or a
// leaf with a size.  Entries are kept in a [Tree] ordered by
// [fpath.Path.Compare], under which every path having some p as a
// segment prefix sorts contiguously right after p.  A container total
// is therefore the sum over one bounded range of the tree:
//
//	/            container
//	/a           container
//	/a/e         container
//	/a/e/i       leaf 584
//	/a/f         leaf 29116
//	/b.txt       leaf 14848514
//
// Nothing in the model refers to its parent; ancestry is a property of
// the keys alone.
package fstree
