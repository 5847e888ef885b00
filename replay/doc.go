// Package replay folds an instruction sequence over a [fstree.Model].
//
// Replay keeps a [Cursor] at the current container, starting at the
// root.  Navigation moves the cursor, DeclareChild and DeclareEntry
// record entries relative to it, and ListMarker does nothing.
package replay
