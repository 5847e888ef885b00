// Package parse turns terminal transcript lines into the instruction IR
// of package ir.
//
// Each line is tokenized with package token and classified by its
// leading tokens alone:
//
//	$ cd <name>      ir.ChangeLocation
//	$ ls             ir.ListMarker
//	dir <name>       ir.DeclareChild
//	<size> <name>    ir.DeclareEntry
//
// Any other line fails the whole parse with a [*ParseError].
package parse
