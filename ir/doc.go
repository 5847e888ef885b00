// Package ir provides the intermediate representation produced by the
// parse package from terminal transcripts.
//
// # Overview
//
// A transcript is a sequence of shell-like lines.  Each line becomes
// exactly one Instruction; the resulting slice is the IR.  The IR is
// read once, in order, by the replay package, which folds it into an
// fstree.Model.
//
// # Instruction Kinds
//
// The Kind field indicates the instruction:
//
//   - ChangeLocation: "$ cd <name>", where name is "/" (root), ".."
//     (parent) or a child name
//   - ListMarker: "$ ls", carries no state
//   - DeclareChild: "dir <name>", a child container of the current location
//   - DeclareEntry: "<size> <name>", a leaf of the given size
//
// # Creating Instructions
//
//	prog := []ir.Instruction{
//	    ir.Cd("/"),
//	    ir.Ls(),
//	    ir.Dir("a"),
//	    ir.File("b.txt", 14848514),
//	}
//
// Instruction.String renders an instruction back in the line grammar, so
// parsing the String form of an instruction yields the same instruction.
//
// # Errors
//
// The sentinel errors ErrParse, ErrNavigation and ErrUnsatisfiable are
// shared by the parse, replay and aggregate packages.  Their typed errors
// unwrap to these sentinels, so callers may use errors.Is.
//
// # Related Packages
//
//   - github.com/signadot/advent/ir/fpath - segmented paths
//   - github.com/signadot/advent/parse - text to IR
//   - github.com/signadot/advent/replay - IR to model
package ir
