package ir

import (
	"fmt"
	"strconv"
)

type Kind int

const (
	ChangeLocation Kind = iota
	ListMarker
	DeclareChild
	DeclareEntry
)

func Kinds() []Kind {
	return []Kind{ChangeLocation, ListMarker, DeclareChild, DeclareEntry}
}

func (k Kind) String() string {
	switch k {
	case ChangeLocation:
		return "ChangeLocation"
	case ListMarker:
		return "ListMarker"
	case DeclareChild:
		return "DeclareChild"
	case DeclareEntry:
		return "DeclareEntry"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Target classifies the destination of a ChangeLocation instruction.
type Target int

const (
	TargetChild Target = iota
	TargetRoot
	TargetParent
)

const (
	RootName   = "/"
	ParentName = ".."
)

// Instruction is one element of the IR.  Fields are populated
// depending on Kind:
//
//   - ChangeLocation: Name is "/", ".." or a child name
//   - ListMarker: nothing
//   - DeclareChild: Name
//   - DeclareEntry: Name and Size
type Instruction struct {
	Kind Kind
	Name string
	Size uint64
}

func Cd(name string) Instruction {
	return Instruction{Kind: ChangeLocation, Name: name}
}

func Ls() Instruction {
	return Instruction{Kind: ListMarker}
}

func Dir(name string) Instruction {
	return Instruction{Kind: DeclareChild, Name: name}
}

func File(name string, size uint64) Instruction {
	return Instruction{Kind: DeclareEntry, Name: name, Size: size}
}

// Target returns the kind of destination for a ChangeLocation
// instruction.  It returns TargetChild for all other kinds.
func (in Instruction) Target() Target {
	if in.Kind != ChangeLocation {
		return TargetChild
	}
	switch in.Name {
	case RootName:
		return TargetRoot
	case ParentName:
		return TargetParent
	}
	return TargetChild
}

// String renders the instruction in the line grammar it is parsed from.
func (in Instruction) String() string {
	switch in.Kind {
	case ChangeLocation:
		return "$ cd " + in.Name
	case ListMarker:
		return "$ ls"
	case DeclareChild:
		return "dir " + in.Name
	case DeclareEntry:
		return strconv.FormatUint(in.Size, 10) + " " + in.Name
	}
	return in.Kind.String()
}
