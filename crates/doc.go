// Package crates simulates a crane rearranging stacks of crates.
//
// Input is a drawing of the stacks, a blank line and then one move per
// line:
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
//	move 1 from 2 to 1
package crates
