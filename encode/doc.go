// Package encode renders a [fstree.Model] as an indented tree.
//
//	- / (dir, size=48381165)
//	  - a (dir, size=94853)
//	    - e (dir, size=584)
//	      - i (file, size=584)
//
// Colors, a depth limit and container totals are controlled with
// [EncodeOption]s.
package encode
