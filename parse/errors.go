package parse

import (
	"fmt"

	"github.com/signadot/advent/ir"
)

// ParseError reports a line which is not an instruction.
type ParseError struct {
	Filename string
	Line     int // 0-based index into the input lines
	Text     string
	Reason   string
}

func (e *ParseError) Unwrap() error {
	return ir.ErrParse
}

func (e *ParseError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.Filename != "" {
		loc = e.Filename + ":" + loc
	}
	return fmt.Sprintf("%s: %s %q: %s", ir.ErrParse, loc, e.Text, e.Reason)
}
