package token

import (
	"fmt"
	"strconv"
)

// Pos is a position within a single input line.
type Pos struct {
	Line    int    // 0-based line index in the input
	Col     int    // byte offset within the line
	Context []byte // the line the position refers to (for error messages)
}

func (p *Pos) LineCol() (int, int) {
	return p.Line, p.Col
}

func (p Pos) String() string {
	var sample string
	if len(p.Context) > 0 {
		sample = string(p.Context[max(0, p.Col-5):min(p.Col+5, len(p.Context))])
	} else {
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at line=%d, col=%d", sample, p.Line, p.Col)
}
