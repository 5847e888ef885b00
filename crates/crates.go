package crates

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/advent/debug"
	"github.com/signadot/advent/token"
)

var (
	ErrBadDrawing = errors.New("bad stack drawing")
	ErrBadMove    = errors.New("bad move")
)

// Crane selects how a move of several crates is carried out.
type Crane int

const (
	// CrateMover9000 lifts one crate at a time, reversing their order.
	CrateMover9000 Crane = iota
	// CrateMover9001 lifts all crates of a move at once.
	CrateMover9001
)

type Move struct {
	Count int
	From  int // 1-based stack number
	To    int
}

func (m Move) String() string {
	return fmt.Sprintf("move %d from %d to %d", m.Count, m.From, m.To)
}

// Stacks holds each stack bottom first.
type Stacks struct {
	stacks [][]byte
}

func (s *Stacks) Len() int {
	return len(s.stacks)
}

// Stack returns a copy of stack i (1-based), bottom first.
func (s *Stacks) Stack(i int) string {
	return string(s.stacks[i-1])
}

func (s *Stacks) Clone() *Stacks {
	res := &Stacks{stacks: make([][]byte, len(s.stacks))}
	for i, st := range s.stacks {
		res.stacks[i] = slices.Clone(st)
	}
	return res
}

// Tops returns the top crate of every stack, a space for empty ones.
func (s *Stacks) Tops() string {
	buf := make([]byte, len(s.stacks))
	for i, st := range s.stacks {
		if len(st) == 0 {
			buf[i] = ' '
			continue
		}
		buf[i] = st[len(st)-1]
	}
	return string(buf)
}

func (s *Stacks) String() string {
	lines := make([]string, len(s.stacks))
	for i, st := range s.stacks {
		lines[i] = fmt.Sprintf("%d: %s", i+1, st)
	}
	return strings.Join(lines, "\n")
}

// Apply carries out moves in order with crane c.  It stops at the first
// move naming a missing stack or more crates than the source holds.
func (s *Stacks) Apply(moves []Move, c Crane) error {
	for i, m := range moves {
		if err := s.apply(m, c); err != nil {
			return fmt.Errorf("move %d %q: %w", i, m, err)
		}
		if debug.Sim() {
			debug.Logf("after %s:\n%s\n", m, s)
		}
	}
	return nil
}

func (s *Stacks) apply(m Move, c Crane) error {
	n := len(s.stacks)
	if m.From < 1 || m.From > n || m.To < 1 || m.To > n {
		return fmt.Errorf("%w: no such stack", ErrBadMove)
	}
	src := s.stacks[m.From-1]
	if m.Count < 0 || m.Count > len(src) {
		return fmt.Errorf("%w: stack %d holds %d crates", ErrBadMove, m.From, len(src))
	}
	lifted := slices.Clone(src[len(src)-m.Count:])
	s.stacks[m.From-1] = src[:len(src)-m.Count]
	if c == CrateMover9000 {
		slices.Reverse(lifted)
	}
	s.stacks[m.To-1] = append(s.stacks[m.To-1], lifted...)
	return nil
}

// Parse reads the drawing and the moves.
func Parse(lines []string) (*Stacks, []Move, error) {
	blank := slices.Index(lines, "")
	if blank < 1 {
		return nil, nil, fmt.Errorf("%w: missing drawing or blank line", ErrBadDrawing)
	}
	stacks, err := parseDrawing(lines[:blank])
	if err != nil {
		return nil, nil, err
	}
	var moves []Move
	for i, line := range lines[blank+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := ParseMove(line, blank+1+i)
		if err != nil {
			return nil, nil, err
		}
		moves = append(moves, m)
	}
	return stacks, moves, nil
}

// ParseMove parses "move N from A to B".
func ParseMove(line string, lineNo int) (Move, error) {
	toks, err := token.TokenizeString(line, lineNo)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %w", ErrBadMove, err)
	}
	words := []string{"move", "", "from", "", "to", ""}
	if len(toks) != len(words) {
		return Move{}, fmt.Errorf("%w: line %d %q", ErrBadMove, lineNo, line)
	}
	var nums []int
	for i := range toks {
		tok := &toks[i]
		if words[i] != "" {
			if tok.String() != words[i] {
				return Move{}, fmt.Errorf("%w: expected %q at %s", ErrBadMove, words[i], tok.Pos)
			}
			continue
		}
		if tok.Type != token.TInteger {
			return Move{}, fmt.Errorf("%w: expected a number at %s", ErrBadMove, tok.Pos)
		}
		n, err := strconv.Atoi(tok.String())
		if err != nil {
			return Move{}, fmt.Errorf("%w: %w", ErrBadMove, err)
		}
		nums = append(nums, n)
	}
	return Move{Count: nums[0], From: nums[1], To: nums[2]}, nil
}

// parseDrawing reads crate rows top down followed by the row of stack
// numbers.  Crate i sits in column 4*i+1.
func parseDrawing(lines []string) (*Stacks, error) {
	numbers := lines[len(lines)-1]
	toks, err := token.TokenizeString(numbers, len(lines)-1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDrawing, err)
	}
	for i := range toks {
		if toks[i].String() != strconv.Itoa(i+1) {
			return nil, fmt.Errorf("%w: bad stack number at %s", ErrBadDrawing, toks[i].Pos)
		}
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: no stacks", ErrBadDrawing)
	}
	s := &Stacks{stacks: make([][]byte, len(toks))}
	for row := len(lines) - 2; row >= 0; row-- {
		line := lines[row]
		for col := 1; col < len(line); col += 4 {
			c := line[col]
			if c == ' ' {
				continue
			}
			i := col / 4
			if i >= len(s.stacks) || line[col-1] != '[' || col+1 >= len(line) || line[col+1] != ']' {
				return nil, fmt.Errorf("%w: line %d col %d", ErrBadDrawing, row, col)
			}
			if len(s.stacks[i]) != len(lines)-2-row {
				return nil, fmt.Errorf("%w: crate floating at line %d col %d", ErrBadDrawing, row, col)
			}
			s.stacks[i] = append(s.stacks[i], c)
		}
	}
	return s, nil
}
