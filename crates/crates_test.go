package crates

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = `    [D]    
[N] [C]    
[Z] [M] [P]
 1   2   3 

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2`

func parseSample(t *testing.T) (*Stacks, []Move) {
	t.Helper()
	s, moves, err := Parse(strings.Split(sample, "\n"))
	if err != nil {
		t.Fatal(err)
	}
	return s, moves
}

func TestParse(t *testing.T) {
	s, moves := parseSample(t)
	got := []string{s.Stack(1), s.Stack(2), s.Stack(3)}
	if diff := cmp.Diff([]string{"ZN", "MCD", "P"}, got); diff != "" {
		t.Errorf("stacks mismatch (-want +got):\n%s", diff)
	}
	want := []Move{{1, 2, 1}, {3, 1, 3}, {2, 2, 1}, {1, 1, 2}}
	if diff := cmp.Diff(want, moves); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
	if moves[0].String() != "move 1 from 2 to 1" {
		t.Errorf("got %q", moves[0])
	}
	if s.Tops() != "NDP" {
		t.Errorf("tops %q", s.Tops())
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		crane Crane
		want  string
	}{
		{crane: CrateMover9000, want: "CMZ"},
		{crane: CrateMover9001, want: "MCD"},
	}
	for _, tt := range tests {
		s, moves := parseSample(t)
		if err := s.Apply(moves, tt.crane); err != nil {
			t.Fatal(err)
		}
		if got := s.Tops(); got != tt.want {
			t.Errorf("crane %d: got %q want %q", tt.crane, got, tt.want)
		}
	}
}

func TestClone(t *testing.T) {
	s, moves := parseSample(t)
	c := s.Clone()
	if err := c.Apply(moves, CrateMover9000); err != nil {
		t.Fatal(err)
	}
	if s.Tops() != "NDP" {
		t.Errorf("original changed: %q", s.Tops())
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []Move{
		{Count: 1, From: 0, To: 1},
		{Count: 1, From: 1, To: 4},
		{Count: 3, From: 1, To: 2},
	}
	for _, m := range tests {
		s, _ := parseSample(t)
		if err := s.Apply([]Move{m}, CrateMover9001); !errors.Is(err, ErrBadMove) {
			t.Errorf("%s: got %v", m, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "no blank", in: "[A]\n 1 \nmove 1 from 1 to 1", want: ErrBadDrawing},
		{name: "bad numbers", in: "[A]\n 2 \n\nmove 1 from 1 to 1", want: ErrBadDrawing},
		{name: "floating", in: "[A]\n    [B]\n 1   2 \n", want: ErrBadDrawing},
		{name: "bad move word", in: "[A]\n 1 \n\nmove 1 to 1 from 1", want: ErrBadMove},
		{name: "bad move count", in: "[A]\n 1 \n\nmove x from 1 to 1", want: ErrBadMove},
		{name: "short move", in: "[A]\n 1 \n\nmove 1 from 1", want: ErrBadMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(strings.Split(tt.in, "\n"))
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v want %v", err, tt.want)
			}
		})
	}
}
