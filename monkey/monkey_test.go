package monkey

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = `Monkey 0:
  Starting items: 79, 98
  Operation: new = old * 19
  Test: divisible by 23
    If true: throw to monkey 2
    If false: throw to monkey 3

Monkey 1:
  Starting items: 54, 65, 75, 74
  Operation: new = old + 6
  Test: divisible by 19
    If true: throw to monkey 2
    If false: throw to monkey 0

Monkey 2:
  Starting items: 79, 60, 97
  Operation: new = old * old
  Test: divisible by 13
    If true: throw to monkey 1
    If false: throw to monkey 3

Monkey 3:
  Starting items: 74
  Operation: new = old + 3
  Test: divisible by 17
    If true: throw to monkey 0
    If false: throw to monkey 1`

func parseSample(t *testing.T) []*Monkey {
	t.Helper()
	ms, err := Parse(strings.Split(sample, "\n"))
	if err != nil {
		t.Fatal(err)
	}
	return ms
}

func TestParse(t *testing.T) {
	ms := parseSample(t)
	if len(ms) != 4 {
		t.Fatalf("got %d monkeys", len(ms))
	}
	m := ms[2]
	if m.Operation != "old * old" || m.Divisor != 13 || m.IfTrue != 1 || m.IfFalse != 3 {
		t.Errorf("monkey 2: %+v", m)
	}
	if diff := cmp.Diff([]int{54, 65, 75, 74}, ms[1].Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestFirstRound(t *testing.T) {
	s, err := NewSim(parseSample(t), true)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Round(); err != nil {
		t.Fatal(err)
	}
	want := [][]int{
		{20, 23, 27, 26},
		{2080, 25, 167, 207, 401, 1046},
		nil,
		nil,
	}
	got := make([][]int, 4)
	for i, m := range s.Monkeys() {
		got[i] = m.Items
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBusiness(t *testing.T) {
	tests := []struct {
		name   string
		relief bool
		rounds int
		want   int
	}{
		{name: "relief", relief: true, rounds: 20, want: 10605},
		{name: "no relief", relief: false, rounds: 10000, want: 2713310158},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSim(parseSample(t), tt.relief)
			if err != nil {
				t.Fatal(err)
			}
			if err := s.Run(tt.rounds); err != nil {
				t.Fatal(err)
			}
			if got := s.Business(); got != tt.want {
				t.Errorf("got %d want %d", got, tt.want)
			}
		})
	}
}

func TestInspectionCounts(t *testing.T) {
	s, err := NewSim(parseSample(t), true)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Run(20); err != nil {
		t.Fatal(err)
	}
	var got []int
	for _, m := range s.Monkeys() {
		got = append(got, m.Inspected)
	}
	if diff := cmp.Diff([]int{101, 95, 7, 105}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "no header", in: "  Starting items: 1"},
		{name: "out of order", in: "Monkey 1:"},
		{name: "bad op", in: "Monkey 0:\n  Operation: new = old *\n  Test: divisible by 2\n  If true: throw to monkey 1\n  If false: throw to monkey 1"},
		{name: "no assignment", in: "Monkey 0:\n  Operation: old * 2"},
		{name: "bad item", in: "Monkey 0:\n  Starting items: 1, x"},
		{name: "zero divisor", in: "Monkey 0:\n  Test: divisible by 0"},
		{name: "incomplete", in: "Monkey 0:\n  Starting items: 1"},
		{name: "unknown", in: "Monkey 0:\n  Mood: grumpy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.Split(tt.in, "\n"))
			if !errors.Is(err, ErrBadMonkey) {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestNewSimErrors(t *testing.T) {
	ms := parseSample(t)
	ms[3].IfFalse = 7
	if _, err := NewSim(ms, true); !errors.Is(err, ErrBadMonkey) {
		t.Errorf("got %v", err)
	}
	if _, err := NewSim(ms[:1], true); !errors.Is(err, ErrBadMonkey) {
		t.Errorf("got %v", err)
	}
}

func TestOverflow(t *testing.T) {
	square := func() []*Monkey {
		return []*Monkey{
			{ID: 0, Items: []int{1 << 40}, Operation: "old * old", Divisor: 2, IfTrue: 1, IfFalse: 1},
			{ID: 1, Operation: "old + 1", Divisor: 3, IfTrue: 0, IfFalse: 0},
		}
	}
	for _, relief := range []bool{true, false} {
		ms := square()
		if !relief {
			ms[0].Divisor = 1 << 50
		}
		s, err := NewSim(ms, relief)
		if err != nil {
			t.Fatal(err)
		}
		if err := s.Round(); !errors.Is(err, ErrOverflow) {
			t.Errorf("relief=%t: got %v", relief, err)
		}
	}
}

func TestDivisorProductOverflow(t *testing.T) {
	ms := []*Monkey{
		{ID: 0, Operation: "old", Divisor: 1 << 40, IfTrue: 1, IfFalse: 1},
		{ID: 1, Operation: "old", Divisor: 1 << 40, IfTrue: 0, IfFalse: 0},
	}
	if _, err := NewSim(ms, false); !errors.Is(err, ErrOverflow) {
		t.Errorf("got %v", err)
	}
}
