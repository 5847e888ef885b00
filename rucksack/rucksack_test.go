package rucksack

import (
	"errors"
	"testing"
)

var sample = []string{
	"vJrwpWtwJgWrhcsFMMfFFhFp",
	"jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL",
	"PmmdzqPrVvPwwTWBwg",
	"wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn",
	"ttgJtRGJQctTZtZT",
	"CrZsJsPPZsGzwwsLwLmpwMDw",
}

func TestPriority(t *testing.T) {
	tests := map[byte]int{'a': 1, 'z': 26, 'A': 27, 'Z': 52, 'p': 16, 'L': 38}
	for c, want := range tests {
		got, err := Priority(c)
		if err != nil || got != want {
			t.Errorf("%q: got %d, %v want %d", c, got, err, want)
		}
	}
	for _, c := range []byte{'0', ' ', '[', 0xff} {
		if _, err := Priority(c); !errors.Is(err, ErrBadItem) {
			t.Errorf("%q: got %v", c, err)
		}
	}
}

func TestSharedPriority(t *testing.T) {
	want := []int{16, 38, 42, 22, 20, 19}
	for i, line := range sample {
		got, err := SharedPriority(line)
		if err != nil {
			t.Fatal(err)
		}
		if got != want[i] {
			t.Errorf("line %d: got %d want %d", i, got, want[i])
		}
	}
}

func TestSums(t *testing.T) {
	shared, badges, err := Sums(sample)
	if err != nil {
		t.Fatal(err)
	}
	if shared != 157 || badges != 70 {
		t.Errorf("got %d, %d want 157, 70", shared, badges)
	}
}

func TestErrors(t *testing.T) {
	if _, err := SharedPriority("abc"); !errors.Is(err, ErrOddLength) {
		t.Errorf("odd: %v", err)
	}
	if _, err := SharedPriority("a1"); !errors.Is(err, ErrBadItem) {
		t.Errorf("bad item: %v", err)
	}
	if _, err := BadgePriority(sample[:2]); !errors.Is(err, ErrGroupSize) {
		t.Errorf("group: %v", err)
	}
	if _, _, err := Sums(sample[:4]); !errors.Is(err, ErrGroupSize) {
		t.Errorf("sums: %v", err)
	}
}
