// Package rucksack finds items shared between rucksack compartments and
// between the rucksacks of a group.
package rucksack

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	ErrBadItem   = errors.New("bad item")
	ErrOddLength = errors.New("rucksack has odd length")
	ErrGroupSize = errors.New("group must have 3 rucksacks")
)

// priorities maps an item byte to its priority, 0 for non items.
var priorities [256]int

func init() {
	for c := 'a'; c <= 'z'; c++ {
		priorities[c] = int(c-'a') + 1
	}
	for c := 'A'; c <= 'Z'; c++ {
		priorities[c] = int(c-'A') + 27
	}
}

// Priority returns the priority of item c.
func Priority(c byte) (int, error) {
	p := priorities[c]
	if p == 0 {
		return 0, fmt.Errorf("%w %q", ErrBadItem, c)
	}
	return p, nil
}

// set has bit p set for each item of priority p.
type set uint64

func items(s string) (set, error) {
	var res set
	for i := 0; i < len(s); i++ {
		p, err := Priority(s[i])
		if err != nil {
			return 0, err
		}
		res |= 1 << p
	}
	return res, nil
}

func (s set) sum() int {
	res := 0
	for s != 0 {
		p := bits.TrailingZeros64(uint64(s))
		res += p
		s &^= 1 << p
	}
	return res
}

// SharedPriority sums the priorities of the items in both halves of
// line.
func SharedPriority(line string) (int, error) {
	if len(line)%2 != 0 {
		return 0, fmt.Errorf("%w: %q", ErrOddLength, line)
	}
	a, err := items(line[:len(line)/2])
	if err != nil {
		return 0, err
	}
	b, err := items(line[len(line)/2:])
	if err != nil {
		return 0, err
	}
	return (a & b).sum(), nil
}

// BadgePriority sums the priorities of the items common to all three
// rucksacks of group.
func BadgePriority(group []string) (int, error) {
	if len(group) != 3 {
		return 0, fmt.Errorf("%w, got %d", ErrGroupSize, len(group))
	}
	common := ^set(0)
	for _, r := range group {
		s, err := items(r)
		if err != nil {
			return 0, err
		}
		common &= s
	}
	return common.sum(), nil
}

// Sums returns the total shared priority of lines and the total badge
// priority of its groups of three.
func Sums(lines []string) (shared, badges int, err error) {
	if len(lines)%3 != 0 {
		return 0, 0, fmt.Errorf("%w: %d rucksacks", ErrGroupSize, len(lines))
	}
	for i, line := range lines {
		p, err := SharedPriority(line)
		if err != nil {
			return 0, 0, fmt.Errorf("line %d: %w", i, err)
		}
		shared += p
	}
	for i := 0; i < len(lines); i += 3 {
		p, err := BadgePriority(lines[i : i+3])
		if err != nil {
			return 0, 0, fmt.Errorf("group at line %d: %w", i, err)
		}
		badges += p
	}
	return shared, badges, nil
}
