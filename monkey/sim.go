package monkey

import (
	"fmt"
	"math"
	"slices"

	"github.com/expr-lang/expr/vm"
	"github.com/signadot/advent/debug"
)

// Sim runs rounds of item throwing.
//
// Without relief worry levels grow without bound, so they are kept
// modulo the product of all divisors, which preserves every
// divisibility test.  With relief levels are divided by 3 after each
// inspection and kept exact.  An operation whose result does not fit
// in an int fails the round with ErrOverflow.
type Sim struct {
	monkeys []*Monkey
	relief  bool
	modulus int
	round   int
	vm      vm.VM
}

func NewSim(monkeys []*Monkey, relief bool) (*Sim, error) {
	if len(monkeys) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 monkeys, got %d", ErrBadMonkey, len(monkeys))
	}
	s := &Sim{monkeys: monkeys, relief: relief, modulus: 1}
	for _, m := range monkeys {
		for _, t := range []int{m.IfTrue, m.IfFalse} {
			if t < 0 || t >= len(monkeys) || t == m.ID {
				return nil, fmt.Errorf("%w %d: bad target %d", ErrBadMonkey, m.ID, t)
			}
		}
		if m.Divisor <= 0 {
			return nil, fmt.Errorf("%w %d: divisor %d", ErrBadMonkey, m.ID, m.Divisor)
		}
		if m.program == nil || m.bound == nil {
			if err := m.Compile(); err != nil {
				return nil, err
			}
		}
		if s.modulus > math.MaxInt/m.Divisor {
			return nil, fmt.Errorf("%w: product of divisors", ErrOverflow)
		}
		s.modulus *= m.Divisor
	}
	return s, nil
}

func (s *Sim) Monkeys() []*Monkey {
	return s.monkeys
}

// Round lets every monkey in turn inspect and throw all its items.
func (s *Sim) Round() error {
	for _, m := range s.monkeys {
		items := m.Items
		m.Items = nil
		for _, item := range items {
			worry, err := s.inspect(m, item)
			if err != nil {
				return err
			}
			t := s.monkeys[m.Target(worry)]
			t.Items = append(t.Items, worry)
		}
	}
	s.round++
	if debug.Sim() {
		counts := make([]int, len(s.monkeys))
		for i, m := range s.monkeys {
			counts[i] = m.Inspected
		}
		debug.Logf("round %d inspections %v\n", s.round, counts)
	}
	return nil
}

func (s *Sim) inspect(m *Monkey, item int) (int, error) {
	m.Inspected++
	b, err := s.vm.Run(m.bound, boundEnv{Old: float64(item)})
	if err != nil {
		return 0, fmt.Errorf("monkey %d: %w", m.ID, err)
	}
	if f := b.(float64); f >= 0x1p63 || f < -0x1p63 {
		return 0, fmt.Errorf("monkey %d: %w: %s with old=%d", m.ID, ErrOverflow, m.Operation, item)
	}
	v, err := s.vm.Run(m.program, opEnv{Old: item})
	if err != nil {
		return 0, fmt.Errorf("monkey %d: %w", m.ID, err)
	}
	worry := v.(int)
	if s.relief {
		return worry / 3, nil
	}
	return worry % s.modulus, nil
}

// Run runs n rounds.
func (s *Sim) Run(n int) error {
	for range n {
		if err := s.Round(); err != nil {
			return err
		}
	}
	return nil
}

// Business is the product of the two highest inspection counts.
func (s *Sim) Business() int {
	counts := make([]int, len(s.monkeys))
	for i, m := range s.monkeys {
		counts[i] = m.Inspected
	}
	slices.Sort(counts)
	slices.Reverse(counts)
	return counts[0] * counts[1]
}
