package monkey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var (
	ErrBadMonkey = errors.New("bad monkey")
	ErrOverflow  = errors.New("worry level overflow")
)

type Monkey struct {
	ID        int
	Items     []int
	Operation string
	Divisor   int
	IfTrue    int
	IfFalse   int
	Inspected int

	program *vm.Program
	// bound evaluates the operation in floating point so that results
	// outside the int range are detected.
	bound *vm.Program
}

type opEnv struct {
	Old int `expr:"old"`
}

type boundEnv struct {
	Old float64 `expr:"old"`
}

// Compile compiles the monkey's operation.
func (m *Monkey) Compile() error {
	prg, err := expr.Compile(m.Operation, expr.Env(opEnv{}), expr.AsInt())
	if err != nil {
		return fmt.Errorf("%w %d: operation %q: %w", ErrBadMonkey, m.ID, m.Operation, err)
	}
	bound, err := expr.Compile(m.Operation, expr.Env(boundEnv{}), expr.AsFloat64())
	if err != nil {
		return fmt.Errorf("%w %d: operation %q: %w", ErrBadMonkey, m.ID, m.Operation, err)
	}
	m.program, m.bound = prg, bound
	return nil
}

// Target returns the monkey an item with the given worry level is
// thrown to.
func (m *Monkey) Target(worry int) int {
	if worry%m.Divisor == 0 {
		return m.IfTrue
	}
	return m.IfFalse
}

// Parse reads blank line separated monkey descriptions.
func Parse(lines []string) ([]*Monkey, error) {
	var (
		res []*Monkey
		cur *Monkey
	)
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := parseLine(&res, &cur, line); err != nil {
			return nil, fmt.Errorf("line %d %q: %w", i, line, err)
		}
	}
	for _, m := range res {
		if m.Operation == "" || m.Divisor == 0 {
			return nil, fmt.Errorf("%w %d: incomplete", ErrBadMonkey, m.ID)
		}
		if err := m.Compile(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func parseLine(res *[]*Monkey, cur **Monkey, line string) error {
	if rest, ok := strings.CutPrefix(line, "Monkey "); ok {
		id, err := strconv.Atoi(strings.TrimSuffix(rest, ":"))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBadMonkey, err)
		}
		if id != len(*res) {
			return fmt.Errorf("%w: expected monkey %d, got %d", ErrBadMonkey, len(*res), id)
		}
		*cur = &Monkey{ID: id}
		*res = append(*res, *cur)
		return nil
	}
	m := *cur
	if m == nil {
		return fmt.Errorf("%w: no monkey header", ErrBadMonkey)
	}
	key, val, ok := strings.Cut(line, ":")
	if !ok {
		return fmt.Errorf("%w: missing ':'", ErrBadMonkey)
	}
	val = strings.TrimSpace(val)
	var err error
	switch key {
	case "Starting items":
		m.Items = m.Items[:0]
		if val == "" {
			return nil
		}
		for _, f := range strings.Split(val, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBadMonkey, err)
			}
			m.Items = append(m.Items, n)
		}
	case "Operation":
		op, ok := strings.CutPrefix(val, "new =")
		if !ok {
			return fmt.Errorf("%w: operation must assign new", ErrBadMonkey)
		}
		m.Operation = strings.TrimSpace(op)
	case "Test":
		m.Divisor, err = lastInt(val, "divisible by ")
		if err == nil && m.Divisor <= 0 {
			err = fmt.Errorf("%w: divisor %d", ErrBadMonkey, m.Divisor)
		}
	case "If true":
		m.IfTrue, err = lastInt(val, "throw to monkey ")
	case "If false":
		m.IfFalse, err = lastInt(val, "throw to monkey ")
	default:
		err = fmt.Errorf("%w: unknown attribute %q", ErrBadMonkey, key)
	}
	return err
}

func lastInt(val, prefix string) (int, error) {
	rest, ok := strings.CutPrefix(val, prefix)
	if !ok {
		return 0, fmt.Errorf("%w: expected %q", ErrBadMonkey, prefix)
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadMonkey, err)
	}
	return n, nil
}
