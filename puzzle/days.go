package puzzle

import (
	"github.com/signadot/advent/aggregate"
	"github.com/signadot/advent/crates"
	"github.com/signadot/advent/fstree"
	"github.com/signadot/advent/monkey"
	"github.com/signadot/advent/parse"
	"github.com/signadot/advent/replay"
	"github.com/signadot/advent/rucksack"
)

type Rucksacks struct{}

func (Rucksacks) Day() int      { return 3 }
func (Rucksacks) Title() string { return "Rucksack Reorganization" }

func (p Rucksacks) Solve(lines []string) (*Answer, error) {
	shared, badges, err := rucksack.Sums(lines)
	if err != nil {
		return nil, err
	}
	return newAnswer(p, shared, badges), nil
}

type Crates struct{}

func (Crates) Day() int      { return 5 }
func (Crates) Title() string { return "Supply Stacks" }

func (p Crates) Solve(lines []string) (*Answer, error) {
	stacks, moves, err := crates.Parse(lines)
	if err != nil {
		return nil, err
	}
	one := stacks.Clone()
	if err := one.Apply(moves, crates.CrateMover9000); err != nil {
		return nil, err
	}
	if err := stacks.Apply(moves, crates.CrateMover9001); err != nil {
		return nil, err
	}
	return newAnswer(p, one.Tops(), stacks.Tops()), nil
}

// DirSize answers the directory size questions for a terminal
// transcript.
type DirSize struct {
	Threshold uint64
	Capacity  uint64
	Required  uint64
}

func DefaultDirSize() DirSize {
	return DirSize{
		Threshold: aggregate.DefaultThreshold,
		Capacity:  aggregate.DefaultCapacity,
		Required:  aggregate.DefaultRequired,
	}
}

func (DirSize) Day() int      { return 7 }
func (DirSize) Title() string { return "No Space Left On Device" }

func (p DirSize) Solve(lines []string) (*Answer, error) {
	m, err := Model(lines)
	if err != nil {
		return nil, err
	}
	one := aggregate.TotalUnderThreshold(m, p.Threshold)
	two, err := aggregate.MinimumSufficient(m, p.Capacity, p.Required)
	if err != nil {
		return nil, err
	}
	return newAnswer(p, one, two), nil
}

// Model parses and replays a transcript, into m if given.
func Model(lines []string, opts ...replay.ReplayOption) (*fstree.Model, error) {
	instrs, err := parse.Lines(lines, parse.SkipBlank())
	if err != nil {
		return nil, err
	}
	return replay.Replay(instrs, opts...)
}

// Monkeys runs the monkey simulation with relief for ReliefRounds and
// again without relief for PlainRounds.
type Monkeys struct {
	ReliefRounds int
	PlainRounds  int
}

func DefaultMonkeys() Monkeys {
	return Monkeys{ReliefRounds: 20, PlainRounds: 10000}
}

func (Monkeys) Day() int      { return 11 }
func (Monkeys) Title() string { return "Monkey in the Middle" }

func (p Monkeys) Solve(lines []string) (*Answer, error) {
	one, err := MonkeyBusiness(lines, p.ReliefRounds, true)
	if err != nil {
		return nil, err
	}
	two, err := MonkeyBusiness(lines, p.PlainRounds, false)
	if err != nil {
		return nil, err
	}
	return newAnswer(p, one, two), nil
}

// MonkeyBusiness simulates rounds over freshly parsed monkeys.
func MonkeyBusiness(lines []string, rounds int, relief bool) (int, error) {
	ms, err := monkey.Parse(lines)
	if err != nil {
		return 0, err
	}
	sim, err := monkey.NewSim(ms, relief)
	if err != nil {
		return 0, err
	}
	if err := sim.Run(rounds); err != nil {
		return 0, err
	}
	return sim.Business(), nil
}
