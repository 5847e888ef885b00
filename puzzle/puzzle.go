package puzzle

import (
	"fmt"
	"slices"
	"sync"
)

type Puzzle interface {
	Day() int
	Title() string
	Solve(lines []string) (*Answer, error)
}

type Answer struct {
	Day     int    `yaml:"day"`
	Title   string `yaml:"title"`
	File    string `yaml:"file,omitempty"`
	PartOne string `yaml:"partOne"`
	PartTwo string `yaml:"partTwo"`
}

func (a *Answer) String() string {
	if a.File != "" {
		return a.File + ": " + a.plain()
	}
	return a.plain()
}

func (a *Answer) plain() string {
	return fmt.Sprintf("day %d (%s): part one: %s, part two: %s", a.Day, a.Title, a.PartOne, a.PartTwo)
}

func newAnswer(p Puzzle, one, two any) *Answer {
	return &Answer{
		Day:     p.Day(),
		Title:   p.Title(),
		PartOne: fmt.Sprint(one),
		PartTwo: fmt.Sprint(two),
	}
}

var (
	regMu    sync.RWMutex
	registry = map[int]Puzzle{}
)

// Register makes p available by its day.  Registering a day twice
// panics.
func Register(p Puzzle) {
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := registry[p.Day()]; ok {
		panic(fmt.Sprintf("puzzle: day %d registered twice", p.Day()))
	}
	registry[p.Day()] = p
}

func Lookup(day int) (Puzzle, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	p, ok := registry[day]
	return p, ok
}

// All returns the registered puzzles ordered by day.
func All() []Puzzle {
	regMu.RLock()
	defer regMu.RUnlock()
	res := make([]Puzzle, 0, len(registry))
	for _, p := range registry {
		res = append(res, p)
	}
	slices.SortFunc(res, func(a, b Puzzle) int { return a.Day() - b.Day() })
	return res
}

func init() {
	Register(Rucksacks{})
	Register(Crates{})
	Register(DefaultDirSize())
	Register(DefaultMonkeys())
}
