package puzzle

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

//go:embed samples
var samples embed.FS

var (
	answersOnce sync.Once
	answers     map[int]*Answer
	answersErr  error
)

func loadAnswers() {
	d, err := samples.ReadFile("samples/answers.yaml")
	if err != nil {
		answersErr = err
		return
	}
	var list []*Answer
	if err := yaml.Unmarshal(d, &list); err != nil {
		answersErr = fmt.Errorf("samples/answers.yaml: %w", err)
		return
	}
	answers = make(map[int]*Answer, len(list))
	for _, a := range list {
		answers[a.Day] = a
	}
}

// Sample returns the sample input lines for day and its expected
// answer.
func Sample(day int) ([]string, *Answer, error) {
	answersOnce.Do(loadAnswers)
	if answersErr != nil {
		return nil, nil, answersErr
	}
	want, ok := answers[day]
	if !ok {
		return nil, nil, fmt.Errorf("no sample answer for day %d", day)
	}
	d, err := samples.ReadFile(fmt.Sprintf("samples/day%02d.txt", day))
	if err != nil {
		return nil, nil, err
	}
	lines, err := ReadLines(bytes.NewReader(d))
	if err != nil {
		return nil, nil, err
	}
	return lines, want, nil
}

type CheckResult struct {
	Day  int     `yaml:"day"`
	OK   bool    `yaml:"ok"`
	Want *Answer `yaml:"want"`
	Got  *Answer `yaml:"got,omitempty"`
	Diff string  `yaml:"diff,omitempty"`
}

func (r *CheckResult) String() string {
	if r.OK {
		return fmt.Sprintf("day %d: ok", r.Day)
	}
	return fmt.Sprintf("day %d: mismatch %s", r.Day, r.Diff)
}

// Check solves the sample of p and compares the result with the
// expected answer.  A solver error is returned as an error, a wrong
// answer as a result with OK unset.
func Check(p Puzzle) (*CheckResult, error) {
	lines, want, err := Sample(p.Day())
	if err != nil {
		return nil, err
	}
	got, err := p.Solve(lines)
	if err != nil {
		return nil, fmt.Errorf("day %d sample: %w", p.Day(), err)
	}
	res := &CheckResult{Day: p.Day(), Want: want, Got: got}
	res.OK = got.PartOne == want.PartOne && got.PartTwo == want.PartTwo
	if !res.OK {
		res.Diff = diffText(parts(want), parts(got))
	}
	return res, nil
}

func parts(a *Answer) string {
	return "part one: " + a.PartOne + ", part two: " + a.PartTwo
}

// diffText renders a character diff from a to b, deletions as [-x-]
// and insertions as {+x+}.
func diffText(a, b string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(a, b, false)
	buf := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			buf.WriteString("[-" + diff.Text + "-]")
		case diffpatch.DiffEqual:
			buf.WriteString(diff.Text)
		case diffpatch.DiffInsert:
			buf.WriteString("{+" + diff.Text + "+}")
		}
	}
	return buf.String()
}
