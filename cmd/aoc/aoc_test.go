package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
	"github.com/signadot/advent/puzzle"
)

func testAnswers() []*puzzle.Answer {
	return []*puzzle.Answer{
		{Day: 7, Title: "No Space Left On Device", File: "a.txt", PartOne: "95437", PartTwo: "24933642"},
		{Day: 7, Title: "No Space Left On Device", PartOne: "1", PartTwo: "2"},
	}
}

func TestEmitText(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := emit(&MainConfig{}, buf, testAnswers()); err != nil {
		t.Fatal(err)
	}
	want := `a.txt: day 7 (No Space Left On Device): part one: 95437, part two: 24933642
day 7 (No Space Left On Device): part one: 1, part two: 2
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := emit(&MainConfig{Y: true}, buf, testAnswers()); err != nil {
		t.Fatal(err)
	}
	var got []*puzzle.Answer
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(testAnswers(), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), "partOne:") {
		t.Errorf("missing field names in %q", buf.String())
	}
}

func TestEmitJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	res := []*MonkeyResult{{Rounds: 20, Relief: true, Business: 10605}}
	if err := emit(&MainConfig{J: true}, buf, res); err != nil {
		t.Fatal(err)
	}
	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("%v in %q", err, buf.String())
	}
	want := []map[string]any{{"rounds": 20.0, "relief": true, "business": 10605.0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMonkeyResultString(t *testing.T) {
	r := &MonkeyResult{File: "in.txt", Rounds: 10000, Business: 2713310158}
	if got := r.String(); got != "in.txt: monkey business after 10000 rounds: 2713310158" {
		t.Errorf("got %q", got)
	}
}

func TestNoArgs(t *testing.T) {
	if err := noArgs("check", nil); err != nil {
		t.Errorf("no args: %v", err)
	}
	err := noArgs("check", []string{"input.txt"})
	if !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
}
