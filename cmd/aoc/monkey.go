package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/advent/puzzle"
)

type MonkeyResult struct {
	File     string `yaml:"file,omitempty"`
	Rounds   int    `yaml:"rounds"`
	Relief   bool   `yaml:"relief"`
	Business int    `yaml:"business"`
}

func (r *MonkeyResult) String() string {
	s := fmt.Sprintf("monkey business after %d rounds: %d", r.Rounds, r.Business)
	if r.File != "" {
		return r.File + ": " + s
	}
	return s
}

func monkeys(cfg *MonkeyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Monkey.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Rounds < 0 {
		return fmt.Errorf("%w: -rounds must not be negative", cli.ErrUsage)
	}
	var results []*MonkeyResult
	if len(args) == 0 {
		lines, err := puzzle.ReadLines(cc.In)
		if err != nil {
			return err
		}
		r, err := cfg.simulate(lines)
		if err != nil {
			return err
		}
		results = append(results, r)
	}
	for _, arg := range args {
		r, err := cfg.simulateFile(arg)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		results = append(results, r)
	}
	return emit(cfg.MainConfig, cc.Out, results)
}

func (cfg *MonkeyConfig) simulateFile(file string) (*MonkeyResult, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lines, err := puzzle.ReadLines(f)
	if err != nil {
		return nil, err
	}
	r, err := cfg.simulate(lines)
	if err != nil {
		return nil, err
	}
	r.File = file
	return r, nil
}

func (cfg *MonkeyConfig) simulate(lines []string) (*MonkeyResult, error) {
	b, err := puzzle.MonkeyBusiness(lines, cfg.Rounds, cfg.Relief)
	if err != nil {
		return nil, err
	}
	return &MonkeyResult{Rounds: cfg.Rounds, Relief: cfg.Relief, Business: b}, nil
}
