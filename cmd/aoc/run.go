package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/advent/puzzle"
)

func run(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		return err
	}
	p, ok := puzzle.Lookup(cfg.Day)
	if !ok {
		return fmt.Errorf("%w: no puzzle for day %d, see 'aoc days'", cli.ErrUsage, cfg.Day)
	}
	return solve(cfg.MainConfig, cc, p, args)
}

// solve runs p over each file, or over the command input when there are
// no files, and emits the answers.
func solve(cfg *MainConfig, cc *cli.Context, p puzzle.Puzzle, files []string) error {
	var (
		answers []*puzzle.Answer
		err     error
	)
	if len(files) == 0 {
		lines, err := puzzle.ReadLines(cc.In)
		if err != nil {
			return err
		}
		a, err := p.Solve(lines)
		if err != nil {
			return err
		}
		answers = append(answers, a)
	} else {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		answers, err = puzzle.SolveFiles(ctx, p, files)
		if err != nil {
			return err
		}
	}
	return emit(cfg, cc.Out, answers)
}
