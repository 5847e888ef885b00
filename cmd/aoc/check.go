package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/signadot/advent/puzzle"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := noArgs("check", args); err != nil {
		return err
	}
	ps := puzzle.All()
	if cfg.Day != 0 {
		p, ok := puzzle.Lookup(cfg.Day)
		if !ok {
			return fmt.Errorf("%w: no puzzle for day %d", cli.ErrUsage, cfg.Day)
		}
		ps = []puzzle.Puzzle{p}
	}
	var (
		results []*puzzle.CheckResult
		failed  int
	)
	for _, p := range ps {
		res, err := puzzle.Check(p)
		if err != nil {
			return err
		}
		if !res.OK {
			failed++
		}
		results = append(results, res)
	}
	if cfg.J || cfg.Y {
		if err := emit(cfg.MainConfig, cc.Out, results); err != nil {
			return err
		}
	} else {
		ok, bad := fmt.Sprint, fmt.Sprint
		if cfg.colored(cc.Out) {
			ok = color.New(color.FgGreen).Sprint
			bad = color.New(color.FgRed).Sprint
		}
		for _, res := range results {
			if res.OK {
				fmt.Fprintln(cc.Out, ok(res))
				continue
			}
			fmt.Fprintln(cc.Out, bad(res))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d samples failed", failed, len(results))
	}
	return nil
}
