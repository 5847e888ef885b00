package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/advent/puzzle"
)

func dirSize(cfg *DirSizeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.DirSize.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Threshold < 0 || cfg.Capacity < 0 || cfg.Required < 0 {
		return fmt.Errorf("%w: sizes must not be negative", cli.ErrUsage)
	}
	p := puzzle.DirSize{
		Threshold: uint64(cfg.Threshold),
		Capacity:  uint64(cfg.Capacity),
		Required:  uint64(cfg.Required),
	}
	return solve(cfg.MainConfig, cc, p, args)
}
