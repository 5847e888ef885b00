package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/advent/puzzle"
)

type dayInfo struct {
	Day   int    `yaml:"day"`
	Title string `yaml:"title"`
}

func (d *dayInfo) String() string {
	return fmt.Sprintf("%2d  %s", d.Day, d.Title)
}

func days(cfg *DaysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Days.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := noArgs("days", args); err != nil {
		return err
	}
	var res []*dayInfo
	for _, p := range puzzle.All() {
		res = append(res, &dayInfo{Day: p.Day(), Title: p.Title()})
	}
	return emit(cfg.MainConfig, cc.Out, res)
}

func noArgs(cmd string, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: %s takes no arguments, got %q", cli.ErrUsage, cmd, args)
	}
	return nil
}
