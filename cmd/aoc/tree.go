package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/advent/encode"
	"github.com/signadot/advent/fstree"
	"github.com/signadot/advent/puzzle"
	"github.com/signadot/advent/replay"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Depth < 0 {
		return fmt.Errorf("%w: -depth must not be negative", cli.ErrUsage)
	}
	m := fstree.New()
	if len(args) == 0 {
		if err := replayReader(m, cc.In); err != nil {
			return err
		}
	}
	for _, arg := range args {
		if err := replayFile(m, arg); err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
	}
	return encode.Encode(m, cc.Out, cfg.encOpts(cc.Out)...)
}

func replayFile(m *fstree.Model, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return replayReader(m, f)
}

func replayReader(m *fstree.Model, r io.Reader) error {
	lines, err := puzzle.ReadLines(r)
	if err != nil {
		return err
	}
	_, err = puzzle.Model(lines, replay.Into(m))
	return err
}
