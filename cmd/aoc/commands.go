package main

import (
	"github.com/scott-cotton/cli"
	"github.com/signadot/advent/aggregate"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "aoc").
		WithSynopsis("aoc [opts] command [opts]").
		WithDescription("aoc solves daily puzzles from their input files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return aocMain(cfg, cc, args)
		}).
		WithSubs(
			RunCommand(cfg),
			DirSizeCommand(cfg),
			TreeCommand(cfg),
			MonkeyCommand(cfg),
			CheckCommand(cfg),
			DaysCommand(cfg))
}

func RunCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Run, "run").
		WithAliases("r").
		WithSynopsis("run -day N [files]").
		WithDescription("solve the puzzle of a day for each input file, or stdin").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func DirSizeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DirSizeConfig{
		MainConfig: mainCfg,
		Threshold:  int(aggregate.DefaultThreshold),
		Capacity:   int(aggregate.DefaultCapacity),
		Required:   int(aggregate.DefaultRequired),
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.DirSize, "dirsize").
		WithAliases("ds").
		WithSynopsis("dirsize [-threshold N] [-capacity N] [-required N] [files]").
		WithDescription(dirSizeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dirSize(cfg, cc, args)
		})
}

const dirSizeDescription = `dirsize replays terminal transcripts of cd and ls and answers two
questions about the resulting directory sizes.

Part one is the sum of the sizes of all directories of size at most
-threshold.  Nested directories are counted once each.

Part two is the size of the smallest directory which, when deleted,
leaves at least -required bytes free on a device of -capacity bytes.`

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithAliases("t").
		WithSynopsis("tree [-depth N] [-nototals] [files]").
		WithDescription("replay transcripts into one directory tree and show it").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
}

func MonkeyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MonkeyConfig{MainConfig: mainCfg, Rounds: 20}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Monkey, "monkey").
		WithAliases("m").
		WithSynopsis("monkey [-rounds N] [-relief] [files]").
		WithDescription("simulate monkeys throwing items and report monkey business").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return monkeys(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-day N]").
		WithDescription("solve the embedded sample inputs and compare with known answers").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DaysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DaysConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Days, "days").
		WithSynopsis("days").
		WithDescription("list the registered puzzles").
		WithRun(func(cc *cli.Context, args []string) error {
			return days(cfg, cc, args)
		})
}
