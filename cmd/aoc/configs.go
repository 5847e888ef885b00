package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/advent/encode"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='output with color'"`
	J     bool `cli:"name=j aliases=json desc='output results as json'"`
	Y     bool `cli:"name=y aliases=yaml desc='output results as yaml'"`
	Gops  bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// colored reports whether output to w should use color: always with
// -color, never when -color was given as false, and otherwise when w is
// a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.colored(w) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

// emit writes v as json with -j, yaml with -y and otherwise as text,
// one line per element when v is a slice of fmt.Stringer.
func emit[T fmt.Stringer](cfg *MainConfig, w io.Writer, vs []T) error {
	switch {
	case cfg.J:
		d, err := yaml.MarshalWithOptions(vs, yaml.JSON())
		if err != nil {
			return err
		}
		return writeLine(w, d)
	case cfg.Y:
		d, err := yaml.Marshal(vs)
		if err != nil {
			return err
		}
		return writeLine(w, d)
	}
	for _, v := range vs {
		if _, err := fmt.Fprintln(w, v.String()); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, d []byte) error {
	if !bytes.HasSuffix(d, []byte{'\n'}) {
		d = append(d, '\n')
	}
	_, err := w.Write(d)
	return err
}

type RunConfig struct {
	*MainConfig
	Day int `cli:"name=day aliases=d desc='puzzle day'"`

	Run *cli.Command
}

type DirSizeConfig struct {
	*MainConfig
	Threshold int `cli:"name=threshold desc='largest directory size counted in part one'"`
	Capacity  int `cli:"name=capacity desc='device capacity'"`
	Required  int `cli:"name=required desc='free space required in part two'"`

	DirSize *cli.Command
}

type TreeConfig struct {
	*MainConfig
	Depth    int  `cli:"name=depth desc='maximum depth shown, 0 for all'"`
	NoTotals bool `cli:"name=nototals desc='omit directory totals'"`

	Tree *cli.Command
}

func (cfg *TreeConfig) encOpts(w io.Writer) []encode.EncodeOption {
	return append(cfg.MainConfig.encOpts(w),
		encode.Depth(cfg.Depth),
		encode.EncodeTotals(!cfg.NoTotals))
}

type MonkeyConfig struct {
	*MainConfig
	Rounds int  `cli:"name=rounds desc='number of rounds'"`
	Relief bool `cli:"name=relief desc='divide worry levels by 3 after each inspection'"`

	Monkey *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Day int `cli:"name=day aliases=d desc='only check this day'"`

	Check *cli.Command
}

type DaysConfig struct {
	*MainConfig

	Days *cli.Command
}
