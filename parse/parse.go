package parse

import (
	"bytes"
	"strconv"

	"github.com/signadot/advent/debug"
	"github.com/signadot/advent/ir"
	"github.com/signadot/advent/token"
)

// Parse splits data into lines and parses them with Lines.  A final
// newline does not produce an extra line and carriage returns before
// newlines are dropped.
func Parse(data []byte, opts ...ParseOption) ([]ir.Instruction, error) {
	data = bytes.TrimSuffix(data, []byte{'\n'})
	if len(data) == 0 {
		return Lines(nil, opts...)
	}
	parts := bytes.Split(data, []byte{'\n'})
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = string(bytes.TrimSuffix(p, []byte{'\r'}))
	}
	return Lines(lines, opts...)
}

// Lines parses each line into exactly one instruction.  On failure it
// returns a *ParseError and no instructions.
func Lines(lines []string, opts ...ParseOption) ([]ir.Instruction, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	res := make([]ir.Instruction, 0, len(lines))
	var toks []token.Token
	for i, line := range lines {
		var err error
		toks, err = token.Tokenize(toks[:0], []byte(line), i)
		if err != nil {
			return nil, pOpts.errorf(i, line, err.Error())
		}
		if len(toks) == 0 && pOpts.skipBlank {
			continue
		}
		in, reason := instruction(toks)
		if reason != "" {
			return nil, pOpts.errorf(i, line, reason)
		}
		res = append(res, in)
	}
	if debug.Parse() {
		debug.Logf("parsed %d lines into %d instructions: %v\n", len(lines), len(res), res)
	}
	return res, nil
}

func (o *parseOpts) errorf(i int, line, reason string) *ParseError {
	return &ParseError{
		Filename: o.filename,
		Line:     i,
		Text:     line,
		Reason:   reason,
	}
}

// instruction classifies one tokenized line.  A non-empty reason means
// the line is not an instruction.
func instruction(toks []token.Token) (ir.Instruction, string) {
	if len(toks) == 0 {
		return ir.Instruction{}, "blank line"
	}
	head := toks[0]
	switch head.Type {
	case token.TPrompt:
		return command(toks[1:])
	case token.TInteger:
		if len(toks) != 2 {
			return ir.Instruction{}, "entry wants a size and a name"
		}
		size, err := strconv.ParseUint(string(head.Bytes), 10, 64)
		if err != nil {
			return ir.Instruction{}, "size out of range"
		}
		return ir.File(toks[1].String(), size), ""
	}
	if head.String() == "dir" {
		if len(toks) != 2 {
			return ir.Instruction{}, "dir wants one name"
		}
		return ir.Dir(toks[1].String()), ""
	}
	return ir.Instruction{}, "not a command, directory or entry"
}

func command(toks []token.Token) (ir.Instruction, string) {
	if len(toks) == 0 {
		return ir.Instruction{}, "missing command after prompt"
	}
	switch toks[0].String() {
	case "cd":
		if len(toks) != 2 {
			return ir.Instruction{}, "cd wants one argument"
		}
		return ir.Cd(toks[1].String()), ""
	case "ls":
		if len(toks) != 1 {
			return ir.Instruction{}, "ls takes no arguments"
		}
		return ir.Ls(), ""
	}
	return ir.Instruction{}, "unknown command " + strconv.Quote(toks[0].String())
}
