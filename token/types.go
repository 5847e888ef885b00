package token

import (
	"errors"
	"fmt"
)

type TokenType int

const (
	TWord TokenType = iota
	TInteger
	TPrompt
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TWord:    "TWord",
		TInteger: "TInteger",
		TPrompt:  "TPrompt",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

var ErrBadUTF8 = errors.New("invalid utf-8")

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
