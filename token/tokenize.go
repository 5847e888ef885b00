package token

import "unicode/utf8"

// Tokenize appends the whitespace delimited tokens of line to dst.
// lineNo is recorded in each token position.
func Tokenize(dst []Token, line []byte, lineNo int) ([]Token, error) {
	if !utf8.Valid(line) {
		off := firstInvalid(line)
		return nil, NewTokenizeErr(ErrBadUTF8, &Pos{Line: lineNo, Col: off, Context: line})
	}
	n := len(line)
	i := 0
	for i < n {
		if isSpace(line[i]) {
			i++
			continue
		}
		start := i
		for i < n && !isSpace(line[i]) {
			i++
		}
		word := line[start:i]
		dst = append(dst, Token{
			Type:  classify(word),
			Bytes: word,
			Pos:   &Pos{Line: lineNo, Col: start, Context: line},
		})
	}
	return dst, nil
}

// TokenizeString is Tokenize for a string line.
func TokenizeString(line string, lineNo int) ([]Token, error) {
	return Tokenize(nil, []byte(line), lineNo)
}

func classify(word []byte) TokenType {
	if len(word) == 1 && word[0] == '$' {
		return TPrompt
	}
	if isInteger(word) {
		return TInteger
	}
	return TWord
}

func isInteger(word []byte) bool {
	if len(word) == 0 {
		return false
	}
	for _, c := range word {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

func firstInvalid(d []byte) int {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz <= 1 {
			return i
		}
		i += sz
	}
	return i
}
