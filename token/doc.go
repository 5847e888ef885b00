// Package token splits transcript lines into typed tokens.
//
// Tokens are whitespace delimited.  A lone "$" is a TPrompt, a run of
// ASCII digits is a TInteger and anything else is a TWord.  Keywords
// such as "cd", "ls" and "dir" are plain words; recognising them is the
// parser's job.
//
//	toks, err := token.TokenizeString("$ cd a", 0)
//	// toks[0].Type == token.TPrompt
//	// toks[1].String() == "cd"
package token
