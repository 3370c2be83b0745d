package main

import "strings"

// splitWords splits a REPL meta command into words. Double or single quotes
// group words containing spaces; a backslash outside single quotes escapes
// the next byte.
func splitWords(input string) []string {
	var (
		words   []string
		curr    strings.Builder
		quote   byte
		escaped bool
		started bool
	)

	flush := func() {
		if started {
			words = append(words, curr.String())
			curr.Reset()
			started = false
		}
	}

	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case escaped:
			curr.WriteByte(c)
			escaped = false
		case c == '\\' && quote != '\'':
			escaped = true
			started = true
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				curr.WriteByte(c)
			}
		case c == '\'' || c == '"':
			quote = c
			started = true
		case c == ' ' || c == '\t':
			flush()
		default:
			curr.WriteByte(c)
			started = true
		}
	}
	flush()

	return words
}
