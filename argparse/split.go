// Package argparse parses the single input line of a two-argument
// f(string, character) grading harness.
//
// A line is either a lone character, or a string argument followed by a space
// and the character argument:
//
//	LINE          := (QUOTED_STRING | BARE_STRING) ' ' CHAR | CHAR
//	QUOTED_STRING := '"' BARE_STRING '"'
//
// The character is the byte right after the last space, so bare strings may
// contain spaces. Inside a quoted string the doubled quote pair "" stands for
// the empty string.
package argparse

import (
	"fmt"
	"strings"
)

// Form records which branch of the grammar produced a set of arguments.
type Form int

const (
	FormBare Form = iota
	FormQuoted
	FormEscapedEmpty
	FormCharOnly
)

func (f Form) String() string {
	switch f {
	case FormBare:
		return "bare"
	case FormQuoted:
		return "quoted"
	case FormEscapedEmpty:
		return "escaped-empty"
	case FormCharOnly:
		return "char-only"
	}
	return fmt.Sprintf("Form(%d)", int(f))
}

// Arguments are the two parsed arguments of a harness input line.
type Arguments struct {
	Text string
	Char byte
	Form Form
}

func (a Arguments) String() string {
	return fmt.Sprintf("text=%q char=%q form=%s", a.Text, a.Char, a.Form)
}

// Parse normalizes a raw line and splits it into arguments.
func Parse(raw string) (Arguments, error) {
	return Split(Normalize(raw))
}

// Split splits a normalized line into the string and character arguments.
func Split(line string) (Arguments, error) {
	sep := strings.LastIndexByte(line, ' ')
	if sep < 0 {
		if len(line) == 1 {
			return Arguments{Char: line[0], Form: FormCharOnly}, nil
		}
		return Arguments{}, &FormatError{Line: line, Err: ErrMissingCharacterArgument}
	}
	if sep == len(line)-1 {
		return Arguments{}, &FormatError{Line: line, Err: ErrMissingCharacterArgument}
	}

	// Anything after the character byte is ignored.
	text, form := unquote(line[:sep])
	return Arguments{Text: text, Char: line[sep+1], Form: form}, nil
}

func unquote(segment string) (string, Form) {
	if len(segment) < 2 || segment[0] != '"' || segment[len(segment)-1] != '"' {
		return segment, FormBare
	}
	inner := segment[1 : len(segment)-1]
	if inner == `""` {
		return "", FormEscapedEmpty
	}
	return inner, FormQuoted
}

// Format encodes args as an input line that Split maps back to the same Text
// and Char. Empty text is written as "".
func Format(args Arguments) (string, error) {
	switch {
	case args.Char == ' ' || args.Char == '\n':
		return "", fmt.Errorf("char %q: %w", args.Char, ErrUnrepresentable)
	case strings.IndexByte(args.Text, '\n') >= 0:
		return "", fmt.Errorf("text %q: %w", args.Text, ErrUnrepresentable)
	case args.Text == `""`:
		// Both the bare and the quoted spelling decode to the empty string.
		return "", fmt.Errorf("text %q: %w", args.Text, ErrUnrepresentable)
	}

	text := args.Text
	if text == "" || (len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"') {
		text = `"` + text + `"`
	}
	return text + " " + string([]byte{args.Char}), nil
}
