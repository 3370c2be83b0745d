package argparse

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCharacterArgument is reported when a line cannot be split into a
	// string segment and a following single-byte character.
	ErrMissingCharacterArgument = errors.New("missing character argument")

	// ErrLineTooLong is returned by ReadLine when the first line exceeds the limit.
	ErrLineTooLong = errors.New("input line too long")

	// ErrUnrepresentable is returned by Format for arguments no input line can encode.
	ErrUnrepresentable = errors.New("arguments cannot be encoded as an input line")
)

// FormatError describes why no valid split exists for Line.
type FormatError struct {
	Line string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid input format %q: %v", e.Line, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
