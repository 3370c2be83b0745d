package argparse

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// DefaultMaxLineBytes bounds a single input line, terminator included.
const DefaultMaxLineBytes = 1000

// Normalize removes one trailing line terminator from line, if present.
func Normalize(line string) string {
	return strings.TrimSuffix(line, "\n")
}

// ReadLine reads the first line from r, keeping its terminator. At most limit
// bytes are accepted; a longer line fails with ErrLineTooLong. An empty stream
// returns io.EOF.
func ReadLine(r io.Reader, limit int) (string, error) {
	if limit <= 0 {
		limit = DefaultMaxLineBytes
	}

	br := bufio.NewReader(io.LimitReader(r, int64(limit)+1))
	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if len(line) > limit {
		return "", ErrLineTooLong
	}
	if line == "" {
		return "", io.EOF
	}
	return line, nil
}
