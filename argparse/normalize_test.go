package argparse

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"\n", ""},
		{"Hello l\n", "Hello l"},
		{"Hello l", "Hello l"},
		{"Hello l\n\n", "Hello l\n"},
		{"Hello l\r\n", "Hello l\r"},
		{" lead and trail ", " lead and trail "},
	}

	for _, tt := range tests {
		got := Normalize(tt.in)
		assert.Equal(t, tt.want, got, "Normalize(%q)", tt.in)
		if !strings.HasSuffix(got, "\n") {
			assert.Equal(t, got, Normalize(got), "idempotent on %q", got)
		}
	}
}

func TestReadLine(t *testing.T) {
	line, err := ReadLine(strings.NewReader("Hello l\nsecond line\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, "Hello l\n", line)

	line, err = ReadLine(strings.NewReader("no terminator o"), 0)
	require.NoError(t, err)
	assert.Equal(t, "no terminator o", line)

	line, err = ReadLine(strings.NewReader("\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, "\n", line)

	_, err = ReadLine(strings.NewReader(""), 0)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLineLimit(t *testing.T) {
	line, err := ReadLine(strings.NewReader("abcd\n"), 5)
	require.NoError(t, err)
	assert.Equal(t, "abcd\n", line)

	_, err = ReadLine(strings.NewReader("abcde\n"), 5)
	assert.ErrorIs(t, err, ErrLineTooLong)

	_, err = ReadLine(strings.NewReader(strings.Repeat("x", DefaultMaxLineBytes)+" y\n"), 0)
	assert.ErrorIs(t, err, ErrLineTooLong)
}
