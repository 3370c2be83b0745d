package main

import (
	"fmt"
	"io"
)

// Entry is one evaluated REPL line.
type Entry struct {
	Function string
	Line     string
	Result   string
	Err      error
}

func (e Entry) outcome() string {
	if e.Err != nil {
		return "error: " + e.Err.Error()
	}
	return e.Result
}

type Transcript struct {
	Items []Entry
}

func (t *Transcript) Record(e Entry) {
	t.Items = append(t.Items, e)
}

// Write prints the last n entries, or all of them when n <= 0.
func (t *Transcript) Write(w io.Writer, n int) {
	total := len(t.Items)
	start := 0
	if n > 0 && n < total {
		start = total - n
	}

	for i := start; i < total; i++ {
		e := t.Items[i]
		fmt.Fprintf(w, "%d  %s(%q) -> %s\n", i+1, e.Function, e.Line, e.outcome())
	}
}
