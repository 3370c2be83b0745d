package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
)

const bell = "\x07"

type refresher interface {
	Refresh()
}

// BellWrapper wraps readline's AutoCompleter: it rings the bell when there is
// nothing to complete, and lists ambiguous candidates on the second tab press.
type BellWrapper struct {
	Inner    readline.AutoCompleter
	Out      io.Writer
	tabPress bool
	rl       refresher
}

// NewCompleter completes REPL meta commands and, after :use, function names.
func NewCompleter(functions []string) *BellWrapper {
	names := make([]readline.PrefixCompleterInterface, 0, len(functions))
	for _, name := range functions {
		names = append(names, readline.PcItem(name))
	}

	base := readline.NewPrefixCompleter(
		readline.PcItem(":use", names...),
		readline.PcItem(":functions"),
		readline.PcItem(":history"),
		readline.PcItem(":quit"),
	)
	return &BellWrapper{Inner: base, Out: os.Stdout}
}

// Do implements readline.AutoCompleter.
func (w *BellWrapper) Do(line []rune, pos int) ([][]rune, int) {
	if w.Inner == nil {
		w.ring()
		return nil, 0
	}

	matches, length := w.Inner.Do(line, pos)
	matches = removeDuplicates(matches)

	switch len(matches) {
	case 0:
		w.ring()
		return nil, 0
	case 1:
		return matches, length
	}

	sort.Slice(matches, func(i, j int) bool {
		return string(matches[i]) < string(matches[j])
	})

	if lcp := longestCommonPrefix(matches); len(lcp) > 0 {
		w.tabPress = false
		return [][]rune{lcp}, length
	}

	if !w.tabPress {
		w.tabPress = true
		w.ring()
		return nil, 0
	}

	// second tab on an ambiguous word: list the candidates
	w.tabPress = false
	start := max(pos-length, 0)
	typed := string(line[start:pos])
	strs := make([]string, 0, len(matches))
	for _, m := range matches {
		strs = append(strs, typed+strings.TrimSpace(string(m)))
	}
	fmt.Fprintf(w.Out, "\n%s\n", strings.Join(strs, "  "))
	if w.rl != nil {
		w.rl.Refresh()
	}
	return nil, 0
}

// OnChange implements readline.Listener; any key but tab resets the tab state.
func (w *BellWrapper) OnChange(line []rune, pos int, key rune) (newLine []rune, newPos int, ok bool) {
	if key != '\t' {
		w.tabPress = false
	}
	return nil, 0, false
}

func (w *BellWrapper) ring() {
	fmt.Fprint(w.Out, bell)
}

func removeDuplicates(matches [][]rune) [][]rune {
	seen := make(map[string]struct{}, len(matches))
	unique := make([][]rune, 0, len(matches))
	for _, m := range matches {
		s := string(m)
		if _, found := seen[s]; !found {
			seen[s] = struct{}{}
			unique = append(unique, m)
		}
	}
	return unique
}

func longestCommonPrefix(items [][]rune) []rune {
	if len(items) == 0 {
		return nil
	}

	prefix := items[0]
	for _, it := range items[1:] {
		n := 0
		for n < len(prefix) && n < len(it) && prefix[n] == it[n] {
			n++
		}
		prefix = prefix[:n]
	}
	return prefix
}
