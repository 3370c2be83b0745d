package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/cscore/charharness/argparse"
)

// ExecPrefix marks a function name that refers to an external program.
const ExecPrefix = "exec:"

var ErrUnknownFunction = errors.New("unknown function")

// Invoker is a function under test that consumes one harness input line.
type Invoker interface {
	Name() string
	Invoke(ctx context.Context, line string) (string, error)
}

// Functions holds the built-in functions and resolves external ones.
type Functions struct {
	builtins   map[string]Invoker
	pathFinder *PathFinder
	executor   *Executor
}

// NewFunctions creates a registry with all built-in functions registered.
func NewFunctions(pf *PathFinder, ex *Executor) *Functions {
	fs := &Functions{
		builtins:   make(map[string]Invoker),
		pathFinder: pf,
		executor:   ex,
	}

	fs.register(NewBuiltinFunction("countCharacter", countCharacter))
	fs.register(NewBuiltinFunction("indexOf", strings.IndexByte))
	fs.register(NewBuiltinFunction("lastIndexOf", strings.LastIndexByte))

	return fs
}

func (fs *Functions) register(fn Invoker) {
	fs.builtins[fn.Name()] = fn
}

// Lookup resolves name to a built-in function, or to an external program when
// name carries the exec: prefix.
func (fs *Functions) Lookup(name string) (Invoker, error) {
	if fn, ok := fs.builtins[name]; ok {
		return fn, nil
	}

	target, ok := strings.CutPrefix(name, ExecPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	path := fs.pathFinder.FindExecutable(target)
	if path == "" {
		return nil, fmt.Errorf("%s: executable not found", target)
	}
	return &ExecutableFunction{path: path, executor: fs.executor}, nil
}

// Names returns the sorted built-in function names.
func (fs *Functions) Names() []string {
	names := make([]string, 0, len(fs.builtins))
	for name := range fs.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinFunction adapts a Go f(string, character) function to Invoker.
type BuiltinFunction struct {
	name string
	fn   func(string, byte) int
}

func NewBuiltinFunction(name string, fn func(string, byte) int) *BuiltinFunction {
	return &BuiltinFunction{name: name, fn: fn}
}

func (f *BuiltinFunction) Name() string { return f.name }

func (f *BuiltinFunction) Invoke(ctx context.Context, line string) (string, error) {
	args, err := argparse.Parse(line)
	if err != nil {
		return "", err
	}
	log.Debug("parsed", "function", f.name, "text", args.Text, "char", string([]byte{args.Char}), "form", args.Form)
	return strconv.Itoa(f.fn(args.Text, args.Char)), nil
}

// ExecutableFunction is a compiled student program that parses the line itself.
type ExecutableFunction struct {
	path     string
	executor *Executor
}

func (f *ExecutableFunction) Name() string { return ExecPrefix + f.path }

func (f *ExecutableFunction) Invoke(ctx context.Context, line string) (string, error) {
	return f.executor.Run(ctx, f.path, argparse.Normalize(line)+"\n")
}

func countCharacter(str string, key byte) int {
	count := 0
	for i := 0; i < len(str); i++ {
		if str[i] == key {
			count++
		}
	}
	return count
}
