package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/cscore/charharness/argparse"
)

// Case is one test case of a grading suite. It gives either the raw Input
// line or the structured Text and Char arguments.
//
// Structured arguments that no input line can encode are an authoring error:
// the case is reported as ERROR even with ExpectError set, since the function
// under test never ran.
type Case struct {
	Name        string  `yaml:"name"`
	Input       *string `yaml:"input"`
	Text        *string `yaml:"text"`
	Char        string  `yaml:"char"`
	Expected    *string `yaml:"expected"`
	ExpectError bool    `yaml:"expect_error"`
}

// Line returns the harness input line of the case.
func (c Case) Line() (string, error) {
	if c.Input != nil {
		return *c.Input, nil
	}
	if c.Text == nil {
		return "", errors.New("case has neither input nor text")
	}
	if len(c.Char) != 1 {
		return "", fmt.Errorf("char must be exactly one byte, got %q", c.Char)
	}
	return argparse.Format(argparse.Arguments{Text: *c.Text, Char: c.Char[0]})
}

// Suite is a set of test cases for one function under test.
type Suite struct {
	Function  string `yaml:"function"`
	Reference string `yaml:"reference"`
	Cases     []Case `yaml:"cases"`
}

func LoadSuite(path string) (*Suite, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite: %w", err)
	}
	return ParseSuite(content)
}

func ParseSuite(content []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(content, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal suite: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Suite) validate() error {
	if len(s.Cases) == 0 {
		return errors.New("suite has no cases")
	}
	for i, c := range s.Cases {
		switch {
		case c.Input != nil && c.Text != nil:
			return fmt.Errorf("case %d: input and text are mutually exclusive", i+1)
		case c.Input == nil && c.Text == nil:
			return fmt.Errorf("case %d: one of input or text is required", i+1)
		case c.Expected == nil && !c.ExpectError && s.Reference == "":
			return fmt.Errorf("case %d: no expected output and no reference function", i+1)
		}
	}
	return nil
}

type Status int

const (
	StatusPass Status = iota
	StatusFail
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusFail:
		return "FAIL"
	}
	return "ERROR"
}

// Result is the outcome of one case.
type Result struct {
	Name   string
	Line   string
	Got    string
	Want   string
	Status Status
	Err    error
}

// Report collects the results of a graded suite.
type Report struct {
	Function string
	Results  []Result
	Passed   int
}

func (r *Report) Total() int { return len(r.Results) }

// Score is the percentage of passed cases.
func (r *Report) Score() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(r.Passed) * 100 / float64(r.Total())
}

// Grader runs suites against the registered functions.
type Grader struct {
	functions *Functions
}

func NewGrader(functions *Functions) *Grader {
	return &Grader{functions: functions}
}

// Grade runs every case of suite against its function. A case that fails or
// errors is recorded in the report; only unresolvable functions abort grading.
func (g *Grader) Grade(ctx context.Context, suite *Suite) (*Report, error) {
	fn, err := g.functions.Lookup(suite.Function)
	if err != nil {
		return nil, fmt.Errorf("function under test: %w", err)
	}
	var ref Invoker
	if suite.Reference != "" {
		if ref, err = g.functions.Lookup(suite.Reference); err != nil {
			return nil, fmt.Errorf("reference function: %w", err)
		}
	}

	report := &Report{Function: fn.Name()}
	for i, c := range suite.Cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res := g.run(ctx, fn, ref, c)
		if res.Name == "" {
			res.Name = fmt.Sprintf("case %d", i+1)
		}
		if res.Status == StatusPass {
			report.Passed++
		}
		log.Debug("graded", "case", res.Name, "status", res.Status, "got", res.Got, "want", res.Want)
		report.Results = append(report.Results, res)
	}
	return report, nil
}

func (g *Grader) run(ctx context.Context, fn, ref Invoker, c Case) Result {
	res := Result{Name: c.Name}

	line, err := c.Line()
	if err != nil {
		res.Status, res.Err = StatusError, err
		return res
	}
	res.Line = line

	got, err := fn.Invoke(ctx, line)
	if c.ExpectError {
		res.Want = "error"
		if err != nil {
			res.Got, res.Status = "error", StatusPass
		} else {
			res.Got, res.Status = got, StatusFail
		}
		return res
	}
	if err != nil {
		res.Status, res.Err = StatusError, err
		return res
	}
	res.Got = strings.TrimSpace(got)

	if c.Expected != nil {
		res.Want = strings.TrimSpace(*c.Expected)
	} else {
		want, err := ref.Invoke(ctx, line)
		if err != nil {
			res.Status, res.Err = StatusError, fmt.Errorf("reference: %w", err)
			return res
		}
		res.Want = strings.TrimSpace(want)
	}

	if res.Got == res.Want {
		res.Status = StatusPass
	} else {
		res.Status = StatusFail
	}
	return res
}

// Render writes a human readable report.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "Function: %s\n\n", r.Function)
	for _, res := range r.Results {
		fmt.Fprintf(w, "%s  %s\n", statusStyle(res.Status).Render(res.Status.String()), res.Name)
		fmt.Fprintf(w, "      input: %q\n", res.Line)
		if res.Err != nil {
			fmt.Fprintf(w, "      error: %v\n", res.Err)
			continue
		}
		fmt.Fprintf(w, "      expected: %s  got: %s\n", res.Want, res.Got)
	}
	fmt.Fprintf(w, "\nTest cases passed: %d/%d\n", r.Passed, r.Total())
	fmt.Fprintln(w, scoreStyle(r).Render(fmt.Sprintf("Score: %.0f%%", r.Score())))
}
