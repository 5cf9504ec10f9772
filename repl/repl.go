// Package repl implements the interactive calculator loop: read an
// expression, read a value for x, print the result, repeat.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/zephyrtronium/calc"
)

// tracer traces with key 'calc.repl'.
func tracer() tracing.Trace {
	return tracing.Select("calc.repl")
}

// Default prompts.
var (
	ExprPrompt  = "Enter an expression (or type 'exit' to quit) (" + funcHint() + "): "
	ValuePrompt = "Enter the value for variable x: "
)

func funcHint() string {
	names := calc.Funcs()
	for i, name := range names {
		names[i] = name + "(x)"
	}
	return strings.Join(names, "/")
}

// LineReader reads lines of input after showing a prompt. *readline.Instance
// implements LineReader.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

var _ LineReader = (*readline.Instance)(nil)

// Shell runs the read loop. The zero value is not usable; create one with New.
type Shell struct {
	in  LineReader
	out io.Writer

	// ExprPrompt and ValuePrompt are shown before reading an expression and
	// before reading the value of x, respectively.
	ExprPrompt  string
	ValuePrompt string
	// Format is the fmt verb used to print results.
	Format string
	// Given holds variables set for every expression. The value read for x
	// replaces any given x.
	Given calc.Vars
	// Errorf formats error lines. It defaults to fmt.Sprintf.
	Errorf func(format string, args ...interface{}) string
}

// New creates a shell reading from in and printing results to out.
func New(in LineReader, out io.Writer) *Shell {
	return &Shell{
		in:          in,
		out:         out,
		ExprPrompt:  ExprPrompt,
		ValuePrompt: ValuePrompt,
		Format:      "%g",
		Errorf:      fmt.Sprintf,
	}
}

// Run reads and evaluates expressions until the input says exit or ends. The
// only errors returned are failures to read or write; evaluation errors are
// printed and the loop goes on.
func (s *Shell) Run() error {
	for {
		src, ok, err := s.read(s.ExprPrompt)
		if err != nil || !ok {
			return err
		}
		if strings.EqualFold(strings.TrimSpace(src), "exit") {
			tracer().Infof("exit requested")
			return nil
		}
		xs, ok, err := s.read(s.ValuePrompt)
		if err != nil || !ok {
			return err
		}
		if err := s.eval(src, xs); err != nil {
			return err
		}
	}
}

// read shows a prompt and reads a line. ok is false at the end of the input
// or on an interrupt at an empty line. An interrupt on a non-empty line
// discards the line and prompts again.
func (s *Shell) read(prompt string) (line string, ok bool, err error) {
	for {
		s.in.SetPrompt(prompt)
		line, err = s.in.Readline()
		switch {
		case err == nil:
			return line, true, nil
		case errors.Is(err, readline.ErrInterrupt):
			if len(line) == 0 {
				return "", false, nil
			}
		case errors.Is(err, io.EOF):
			return "", false, nil
		default:
			return "", false, err
		}
	}
}

// eval evaluates src with x set to the value of the expression xs and prints
// the result or the error.
func (s *Shell) eval(src, xs string) error {
	vars := make(calc.Vars, len(s.Given)+1)
	for k, v := range s.Given {
		vars[k] = v
	}
	x, err := calc.EvalString(xs, s.Given)
	if err != nil {
		tracer().Debugf("bad value for x %q: %v", xs, err)
		return s.println(s.Errorf("Error: value for x: %v", err))
	}
	vars['x'] = x
	r, err := calc.EvalString(src, vars)
	if err != nil {
		return s.println(s.Errorf("Error: %v", err))
	}
	return s.println("Result: " + fmt.Sprintf(s.Format, r))
}

func (s *Shell) println(line string) error {
	_, err := io.WriteString(s.out, line+"\n")
	return err
}
