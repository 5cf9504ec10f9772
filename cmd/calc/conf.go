package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/pflag"
	"github.com/zephyrtronium/calc"
)

type config struct {
	Given       []string `koanf:"given"`
	Fmt         string   `koanf:"fmt"`
	Interactive bool     `koanf:"interactive"`
	Trace       string   `koanf:"trace"`
	Logfile     string   `koanf:"logfile"`
}

// envPrefix is the prefix of environment variables that set flags.
const envPrefix = "CALC_"

// loadConfig merges flag defaults, the environment, and flags set on the
// command line, in increasing order of priority.
func loadConfig(flags *pflag.FlagSet) (*config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	// posflag only takes defaults of unchanged flags for keys the
	// environment didn't set.
	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		return nil, fmt.Errorf("loading flags: %w", err)
	}
	var c config
	if err := k.Unmarshal("", &c); err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	return &c, nil
}

// vars evaluates the given variable definitions. Each value is an expression
// which may use the variables defined before it.
func (c *config) vars() (calc.Vars, error) {
	vars := make(calc.Vars, len(c.Given))
	for _, s := range c.Given {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return nil, fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		nm := strings.TrimSpace(d[0])
		r, sz := utf8.DecodeRuneInString(nm)
		if sz != len(nm) || !unicode.IsLetter(r) {
			return nil, fmt.Errorf("variable names must be single letters, not %q", nm)
		}
		v, err := calc.EvalString(d[1], vars)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", nm, err)
		}
		vars[r] = v
	}
	return vars, nil
}

// traceKeys are the tracers configured by configureTracing.
var traceKeys = []string{"calc", "calc.repl", "calc.cmd"}

func configureTracing(c *config) error {
	var level tracing.TraceLevel
	switch strings.ToLower(c.Trace) {
	case "", "error":
		level = tracing.LevelError
	case "info":
		level = tracing.LevelInfo
	case "debug":
		level = tracing.LevelDebug
	default:
		return fmt.Errorf("unknown trace level %q", c.Trace)
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	if c.Logfile == "" || c.Logfile == "stderr" {
		return nil
	}
	f, err := os.OpenFile(c.Logfile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening trace output: %w", err)
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetOutput(f)
	}
	return nil
}
