package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/repl"
)

// tracer traces with key 'calc.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("calc.cmd")
}

var rootCmd = &cobra.Command{
	Use:   "calc [expression...]",
	Short: "Evaluate arithmetic expressions",
	Long: `calc evaluates arithmetic expressions with + - * /, parentheses, the
functions sin, cos, tan, and sqrt, and single-letter variables.

Expressions given as arguments are evaluated in order, one result per line.
With no arguments, or with -i, calc prompts for an expression and a value for
x until it reads "exit".

Every flag may also be set through the environment as CALC_<FLAG>.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCalc,
}

func init() {
	defineFlags(rootCmd.Flags())
}

func defineFlags(flags *pflag.FlagSet) {
	flags.StringSlice("given", nil, "name=value variable definition (any number of times)")
	flags.String("fmt", "%g", "result formatting string")
	flags.BoolP("interactive", "i", false, "run the interactive shell after evaluating arguments")
	flags.String("trace", "error", "trace level: error, info, or debug")
	flags.String("logfile", "stderr", "trace output file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, prtxt.FgRed.Sprint(err))
		os.Exit(1)
	}
}

func runCalc(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if err := configureTracing(conf); err != nil {
		return err
	}
	vars, err := conf.vars()
	if err != nil {
		return err
	}
	tracer().Infof("%d expressions, %d variables given", len(args), len(vars))
	berr := batch(cmd.OutOrStdout(), cmd.ErrOrStderr(), conf.Fmt, args, vars)
	if len(args) > 0 && !conf.Interactive {
		return berr
	}
	if err := interactive(conf, vars); err != nil {
		return err
	}
	return berr
}

// batch evaluates each expression in srcs, printing results to out and errors
// to errs. The error returned counts the failures.
func batch(out, errs io.Writer, verb string, srcs []string, vars calc.Vars) error {
	verb += "\n"
	failed := 0
	for _, src := range srcs {
		r, err := calc.EvalString(src, vars)
		if err != nil {
			fmt.Fprintf(errs, "Error: %s: %v\n", src, err)
			failed++
			continue
		}
		fmt.Fprintf(out, verb, r)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(srcs))
	}
	return nil
}

func interactive(conf *config, vars calc.Vars) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              prtxt.FgGreen.Sprint(repl.ExprPrompt),
		HistoryFile:         historyFile(),
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	sh := repl.New(rl, rl.Stdout())
	sh.ExprPrompt = prtxt.FgGreen.Sprint(repl.ExprPrompt)
	sh.ValuePrompt = prtxt.FgGreen.Sprint(repl.ValuePrompt)
	sh.Format = conf.Fmt
	sh.Given = vars
	sh.Errorf = prtxt.FgRed.Sprintf
	return sh.Run()
}

func historyFile() string {
	return os.TempDir() + string(os.PathSeparator) + "calc-history.tmp"
}

// filterInput blocks ctrl-z.
func filterInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}
