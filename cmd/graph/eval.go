package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/graphing"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] [EXPR...]",
	Short: "Evaluate expressions at given points",
	Long: `eval evaluates each expression at each point given with --at and prints a
table of the results. Expressions come from the arguments, or one per line
from --in. Points are themselves expressions, like "pi/2".`,
	RunE: runEval,
}

func init() {
	flags := evalCmd.Flags()
	flags.String("in", "", "input file, one expression per line (default stdin if no args given)")
	flags.StringArray("at", []string{"0"}, "point at which to evaluate (any number of times)")
	flags.String("fmt", "%g", "result formatting verb")
	flags.Bool("echo", false, "print parse trees instead of source text")
}

func runEval(cmd *cobra.Command, args []string) error {
	s, err := currentSettings()
	if err != nil {
		return err
	}
	inname, _ := cmd.Flags().GetString("in")
	at, _ := cmd.Flags().GetStringArray("at")
	verb, _ := cmd.Flags().GetString("fmt")
	echo, _ := cmd.Flags().GetBool("echo")

	srcs := args
	f, err := infile(inname, len(args) == 0)
	if err != nil {
		return err
	}
	if f != nil {
		if f != os.Stdin {
			defer f.Close()
		}
		lines, err := readLines(f)
		if err != nil {
			return err
		}
		srcs = append(srcs, lines...)
	}
	tw, err := evalTable(s.variable, srcs, at, verb, echo)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
	return nil
}

// evalTable evaluates each source expression at each point and arranges the
// results in a table.
func evalTable(variable string, srcs, at []string, verb string, echo bool) (table.Writer, error) {
	p, err := graphing.NewParser(variable)
	if err != nil {
		return nil, err
	}
	xs := make([]float64, len(at))
	header := table.Row{"f(" + variable + ")"}
	for i, a := range at {
		x, err := graphing.EvalString(a, variable, 0)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", a, err)
		}
		xs[i] = x
		header = append(header, variable+" = "+a)
	}
	tw := table.NewWriter()
	tw.AppendHeader(header)
	for _, src := range srcs {
		e, err := p.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", src, err)
		}
		row := table.Row{src}
		if echo {
			row[0] = e.String()
		}
		for _, x := range xs {
			row = append(row, formatResult(e, x, verb))
		}
		tw.AppendRow(row)
	}
	tw.SetStyle(table.StyleLight)
	return tw, nil
}

// formatResult evaluates e at x and formats the result, or describes why
// there is none.
func formatResult(e *graphing.Expr, x float64, verb string) string {
	r, err := e.Eval(x)
	if err != nil {
		var derr graphing.DomainError
		if errors.As(err, &derr) {
			tracer().Debugf("%v undefined at %g: %v", e, x, err)
			return "undefined"
		}
		return err.Error()
	}
	return fmt.Sprintf(verb, r)
}

// readLines reads non-blank lines from src.
func readLines(src io.Reader) ([]string, error) {
	var r []string
	sc := bufio.NewScanner(src)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			r = append(r, line)
		}
	}
	return r, sc.Err()
}

// infile opens the named input file, or stdin for "-" or when std is true.
// The result is nil if there is no input.
func infile(inname string, std bool) (*os.File, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
