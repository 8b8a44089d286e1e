package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/arithm"

	"github.com/zephyrtronium/graphing"
	"github.com/zephyrtronium/graphing/curve"
)

// session is the state of an interactive session. Every command that changes
// the view replots the current expressions.
type session struct {
	parser   *graphing.Parser
	view     curve.Affine
	vertical bool
	color    bool
	exprs    []*graphing.Expr
}

func newSession(s settings) (*session, error) {
	p, err := graphing.NewParser(s.variable)
	if err != nil {
		return nil, err
	}
	return &session{parser: p, view: s.view, vertical: s.vertical, color: s.color}, nil
}

const sessionHelp = `
Enter an expression to plot it, e.g. "sin 2x" or "log_2(x) / x".

  :also <expr>       : plot another expression along with the current ones
  :at <value>        : evaluate the current expressions at a point
  :var <name>        : change the free variable and clear the plot
  :x <min> <max>     : set the visible x range
  :y <min> <max>     : set the visible y range
  :size <w> <h>      : set the plot size in cells
  :pan <dx> <dy>     : move the view by cells, right and up
  :zoom in|out       : zoom around the center of the view
  :vertical          : toggle between y = f(x) and x = f(y)
  :view              : show the visible ranges
  help               : print this message
  bye                : quit

`

// exec executes one line of input. It reports whether the session should
// end.
func (s *session) exec(line string, out io.Writer) bool {
	line = strings.TrimSpace(line)
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	tracer().Debugf("session command %q", line)
	var err error
	switch cmd := words[0]; cmd {
	case "bye":
		return true
	case "help":
		io.WriteString(out, sessionHelp)
	case ":also":
		err = s.add(strings.TrimSpace(strings.TrimPrefix(line, cmd)), true, out)
	case ":at":
		err = s.at(words[1:], out)
	case ":var":
		err = s.setVar(words[1:])
	case ":x", ":y", ":size", ":pan", ":zoom", ":vertical":
		err = s.adjust(cmd, words[1:])
		if err == nil {
			err = s.replot(out)
		}
	case ":view":
		fmt.Fprintf(out, "x in [%g, %g], y in [%g, %g], %dx%d\n",
			s.view.XRange[0], s.view.XRange[1], s.view.YRange[0], s.view.YRange[1],
			s.view.Width, s.view.Height)
	default:
		if strings.HasPrefix(cmd, ":") {
			err = fmt.Errorf("unknown command %s", cmd)
			break
		}
		err = s.add(line, false, out)
	}
	if err != nil {
		fmt.Fprintf(out, "> %v\n", err)
	}
	return false
}

// add parses an expression and plots it, replacing the current expressions
// unless also is true. Parse errors point at their position in the line.
func (s *session) add(src string, also bool, out io.Writer) error {
	e, err := s.parser.Parse(src)
	if err != nil {
		var perr graphing.ParseError
		if errors.As(err, &perr) && perr.Pos() > 0 {
			fmt.Fprintf(out, "  %s\n  %s^\n", src, strings.Repeat(" ", perr.Pos()-1))
		}
		return err
	}
	if also {
		s.exprs = append(s.exprs, e)
	} else {
		s.exprs = []*graphing.Expr{e}
	}
	return s.replot(out)
}

func (s *session) replot(out io.Writer) error {
	if len(s.exprs) == 0 {
		return nil
	}
	return plot(out, s.exprs, s.view, s.vertical, s.color)
}

func (s *session) at(args []string, out io.Writer) error {
	if len(args) != 1 {
		return errors.New(":at needs one value")
	}
	if len(s.exprs) == 0 {
		return errors.New("nothing to evaluate")
	}
	v := s.parser.Variable()
	x, err := s.value(args[0])
	if err != nil {
		return err
	}
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"f(" + v + ")", v + " = " + args[0]})
	for _, e := range s.exprs {
		tw.AppendRow(table.Row{e.String(), formatResult(e, x, "%g")})
	}
	tw.SetStyle(table.StyleLight)
	fmt.Fprintln(out, tw.Render())
	return nil
}

func (s *session) setVar(args []string) error {
	if len(args) != 1 {
		return errors.New(":var needs one name")
	}
	p, err := graphing.NewParser(args[0])
	if err != nil {
		return err
	}
	s.parser = p
	s.exprs = nil
	return nil
}

// adjust applies a view command to a copy of the view and keeps the result
// only if it can be plotted.
func (s *session) adjust(cmd string, args []string) error {
	v := s.view
	center := arithm.P(float64(v.Width)/2, float64(v.Height)/2)
	switch cmd {
	case ":x", ":y":
		lo, hi, err := s.pair(cmd, args)
		if err != nil {
			return err
		}
		if cmd == ":x" {
			v.XRange = [2]float64{lo, hi}
		} else {
			v.YRange = [2]float64{lo, hi}
		}
	case ":size":
		if len(args) != 2 {
			return errors.New(":size needs width and height")
		}
		w, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		h, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		v.Width, v.Height = w, h
	case ":pan":
		dx, dy, err := s.pair(cmd, args)
		if err != nil {
			return err
		}
		v = v.Drag(arithm.P(center.X()+dx, center.Y()-dy), center)
	case ":zoom":
		if len(args) != 1 || (args[0] != "in" && args[0] != "out") {
			return errors.New(":zoom needs in or out")
		}
		steps := 1
		if args[0] == "out" {
			steps = -1
		}
		v = v.Zoom(center, steps)
	case ":vertical":
		s.vertical = !s.vertical
	}
	if err := checkView(v); err != nil {
		return err
	}
	s.view = v
	return nil
}

// pair evaluates two constant expressions.
func (s *session) pair(cmd string, args []string) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%s needs two values", cmd)
	}
	a, err := s.value(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := s.value(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// value evaluates a constant expression such as "-pi".
func (s *session) value(src string) (float64, error) {
	e, err := s.parser.Parse(src)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", src, err)
	}
	return e.Eval(0)
}
