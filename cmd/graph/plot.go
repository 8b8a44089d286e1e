package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/graphing"
	"github.com/zephyrtronium/graphing/curve"
)

var plotCmd = &cobra.Command{
	Use:   "plot [flags] EXPR...",
	Short: "Plot expressions in the terminal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := currentSettings()
		if err != nil {
			return err
		}
		exprs, err := parseAll(s.variable, args)
		if err != nil {
			return err
		}
		return plot(cmd.OutOrStdout(), exprs, s.view, s.vertical, s.color)
	},
}

// parseAll parses each source in the named variable.
func parseAll(variable string, srcs []string) ([]*graphing.Expr, error) {
	p, err := graphing.NewParser(variable)
	if err != nil {
		return nil, err
	}
	exprs := make([]*graphing.Expr, 0, len(srcs))
	for _, src := range srcs {
		e, err := p.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", src, err)
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

// traceExpr traces an expression across a viewport.
func traceExpr(e *graphing.Expr, vp curve.Viewport, vertical bool) []curve.Polyline {
	if vertical {
		return curve.TraceY(e.Eval, vp)
	}
	return curve.TraceX(e.Eval, vp)
}

// plot draws expressions on a raster the size of the viewport, followed by a
// legend.
func plot(w io.Writer, exprs []*graphing.Expr, vp curve.Affine, vertical, color bool) error {
	r := newRaster(vp.Width, vp.Height)
	r.axes(vp)
	for i, e := range exprs {
		lines := traceExpr(e, vp, vertical)
		tracer().Debugf("plotting %v as %d polylines", e, len(lines))
		for _, p := range lines {
			r.polyline(p, i+1)
		}
	}
	if err := r.render(w, color); err != nil {
		return err
	}
	lhs := "y"
	if vertical {
		lhs = "x"
	}
	for i, e := range exprs {
		mark := "*"
		if color {
			mark = inkColor(i + 1).Sprint(mark)
		}
		if _, err := fmt.Fprintf(w, "%s %s = %v\n", mark, lhs, e); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "x in [%g, %g], y in [%g, %g]\n", vp.XRange[0], vp.XRange[1], vp.YRange[0], vp.YRange[1])
	return err
}
