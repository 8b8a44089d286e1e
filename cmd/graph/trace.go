package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/arithm"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/graphing/curve"
)

var traceCmd = &cobra.Command{
	Use:   "trace [flags] EXPR",
	Short: "Trace an expression into device polylines",
	Long: `trace samples an expression once per device pixel of the viewport and
prints the resulting polylines. Breaks occur where the expression is
undefined, and polylines end on the viewport's edge where the curve leaves it.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().Bool("points", false, "list every point instead of a summary")
}

func runTrace(cmd *cobra.Command, args []string) error {
	s, err := currentSettings()
	if err != nil {
		return err
	}
	exprs, err := parseAll(s.variable, args)
	if err != nil {
		return err
	}
	points, _ := cmd.Flags().GetBool("points")
	lines := traceExpr(exprs[0], s.view, s.vertical)
	fmt.Fprintln(cmd.OutOrStdout(), traceTable(lines, s.view, points).Render())
	return nil
}

// traceTable lists polylines with their end points in device and plane
// coordinates, or every point if points is true.
func traceTable(lines []curve.Polyline, vp curve.Affine, points bool) table.Writer {
	tw := table.NewWriter()
	if points {
		tw.AppendHeader(table.Row{"#", "i", "device", "plane"})
		for n, p := range lines {
			for i, pt := range p {
				tw.AppendRow(table.Row{n + 1, i, devicePoint(pt), planePoint(vp, pt)})
			}
		}
	} else {
		tw.AppendHeader(table.Row{"#", "points", "from", "to"})
		for n, p := range lines {
			first, last := p[0], p[len(p)-1]
			tw.AppendRow(table.Row{
				n + 1,
				len(p),
				devicePoint(first) + " " + planePoint(vp, first),
				devicePoint(last) + " " + planePoint(vp, last),
			})
		}
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d polylines", len(lines))})
	tw.SetStyle(table.StyleLight)
	return tw
}

func devicePoint(p arithm.Pair) string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X(), p.Y())
}

func planePoint(vp curve.Viewport, p arithm.Pair) string {
	return fmt.Sprintf("[%.4g, %.4g]", vp.DeviceToPlane(curve.X, p.X()), vp.DeviceToPlane(curve.Y, p.Y()))
}
