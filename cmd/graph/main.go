// Command graph evaluates, traces, and plots expressions in one variable.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracer traces with key 'graphing.cli'.
func tracer() tracing.Trace {
	return tracing.Select("graphing.cli")
}

var rootCmd = &cobra.Command{
	Use:   "graph",
	Short: "Evaluate and plot functions of one variable",
	Long: `graph parses expressions like "sin 2x + 1" or "log_2(x) / x" in one free
variable and evaluates them, traces them into polylines, or plots them in the
terminal. Points where an expression is undefined break the curve.

Without a subcommand and with -i, graph starts an interactive session.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
			return runREPL(cmd.OutOrStdout())
		}
		return cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(loadConfig)
	flags := rootCmd.PersistentFlags()
	flags.BoolP("interactive", "i", false, "Run an interactive session")
	flags.String("logfile", "stderr", "URL of log output location")
	flags.String("var", "x", "Name of the free variable")
	flags.Float64("xmin", -10, "Left edge of the visible plane")
	flags.Float64("xmax", 10, "Right edge of the visible plane")
	flags.Float64("ymin", -10, "Bottom edge of the visible plane")
	flags.Float64("ymax", 10, "Top edge of the visible plane")
	flags.Int("width", 72, "Plot width in device pixels (terminal columns)")
	flags.Int("height", 24, "Plot height in device pixels (terminal rows)")
	flags.Bool("vertical", false, "Treat expressions as x = f(y) and scan rows")
	flags.Bool("color", true, "Color plot output")
	rootCmd.AddCommand(evalCmd, traceCmd, plotCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
