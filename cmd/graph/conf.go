package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/pflag"

	"github.com/zephyrtronium/graphing/curve"
)

// configuration is the merged application configuration, set by loadConfig.
var configuration *koanf.Koanf

// loadConfig is a callback function used by cobra's initialization mechanism,
// so it reports failures by exiting.
func loadConfig() {
	k := koanf.New(".")
	// Configuration files are located with the application key 'GRAPH' and
	// use NestedText format.
	konf := koanfadapter.New(k, "GRAPH", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(k, rootCmd.PersistentFlags()); err != nil {
		tracing.Errorf(err.Error())
		os.Exit(1)
	}
	if logname := k.String("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		os.Exit(1)
	}
	configuration = k
}

// mergeFlags loads command line flags into k. Flags that were not given on
// the command line only supply values missing from configuration files.
func mergeFlags(k *koanf.Koanf, flags *pflag.FlagSet) error {
	return k.Load(posflag.Provider(flags, ".", k), nil)
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go")
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// settings are the options shared by all commands.
type settings struct {
	variable string
	view     curve.Affine
	vertical bool
	color    bool
}

var errNoConfig = errors.New("configuration not loaded")

// currentSettings reads settings from the loaded configuration.
func currentSettings() (settings, error) {
	if configuration == nil {
		return settings{}, errNoConfig
	}
	return settingsFrom(configuration)
}

// settingsFrom extracts and validates settings from a configuration.
func settingsFrom(k *koanf.Koanf) (settings, error) {
	s := settings{
		variable: k.String("var"),
		view: curve.NewAffine(
			k.Float64("xmin"), k.Float64("xmax"),
			k.Float64("ymin"), k.Float64("ymax"),
			k.Int("width"), k.Int("height"),
		),
		vertical: k.Bool("vertical"),
		color:    k.Bool("color"),
	}
	if err := checkView(s.view); err != nil {
		return settings{}, err
	}
	tracer().Debugf("settings: %+v", s)
	return s, nil
}

// checkView reports whether a viewport can be plotted.
func checkView(v curve.Affine) error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("plot size %dx%d must be positive", v.Width, v.Height)
	}
	if v.XRange[0] == v.XRange[1] {
		return fmt.Errorf("empty x range [%g, %g]", v.XRange[0], v.XRange[1])
	}
	if v.YRange[0] == v.YRange[1] {
		return fmt.Errorf("empty y range [%g, %g]", v.YRange[0], v.YRange[1])
	}
	return nil
}
