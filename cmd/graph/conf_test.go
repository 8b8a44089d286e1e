package main

import (
	"testing"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/pflag"

	"github.com/zephyrtronium/graphing/curve"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("graph", pflag.ContinueOnError)
	flags.String("var", "x", "")
	flags.Float64("xmin", -10, "")
	flags.Float64("xmax", 10, "")
	flags.Float64("ymin", -10, "")
	flags.Float64("ymax", 10, "")
	flags.Int("width", 72, "")
	flags.Int("height", 24, "")
	flags.Bool("vertical", false, "")
	flags.Bool("color", true, "")
	return flags
}

func TestSettingsDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graphing.cli")
	defer teardown()
	k := koanf.New(".")
	if err := mergeFlags(k, testFlags()); err != nil {
		t.Fatal(err)
	}
	s, err := settingsFrom(k)
	if err != nil {
		t.Fatal(err)
	}
	want := curve.NewAffine(-10, 10, -10, 10, 72, 24)
	if s.variable != "x" || s.view != want || s.vertical || !s.color {
		t.Errorf("wrong default settings %+v", s)
	}
}

func TestSettingsFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graphing.cli")
	defer teardown()
	flags := testFlags()
	err := flags.Parse([]string{"--var", "t", "--xmin", "-1", "--xmax", "3", "--height", "10", "--vertical", "--color=false"})
	if err != nil {
		t.Fatal(err)
	}
	k := koanf.New(".")
	if err := mergeFlags(k, flags); err != nil {
		t.Fatal(err)
	}
	s, err := settingsFrom(k)
	if err != nil {
		t.Fatal(err)
	}
	want := curve.NewAffine(-1, 3, -10, 10, 72, 10)
	if s.variable != "t" || s.view != want || !s.vertical || s.color {
		t.Errorf("wrong settings %+v", s)
	}
}

func TestSettingsInvalid(t *testing.T) {
	cases := map[string][]string{
		"width":  {"--width", "0"},
		"height": {"--height", "-3"},
		"x":      {"--xmin", "2", "--xmax", "2"},
		"y":      {"--ymin", "0", "--ymax", "0"},
	}
	for name, args := range cases {
		flags := testFlags()
		if err := flags.Parse(args); err != nil {
			t.Fatal(err)
		}
		k := koanf.New(".")
		if err := mergeFlags(k, flags); err != nil {
			t.Fatal(err)
		}
		if s, err := settingsFrom(k); err == nil {
			t.Errorf("%s: no error for settings %+v", name, s)
		}
	}
}

func TestCurrentSettingsUnloaded(t *testing.T) {
	old := configuration
	configuration = nil
	defer func() { configuration = old }()
	if _, err := currentSettings(); err != errNoConfig {
		t.Errorf("want errNoConfig, got %v", err)
	}
}
