package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEvalTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graphing.cli")
	defer teardown()
	tw, err := evalTable("x", []string{"1/x", "2x+1"}, []string{"0", "pi/pi"}, "%g", false)
	if err != nil {
		t.Fatal(err)
	}
	out := tw.Render()
	for _, want := range []string{"f(x)", "x = pi/pi", "1/x", "undefined", "2x+1", "3"} {
		if !strings.Contains(out, want) {
			t.Errorf("table lacks %q:\n%s", want, out)
		}
	}
}

func TestEvalTableEcho(t *testing.T) {
	tw, err := evalTable("t", []string{"2t"}, []string{"1"}, "%.3f", true)
	if err != nil {
		t.Fatal(err)
	}
	out := tw.Render()
	if !strings.Contains(out, "2.000") || !strings.Contains(out, "×") {
		t.Errorf("want the parse tree and 2.000:\n%s", out)
	}
}

func TestEvalTableErrors(t *testing.T) {
	cases := []struct {
		name     string
		variable string
		srcs, at []string
	}{
		{"variable", "x1", []string{"1"}, []string{"0"}},
		{"point", "x", []string{"x"}, []string{"(1"}},
		{"undefined point", "x", []string{"x"}, []string{"1/0"}},
		{"expression", "x", []string{"x +"}, []string{"0"}},
	}
	for _, c := range cases {
		if _, err := evalTable(c.variable, c.srcs, c.at, "%g", false); err == nil {
			t.Errorf("%s: no error", c.name)
		}
	}
}

func TestReadLines(t *testing.T) {
	got, err := readLines(strings.NewReader("x\n\n  sin x  \n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "x" || got[1] != "sin x" {
		t.Errorf("got %q", got)
	}
}

func TestInfile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "exprs")
	if err := os.WriteFile(name, []byte("x^2\n1/x\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := infile(name, false)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := readLines(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1] != "1/x" {
		t.Errorf("got %q", got)
	}
	if f, err := infile("", false); f != nil || err != nil {
		t.Errorf("no input: got %v, %v", f, err)
	}
	if f, _ := infile("-", false); f != os.Stdin {
		t.Errorf("- is not stdin: %v", f)
	}
}
