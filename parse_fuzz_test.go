//go:build go1.18
// +build go1.18

package graphing_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/graphing"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("sin 2x + 1")
	f.Add("log_2(x) rt_3 x")
	f.Add("1 000.5^-x")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := graphing.Parse(s, "x")
		if (e == nil) == (err == nil) {
			t.Fatalf("parsing %q gave %v, %v", s, e, err)
		}
		var perr graphing.ParseError
		if err != nil && !errors.As(err, &perr) {
			t.Fatalf("parsing %q gave non-ParseError %#v", s, err)
		}
	})
}
