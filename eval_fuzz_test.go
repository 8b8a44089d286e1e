//go:build go1.18
// +build go1.18

package graphing_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/graphing"
)

func FuzzEval(f *testing.F) {
	f.Add("x", 0.0)
	f.Add("1/x", 0.0)
	f.Add("x^x^x", -0.5)
	f.Add("log_x sqrt x", 1.0)
	f.Fuzz(func(t *testing.T, s string, x float64) {
		r, err := graphing.EvalString(s, "x", x)
		if err == nil && (math.IsNaN(r) || math.IsInf(r, 0)) {
			t.Fatalf("evaluating %q at %g gave %g with no error", s, x, r)
		}
	})
}
