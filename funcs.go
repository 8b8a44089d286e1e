package graphing

import (
	"math"
	"strconv"
)

// constants are the names bound to fixed values.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// monadic is a function of one real argument. in reports whether an argument
// is inside the function's domain; nil means every real is. Results are also
// checked for realness after the call.
type monadic struct {
	f  func(float64) float64
	in func(float64) bool
}

func (m monadic) call(name string, x float64) (float64, error) {
	if m.in != nil && !m.in(x) {
		return 0, DomainError{Func: name, X: x, Arg: 1}
	}
	return finite(name, x, m.f(x))
}

var monadics = map[string]monadic{
	"sin":    {f: math.Sin},
	"cos":    {f: math.Cos},
	"tan":    {f: math.Tan},
	"arcsin": {f: math.Asin, in: unit},
	"arccos": {f: math.Acos, in: unit},
	"arctan": {f: math.Atan},
	"asin":   {f: math.Asin, in: unit},
	"acos":   {f: math.Acos, in: unit},
	"atan":   {f: math.Atan},
	"sqrt":   {f: math.Sqrt, in: nonneg},
	"ln":     {f: math.Log, in: positive},
}

func unit(x float64) bool     { return -1 <= x && x <= 1 }
func nonneg(x float64) bool   { return x >= 0 }
func positive(x float64) bool { return x > 0 }

// dyadic is a function parameterized by a base, written name_base arg.
type dyadic func(base, x float64) (float64, error)

var dyadics = map[string]dyadic{
	"rt":  root,
	"log": logb,
}

// root computes the base-th root of x as x^(1/base).
func root(base, x float64) (float64, error) {
	if base == 0 {
		return 0, DomainError{Func: "rt", X: base, Arg: 1}
	}
	r, err := pow(x, 1/base)
	if err != nil {
		return 0, DomainError{Func: "rt", X: x, Arg: 2}
	}
	return r, nil
}

// logb computes the base-base logarithm of x.
func logb(base, x float64) (float64, error) {
	if !positive(base) || base == 1 {
		return 0, DomainError{Func: "log", X: base, Arg: 1}
	}
	if !positive(x) {
		return 0, DomainError{Func: "log", X: x, Arg: 2}
	}
	return finite("log", x, math.Log(x)/math.Log(base))
}

// pow computes x^y. It is undefined for 0^0 and wherever the real power is
// not a real number, which math.Pow reports as NaN.
func pow(x, y float64) (float64, error) {
	if x == 0 && y == 0 {
		return 0, DomainError{Func: "^", X: x}
	}
	return finite("^", x, math.Pow(x, y))
}

// finite checks that r, computed by fn from argument x, is a finite real.
func finite(fn string, x, r float64) (float64, error) {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, DomainError{Func: fn, X: x}
	}
	return r, nil
}

// DomainError is an error returned when an evaluation is undefined, e.g.
// division by zero or the square root of a negative number. It is a normal
// per-point outcome, not a failure of the expression.
type DomainError struct {
	// Func is a name identifying the function or operator.
	Func string
	// X is the out-of-domain argument.
	X float64
	// Arg is the 1-based index of the argument, or 0 if it is not known.
	Arg int
}

func (err DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}
