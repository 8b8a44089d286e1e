package graphing

import (
	"strconv"
)

// Eval evaluates the expression with its free variable set to x. If the
// expression is undefined at x, e.g. because of a division by zero or a
// function argument outside the function's domain, the error is a
// DomainError and the float result is meaningless. Eval never returns an
// infinite or NaN result with a nil error; in particular, a non-finite x is
// undefined wherever the expression uses it.
func (e *Expr) Eval(x float64) (float64, error) {
	return e.n.eval(x)
}

// eval computes the node's value. Any undefined child makes the node
// undefined.
func (n *node) eval(x float64) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeVar:
		return finite(n.name, x, x)
	case nodeNeg:
		v, err := n.left.eval(x)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, err := n.left.eval(x)
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval(x)
		if err != nil {
			return 0, err
		}
		return binary(n.kind, l, r)
	case nodeCall:
		fn, ok := monadics[n.name]
		if !ok {
			panic("graphing: unknown function " + strconv.Quote(n.name))
		}
		v, err := n.left.eval(x)
		if err != nil {
			return 0, err
		}
		return fn.call(n.name, v)
	case nodeBaseCall:
		fn := dyadics[n.name]
		if fn == nil {
			panic("graphing: unknown parameterized function " + strconv.Quote(n.name))
		}
		v, err := n.right.eval(x)
		if err != nil {
			return 0, err
		}
		base, err := n.left.eval(x)
		if err != nil {
			return 0, err
		}
		return fn(base, v)
	default:
		panic("graphing: invalid AST node " + n.kind.String())
	}
}

// binary applies a binary operator.
func binary(op nodeKind, l, r float64) (float64, error) {
	switch op {
	case nodeAdd:
		return finite("+", l, l+r)
	case nodeSub:
		return finite("-", l, l-r)
	case nodeMul:
		return finite("*", l, l*r)
	case nodeDiv:
		if r == 0 {
			return 0, DomainError{Func: "/", X: r, Arg: 2}
		}
		return finite("/", l, l/r)
	case nodePow:
		return pow(l, r)
	default:
		panic("graphing: invalid operator " + op.String())
	}
}

// EvalString is a shortcut to parse an expression in the named variable and
// evaluate it at x. Parse errors and domain errors are both returned as the
// error; use errors.As with DomainError to tell them apart.
func EvalString(src, variable string, x float64) (float64, error) {
	e, err := Parse(src, variable)
	if err != nil {
		return 0, err
	}
	return e.Eval(x)
}
