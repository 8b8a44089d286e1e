// Package graphing parses math expressions in one free variable for plotting.
//
// The syntax of expressions is intended to be similar to math you'd write on
// a calculator. "2x" and "2 sin x" are multiplications by juxtaposition. A
// function followed by a bare term takes the whole juxtaposed run as its
// argument, so "sin 2x" is "sin(2*x)", while a parenthesized argument is
// exactly what's inside the parentheses, so "sin(x)^2" squares the sine.
// "-2^2" is "-(2^2)", and "2^3^2" is "2^(3^2)".
//
// The known functions are sin, cos, tan, arcsin, arccos, arctan, sqrt, and ln,
// plus the parameterized rt_n (n-th root) and log_b (base-b logarithm), e.g.
// "rt_3 x" or "log_2(x+1)". The constants pi and e are predefined.
//
// Evaluation is in float64. Points where an expression is undefined produce
// a DomainError instead of an infinity or NaN, which lets package curve break
// a plotted curve at discontinuities.
package graphing
