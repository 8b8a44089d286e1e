package graphing

import (
	"strconv"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'graphing'.
func tracer() tracing.Trace {
	return tracing.Select("graphing")
}

// Parser parses expressions in a free variable fixed when the parser is
// created. A Parser holds no per-parse state and is safe for concurrent use.
type Parser struct {
	variable string
}

// NewParser creates a parser for expressions in the named variable. The name
// must be a non-empty run of ASCII letters, since nothing else can lex as a
// single identifier. It may coincide with a constant or function name, in
// which case the variable takes precedence.
func NewParser(variable string) (*Parser, error) {
	if variable == "" {
		return nil, &VariableError{Name: variable}
	}
	for _, r := range variable {
		if !isLetter(r) {
			return nil, &VariableError{Name: variable}
		}
	}
	return &Parser{variable: variable}, nil
}

// Variable returns the name of the parser's free variable.
func (p *Parser) Variable() string {
	return p.variable
}

// VariableError is an error indicating a free variable name that could never
// appear in an expression.
type VariableError struct {
	// Name is the rejected name.
	Name string
}

func (err *VariableError) Error() string {
	return "invalid variable name " + strconv.Quote(err.Name)
}
