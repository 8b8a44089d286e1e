package graphing

import "strconv"

// SyntaxError is an error indicating a token that does not fit the grammar
// where it appears. It implements ParseError.
type SyntaxError struct {
	// Col is the position of the offending token.
	Col int
	// Want describes what the parser required at this point, e.g. "')'" or
	// "a value". It is empty for a token left over after a complete
	// expression.
	Want string
	// Got describes the offending token.
	Got string
}

func (err *SyntaxError) Error() string {
	if err.Want == "" {
		return errpos(err.Col, "unexpected token "+err.Got)
	}
	return errpos(err.Col, "expected "+err.Want+", found "+err.Got)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// ParseError is an error with position information. Every error resulting
// from invalid expression text implements ParseError, and a parse that fails
// never also yields an expression.
type ParseError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ ParseError = (*SyntaxError)(nil)
	_ ParseError = (*LexError)(nil)
)
