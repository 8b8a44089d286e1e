package graphing

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	// num is the value of a number token.
	num  float64
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

// describe names the token the way error messages refer to it.
func (t lexToken) describe() string {
	switch t.kind {
	case tokenNum:
		return "number " + t.text
	case tokenIdent:
		return "identifier " + strconv.Quote(t.text)
	case tokenEOF:
		return "end of expression"
	default:
		return t.text
	}
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number.
	tokenNum
	// tokenIdent is a variable, constant, or function name.
	tokenIdent

	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenCaret
	tokenOpen
	tokenClose
	// tokenUnder separates a parameterized function from its base, as in log_2.
	tokenUnder
)

//go:generate go run golang.org/x/tools/cmd/stringer@v0.1.0 -type=tokenKind -trimprefix=token

// Symbols contains the runes which lex as single-rune tokens.
const Symbols = "+-*/^()_"

// symkinds holds the token kind for the rune at the same byte index in Symbols.
var symkinds = [len(Symbols)]tokenKind{
	tokenPlus,
	tokenMinus,
	tokenStar,
	tokenSlash,
	tokenCaret,
	tokenOpen,
	tokenClose,
	tokenUnder,
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// tokenize scans the entire input. The result is either the full token list,
// terminated by an EOF token, or the first lexical error.
func tokenize(src io.RuneScanner) ([]lexToken, error) {
	l := lex(src)
	var toks []lexToken
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokenEOF {
			return toks, nil
		}
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time EOF is
// encountered, the result is an EOF token with a nil error. Subsequent calls
// return an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.pos++
			continue
		case isDigit(r), r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			v, err := strconv.ParseFloat(tok.text, 64)
			if err != nil {
				// Only a range error is possible for a digit string.
				return tok, &LexError{Text: tok.text, Msg: "number out of range", Col: tok.pos}
			}
			tok.num = v
			return tok, nil
		case isLetter(r):
			l.unreadRune()
			if err := l.scanIdent(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenIdent
			return tok, nil
		default:
			if k := strings.IndexRune(Symbols, r); k >= 0 {
				tok.text = Symbols[k : k+1]
				tok.kind = symkinds[k]
				return tok, nil
			}
			// Write the rune so that it shows up in the error.
			l.buf.WriteRune(r)
			return tok, l.error("unexpected character " + strconv.QuoteRune(r))
		}
	}
}

// scanNum scans a decimal number with an optional fractional part. Spaces
// inside a digit run are dropped, so "1 000" scans as 1000.
func (l *lexer) scanNum() error {
	if err := l.scanDigits(); err != nil {
		return err
	}
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if r != '.' {
		l.unreadRune()
		return nil
	}
	l.buf.WriteRune(r)
	r, err = l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return l.error("expected a number after the dot")
		}
		return err
	}
	l.unreadRune()
	if !isDigit(r) {
		return l.error("expected a number after the dot")
	}
	return l.scanDigits()
}

func (l *lexer) scanDigits() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case isDigit(r):
			l.buf.WriteRune(r)
		case r == ' ':
			// Digit groups may be separated by spaces.
		default:
			l.unreadRune()
			return nil
		}
	}
}

func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides ident scanning before
				// calling scanIdent, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		if !isLetter(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

func (l *lexer) error(msg string) error {
	return &LexError{
		Text: l.buf.String(),
		Msg:  msg,
		Col:  l.rune - 1,
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isLetter reports whether r may appear in an identifier. Identifiers are
// ASCII letters only; digits and underscores always end them.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// LexError indicates an invalid token. It implements ParseError.
type LexError struct {
	// Text is the token the lexer was scanning when the error occurred,
	// including the offending rune if there was one.
	Text string
	// Msg describes the problem.
	Msg string
	// Col is the 1-based position of the last rune the lexer read before
	// failing, or of the start of the token for a number out of range.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *LexError) Pos() int {
	return err.Col
}
