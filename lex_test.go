package graphing

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	num := func(text string, v float64, pos int) lexToken {
		return lexToken{text: text, num: v, kind: tokenNum, pos: pos}
	}
	ident := func(text string, pos int) lexToken {
		return lexToken{text: text, kind: tokenIdent, pos: pos}
	}
	sym := func(text string, kind tokenKind, pos int) lexToken {
		return lexToken{text: text, kind: kind, pos: pos}
	}
	eof := func(pos int) lexToken {
		return lexToken{kind: tokenEOF, pos: pos}
	}
	cases := []struct {
		name   string
		src    string
		tokens []lexToken
	}{
		// spaces
		{"empty", "", []lexToken{eof(1)}},
		{"spaces", " \t \r\n ", []lexToken{eof(7)}},
		// numbers
		{"zero", "0", []lexToken{num("0", 0, 1), eof(2)}},
		{"digits", "9876543210", []lexToken{num("9876543210", 9876543210, 1), eof(11)}},
		{"merged", "1 000", []lexToken{num("1000", 1000, 1), eof(6)}},
		{"merged-frac", "1 2.5 0", []lexToken{num("12.50", 12.5, 1), eof(8)}},
		{"frac", "1.25", []lexToken{num("1.25", 1.25, 1), eof(5)}},
		{"leading-dot", ".5", []lexToken{num(".5", 0.5, 1), eof(3)}},
		{"trailing-space", "3 ", []lexToken{num("3", 3, 1), eof(3)}},
		{"num-ident", "2x", []lexToken{num("2", 2, 1), ident("x", 2), eof(3)}},
		{"num-space-ident", "2 x", []lexToken{num("2", 2, 1), ident("x", 3), eof(4)}},
		{"neg", "-1", []lexToken{sym("-", tokenMinus, 1), num("1", 1, 2), eof(3)}},
		// identifiers
		{"x", "x", []lexToken{ident("x", 1), eof(2)}},
		{"word", "sin", []lexToken{ident("sin", 1), eof(4)}},
		{"case", "Pi", []lexToken{ident("Pi", 1), eof(3)}},
		{"ident-digit", "x2", []lexToken{ident("x", 1), num("2", 2, 2), eof(3)}},
		{"ident-under", "log_2", []lexToken{ident("log", 1), sym("_", tokenUnder, 4), num("2", 2, 5), eof(6)}},
		{"idents", "sin x", []lexToken{ident("sin", 1), ident("x", 5), eof(6)}},
		// symbols
		{"symbols", "+-*/^()_", []lexToken{
			sym("+", tokenPlus, 1),
			sym("-", tokenMinus, 2),
			sym("*", tokenStar, 3),
			sym("/", tokenSlash, 4),
			sym("^", tokenCaret, 5),
			sym("(", tokenOpen, 6),
			sym(")", tokenClose, 7),
			sym("_", tokenUnder, 8),
			eof(9),
		}},
		{"expr", "1+x", []lexToken{num("1", 1, 1), sym("+", tokenPlus, 2), ident("x", 3), eof(4)}},
		{"paren", "(x)", []lexToken{sym("(", tokenOpen, 1), ident("x", 2), sym(")", tokenClose, 3), eof(4)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := tokenize(strings.NewReader(c.src))
			if err != nil {
				t.Fatalf("scanning %q: unexpected error %v", c.src, err)
			}
			if len(got) != len(c.tokens) {
				t.Fatalf("scanning %q: want %v, got %v", c.src, c.tokens, got)
			}
			for i, want := range c.tokens {
				if got[i] != want {
					t.Errorf("scanning %q: token %d: want %v, got %v", c.src, i, want, got[i])
				}
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
		text string
		col  int
	}{
		{"dot-eof", "x .", "expected a number after the dot", ".", 3},
		{"trailing-dot", "1.", "expected a number after the dot", "1.", 2},
		{"dot-ident", "1.x", "expected a number after the dot", "1.", 2},
		{"dot", ".", "expected a number after the dot", ".", 1},
		{"two-dots", "1..2", "expected a number after the dot", "1.", 2},
		{"dollar", "$", "unexpected character '$'", "$", 1},
		{"after-ident", "x$", "unexpected character '$'", "$", 2},
		{"unicode", "2π", "unexpected character 'π'", "π", 2},
		{"comma", "log(2, 8)", "unexpected character ','", ",", 6},
		{"range", "1" + strings.Repeat("0", 400), "number out of range", "1" + strings.Repeat("0", 400), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := tokenize(strings.NewReader(c.src))
			if toks != nil {
				t.Errorf("scanning %q: got tokens %v along with error", c.src, toks)
			}
			var lerr *LexError
			if !errors.As(err, &lerr) {
				t.Fatalf("scanning %q: want *LexError, got %#v", c.src, err)
			}
			if lerr.Msg != c.msg {
				t.Errorf("scanning %q: want message %q, got %q", c.src, c.msg, lerr.Msg)
			}
			if lerr.Text != c.text {
				t.Errorf("scanning %q: want text %q, got %q", c.src, c.text, lerr.Text)
			}
			if lerr.Pos() != c.col {
				t.Errorf("scanning %q: want column %d, got %d", c.src, c.col, lerr.Pos())
			}
		})
	}
}

func TestLexEOF(t *testing.T) {
	scan := lex(strings.NewReader("x"))
	if tok, err := scan.next(); err != nil || tok.kind != tokenIdent {
		t.Fatalf("want identifier, got %v, %v", tok, err)
	}
	if tok, err := scan.next(); err != nil || tok.kind != tokenEOF {
		t.Fatalf("want EOF token, got %v, %v", tok, err)
	}
	if tok, err := scan.next(); err != io.EOF {
		t.Errorf("want io.EOF after the EOF token, got %v, %v", tok, err)
	}
}

func TestTokenDescribe(t *testing.T) {
	cases := []struct {
		tok  lexToken
		want string
	}{
		{lexToken{text: "2.5", kind: tokenNum}, "number 2.5"},
		{lexToken{text: "foo", kind: tokenIdent}, `identifier "foo"`},
		{lexToken{kind: tokenEOF}, "end of expression"},
		{lexToken{text: ")", kind: tokenClose}, ")"},
	}
	for _, c := range cases {
		if got := c.tok.describe(); got != c.want {
			t.Errorf("%v: want %q, got %q", c.tok, c.want, got)
		}
	}
}
