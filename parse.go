package graphing

import (
	"io"
	"strings"
)

// expr        = factor { ('+' | '-') factor }
// factor      = implied_mul { ('*' | '/') implied_mul }
// implied_mul = power { power }
// power       = value { '^' value }
// value       = literal | '(' expr ')'
// literal     = num | 'pi' | 'e' | variable | call
// call        = func1 arg | funcb '_' value arg
// arg         = '(' expr ')' | implied_mul
//
// A leading '+' or '-' is allowed only as the first token of an expr,
// factor, implied_mul, or power that is itself first in its production. The
// sign applies to the whole power that follows it, so -x^2 is -(x^2) and
// -x y is (-x)*y. Exponentiation is right-associative.

// Expr is a parsed expression in one free variable. An Expr is immutable and
// safe for concurrent use.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// variable is the name of the free variable.
	variable string
}

// Parse parses an expression in the free variable named variable. It is a
// shortcut for NewParser followed by Parser.Parse.
func Parse(src, variable string) (*Expr, error) {
	p, err := NewParser(variable)
	if err != nil {
		return nil, err
	}
	return p.Parse(src)
}

// Parse parses an expression. On failure, the error is a ParseError and no
// expression is returned.
func (p *Parser) Parse(src string) (*Expr, error) {
	return p.ParseReader(strings.NewReader(src))
}

// ParseReader parses an expression read to EOF from src. Errors from src
// other than io.EOF are returned as is.
func (p *Parser) ParseReader(src io.RuneScanner) (*Expr, error) {
	toks, err := tokenize(src)
	if err != nil {
		tracer().Debugf("lexing failed: %v", err)
		return nil, err
	}
	ps := parsectx{toks: toks, variable: p.variable, nomore: make([]bool, len(toks))}
	n, err := ps.expr(true)
	if err != nil {
		tracer().Debugf("parsing failed: %v", err)
		return nil, err
	}
	if tok := ps.tok(); tok.kind != tokenEOF {
		return nil, &SyntaxError{Col: tok.pos, Got: tok.describe()}
	}
	return &Expr{n: n, variable: p.variable}, nil
}

// parsectx is the state of a single parse. The token list is never modified;
// backtracking only resets at.
type parsectx struct {
	toks     []lexToken
	at       int
	variable string
	// nomore marks positions where an implied factor failed to parse. Parsing
	// a power depends only on the position, so a failure there is final.
	nomore []bool
}

// tok returns the current token.
func (p *parsectx) tok() lexToken {
	return p.toks[p.at]
}

// advance moves to the next token. The EOF token is never passed.
func (p *parsectx) advance() {
	if p.toks[p.at].kind != tokenEOF {
		p.at++
	}
}

// expected creates an error for the current token when want was required.
func (p *parsectx) expected(want string) error {
	tok := p.tok()
	return &SyntaxError{Col: tok.pos, Want: want, Got: tok.describe()}
}

func (p *parsectx) expr(signed bool) (*node, error) {
	n, err := p.factor(signed)
	if err != nil {
		return nil, err
	}
	for {
		var kind nodeKind
		switch p.tok().kind {
		case tokenPlus:
			kind = nodeAdd
		case tokenMinus:
			kind = nodeSub
		default:
			return n, nil
		}
		p.advance()
		rhs, err := p.factor(false)
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

func (p *parsectx) factor(signed bool) (*node, error) {
	n, err := p.impliedMul(signed)
	if err != nil {
		return nil, err
	}
	for {
		var kind nodeKind
		switch p.tok().kind {
		case tokenStar:
			kind = nodeMul
		case tokenSlash:
			kind = nodeDiv
		default:
			return n, nil
		}
		p.advance()
		rhs, err := p.impliedMul(false)
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

// impliedMul parses a run of juxtaposed powers. After each power, it tries
// to parse one more; if that fails for any reason, the position is restored
// and the run ends there. A syntax error inside that attempt therefore
// surfaces later, if at all, as an error about whatever token follows the run.
func (p *parsectx) impliedMul(signed bool) (*node, error) {
	n, err := p.power(signed)
	if err != nil {
		return nil, err
	}
	for {
		at := p.at
		if p.nomore[at] {
			return n, nil
		}
		rhs, err := p.power(false)
		if err != nil {
			p.at = at
			p.nomore[at] = true
			return n, nil
		}
		n = &node{kind: nodeMul, left: n, right: rhs}
	}
}

func (p *parsectx) power(signed bool) (*node, error) {
	var n *node
	var err error
	if signed {
		n, err = p.signedValue()
	} else {
		n, err = p.value()
	}
	if err != nil {
		return nil, err
	}
	if p.tok().kind != tokenCaret {
		return n, nil
	}
	var ups []*node
	for p.tok().kind == tokenCaret {
		p.advance()
		up, err := p.value()
		if err != nil {
			return nil, err
		}
		ups = append(ups, up)
	}
	// Fold from the right: a^b^c -> a^(b^c).
	r := ups[len(ups)-1]
	for i := len(ups) - 2; i >= 0; i-- {
		r = &node{kind: nodePow, left: ups[i], right: r}
	}
	return &node{kind: nodePow, left: n, right: r}, nil
}

// signedValue parses an optionally signed power.
func (p *parsectx) signedValue() (*node, error) {
	switch p.tok().kind {
	case tokenPlus:
		p.advance()
		return p.power(false)
	case tokenMinus:
		p.advance()
		n, err := p.power(false)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, left: n}, nil
	default:
		return p.power(false)
	}
}

func (p *parsectx) value() (*node, error) {
	if p.tok().kind != tokenOpen {
		return p.literal()
	}
	p.advance()
	n, err := p.expr(true)
	if err != nil {
		return nil, err
	}
	if p.tok().kind != tokenClose {
		return nil, p.expected("')'")
	}
	p.advance()
	return n, nil
}

func (p *parsectx) literal() (*node, error) {
	tok := p.tok()
	switch tok.kind {
	case tokenNum:
		p.advance()
		return &node{kind: nodeNum, name: tok.text, num: tok.num}, nil
	case tokenIdent:
		// The variable shadows constants and functions of the same name.
		if tok.text == p.variable {
			p.advance()
			return &node{kind: nodeVar, name: tok.text}, nil
		}
		if c, ok := constants[tok.text]; ok {
			p.advance()
			return &node{kind: nodeNum, name: tok.text, num: c}, nil
		}
		if _, ok := monadics[tok.text]; ok {
			p.advance()
			arg, err := p.callarg()
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeCall, name: tok.text, left: arg}, nil
		}
		if _, ok := dyadics[tok.text]; ok {
			p.advance()
			if p.tok().kind != tokenUnder {
				return nil, p.expected("'_'")
			}
			p.advance()
			base, err := p.value()
			if err != nil {
				return nil, err
			}
			arg, err := p.callarg()
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeBaseCall, name: tok.text, left: base, right: arg}, nil
		}
	}
	return nil, p.expected("a value")
}

// callarg parses a function argument. A parenthesized argument is exactly
// the bracketed expression, so sin(x)^2 is (sin x)^2. Otherwise the argument
// is a whole implied multiplication: sin 2x is sin(2*x).
func (p *parsectx) callarg() (*node, error) {
	if p.tok().kind == tokenOpen {
		return p.value()
	}
	return p.impliedMul(false)
}

// Variable returns the name of the expression's free variable.
func (e *Expr) Variable() string {
	return e.variable
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false, true)
	return b.String()
}
