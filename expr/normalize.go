// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/scanner"
)

// normalize parses src with calculator precedence and re-emits it fully
// parenthesised in the engine's syntax, with x left free.
//
// Grammar (loosest first):
//
//	compare  = additive [ ("<" | "<=" | ">" | ">=" | "==" | "!=") additive ]
//	additive = term { ("+" | "-") term }
//	term     = unary { ("*" | "/" | "%") unary }
//	unary    = ("-" | "+") unary | power
//	power    = primary [ "^" unary ]
//	primary  = number | "x" | "pi" | "e" | func "(" compare ")" | "(" compare ")"
//
// power is right-associative and binds tighter than a prefix sign, so
// -x^2 is -(x^2), 2^3^2 is 2^(3^2) and e^-x^2 is e^(-(x^2)). Numbers are
// rewritten as plain decimals, so 1e-3 reaches the engine as 0.001.
// Anything left over after a complete expression, such as "(x)(x)" or
// "2(x)", is an error.
//
// Errors are plain; Compile wraps them with ErrSyntax.
func normalize(src string) (string, error) {
	p := newParser(src)
	out, err := p.compare()
	if err != nil {
		return "", err
	}
	if p.tok != scanner.EOF {
		return "", p.unexpected()
	}
	if p.scanErr != nil {
		return "", p.scanErr
	}

	return out, nil
}

// parser is a one-token-lookahead recursive descent over text/scanner.
type parser struct {
	sc      scanner.Scanner
	tok     rune   // current token
	text    string // current token text; two-rune operators are joined
	scanErr error
}

func newParser(src string) *parser {
	p := &parser{}
	p.sc.Init(strings.NewReader(src))
	p.sc.Mode = scanner.ScanIdents | scanner.ScanFloats
	p.sc.Error = func(s *scanner.Scanner, msg string) {
		if p.scanErr == nil {
			p.scanErr = fmt.Errorf("at %s: %s", s.Pos(), msg)
		}
	}
	p.next()

	return p
}

// next advances to the following token, joining <=, >=, == and !=.
func (p *parser) next() {
	p.tok = p.sc.Scan()
	p.text = p.sc.TokenText()
	switch p.tok {
	case '<', '>', '=', '!':
		if p.sc.Peek() == '=' {
			p.sc.Next()
			p.text += "="
		}
	}
}

func (p *parser) unexpected() error {
	if p.scanErr != nil {
		return p.scanErr
	}
	if p.tok == scanner.EOF {
		return errors.New("unexpected end of expression")
	}

	return fmt.Errorf("unexpected %q at %s", p.text, p.sc.Position)
}

func (p *parser) compare() (string, error) {
	left, err := p.additive()
	if err != nil {
		return "", err
	}
	switch p.text {
	case "<", "<=", ">", ">=", "==", "!=":
	case "=", "!":
		return "", p.unexpected()
	default:
		return left, nil
	}
	op := p.text
	p.next()
	right, err := p.additive()
	if err != nil {
		return "", err
	}

	return "(" + left + " " + op + " " + right + ")", nil
}

func (p *parser) additive() (string, error) {
	left, err := p.term()
	if err != nil {
		return "", err
	}
	var (
		op    rune
		right string
	)
	for p.tok == '+' || p.tok == '-' {
		op = p.tok
		p.next()
		if right, err = p.term(); err != nil {
			return "", err
		}
		left = "(" + left + " " + string(op) + " " + right + ")"
	}

	return left, nil
}

func (p *parser) term() (string, error) {
	left, err := p.unary()
	if err != nil {
		return "", err
	}
	var (
		op    rune
		right string
	)
	for p.tok == '*' || p.tok == '/' || p.tok == '%' {
		op = p.tok
		p.next()
		if right, err = p.unary(); err != nil {
			return "", err
		}
		left = "(" + left + " " + string(op) + " " + right + ")"
	}

	return left, nil
}

func (p *parser) unary() (string, error) {
	switch p.tok {
	case '-':
		p.next()
		v, err := p.unary()
		if err != nil {
			return "", err
		}

		return "(-" + v + ")", nil
	case '+':
		p.next()

		return p.unary()
	}

	return p.power()
}

func (p *parser) power() (string, error) {
	base, err := p.primary()
	if err != nil {
		return "", err
	}
	if p.tok != '^' {
		return base, nil
	}
	p.next()
	exp, err := p.unary()
	if err != nil {
		return "", err
	}

	return "(" + base + " " + powOperator + " " + exp + ")", nil
}

func (p *parser) primary() (string, error) {
	switch p.tok {
	case scanner.Int, scanner.Float:
		v, err := strconv.ParseFloat(p.text, 64)
		if err != nil || !isFinite(v) {
			return "", fmt.Errorf("invalid number %q", p.text)
		}
		p.next()

		return literal(v), nil

	case scanner.Ident:
		name := p.text
		p.next()
		switch name {
		case "x":
			return name, nil
		case "pi":
			return literal(math.Pi), nil
		case "e":
			return literal(math.E), nil
		}
		if _, ok := functions[name]; !ok {
			return "", fmt.Errorf("unknown identifier %q", name)
		}
		if p.tok != '(' {
			return "", fmt.Errorf("%s: '(' expected", name)
		}
		arg, err := p.group()
		if err != nil {
			return "", err
		}

		return name + "(" + arg + ")", nil

	case '(':
		return p.group()
	}

	return "", p.unexpected()
}

// group parses "(" compare ")" and returns the inner text.
func (p *parser) group() (string, error) {
	p.next()
	inner, err := p.compare()
	if err != nil {
		return "", err
	}
	if p.tok != ')' {
		return "", p.unexpected()
	}
	p.next()

	return inner, nil
}
