package rpn

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Expr = num | Expr op Expr | '(' Expr ')'
// op = '+' | '-' | '*' | '/'
//
// Convert treats its input as if it were wrapped in one more pair of
// parentheses, so the end of input flushes the operator stack the same way a
// close bracket does.

// pending is an entry on the operator stack.
type pending struct {
	kind Kind
	// col is the position of the operator or bracket. The implicit outer
	// open bracket has col 0.
	col int
}

// converter holds the state of one conversion.
type converter struct {
	ops []pending
	out Postfix
}

// Convert scans an infix expression and reorders it into postfix order using
// the shunting-yard algorithm. The given options are applied in order.
//
// Errors from malformed input are a *LexError or a *BracketError. Operators
// with missing operands are not detected here; Evaluate reports them.
func Convert(src io.RuneScanner, opts ...ConvertOption) (Postfix, error) {
	var c convertctx
	for _, opt := range opts {
		c = opt.convertOption(c)
	}
	scan := lex(src)
	scan.strict = c.unknown
	cv := converter{ops: []pending{{kind: Open}}}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum:
			cv.out = append(cv.out, Num(num(tok.text)))
		case tokenOpen:
			cv.ops = append(cv.ops, pending{kind: Open, col: tok.pos})
		case tokenClose:
			if err := cv.close(tok.pos); err != nil {
				return nil, err
			}
		case tokenOp:
			k, ok := kindOf(tok.text)
			if !ok || !k.binary() {
				panic("rpn: lexed unknown operator " + tok.String())
			}
			cv.operator(k, tok.pos)
		case tokenEOF:
			return cv.finish()
		default:
			panic("rpn: unknown token: " + tok.String())
		}
	}
}

// ConvertString is a shortcut to convert a string expression.
func ConvertString(src string, opts ...ConvertOption) (Postfix, error) {
	return Convert(strings.NewReader(src), opts...)
}

// pop removes the top of the operator stack. The second result is false if
// the stack is empty.
func (cv *converter) pop() (pending, bool) {
	if len(cv.ops) == 0 {
		return pending{}, false
	}
	p := cv.ops[len(cv.ops)-1]
	cv.ops = cv.ops[:len(cv.ops)-1]
	return p, true
}

// close emits operators down to the nearest open bracket and discards it.
// Reaching the implicit outer bracket means the close bracket at col has no
// match.
func (cv *converter) close(col int) error {
	for {
		p, ok := cv.pop()
		if !ok || p.kind == Open && p.col == 0 {
			return &BracketError{Col: col, Open: false}
		}
		if p.kind == Open {
			return nil
		}
		cv.out = append(cv.out, Op(p.kind))
	}
}

// operator emits every pending operator that binds at least as tightly as k,
// then pushes k. Emitting on equal priority makes operators left-associative.
func (cv *converter) operator(k Kind, col int) {
	prio := k.Priority()
	for len(cv.ops) > 0 {
		top := cv.ops[len(cv.ops)-1]
		if top.kind == Open || top.kind.Priority() < prio {
			break
		}
		cv.out = append(cv.out, Op(top.kind))
		cv.ops = cv.ops[:len(cv.ops)-1]
	}
	cv.ops = append(cv.ops, pending{kind: k, col: col})
}

// finish performs the implicit final close bracket. Any open bracket other
// than the implicit one is unclosed.
func (cv *converter) finish() (Postfix, error) {
	for {
		p, ok := cv.pop()
		if !ok {
			panic("rpn: implicit open bracket missing at end of input")
		}
		switch {
		case p.kind == Open && p.col == 0:
			return cv.out, nil
		case p.kind == Open:
			return nil, &BracketError{Col: p.col, Open: true}
		default:
			cv.out = append(cv.out, Op(p.kind))
		}
	}
}

// num parses a numeric literal. The lexer only produces well-formed literals,
// so any error other than overflow is a bug.
func num(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// ParseFloat already gives the nearest value, i.e. +Inf.
	default:
		panic("rpn: invalid number: " + s + " (" + err.Error() + ")")
	}
	return v
}
