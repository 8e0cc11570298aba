package rpn

import (
	"strconv"
	"strings"
)

// Kind is the kind of a token.
type Kind int8

const (
	// Number is a numeric literal. It is the only kind with a value.
	Number Kind = iota
	// Add, Sub, Mul, and Div are the binary operators + - * /.
	Add
	Sub
	Mul
	Div
	// Open and Close are parentheses. They appear only transiently during
	// conversion; a postfix sequence produced by Convert contains neither.
	Open
	Close
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind
//go:generate go mod tidy

// Symbol returns the source text for an operator or parenthesis kind, or the
// empty string for Number.
func (k Kind) Symbol() string {
	switch k {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Open:
		return "("
	case Close:
		return ")"
	default:
		return ""
	}
}

// Priority returns the precedence class of an operator or parenthesis. Higher
// binds tighter. Add and Sub share class 0 and Mul and Div share class 1.
// Open and Close are class 2, although the converter never compares them.
// Panics for Number.
func (k Kind) Priority() int {
	switch k {
	case Add, Sub:
		return 0
	case Mul, Div:
		return 1
	case Open, Close:
		return 2
	default:
		panic("rpn: no priority for " + k.String())
	}
}

// binary reports whether k is one of the four arithmetic operators.
func (k Kind) binary() bool {
	return Add <= k && k <= Div
}

// kindOf gets the operator or parenthesis kind for a symbol. The second
// result is false if the symbol is not one.
func kindOf(sym string) (Kind, bool) {
	switch sym {
	case "+":
		return Add, true
	case "-":
		return Sub, true
	case "*":
		return Mul, true
	case "/":
		return Div, true
	case "(":
		return Open, true
	case ")":
		return Close, true
	default:
		return Number, false
	}
}

// Token is a single element of a postfix sequence.
type Token struct {
	Kind Kind
	// Value is the number for a Number token and zero otherwise.
	Value float64
}

// Num creates a Number token.
func Num(v float64) Token {
	return Token{Kind: Number, Value: v}
}

// Op creates an operator token. Panics if k is Number.
func Op(k Kind) Token {
	if k == Number {
		panic("rpn: Op(Number)")
	}
	return Token{Kind: k}
}

func (t Token) String() string {
	if t.Kind == Number {
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	}
	if s := t.Kind.Symbol(); s != "" {
		return s
	}
	return t.Kind.String()
}

// Postfix is a sequence of tokens in postfix order, as produced by Convert.
type Postfix []Token

// String renders the sequence as space-separated reverse Polish notation,
// e.g. "1 2 +".
func (p Postfix) String() string {
	var b strings.Builder
	for i, t := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// Eval is a shortcut for Evaluate(p, opts...).
func (p Postfix) Eval(opts ...EvalOption) (float64, bool, error) {
	return Evaluate(p, opts...)
}
