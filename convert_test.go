package rpn_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/rpn"
)

func TestConvert(t *testing.T) {
	var (
		add = rpn.Op(rpn.Add)
		sub = rpn.Op(rpn.Sub)
		mul = rpn.Op(rpn.Mul)
		div = rpn.Op(rpn.Div)
		n   = rpn.Num
	)
	cases := []struct {
		name string
		src  string
		want rpn.Postfix
	}{
		{"empty", "", nil},
		{"space", "   ", nil},
		{"parens", "()", nil},
		{"num", "1", rpn.Postfix{n(1)}},
		{"frac", "2.5", rpn.Postfix{n(2.5)}},
		{"add", "1+2", rpn.Postfix{n(1), n(2), add}},
		{"spaced", " 1 +  2 ", rpn.Postfix{n(1), n(2), add}},
		{"sub3", "10-2-3", rpn.Postfix{n(10), n(2), sub, n(3), sub}},
		{"div3", "8/4/2", rpn.Postfix{n(8), n(4), div, n(2), div}},
		{"addsub", "1+2-3", rpn.Postfix{n(1), n(2), add, n(3), sub}},
		{"muldiv", "1*2/3", rpn.Postfix{n(1), n(2), mul, n(3), div}},
		{"asc", "2+3*4", rpn.Postfix{n(2), n(3), n(4), mul, add}},
		{"desc", "2*3+4", rpn.Postfix{n(2), n(3), mul, n(4), add}},
		{"paren", "(2+3)*4", rpn.Postfix{n(2), n(3), add, n(4), mul}},
		{"nested", "((1))", rpn.Postfix{n(1)}},
		{"rparen", "2-(3-4)", rpn.Postfix{n(2), n(3), n(4), sub, sub}},
		{"mixed", "4*(6-3)+(8-6)/2", rpn.Postfix{n(4), n(6), n(3), sub, mul, n(8), n(6), sub, n(2), div, add}},
		{"long", "1+2*3-4/5", rpn.Postfix{n(1), n(2), n(3), mul, add, n(4), n(5), div, sub}},
		{"skipped", "2x+1", rpn.Postfix{n(2), n(1), add}},
		// Missing operands are left for evaluation to find.
		{"dangling", "1+", rpn.Postfix{n(1), add}},
		{"unary", "-1", rpn.Postfix{n(1), sub}},
		{"adjacent", "1 2", rpn.Postfix{n(1), n(2)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := rpn.ConvertString(c.src)
			require.NoError(t, err, "converting %q", c.src)
			if !equal(got, c.want) {
				t.Errorf("converting %q:\n\twant %s\n\tgot  %s", c.src, repr.String(c.want), repr.String(got))
			}
		})
	}
}

func TestConvertBrackets(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
		open bool
	}{
		{"unclosed", "(1+2", 1, true},
		{"unclosed-inner", "((1+2)", 1, true},
		{"unclosed-last", "(1)+(2", 5, true},
		{"unopened", "1+2)", 4, false},
		{"unopened-first", ")", 1, false},
		{"unopened-after", "(1))", 4, false},
		{"unopened-before-open", "1)+(2", 2, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := rpn.ConvertString(c.src)
			if p != nil {
				t.Errorf("converting %q gave non-nil result %v", c.src, p)
			}
			var be *rpn.BracketError
			if !errors.As(err, &be) {
				t.Fatalf("converting %q: want *BracketError, got %#v", c.src, err)
			}
			if be.Col != c.col || be.Open != c.open {
				t.Errorf("converting %q: want col %d open %t, got %+v", c.src, c.col, c.open, *be)
			}
			if !errors.Is(err, rpn.ErrInvalidExpression) {
				t.Errorf("%v does not unwrap to ErrInvalidExpression", err)
			}
			ie, ok := err.(rpn.InputError)
			if !ok {
				t.Fatalf("%#v is not an InputError", err)
			}
			if ie.Pos() != c.col {
				t.Errorf("wrong position: want %d, got %d", c.col, ie.Pos())
			}
		})
	}
}

func TestConvertRejectUnknown(t *testing.T) {
	cases := []struct {
		src  string
		text string
		col  int
	}{
		{"2x+1", "x", 2},
		{"1 + 2 = 3", "=", 7},
		{"1.+2", "1.", 2},
	}
	for _, c := range cases {
		_, err := rpn.ConvertString(c.src, rpn.RejectUnknown())
		var le *rpn.LexError
		if !errors.As(err, &le) {
			t.Errorf("converting %q: want *LexError, got %#v", c.src, err)
			continue
		}
		if le.Text != c.text || le.Pos() != c.col {
			t.Errorf("converting %q: want %q at %d, got %q at %d", c.src, c.text, c.col, le.Text, le.Pos())
		}
		if !strings.Contains(le.Error(), "invalid token") {
			t.Errorf("%q doesn't mention the invalid token", le.Error())
		}
	}
	// Whitespace is still allowed.
	p, err := rpn.ConvertString(" 1\t+\n2 ", rpn.Strict())
	require.NoError(t, err)
	require.Equal(t, "1 2 +", p.String())
}

func TestConvertHugeLiteral(t *testing.T) {
	p, err := rpn.ConvertString(strings.Repeat("9", 400))
	require.NoError(t, err)
	require.Len(t, p, 1)
	if !math.IsInf(p[0].Value, 1) {
		t.Errorf("want +Inf, got %v", p[0].Value)
	}
}

func TestPostfixString(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"", ""},
		{"1+2", "1 2 +"},
		{"4*(6-3)+(8-6)/2", "4 6 3 - * 8 6 - 2 / +"},
		{"0.25*8", "0.25 8 *"},
	}
	for _, c := range cases {
		p, err := rpn.ConvertString(c.src)
		require.NoError(t, err, "converting %q", c.src)
		if got := p.String(); got != c.want {
			t.Errorf("%q rendered as %q, want %q", c.src, got, c.want)
		}
	}
}

// equal compares postfix sequences, treating nil and empty as equal.
func equal(a, b rpn.Postfix) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
