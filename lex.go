package rpn

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeric literal.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

// Operators contains the runes which are binary operators.
const Operators = "+-*/"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// strict causes runes outside any lexeme to be errors instead of skipped.
	strict bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
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

// next scans the next token from the input. At the end of the input, the
// result is an EOF token with a nil error, every time next is called.
func (l *lexer) next() (lexToken, error) {
	defer l.buf.Reset()
	for {
		tok := lexToken{pos: l.rune}
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				return tok, nil
			}
			return tok, l.readError(err)
		}
		switch {
		case isDigit(r):
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.text = string(r)
			tok.kind = tokenOp
			return tok, nil
		case unicode.IsSpace(r):
			continue
		default:
			if l.strict {
				return tok, &LexError{Text: string(r), Col: tok.pos}
			}
			// Anything else is not part of the language and is skipped.
			continue
		}
	}
}

// scanNum scans digits with an optional fraction. A dot is part of the
// literal only when at least one digit follows it; otherwise the dot is left
// out of the token and skipped like any other unknown rune.
func (l *lexer) scanNum() error {
	if err := l.scanDigits(); err != nil {
		return err
	}
	dot := l.rune
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return l.readError(err)
	}
	if r != '.' {
		l.unreadRune()
		return nil
	}
	r, err = l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return l.dangling(dot)
		}
		return l.readError(err)
	}
	if !isDigit(r) {
		l.unreadRune()
		return l.dangling(dot)
	}
	l.buf.WriteByte('.')
	l.buf.WriteRune(r)
	return l.scanDigits()
}

// scanDigits scans a run of zero or more digits.
func (l *lexer) scanDigits() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return l.readError(err)
		}
		if !isDigit(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// dangling handles a dot with no fraction digits at column col.
func (l *lexer) dangling(col int) error {
	if l.strict {
		return &LexError{Text: l.buf.String() + ".", Col: col}
	}
	return nil
}

func (l *lexer) readError(err error) error {
	return &LexError{
		Text: l.buf.String(),
		Col:  l.rune,
		Err:  err,
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
