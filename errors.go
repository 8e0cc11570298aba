package rpn

import (
	"errors"
	"strconv"
)

// ErrInvalidExpression is the error that structural errors unwrap to. An
// expression is structurally invalid when its brackets do not match or an
// operator lacks operands.
var ErrInvalidExpression = errors.New("invalid expression")

// LexError indicates that the input could not be scanned. It implements
// InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the error occurred. For
	// an unknown rune under RejectUnknown, it is that rune.
	Text string
	// Col is the position of the error.
	Col int
	// Err is the error from the reader, if any.
	Err error
}

func (err *LexError) Error() string {
	if err.Err != nil {
		return errpos(err.Col, "reading expression: "+err.Err.Error())
	}
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// Unwrap returns the reader error, if any.
func (err *LexError) Unwrap() error {
	return err.Err
}

// BracketError is an error indicating unbalanced parentheses. It implements
// InputError and unwraps to ErrInvalidExpression.
type BracketError struct {
	// Col is the position of the offending bracket.
	Col int
	// Open is true for an open bracket with no close bracket and false for a
	// close bracket with no open bracket.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket ) with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrInvalidExpression
}

// UnderflowError is an error indicating an operator in a postfix sequence
// with too few operands before it. It unwraps to ErrInvalidExpression.
type UnderflowError struct {
	// Index is the position of the operator in the postfix sequence.
	Index int
	// Op is the operator.
	Op Kind
	// Have is the number of operands that were available.
	Have int
}

func (err *UnderflowError) Error() string {
	return "operator " + err.Op.Symbol() + " at postfix index " + strconv.Itoa(err.Index) +
		" needs 2 operands but has " + strconv.Itoa(err.Have)
}

func (err *UnderflowError) Unwrap() error {
	return ErrInvalidExpression
}

// LeftoverError is an error indicating that evaluation ended with more than
// one value. Only evaluation with RejectLeftovers reports it. It unwraps to
// ErrInvalidExpression.
type LeftoverError struct {
	// Have is the number of values left.
	Have int
}

func (err *LeftoverError) Error() string {
	return strconv.Itoa(err.Have) + " values left after evaluation (missing operator?)"
}

func (err *LeftoverError) Unwrap() error {
	return ErrInvalidExpression
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error from Convert
// resulting from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
)
