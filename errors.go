package calc

import (
	"errors"
	"strconv"
)

// Kind classifies evaluation failures.
type Kind int8

const (
	kindNone Kind = iota
	// UndefinedVariable is a single-letter name with no value in the Vars.
	UndefinedVariable
	// UnknownFunction is a name of several letters that is not sin, cos,
	// tan, or sqrt.
	UnknownFunction
	// InvalidCharacter is a rune that cannot begin any token.
	InvalidCharacter
	// MalformedExpression covers structural problems: unbalanced parentheses,
	// missing operands or operators, and unreadable numbers.
	MalformedExpression
	// DivisionByZero is a division whose right operand is exactly zero.
	DivisionByZero
)

func (k Kind) String() string {
	switch k {
	case kindNone:
		return "None"
	case UndefinedVariable:
		return "UndefinedVariable"
	case UnknownFunction:
		return "UnknownFunction"
	case InvalidCharacter:
		return "InvalidCharacter"
	case MalformedExpression:
		return "MalformedExpression"
	case DivisionByZero:
		return "DivisionByZero"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is the error returned for any expression that cannot be evaluated.
// It implements InputError.
type Error struct {
	// Kind is the class of failure.
	Kind Kind
	// Col is the 1-based rune position of the token that caused the error.
	Col int
	// Text is the token involved, if any: the variable or function name, the
	// invalid character, or the operator.
	Text string
	// Reason describes what was wrong with a malformed expression. It is
	// empty for other kinds.
	Reason string
}

func (err *Error) Error() string {
	switch err.Kind {
	case UndefinedVariable:
		return errpos(err.Col, "undefined variable "+strconv.Quote(err.Text))
	case UnknownFunction:
		return errpos(err.Col, "unknown function "+strconv.Quote(err.Text))
	case InvalidCharacter:
		return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
	case DivisionByZero:
		return errpos(err.Col, "division by zero")
	case MalformedExpression:
		return errpos(err.Col, "malformed expression: "+err.Reason)
	default:
		return errpos(err.Col, "evaluation failed: "+err.Kind.String())
	}
}

func (err *Error) Pos() int {
	return err.Col
}

// malformed is a shortcut to create a MalformedExpression error.
func malformed(col int, text, reason string) *Error {
	return &Error{Kind: MalformedExpression, Col: col, Text: text, Reason: reason}
}

// KindOf returns the Kind of an error produced by evaluation. The second
// result is false if err is not or does not wrap an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return kindNone, false
	}
	return e.Kind, true
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var _ InputError = (*Error)(nil)
