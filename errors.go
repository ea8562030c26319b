package evalmath

import (
	"errors"
	"fmt"
)

// ErrorKind classifies errors of parsing and evaluation.
type ErrorKind int8

// Kinds of errors reported by the engine. All of them are recoverable per
// statement.
const (
	NoError               ErrorKind = iota // no error
	InvalidCharacter                       // character not part of the grammar
	UnknownSymbol                          // identifier neither known nor definable
	UnexpectedOperator                     // operator where an operand is required
	UnexpectedAssignment                   // '=' outside of a definition
	MismatchedParenthesis                  // unbalanced grouping
	TrailingOperator                       // expression ends expecting an operand
	InvalidNumber                          // malformed numeric literal
	ArityMismatch                          // wrong argument list at a call site
	InvalidStackState                      // internal: parser/evaluator contract violated
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "no error"
	case InvalidCharacter:
		return "invalid character"
	case UnknownSymbol:
		return "unknown symbol"
	case UnexpectedOperator:
		return "unexpected operator"
	case UnexpectedAssignment:
		return "unexpected assignment"
	case MismatchedParenthesis:
		return "mismatched parenthesis"
	case TrailingOperator:
		return "trailing operator"
	case InvalidNumber:
		return "invalid number"
	case ArityMismatch:
		return "arity mismatch"
	case InvalidStackState:
		return "internal error"
	}
	return fmt.Sprintf("<illegal error kind: %d>", k)
}

// Error is the error type of the engine. Pos is the byte offset of the
// offending token within the input text.
type Error struct {
	Kind ErrorKind
	Pos  int
	Msg  string
}

// Errorf creates an error of a given kind at input position pos.
func Errorf(kind ErrorKind, pos int, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Pos:  pos,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Msg
}

// Is lets errors.Is match an error by kind, i.e.
//
//	errors.Is(err, evalmath.ErrUnknownSymbol)
//
// holds for every error of kind UnknownSymbol.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Shift moves the position of an engine error by offset and returns it.
// Errors of other types are returned unchanged.
func Shift(err error, offset int) error {
	var e *Error
	if offset != 0 && errors.As(err, &e) {
		shifted := *e
		shifted.Pos += offset
		return &shifted
	}
	return err
}

// KindOf returns the error kind of err, NoError for nil, and
// InvalidStackState for errors not created by the engine.
func KindOf(err error) ErrorKind {
	if err == nil {
		return NoError
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return InvalidStackState
}

// PosOf returns the input position of an engine error, or -1.
func PosOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Pos
	}
	return -1
}

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidCharacter      = &Error{Kind: InvalidCharacter}
	ErrUnknownSymbol         = &Error{Kind: UnknownSymbol}
	ErrUnexpectedOperator    = &Error{Kind: UnexpectedOperator}
	ErrUnexpectedAssignment  = &Error{Kind: UnexpectedAssignment}
	ErrMismatchedParenthesis = &Error{Kind: MismatchedParenthesis}
	ErrTrailingOperator      = &Error{Kind: TrailingOperator}
	ErrInvalidNumber         = &Error{Kind: InvalidNumber}
	ErrArityMismatch         = &Error{Kind: ArityMismatch}
	ErrInvalidStackState     = &Error{Kind: InvalidStackState}
)
