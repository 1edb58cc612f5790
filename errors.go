package scicalc

import (
	"strconv"
)

// ErrorText is the message of every *EvaluationError.
const ErrorText = "Error"

// EvaluationError is the error returned by EvaluateExpression for any
// failure. Its message is always "Error", which is what the calculator shows;
// the specific cause is available through errors.As or Unwrap.
type EvaluationError struct {
	// Expr is the expression that failed, before constant substitution.
	Expr string
	// Err is the cause.
	Err error
}

func (err *EvaluationError) Error() string {
	return ErrorText
}

func (err *EvaluationError) Unwrap() error {
	return err.Err
}

// BracketError is an error indicating an unmatched parenthesis. It
// implements InputError.
type BracketError struct {
	// Col is the position of the parenthesis.
	Col int
	// Paren is the unmatched parenthesis.
	Paren string
}

func (err *BracketError) Error() string {
	if err.Paren == string(OpenParen) {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket ) with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating a symbol that is neither a number, an
// operator, nor a parenthesis. It implements InputError.
type OperatorError struct {
	// Col is the position of the symbol.
	Col int
	// Operator is the symbol that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown symbol "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a numeric token that does not parse,
// e.g. "1.2.3". It implements InputError and unwraps to the
// *strconv.NumError.
type NumberError struct {
	// Col is the position of the number.
	Col int
	// Text is the token.
	Text string
	// Err is the parsing error.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

// ArityError is an error indicating an operator without enough operands,
// e.g. the × in "2×". It implements InputError.
type ArityError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator.
	Operator string
	// Have is the number of operands that were available.
	Have int
	// Want is the number of operands the operator takes.
	Want int
}

func (err *ArityError) Error() string {
	return errpos(err.Col, "operator "+err.Operator+" needs "+strconv.Itoa(err.Want)+" operands, have "+strconv.Itoa(err.Have))
}

func (err *ArityError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating a division by exactly zero. It
// implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// ResultError is an error indicating that evaluation did not leave exactly
// one value, e.g. for an empty expression.
type ResultError struct {
	// Len is the number of values left.
	Len int
}

func (err *ResultError) Error() string {
	if err.Len == 0 {
		return "no expression"
	}
	return strconv.Itoa(err.Len) + " values left after evaluation"
}

// NonFiniteError is an error indicating that a result overflowed or is not
// a number.
type NonFiniteError struct {
	// X is the result.
	X float64
}

func (err *NonFiniteError) Error() string {
	return "result " + strconv.FormatFloat(err.X, 'g', -1, 64) + " is not finite"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// a specific token in the input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error. Positions are
	// counted after constant substitution.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*ArityError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
)
