package calc

import "strconv"

// NumberError indicates a numeric token whose text is not a valid
// decimal number, e.g. "3.4.5" or a bare ".". It implements EvalError.
type NumberError struct {
	// Col is the column of the number.
	Col int
	// Text is the malformed numeric text.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "malformed number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// OperandError indicates an operator that had fewer than two operands
// available on the stack, e.g. the trailing + of "1+". It implements
// EvalError.
type OperandError struct {
	// Col is the column of the operator.
	Col int
	// Op is the operator.
	Op string
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "operator "+err.Op+" with insufficient operands")
}

func (err *OperandError) Pos() int {
	return err.Col
}

// ExpressionError indicates a structurally invalid postfix sequence,
// i.e. a token that should never reach evaluation. It implements
// EvalError.
type ExpressionError struct {
	// Col is the column of the token.
	Col int
	// Text is the token text.
	Text string
}

func (err *ExpressionError) Error() string {
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Text)+" in postfix expression")
}

func (err *ExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// EvalError is an error with position information. Every error returned
// from evaluation implements EvalError. Callers that don't care which
// kind occurred can treat any failure as a generic error indicator.
type EvalError interface {
	error
	// Pos returns the position of the error as the number of runes up to
	// and including the start of the token that caused the error.
	Pos() int
}

var (
	_ EvalError = (*NumberError)(nil)
	_ EvalError = (*OperandError)(nil)
	_ EvalError = (*ExpressionError)(nil)
)
