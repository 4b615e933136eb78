package parser

import (
	"errors"

	"github.com/carbonpp/carbonasm/translate"
)

var f = translate.From

var (
	ErrOperandInvalid = errors.New(f("operand invalid"))
)

// ErrSyntax locates a parse error in the source text.
type ErrSyntax struct {
	LineNo int
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrMnemonic is returned for an unknown instruction name.
type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("'%v' is not an instruction", string(err))
}

// ErrCondition is returned for an unknown branch condition.
type ErrCondition string

func (err ErrCondition) Error() string {
	return f("'%v' is not a condition", string(err))
}

// ErrParseNumber is returned when a word is not a byte value.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a byte", string(err))
}

// ErrParseExpression is returned when a $(...) expression fails.
type ErrParseExpression struct {
	Expr string
	Err  error
}

func (err *ErrParseExpression) Error() string {
	if err.Err != nil {
		return f("$(%v) is not a valid expression: %v", err.Expr, err.Err)
	}
	return f("$(%v) is not a valid expression", err.Expr)
}

func (err *ErrParseExpression) Unwrap() error {
	return err.Err
}
