package program

import (
	"errors"

	"github.com/sarchlab/cusim/translate"
)

var f = translate.From

var (
	ErrStatementInvalid = errors.New(f("statement invalid"))
	ErrArgCount         = errors.New(f("wrong number of arguments"))
	ErrRegisterSyntax   = errors.New(f("register syntax"))
	ErrValueInvalid     = errors.New(f("value invalid"))
	ErrExpression       = errors.New(f("expression invalid"))
)

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Unwrap() error {
	return ErrValueInvalid
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Unwrap() error {
	return ErrExpression
}

// SyntaxError reports a script line that could not be parsed.
type SyntaxError struct {
	LineNo int
	Line   string
	Err    error
}

func (err SyntaxError) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err SyntaxError) Unwrap() error {
	return err.Err
}

// ExecError reports a statement that failed while running.
type ExecError struct {
	LineNo int
	Line   string
	Err    error
}

func (err ExecError) Error() string {
	return f("line %d '%v' failed: %v", err.LineNo, err.Line, err.Err)
}

func (err ExecError) Unwrap() error {
	return err.Err
}
