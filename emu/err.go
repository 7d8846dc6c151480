package emu

import (
	"errors"
	"strconv"

	"github.com/sarchlab/cusim/translate"
)

var f = translate.From

var (
	// Control unit errors
	ErrInvalidRegister    = errors.New(f("register index invalid"))
	ErrUnknownInstruction = errors.New(f("unknown instruction"))

	// ALU errors
	ErrDivisionByZero = errors.New(f("division by zero"))
	ErrNotIntegral    = errors.New(f("operand not integral"))
	ErrDomain         = errors.New(f("operand outside domain"))
)

// RegisterError reports an out-of-range register index.
type RegisterError struct {
	Index int
}

func (err RegisterError) Error() string {
	return f("register index %s invalid (want 0..%s)",
		strconv.Itoa(err.Index), strconv.Itoa(NumRegs-1))
}

func (err RegisterError) Unwrap() error {
	return ErrInvalidRegister
}

// InstructionError reports an instruction outside the supported set.
type InstructionError struct {
	Name string
}

func (err InstructionError) Error() string {
	return f("unknown instruction: %v", err.Name)
}

func (err InstructionError) Unwrap() error {
	return ErrUnknownInstruction
}

// OperandError reports an ALU failure together with the offending operands.
type OperandError struct {
	Op   string
	A, B float64
	Err  error
}

func (err OperandError) Error() string {
	return f("%v %s, %s: %v", err.Op, FormatValue(err.A), FormatValue(err.B), err.Err)
}

func (err OperandError) Unwrap() error {
	return err.Err
}
