package emu

import (
	"math"

	"github.com/sarchlab/cusim/insts"
)

// ALU implements the operation table of the control unit.
// Every operation is a pure function of its operands.
type ALU struct{}

// NewALU creates a new ALU.
func NewALU() *ALU {
	return &ALU{}
}

// Compute dispatches op over the operands a and b.
// SQRT only consumes a.
func (u *ALU) Compute(op insts.Op, a, b float64) (float64, error) {
	var (
		result float64
		err    error
	)

	switch op {
	case insts.OpADD:
		result = Add(a, b)
	case insts.OpSUB:
		result = Sub(a, b)
	case insts.OpMUL:
		result = Mul(a, b)
	case insts.OpDIV:
		result, err = Div(a, b)
	case insts.OpMOD:
		result, err = Mod(a, b)
	case insts.OpPOW:
		result = Pow(a, b)
	case insts.OpAND:
		result, err = And(a, b)
	case insts.OpOR:
		result, err = Or(a, b)
	case insts.OpSQRT:
		result, err = Sqrt(a)
	case insts.OpLOG:
		result, err = Log(a, b)
	default:
		return 0, InstructionError{Name: op.String()}
	}

	if err != nil {
		return 0, OperandError{Op: op.String(), A: a, B: b, Err: err}
	}
	return result, nil
}

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Sub returns a - b.
func Sub(a, b float64) float64 {
	return a - b
}

// Mul returns a * b.
func Mul(a, b float64) float64 {
	return a * b
}

// Div returns the real-valued quotient a / b. It never truncates.
func Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Mod returns a modulo b. The result has the sign of the divisor
// (floored modulo), so Mod(-7, 3) is 2 and Mod(7, -3) is -2.
func Mod(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r, nil
}

// Pow returns a raised to the power b. Domain validity is the caller's
// concern: a negative base with a fractional exponent yields NaN.
func Pow(a, b float64) float64 {
	return math.Pow(a, b)
}

// And returns the bitwise AND of two integral operands.
func And(a, b float64) (float64, error) {
	x, y, err := integral(a, b)
	if err != nil {
		return 0, err
	}
	return float64(x & y), nil
}

// Or returns the bitwise OR of two integral operands.
func Or(a, b float64) (float64, error) {
	x, y, err := integral(a, b)
	if err != nil {
		return 0, err
	}
	return float64(x | y), nil
}

// Sqrt returns the non-negative square root of a.
func Sqrt(a float64) (float64, error) {
	if a < 0 {
		return 0, ErrDomain
	}
	return math.Sqrt(a), nil
}

// Log returns the logarithm of a in the given base.
func Log(a, base float64) (float64, error) {
	if a <= 0 || base <= 0 || base == 1 {
		return 0, ErrDomain
	}
	return math.Log(a) / math.Log(base), nil
}

// integral converts both operands to int64, failing when either has a
// fractional part or lies outside the int64 range.
func integral(a, b float64) (int64, int64, error) {
	x, ok := toInt64(a)
	if !ok {
		return 0, 0, ErrNotIntegral
	}
	y, ok := toInt64(b)
	if !ok {
		return 0, 0, ErrNotIntegral
	}
	return x, y, nil
}

func toInt64(v float64) (int64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, false
	}
	// 2^63 itself is not representable.
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}
