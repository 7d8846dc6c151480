package insts

// Op represents a control unit opcode.
type Op uint8

// Control unit opcodes.
const (
	OpUnknown Op = iota
	OpADD
	OpSUB
	OpMUL
	OpDIV
	OpMOD
	OpPOW
	OpAND
	OpOR
	OpSQRT
	OpLOG

	numOps
)

var opNames = [numOps]string{
	OpUnknown: "UNKNOWN",
	OpADD:     "ADD",
	OpSUB:     "SUB",
	OpMUL:     "MUL",
	OpDIV:     "DIV",
	OpMOD:     "MOD",
	OpPOW:     "POW",
	OpAND:     "AND",
	OpOR:      "OR",
	OpSQRT:    "SQRT",
	OpLOG:     "LOG",
}

var opByName = func() map[string]Op {
	m := make(map[string]Op, numOps)
	for op := OpADD; op < numOps; op++ {
		m[opNames[op]] = op
	}
	return m
}()

// String returns the mnemonic of the opcode.
func (o Op) String() string {
	if o >= numOps {
		return opNames[OpUnknown]
	}
	return opNames[o]
}

// Valid reports whether the opcode belongs to the instruction set.
func (o Op) Valid() bool {
	return o > OpUnknown && o < numOps
}

// IsUnary returns true for opcodes that only consume their first operand.
func (o Op) IsUnary() bool {
	return o == OpSQRT
}

// IsLogic returns true for the bitwise opcodes, which require integral
// operands.
func (o Op) IsLogic() bool {
	return o == OpAND || o == OpOR
}

// IsDivide returns true for opcodes that fail on a zero divisor.
func (o Op) IsDivide() bool {
	return o == OpDIV || o == OpMOD
}

// ParseOp looks up an opcode by its upper-case mnemonic.
func ParseOp(name string) (Op, bool) {
	op, ok := opByName[name]
	return op, ok
}

// Ops returns every valid opcode in declaration order.
func Ops() []Op {
	ops := make([]Op, 0, numOps-1)
	for op := OpADD; op < numOps; op++ {
		ops = append(ops, op)
	}
	return ops
}
