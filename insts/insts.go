// Package insts provides the instruction set of the control unit.
//
// The set is closed: ADD, SUB, MUL, DIV, MOD, POW, AND and OR take two
// register operands, LOG takes a value and a base, and SQRT takes a single
// operand. Mnemonics are parsed from their upper-case names.
//
// Usage:
//
//	op, ok := insts.ParseOp("ADD")
//	if ok {
//		fmt.Printf("Op: %v, unary: %v\n", op, op.IsUnary())
//	}
package insts
