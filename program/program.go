// Package program runs line-oriented scripts against a control unit core.
//
// A script is a sequence of statements, one per line:
//
//	# comment
//	load r0 10
//	load r1 $(r0 / 2)
//	exec ADD r0 r1 r2
//	read r2
//	regs
//	cache
//
// Keywords, mnemonics and register names are case insensitive. A value is a
// number or a $(...) Starlark expression in which r0..r3 are bound to the
// current register values.
package program

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/sarchlab/cusim/emu"
	"github.com/sarchlab/cusim/insts"
	"github.com/sarchlab/cusim/timing/core"
)

// Kind is the type of a statement.
type Kind int

const (
	KindLoad  Kind = iota // load rN value
	KindExec              // exec OP rA rB [rD]
	KindRead              // read rN
	KindRegs              // regs
	KindCache             // cache
)

// Statement is a single parsed script line.
type Statement struct {
	LineNo int    // Line number in the source, starting at 1.
	Line   string // Source text without comments.
	Kind   Kind
	Op     insts.Op // Instruction for KindExec.
	Regs   []int    // Register operands in source order.
	Value  string   // Unevaluated value for KindLoad.
}

// Program is a parsed script.
type Program struct {
	Statements []Statement
}

// Parse reads a script, reporting the first bad line as a SyntaxError.
func Parse(r io.Reader) (*Program, error) {
	prog := &Program{}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++

		line := scanner.Text()
		if n := strings.IndexByte(line, '#'); n >= 0 {
			line = line[:n]
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		stmt, err := parseLine(line)
		if err != nil {
			return nil, SyntaxError{LineNo: lineno, Line: line, Err: err}
		}
		stmt.LineNo = lineno
		stmt.Line = line
		prog.Statements = append(prog.Statements, stmt)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return prog, nil
}

func parseLine(line string) (stmt Statement, err error) {
	words := strings.Fields(line)

	switch strings.ToLower(words[0]) {
	case "load":
		stmt.Kind = KindLoad
		if len(words) < 3 {
			err = ErrArgCount
			return
		}
		stmt.Regs, err = parseRegs(words[1:2])
		if err != nil {
			return
		}
		stmt.Value = strings.Join(words[2:], " ")
		err = checkValue(stmt.Value)
	case "exec":
		stmt.Kind = KindExec
		if len(words) != 4 && len(words) != 5 {
			err = ErrArgCount
			return
		}
		name := strings.ToUpper(words[1])
		op, ok := insts.ParseOp(name)
		if !ok {
			err = emu.InstructionError{Name: name}
			return
		}
		stmt.Op = op
		stmt.Regs, err = parseRegs(words[2:])
	case "read":
		stmt.Kind = KindRead
		if len(words) != 2 {
			err = ErrArgCount
			return
		}
		stmt.Regs, err = parseRegs(words[1:])
	case "regs", "cache":
		stmt.Kind = KindRegs
		if strings.ToLower(words[0]) == "cache" {
			stmt.Kind = KindCache
		}
		if len(words) != 1 {
			err = ErrArgCount
		}
	default:
		err = ErrStatementInvalid
	}

	return
}

// parseRegs parses register names of the form rN. The index must name one
// of the machine's registers.
func parseRegs(words []string) ([]int, error) {
	regs := make([]int, len(words))
	for i, word := range words {
		word = strings.ToLower(word)
		if len(word) < 2 || word[0] != 'r' {
			return nil, fmt.Errorf("%w: %v", ErrRegisterSyntax, word)
		}
		index, err := strconv.Atoi(word[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRegisterSyntax, word)
		}
		if index < 0 || index >= emu.NumRegs {
			return nil, emu.RegisterError{Index: index}
		}
		regs[i] = index
	}
	return regs, nil
}

// checkValue verifies a value is a number or a closed $(...) expression.
func checkValue(value string) error {
	if expr, ok := expression(value); ok {
		if len(strings.TrimSpace(expr)) == 0 {
			return ErrParseExpression(expr)
		}
		return nil
	}
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		return ErrParseNumber(value)
	}
	return nil
}

func expression(value string) (string, bool) {
	if strings.HasPrefix(value, "$(") && strings.HasSuffix(value, ")") {
		return value[2 : len(value)-1], true
	}
	return "", false
}

// Run executes the statements in order against c, writing the output of
// read, regs and cache statements to w. It stops at the first failing
// statement and reports it as an ExecError.
func (p *Program) Run(c *core.Core, w io.Writer) error {
	for _, stmt := range p.Statements {
		if err := p.step(c, w, stmt); err != nil {
			return ExecError{LineNo: stmt.LineNo, Line: stmt.Line, Err: err}
		}
	}
	return nil
}

func (p *Program) step(c *core.Core, w io.Writer, stmt Statement) error {
	switch stmt.Kind {
	case KindLoad:
		value, err := evalValue(stmt.Value, c.Machine.Registers())
		if err != nil {
			return err
		}
		return c.Load(stmt.Regs[0], value)
	case KindExec:
		dest := stmt.Regs[0]
		if len(stmt.Regs) == 3 {
			dest = stmt.Regs[2]
		}
		_, err := c.ExecuteTo(stmt.Op, stmt.Regs[0], stmt.Regs[1], dest)
		return err
	case KindRead:
		value, err := c.Read(stmt.Regs[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "r%d = %s\n", stmt.Regs[0], emu.FormatValue(value))
	case KindRegs:
		fmt.Fprintf(w, "Registers: %v\n", c.Machine.RegFile())
	case KindCache:
		fmt.Fprintf(w, "Cache: %v\n", c.Machine.Cache())
	}
	return nil
}

// evalValue converts a literal or evaluates a $(...) expression.
func evalValue(value string, regs [emu.NumRegs]float64) (float64, error) {
	expr, ok := expression(value)
	if !ok {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, ErrParseNumber(value)
		}
		return v, nil
	}

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for i, v := range regs {
		pred[fmt.Sprintf("r%d", i)] = starlark.Float(v)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParseExpression(expr), err)
	}

	switch rc := dict["rc"].(type) {
	case starlark.Float:
		return float64(rc), nil
	case starlark.Int:
		if v, ok := rc.Int64(); ok {
			return float64(v), nil
		}
		return float64(rc.Float()), nil
	default:
		return 0, ErrParseExpression(expr)
	}
}
