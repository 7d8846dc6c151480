package emu

import (
	"github.com/sarchlab/akita/v4/sim"
	log "github.com/sirupsen/logrus"

	"github.com/sarchlab/cusim/insts"
)

// Hook positions invoked by the Machine. The hook item is an *ExecEvent.
var (
	// HookPosCacheHit marks an execution served from the operation cache.
	HookPosCacheHit = &sim.HookPos{Name: "CacheHit"}
	// HookPosCacheMiss marks an execution that was sent to the ALU.
	HookPosCacheMiss = &sim.HookPos{Name: "CacheMiss"}
	// HookPosWriteBack marks the result being written to its destination.
	HookPosWriteBack = &sim.HookPos{Name: "WriteBack"}
)

// ExecEvent describes one execution for hooks.
type ExecEvent struct {
	Op     insts.Op
	A      float64 // Value of the first source register.
	B      float64 // Value of the second source register.
	Result float64
	Dest   int
	Hit    bool
}

// Machine is the register machine: a register file, an operation cache and
// the control unit that drives the ALU. A Machine is not safe for concurrent
// use; separate machines share no state.
type Machine struct {
	*sim.HookableBase

	regFile *RegFile
	cache   *OpCache
	alu     *ALU
}

// MachineOption is a functional option for configuring the Machine.
type MachineOption func(*Machine)

// WithHook attaches a hook that observes cache hits, misses and write-backs.
func WithHook(hook sim.Hook) MachineOption {
	return func(m *Machine) {
		m.AcceptHook(hook)
	}
}

// WithLogger logs every cache hit and miss to logger at debug level.
func WithLogger(logger *log.Logger) MachineOption {
	return func(m *Machine) {
		m.AcceptHook(NewLogHook(logger))
	}
}

// NewMachine creates a machine with zeroed registers and an empty cache.
func NewMachine(opts ...MachineOption) *Machine {
	m := &Machine{
		HookableBase: sim.NewHookableBase(),
		regFile:      NewRegFile(),
		cache:        NewOpCache(),
		alu:          NewALU(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RegFile returns the machine's register file.
func (m *Machine) RegFile() *RegFile {
	return m.regFile
}

// Cache returns the machine's operation cache.
func (m *Machine) Cache() *OpCache {
	return m.cache
}

// Registers returns a copy of the register values.
func (m *Machine) Registers() [NumRegs]float64 {
	return m.regFile.Snapshot()
}

// Load writes value into register index.
func (m *Machine) Load(index int, value float64) error {
	return m.regFile.WriteReg(index, value)
}

// Read returns the value of register index.
func (m *Machine) Read(index int) (float64, error) {
	return m.regFile.ReadReg(index)
}

// Execute runs op over registers regA and regB and writes the result back
// into regA.
func (m *Machine) Execute(op insts.Op, regA, regB int) (float64, error) {
	return m.ExecuteTo(op, regA, regB, regA)
}

// ExecuteTo runs op over registers regA and regB and writes the result into
// dest. On any error neither the registers nor the cache change.
func (m *Machine) ExecuteTo(op insts.Op, regA, regB, dest int) (float64, error) {
	for _, reg := range []int{regA, regB, dest} {
		if err := checkReg(reg); err != nil {
			return 0, err
		}
	}
	if !op.Valid() {
		return 0, InstructionError{Name: op.String()}
	}

	a := m.regFile.R[regA]
	b := m.regFile.R[regB]
	key := CacheKey{Op: op, A: a, B: b}
	evt := &ExecEvent{Op: op, A: a, B: b, Dest: dest}

	if result, ok := m.cache.Lookup(key); ok {
		evt.Result = result
		evt.Hit = true
		m.invoke(HookPosCacheHit, evt)
	} else {
		result, err := m.alu.Compute(op, a, b)
		if err != nil {
			return 0, err
		}
		evt.Result = result
		m.invoke(HookPosCacheMiss, evt)
		m.cache.Insert(key, result)
	}

	m.regFile.R[dest] = evt.Result
	m.invoke(HookPosWriteBack, evt)

	return evt.Result, nil
}

// ExecuteNamed is Execute for an instruction given by mnemonic.
func (m *Machine) ExecuteNamed(name string, regA, regB int) (float64, error) {
	return m.ExecuteNamedTo(name, regA, regB, regA)
}

// ExecuteNamedTo is ExecuteTo for an instruction given by mnemonic.
func (m *Machine) ExecuteNamedTo(name string, regA, regB, dest int) (float64, error) {
	op, ok := insts.ParseOp(name)
	if !ok {
		return 0, InstructionError{Name: name}
	}
	return m.ExecuteTo(op, regA, regB, dest)
}

// Reset clears the registers and the operation cache. Hooks are kept.
func (m *Machine) Reset() {
	m.regFile.Reset()
	m.cache.Reset()
}

func (m *Machine) invoke(pos *sim.HookPos, evt *ExecEvent) {
	if m.NumHooks() == 0 {
		return
	}

	m.InvokeHook(sim.HookCtx{
		Domain: m,
		Pos:    pos,
		Item:   evt,
	})
}
