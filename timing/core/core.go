// Package core provides the timed control unit model.
// It wraps an emu.Machine and accounts cycles for every execution.
package core

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/cusim/emu"
	"github.com/sarchlab/cusim/insts"
	"github.com/sarchlab/cusim/timing/latency"
)

// Stats holds performance statistics for the core.
type Stats struct {
	// Cycles is the total number of cycles simulated.
	Cycles uint64
	// Instructions is the number of instructions that completed.
	Instructions uint64
	// Hits is the number of executions served by the operation cache.
	Hits uint64
	// Misses is the number of executions sent to the ALU.
	Misses uint64
}

// HitRate returns the fraction of executions served by the cache.
func (s Stats) HitRate() float64 {
	if s.Instructions == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Instructions)
}

// CPI returns the average cycles per instruction.
func (s Stats) CPI() float64 {
	if s.Instructions == 0 {
		return 0
	}
	return float64(s.Cycles) / float64(s.Instructions)
}

// Core represents a timed control unit.
type Core struct {
	// Machine is the underlying functional model.
	Machine *emu.Machine

	table *latency.Table
	stats Stats
}

// statsHook charges cycles on every hit or miss.
type statsHook struct {
	core *Core
}

func (h statsHook) Func(ctx sim.HookCtx) {
	evt, ok := ctx.Item.(*emu.ExecEvent)
	if !ok {
		return
	}

	switch ctx.Pos {
	case emu.HookPosCacheHit:
		h.core.stats.Hits++
	case emu.HookPosCacheMiss:
		h.core.stats.Misses++
	default:
		return
	}

	h.core.stats.Instructions++
	h.core.stats.Cycles += h.core.table.GetAccessLatency(evt.Op, evt.Hit)
}

// NewCore creates a new Core using table for latencies. Extra machine
// options, such as hooks, are passed to the machine.
func NewCore(table *latency.Table, opts ...emu.MachineOption) *Core {
	if table == nil {
		table = latency.NewTable()
	}

	c := &Core{table: table}
	opts = append([]emu.MachineOption{emu.WithHook(statsHook{core: c})}, opts...)
	c.Machine = emu.NewMachine(opts...)

	return c
}

// Load writes value into register index.
func (c *Core) Load(index int, value float64) error {
	return c.Machine.Load(index, value)
}

// Read returns the value of register index.
func (c *Core) Read(index int) (float64, error) {
	return c.Machine.Read(index)
}

// Execute runs op and writes the result into regA.
func (c *Core) Execute(op insts.Op, regA, regB int) (float64, error) {
	return c.Machine.Execute(op, regA, regB)
}

// ExecuteTo runs op and writes the result into dest.
func (c *Core) ExecuteTo(op insts.Op, regA, regB, dest int) (float64, error) {
	return c.Machine.ExecuteTo(op, regA, regB, dest)
}

// Stats returns performance statistics for the core.
func (c *Core) Stats() Stats {
	return c.stats
}

// ResetStats clears the statistics.
func (c *Core) ResetStats() {
	c.stats = Stats{}
}

// SimulatedSeconds returns the simulated time spent so far.
func (c *Core) SimulatedSeconds() float64 {
	return c.table.CyclesToSeconds(c.stats.Cycles)
}

// Table returns the latency table.
func (c *Core) Table() *latency.Table {
	return c.table
}

// Reset clears all core state.
func (c *Core) Reset() {
	c.Machine.Reset()
	c.ResetStats()
}
