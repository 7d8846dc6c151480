// Package latency provides instruction timing for the control unit.
//
// Each instruction class has a fixed cycle cost when it is sent to the ALU.
// Results served from the operation cache cost CacheHitLatency instead.
package latency

import (
	"github.com/sarchlab/cusim/insts"
)

// Table provides instruction latency lookups.
type Table struct {
	config *TimingConfig
}

// NewTable creates a new latency table with default timing values.
func NewTable() *Table {
	return &Table{
		config: DefaultTimingConfig(),
	}
}

// NewTableWithConfig creates a new latency table with custom timing configuration.
func NewTableWithConfig(config *TimingConfig) *Table {
	return &Table{
		config: config,
	}
}

// GetLatency returns the ALU latency in cycles for op.
func (t *Table) GetLatency(op insts.Op) uint64 {
	switch op {
	case insts.OpADD, insts.OpSUB:
		return t.config.AddSubLatency

	case insts.OpAND, insts.OpOR:
		return t.config.LogicLatency

	case insts.OpMUL:
		return t.config.MultiplyLatency

	case insts.OpDIV, insts.OpMOD:
		return t.config.DivideLatency

	case insts.OpPOW:
		return t.config.PowerLatency

	case insts.OpSQRT:
		return t.config.SqrtLatency

	case insts.OpLOG:
		return t.config.LogLatency

	default:
		return 1
	}
}

// GetAccessLatency returns the latency of one execution of op, taking the
// operation cache into account.
func (t *Table) GetAccessLatency(op insts.Op, hit bool) uint64 {
	if hit {
		return t.config.CacheHitLatency
	}
	return t.GetLatency(op)
}

// CyclesToSeconds converts a cycle count to simulated seconds.
func (t *Table) CyclesToSeconds(cycles uint64) float64 {
	return float64(cycles) / float64(t.config.ClockFreq)
}

// Config returns the current timing configuration.
func (t *Table) Config() *TimingConfig {
	return t.config
}
