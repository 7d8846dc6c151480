package emu

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/akita/v4/sim"
)

// FormatValue renders a register value without trailing zeros.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String renders the register file as "[r0, r1, r2, r3]".
func (r *RegFile) String() string {
	parts := make([]string, NumRegs)
	for i, v := range r.R {
		parts[i] = FormatValue(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// String renders the key as "(OP, a, b)".
func (k CacheKey) String() string {
	return fmt.Sprintf("(%v, %v, %v)", k.Op, FormatValue(k.A), FormatValue(k.B))
}

// String renders the cache entries in Entries order as "{key: result, ...}".
func (c *OpCache) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, e := range c.Entries() {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Key.String())
		sb.WriteString(": ")
		sb.WriteString(FormatValue(e.Result))
	}
	sb.WriteString("}")
	return sb.String()
}

// TraceHook prints a line for every cache hit and miss.
type TraceHook struct {
	w io.Writer
}

// NewTraceHook creates a TraceHook writing to w.
func NewTraceHook(w io.Writer) *TraceHook {
	return &TraceHook{w: w}
}

// Func implements sim.Hook.
func (h *TraceHook) Func(ctx sim.HookCtx) {
	evt, ok := ctx.Item.(*ExecEvent)
	if !ok {
		return
	}

	operands := fmt.Sprintf("%v %v, %v", evt.Op, FormatValue(evt.A), FormatValue(evt.B))
	switch ctx.Pos {
	case HookPosCacheHit:
		fmt.Fprintf(h.w, "Cache hit: retrieved result for %s\n", operands)
	case HookPosCacheMiss:
		fmt.Fprintf(h.w, "Cache miss: sending %s to the ALU\n", operands)
	}
}
