package emu

import (
	"github.com/sarchlab/akita/v4/sim"
	log "github.com/sirupsen/logrus"
)

// LogHook logs cache hits and misses.
type LogHook struct {
	logger *log.Logger
}

// NewLogHook creates a LogHook writing to logger. A nil logger means the
// logrus standard logger.
func NewLogHook(logger *log.Logger) *LogHook {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &LogHook{logger: logger}
}

// Func implements sim.Hook.
func (h *LogHook) Func(ctx sim.HookCtx) {
	evt, ok := ctx.Item.(*ExecEvent)
	if !ok {
		return
	}

	fields := log.Fields{
		"op":     evt.Op.String(),
		"a":      evt.A,
		"b":      evt.B,
		"result": evt.Result,
	}

	switch ctx.Pos {
	case HookPosCacheHit:
		h.logger.WithFields(fields).Debug("cache hit")
	case HookPosCacheMiss:
		h.logger.WithFields(fields).Debug("cache miss")
	}
}
