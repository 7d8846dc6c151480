package latency

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/akita/v4/sim"
)

// TimingConfig holds latency values for the instruction classes.
type TimingConfig struct {
	// AddSubLatency is the execution latency for ADD and SUB.
	// Default: 1 cycle.
	AddSubLatency uint64 `json:"add_sub_latency"`

	// LogicLatency is the execution latency for AND and OR.
	// Default: 1 cycle.
	LogicLatency uint64 `json:"logic_latency"`

	// MultiplyLatency is the latency for MUL.
	// Default: 3 cycles.
	MultiplyLatency uint64 `json:"multiply_latency"`

	// DivideLatency is the latency for DIV and MOD.
	// Default: 12 cycles.
	DivideLatency uint64 `json:"divide_latency"`

	// PowerLatency is the latency for POW.
	// Default: 20 cycles.
	PowerLatency uint64 `json:"power_latency"`

	// SqrtLatency is the latency for SQRT.
	// Default: 15 cycles.
	SqrtLatency uint64 `json:"sqrt_latency"`

	// LogLatency is the latency for LOG.
	// Default: 25 cycles.
	LogLatency uint64 `json:"log_latency"`

	// CacheHitLatency is the cost of serving a result from the operation
	// cache instead of the ALU. Default: 1 cycle.
	CacheHitLatency uint64 `json:"cache_hit_latency"`

	// ClockFreq converts cycles into simulated time. Default: 1 GHz.
	ClockFreq sim.Freq `json:"clock_freq"`
}

// DefaultTimingConfig returns a TimingConfig with default values.
func DefaultTimingConfig() *TimingConfig {
	return &TimingConfig{
		AddSubLatency:   1,
		LogicLatency:    1,
		MultiplyLatency: 3,
		DivideLatency:   12,
		PowerLatency:    20,
		SqrtLatency:     15,
		LogLatency:      25,
		CacheHitLatency: 1,
		ClockFreq:       1 * sim.GHz,
	}
}

// LoadConfig loads a TimingConfig from a JSON file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (*TimingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timing config file: %w", err)
	}

	config := DefaultTimingConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse timing config: %w", err)
	}

	return config, nil
}

// Marshal returns the indented JSON form of the config.
func (c *TimingConfig) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize timing config: %w", err)
	}
	return data, nil
}

// SaveConfig writes a TimingConfig to a JSON file.
func (c *TimingConfig) SaveConfig(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write timing config file: %w", err)
	}

	return nil
}

// Validate checks that all latency values and the clock are > 0.
func (c *TimingConfig) Validate() error {
	if c.AddSubLatency == 0 {
		return fmt.Errorf("add_sub_latency must be > 0")
	}
	if c.LogicLatency == 0 {
		return fmt.Errorf("logic_latency must be > 0")
	}
	if c.MultiplyLatency == 0 {
		return fmt.Errorf("multiply_latency must be > 0")
	}
	if c.DivideLatency == 0 {
		return fmt.Errorf("divide_latency must be > 0")
	}
	if c.PowerLatency == 0 {
		return fmt.Errorf("power_latency must be > 0")
	}
	if c.SqrtLatency == 0 {
		return fmt.Errorf("sqrt_latency must be > 0")
	}
	if c.LogLatency == 0 {
		return fmt.Errorf("log_latency must be > 0")
	}
	if c.CacheHitLatency == 0 {
		return fmt.Errorf("cache_hit_latency must be > 0")
	}
	if c.ClockFreq <= 0 {
		return fmt.Errorf("clock_freq must be > 0")
	}
	return nil
}

// Clone returns a deep copy of the TimingConfig.
func (c *TimingConfig) Clone() *TimingConfig {
	clone := *c
	return &clone
}
