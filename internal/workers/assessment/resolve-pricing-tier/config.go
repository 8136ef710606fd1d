// internal/workers/assessment/resolve-pricing-tier/config.go
package resolvepricingtier

import (
	"fmt"
	"time"

	"marketplace-workers/internal/common/config"
	"marketplace-workers/internal/pricing/tier"
)

type Config struct {
	Enabled       bool          `mapstructure:"enabled"`
	MaxJobsActive int           `mapstructure:"max_jobs_active"`
	Timeout       time.Duration `mapstructure:"timeout"`
	Table         tier.Table    `mapstructure:"tiers"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MaxJobsActive: 10,
		Timeout:       5 * time.Second,
		Table:         tier.DefaultTable(),
	}
}

// NewConfig applies the worker section and the configured tier table over the defaults.
func NewConfig(wc config.WorkerConfig, table tier.Table) *Config {
	cfg := DefaultConfig()
	cfg.Enabled = wc.Enabled
	if wc.MaxJobsActive != 0 {
		cfg.MaxJobsActive = wc.MaxJobsActive
	}
	if wc.Timeout != 0 {
		cfg.Timeout = wc.TimeoutDuration()
	}
	cfg.Table = table
	return cfg
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxJobsActive <= 0 {
		return fmt.Errorf("max_jobs_active must be positive")
	}
	if err := c.Table.Validate(); err != nil {
		return fmt.Errorf("tiers: %w", err)
	}
	return nil
}
