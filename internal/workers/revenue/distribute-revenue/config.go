// internal/workers/revenue/distribute-revenue/config.go
package distributerevenue

import (
	"fmt"
	"time"

	"marketplace-workers/internal/common/config"
)

type Config struct {
	Enabled       bool          `mapstructure:"enabled"`
	MaxJobsActive int           `mapstructure:"max_jobs_active"`
	Timeout       time.Duration `mapstructure:"timeout"`
	// RejectDuplicates throws DUPLICATE_PAYMENT instead of completing with alreadyProcessed.
	RejectDuplicates bool   `mapstructure:"reject_duplicates"`
	EventType        string `mapstructure:"event_type"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MaxJobsActive: 5,
		Timeout:       15 * time.Second,
		EventType:     EventRevenueDistributed,
	}
}

// NewConfig applies the worker section and pricing.revenue. Zero worker values keep the defaults.
func NewConfig(wc config.WorkerConfig, rc config.RevenueConfig) *Config {
	cfg := DefaultConfig()
	cfg.Enabled = wc.Enabled
	if wc.MaxJobsActive != 0 {
		cfg.MaxJobsActive = wc.MaxJobsActive
	}
	if wc.Timeout != 0 {
		cfg.Timeout = wc.TimeoutDuration()
	}
	cfg.EventType = rc.EventType
	cfg.RejectDuplicates = rc.RejectDuplicates
	return cfg
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxJobsActive <= 0 {
		return fmt.Errorf("max_jobs_active must be positive")
	}
	if c.EventType == "" {
		return fmt.Errorf("event_type is required")
	}
	return nil
}
