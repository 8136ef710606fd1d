// internal/workers/assessment/recommend-modules/config.go
package recommendmodules

import (
	"fmt"
	"time"

	"marketplace-workers/internal/common/config"
)

type Config struct {
	Enabled       bool          `mapstructure:"enabled"`
	MaxJobsActive int           `mapstructure:"max_jobs_active"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MaxJobsActive: 10,
		Timeout:       5 * time.Second,
	}
}

func NewConfig(wc config.WorkerConfig) *Config {
	cfg := DefaultConfig()
	cfg.Enabled = wc.Enabled
	if wc.MaxJobsActive != 0 {
		cfg.MaxJobsActive = wc.MaxJobsActive
	}
	if wc.Timeout != 0 {
		cfg.Timeout = wc.TimeoutDuration()
	}
	return cfg
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxJobsActive <= 0 {
		return fmt.Errorf("max_jobs_active must be positive")
	}
	return nil
}
