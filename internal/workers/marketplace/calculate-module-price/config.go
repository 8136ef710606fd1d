// internal/workers/marketplace/calculate-module-price/config.go
package calculatemoduleprice

import (
	"fmt"
	"time"

	"marketplace-workers/internal/common/config"
)

type Config struct {
	Enabled       bool          `mapstructure:"enabled"`
	MaxJobsActive int           `mapstructure:"max_jobs_active"`
	Timeout       time.Duration `mapstructure:"timeout"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MaxJobsActive: 10,
		Timeout:       10 * time.Second,
		CacheTTL:      5 * time.Minute,
	}
}

func NewConfig(wc config.WorkerConfig, cacheTTL time.Duration) *Config {
	cfg := DefaultConfig()
	cfg.Enabled = wc.Enabled
	if wc.MaxJobsActive != 0 {
		cfg.MaxJobsActive = wc.MaxJobsActive
	}
	if wc.Timeout != 0 {
		cfg.Timeout = wc.TimeoutDuration()
	}
	if cacheTTL > 0 {
		cfg.CacheTTL = cacheTTL
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
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must not be negative")
	}
	return nil
}
