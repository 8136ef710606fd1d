// internal/workers/communication/send-proposal/config.go
package sendproposal

import (
	"fmt"
	"time"

	"marketplace-workers/internal/common/config"

	"golang.org/x/text/language"
)

type Config struct {
	Enabled        bool          `mapstructure:"enabled"`
	MaxJobsActive  int           `mapstructure:"max_jobs_active"`
	Timeout        time.Duration `mapstructure:"timeout"`
	Subject        string        `mapstructure:"subject"`
	Locale         string        `mapstructure:"locale"`
	SendsPerSecond float64       `mapstructure:"sends_per_second"`
	Burst          int           `mapstructure:"burst"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:        true,
		MaxJobsActive:  5,
		Timeout:        30 * time.Second,
		Subject:        "Your sustainability program proposal",
		Locale:         "es-MX",
		SendsPerSecond: 10,
		Burst:          1,
	}
}

func createConfigFromAppConfig(appCfg *config.Config, custom *Config) *Config {
	if custom != nil {
		return custom
	}

	cfg := DefaultConfig()
	if appCfg == nil {
		return cfg
	}

	wc := config.GetWorkerConfig(appCfg, TaskType)
	cfg.Enabled = wc.Enabled
	if wc.MaxJobsActive != 0 {
		cfg.MaxJobsActive = wc.MaxJobsActive
	}
	if wc.Timeout != 0 {
		cfg.Timeout = wc.TimeoutDuration()
	}

	proposal := appCfg.Pricing.Proposal
	if proposal.Subject != "" {
		cfg.Subject = proposal.Subject
	}
	if proposal.SendsPerSecond > 0 {
		cfg.SendsPerSecond = proposal.SendsPerSecond
	}
	if proposal.Burst > 0 {
		cfg.Burst = proposal.Burst
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
	if c.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if c.SendsPerSecond <= 0 {
		return fmt.Errorf("sends_per_second must be positive")
	}
	if c.Burst < 1 {
		return fmt.Errorf("burst must be at least 1")
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return nil
}
