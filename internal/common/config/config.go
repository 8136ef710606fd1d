// internal/common/config/config.go
package config

import (
	"fmt"
	"time"

	"marketplace-workers/internal/pricing/tier"
)

// Config is the main application configuration struct.
type Config struct {
	App          AppConfig               `mapstructure:"app"`
	Server       ServerConfig            `mapstructure:"server"`
	Camunda      CamundaConfig           `mapstructure:"camunda"`
	Database     DatabaseConfig          `mapstructure:"database"`
	Workers      map[string]WorkerConfig `mapstructure:"workers"`
	Integrations IntegrationConfig       `mapstructure:"integrations"`
	Pricing      PricingConfig           `mapstructure:"pricing"`
	Logging      LoggingConfig           `mapstructure:"logging"`
	Tracing      TracingConfig           `mapstructure:"tracing"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
	UsePlaintext   bool   `mapstructure:"use_plaintext"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"` // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"`
}

// TimeoutDuration returns the worker timeout as a time.Duration.
func (w WorkerConfig) TimeoutDuration() time.Duration {
	return GetDuration(w.Timeout)
}

// --- Specific Configuration Sections ---

// IntegrationConfig holds settings for AWS services used by the workers.
type IntegrationConfig struct {
	AWS AWSConfig `mapstructure:"aws"`
}

type AWSConfig struct {
	Region string    `mapstructure:"region"`
	SES    SESConfig `mapstructure:"ses"`
	SNS    SNSConfig `mapstructure:"sns"`
}

type SESConfig struct {
	Enabled          bool   `mapstructure:"enabled"`
	FromEmail        string `mapstructure:"from_email"`
	ConfigurationSet string `mapstructure:"configuration_set"`
}

type SNSConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	RevenueTopicARN string `mapstructure:"revenue_topic_arn"`
}

// PricingConfig tunes the pricing engine and the workers around it.
type PricingConfig struct {
	Tiers           tier.Table     `mapstructure:"tiers"`
	CacheTTLSeconds int            `mapstructure:"cache_ttl_seconds"`
	Proposal        ProposalConfig `mapstructure:"proposal"`
	Revenue         RevenueConfig  `mapstructure:"revenue"`
}

// CacheTTL returns the module pricing cache lifetime.
func (p PricingConfig) CacheTTL() time.Duration {
	return time.Duration(p.CacheTTLSeconds) * time.Second
}

type ProposalConfig struct {
	Subject        string  `mapstructure:"subject"`
	SendsPerSecond float64 `mapstructure:"sends_per_second"`
	Burst          int     `mapstructure:"burst"`
}

// DefaultRevenueEventType is published when pricing.revenue.event_type is absent.
const DefaultRevenueEventType = "revenue.distributed"

// RevenueConfig tunes the distribute-revenue worker.
type RevenueConfig struct {
	EventType        string `mapstructure:"event_type"`
	RejectDuplicates bool   `mapstructure:"reject_duplicates"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// TracingConfig controls OTLP export of job spans.
type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	Insecure     bool    `mapstructure:"insecure"`
	SampleRate   float64 `mapstructure:"sample_rate"`
}
