// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseYAML = `
app:
  name: marketplace-workers
  environment: test
camunda:
  broker_address: localhost:26500
database:
  postgres:
    host: localhost
    database: marketplace
    user: ${TEST_DB_USER}
  redis:
    address: localhost:6379
workers:
  estimate-roi:
    enabled: true
  distribute-revenue:
    enabled: false
    timeout: 5000
pricing:
  cache_ttl_seconds: 60
  tiers:
    pack_multiplier: 0.5
    starter:
      base_price: 50000
    savings:
      impact: 25000
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("TEST_DB_USER", "pricing_svc")

	cfg, err := LoadFromFile(writeConfig(t, baseYAML))
	require.NoError(t, err)

	assert.Equal(t, "pricing_svc", cfg.Database.Postgres.User)
	assert.Equal(t, 5432, cfg.Database.Postgres.Port)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, time.Minute, cfg.Pricing.CacheTTL())

	assert.True(t, IsWorkerEnabled(cfg, "estimate-roi"))
	assert.False(t, IsWorkerEnabled(cfg, "distribute-revenue"))
	assert.True(t, IsWorkerEnabled(cfg, "send-proposal"))
	assert.Equal(t, 5*time.Second, GetWorkerConfig(cfg, "distribute-revenue").TimeoutDuration())
	assert.Equal(t, 30*time.Second, GetWorkerConfig(cfg, "estimate-roi").TimeoutDuration())
}

func TestLoadFromFile_TierOverridesMergeWithDefaults(t *testing.T) {
	t.Setenv("TEST_DB_USER", "pricing_svc")

	cfg, err := LoadFromFile(writeConfig(t, baseYAML))
	require.NoError(t, err)

	tiers := cfg.Pricing.Tiers
	assert.Equal(t, 0.5, tiers.PackMultiplier)
	assert.Equal(t, int64(50000), tiers.Starter.BasePrice)
	assert.Equal(t, 3, tiers.Starter.MaxModules)
	assert.Equal(t, int64(65000), tiers.Impact.BasePrice)
	assert.Equal(t, int64(25000), tiers.Savings["impact"])
	assert.Equal(t, int64(9000), tiers.Savings["starter"])
	assert.Equal(t, 999, tiers.Enterprise.EmployeeLimit)
}

func TestLoadFromFile_RevenueSettings(t *testing.T) {
	t.Setenv("TEST_DB_USER", "pricing_svc")

	cfg, err := LoadFromFile(writeConfig(t, baseYAML))
	require.NoError(t, err)
	assert.Equal(t, DefaultRevenueEventType, cfg.Pricing.Revenue.EventType)
	assert.False(t, cfg.Pricing.Revenue.RejectDuplicates)

	overridden := baseYAML + `  revenue:
    event_type: marketplace.revenue
    reject_duplicates: true
`
	cfg, err = LoadFromFile(writeConfig(t, overridden))
	require.NoError(t, err)
	assert.Equal(t, "marketplace.revenue", cfg.Pricing.Revenue.EventType)
	assert.True(t, cfg.Pricing.Revenue.RejectDuplicates)
}

func TestLoadFromFile_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing broker",
			yaml: "database:\n  postgres:\n    host: h\n    database: d\n    user: u\n  redis:\n    address: r\n",
			want: "camunda.broker_address",
		},
		{
			name: "ses without sender",
			yaml: "camunda:\n  broker_address: b\ndatabase:\n  postgres:\n    host: h\n    database: d\n    user: u\n  redis:\n    address: r\nintegrations:\n  aws:\n    ses:\n      enabled: true\n",
			want: "from_email",
		},
		{
			name: "broken tier table",
			yaml: "camunda:\n  broker_address: b\ndatabase:\n  postgres:\n    host: h\n    database: d\n    user: u\n  redis:\n    address: r\npricing:\n  tiers:\n    pack_size: -1\n",
			want: "pricing.tiers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "marketplace", SSLMode: "disable"}.GetDSN()
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=marketplace sslmode=disable", dsn)
}
