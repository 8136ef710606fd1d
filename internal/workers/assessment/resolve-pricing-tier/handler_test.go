// internal/workers/assessment/resolve-pricing-tier/handler_test.go
package resolvepricingtier

import (
	"context"
	"testing"

	"marketplace-workers/internal/common/config"
	"marketplace-workers/internal/common/errors"
	"marketplace-workers/internal/common/logger"
	"marketplace-workers/internal/common/metrics"
	"marketplace-workers/internal/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHandler(t *testing.T) *Handler {
	handler, err := NewHandler(DefaultConfig(), logger.NewTestLogger(t))
	require.NoError(t, err)
	return handler
}

func modules(n int) []string {
	ids := []string{"energy_efficiency", "water_stewardship", "circular_waste", "employee_engagement", "esg_reporting", "integration"}
	return ids[:n]
}

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name          string
		employeeCount string
		moduleCount   int
		expected      models.PricingQuote
	}{
		{
			name:          "starter single pack",
			employeeCount: "50-100",
			moduleCount:   3,
			expected: models.PricingQuote{
				Tier: models.TierStarter, BasePrice: 45000, EmployeeLimit: 50, ModuleCount: 3,
				PricePerModule: 15000, PricePerEmployee: 900, Savings: 9000, Packs: 1,
			},
		},
		{
			name:          "enterprise full bundle",
			employeeCount: "150-200",
			moduleCount:   6,
			expected: models.PricingQuote{
				Tier: models.TierEnterprise, BasePrice: 165000, EmployeeLimit: 999, ModuleCount: 6,
				PricePerModule: 27500, PricePerEmployee: 1100, Savings: 50000, Packs: 3,
			},
		},
		{
			name:          "full bundle small company",
			employeeCount: "40",
			moduleCount:   6,
			expected: models.PricingQuote{
				Tier: models.TierImpact, BasePrice: 70000, EmployeeLimit: 100, ModuleCount: 6,
				PricePerModule: 11667, PricePerEmployee: 1750, Savings: 23000, Packs: 1,
			},
		},
	}

	handler := createTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(metrics.PricingQuotes.WithLabelValues(string(tt.expected.Tier)))

			out, err := handler.Execute(context.Background(), &Input{
				Assessment:         &models.AssessmentInput{EmployeeCount: tt.employeeCount},
				RecommendedModules: modules(tt.moduleCount),
			})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.Quote)
			assert.Equal(t, before+1, testutil.ToFloat64(metrics.PricingQuotes.WithLabelValues(string(tt.expected.Tier))))
		})
	}
}

func TestHandler_Execute_NoModules(t *testing.T) {
	handler := createTestHandler(t)

	out, err := handler.Execute(context.Background(), &Input{
		Assessment: &models.AssessmentInput{EmployeeCount: "20-40"},
	})

	require.NoError(t, err)
	assert.Equal(t, models.TierStarter, out.Quote.Tier)
	assert.Equal(t, int64(45000), out.Quote.PricePerModule)
}

func TestHandler_Execute_ConfiguredTable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Table.Starter.BasePrice = 50000
	handler, err := NewHandler(cfg, logger.NewTestLogger(t))
	require.NoError(t, err)

	out, err := handler.Execute(context.Background(), &Input{
		Assessment:         &models.AssessmentInput{EmployeeCount: "10-30"},
		RecommendedModules: modules(2),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(50000), out.Quote.BasePrice)
}

func TestHandler_Execute_MissingAssessment(t *testing.T) {
	handler := createTestHandler(t)

	_, err := handler.Execute(context.Background(), &Input{RecommendedModules: modules(3)})

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeInvalidAssessmentInput, stdErr.Code)
}

func TestNewHandler_InvalidTable(t *testing.T) {
	cfg := NewConfig(config.WorkerConfig{Enabled: true}, DefaultConfig().Table)
	cfg.Table.PackSize = 0

	_, err := NewHandler(cfg, logger.NewTestLogger(t))

	assert.Error(t, err)
}
