// internal/workers/assessment/estimate-roi/handler_test.go
package estimateroi

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"marketplace-workers/internal/common/config"
	"marketplace-workers/internal/common/errors"
	"marketplace-workers/internal/common/logger"
	"marketplace-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHandler(t *testing.T) *Handler {
	handler, err := NewHandler(DefaultConfig(), logger.NewTestLogger(t))
	require.NoError(t, err)
	return handler
}

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name          string
		assessment    models.AssessmentInput
		expectedTotal int64
		validate      func(t *testing.T, out *Output)
	}{
		{
			name: "office company with every challenge",
			assessment: models.AssessmentInput{
				Industry:      "services",
				EmployeeCount: "50-100",
				Challenges:    []string{"energy_costs", "water_usage", "waste_management", "employee_engagement"},
			},
			expectedTotal: 981925,
			validate: func(t *testing.T, out *Output) {
				assert.Equal(t, int64(70000), out.ROI.Breakdown.Energy)
				assert.Equal(t, int64(900000), out.ROI.Breakdown.Productivity)
				assert.Equal(t, "20%", out.ROI.Metrics.Energy)
			},
		},
		{
			name: "manufacturing energy and waste",
			assessment: models.AssessmentInput{
				Industry:      "manufacturing",
				EmployeeCount: "12-30",
				Challenges:    []string{"energy_costs", "waste_management"},
			},
			expectedTotal: 45195,
			validate: func(t *testing.T, out *Output) {
				assert.Equal(t, int64(0), out.ROI.Breakdown.Water)
				assert.Equal(t, "0%", out.ROI.Metrics.Water)
			},
		},
		{
			name:          "no challenges",
			assessment:    models.AssessmentInput{EmployeeCount: "500+"},
			expectedTotal: 0,
		},
	}

	handler := createTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessment := tt.assessment
			out, err := handler.Execute(context.Background(), &Input{Assessment: &assessment})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, out.ROI.TotalSavings)
			if tt.validate != nil {
				tt.validate(t, out)
			}
		})
	}
}

func TestHandler_Execute_MissingAssessment(t *testing.T) {
	handler := createTestHandler(t)

	_, err := handler.Execute(context.Background(), &Input{})

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeInvalidAssessmentInput, stdErr.Code)
	assert.False(t, stdErr.Retryable)
}

func TestHandler_Execute_ContextCancelled(t *testing.T) {
	handler := createTestHandler(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := handler.Execute(ctx, &Input{Assessment: &models.AssessmentInput{}})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestInput_Unmarshal(t *testing.T) {
	vars := `{"assessment":{"industry":"retail","employeeCount":"10-30","challenges":["water_usage"],"goals":["reduce_costs"],"budgetRange":"<50k"}}`

	var input Input
	require.NoError(t, json.Unmarshal([]byte(vars), &input))
	require.NotNil(t, input.Assessment)
	assert.Equal(t, 10, input.Assessment.Employees())
	assert.True(t, input.Assessment.HasChallenge("water_usage"))
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(config.WorkerConfig{Enabled: true, MaxJobsActive: 3, Timeout: 2000})
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 3, cfg.MaxJobsActive)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.NoError(t, cfg.Validate())

	cfg = NewConfig(config.WorkerConfig{})
	assert.False(t, cfg.Enabled)
	assert.Equal(t, DefaultConfig().Timeout, cfg.Timeout)

	cfg.Timeout = 0
	assert.Error(t, cfg.Validate())
}

func TestNewHandler_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		wc   config.WorkerConfig
	}{
		{"negative timeout", config.WorkerConfig{Enabled: true, Timeout: -1000}},
		{"negative max jobs", config.WorkerConfig{Enabled: true, MaxJobsActive: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, err := NewHandler(NewConfig(tt.wc), logger.NewTestLogger(t))
			assert.Nil(t, handler)
			assert.ErrorContains(t, err, TaskType)
		})
	}
}
