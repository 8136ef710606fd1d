// internal/workers/assessment/resolve-pricing-tier/handler.go
package resolvepricingtier

import (
	"context"
	"encoding/json"
	"fmt"

	"marketplace-workers/internal/common/camunda"
	"marketplace-workers/internal/common/errors"
	"marketplace-workers/internal/common/logger"
	"marketplace-workers/internal/common/metrics"
	"marketplace-workers/internal/pricing/tier"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "resolve-pricing-tier"
)

type Handler struct {
	config       *Config
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
}

func NewHandler(config *Config, log logger.Logger) (*Handler, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}

	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		logger:       log,
		errorHandler: errors.NewErrorHandler(log),
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		camunda.FailJob(client, job, TaskType, errors.NewParseError(err), h.errorHandler)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		camunda.FailJob(client, job, TaskType, err, h.errorHandler)
		return
	}

	if err := camunda.CompleteJob(client, job, output); err != nil {
		h.logger.Error("failed to complete job", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
	}
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Assessment == nil {
		return nil, errors.NewInvalidAssessmentInputError("assessment is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	employees := input.Assessment.Employees()
	quote := tier.Resolve(h.config.Table, employees, len(input.RecommendedModules))

	metrics.PricingQuotes.WithLabelValues(string(quote.Tier)).Inc()

	h.logger.Info("pricing tier resolved", map[string]interface{}{
		"tier":        quote.Tier,
		"employees":   employees,
		"moduleCount": quote.ModuleCount,
		"basePrice":   quote.BasePrice,
		"packs":       quote.Packs,
	})

	return &Output{Quote: quote}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
