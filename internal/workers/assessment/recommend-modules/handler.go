// internal/workers/assessment/recommend-modules/handler.go
package recommendmodules

import (
	"context"
	"encoding/json"
	"fmt"

	"marketplace-workers/internal/common/camunda"
	"marketplace-workers/internal/common/errors"
	"marketplace-workers/internal/common/logger"
	"marketplace-workers/internal/models"
	"marketplace-workers/internal/pricing/recommend"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "recommend-modules"
)

type Handler struct {
	config       *Config
	catalog      func() []models.ModuleCandidate
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
		catalog:      recommend.Catalog,
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

	// each call scores its own catalog copy
	ranked := recommend.Score(*input.Assessment, h.catalog())
	modules := recommend.Select(*input.Assessment, ranked)

	h.logger.Info("modules recommended", map[string]interface{}{
		"budgetRange": input.Assessment.BudgetRange,
		"goals":       len(input.Assessment.Goals),
		"modules":     modules,
	})

	return &Output{
		RecommendedModules: modules,
		Scores:             ranked,
	}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
