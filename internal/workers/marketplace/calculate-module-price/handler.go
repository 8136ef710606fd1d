// internal/workers/marketplace/calculate-module-price/handler.go
package calculatemoduleprice

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"marketplace-workers/internal/common/camunda"
	"marketplace-workers/internal/common/database"
	"marketplace-workers/internal/common/errors"
	"marketplace-workers/internal/common/logger"
	"marketplace-workers/internal/common/metrics"
	"marketplace-workers/internal/common/validation"
	"marketplace-workers/internal/models"
	"marketplace-workers/internal/pricing/volume"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "calculate-module-price"

	CacheKeyPrefix = "module:pricing:"
)

const modulePricingQuery = `
	SELECT module_id, base_price_mxn, price_per_50_employees,
	       individual_price_mxn, team_discount_percent, is_platform_module
	FROM module_pricing
	WHERE module_id = $1`

type Handler struct {
	config       *Config
	db           *sql.DB
	redis        *redis.Client
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
}

// NewHandler builds the handler. redis may be nil, in which case every lookup goes to Postgres.
func NewHandler(config *Config, db *sql.DB, redis *redis.Client, log logger.Logger) (*Handler, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}

	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		db:           db,
		redis:        redis,
		logger:       log,
		errorHandler: errors.NewErrorHandler(log),
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	input, err := h.parseInput(job.Variables)
	if err != nil {
		camunda.FailJob(client, job, TaskType, err, h.errorHandler)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, input)
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

func (h *Handler) parseInput(variables string) (*Input, error) {
	result := validation.ValidateJSON(variables, GetInputSchema())
	if !result.Valid {
		return nil, errors.NewInvalidPurchaseRequestError(strings.Join(result.GetErrorMessages(), "; "))
	}

	var input Input
	if err := json.Unmarshal([]byte(variables), &input); err != nil {
		return nil, errors.NewParseError(err)
	}
	return &input, nil
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.UserCount < 1 {
		return nil, errors.NewInvalidPurchaseRequestError(fmt.Sprintf("userCount must be at least 1, got %d", input.UserCount))
	}
	if input.PurchaseType != "" && !input.PurchaseType.Valid() {
		return nil, errors.NewInvalidPurchaseRequestError(fmt.Sprintf("unknown purchaseType %q", input.PurchaseType))
	}

	pricing := input.ModulePricing
	if pricing == nil {
		var err error
		pricing, err = h.loadPricing(ctx, input.ModuleID)
		if err != nil {
			return nil, err
		}
	}

	calc, err := volume.Calculate(*pricing, models.PurchaseRequest{
		UserCount:    input.UserCount,
		PurchaseType: input.PurchaseType,
	})
	if err != nil {
		return nil, errors.NewInvalidPurchaseRequestError(err.Error())
	}

	metrics.CheckoutTotalMXN.WithLabelValues(string(calc.PurchaseType)).Observe(float64(calc.TotalPrice))

	h.logger.Info("module price calculated", map[string]interface{}{
		"moduleId":     input.ModuleID,
		"userCount":    input.UserCount,
		"purchaseType": calc.PurchaseType,
		"totalPrice":   calc.TotalPrice,
		"packs":        calc.Packs,
	})

	return &Output{
		ModuleID:               input.ModuleID,
		Price:                  calc,
		PreviewDiscountPercent: volume.PreviewDiscountPercent(input.UserCount),
		IsPlatformModule:       pricing.IsPlatformModule,
	}, nil
}

func (h *Handler) loadPricing(ctx context.Context, moduleID string) (*models.ModulePricing, error) {
	if moduleID == "" {
		return nil, errors.NewInvalidPurchaseRequestError("moduleId is required when modulePricing is absent")
	}

	cacheKey := CacheKeyPrefix + moduleID
	if h.redis != nil {
		var cached models.ModulePricing
		found, err := database.GetJSON(ctx, h.redis, cacheKey, &cached)
		switch {
		case err != nil:
			h.logger.Warn("pricing cache read failed", map[string]interface{}{
				"moduleId": moduleID,
				"error":    err,
			})
		case found:
			metrics.PricingCacheLookups.WithLabelValues("hit").Inc()
			return &cached, nil
		}
		metrics.PricingCacheLookups.WithLabelValues("miss").Inc()
	}

	pricing, err := h.queryPricing(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	if h.redis != nil {
		if err := database.SetJSON(ctx, h.redis, cacheKey, pricing, h.config.CacheTTL); err != nil {
			h.logger.Warn("pricing cache write failed", map[string]interface{}{
				"moduleId": moduleID,
				"error":    err,
			})
		}
	}
	return pricing, nil
}

func (h *Handler) queryPricing(ctx context.Context, moduleID string) (*models.ModulePricing, error) {
	var (
		pricing    models.ModulePricing
		individual sql.NullInt64
		discount   sql.NullFloat64
	)

	err := h.db.QueryRowContext(ctx, modulePricingQuery, moduleID).Scan(
		&pricing.ModuleID,
		&pricing.BasePriceMXN,
		&pricing.PricePer50Employees,
		&individual,
		&discount,
		&pricing.IsPlatformModule,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NewModulePricingNotFoundError(moduleID)
	}
	if err != nil {
		return nil, errors.NewPricingLookupFailedError(moduleID, err)
	}

	if individual.Valid {
		pricing.IndividualPriceMXN = &individual.Int64
	}
	if discount.Valid {
		pricing.TeamDiscountPercent = &discount.Float64
	}
	return &pricing, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
