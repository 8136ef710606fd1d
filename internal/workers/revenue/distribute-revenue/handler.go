// internal/workers/revenue/distribute-revenue/handler.go
package distributerevenue

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"marketplace-workers/internal/common/camunda"
	"marketplace-workers/internal/common/database"
	"marketplace-workers/internal/common/errors"
	"marketplace-workers/internal/common/logger"
	"marketplace-workers/internal/common/metrics"
	"marketplace-workers/internal/models"
	"marketplace-workers/internal/pricing/revenue"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "distribute-revenue"
)

const (
	insertDistributionQuery = `
		INSERT INTO revenue_distributions
			(id, payment_id, module_id, creator_id, community_id, total_amount_mxn,
			 creator_amount_mxn, community_amount_mxn, platform_amount_mxn, distributed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (payment_id) DO NOTHING`

	existingDistributionQuery = `
		SELECT id, creator_amount_mxn, community_amount_mxn, platform_amount_mxn
		FROM revenue_distributions
		WHERE payment_id = $1`

	creditWalletQuery = `
		INSERT INTO wallets (owner_id, owner_type, balance_mxn, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (owner_id, owner_type)
		DO UPDATE SET balance_mxn = wallets.balance_mxn + EXCLUDED.balance_mxn,
		              updated_at = EXCLUDED.updated_at`
)

// EventPublisher is implemented by the SNS client.
type EventPublisher interface {
	PublishEvent(ctx context.Context, eventType string, payload interface{}) (string, error)
}

type Handler struct {
	config       *Config
	db           *sql.DB
	publisher    EventPublisher
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
	newID        func() string
	now          func() time.Time
}

// NewHandler builds the handler. A nil publisher disables event publication.
func NewHandler(config *Config, db *sql.DB, publisher EventPublisher, log logger.Logger) (*Handler, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}

	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		db:           db,
		publisher:    publisher,
		logger:       log,
		errorHandler: errors.NewErrorHandler(log),
		newID:        uuid.NewString,
		now:          func() time.Time { return time.Now().UTC() },
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
	if err := validateInput(input); err != nil {
		return nil, err
	}

	split := revenue.Distribute(input.TotalAmount, input.IsPlatformModule, input.CreatorDonates)
	if err := revenue.Check(split, input.TotalAmount); err != nil {
		return nil, errors.NewRevenueSplitInvariantError(input.PaymentID, err)
	}

	distributionID := h.newID()
	distributedAt := h.now()
	alreadyProcessed := false
	var recorded models.RevenueSplit

	err := database.WithTx(ctx, h.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, insertDistributionQuery,
			distributionID, input.PaymentID, input.ModuleID,
			nullable(input.CreatorID), nullable(input.CommunityID), input.TotalAmount,
			split.CreatorAmount, split.CommunityAmount, split.PlatformAmount, distributedAt,
		)
		if err != nil {
			return err
		}
		inserted, err := res.RowsAffected()
		if err != nil {
			return err
		}

		if inserted == 0 {
			alreadyProcessed = true
			return tx.QueryRowContext(ctx, existingDistributionQuery, input.PaymentID).
				Scan(&distributionID, &recorded.CreatorAmount, &recorded.CommunityAmount, &recorded.PlatformAmount)
		}

		if split.CreatorAmount > 0 {
			if _, err := tx.ExecContext(ctx, creditWalletQuery, input.CreatorID, OwnerCreator, split.CreatorAmount, distributedAt); err != nil {
				return err
			}
		}
		if split.CommunityAmount > 0 {
			if _, err := tx.ExecContext(ctx, creditWalletQuery, input.CommunityID, OwnerCommunity, split.CommunityAmount, distributedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.NewLedgerWriteFailedError(input.PaymentID, err)
	}

	if alreadyProcessed {
		h.logger.Warn("payment already distributed", map[string]interface{}{
			"paymentId":      input.PaymentID,
			"distributionId": distributionID,
		})
		if h.config.RejectDuplicates {
			return nil, errors.NewDuplicatePaymentError(input.PaymentID)
		}
		// The stored split, not one recomputed from a retried request.
		return &Output{DistributionID: distributionID, Split: recorded, AlreadyProcessed: true}, nil
	}

	metrics.RevenueDistributedMXN.WithLabelValues(OwnerCreator).Add(float64(split.CreatorAmount))
	metrics.RevenueDistributedMXN.WithLabelValues(OwnerCommunity).Add(float64(split.CommunityAmount))
	metrics.RevenueDistributedMXN.WithLabelValues("platform").Add(float64(split.PlatformAmount))

	h.logger.Info("revenue distributed", map[string]interface{}{
		"paymentId":       input.PaymentID,
		"distributionId":  distributionID,
		"totalAmount":     input.TotalAmount,
		"creatorAmount":   split.CreatorAmount,
		"communityAmount": split.CommunityAmount,
		"platformAmount":  split.PlatformAmount,
	})

	h.publish(ctx, DistributedEvent{
		DistributionID: distributionID,
		PaymentID:      input.PaymentID,
		ModuleID:       input.ModuleID,
		CreatorID:      input.CreatorID,
		CommunityID:    input.CommunityID,
		TotalAmount:    input.TotalAmount,
		Split:          split,
		DistributedAt:  distributedAt,
	})

	return &Output{DistributionID: distributionID, Split: split}, nil
}

// publish never fails the job: the ledger is already committed.
func (h *Handler) publish(ctx context.Context, event DistributedEvent) {
	if h.publisher == nil {
		return
	}
	messageID, err := h.publisher.PublishEvent(ctx, h.config.EventType, event)
	if err != nil {
		h.logger.Error("revenue event publish failed", map[string]interface{}{
			"paymentId": event.PaymentID,
			"error":     errors.NewEventPublishFailedError(h.config.EventType, err),
		})
		return
	}
	h.logger.Debug("revenue event published", map[string]interface{}{
		"paymentId": event.PaymentID,
		"messageId": messageID,
	})
}

func validateInput(input *Input) error {
	switch {
	case input.PaymentID == "":
		return errors.NewInvalidRevenueInputError("paymentId is required")
	case input.TotalAmount < 0:
		return errors.NewInvalidRevenueInputError("totalAmount must not be negative")
	case input.IsPlatformModule:
		return nil
	case input.CommunityID == "":
		return errors.NewInvalidRevenueInputError("communityId is required for creator modules")
	case input.CreatorID == "" && !input.CreatorDonates:
		return errors.NewInvalidRevenueInputError("creatorId is required unless the creator donates")
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
