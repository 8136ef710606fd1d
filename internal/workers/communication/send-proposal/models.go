// internal/workers/communication/send-proposal/models.go
package sendproposal

import (
	"context"
	"time"

	"marketplace-workers/internal/common/logger"
	"marketplace-workers/internal/models"
)

const (
	StatusSent    = "sent"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

type Input struct {
	CompanyName        string              `json:"companyName"`
	ContactEmail       string              `json:"contactEmail"`
	ROI                models.ROIBreakdown `json:"roi"`
	Quote              models.PricingQuote `json:"quote"`
	RecommendedModules []string            `json:"recommendedModules"`
}

type Output struct {
	Status    string    `json:"status"`
	MessageID string    `json:"messageId,omitempty"`
	Recipient string    `json:"recipient"`
	SentAt    time.Time `json:"sentAt"`
}

// EmailSender delivers a plain-text email and returns the provider message id.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) (string, error)
}

type ServiceDependencies struct {
	Logger logger.Logger
	Sender EmailSender
}
