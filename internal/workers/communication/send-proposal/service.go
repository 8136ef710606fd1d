// internal/workers/communication/send-proposal/service.go
package sendproposal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace-workers/internal/common/errors"
	"marketplace-workers/internal/common/logger"
	"marketplace-workers/internal/common/metrics"
	"marketplace-workers/internal/common/validation"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/time/rate"
)

type Service struct {
	config  *Config
	sender  EmailSender
	limiter *rate.Limiter
	printer *message.Printer
	logger  logger.Logger
	now     func() time.Time
}

// NewService builds the proposal service. A nil sender makes Execute skip delivery.
func NewService(deps ServiceDependencies, config *Config) *Service {
	tag, err := language.Parse(config.Locale)
	if err != nil {
		tag = language.English
	}
	return &Service{
		config:  config,
		sender:  deps.Sender,
		limiter: rate.NewLimiter(rate.Limit(config.SendsPerSecond), config.Burst),
		printer: message.NewPrinter(tag),
		logger:  deps.Logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	if strings.TrimSpace(input.CompanyName) == "" {
		return nil, errors.NewInvalidAssessmentInputError("companyName is required")
	}
	if !validation.ValidateEmail(input.ContactEmail) {
		return nil, errors.NewInvalidAssessmentInputError(fmt.Sprintf("invalid contactEmail: %q", input.ContactEmail))
	}

	subject := fmt.Sprintf("%s: %s", s.config.Subject, input.CompanyName)
	body := s.BuildSummary(input)

	if s.sender == nil {
		metrics.ProposalsSent.WithLabelValues(StatusSkipped).Inc()
		s.logger.Warn("email delivery disabled, proposal not sent", map[string]interface{}{
			"company": input.CompanyName,
		})
		return &Output{Status: StatusSkipped, Recipient: input.ContactEmail, SentAt: s.now()}, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, errors.NewTimeoutError("ses", err)
	}

	messageID, err := s.sender.SendEmail(ctx, input.ContactEmail, subject, body)
	if err != nil {
		metrics.ProposalsSent.WithLabelValues(StatusFailed).Inc()
		return nil, errors.NewProposalSendFailedError(input.ContactEmail, err)
	}
	metrics.ProposalsSent.WithLabelValues(StatusSent).Inc()

	s.logger.Info("proposal sent", map[string]interface{}{
		"company":   input.CompanyName,
		"tier":      input.Quote.Tier,
		"messageId": messageID,
	})

	return &Output{
		Status:    StatusSent,
		MessageID: messageID,
		Recipient: input.ContactEmail,
		SentAt:    s.now(),
	}, nil
}

// BuildSummary renders the plain-text proposal body.
func (s *Service) BuildSummary(input *Input) string {
	var b strings.Builder
	quote := input.Quote
	roi := input.ROI

	fmt.Fprintf(&b, "Proposal for %s\n\n", input.CompanyName)
	fmt.Fprintf(&b, "Recommended modules (%d): %s\n\n", len(input.RecommendedModules), strings.Join(input.RecommendedModules, ", "))

	fmt.Fprintf(&b, "Plan: %s\n", quote.Tier)
	fmt.Fprintf(&b, "Annual investment: %s\n", s.mxn(quote.BasePrice))
	b.WriteString(s.printer.Sprintf("Covers up to %d employees (%d packs)\n", quote.EmployeeLimit, quote.Packs))
	fmt.Fprintf(&b, "Price per module: %s\n", s.mxn(quote.PricePerModule))
	fmt.Fprintf(&b, "Price per employee: %s\n", s.mxn(quote.PricePerEmployee))
	if quote.Savings > 0 {
		fmt.Fprintf(&b, "Bundle savings: %s\n", s.mxn(quote.Savings))
	}

	fmt.Fprintf(&b, "\nEstimated annual savings: %s\n", s.mxn(roi.TotalSavings))
	s.writeArea(&b, "Energy", roi.Breakdown.Energy, roi.Metrics.Energy)
	s.writeArea(&b, "Water", roi.Breakdown.Water, roi.Metrics.Water)
	s.writeArea(&b, "Waste", roi.Breakdown.Waste, roi.Metrics.Waste)
	s.writeArea(&b, "Productivity", roi.Breakdown.Productivity, roi.Metrics.Productivity)

	return b.String()
}

func (s *Service) writeArea(b *strings.Builder, label string, amount int64, reduction string) {
	if amount == 0 {
		return
	}
	fmt.Fprintf(b, "  %s: %s (%s reduction)\n", label, s.mxn(amount), reduction)
}

func (s *Service) mxn(amount int64) string {
	return s.printer.Sprintf("$%d %s", amount, currency.MXN)
}
