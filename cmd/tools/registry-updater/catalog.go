// cmd/tools/registry-updater/catalog.go
package main

import (
	"time"

	"marketplace-workers/internal/common/errors"
	"marketplace-workers/pkg/registry"

	er "marketplace-workers/internal/workers/assessment/estimate-roi"
	rm "marketplace-workers/internal/workers/assessment/recommend-modules"
	rpt "marketplace-workers/internal/workers/assessment/resolve-pricing-tier"
	sp "marketplace-workers/internal/workers/communication/send-proposal"
	cmp "marketplace-workers/internal/workers/marketplace/calculate-module-price"
	csf "marketplace-workers/internal/workers/revenue/calculate-sponsorship-fee"
	dr "marketplace-workers/internal/workers/revenue/distribute-revenue"
)

// catalog returns the activities served by the worker manager.
func catalog() *registry.ActivityRegistry {
	return &registry.ActivityRegistry{
		Version:     "1.0.0",
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Activities: []registry.Activity{
			{
				ID:          er.TaskType,
				DisplayName: "Estimate ROI",
				Description: "Estimates annual savings per sustainability area from an assessment",
				Category:    "assessment",
				TaskType:    er.TaskType,
				ErrorCodes:  codes(errors.ErrCodeInvalidAssessmentInput, errors.ErrCodeParseError),
				Timeout:     er.DefaultConfig().Timeout.String(),
				Tags:        []string{"pricing", "roi"},
			},
			{
				ID:          rm.TaskType,
				DisplayName: "Recommend Modules",
				Description: "Ranks catalog modules against assessment goals and priorities",
				Category:    "assessment",
				TaskType:    rm.TaskType,
				ErrorCodes:  codes(errors.ErrCodeInvalidAssessmentInput, errors.ErrCodeParseError),
				Timeout:     rm.DefaultConfig().Timeout.String(),
				Tags:        []string{"recommendation"},
			},
			{
				ID:          rpt.TaskType,
				DisplayName: "Resolve Pricing Tier",
				Description: "Quotes the subscription tier for the recommended modules and company size",
				Category:    "assessment",
				TaskType:    rpt.TaskType,
				ErrorCodes:  codes(errors.ErrCodeInvalidAssessmentInput, errors.ErrCodeParseError),
				Timeout:     rpt.DefaultConfig().Timeout.String(),
				Tags:        []string{"pricing", "tier"},
			},
			{
				ID:          cmp.TaskType,
				DisplayName: "Calculate Module Price",
				Description: "Prices a marketplace module purchase by buyer count",
				Category:    "marketplace",
				TaskType:    cmp.TaskType,
				InputSchema: cmp.GetInputSchema(),
				ErrorCodes: codes(
					errors.ErrCodeInvalidPurchaseRequest,
					errors.ErrCodeModulePricingNotFound,
					errors.ErrCodePricingLookupFailed,
					errors.ErrCodeParseError,
				),
				Timeout: cmp.DefaultConfig().Timeout.String(),
				Tags:    []string{"pricing", "volume"},
			},
			{
				ID:          dr.TaskType,
				DisplayName: "Distribute Revenue",
				Description: "Splits a completed sale between creator, community and platform and credits wallets",
				Category:    "revenue",
				TaskType:    dr.TaskType,
				ErrorCodes: codes(
					errors.ErrCodeInvalidRevenueInput,
					errors.ErrCodeRevenueSplitInvariant,
					errors.ErrCodeDuplicatePayment,
					errors.ErrCodeLedgerWriteFailed,
					errors.ErrCodeParseError,
				),
				Timeout: dr.DefaultConfig().Timeout.String(),
				Tags:    []string{"revenue", "ledger"},
			},
			{
				ID:          csf.TaskType,
				DisplayName: "Calculate Sponsorship Fee",
				Description: "Computes the platform fee and net amount of a community sponsorship",
				Category:    "revenue",
				TaskType:    csf.TaskType,
				ErrorCodes:  codes(errors.ErrCodeInvalidSponsorship, errors.ErrCodeParseError),
				Timeout:     csf.DefaultConfig().Timeout.String(),
				Tags:        []string{"revenue", "sponsorship"},
			},
			{
				ID:          sp.TaskType,
				DisplayName: "Send Proposal",
				Description: "Emails the ROI estimate and pricing quote to the prospect",
				Category:    "communication",
				TaskType:    sp.TaskType,
				InputSchema: sp.GetInputSchema(),
				ErrorCodes: codes(
					errors.ErrCodeInvalidAssessmentInput,
					errors.ErrCodeProposalSendFailed,
					errors.ErrCodeTimeout,
					errors.ErrCodeParseError,
				),
				Timeout: sp.DefaultConfig().Timeout.String(),
				Tags:    []string{"email", "ses"},
			},
		},
	}
}

func codes(cs ...errors.ErrorCode) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}
