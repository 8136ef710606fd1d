// internal/workers/assessment/resolve-pricing-tier/models.go
package resolvepricingtier

import "marketplace-workers/internal/models"

type Input struct {
	Assessment         *models.AssessmentInput `json:"assessment"`
	RecommendedModules []string                `json:"recommendedModules"`
}

type Output struct {
	Quote models.PricingQuote `json:"quote"`
}
