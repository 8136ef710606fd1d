// internal/workers/assessment/recommend-modules/models.go
package recommendmodules

import "marketplace-workers/internal/models"

type Input struct {
	Assessment *models.AssessmentInput `json:"assessment"`
}

type Output struct {
	RecommendedModules []string              `json:"recommendedModules"`
	Scores             []models.ScoredModule `json:"scores"`
}
