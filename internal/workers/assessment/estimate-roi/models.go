// internal/workers/assessment/estimate-roi/models.go
package estimateroi

import "marketplace-workers/internal/models"

type Input struct {
	Assessment *models.AssessmentInput `json:"assessment"`
}

type Output struct {
	ROI models.ROIBreakdown `json:"roi"`
}
