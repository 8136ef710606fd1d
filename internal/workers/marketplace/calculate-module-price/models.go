// internal/workers/marketplace/calculate-module-price/models.go
package calculatemoduleprice

import "marketplace-workers/internal/models"

type Input struct {
	ModuleID      string                `json:"moduleId"`
	UserCount     int                   `json:"userCount"`
	PurchaseType  models.PurchaseType   `json:"purchaseType,omitempty"`
	ModulePricing *models.ModulePricing `json:"modulePricing,omitempty"`
}

type Output struct {
	ModuleID               string                  `json:"moduleId"`
	Price                  models.PriceCalculation `json:"price"`
	PreviewDiscountPercent float64                 `json:"previewDiscountPercent"`
	IsPlatformModule       bool                    `json:"isPlatformModule"`
}
