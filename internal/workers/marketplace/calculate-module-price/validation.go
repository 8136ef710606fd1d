// internal/workers/marketplace/calculate-module-price/validation.go
package calculatemoduleprice

import (
	"marketplace-workers/internal/common/validation"
	"marketplace-workers/internal/models"
)

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"moduleId", "userCount"},
		Properties: map[string]validation.Property{
			"moduleId": {
				Type:        "string",
				Description: "Marketplace module identifier",
				MinLength:   validation.IntPtr(1),
				MaxLength:   validation.IntPtr(128),
			},
			"userCount": {
				Type:        "integer",
				Description: "Number of seats being purchased",
				Minimum:     validation.Float64Ptr(1),
			},
			"purchaseType": {
				Type:        "string",
				Description: "Overrides the purchase type detected from userCount",
				Enum: []string{
					string(models.PurchaseIndividual),
					string(models.PurchaseTeam),
					string(models.PurchaseCorporate),
					string(models.PurchaseEnterprise),
				},
			},
			"modulePricing": {
				Type:        "object",
				Description: "Pricing record supplied by the caller; loaded from the catalog when absent",
				Required:    []string{"basePriceMXN", "pricePer50Employees"},
				Properties: map[string]validation.Property{
					"basePriceMXN":        {Type: "integer", Minimum: validation.Float64Ptr(0)},
					"pricePer50Employees": {Type: "integer", Minimum: validation.Float64Ptr(0)},
					"individualPriceMXN":  {Type: []string{"integer", "null"}},
					"teamDiscountPercent": {Type: []string{"number", "null"}},
					"isPlatformModule":    {Type: "boolean"},
				},
			},
		},
	}
}
