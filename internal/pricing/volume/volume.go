// internal/pricing/volume/volume.go
package volume

import (
	"errors"
	"fmt"
	"math"

	"marketplace-workers/internal/models"
)

const (
	DefaultTeamDiscountPercent = 10.0

	maxTeamUsers      = 20
	maxCorporateUsers = 100
)

var ErrInvalidUserCount = errors.New("user count must be at least 1")

// DetectPurchaseType maps a buyer count to its purchase type.
func DetectPurchaseType(userCount int) models.PurchaseType {
	switch {
	case userCount <= 1:
		return models.PurchaseIndividual
	case userCount <= maxTeamUsers:
		return models.PurchaseTeam
	case userCount <= maxCorporateUsers:
		return models.PurchaseCorporate
	default:
		return models.PurchaseEnterprise
	}
}

// Calculate prices a marketplace purchase of one module. An explicit purchase type
// on the request overrides detection.
func Calculate(pricing models.ModulePricing, req models.PurchaseRequest) (models.PriceCalculation, error) {
	n := req.UserCount
	if n < 1 {
		return models.PriceCalculation{}, fmt.Errorf("%w: got %d", ErrInvalidUserCount, n)
	}

	purchaseType := req.PurchaseType
	if purchaseType == "" {
		purchaseType = DetectPurchaseType(n)
	}
	if !purchaseType.Valid() {
		return models.PriceCalculation{}, fmt.Errorf("unknown purchase type %q", purchaseType)
	}

	packs := models.PacksFor(n, models.PackSize)
	perPerson := roundDiv(pricing.BasePriceMXN, models.PackSize)
	calc := models.PriceCalculation{Packs: packs, PurchaseType: purchaseType}

	switch {
	case purchaseType == models.PurchaseIndividual:
		unit := perPerson
		if pricing.IndividualPriceMXN != nil {
			unit = *pricing.IndividualPriceMXN
		}
		calc.TotalPrice = unit * int64(n)
	case purchaseType == models.PurchaseTeam && n <= maxTeamUsers:
		discount := teamDiscount(pricing.TeamDiscountPercent)
		calc.DiscountApplied = discount
		calc.TotalPrice = int64(math.Round(float64(perPerson) * (1 - discount/100) * float64(n)))
	default:
		calc.TotalPrice = pricing.BasePriceMXN + int64(packs-1)*pricing.PricePer50Employees
	}

	calc.PricePerPerson = roundDiv(calc.TotalPrice, n)
	return calc, nil
}

// PreviewDiscountPercent is the volume staircase shown to buyers before checkout.
// It is display-only and never applied by Calculate.
func PreviewDiscountPercent(userCount int) float64 {
	switch {
	case userCount <= 10:
		return 0
	case userCount <= 50:
		return 5
	case userCount <= 100:
		return 10
	default:
		return 15
	}
}

func teamDiscount(percent *float64) float64 {
	if percent == nil {
		return DefaultTeamDiscountPercent
	}
	return math.Min(math.Max(*percent, 0), 100)
}

func roundDiv(amount int64, by int) int64 {
	return int64(math.Round(float64(amount) / float64(by)))
}
