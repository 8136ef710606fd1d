// internal/pricing/tier/tier.go
package tier

import (
	"math"

	"marketplace-workers/internal/models"
)

// Resolve quotes a bundle of moduleCount modules for a company of the given size.
func Resolve(table Table, employees, moduleCount int) models.PricingQuote {
	if employees < 1 {
		employees = models.DefaultEmployeeCount
	}
	divisor := moduleCount
	if divisor < 1 {
		divisor = 1
	}

	packs := models.PacksFor(employees, table.PackSize)
	multiplier := 1.0
	if packs > 1 {
		multiplier = 1 + float64(packs-1)*table.PackMultiplier
	}

	var (
		tier          models.Tier
		basePrice     int64
		employeeLimit int
	)
	switch {
	case moduleCount <= table.Starter.MaxModules:
		tier = models.TierStarter
		basePrice = scale(table.Starter.BasePrice, multiplier)
		employeeLimit = packs * table.PackSize
	case moduleCount <= table.Impact.MaxModules:
		tier = models.TierImpact
		basePrice = scale(table.Impact.BasePrice, multiplier)
		employeeLimit = packs * table.PackSize
	case employees > table.Enterprise.MinEmployees:
		tier = models.TierEnterprise
		basePrice = table.Enterprise.BasePrice + int64(packs-table.Enterprise.IncludedPacks)*table.Enterprise.PackPrice
		employeeLimit = table.Enterprise.EmployeeLimit
	default:
		tier = models.TierImpact
		basePrice = table.FullBundle.BasePrice
		if employees <= table.FullBundle.SmallMaxEmployees {
			basePrice = table.FullBundle.SmallBasePrice
		}
		employeeLimit = table.FullBundle.EmployeeLimit
	}

	return models.PricingQuote{
		Tier:             tier,
		BasePrice:        basePrice,
		EmployeeLimit:    employeeLimit,
		ModuleCount:      moduleCount,
		PricePerModule:   divide(basePrice, divisor),
		PricePerEmployee: divide(basePrice, employees),
		Savings:          table.SavingsFor(tier),
		Packs:            packs,
	}
}

func scale(price int64, multiplier float64) int64 {
	return int64(math.Round(float64(price) * multiplier))
}

func divide(amount int64, by int) int64 {
	return int64(math.Round(float64(amount) / float64(by)))
}
