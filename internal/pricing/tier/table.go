// internal/pricing/tier/table.go
package tier

import (
	"fmt"

	"marketplace-workers/internal/models"
)

// Band prices a bundle of up to MaxModules modules, scaled by the pack multiplier.
type Band struct {
	MaxModules int   `mapstructure:"max_modules" json:"maxModules"`
	BasePrice  int64 `mapstructure:"base_price" json:"basePrice"`
}

// FullBundleBand prices the complete catalog for companies at or below the enterprise threshold.
type FullBundleBand struct {
	BasePrice         int64 `mapstructure:"base_price" json:"basePrice"`
	SmallBasePrice    int64 `mapstructure:"small_base_price" json:"smallBasePrice"`
	SmallMaxEmployees int   `mapstructure:"small_max_employees" json:"smallMaxEmployees"`
	EmployeeLimit     int   `mapstructure:"employee_limit" json:"employeeLimit"`
}

// EnterpriseBand prices the complete catalog for companies above MinEmployees.
type EnterpriseBand struct {
	MinEmployees  int   `mapstructure:"min_employees" json:"minEmployees"`
	BasePrice     int64 `mapstructure:"base_price" json:"basePrice"`
	PackPrice     int64 `mapstructure:"pack_price" json:"packPrice"`
	IncludedPacks int   `mapstructure:"included_packs" json:"includedPacks"`
	EmployeeLimit int   `mapstructure:"employee_limit" json:"employeeLimit"`
}

// Table holds every constant the resolver uses.
type Table struct {
	PackSize       int              `mapstructure:"pack_size" json:"packSize"`
	PackMultiplier float64          `mapstructure:"pack_multiplier" json:"packMultiplier"`
	Starter        Band             `mapstructure:"starter" json:"starter"`
	Impact         Band             `mapstructure:"impact" json:"impact"`
	FullBundle     FullBundleBand   `mapstructure:"full_bundle" json:"fullBundle"`
	Enterprise     EnterpriseBand   `mapstructure:"enterprise" json:"enterprise"`
	Savings        map[string]int64 `mapstructure:"savings" json:"savings"`
}

func DefaultTable() Table {
	return Table{
		PackSize:       models.PackSize,
		PackMultiplier: 0.44,
		Starter:        Band{MaxModules: 3, BasePrice: 45000},
		Impact:         Band{MaxModules: 5, BasePrice: 65000},
		FullBundle: FullBundleBand{
			BasePrice:         85000,
			SmallBasePrice:    70000,
			SmallMaxEmployees: 50,
			EmployeeLimit:     100,
		},
		Enterprise: EnterpriseBand{
			MinEmployees:  100,
			BasePrice:     150000,
			PackPrice:     15000,
			IncludedPacks: 2,
			EmployeeLimit: 999,
		},
		Savings: map[string]int64{
			string(models.TierStarter):    9000,
			string(models.TierImpact):     23000,
			string(models.TierEnterprise): 50000,
		},
	}
}

// SavingsFor returns the advertised savings of a tier, 0 for unknown tiers.
func (t Table) SavingsFor(tier models.Tier) int64 {
	return t.Savings[string(tier)]
}

func (t Table) Validate() error {
	if t.PackSize < 1 {
		return fmt.Errorf("pack_size must be positive, got %d", t.PackSize)
	}
	if t.PackMultiplier < 0 {
		return fmt.Errorf("pack_multiplier must not be negative, got %v", t.PackMultiplier)
	}
	if t.Starter.MaxModules < 1 || t.Impact.MaxModules <= t.Starter.MaxModules {
		return fmt.Errorf("module bands must increase: starter=%d impact=%d", t.Starter.MaxModules, t.Impact.MaxModules)
	}
	if t.Enterprise.IncludedPacks < 0 {
		return fmt.Errorf("enterprise.included_packs must not be negative, got %d", t.Enterprise.IncludedPacks)
	}
	// Enterprise quotes charge packs beyond IncludedPacks; the threshold must cover them.
	if covered := t.Enterprise.IncludedPacks * t.PackSize; t.Enterprise.MinEmployees < covered {
		return fmt.Errorf("enterprise.min_employees must be at least included_packs*pack_size (%d), got %d",
			covered, t.Enterprise.MinEmployees)
	}
	prices := map[string]int64{
		"starter.base_price":           t.Starter.BasePrice,
		"impact.base_price":            t.Impact.BasePrice,
		"full_bundle.base_price":       t.FullBundle.BasePrice,
		"full_bundle.small_base_price": t.FullBundle.SmallBasePrice,
		"enterprise.base_price":        t.Enterprise.BasePrice,
		"enterprise.pack_price":        t.Enterprise.PackPrice,
	}
	for name, price := range prices {
		if price < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, price)
		}
	}
	return nil
}
