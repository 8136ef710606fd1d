// internal/models/quote.go
package models

type Tier string

const (
	TierStarter    Tier = "starter"
	TierImpact     Tier = "impact"
	TierEnterprise Tier = "enterprise"
)

// ROIBreakdown is the projected annual savings (MXN) derived from a survey.
type ROIBreakdown struct {
	TotalSavings int64          `json:"totalSavings"`
	Breakdown    SavingsByArea  `json:"breakdown"`
	Metrics      ReductionRates `json:"metrics"`
}

type SavingsByArea struct {
	Energy       int64 `json:"energy"`
	Water        int64 `json:"water"`
	Waste        int64 `json:"waste"`
	Productivity int64 `json:"productivity"`
}

// ReductionRates holds display labels such as "20%"; "0%" when the area was not selected.
type ReductionRates struct {
	Energy       string `json:"energy"`
	Water        string `json:"water"`
	Waste        string `json:"waste"`
	Productivity string `json:"productivity"`
}

type PricingQuote struct {
	Tier             Tier  `json:"tier"`
	BasePrice        int64 `json:"basePrice"`
	EmployeeLimit    int   `json:"employeeLimit"`
	ModuleCount      int   `json:"moduleCount"`
	PricePerModule   int64 `json:"pricePerModule"`
	PricePerEmployee int64 `json:"pricePerEmployee"`
	Savings          int64 `json:"savings"`
	Packs            int   `json:"packs"`
}

// PackSize is the number of employees billed per pack.
const PackSize = 50

// PacksFor returns ceil(count/size), at least 1.
func PacksFor(count, size int) int {
	if size < 1 {
		size = PackSize
	}
	if count < 1 {
		return 1
	}
	return (count + size - 1) / size
}
