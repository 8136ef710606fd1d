// internal/pricing/roi/roi.go
package roi

import (
	"fmt"
	"math"

	"marketplace-workers/internal/models"
)

const (
	ChallengeEnergy       = "energy_costs"
	ChallengeWater        = "water_usage"
	ChallengeWaste        = "waste_management"
	ChallengeProductivity = "employee_engagement"

	IndustryManufacturing = "manufacturing"
)

// Category describes how one savings area is projected.
// Rate is the annual per-employee consumption (kWh, m³, kg) or, for productivity, the monthly salary.
type Category struct {
	Challenge         string
	Rate              float64
	ManufacturingRate float64
	UnitCost          float64
	Reduction         float64
}

// Categories groups the four savings areas.
type Categories struct {
	Energy       Category
	Water        Category
	Waste        Category
	Productivity Category
}

// DefaultCategories returns the savings table used by Estimate.
func DefaultCategories() Categories {
	return Categories{
		Energy: Category{
			Challenge:         ChallengeEnergy,
			Rate:              2500,
			ManufacturingRate: 6000,
			UnitCost:          2.8,
			Reduction:         0.20,
		},
		Water: Category{
			Challenge:         ChallengeWater,
			Rate:              20,
			ManufacturingRate: 60,
			UnitCost:          35,
			Reduction:         0.18,
		},
		Waste: Category{
			Challenge:         ChallengeWaste,
			Rate:              180,
			ManufacturingRate: 650,
			UnitCost:          2.5,
			Reduction:         0.25,
		},
		// Monthly salary over twelve months.
		Productivity: Category{
			Challenge:         ChallengeProductivity,
			Rate:              15000,
			ManufacturingRate: 18000,
			UnitCost:          12,
			Reduction:         0.10,
		},
	}
}

// Estimate projects annual savings with the default table.
func Estimate(input models.AssessmentInput) models.ROIBreakdown {
	return EstimateWith(DefaultCategories(), input)
}

// EstimateWith projects annual savings. Only categories whose challenge was selected contribute.
func EstimateWith(cats Categories, input models.AssessmentInput) models.ROIBreakdown {
	employees := input.Employees()
	manufacturing := input.Industry == IndustryManufacturing

	var out models.ROIBreakdown
	out.Breakdown.Energy, out.Metrics.Energy = cats.Energy.project(input, employees, manufacturing)
	out.Breakdown.Water, out.Metrics.Water = cats.Water.project(input, employees, manufacturing)
	out.Breakdown.Waste, out.Metrics.Waste = cats.Waste.project(input, employees, manufacturing)
	out.Breakdown.Productivity, out.Metrics.Productivity = cats.Productivity.project(input, employees, manufacturing)

	b := out.Breakdown
	out.TotalSavings = b.Energy + b.Water + b.Waste + b.Productivity
	return out
}

func (c Category) project(input models.AssessmentInput, employees int, manufacturing bool) (int64, string) {
	if !input.HasChallenge(c.Challenge) {
		return 0, "0%"
	}
	rate := c.Rate
	if manufacturing {
		rate = c.ManufacturingRate
	}
	value := math.Round(float64(employees) * rate * c.UnitCost * c.Reduction)
	if value < 0 {
		value = 0
	}
	return int64(value), PercentLabel(c.Reduction)
}

// PercentLabel formats a fraction as a whole percentage label, 0.18 -> "18%".
func PercentLabel(fraction float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(fraction*100)))
}
