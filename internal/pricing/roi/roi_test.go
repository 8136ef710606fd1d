// internal/pricing/roi/roi_test.go
package roi

import (
	"testing"

	"marketplace-workers/internal/models"

	"github.com/stretchr/testify/assert"
)

var allChallenges = []string{ChallengeEnergy, ChallengeWater, ChallengeWaste, ChallengeProductivity}

func TestEstimate_AllChallenges(t *testing.T) {
	out := Estimate(models.AssessmentInput{
		Industry:      "retail",
		EmployeeCount: "50-100",
		Challenges:    allChallenges,
	})

	// 50 employees, default rates
	assert.Equal(t, int64(70000), out.Breakdown.Energy)
	assert.Equal(t, int64(6300), out.Breakdown.Water)
	assert.Equal(t, int64(5625), out.Breakdown.Waste)
	assert.Equal(t, int64(900000), out.Breakdown.Productivity)
	assert.Equal(t, int64(981925), out.TotalSavings)

	assert.Equal(t, "20%", out.Metrics.Energy)
	assert.Equal(t, "18%", out.Metrics.Water)
	assert.Equal(t, "25%", out.Metrics.Waste)
	assert.Equal(t, "10%", out.Metrics.Productivity)
}

func TestEstimate_Manufacturing(t *testing.T) {
	out := Estimate(models.AssessmentInput{
		Industry:      IndustryManufacturing,
		EmployeeCount: "12-30",
		Challenges:    []string{ChallengeEnergy, ChallengeWaste},
	})

	assert.Equal(t, int64(40320), out.Breakdown.Energy)
	assert.Equal(t, int64(0), out.Breakdown.Water)
	assert.Equal(t, int64(4875), out.Breakdown.Waste)
	assert.Equal(t, int64(0), out.Breakdown.Productivity)
	assert.Equal(t, int64(45195), out.TotalSavings)
	assert.Equal(t, "0%", out.Metrics.Water)
	assert.Equal(t, "0%", out.Metrics.Productivity)
}

func TestEstimate_NoChallenges(t *testing.T) {
	out := Estimate(models.AssessmentInput{EmployeeCount: "200-500"})

	assert.Equal(t, models.ROIBreakdown{
		Metrics: models.ReductionRates{Energy: "0%", Water: "0%", Waste: "0%", Productivity: "0%"},
	}, out)
}

func TestEstimate_UnparsableEmployeeCountDefaults(t *testing.T) {
	withDefault := Estimate(models.AssessmentInput{EmployeeCount: "unknown", Challenges: allChallenges})
	fifty := Estimate(models.AssessmentInput{EmployeeCount: "50", Challenges: allChallenges})

	assert.Equal(t, fifty, withDefault)
}

func TestEstimate_TotalIsSumOfBreakdown(t *testing.T) {
	industries := []string{"retail", IndustryManufacturing}
	counts := []string{"1-10", "10-30", "50-100", "137", "1000+", ""}

	// every subset of the four challenges
	for mask := 0; mask < 1<<len(allChallenges); mask++ {
		var challenges []string
		for i, c := range allChallenges {
			if mask&(1<<i) != 0 {
				challenges = append(challenges, c)
			}
		}
		for _, industry := range industries {
			for _, count := range counts {
				out := Estimate(models.AssessmentInput{
					Industry:      industry,
					EmployeeCount: count,
					Challenges:    challenges,
					Goals:         []string{"reduce_costs"},
				})
				b := out.Breakdown
				assert.Equal(t, b.Energy+b.Water+b.Waste+b.Productivity, out.TotalSavings)
				assert.GreaterOrEqual(t, out.TotalSavings, int64(0))
			}
		}
	}
}

func TestPercentLabel(t *testing.T) {
	assert.Equal(t, "18%", PercentLabel(0.18))
	assert.Equal(t, "25%", PercentLabel(0.25))
	assert.Equal(t, "0%", PercentLabel(0))
}
