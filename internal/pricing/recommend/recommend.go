// internal/pricing/recommend/recommend.go
package recommend

import (
	"sort"

	"marketplace-workers/internal/models"
)

const (
	ChallengeWeight = 2
	GoalWeight      = 3

	StarterBundleSize = 3
	MidBundleSize     = 5

	BudgetLow       = "<50k"
	BudgetHigh      = "500k+"
	SmallTeamRange  = "10-30"
	ManyGoalsCutoff = 5
)

// Score ranks the catalog by relevance, highest first. Equal scores keep catalog order.
// The catalog is not modified.
func Score(input models.AssessmentInput, catalog []models.ModuleCandidate) []models.ScoredModule {
	scored := make([]models.ScoredModule, 0, len(catalog))
	for _, m := range catalog {
		relevance := 0
		for _, c := range m.ChallengeAffinities {
			if input.HasChallenge(c) {
				relevance += ChallengeWeight
			}
		}
		for _, g := range m.GoalAffinities {
			if input.HasGoal(g) {
				relevance += GoalWeight
			}
		}
		scored = append(scored, models.ScoredModule{ID: m.ID, Name: m.Name, Relevance: relevance})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Relevance > scored[j].Relevance
	})
	return scored
}

// Recommend selects the module bundle for an assessment and returns module IDs in rank order.
func Recommend(input models.AssessmentInput, catalog []models.ModuleCandidate) []string {
	return Select(input, Score(input, catalog))
}

// Select applies the bundle policy to an already ranked list.
func Select(input models.AssessmentInput, ranked []models.ScoredModule) []string {
	switch {
	case input.BudgetRange == BudgetLow || input.EmployeeCount == SmallTeamRange:
		return ids(ranked, StarterBundleSize)
	case input.BudgetRange == BudgetHigh || len(input.Goals) >= ManyGoalsCutoff:
		return ids(ranked, len(ranked))
	}

	out := ids(ranked, MidBundleSize)
	for _, id := range out {
		if id == ModuleIntegration {
			return out
		}
	}
	return append(out, ModuleIntegration)
}

func ids(ranked []models.ScoredModule, n int) []string {
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]string, 0, n+1)
	for _, m := range ranked[:n] {
		out = append(out, m.ID)
	}
	return out
}
