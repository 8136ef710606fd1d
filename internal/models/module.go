// internal/models/module.go
package models

// ModuleCandidate is a catalog entry considered by the recommendation scorer.
type ModuleCandidate struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	ChallengeAffinities []string `json:"challengeAffinities"`
	GoalAffinities      []string `json:"goalAffinities"`
}

// ScoredModule is a per-call relevance result; it never aliases catalog state.
type ScoredModule struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Relevance int    `json:"relevance"`
}

// ModulePricing is the marketplace price record of a module.
type ModulePricing struct {
	ModuleID            string   `json:"moduleId"`
	BasePriceMXN        int64    `json:"basePriceMXN"`
	PricePer50Employees int64    `json:"pricePer50Employees"`
	IndividualPriceMXN  *int64   `json:"individualPriceMXN,omitempty"`
	TeamDiscountPercent *float64 `json:"teamDiscountPercent,omitempty"`
	IsPlatformModule    bool     `json:"isPlatformModule"`
}
