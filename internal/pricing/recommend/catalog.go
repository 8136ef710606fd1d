// internal/pricing/recommend/catalog.go
package recommend

import "marketplace-workers/internal/models"

const (
	ModuleEnergy      = "energy_efficiency"
	ModuleWater       = "water_stewardship"
	ModuleWaste       = "circular_waste"
	ModuleEngagement  = "employee_engagement"
	ModuleReporting   = "esg_reporting"
	ModuleIntegration = "integration"
)

// Catalog returns a fresh copy of the six-module catalog in declaration order.
func Catalog() []models.ModuleCandidate {
	return []models.ModuleCandidate{
		{
			ID:                  ModuleEnergy,
			Name:                "Energy Efficiency",
			ChallengeAffinities: []string{"energy_costs", "carbon_footprint"},
			GoalAffinities:      []string{"reduce_costs", "carbon_neutral"},
		},
		{
			ID:                  ModuleWater,
			Name:                "Water Stewardship",
			ChallengeAffinities: []string{"water_usage"},
			GoalAffinities:      []string{"reduce_costs", "certification"},
		},
		{
			ID:                  ModuleWaste,
			Name:                "Circular Waste",
			ChallengeAffinities: []string{"waste_management", "supply_chain"},
			GoalAffinities:      []string{"zero_waste", "reduce_costs"},
		},
		{
			ID:                  ModuleEngagement,
			Name:                "Employee Engagement",
			ChallengeAffinities: []string{"employee_engagement", "talent_retention"},
			GoalAffinities:      []string{"employee_wellbeing", "community_impact"},
		},
		{
			ID:                  ModuleReporting,
			Name:                "ESG Reporting",
			ChallengeAffinities: []string{"compliance", "carbon_footprint"},
			GoalAffinities:      []string{"esg_reporting", "certification", "investor_relations"},
		},
		{
			ID:                  ModuleIntegration,
			Name:                "Sustainability Integration",
			ChallengeAffinities: []string{"data_silos", "compliance"},
			GoalAffinities:      []string{"digital_transformation", "esg_reporting"},
		},
	}
}
