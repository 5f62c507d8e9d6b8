package payoff

import (
	"math"
	"sort"
)

// RecommendationType classifies a recommendation.
type RecommendationType string

const (
	RecommendationExpense       RecommendationType = "expense"
	RecommendationConsolidation RecommendationType = "consolidation"
	RecommendationIncome        RecommendationType = "income"
)

// Effort is the effort level a recommendation requires.
type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

// MaxRecommendations is the number of recommendations a strategy carries.
const MaxRecommendations = 3

// Recommendation is a ranked, actionable suggestion. Lower Priority is shown first.
type Recommendation struct {
	Type            RecommendationType `json:"type"`
	Action          string             `json:"action"`
	EstimatedImpact float64            `json:"estimated_impact"`
	Effort          Effort             `json:"effort"`
	Priority        int                `json:"priority"`
}

// CalculateRiskScore scores a snapshot additively in [0,100]; higher is riskier.
func CalculateRiskScore(s FinancialSnapshot) float64 {
	var score float64

	switch {
	case s.DebtToIncomeRatio > 40:
		score += 30
	case s.DebtToIncomeRatio > 30:
		score += 20
	case s.DebtToIncomeRatio > 20:
		score += 10
	}

	// With no monthly expenses there is nothing for the fund to cover.
	if s.MonthlyExpenses > 0 {
		coverage := s.EmergencyFund / s.MonthlyExpenses
		switch {
		case coverage < 1:
			score += 30
		case coverage < 3:
			score += 20
		case coverage < 6:
			score += 10
		}
	}

	switch {
	case s.AvailableForDebt < 100:
		score += 20
	case s.AvailableForDebt < 200:
		score += 10
	}

	switch {
	case s.WeightedAverageRate > 20:
		score += 20
	case s.WeightedAverageRate > 15:
		score += 10
	}

	return clampScore(score)
}

// DefaultRecommendations derives rule-based recommendations from a snapshot,
// returning at most MaxRecommendations ordered by priority.
func DefaultRecommendations(s FinancialSnapshot) []Recommendation {
	recs := make([]Recommendation, 0, 4)

	if s.MonthlyExpenses > 0 && s.EmergencyFund/s.MonthlyExpenses < 3 {
		recs = append(recs, Recommendation{
			Type:            RecommendationExpense,
			Action:          "Build an emergency fund covering at least 3 months of expenses before aggressive payoff",
			EstimatedImpact: math.Max(0, 3*s.MonthlyExpenses-s.EmergencyFund),
			Effort:          EffortMedium,
			Priority:        1,
		})
	}
	if s.WeightedAverageRate > 18 {
		recs = append(recs, Recommendation{
			Type:            RecommendationConsolidation,
			Action:          "Consider consolidating high-interest balances into a lower-rate loan",
			EstimatedImpact: s.TotalDebt * (s.WeightedAverageRate - 10) / 100 / 12 * 24,
			Effort:          EffortMedium,
			Priority:        2,
		})
	}
	if s.DebtToIncomeRatio > 30 {
		recs = append(recs, Recommendation{
			Type:            RecommendationIncome,
			Action:          "Explore additional income to bring debt payments under 30% of income",
			EstimatedImpact: math.Max(0, s.DebtToIncomeRatio/100*s.MonthlyIncome/0.30-s.MonthlyIncome),
			Effort:          EffortHigh,
			Priority:        3,
		})
	}
	if s.AvailableForDebt < 200 {
		recs = append(recs, Recommendation{
			Type:            RecommendationExpense,
			Action:          "Reduce monthly expenses to free at least $200 for debt payments",
			EstimatedImpact: math.Max(0, 200-s.AvailableForDebt),
			Effort:          EffortLow,
			Priority:        2,
		})
	}

	return topRecommendations(recs)
}

func topRecommendations(recs []Recommendation) []Recommendation {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})
	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}
