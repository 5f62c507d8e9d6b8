package services

import (
	"gorm.io/datatypes"

	"debtpilot/internal/models"
	"debtpilot/internal/payoff"
)

// newStrategyModel converts a computed plan into its persisted form.
func newStrategyModel(userID string, plan payoff.AIDebtStrategy, input FinancialInput) *models.DebtStrategy {
	order := make([]models.StrategyPriority, len(plan.DebtOrder))
	for i, p := range plan.DebtOrder {
		order[i] = models.StrategyPriority(p)
	}
	recs := make([]models.StrategyRecommendation, len(plan.Recommendations))
	for i, r := range plan.Recommendations {
		recs[i] = models.StrategyRecommendation{
			Type:            string(r.Type),
			Action:          r.Action,
			EstimatedImpact: r.EstimatedImpact,
			Effort:          string(r.Effort),
			Priority:        r.Priority,
		}
	}

	return &models.DebtStrategy{
		UserID:             userID,
		Name:               plan.Name,
		Heuristic:          string(plan.Heuristic),
		Source:             string(plan.Source),
		Methodology:        plan.Methodology,
		DebtOrder:          datatypes.NewJSONType(order),
		TotalInterestSaved: plan.TotalInterestSaved,
		MonthsReduced:      plan.MonthsReduced,
		CashFlowImpact:     plan.CashFlowImpact,
		RiskScore:          plan.RiskScore,
		Recommendations:    datatypes.NewJSONType(recs),
		AdjustmentTriggers: datatypes.NewJSONType(plan.AdjustmentTriggers),
		DebtFreeDate:       plan.ProjectedDebtFreeDate,
		MonthlyIncome:      input.MonthlyIncome,
		MonthlyExpenses:    input.MonthlyExpenses,
		EmergencyFund:      input.EmergencyFund,
		ExtraPayment:       plan.CashFlowImpact,
	}
}

// PlanFromStrategy rebuilds the engine view of a persisted strategy.
func PlanFromStrategy(s models.DebtStrategy) payoff.AIDebtStrategy {
	stored := s.DebtOrder.Data()
	order := make([]payoff.DebtPriority, len(stored))
	for i, p := range stored {
		order[i] = payoff.DebtPriority(p)
	}
	storedRecs := s.Recommendations.Data()
	recs := make([]payoff.Recommendation, len(storedRecs))
	for i, r := range storedRecs {
		recs[i] = payoff.Recommendation{
			Type:            payoff.RecommendationType(r.Type),
			Action:          r.Action,
			EstimatedImpact: r.EstimatedImpact,
			Effort:          payoff.Effort(r.Effort),
			Priority:        r.Priority,
		}
	}

	plan := payoff.AIDebtStrategy{
		Name:                  s.Name,
		Heuristic:             payoff.Heuristic(s.Heuristic),
		Source:                payoff.Source(s.Source),
		Methodology:           s.Methodology,
		DebtOrder:             order,
		TotalInterestSaved:    s.TotalInterestSaved,
		MonthsReduced:         s.MonthsReduced,
		CashFlowImpact:        s.CashFlowImpact,
		RiskScore:             s.RiskScore,
		Recommendations:       recs,
		AdjustmentTriggers:    s.AdjustmentTriggers.Data(),
		ProjectedDebtFreeDate: s.DebtFreeDate,
	}
	for _, p := range order {
		if p.NeverPaysOff {
			plan.NeverPaysOff = true
		}
	}
	return plan
}

// inputOf returns the financial input a strategy was computed from.
func inputOf(s models.DebtStrategy) FinancialInput {
	return FinancialInput{
		MonthlyIncome:   s.MonthlyIncome,
		MonthlyExpenses: s.MonthlyExpenses,
		EmergencyFund:   s.EmergencyFund,
	}
}
