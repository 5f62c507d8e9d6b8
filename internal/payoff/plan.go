package payoff

import (
	"fmt"
	"math"
	"time"

	"debtpilot/internal/models"
)

// Source records where a strategy's qualitative text came from.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// AIDebtStrategy is a complete, orderable repayment plan.
type AIDebtStrategy struct {
	Name                  string                    `json:"strategy_name"`
	Heuristic             Heuristic                 `json:"heuristic"`
	Source                Source                    `json:"source"`
	Methodology           string                    `json:"methodology"`
	DebtOrder             []DebtPriority            `json:"debt_order"`
	TotalInterestSaved    float64                   `json:"total_interest_saved"`
	MonthsReduced         int                       `json:"months_reduced"`
	CashFlowImpact        float64                   `json:"cash_flow_impact"`
	RiskScore             float64                   `json:"risk_score"`
	Recommendations       []Recommendation          `json:"recommendations"`
	AdjustmentTriggers    models.AdjustmentTriggers `json:"adjustment_triggers"`
	ProjectedDebtFreeDate string                    `json:"projected_debt_free_date,omitempty"`
	NeverPaysOff          bool                      `json:"never_pays_off"`
}

// DefaultTriggers are the recompute thresholds attached to every new plan.
func DefaultTriggers() models.AdjustmentTriggers {
	return models.AdjustmentTriggers{
		IncomeChangePercent:  10,
		ExpenseChangePercent: 15,
		TimeBasedDays:        30,
	}
}

// StrategyName returns the display name of a heuristic.
func StrategyName(h Heuristic) string {
	switch h {
	case HeuristicAvalanche:
		return "Debt Avalanche"
	case HeuristicSnowball:
		return "Debt Snowball"
	default:
		return "Optimized Multi-Factor"
	}
}

// Methodology returns the default methodology description of a heuristic.
func Methodology(h Heuristic) string {
	switch h {
	case HeuristicAvalanche:
		return "Pay minimums on every debt and direct all extra cash to the highest interest rate first. Minimizes total interest paid."
	case HeuristicSnowball:
		return "Pay minimums on every debt and direct all extra cash to the smallest balance first. Builds momentum through quick wins."
	default:
		return "Rank debts by a weighted score of interest rate, relative balance, time to payoff and credit utilization, then direct all extra cash to the top-ranked debt."
	}
}

// BuildStrategy assembles a plan from an already computed debt order and
// compares it against paying only minimums.
func BuildStrategy(h Heuristic, order []DebtPriority, debts []models.Debt, snapshot FinancialSnapshot, extraPayment float64, asOf time.Time) AIDebtStrategy {
	byID := make(map[string]models.Debt, len(debts))
	for _, d := range debts {
		byID[d.ID] = d
	}
	ordered := make([]models.Debt, 0, len(order))
	for _, p := range order {
		if d, ok := byID[p.DebtID]; ok {
			ordered = append(ordered, d)
		}
	}

	baselineMonths, baselineInterest := MinimumOnlyBaseline(debts)
	projection := SimulatePortfolio(ordered, extraPayment)

	strategy := AIDebtStrategy{
		Name:               StrategyName(h),
		Heuristic:          h,
		Source:             SourceFallback,
		Methodology:        Methodology(h),
		DebtOrder:          order,
		TotalInterestSaved: math.Max(0, baselineInterest-projection.TotalInterest),
		MonthsReduced:      max(0, baselineMonths-projection.Months),
		CashFlowImpact:     math.Max(0, extraPayment),
		RiskScore:          CalculateRiskScore(snapshot),
		Recommendations:    DefaultRecommendations(snapshot),
		AdjustmentTriggers: DefaultTriggers(),
		NeverPaysOff:       !projection.PaidOff,
	}
	if len(ordered) > 0 {
		strategy.ProjectedDebtFreeDate = projectDate(asOf, projection.Months)
	}
	return strategy
}

// GenerateStrategy runs the generator for h and assembles the full plan,
// putting every available dollar beyond minimums toward rank 1.
func GenerateStrategy(h Heuristic, debts []models.Debt, snapshot FinancialSnapshot, weights Weights, asOf time.Time) AIDebtStrategy {
	extra := snapshot.ExtraAvailable()
	order := Generate(h, debts, extra, weights, asOf)
	return BuildStrategy(h, order, debts, snapshot, extra, asOf)
}

// ShouldAdjust compares the snapshot a plan was computed from with the
// current one and returns the reasons the plan should be recomputed.
func ShouldAdjust(t models.AdjustmentTriggers, previous, current FinancialSnapshot, computedAt, asOf time.Time) []string {
	var reasons []string

	if t.IncomeChangePercent > 0 && previous.MonthlyIncome > 0 {
		change := (current.MonthlyIncome - previous.MonthlyIncome) / previous.MonthlyIncome * 100
		if math.Abs(change) >= t.IncomeChangePercent {
			reasons = append(reasons, fmt.Sprintf("income changed by %.1f%%", change))
		}
	}
	if t.ExpenseChangePercent > 0 && previous.MonthlyExpenses > 0 {
		change := (current.MonthlyExpenses - previous.MonthlyExpenses) / previous.MonthlyExpenses * 100
		if change >= t.ExpenseChangePercent {
			reasons = append(reasons, fmt.Sprintf("expenses increased by %.1f%%", change))
		}
	}
	if t.TimeBasedDays > 0 && !asOf.Before(computedAt.AddDate(0, 0, t.TimeBasedDays)) {
		reasons = append(reasons, fmt.Sprintf("plan is older than %d days", t.TimeBasedDays))
	}
	return reasons
}
