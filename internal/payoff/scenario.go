package payoff

import (
	"math"
	"strings"
	"time"

	"debtpilot/internal/models"
)

// ScenarioAssumptions perturbs the inputs of a base strategy.
type ScenarioAssumptions struct {
	Name                 string    `json:"name,omitempty"`
	MonthlyExtraPayment  float64   `json:"monthly_extra_payment" binding:"gte=0"`
	IncomeChangePercent  float64   `json:"income_change" binding:"gt=-100"`
	ExpenseChangePercent float64   `json:"expense_change"`
	InterestRateChange   *float64  `json:"interest_rate_change,omitempty"`
	UnexpectedExpenses   []float64 `json:"unexpected_expenses,omitempty" binding:"omitempty,dive,gte=0"`
}

// PaymentRange is the [min,max] monthly payment across the portfolio.
type PaymentRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ScenarioSimulation is the outcome of one what-if run.
type ScenarioSimulation struct {
	Name                string              `json:"scenario_name"`
	Assumptions         ScenarioAssumptions `json:"assumptions"`
	ProjectedDebtFree   string              `json:"projected_debt_free_date"`
	MonthsToDebtFree    int                 `json:"months_to_debt_free"`
	TotalInterestPaid   float64             `json:"total_interest_paid"`
	TotalAmountPaid     float64             `json:"total_amount_paid"`
	MonthlyPaymentRange PaymentRange        `json:"monthly_payment_range"`
	SuccessProbability  float64             `json:"success_probability"`
	NeverPaysOff        bool                `json:"never_pays_off"`
}

// SimulateScenarios re-runs the base strategy under each set of assumptions.
// Every priority's payment and extra payment are scaled by the income change,
// the assumed extra goes to the first-ranked debt, and the pooled budget is
// paid down in the base order with freed payments rolling over, the same
// projection the strategy's own debt-free date comes from.
func SimulateScenarios(debts []models.Debt, base AIDebtStrategy, assumptions []ScenarioAssumptions, asOf time.Time) []ScenarioSimulation {
	byID := make(map[string]models.Debt, len(debts))
	for _, d := range debts {
		byID[d.ID] = d
	}

	results := make([]ScenarioSimulation, 0, len(assumptions))
	for _, a := range assumptions {
		results = append(results, simulateScenario(byID, base, a, asOf))
	}
	return results
}

func simulateScenario(byID map[string]models.Debt, base AIDebtStrategy, a ScenarioAssumptions, asOf time.Time) ScenarioSimulation {
	factor := 1 + a.IncomeChangePercent/100
	sim := ScenarioSimulation{
		Name:               ScenarioName(a),
		Assumptions:        a,
		SuccessProbability: SuccessProbability(a),
	}

	ordered := make([]models.Debt, 0, len(base.DebtOrder))
	var budget float64
	for _, p := range base.DebtOrder {
		d, ok := byID[p.DebtID]
		if !ok {
			continue
		}

		payment := p.MonthlyPayment * factor
		extra := math.Max(0, p.ExtraPayment) * factor
		if len(ordered) == 0 {
			extra += a.MonthlyExtraPayment * factor
		}
		total := payment + extra
		budget += total

		if len(ordered) == 0 {
			sim.MonthlyPaymentRange = PaymentRange{Min: total, Max: total}
		} else {
			sim.MonthlyPaymentRange.Min = math.Min(sim.MonthlyPaymentRange.Min, total)
			sim.MonthlyPaymentRange.Max = math.Max(sim.MonthlyPaymentRange.Max, total)
		}
		ordered = append(ordered, adjustRate(d, a.InterestRateChange))
	}
	if len(ordered) == 0 {
		return sim
	}

	proj := SimulateBudget(ordered, budget)
	sim.MonthsToDebtFree = proj.Months
	sim.TotalInterestPaid = proj.TotalInterest
	sim.TotalAmountPaid = proj.TotalPaid
	sim.NeverPaysOff = !proj.PaidOff
	sim.ProjectedDebtFree = projectDate(asOf, proj.Months)
	return sim
}

// adjustRate returns a copy of d with its rate shifted by change percentage
// points, floored at 0.
func adjustRate(d models.Debt, change *float64) models.Debt {
	if change == nil || *change == 0 {
		return d
	}
	rate := math.Max(0, d.Rate()+*change)
	d.InterestRate = &rate
	return d
}

// SuccessProbability starts at 100 and is penalized for adverse assumptions.
func SuccessProbability(a ScenarioAssumptions) float64 {
	p := 100.0
	if a.IncomeChangePercent < -10 {
		p -= 20
	}
	if a.ExpenseChangePercent > 10 {
		p -= 15
	}
	p -= 5 * float64(len(a.UnexpectedExpenses))
	return math.Max(0, p)
}

// ScenarioName derives a display name from the non-default assumptions.
// An explicit Name wins.
func ScenarioName(a ScenarioAssumptions) string {
	if a.Name != "" {
		return a.Name
	}
	var parts []string
	switch {
	case a.IncomeChangePercent < 0:
		parts = append(parts, "Income Decrease")
	case a.IncomeChangePercent > 0:
		parts = append(parts, "Income Increase")
	}
	switch {
	case a.ExpenseChangePercent > 0:
		parts = append(parts, "Expense Increase")
	case a.ExpenseChangePercent < 0:
		parts = append(parts, "Expense Decrease")
	}
	if a.MonthlyExtraPayment > 0 {
		parts = append(parts, "Extra Payments")
	}
	if a.InterestRateChange != nil {
		switch {
		case *a.InterestRateChange > 0:
			parts = append(parts, "Rate Increase")
		case *a.InterestRateChange < 0:
			parts = append(parts, "Rate Decrease")
		}
	}
	if len(a.UnexpectedExpenses) > 0 {
		parts = append(parts, "Unexpected Expenses")
	}
	if len(parts) == 0 {
		return "Base Scenario"
	}
	return strings.Join(parts, " + ")
}

// DefaultScenarioAssumptions is the what-if set run when the caller supplies none.
func DefaultScenarioAssumptions() []ScenarioAssumptions {
	rateUp := 2.0
	return []ScenarioAssumptions{
		{},
		{MonthlyExtraPayment: 100},
		{MonthlyExtraPayment: 250},
		{IncomeChangePercent: -20},
		{InterestRateChange: &rateUp},
	}
}
