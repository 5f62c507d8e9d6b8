package payoff

import (
	"math"

	"debtpilot/internal/models"
)

// PortfolioProjection is the outcome of paying a whole portfolio down in a
// fixed order, with freed payments cascading to the next debt.
type PortfolioProjection struct {
	Months        int            `json:"months"`
	TotalInterest float64        `json:"total_interest"`
	TotalPaid     float64        `json:"total_paid"`
	PaidOff       bool           `json:"paid_off"`
	PayoffMonth   map[string]int `json:"payoff_month"`
}

// SimulatePortfolio runs the cascading ("waterfall") simulation: every month
// each debt accrues interest, every open debt receives its minimum, and
// whatever is left of the monthly budget (all minimums + extraPayment) goes
// to the open debts in order. Capped at MaxPayoffMonths.
func SimulatePortfolio(ordered []models.Debt, extraPayment float64) PortfolioProjection {
	budget := math.Max(0, extraPayment)
	for _, d := range ordered {
		budget += d.Minimum()
	}
	return SimulateBudget(ordered, budget)
}

// SimulateBudget is SimulatePortfolio with an explicit monthly budget. A
// budget below the sum of minimums pays minimums in order until it runs out.
func SimulateBudget(ordered []models.Debt, budget float64) PortfolioProjection {
	budget = math.Max(0, budget)
	balances := make([]float64, len(ordered))
	for i, d := range ordered {
		balances[i] = d.CurrentBalance
	}

	proj := PortfolioProjection{PayoffMonth: make(map[string]int, len(ordered))}
	for i, d := range ordered {
		if balances[i] <= BalanceEpsilon {
			proj.PayoffMonth[d.ID] = 0
		}
	}

	for proj.Months < MaxPayoffMonths && !allPaid(balances) {
		proj.Months++
		available := budget

		for i, d := range ordered {
			if balances[i] <= BalanceEpsilon {
				continue
			}
			interest := balances[i] * monthlyRate(d)
			balances[i] += interest
			proj.TotalInterest += interest
		}

		for i, d := range ordered {
			if balances[i] <= BalanceEpsilon {
				continue
			}
			pay := math.Min(math.Min(d.Minimum(), balances[i]), available)
			balances[i] -= pay
			available -= pay
			proj.TotalPaid += pay
		}

		for i := range ordered {
			if available <= 0 {
				break
			}
			if balances[i] <= BalanceEpsilon {
				continue
			}
			pay := math.Min(available, balances[i])
			balances[i] -= pay
			available -= pay
			proj.TotalPaid += pay
		}

		for i, d := range ordered {
			if _, done := proj.PayoffMonth[d.ID]; !done && balances[i] <= BalanceEpsilon {
				proj.PayoffMonth[d.ID] = proj.Months
			}
		}
	}

	proj.PaidOff = allPaid(balances)
	return proj
}

// MinimumOnlyBaseline pays every debt independently at its minimum and
// returns the slowest horizon and the summed interest.
func MinimumOnlyBaseline(debts []models.Debt) (months int, interest float64) {
	for _, d := range debts {
		calc := CalculatePayoff(d, d.Minimum(), 0)
		interest += calc.TotalInterest
		if calc.MonthsToPayoff > months {
			months = calc.MonthsToPayoff
		}
	}
	return months, interest
}

func allPaid(balances []float64) bool {
	for _, b := range balances {
		if b > BalanceEpsilon {
			return false
		}
	}
	return true
}
