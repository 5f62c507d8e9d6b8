package payoff

import (
	"time"

	"debtpilot/internal/models"
)

// DebtSummary aggregates a debt portfolio into portfolio-level statistics.
type DebtSummary struct {
	DebtCount               int          `json:"debt_count"`
	TotalDebt               float64      `json:"total_debt"`
	TotalMinimumPayments    float64      `json:"total_minimum_payments"`
	AverageInterestRate     float64      `json:"average_interest_rate"`
	WeightedAverageRate     float64      `json:"weighted_average_rate"`
	HighestInterestDebt     *models.Debt `json:"highest_interest_debt,omitempty"`
	SmallestBalanceDebt     *models.Debt `json:"smallest_balance_debt,omitempty"`
	DebtToIncomeRatio       float64      `json:"debt_to_income_ratio"`
	TotalInterestAtMinimum  float64      `json:"total_interest_at_minimum"`
	MonthsToPayoffAtMinimum int          `json:"months_to_payoff_at_minimum"`
	ProjectedPayoffDate     string       `json:"projected_payoff_date,omitempty"`
	UnpayableDebtIDs        []string     `json:"unpayable_debt_ids,omitempty"`
}

// CalculateDebtSummary computes portfolio statistics. monthlyIncome may be 0,
// in which case the debt-to-income ratio is 0.
func CalculateDebtSummary(debts []models.Debt, monthlyIncome float64, asOf time.Time) DebtSummary {
	summary := DebtSummary{DebtCount: len(debts)}
	if len(debts) == 0 {
		return summary
	}

	var rateSum float64
	for _, d := range debts {
		summary.TotalDebt += d.CurrentBalance
		summary.TotalMinimumPayments += d.Minimum()
		rateSum += d.Rate()

		if summary.HighestInterestDebt == nil || d.Rate() > summary.HighestInterestDebt.Rate() {
			summary.HighestInterestDebt = &d
		}
		if summary.SmallestBalanceDebt == nil || d.CurrentBalance < summary.SmallestBalanceDebt.CurrentBalance {
			summary.SmallestBalanceDebt = &d
		}

		calc := CalculatePayoff(d, d.Minimum(), 0)
		summary.TotalInterestAtMinimum += calc.TotalInterest
		if calc.MonthsToPayoff > summary.MonthsToPayoffAtMinimum {
			summary.MonthsToPayoffAtMinimum = calc.MonthsToPayoff
		}
		if calc.NeverPaysOff() {
			summary.UnpayableDebtIDs = append(summary.UnpayableDebtIDs, d.ID)
		}
	}

	summary.AverageInterestRate = rateSum / float64(len(debts))
	summary.WeightedAverageRate = weightedAverageRate(debts, summary.TotalDebt)
	summary.DebtToIncomeRatio = safeDiv(summary.TotalMinimumPayments, monthlyIncome) * 100
	summary.ProjectedPayoffDate = projectDate(asOf, summary.MonthsToPayoffAtMinimum)
	return summary
}

// weightedAverageRate is Σ(rate_i * balance_i/total). Zero total yields 0.
func weightedAverageRate(debts []models.Debt, total float64) float64 {
	if total == 0 {
		return 0
	}
	var weighted float64
	for _, d := range debts {
		weighted += d.Rate() * (d.CurrentBalance / total)
	}
	return weighted
}

// projectDate adds months to asOf and formats it as an ISO date.
func projectDate(asOf time.Time, months int) string {
	return asOf.AddDate(0, months, 0).Format(time.DateOnly)
}
