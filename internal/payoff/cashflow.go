package payoff

import (
	"math"

	"debtpilot/internal/models"
)

// CashFlowImpact describes how much monthly income remains after expenses
// and minimum debt payments.
type CashFlowImpact struct {
	TotalDebtPayments     float64 `json:"total_debt_payments"`
	RemainingAfterDebt    float64 `json:"remaining_after_debt"`
	EmergencyFundCoverage float64 `json:"emergency_fund_coverage"`
	DiscretionaryIncome   float64 `json:"discretionary_income"`
	DebtPaymentPercentage float64 `json:"debt_payment_percentage"`
}

// CalculateCashFlowImpact computes the monthly cash position. A negative
// RemainingAfterDebt means the minimums cannot be covered.
func CalculateCashFlowImpact(income, expenses float64, debts []models.Debt, emergencyFund float64) CashFlowImpact {
	totalDebtPayments := totalMinimums(debts)
	remaining := income - expenses - totalDebtPayments

	return CashFlowImpact{
		TotalDebtPayments:     totalDebtPayments,
		RemainingAfterDebt:    remaining,
		EmergencyFundCoverage: safeDiv(emergencyFund, expenses+totalDebtPayments),
		DiscretionaryIncome:   math.Max(0, remaining),
		DebtPaymentPercentage: safeDiv(totalDebtPayments, income) * 100,
	}
}

// FinancialSnapshot is a derived view of a user's monthly cash position.
type FinancialSnapshot struct {
	MonthlyIncome       float64 `json:"monthly_income"`
	MonthlyExpenses     float64 `json:"monthly_expenses"`
	AvailableForDebt    float64 `json:"available_for_debt"`
	EmergencyFund       float64 `json:"emergency_fund"`
	DebtToIncomeRatio   float64 `json:"debt_to_income_ratio"`
	TotalDebt           float64 `json:"total_debt"`
	WeightedAverageRate float64 `json:"weighted_average_rate"`
}

// NewFinancialSnapshot builds a snapshot from raw debts and cash figures.
// AvailableForDebt may be negative to signal a shortfall.
func NewFinancialSnapshot(debts []models.Debt, income, expenses, emergencyFund float64) FinancialSnapshot {
	minimums := totalMinimums(debts)
	total := totalBalance(debts)
	return FinancialSnapshot{
		MonthlyIncome:       income,
		MonthlyExpenses:     expenses,
		AvailableForDebt:    income - expenses - minimums,
		EmergencyFund:       emergencyFund,
		DebtToIncomeRatio:   safeDiv(minimums, income) * 100,
		TotalDebt:           total,
		WeightedAverageRate: weightedAverageRate(debts, total),
	}
}

// ExtraAvailable is the non-negative amount the snapshot can put toward debt
// beyond minimums.
func (s FinancialSnapshot) ExtraAvailable() float64 {
	return math.Max(0, s.AvailableForDebt)
}

func totalMinimums(debts []models.Debt) float64 {
	var sum float64
	for _, d := range debts {
		sum += d.Minimum()
	}
	return sum
}

func totalBalance(debts []models.Debt) float64 {
	var sum float64
	for _, d := range debts {
		sum += d.CurrentBalance
	}
	return sum
}
