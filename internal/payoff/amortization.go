// Package payoff is the debt repayment engine: amortization, portfolio
// statistics, strategy generation, risk scoring, scenario simulation and
// insight narration. Every function is a pure function of its inputs.
package payoff

import (
	"math"

	"debtpilot/internal/models"
)

const (
	// MaxPayoffMonths caps every simulation at 30 years. A payment that does
	// not cover accruing interest would otherwise never terminate.
	MaxPayoffMonths = 360

	// BalanceEpsilon is the balance below which a debt counts as paid off.
	BalanceEpsilon = 0.01
)

// MonthlyPayment is one row of an amortization schedule.
type MonthlyPayment struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// PayoffCalculation is the result of simulating a single debt's payoff.
type PayoffCalculation struct {
	MonthsToPayoff   int              `json:"months_to_payoff"`
	TotalInterest    float64          `json:"total_interest"`
	TotalAmount      float64          `json:"total_amount"`
	RemainingBalance float64          `json:"remaining_balance"`
	PaidOff          bool             `json:"paid_off"`
	Schedule         []MonthlyPayment `json:"schedule"`
}

// NeverPaysOff reports whether the plan hit the month cap with balance left,
// i.e. the payment never retires the debt.
func (p PayoffCalculation) NeverPaysOff() bool {
	return p.MonthsToPayoff >= MaxPayoffMonths && p.RemainingBalance > BalanceEpsilon
}

// monthlyRate converts an annual percentage to a periodic monthly rate.
// Negative or non-finite rates are treated as 0.
func monthlyRate(d models.Debt) float64 {
	rate := d.Rate()
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0
	}
	return rate / 100 / 12
}

// CalculatePayoff simulates month-by-month payoff of debt with
// monthlyPayment+extraPayment applied each period.
func CalculatePayoff(debt models.Debt, monthlyPayment, extraPayment float64) PayoffCalculation {
	rate := monthlyRate(debt)
	total := monthlyPayment + extraPayment
	balance := debt.CurrentBalance

	var totalInterest float64
	schedule := make([]MonthlyPayment, 0)
	month := 0
	for balance > BalanceEpsilon && month < MaxPayoffMonths {
		month++
		interest := balance * rate
		principal := math.Min(total-interest, balance)
		balance -= principal
		totalInterest += interest

		schedule = append(schedule, MonthlyPayment{
			Month:            month,
			Payment:          principal + interest,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: math.Max(balance, 0),
		})
	}

	return PayoffCalculation{
		MonthsToPayoff:   month,
		TotalInterest:    totalInterest,
		TotalAmount:      debt.CurrentBalance + totalInterest,
		RemainingBalance: math.Max(balance, 0),
		PaidOff:          balance <= BalanceEpsilon,
		Schedule:         schedule,
	}
}
