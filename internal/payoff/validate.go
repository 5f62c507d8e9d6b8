package payoff

import (
	"fmt"
	"math"

	"debtpilot/internal/models"
)

// ValidateDebt rejects debts the engine cannot meaningfully simulate.
func ValidateDebt(d models.Debt) error {
	if math.IsNaN(d.CurrentBalance) || math.IsInf(d.CurrentBalance, 0) {
		return fmt.Errorf("debt %q: balance is not a finite number", d.CreditorName)
	}
	if d.CurrentBalance < 0 {
		return fmt.Errorf("debt %q: balance %.2f is negative", d.CreditorName, d.CurrentBalance)
	}
	return nil
}

// NormalizeDebt returns a copy of d with negative or non-finite rate and
// minimum payment clamped to 0.
func NormalizeDebt(d models.Debt) models.Debt {
	if d.InterestRate != nil && !finiteNonNegative(*d.InterestRate) {
		zero := 0.0
		d.InterestRate = &zero
	}
	if d.MinimumPayment != nil && !finiteNonNegative(*d.MinimumPayment) {
		zero := 0.0
		d.MinimumPayment = &zero
	}
	return d
}

// PrepareDebts validates and normalizes a portfolio at the engine boundary.
func PrepareDebts(debts []models.Debt) ([]models.Debt, error) {
	out := make([]models.Debt, 0, len(debts))
	for _, d := range debts {
		if err := ValidateDebt(d); err != nil {
			return nil, err
		}
		out = append(out, NormalizeDebt(d))
	}
	return out, nil
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// safeDiv returns a/b, or 0 when b is 0.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
