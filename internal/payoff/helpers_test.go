package payoff

import (
	"math"
	"testing"
	"time"

	"debtpilot/internal/models"
)

var testNow = time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func newDebt(id, name string, balance, rate, minimum float64) models.Debt {
	return models.Debt{
		Base:           models.Base{ID: id},
		UserID:         "user-1",
		CreditorName:   name,
		DebtType:       models.DebtTypePersonalLoan,
		CurrentBalance: balance,
		InterestRate:   ptr(rate),
		MinimumPayment: ptr(minimum),
		IsActive:       true,
	}
}

func newCreditCard(id, name string, balance, rate, minimum, limit float64) models.Debt {
	d := newDebt(id, name, balance, rate, minimum)
	d.DebtType = models.DebtTypeCreditCard
	d.CreditLimit = ptr(limit)
	return d
}

// samplePortfolio has a high-rate small debt, a low-rate large debt and a
// smallest-balance debt with the lowest rate, so avalanche and snowball differ.
func samplePortfolio() []models.Debt {
	return []models.Debt{
		newDebt("a", "Card A", 1000, 25, 50),
		newDebt("b", "Loan B", 10000, 10, 200),
		newDebt("c", "Medical C", 300, 5, 25),
	}
}

func assertApprox(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: expected %.4f (±%g), got %.4f", name, want, tol, got)
	}
}
