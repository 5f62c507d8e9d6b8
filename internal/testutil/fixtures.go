package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"debtpilot/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewUserID returns a unique user id. Users live in the auth provider, so
// there is no users table to insert into.
func NewUserID() string {
	return fmt.Sprintf("user-%d", nextID())
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// CreateTestDebt creates an active personal loan with the given balance,
// annual rate and minimum payment.
func CreateTestDebt(t *testing.T, db *gorm.DB, userID string, balance, rate, minimum float64) *models.Debt {
	t.Helper()

	debt := &models.Debt{
		UserID:         userID,
		CreditorName:   fmt.Sprintf("Creditor %d", nextID()),
		DebtType:       models.DebtTypePersonalLoan,
		OriginalAmount: Float(balance),
		CurrentBalance: balance,
		InterestRate:   Float(rate),
		MinimumPayment: Float(minimum),
		IsActive:       true,
	}
	if err := db.Create(debt).Error; err != nil {
		t.Fatalf("failed to create test debt: %v", err)
	}
	return debt
}

// CreateTestCreditCard creates an active credit card debt with a limit.
func CreateTestCreditCard(t *testing.T, db *gorm.DB, userID string, balance, rate, minimum, limit float64) *models.Debt {
	t.Helper()

	debt := &models.Debt{
		UserID:         userID,
		CreditorName:   fmt.Sprintf("Card %d", nextID()),
		DebtType:       models.DebtTypeCreditCard,
		CurrentBalance: balance,
		InterestRate:   Float(rate),
		MinimumPayment: Float(minimum),
		CreditLimit:    Float(limit),
		IsActive:       true,
	}
	if err := db.Create(debt).Error; err != nil {
		t.Fatalf("failed to create test credit card: %v", err)
	}
	return debt
}

// CreateInactiveTestDebt creates a debt and deactivates it.
func CreateInactiveTestDebt(t *testing.T, db *gorm.DB, userID string, balance float64) *models.Debt {
	t.Helper()

	debt := CreateTestDebt(t, db, userID, balance, 10, 50)
	if err := db.Model(debt).Update("is_active", false).Error; err != nil {
		t.Fatalf("failed to deactivate test debt: %v", err)
	}
	debt.IsActive = false
	return debt
}

// CreateTestPayment records a ledger entry without touching the debt balance.
func CreateTestPayment(t *testing.T, db *gorm.DB, debt *models.Debt, amount float64, date time.Time) *models.DebtPayment {
	t.Helper()

	payment := &models.DebtPayment{
		UserID:           debt.UserID,
		DebtID:           debt.ID,
		PaymentDate:      date,
		Amount:           amount,
		Principal:        amount,
		RemainingBalance: debt.CurrentBalance - amount,
	}
	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("failed to create test payment: %v", err)
	}
	return payment
}

// CreateTestStrategy stores a minimal strategy for the user.
func CreateTestStrategy(t *testing.T, db *gorm.DB, userID string, active bool) *models.DebtStrategy {
	t.Helper()

	strategy := &models.DebtStrategy{
		UserID:          userID,
		Name:            fmt.Sprintf("Strategy %d", nextID()),
		Heuristic:       "avalanche",
		Source:          "fallback",
		DebtOrder:       datatypes.NewJSONType([]models.StrategyPriority{}),
		Recommendations: datatypes.NewJSONType([]models.StrategyRecommendation{}),
		AdjustmentTriggers: datatypes.NewJSONType(models.AdjustmentTriggers{
			IncomeChangePercent:  10,
			ExpenseChangePercent: 15,
			TimeBasedDays:        30,
		}),
		IsActive:        active,
		MonthlyIncome:   5000,
		MonthlyExpenses: 3000,
	}
	if err := db.Create(strategy).Error; err != nil {
		t.Fatalf("failed to create test strategy: %v", err)
	}
	return strategy
}
