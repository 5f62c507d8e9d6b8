package services

import (
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "debtpilot/internal/errors"
	"debtpilot/internal/models"
	"debtpilot/internal/pagination"
)

// paymentService handles payments applied to debts.
type paymentService struct {
	db          *gorm.DB
	debtService DebtServicer
}

// NewPaymentService creates a new PaymentServicer.
func NewPaymentService(db *gorm.DB, debtService DebtServicer) PaymentServicer {
	return &paymentService{
		db:          db,
		debtService: debtService,
	}
}

// PaymentSplit is a payment divided into interest and principal, in cents.
type PaymentSplit struct {
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Remaining decimal.Decimal
}

// SplitPayment applies one month of interest to balance and splits amount
// into interest and principal. Principal + Interest equals the rounded
// amount exactly; a payment below the interest yields negative principal
// and a growing balance.
func SplitPayment(balance, annualRate, amount float64) PaymentSplit {
	if annualRate < 0 || math.IsNaN(annualRate) {
		annualRate = 0
	}
	bal := decimal.NewFromFloat(balance).Round(2)
	amt := decimal.NewFromFloat(amount).Round(2)
	interest := bal.Mul(decimal.NewFromFloat(annualRate)).Div(decimal.NewFromInt(1200)).Round(2)
	principal := amt.Sub(interest)

	remaining := bal.Sub(principal)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return PaymentSplit{Principal: principal, Interest: interest, Remaining: remaining}
}

// RecordPayment appends a payment to the ledger and updates the debt balance
// in a single transaction. isExtra defaults to amount > minimum payment.
func (s *paymentService) RecordPayment(userID, debtID string, amount float64, date time.Time, isExtra *bool) (*models.DebtPayment, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, apperrors.ErrInvalidPayment
	}
	if date.IsZero() {
		date = time.Now()
	}

	var result *models.DebtPayment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var debt models.Debt
		if err := tx.Where("id = ? AND user_id = ?", debtID, userID).First(&debt).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrDebtNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if !debt.IsActive {
			return apperrors.ErrDebtInactive
		}

		split := SplitPayment(debt.CurrentBalance, debt.Rate(), amount)
		extra := amount > debt.Minimum()
		if isExtra != nil {
			extra = *isExtra
		}

		payment := &models.DebtPayment{
			UserID:           userID,
			DebtID:           debt.ID,
			PaymentDate:      date,
			Amount:           split.Principal.Add(split.Interest).InexactFloat64(),
			Principal:        split.Principal.InexactFloat64(),
			Interest:         split.Interest.InexactFloat64(),
			RemainingBalance: split.Remaining.InexactFloat64(),
			IsExtra:          extra,
		}
		if err := tx.Create(payment).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Model(&debt).Update("current_balance", payment.RemainingBalance).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		result = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetDebtPayments returns a paginated payment history for a debt, most recent first.
func (s *paymentService) GetDebtPayments(userID, debtID string, page pagination.PageRequest) (*pagination.PageResponse[models.DebtPayment], error) {
	if _, err := s.debtService.GetDebtByID(userID, debtID); err != nil {
		return nil, err
	}
	base := s.db.Model(&models.DebtPayment{}).Where("debt_id = ? AND user_id = ?", debtID, userID)

	result, err := pagination.Find[models.DebtPayment](base, page, "payment_date DESC, created_at DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}
