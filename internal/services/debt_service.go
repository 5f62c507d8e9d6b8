package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "debtpilot/internal/errors"
	"debtpilot/internal/models"
	"debtpilot/internal/pagination"
	"debtpilot/internal/payoff"
)

// debtService handles debt-related business logic.
type debtService struct {
	db *gorm.DB
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(db *gorm.DB) DebtServicer {
	return &debtService{db: db}
}

// CreateDebt validates and stores a new active debt.
func (s *debtService) CreateDebt(userID string, input DebtInput) (*models.Debt, error) {
	name := strings.TrimSpace(input.CreditorName)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "creditor name is required")
	}
	if !input.DebtType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidDebt, "unsupported debt type")
	}

	debt := &models.Debt{
		UserID:         userID,
		CreditorName:   name,
		DebtType:       input.DebtType,
		OriginalAmount: input.OriginalAmount,
		CurrentBalance: input.CurrentBalance,
		InterestRate:   input.InterestRate,
		MinimumPayment: input.MinimumPayment,
		DueDay:         input.DueDay,
		CreditLimit:    input.CreditLimit,
		IsActive:       true,
	}
	if debt.OriginalAmount == nil {
		original := input.CurrentBalance
		debt.OriginalAmount = &original
	}
	if err := validateDebt(debt); err != nil {
		return nil, err
	}

	if err := s.db.Create(debt).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return debt, nil
}

// GetUserDebts returns a paginated list of the user's debts, newest first.
func (s *debtService) GetUserDebts(userID string, page pagination.PageRequest, includeInactive bool) (*pagination.PageResponse[models.Debt], error) {
	base := s.db.Model(&models.Debt{}).Where("user_id = ?", userID)
	if !includeInactive {
		base = base.Where("is_active = ?", true)
	}

	result, err := pagination.Find[models.Debt](base, page, "created_at DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// GetDebtByID returns a debt by ID if it belongs to the user.
func (s *debtService) GetDebtByID(userID, debtID string) (*models.Debt, error) {
	var debt models.Debt
	if err := s.db.Where("id = ? AND user_id = ?", debtID, userID).First(&debt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDebtNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &debt, nil
}

// UpdateDebt applies the non-nil fields of update to an active debt.
func (s *debtService) UpdateDebt(userID, debtID string, update DebtUpdate) (*models.Debt, error) {
	debt, err := s.GetDebtByID(userID, debtID)
	if err != nil {
		return nil, err
	}
	if !debt.IsActive {
		return nil, apperrors.ErrDebtInactive
	}

	if update.CreditorName != nil {
		name := strings.TrimSpace(*update.CreditorName)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "creditor name cannot be empty")
		}
		debt.CreditorName = name
	}
	if update.DebtType != nil {
		if !update.DebtType.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidDebt, "unsupported debt type")
		}
		debt.DebtType = *update.DebtType
	}
	if update.CurrentBalance != nil {
		debt.CurrentBalance = *update.CurrentBalance
	}
	if update.InterestRate != nil {
		debt.InterestRate = update.InterestRate
	}
	if update.MinimumPayment != nil {
		debt.MinimumPayment = update.MinimumPayment
	}
	if update.DueDay != nil {
		debt.DueDay = update.DueDay
	}
	if update.CreditLimit != nil {
		debt.CreditLimit = update.CreditLimit
	}
	if err := validateDebt(debt); err != nil {
		return nil, err
	}

	if err := s.db.Save(debt).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return debt, nil
}

// DeactivateDebt marks a debt inactive. Debts are never hard-deleted so
// their payment history stays intact.
func (s *debtService) DeactivateDebt(userID, debtID string) error {
	debt, err := s.GetDebtByID(userID, debtID)
	if err != nil {
		return err
	}
	if !debt.IsActive {
		return nil
	}

	if err := s.db.Model(debt).Update("is_active", false).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetActiveDebts returns every active debt of the user in creation order.
func (s *debtService) GetActiveDebts(userID string) ([]models.Debt, error) {
	var debts []models.Debt
	if err := s.db.Where("user_id = ? AND is_active = ?", userID, true).Order("created_at ASC").Find(&debts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return debts, nil
}

// validateDebt rejects values the engine cannot simulate and values that
// make no sense for a stored debt.
func validateDebt(d *models.Debt) error {
	if err := payoff.ValidateDebt(*d); err != nil {
		return apperrors.Wrap(apperrors.WithMessage(apperrors.ErrInvalidDebt, err.Error()), err)
	}
	if d.InterestRate != nil && *d.InterestRate < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidDebt, "interest rate cannot be negative")
	}
	if d.MinimumPayment != nil && *d.MinimumPayment < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidDebt, "minimum payment cannot be negative")
	}
	if d.CreditLimit != nil && *d.CreditLimit < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidDebt, "credit limit cannot be negative")
	}
	if d.DueDay != nil && (*d.DueDay < 1 || *d.DueDay > 31) {
		return apperrors.WithMessage(apperrors.ErrInvalidDebt, "due day must be between 1 and 31")
	}
	return nil
}
