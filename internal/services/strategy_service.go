package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "debtpilot/internal/errors"
	"debtpilot/internal/models"
	"debtpilot/internal/pagination"
	"debtpilot/internal/payoff"
)

// strategyService persists strategies and guards the single-active invariant.
type strategyService struct {
	db *gorm.DB
}

// NewStrategyService creates a new StrategyServicer.
func NewStrategyService(db *gorm.DB) StrategyServicer {
	return &strategyService{db: db}
}

// SaveStrategy stores a computed plan. With activate set, the new strategy
// replaces the user's active one atomically.
func (s *strategyService) SaveStrategy(userID string, plan payoff.AIDebtStrategy, input FinancialInput, activate bool) (*models.DebtStrategy, error) {
	strategy := newStrategyModel(userID, plan, input)

	if !activate {
		if err := s.db.Create(strategy).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return strategy, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := deactivateAll(tx, userID); err != nil {
			return err
		}
		strategy.IsActive = true
		if err := tx.Create(strategy).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return assertSingleActive(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return strategy, nil
}

// ActivateStrategy makes strategyID the user's only active strategy. The
// strategy must belong to the user; on success exactly one strategy is
// active, otherwise nothing changes.
func (s *strategyService) ActivateStrategy(userID, strategyID string) (*models.DebtStrategy, error) {
	var strategy models.DebtStrategy
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", strategyID, userID).First(&strategy).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrStrategyNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := deactivateAll(tx, userID); err != nil {
			return err
		}
		if err := tx.Model(&strategy).Update("is_active", true).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return assertSingleActive(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	strategy.IsActive = true
	return &strategy, nil
}

// GetActiveStrategy returns the user's active strategy.
func (s *strategyService) GetActiveStrategy(userID string) (*models.DebtStrategy, error) {
	var strategy models.DebtStrategy
	if err := s.db.Where("user_id = ? AND is_active = ?", userID, true).First(&strategy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoActiveStrategy
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &strategy, nil
}

// GetStrategyByID returns a strategy by ID if it belongs to the user.
func (s *strategyService) GetStrategyByID(userID, strategyID string) (*models.DebtStrategy, error) {
	var strategy models.DebtStrategy
	if err := s.db.Where("id = ? AND user_id = ?", strategyID, userID).First(&strategy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStrategyNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &strategy, nil
}

// GetUserStrategies returns a paginated list of the user's strategies, newest first.
func (s *strategyService) GetUserStrategies(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.DebtStrategy], error) {
	result, err := pagination.Find[models.DebtStrategy](
		s.db.Model(&models.DebtStrategy{}).Where("user_id = ?", userID), page, "created_at DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// ListActiveStrategies returns the active strategy of every user.
func (s *strategyService) ListActiveStrategies() ([]models.DebtStrategy, error) {
	var strategies []models.DebtStrategy
	if err := s.db.Where("is_active = ?", true).Order("created_at ASC").Find(&strategies).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return strategies, nil
}

// MarkReviewed records that a strategy was re-evaluated at the given time.
func (s *strategyService) MarkReviewed(strategyID string, at time.Time) error {
	res := s.db.Model(&models.DebtStrategy{}).Where("id = ?", strategyID).Update("last_reviewed_at", at)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrStrategyNotFound
	}
	return nil
}

func deactivateAll(tx *gorm.DB, userID string) error {
	if err := tx.Model(&models.DebtStrategy{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("is_active", false).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// assertSingleActive fails the surrounding transaction unless the user has
// exactly one active strategy.
func assertSingleActive(tx *gorm.DB, userID string) error {
	var count int64
	if err := tx.Model(&models.DebtStrategy{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count != 1 {
		return apperrors.Wrap(apperrors.ErrStrategyInvariant, fmt.Errorf("user %s has %d active strategies", userID, count))
	}
	return nil
}
