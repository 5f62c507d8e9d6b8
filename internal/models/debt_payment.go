package models

import "time"

// DebtPayment is an append-only ledger entry for a payment applied to a Debt.
// Principal + Interest always equals Amount.
type DebtPayment struct {
	Base
	UserID           string    `gorm:"not null;index" json:"user_id"`
	DebtID           string    `gorm:"type:uuid;not null;index" json:"debt_id"`
	PaymentDate      time.Time `gorm:"not null" json:"payment_date"`
	Amount           float64   `gorm:"not null" json:"amount"`
	Principal        float64   `gorm:"not null" json:"principal"`
	Interest         float64   `gorm:"not null" json:"interest"`
	RemainingBalance float64   `gorm:"not null" json:"remaining_balance"`
	IsExtra          bool      `gorm:"default:false" json:"is_extra"`

	// Relationships
	Debt *Debt `gorm:"foreignKey:DebtID" json:"debt,omitempty"`
}
