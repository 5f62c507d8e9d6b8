package models

// DebtType enumerates the supported kinds of liabilities.
type DebtType string

const (
	DebtTypeCreditCard   DebtType = "credit_card"
	DebtTypePersonalLoan DebtType = "personal_loan"
	DebtTypeStudentLoan  DebtType = "student_loan"
	DebtTypeMortgage     DebtType = "mortgage"
	DebtTypeAutoLoan     DebtType = "auto_loan"
	DebtTypeMedical      DebtType = "medical"
	DebtTypeBusiness     DebtType = "business"
	DebtTypeFamily       DebtType = "family"
	DebtTypeOther        DebtType = "other"
)

// DebtTypes lists every valid DebtType.
var DebtTypes = []DebtType{
	DebtTypeCreditCard, DebtTypePersonalLoan, DebtTypeStudentLoan, DebtTypeMortgage,
	DebtTypeAutoLoan, DebtTypeMedical, DebtTypeBusiness, DebtTypeFamily, DebtTypeOther,
}

// Valid reports whether t is one of the known debt types.
func (t DebtType) Valid() bool {
	for _, known := range DebtTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Debt represents a single liability owned by a user.
// Debts are never hard-deleted; deactivation flips IsActive.
type Debt struct {
	Base
	UserID         string   `gorm:"not null;index" json:"user_id"`
	CreditorName   string   `gorm:"not null" json:"creditor_name"`
	DebtType       DebtType `gorm:"not null" json:"debt_type"`
	OriginalAmount *float64 `json:"original_amount,omitempty"`
	CurrentBalance float64  `gorm:"not null;default:0" json:"current_balance"`
	InterestRate   *float64 `json:"interest_rate,omitempty"` // annual percentage
	MinimumPayment *float64 `json:"minimum_payment,omitempty"`
	DueDay         *int     `json:"due_day,omitempty"`
	CreditLimit    *float64 `json:"credit_limit,omitempty"`
	IsActive       bool     `gorm:"default:true" json:"is_active"`
}

// Rate returns the annual interest rate in percent, or 0 when unset.
func (d Debt) Rate() float64 {
	if d.InterestRate == nil {
		return 0
	}
	return *d.InterestRate
}

// Minimum returns the minimum monthly payment, or 0 when unset.
func (d Debt) Minimum() float64 {
	if d.MinimumPayment == nil {
		return 0
	}
	return *d.MinimumPayment
}

// Utilization returns balance/limit for credit cards with a known limit.
func (d Debt) Utilization() (float64, bool) {
	if d.DebtType != DebtTypeCreditCard || d.CreditLimit == nil || *d.CreditLimit <= 0 {
		return 0, false
	}
	return d.CurrentBalance / *d.CreditLimit, true
}
