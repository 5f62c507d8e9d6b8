package models

import (
	"time"

	"gorm.io/datatypes"
)

// StrategyPriority is the persisted form of one ranked debt in a strategy.
type StrategyPriority struct {
	DebtID          string  `json:"debt_id"`
	CreditorName    string  `json:"creditor_name"`
	Priority        int     `json:"priority"`
	Reasoning       string  `json:"reasoning"`
	MonthlyPayment  float64 `json:"monthly_payment"`
	ExtraPayment    float64 `json:"extra_payment"`
	ProjectedPayoff string  `json:"projected_payoff"`
	MonthsToPayoff  int     `json:"months_to_payoff"`
	TotalInterest   float64 `json:"total_interest"`
	NeverPaysOff    bool    `json:"never_pays_off"`
	Score           float64 `json:"score,omitempty"`
}

// StrategyRecommendation is the persisted form of a ranked recommendation.
type StrategyRecommendation struct {
	Type            string  `json:"type"`
	Action          string  `json:"action"`
	EstimatedImpact float64 `json:"estimated_impact"`
	Effort          string  `json:"effort"`
	Priority        int     `json:"priority"`
}

// AdjustmentTriggers holds the thresholds that signal a plan should be recomputed.
type AdjustmentTriggers struct {
	IncomeChangePercent  float64 `json:"income_change_percent"`
	ExpenseChangePercent float64 `json:"expense_change_percent"`
	TimeBasedDays        int     `json:"time_based_days"`
}

// DebtStrategy is a named, persisted repayment plan.
// At most one strategy per user has IsActive set.
type DebtStrategy struct {
	Base
	UserID             string                                       `gorm:"not null;index" json:"user_id"`
	Name               string                                       `gorm:"not null" json:"name"`
	Heuristic          string                                       `gorm:"not null" json:"heuristic"`
	Source             string                                       `gorm:"not null;default:'fallback'" json:"source"`
	Methodology        string                                       `json:"methodology"`
	DebtOrder          datatypes.JSONType[[]StrategyPriority]       `json:"debt_order"`
	TotalInterestSaved float64                                      `json:"total_interest_saved"`
	MonthsReduced      int                                          `json:"months_reduced"`
	CashFlowImpact     float64                                      `json:"cash_flow_impact"`
	RiskScore          float64                                      `json:"risk_score"`
	Recommendations    datatypes.JSONType[[]StrategyRecommendation] `json:"recommendations"`
	AdjustmentTriggers datatypes.JSONType[AdjustmentTriggers]       `json:"adjustment_triggers"`
	IsActive           bool                                         `gorm:"default:false;index" json:"is_active"`
	DebtFreeDate       string                                       `json:"projected_debt_free_date,omitempty"`

	// Financial inputs the plan was computed from
	MonthlyIncome   float64    `json:"monthly_income"`
	MonthlyExpenses float64    `json:"monthly_expenses"`
	EmergencyFund   float64    `json:"emergency_fund"`
	ExtraPayment    float64    `json:"extra_payment"`
	LastReviewedAt  *time.Time `json:"last_reviewed_at,omitempty"`
}
