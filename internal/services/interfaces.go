package services

import (
	"context"
	"time"

	"debtpilot/internal/models"
	"debtpilot/internal/pagination"
	"debtpilot/internal/payoff"
)

// DebtInput holds the fields of a new debt.
type DebtInput struct {
	CreditorName   string
	DebtType       models.DebtType
	OriginalAmount *float64
	CurrentBalance float64
	InterestRate   *float64
	MinimumPayment *float64
	DueDay         *int
	CreditLimit    *float64
}

// DebtUpdate holds optional debt changes; nil fields are left untouched.
type DebtUpdate struct {
	CreditorName   *string
	DebtType       *models.DebtType
	CurrentBalance *float64
	InterestRate   *float64
	MinimumPayment *float64
	DueDay         *int
	CreditLimit    *float64
}

// DebtServicer defines the contract for debt-related business logic.
type DebtServicer interface {
	CreateDebt(userID string, input DebtInput) (*models.Debt, error)
	GetUserDebts(userID string, page pagination.PageRequest, includeInactive bool) (*pagination.PageResponse[models.Debt], error)
	GetDebtByID(userID, debtID string) (*models.Debt, error)
	UpdateDebt(userID, debtID string, update DebtUpdate) (*models.Debt, error)
	DeactivateDebt(userID, debtID string) error
	GetActiveDebts(userID string) ([]models.Debt, error)
}

// PaymentServicer defines the contract for recording payments against debts.
type PaymentServicer interface {
	RecordPayment(userID, debtID string, amount float64, date time.Time, isExtra *bool) (*models.DebtPayment, error)
	GetDebtPayments(userID, debtID string, page pagination.PageRequest) (*pagination.PageResponse[models.DebtPayment], error)
}

// FinancialInput is the monthly cash position a plan is computed from.
type FinancialInput struct {
	MonthlyIncome   float64 `json:"monthly_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	EmergencyFund   float64 `json:"emergency_fund"`
}

// StrategyServicer defines the contract for persisted strategies.
type StrategyServicer interface {
	SaveStrategy(userID string, plan payoff.AIDebtStrategy, input FinancialInput, activate bool) (*models.DebtStrategy, error)
	ActivateStrategy(userID, strategyID string) (*models.DebtStrategy, error)
	GetActiveStrategy(userID string) (*models.DebtStrategy, error)
	GetStrategyByID(userID, strategyID string) (*models.DebtStrategy, error)
	GetUserStrategies(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.DebtStrategy], error)
	ListActiveStrategies() ([]models.DebtStrategy, error)
	MarkReviewed(strategyID string, at time.Time) error
}

// AdjustmentCheck reports whether the active strategy should be recomputed.
type AdjustmentCheck struct {
	StrategyID   string   `json:"strategy_id"`
	ShouldAdjust bool     `json:"should_adjust"`
	Reasons      []string `json:"reasons"`
}

// PlannerServicer runs the repayment engine over a user's stored debts.
type PlannerServicer interface {
	GetSummary(userID string, monthlyIncome float64) (*payoff.DebtSummary, error)
	GetCashFlow(userID string, input FinancialInput) (*payoff.CashFlowImpact, error)
	CalculateDebtPayoff(userID, debtID string, monthlyPayment, extraPayment float64) (*payoff.PayoffCalculation, error)
	GenerateStrategy(ctx context.Context, userID string, heuristic payoff.Heuristic, input FinancialInput) (*payoff.AIDebtStrategy, error)
	SimulateScenarios(userID, strategyID string, assumptions []payoff.ScenarioAssumptions) ([]payoff.ScenarioSimulation, error)
	GenerateInsight(userID, strategyID string, insightContext payoff.InsightContext) (string, error)
	CheckAdjustment(userID string, input FinancialInput) (*AdjustmentCheck, error)
	RefreshStrategy(ctx context.Context, strategy models.DebtStrategy) (*models.DebtStrategy, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID string, action models.AuditAction, resource models.AuditResource, resourceID, ipAddress string, changes map[string]any)
}
