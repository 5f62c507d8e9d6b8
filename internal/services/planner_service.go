package services

import (
	"context"
	"math"
	"time"

	apperrors "debtpilot/internal/errors"
	"debtpilot/internal/models"
	"debtpilot/internal/payoff"
)

// plannerService runs the repayment engine over stored debts.
type plannerService struct {
	debtService     DebtServicer
	strategyService StrategyServicer
	optimizer       *payoff.Optimizer
	narrator        *payoff.Narrator
	now             func() time.Time
}

// NewPlannerService creates a new PlannerServicer.
func NewPlannerService(debtService DebtServicer, strategyService StrategyServicer, optimizer *payoff.Optimizer, narrator *payoff.Narrator) PlannerServicer {
	return &plannerService{
		debtService:     debtService,
		strategyService: strategyService,
		optimizer:       optimizer,
		narrator:        narrator,
		now:             time.Now,
	}
}

// GetSummary computes portfolio statistics over the user's active debts.
func (s *plannerService) GetSummary(userID string, monthlyIncome float64) (*payoff.DebtSummary, error) {
	if !validAmount(monthlyIncome) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly income must be a non-negative number")
	}
	debts, err := s.activeDebts(userID)
	if err != nil {
		return nil, err
	}
	summary := payoff.CalculateDebtSummary(debts, monthlyIncome, s.now())
	return &summary, nil
}

// GetCashFlow computes the monthly cash position against active debts.
func (s *plannerService) GetCashFlow(userID string, input FinancialInput) (*payoff.CashFlowImpact, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	debts, err := s.activeDebts(userID)
	if err != nil {
		return nil, err
	}
	impact := payoff.CalculateCashFlowImpact(input.MonthlyIncome, input.MonthlyExpenses, debts, input.EmergencyFund)
	return &impact, nil
}

// CalculateDebtPayoff simulates a single debt. A zero monthlyPayment means
// the debt's minimum payment.
func (s *plannerService) CalculateDebtPayoff(userID, debtID string, monthlyPayment, extraPayment float64) (*payoff.PayoffCalculation, error) {
	if !validAmount(monthlyPayment) || !validAmount(extraPayment) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "payments must be non-negative numbers")
	}
	debt, err := s.debtService.GetDebtByID(userID, debtID)
	if err != nil {
		return nil, err
	}
	normalized := payoff.NormalizeDebt(*debt)
	if monthlyPayment == 0 {
		monthlyPayment = normalized.Minimum()
	}
	calc := payoff.CalculatePayoff(normalized, monthlyPayment, extraPayment)
	return &calc, nil
}

// GenerateStrategy computes a plan with the given heuristic. The optimized
// heuristic goes through the optimizer and may use the text generator.
func (s *plannerService) GenerateStrategy(ctx context.Context, userID string, heuristic payoff.Heuristic, input FinancialInput) (*payoff.AIDebtStrategy, error) {
	if heuristic == "" {
		heuristic = payoff.HeuristicOptimized
	}
	if !heuristic.Valid() {
		return nil, apperrors.ErrInvalidHeuristic
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	debts, err := s.activeDebts(userID)
	if err != nil {
		return nil, err
	}
	if len(debts) == 0 {
		return nil, apperrors.ErrNoActiveDebts
	}

	plan := s.generate(ctx, heuristic, debts, input)
	return &plan, nil
}

// SimulateScenarios runs what-if assumptions against a stored strategy.
func (s *plannerService) SimulateScenarios(userID, strategyID string, assumptions []payoff.ScenarioAssumptions) ([]payoff.ScenarioSimulation, error) {
	if err := validateAssumptions(assumptions); err != nil {
		return nil, err
	}
	strategy, err := s.strategyService.GetStrategyByID(userID, strategyID)
	if err != nil {
		return nil, err
	}
	debts, err := s.activeDebts(userID)
	if err != nil {
		return nil, err
	}
	if len(assumptions) == 0 {
		assumptions = payoff.DefaultScenarioAssumptions()
	}
	return payoff.SimulateScenarios(debts, PlanFromStrategy(*strategy), assumptions, s.now()), nil
}

// GenerateInsight narrates a stored strategy. An empty context means general.
func (s *plannerService) GenerateInsight(userID, strategyID string, insightContext payoff.InsightContext) (string, error) {
	if insightContext == "" {
		insightContext = payoff.InsightGeneral
	}
	if !insightContext.Valid() {
		return "", apperrors.ErrInvalidInsightContext
	}
	strategy, err := s.strategyService.GetStrategyByID(userID, strategyID)
	if err != nil {
		return "", err
	}
	debts, err := s.activeDebts(userID)
	if err != nil {
		return "", err
	}
	return s.narrator.GenerateInsight(debts, PlanFromStrategy(*strategy), insightContext), nil
}

// CheckAdjustment compares the active strategy's inputs with the current
// financial position.
func (s *plannerService) CheckAdjustment(userID string, input FinancialInput) (*AdjustmentCheck, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	strategy, err := s.strategyService.GetActiveStrategy(userID)
	if err != nil {
		return nil, err
	}
	debts, err := s.activeDebts(userID)
	if err != nil {
		return nil, err
	}

	reasons := adjustmentReasons(*strategy, debts, input, s.now())
	return &AdjustmentCheck{
		StrategyID:   strategy.ID,
		ShouldAdjust: len(reasons) > 0,
		Reasons:      reasons,
	}, nil
}

// RefreshStrategy recomputes a strategy from its stored inputs and the
// user's current debts, activating the result. When the user has no active
// debts left the strategy is only marked reviewed.
func (s *plannerService) RefreshStrategy(ctx context.Context, strategy models.DebtStrategy) (*models.DebtStrategy, error) {
	debts, err := s.activeDebts(strategy.UserID)
	if err != nil {
		return nil, err
	}
	if len(debts) == 0 {
		if err := s.strategyService.MarkReviewed(strategy.ID, s.now()); err != nil {
			return nil, err
		}
		return &strategy, nil
	}

	input := inputOf(strategy)
	heuristic := payoff.Heuristic(strategy.Heuristic)
	if !heuristic.Valid() {
		heuristic = payoff.HeuristicOptimized
	}
	plan := s.generate(ctx, heuristic, debts, input)
	return s.strategyService.SaveStrategy(strategy.UserID, plan, input, true)
}

func (s *plannerService) generate(ctx context.Context, heuristic payoff.Heuristic, debts []models.Debt, input FinancialInput) payoff.AIDebtStrategy {
	snapshot := payoff.NewFinancialSnapshot(debts, input.MonthlyIncome, input.MonthlyExpenses, input.EmergencyFund)
	if heuristic == payoff.HeuristicOptimized {
		return s.optimizer.GenerateOptimalStrategyAt(ctx, debts, snapshot, s.now())
	}
	return payoff.GenerateStrategy(heuristic, debts, snapshot, s.optimizer.Weights(), s.now())
}

// activeDebts loads and prepares the user's active debts for the engine.
func (s *plannerService) activeDebts(userID string) ([]models.Debt, error) {
	debts, err := s.debtService.GetActiveDebts(userID)
	if err != nil {
		return nil, err
	}
	prepared, err := payoff.PrepareDebts(debts)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.WithMessage(apperrors.ErrInvalidDebt, err.Error()), err)
	}
	return prepared, nil
}

// adjustmentReasons evaluates a strategy's triggers against the current input.
func adjustmentReasons(strategy models.DebtStrategy, debts []models.Debt, current FinancialInput, asOf time.Time) []string {
	stored := inputOf(strategy)
	previous := payoff.NewFinancialSnapshot(debts, stored.MonthlyIncome, stored.MonthlyExpenses, stored.EmergencyFund)
	now := payoff.NewFinancialSnapshot(debts, current.MonthlyIncome, current.MonthlyExpenses, current.EmergencyFund)
	return payoff.ShouldAdjust(strategy.AdjustmentTriggers.Data(), previous, now, ComputedAt(strategy), asOf)
}

// ComputedAt is when a strategy was last computed or reviewed.
func ComputedAt(strategy models.DebtStrategy) time.Time {
	if strategy.LastReviewedAt != nil && strategy.LastReviewedAt.After(strategy.CreatedAt) {
		return *strategy.LastReviewedAt
	}
	return strategy.CreatedAt
}

func validateInput(input FinancialInput) error {
	if !validAmount(input.MonthlyIncome) || !validAmount(input.MonthlyExpenses) || !validAmount(input.EmergencyFund) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "income, expenses and emergency fund must be non-negative numbers")
	}
	return nil
}

// validateAssumptions rejects what-ifs that would drive payments negative.
func validateAssumptions(assumptions []payoff.ScenarioAssumptions) error {
	for _, a := range assumptions {
		if !finite(a.IncomeChangePercent) || a.IncomeChangePercent <= -100 {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "income change must be greater than -100 percent")
		}
		if !finite(a.ExpenseChangePercent) {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "expense change must be a number")
		}
		if a.InterestRateChange != nil && !finite(*a.InterestRateChange) {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "interest rate change must be a number")
		}
		if !validAmount(a.MonthlyExtraPayment) {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly extra payment must be a non-negative number")
		}
		for _, e := range a.UnexpectedExpenses {
			if !validAmount(e) {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "unexpected expenses must be non-negative numbers")
			}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validAmount(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
