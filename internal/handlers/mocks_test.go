package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"debtpilot/internal/middleware"
	"debtpilot/internal/models"
	"debtpilot/internal/pagination"
	"debtpilot/internal/payoff"
	"debtpilot/internal/scheduler"
	"debtpilot/internal/services"
	"debtpilot/internal/uuid"
	"debtpilot/internal/validator"
)

// --- mock debt service ---

type mockDebtService struct {
	createDebtFn     func(userID string, input services.DebtInput) (*models.Debt, error)
	getUserDebtsFn   func(userID string, page pagination.PageRequest, includeInactive bool) (*pagination.PageResponse[models.Debt], error)
	getDebtByIDFn    func(userID, debtID string) (*models.Debt, error)
	updateDebtFn     func(userID, debtID string, update services.DebtUpdate) (*models.Debt, error)
	deactivateDebtFn func(userID, debtID string) error
}

func (m *mockDebtService) CreateDebt(userID string, input services.DebtInput) (*models.Debt, error) {
	if m.createDebtFn != nil {
		return m.createDebtFn(userID, input)
	}
	return &models.Debt{}, nil
}

func (m *mockDebtService) GetUserDebts(userID string, page pagination.PageRequest, includeInactive bool) (*pagination.PageResponse[models.Debt], error) {
	if m.getUserDebtsFn != nil {
		return m.getUserDebtsFn(userID, page, includeInactive)
	}
	resp := pagination.NewPageResponse([]models.Debt{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockDebtService) GetDebtByID(userID, debtID string) (*models.Debt, error) {
	if m.getDebtByIDFn != nil {
		return m.getDebtByIDFn(userID, debtID)
	}
	return &models.Debt{}, nil
}

func (m *mockDebtService) UpdateDebt(userID, debtID string, update services.DebtUpdate) (*models.Debt, error) {
	if m.updateDebtFn != nil {
		return m.updateDebtFn(userID, debtID, update)
	}
	return &models.Debt{}, nil
}

func (m *mockDebtService) DeactivateDebt(userID, debtID string) error {
	if m.deactivateDebtFn != nil {
		return m.deactivateDebtFn(userID, debtID)
	}
	return nil
}

func (m *mockDebtService) GetActiveDebts(string) ([]models.Debt, error) {
	return nil, nil
}

var _ services.DebtServicer = (*mockDebtService)(nil)

// --- mock payment service ---

type mockPaymentService struct {
	recordPaymentFn   func(userID, debtID string, amount float64, date time.Time, isExtra *bool) (*models.DebtPayment, error)
	getDebtPaymentsFn func(userID, debtID string, page pagination.PageRequest) (*pagination.PageResponse[models.DebtPayment], error)
}

func (m *mockPaymentService) RecordPayment(userID, debtID string, amount float64, date time.Time, isExtra *bool) (*models.DebtPayment, error) {
	if m.recordPaymentFn != nil {
		return m.recordPaymentFn(userID, debtID, amount, date, isExtra)
	}
	return &models.DebtPayment{}, nil
}

func (m *mockPaymentService) GetDebtPayments(userID, debtID string, page pagination.PageRequest) (*pagination.PageResponse[models.DebtPayment], error) {
	if m.getDebtPaymentsFn != nil {
		return m.getDebtPaymentsFn(userID, debtID, page)
	}
	resp := pagination.NewPageResponse([]models.DebtPayment{}, 1, 20, 0)
	return &resp, nil
}

var _ services.PaymentServicer = (*mockPaymentService)(nil)

// --- mock strategy service ---

type mockStrategyService struct {
	saveStrategyFn      func(userID string, plan payoff.AIDebtStrategy, input services.FinancialInput, activate bool) (*models.DebtStrategy, error)
	activateStrategyFn  func(userID, strategyID string) (*models.DebtStrategy, error)
	getActiveStrategyFn func(userID string) (*models.DebtStrategy, error)
	getStrategyByIDFn   func(userID, strategyID string) (*models.DebtStrategy, error)
	getUserStrategiesFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.DebtStrategy], error)
}

func (m *mockStrategyService) SaveStrategy(userID string, plan payoff.AIDebtStrategy, input services.FinancialInput, activate bool) (*models.DebtStrategy, error) {
	if m.saveStrategyFn != nil {
		return m.saveStrategyFn(userID, plan, input, activate)
	}
	return &models.DebtStrategy{}, nil
}

func (m *mockStrategyService) ActivateStrategy(userID, strategyID string) (*models.DebtStrategy, error) {
	if m.activateStrategyFn != nil {
		return m.activateStrategyFn(userID, strategyID)
	}
	return &models.DebtStrategy{}, nil
}

func (m *mockStrategyService) GetActiveStrategy(userID string) (*models.DebtStrategy, error) {
	if m.getActiveStrategyFn != nil {
		return m.getActiveStrategyFn(userID)
	}
	return &models.DebtStrategy{}, nil
}

func (m *mockStrategyService) GetStrategyByID(userID, strategyID string) (*models.DebtStrategy, error) {
	if m.getStrategyByIDFn != nil {
		return m.getStrategyByIDFn(userID, strategyID)
	}
	return &models.DebtStrategy{}, nil
}

func (m *mockStrategyService) GetUserStrategies(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.DebtStrategy], error) {
	if m.getUserStrategiesFn != nil {
		return m.getUserStrategiesFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.DebtStrategy{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockStrategyService) ListActiveStrategies() ([]models.DebtStrategy, error) {
	return nil, nil
}

func (m *mockStrategyService) MarkReviewed(string, time.Time) error { return nil }

var _ services.StrategyServicer = (*mockStrategyService)(nil)

// --- mock planner service ---

type mockPlannerService struct {
	getSummaryFn          func(userID string, monthlyIncome float64) (*payoff.DebtSummary, error)
	getCashFlowFn         func(userID string, input services.FinancialInput) (*payoff.CashFlowImpact, error)
	calculateDebtPayoffFn func(userID, debtID string, monthlyPayment, extraPayment float64) (*payoff.PayoffCalculation, error)
	generateStrategyFn    func(ctx context.Context, userID string, heuristic payoff.Heuristic, input services.FinancialInput) (*payoff.AIDebtStrategy, error)
	simulateScenariosFn   func(userID, strategyID string, assumptions []payoff.ScenarioAssumptions) ([]payoff.ScenarioSimulation, error)
	generateInsightFn     func(userID, strategyID string, insightContext payoff.InsightContext) (string, error)
	checkAdjustmentFn     func(userID string, input services.FinancialInput) (*services.AdjustmentCheck, error)
}

func (m *mockPlannerService) GetSummary(userID string, monthlyIncome float64) (*payoff.DebtSummary, error) {
	if m.getSummaryFn != nil {
		return m.getSummaryFn(userID, monthlyIncome)
	}
	return &payoff.DebtSummary{}, nil
}

func (m *mockPlannerService) GetCashFlow(userID string, input services.FinancialInput) (*payoff.CashFlowImpact, error) {
	if m.getCashFlowFn != nil {
		return m.getCashFlowFn(userID, input)
	}
	return &payoff.CashFlowImpact{}, nil
}

func (m *mockPlannerService) CalculateDebtPayoff(userID, debtID string, monthlyPayment, extraPayment float64) (*payoff.PayoffCalculation, error) {
	if m.calculateDebtPayoffFn != nil {
		return m.calculateDebtPayoffFn(userID, debtID, monthlyPayment, extraPayment)
	}
	return &payoff.PayoffCalculation{}, nil
}

func (m *mockPlannerService) GenerateStrategy(ctx context.Context, userID string, heuristic payoff.Heuristic, input services.FinancialInput) (*payoff.AIDebtStrategy, error) {
	if m.generateStrategyFn != nil {
		return m.generateStrategyFn(ctx, userID, heuristic, input)
	}
	return &payoff.AIDebtStrategy{}, nil
}

func (m *mockPlannerService) SimulateScenarios(userID, strategyID string, assumptions []payoff.ScenarioAssumptions) ([]payoff.ScenarioSimulation, error) {
	if m.simulateScenariosFn != nil {
		return m.simulateScenariosFn(userID, strategyID, assumptions)
	}
	return []payoff.ScenarioSimulation{}, nil
}

func (m *mockPlannerService) GenerateInsight(userID, strategyID string, insightContext payoff.InsightContext) (string, error) {
	if m.generateInsightFn != nil {
		return m.generateInsightFn(userID, strategyID, insightContext)
	}
	return "", nil
}

func (m *mockPlannerService) CheckAdjustment(userID string, input services.FinancialInput) (*services.AdjustmentCheck, error) {
	if m.checkAdjustmentFn != nil {
		return m.checkAdjustmentFn(userID, input)
	}
	return &services.AdjustmentCheck{}, nil
}

func (m *mockPlannerService) RefreshStrategy(_ context.Context, strategy models.DebtStrategy) (*models.DebtStrategy, error) {
	return &strategy, nil
}

var _ services.PlannerServicer = (*mockPlannerService)(nil)

// --- mock audit service ---

type auditEntry struct {
	userID       string
	action       models.AuditAction
	resourceType models.AuditResource
	resourceID   string
	changes      map[string]any
}

type mockAuditService struct {
	entries []auditEntry
}

func (m *mockAuditService) Log(userID string, action models.AuditAction, resourceType models.AuditResource, resourceID, _ string, changes map[string]any) {
	m.entries = append(m.entries, auditEntry{userID, action, resourceType, resourceID, changes})
}

var _ services.AuditServicer = (*mockAuditService)(nil)

// --- mock reviewer ---

type mockReviewer struct {
	result scheduler.Result
	runs   int
}

func (m *mockReviewer) RunOnce(context.Context) scheduler.Result {
	m.runs++
	return m.result
}

// --- test helpers ---

const testUserID = "user-1"

var (
	testDebtID     = uuid.New()
	testStrategyID = uuid.New()
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]any, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %s, got %v", code, errObj["code"])
	}
}
