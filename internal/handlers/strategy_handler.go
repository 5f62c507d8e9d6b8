package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"debtpilot/internal/models"
	"debtpilot/internal/pagination"
	"debtpilot/internal/payoff"
	"debtpilot/internal/services"
)

// StrategyHandler handles strategy generation and what-if requests.
type StrategyHandler struct {
	plannerService  services.PlannerServicer
	strategyService services.StrategyServicer
	auditService    services.AuditServicer
}

// NewStrategyHandler creates a new StrategyHandler.
func NewStrategyHandler(plannerService services.PlannerServicer, strategyService services.StrategyServicer, auditService services.AuditServicer) *StrategyHandler {
	return &StrategyHandler{
		plannerService:  plannerService,
		strategyService: strategyService,
		auditService:    auditService,
	}
}

// CreateStrategyRequest represents the request payload for generating a strategy.
type CreateStrategyRequest struct {
	FinancialInputRequest
	Heuristic payoff.Heuristic `json:"heuristic" binding:"omitempty,heuristic"`
	Activate  bool             `json:"activate"`
}

// ScenariosRequest lists the what-if assumptions to run. An empty list runs
// the default scenarios.
type ScenariosRequest struct {
	Scenarios []payoff.ScenarioAssumptions `json:"scenarios" binding:"omitempty,dive"`
}

// InsightQuery holds the query parameters of the insight endpoint.
type InsightQuery struct {
	Context payoff.InsightContext `form:"context" binding:"omitempty,insight_context"`
}

// CreateStrategy generates and stores a repayment strategy.
// @Summary     Generate a strategy
// @Description Rank active debts with the chosen heuristic and project the payoff
// @Tags        strategies
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateStrategyRequest true "Heuristic and monthly cash position"
// @Success     201 {object} models.DebtStrategy "Strategy created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "No active debts"
// @Router      /strategies [post]
func (h *StrategyHandler) CreateStrategy(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	input := req.input()
	plan, err := h.plannerService.GenerateStrategy(c.Request.Context(), userID, req.Heuristic, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	strategy, err := h.strategyService.SaveStrategy(userID, *plan, input, req.Activate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, models.AuditCreateStrategy, models.AuditResourceStrategy, strategy.ID, c.ClientIP(),
		map[string]any{"heuristic": strategy.Heuristic, "source": strategy.Source, "active": strategy.IsActive})

	c.JSON(http.StatusCreated, gin.H{"strategy": strategy, "never_pays_off": plan.NeverPaysOff})
}

// GetStrategies lists the user's strategies.
// @Summary     Get strategies
// @Tags        strategies
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.DebtStrategy] "Paginated strategies"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /strategies [get]
func (h *StrategyHandler) GetStrategies(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.strategyService.GetUserStrategies(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetActiveStrategy returns the user's active strategy.
// @Summary     Get the active strategy
// @Tags        strategies
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.DebtStrategy "Active strategy"
// @Failure     404 {object} ErrorResponse "No active strategy"
// @Router      /strategies/active [get]
func (h *StrategyHandler) GetActiveStrategy(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	strategy, err := h.strategyService.GetActiveStrategy(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"strategy": strategy})
}

// GetStrategy returns a single strategy.
// @Summary     Get a strategy
// @Tags        strategies
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Strategy ID"
// @Success     200 {object} models.DebtStrategy "Strategy"
// @Failure     404 {object} ErrorResponse "Strategy not found"
// @Router      /strategies/{id} [get]
func (h *StrategyHandler) GetStrategy(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	strategyID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	strategy, err := h.strategyService.GetStrategyByID(userID, strategyID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"strategy": strategy})
}

// ActivateStrategy makes a strategy the user's only active one.
// @Summary     Activate a strategy
// @Tags        strategies
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Strategy ID"
// @Success     200 {object} models.DebtStrategy "Activated strategy"
// @Failure     404 {object} ErrorResponse "Strategy not found"
// @Failure     409 {object} ErrorResponse "Activation conflict"
// @Router      /strategies/{id}/activate [post]
func (h *StrategyHandler) ActivateStrategy(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	strategyID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	strategy, err := h.strategyService.ActivateStrategy(userID, strategyID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, models.AuditActivateStrategy, models.AuditResourceStrategy, strategy.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"strategy": strategy})
}

// SimulateScenarios runs what-if assumptions against a stored strategy.
// @Summary     Simulate scenarios
// @Tags        strategies
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string           true  "Strategy ID"
// @Param       request body ScenariosRequest false "Assumptions; empty runs the defaults"
// @Success     200 {array}  payoff.ScenarioSimulation "Scenario outcomes"
// @Failure     400 {object} ErrorResponse "Invalid assumptions"
// @Failure     404 {object} ErrorResponse "Strategy not found"
// @Router      /strategies/{id}/scenarios [post]
func (h *StrategyHandler) SimulateScenarios(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	strategyID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ScenariosRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	sims, err := h.plannerService.SimulateScenarios(userID, strategyID, req.Scenarios)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": sims})
}

// GetInsight narrates a stored strategy.
// @Summary     Strategy insight
// @Tags        strategies
// @Produce     json
// @Security    BearerAuth
// @Param       id      path  string true  "Strategy ID"
// @Param       context query string false "general, weekly, monthly or motivational"
// @Success     200 {object} map[string]string "Insight text"
// @Failure     400 {object} ErrorResponse "Invalid context"
// @Failure     404 {object} ErrorResponse "Strategy not found"
// @Router      /strategies/{id}/insight [get]
func (h *StrategyHandler) GetInsight(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	strategyID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q InsightQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	insight, err := h.plannerService.GenerateInsight(userID, strategyID, q.Context)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insight": insight})
}

// CheckAdjustment reports whether the active strategy should be recomputed.
// @Summary     Check for plan adjustment
// @Tags        strategies
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body FinancialInputRequest true "Current monthly cash position"
// @Success     200 {object} services.AdjustmentCheck "Adjustment check"
// @Failure     404 {object} ErrorResponse "No active strategy"
// @Router      /strategies/adjustment-check [post]
func (h *StrategyHandler) CheckAdjustment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req FinancialInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	check, err := h.plannerService.CheckAdjustment(userID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"adjustment": check})
}
