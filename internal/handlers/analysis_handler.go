package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"debtpilot/internal/services"
)

// AnalysisHandler serves portfolio-level statistics.
type AnalysisHandler struct {
	plannerService services.PlannerServicer
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(plannerService services.PlannerServicer) *AnalysisHandler {
	return &AnalysisHandler{plannerService: plannerService}
}

// SummaryQuery holds the query parameters of the summary endpoint.
type SummaryQuery struct {
	MonthlyIncome float64 `form:"monthly_income" binding:"gte=0"`
}

// FinancialInputRequest is the monthly cash position sent by the client.
type FinancialInputRequest struct {
	MonthlyIncome   float64 `json:"monthly_income" binding:"gte=0"`
	MonthlyExpenses float64 `json:"monthly_expenses" binding:"gte=0"`
	EmergencyFund   float64 `json:"emergency_fund" binding:"gte=0"`
}

func (r FinancialInputRequest) input() services.FinancialInput {
	return services.FinancialInput{
		MonthlyIncome:   r.MonthlyIncome,
		MonthlyExpenses: r.MonthlyExpenses,
		EmergencyFund:   r.EmergencyFund,
	}
}

// GetSummary returns statistics over the user's active debts.
// @Summary     Debt summary
// @Description Totals, weighted rate, debt-to-income ratio and minimum-payment horizon
// @Tags        analysis
// @Produce     json
// @Security    BearerAuth
// @Param       monthly_income query number false "Monthly income for the debt-to-income ratio"
// @Success     200 {object} payoff.DebtSummary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analysis/summary [get]
func (h *AnalysisHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	summary, err := h.plannerService.GetSummary(userID, q.MonthlyIncome)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetCashFlow returns the monthly cash position against active debts.
// @Summary     Cash flow impact
// @Tags        analysis
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body FinancialInputRequest true "Monthly cash position"
// @Success     200 {object} payoff.CashFlowImpact "Cash flow"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analysis/cash-flow [post]
func (h *AnalysisHandler) GetCashFlow(c *gin.Context) {
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

	impact, err := h.plannerService.GetCashFlow(userID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cash_flow": impact})
}
