package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"debtpilot/internal/models"
	"debtpilot/internal/pagination"
	"debtpilot/internal/services"
)

// DebtHandler handles debt, payment and single-debt payoff requests.
type DebtHandler struct {
	debtService    services.DebtServicer
	paymentService services.PaymentServicer
	plannerService services.PlannerServicer
	auditService   services.AuditServicer
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtService services.DebtServicer, paymentService services.PaymentServicer, plannerService services.PlannerServicer, auditService services.AuditServicer) *DebtHandler {
	return &DebtHandler{
		debtService:    debtService,
		paymentService: paymentService,
		plannerService: plannerService,
		auditService:   auditService,
	}
}

// CreateDebtRequest represents the request payload for creating a debt.
type CreateDebtRequest struct {
	CreditorName   string          `json:"creditor_name" binding:"required,min=1,max=100"`
	DebtType       models.DebtType `json:"debt_type" binding:"required,debt_type"`
	OriginalAmount *float64        `json:"original_amount" binding:"omitempty,gte=0"`
	CurrentBalance float64         `json:"current_balance" binding:"gte=0"`
	InterestRate   *float64        `json:"interest_rate" binding:"omitempty,gte=0,lte=100"`
	MinimumPayment *float64        `json:"minimum_payment" binding:"omitempty,gte=0"`
	DueDay         *int            `json:"due_day" binding:"omitempty,min=1,max=31"`
	CreditLimit    *float64        `json:"credit_limit" binding:"omitempty,gte=0"`
}

// UpdateDebtRequest represents the request payload for updating a debt.
type UpdateDebtRequest struct {
	CreditorName   *string          `json:"creditor_name" binding:"omitempty,min=1,max=100"`
	DebtType       *models.DebtType `json:"debt_type" binding:"omitempty,debt_type"`
	CurrentBalance *float64         `json:"current_balance" binding:"omitempty,gte=0"`
	InterestRate   *float64         `json:"interest_rate" binding:"omitempty,gte=0,lte=100"`
	MinimumPayment *float64         `json:"minimum_payment" binding:"omitempty,gte=0"`
	DueDay         *int             `json:"due_day" binding:"omitempty,min=1,max=31"`
	CreditLimit    *float64         `json:"credit_limit" binding:"omitempty,gte=0"`
}

// RecordPaymentRequest represents the request payload for a payment.
type RecordPaymentRequest struct {
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	PaymentDate *time.Time `json:"payment_date"`
	IsExtra     *bool      `json:"is_extra"`
}

// PayoffRequest represents the payment plan to simulate for one debt.
// A zero monthly payment means the debt's minimum payment.
type PayoffRequest struct {
	MonthlyPayment float64 `json:"monthly_payment" binding:"gte=0"`
	ExtraPayment   float64 `json:"extra_payment" binding:"gte=0"`
}

// CreateDebt handles the creation of a new debt.
// @Summary     Create a debt
// @Description Add a liability to the authenticated user's portfolio
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateDebtRequest true "Debt details"
// @Success     201 {object} models.Debt "Debt created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [post]
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	debt, err := h.debtService.CreateDebt(userID, services.DebtInput{
		CreditorName:   req.CreditorName,
		DebtType:       req.DebtType,
		OriginalAmount: req.OriginalAmount,
		CurrentBalance: req.CurrentBalance,
		InterestRate:   req.InterestRate,
		MinimumPayment: req.MinimumPayment,
		DueDay:         req.DueDay,
		CreditLimit:    req.CreditLimit,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, models.AuditCreateDebt, models.AuditResourceDebt, debt.ID, c.ClientIP(),
		map[string]any{"creditor_name": debt.CreditorName, "debt_type": debt.DebtType, "current_balance": debt.CurrentBalance})

	c.JSON(http.StatusCreated, gin.H{"debt": debt})
}

// GetDebts handles listing debts for the authenticated user.
// @Summary     Get debts
// @Description Get a paginated list of debts, newest first
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Param       include_inactive query bool false "Include deactivated debts"
// @Param       page             query int  false "Page number (default 1)"
// @Param       page_size        query int  false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Debt] "Paginated debts"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [get]
func (h *DebtHandler) GetDebts(c *gin.Context) {
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

	result, err := h.debtService.GetUserDebts(userID, page, c.Query("include_inactive") == "true")
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDebt handles fetching a single debt.
// @Summary     Get a debt
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Debt ID"
// @Success     200 {object} models.Debt "Debt"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Router      /debts/{id} [get]
func (h *DebtHandler) GetDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	debt, err := h.debtService.GetDebtByID(userID, debtID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// UpdateDebt handles partial updates of an active debt.
// @Summary     Update a debt
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Debt ID"
// @Param       request body UpdateDebtRequest true "Fields to change"
// @Success     200 {object} models.Debt "Updated debt"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     409 {object} ErrorResponse "Debt inactive"
// @Router      /debts/{id} [put]
func (h *DebtHandler) UpdateDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	debt, err := h.debtService.UpdateDebt(userID, debtID, services.DebtUpdate{
		CreditorName:   req.CreditorName,
		DebtType:       req.DebtType,
		CurrentBalance: req.CurrentBalance,
		InterestRate:   req.InterestRate,
		MinimumPayment: req.MinimumPayment,
		DueDay:         req.DueDay,
		CreditLimit:    req.CreditLimit,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, models.AuditUpdateDebt, models.AuditResourceDebt, debt.ID, c.ClientIP(), map[string]any{"current_balance": debt.CurrentBalance})

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// DeleteDebt deactivates a debt. Payment history is kept.
// @Summary     Deactivate a debt
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Debt ID"
// @Success     200 {object} MessageResponse "Debt deactivated"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Router      /debts/{id} [delete]
func (h *DebtHandler) DeleteDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.debtService.DeactivateDebt(userID, debtID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, models.AuditDeactivateDebt, models.AuditResourceDebt, debtID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Debt deactivated successfully"})
}

// RecordPayment applies a payment to a debt.
// @Summary     Record a payment
// @Description Split a payment into interest and principal and reduce the balance
// @Tags        payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Debt ID"
// @Param       request body RecordPaymentRequest true "Payment"
// @Success     201 {object} models.DebtPayment "Payment recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     409 {object} ErrorResponse "Debt inactive"
// @Router      /debts/{id}/payments [post]
func (h *DebtHandler) RecordPayment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	var date time.Time
	if req.PaymentDate != nil {
		date = *req.PaymentDate
	}

	payment, err := h.paymentService.RecordPayment(userID, debtID, req.Amount, date, req.IsExtra)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, models.AuditRecordPayment, models.AuditResourcePayment, payment.ID, c.ClientIP(),
		map[string]any{"debt_id": debtID, "amount": payment.Amount, "remaining_balance": payment.RemainingBalance})

	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}

// GetPayments lists the payment history of a debt.
// @Summary     Get payments
// @Tags        payments
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Debt ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.DebtPayment] "Paginated payments"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Router      /debts/{id}/payments [get]
func (h *DebtHandler) GetPayments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.paymentService.GetDebtPayments(userID, debtID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CalculatePayoff simulates paying off one debt.
// @Summary     Simulate a debt payoff
// @Description Month-by-month amortization for a payment; zero payment means the minimum
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string        true "Debt ID"
// @Param       request body PayoffRequest true "Payment plan"
// @Success     200 {object} payoff.PayoffCalculation "Payoff schedule"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Router      /debts/{id}/payoff [post]
func (h *DebtHandler) CalculatePayoff(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PayoffRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	calc, err := h.plannerService.CalculateDebtPayoff(userID, debtID, req.MonthlyPayment, req.ExtraPayment)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payoff": calc})
}
