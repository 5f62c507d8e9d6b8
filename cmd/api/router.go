package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"debtpilot/internal/handlers"
	"debtpilot/internal/middleware"
	"debtpilot/internal/services"
)

// routerDeps is everything the HTTP surface needs.
type routerDeps struct {
	JWTSecret      string
	InternalAPIKey string

	Debts      services.DebtServicer
	Payments   services.PaymentServicer
	Strategies services.StrategyServicer
	Planner    services.PlannerServicer
	Audit      services.AuditServicer
	Reviewer   handlers.StrategyReviewer
}

func newRouter(deps routerDeps) *gin.Engine {
	debtHandler := handlers.NewDebtHandler(deps.Debts, deps.Payments, deps.Planner, deps.Audit)
	analysisHandler := handlers.NewAnalysisHandler(deps.Planner)
	strategyHandler := handlers.NewStrategyHandler(deps.Planner, deps.Strategies, deps.Audit)
	reviewHandler := handlers.NewReviewHandler(deps.Reviewer)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Operator routes
	internal := v1.Group("/internal")
	internal.Use(middleware.ServiceKeyMiddleware(deps.InternalAPIKey))
	internal.POST("/strategy-reviews", reviewHandler.RunReview)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(deps.JWTSecret))

	debts := protected.Group("/debts")
	debts.POST("", debtHandler.CreateDebt)
	debts.GET("", debtHandler.GetDebts)
	debts.GET("/:id", debtHandler.GetDebt)
	debts.PUT("/:id", debtHandler.UpdateDebt)
	debts.DELETE("/:id", debtHandler.DeleteDebt)
	debts.POST("/:id/payments", debtHandler.RecordPayment)
	debts.GET("/:id/payments", debtHandler.GetPayments)
	debts.POST("/:id/payoff", debtHandler.CalculatePayoff)

	analysis := protected.Group("/analysis")
	analysis.GET("/summary", analysisHandler.GetSummary)
	analysis.POST("/cash-flow", analysisHandler.GetCashFlow)

	strategies := protected.Group("/strategies")
	strategies.POST("", strategyHandler.CreateStrategy)
	strategies.GET("", strategyHandler.GetStrategies)
	strategies.GET("/active", strategyHandler.GetActiveStrategy)
	strategies.POST("/adjustment-check", strategyHandler.CheckAdjustment)
	strategies.GET("/:id", strategyHandler.GetStrategy)
	strategies.POST("/:id/activate", strategyHandler.ActivateStrategy)
	strategies.POST("/:id/scenarios", strategyHandler.SimulateScenarios)
	strategies.GET("/:id/insight", strategyHandler.GetInsight)

	return router
}
