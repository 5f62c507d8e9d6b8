// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"debtpilot/internal/models"
	"debtpilot/internal/payoff"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterWith(v)
	}
}

// RegisterWith registers the custom validators on v.
func RegisterWith(v *validator.Validate) {
	_ = v.RegisterValidation("debt_type", validateDebtType)
	_ = v.RegisterValidation("heuristic", validateHeuristic)
	_ = v.RegisterValidation("insight_context", validateInsightContext)
}

func validateDebtType(fl validator.FieldLevel) bool {
	return models.DebtType(fl.Field().String()).Valid()
}

func validateHeuristic(fl validator.FieldLevel) bool {
	return payoff.Heuristic(fl.Field().String()).Valid()
}

func validateInsightContext(fl validator.FieldLevel) bool {
	return payoff.InsightContext(fl.Field().String()).Valid()
}
