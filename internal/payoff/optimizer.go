package payoff

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"debtpilot/internal/models"
)

// TextGenerator is the external text-generation collaborator. Replies are
// free text that may or may not contain the requested JSON object.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// DefaultGenerationTimeout bounds a single text-generation call.
const DefaultGenerationTimeout = 20 * time.Second

// Optimizer produces the optimized strategy, asking the text generator for
// qualitative text when one is configured.
type Optimizer struct {
	generator TextGenerator
	weights   Weights
	timeout   time.Duration
	now       func() time.Time
	log       *zap.SugaredLogger
}

// OptimizerOption configures an Optimizer.
type OptimizerOption func(*Optimizer)

// WithWeights overrides the multi-factor weights.
func WithWeights(w Weights) OptimizerOption {
	return func(o *Optimizer) { o.weights = w }
}

// WithTimeout overrides the text-generation timeout.
func WithTimeout(d time.Duration) OptimizerOption {
	return func(o *Optimizer) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithClock overrides the clock used for projected dates.
func WithClock(now func() time.Time) OptimizerOption {
	return func(o *Optimizer) { o.now = now }
}

// WithLogger sets the logger used to report fallbacks.
func WithLogger(log *zap.SugaredLogger) OptimizerOption {
	return func(o *Optimizer) { o.log = log }
}

// NewOptimizer creates an Optimizer. generator may be nil, in which case
// every strategy is produced by the deterministic fallback.
func NewOptimizer(generator TextGenerator, opts ...OptimizerOption) *Optimizer {
	o := &Optimizer{
		generator: generator,
		weights:   DefaultWeights(),
		timeout:   DefaultGenerationTimeout,
		now:       time.Now,
		log:       zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Weights returns the weights the optimizer ranks with.
func (o *Optimizer) Weights() Weights {
	return o.weights
}

// aiStrategyReply is the JSON shape requested from the text generator.
type aiStrategyReply struct {
	StrategyName       string                     `json:"strategy_name"`
	Methodology        string                     `json:"methodology"`
	RiskScore          *float64                   `json:"risk_score"`
	Recommendations    []Recommendation           `json:"recommendations"`
	AdjustmentTriggers *models.AdjustmentTriggers `json:"adjustment_triggers"`
}

// GenerateOptimalStrategy always returns a plan: the numeric debt order is
// computed locally and the generator may only override name, methodology,
// risk score, recommendations and triggers. Any generator failure yields
// the deterministic fallback.
func (o *Optimizer) GenerateOptimalStrategy(ctx context.Context, debts []models.Debt, snapshot FinancialSnapshot) AIDebtStrategy {
	return o.GenerateOptimalStrategyAt(ctx, debts, snapshot, o.now())
}

// GenerateOptimalStrategyAt is GenerateOptimalStrategy with projected dates
// counted from asOf instead of the optimizer's clock.
func (o *Optimizer) GenerateOptimalStrategyAt(ctx context.Context, debts []models.Debt, snapshot FinancialSnapshot, asOf time.Time) AIDebtStrategy {
	strategy := GenerateStrategy(HeuristicOptimized, debts, snapshot, o.weights, asOf)
	if o.generator == nil || len(debts) == 0 {
		return strategy
	}

	genCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	reply, err := o.generator.Generate(genCtx, BuildStrategyPrompt(debts, snapshot, strategy))
	if err != nil {
		o.log.Warnw("text generation failed, using fallback strategy", "error", err)
		return strategy
	}

	var parsed aiStrategyReply
	extraction := ExtractJSONObject(reply)
	if !extraction.Decode(&parsed) {
		reason := extraction.Reason
		if extraction.Found {
			reason = "unexpected JSON shape"
		}
		o.log.Warnw("unparseable strategy reply, using fallback strategy", "reason", reason)
		return strategy
	}

	return applyReply(strategy, parsed)
}

func applyReply(strategy AIDebtStrategy, reply aiStrategyReply) AIDebtStrategy {
	strategy.Source = SourceAI
	if name := strings.TrimSpace(reply.StrategyName); name != "" {
		strategy.Name = name
	}
	if m := strings.TrimSpace(reply.Methodology); m != "" {
		strategy.Methodology = m
	}
	if reply.RiskScore != nil {
		strategy.RiskScore = clampScore(*reply.RiskScore)
	}

	recs := make([]Recommendation, 0, len(reply.Recommendations))
	for _, r := range reply.Recommendations {
		if strings.TrimSpace(r.Action) == "" {
			continue
		}
		recs = append(recs, r)
	}
	if len(recs) > 0 {
		strategy.Recommendations = topRecommendations(recs)
	}

	if t := reply.AdjustmentTriggers; t != nil && t.TimeBasedDays > 0 {
		strategy.AdjustmentTriggers = *t
	}
	return strategy
}

// BuildStrategyPrompt renders the structured prompt sent to the generator.
func BuildStrategyPrompt(debts []models.Debt, snapshot FinancialSnapshot, plan AIDebtStrategy) string {
	sorted := cloneDebts(debts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreditorName < sorted[j].CreditorName })

	var b strings.Builder
	b.WriteString("You are a debt repayment advisor. Review the computed plan below and respond with ONLY a JSON object of the form ")
	b.WriteString(`{"strategy_name": string, "methodology": string, "risk_score": number 0-100, `)
	b.WriteString(`"recommendations": [{"type": "expense"|"consolidation"|"income", "action": string, "estimated_impact": number, "effort": "low"|"medium"|"high", "priority": number}], `)
	b.WriteString(`"adjustment_triggers": {"income_change_percent": number, "expense_change_percent": number, "time_based_days": number}}.`)
	b.WriteString("\n\nFINANCES:\n")
	fmt.Fprintf(&b, "- Monthly income: $%.2f\n", snapshot.MonthlyIncome)
	fmt.Fprintf(&b, "- Monthly expenses: $%.2f\n", snapshot.MonthlyExpenses)
	fmt.Fprintf(&b, "- Available for extra debt payment: $%.2f\n", snapshot.AvailableForDebt)
	fmt.Fprintf(&b, "- Emergency fund: $%.2f\n", snapshot.EmergencyFund)
	fmt.Fprintf(&b, "- Debt-to-income ratio: %.1f%%\n", snapshot.DebtToIncomeRatio)
	fmt.Fprintf(&b, "- Weighted average interest: %.2f%%\n", snapshot.WeightedAverageRate)

	b.WriteString("\nDEBTS:\n")
	for _, d := range sorted {
		fmt.Fprintf(&b, "- %s (%s): balance $%.2f, rate %.2f%%, minimum $%.2f\n",
			d.CreditorName, d.DebtType, d.CurrentBalance, d.Rate(), d.Minimum())
	}

	b.WriteString("\nCOMPUTED ORDER:\n")
	for _, p := range plan.DebtOrder {
		fmt.Fprintf(&b, "%d. %s - %s\n", p.Priority, p.CreditorName, p.Reasoning)
	}
	metrics, _ := json.Marshal(map[string]any{
		"total_interest_saved": plan.TotalInterestSaved,
		"months_reduced":       plan.MonthsReduced,
		"risk_score":           plan.RiskScore,
	})
	fmt.Fprintf(&b, "\nPLAN METRICS: %s\n", metrics)
	return b.String()
}
