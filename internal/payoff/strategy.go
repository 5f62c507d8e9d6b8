package payoff

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"debtpilot/internal/models"
)

// Heuristic names a debt-ordering strategy.
type Heuristic string

const (
	HeuristicAvalanche Heuristic = "avalanche"
	HeuristicSnowball  Heuristic = "snowball"
	HeuristicOptimized Heuristic = "optimized"
)

// Valid reports whether h is a known heuristic.
func (h Heuristic) Valid() bool {
	switch h {
	case HeuristicAvalanche, HeuristicSnowball, HeuristicOptimized:
		return true
	}
	return false
}

// quickWinBalance is the balance under which a debt is a "quick win".
const quickWinBalance = 1000

// DebtPriority is one entry in an ordered attack plan.
type DebtPriority struct {
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

// Weights are the factor weights of the optimized multi-factor score.
// They encode a product judgment, not a derived quantity, so callers may
// override them.
type Weights struct {
	InterestRate float64 `json:"interest_rate"`
	Balance      float64 `json:"balance"`
	PayoffTime   float64 `json:"payoff_time"`
	Utilization  float64 `json:"utilization"`
}

// DefaultWeights returns the 40/30/20/10 weighting.
func DefaultWeights() Weights {
	return Weights{InterestRate: 0.40, Balance: 0.30, PayoffTime: 0.20, Utilization: 0.10}
}

// GenerateAvalancheStrategy ranks debts by interest rate, highest first.
func GenerateAvalancheStrategy(debts []models.Debt, extraPayment float64, asOf time.Time) []DebtPriority {
	ordered := cloneDebts(debts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Rate() > ordered[j].Rate()
	})
	return buildPriorities(ordered, nil, extraPayment, asOf, avalancheReason)
}

// GenerateSnowballStrategy ranks debts by current balance, smallest first.
func GenerateSnowballStrategy(debts []models.Debt, extraPayment float64, asOf time.Time) []DebtPriority {
	ordered := cloneDebts(debts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CurrentBalance < ordered[j].CurrentBalance
	})
	return buildPriorities(ordered, nil, extraPayment, asOf, snowballReason)
}

// GenerateOptimizedStrategy ranks debts by the weighted multi-factor score.
func GenerateOptimizedStrategy(debts []models.Debt, extraPayment float64, weights Weights, asOf time.Time) []DebtPriority {
	total := totalBalance(debts)
	type scored struct {
		debt  models.Debt
		score float64
	}
	items := make([]scored, 0, len(debts))
	for _, d := range debts {
		items = append(items, scored{debt: d, score: OptimizedScore(d, total, weights)})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})

	ordered := make([]models.Debt, len(items))
	scores := make([]float64, len(items))
	for i, it := range items {
		ordered[i] = it.debt
		scores[i] = it.score
	}
	return buildPriorities(ordered, scores, extraPayment, asOf, optimizedReason)
}

// Generate dispatches to the generator for h. Unknown heuristics fall back
// to the optimized order.
func Generate(h Heuristic, debts []models.Debt, extraPayment float64, weights Weights, asOf time.Time) []DebtPriority {
	switch h {
	case HeuristicAvalanche:
		return GenerateAvalancheStrategy(debts, extraPayment, asOf)
	case HeuristicSnowball:
		return GenerateSnowballStrategy(debts, extraPayment, asOf)
	default:
		return GenerateOptimizedStrategy(debts, extraPayment, weights, asOf)
	}
}

// OptimizedScore is the weighted multi-factor priority score of a debt.
func OptimizedScore(d models.Debt, totalDebt float64, w Weights) float64 {
	interestScore := d.Rate() / 30 * 100
	var balanceScore float64
	if totalDebt > 0 {
		balanceScore = (1 - d.CurrentBalance/totalDebt) * 100
	}
	return w.InterestRate*interestScore +
		w.Balance*balanceScore +
		w.PayoffTime*payoffTimeScore(d) +
		w.Utilization*utilizationScore(d)
}

// payoffTimeScore rewards debts payable quickly on minimums alone, using
// balance/minimum as the month estimate.
func payoffTimeScore(d models.Debt) float64 {
	if d.Minimum() <= 0 {
		return 0
	}
	months := d.CurrentBalance / d.Minimum()
	switch {
	case months <= 6:
		return 100
	case months <= 12:
		return 80
	case months <= 24:
		return 60
	case months <= 36:
		return 40
	default:
		return 20
	}
}

// utilizationScore applies to credit cards with a known limit; everything
// else scores a neutral 50.
func utilizationScore(d models.Debt) float64 {
	ratio, ok := d.Utilization()
	if !ok {
		return 50
	}
	switch {
	case ratio > 0.7:
		return 100
	case ratio > 0.5:
		return 80
	case ratio > 0.3:
		return 60
	default:
		return 40
	}
}

type reasonFunc func(d models.Debt, rank int, score float64) string

// buildPriorities runs a payoff simulation per debt, giving the whole extra
// payment to rank 1.
func buildPriorities(ordered []models.Debt, scores []float64, extraPayment float64, asOf time.Time, reason reasonFunc) []DebtPriority {
	priorities := make([]DebtPriority, 0, len(ordered))
	for i, d := range ordered {
		extra := 0.0
		if i == 0 {
			extra = extraPayment
		}
		var score float64
		if scores != nil {
			score = scores[i]
		}
		calc := CalculatePayoff(d, d.Minimum(), extra)
		priorities = append(priorities, DebtPriority{
			DebtID:          d.ID,
			CreditorName:    d.CreditorName,
			Priority:        i + 1,
			Reasoning:       reason(d, i+1, score),
			MonthlyPayment:  d.Minimum(),
			ExtraPayment:    extra,
			ProjectedPayoff: projectDate(asOf, calc.MonthsToPayoff),
			MonthsToPayoff:  calc.MonthsToPayoff,
			TotalInterest:   calc.TotalInterest,
			NeverPaysOff:    calc.NeverPaysOff(),
			Score:           score,
		})
	}
	return priorities
}

func avalancheReason(d models.Debt, rank int, _ float64) string {
	if rank == 1 {
		return fmt.Sprintf("High interest rate (%.1f%%) - paying it first saves the most interest", d.Rate())
	}
	return fmt.Sprintf("Interest rate %.1f%% - attacked after higher-rate debts", d.Rate())
}

func snowballReason(d models.Debt, rank int, _ float64) string {
	if d.CurrentBalance < quickWinBalance {
		return fmt.Sprintf("Quick win opportunity ($%.2f balance)", d.CurrentBalance)
	}
	if rank == 1 {
		return fmt.Sprintf("Smallest balance ($%.2f) - clearing it frees up its payment", d.CurrentBalance)
	}
	return fmt.Sprintf("Balance $%.2f - rolled into once smaller debts are gone", d.CurrentBalance)
}

func optimizedReason(d models.Debt, _ int, score float64) string {
	var reasons []string
	if d.Rate() > 15 {
		reasons = append(reasons, fmt.Sprintf("High interest rate (%.1f%%)", d.Rate()))
	}
	if d.CurrentBalance < quickWinBalance {
		reasons = append(reasons, "Quick win opportunity")
	}
	if ratio, ok := d.Utilization(); ok && ratio > 0.7 {
		reasons = append(reasons, "High credit utilization")
	}
	if payoffTimeScore(d) >= 80 {
		reasons = append(reasons, "Payable within a year on minimums")
	}
	if len(reasons) == 0 {
		return fmt.Sprintf("Balanced priority score (%.0f)", score)
	}
	return strings.Join(reasons, ", ")
}

func cloneDebts(debts []models.Debt) []models.Debt {
	out := make([]models.Debt, len(debts))
	copy(out, debts)
	return out
}
