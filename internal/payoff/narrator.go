package payoff

import (
	"fmt"
	"math/rand/v2"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"debtpilot/internal/models"
)

// InsightContext selects the template family used by the narrator.
type InsightContext string

const (
	InsightGeneral      InsightContext = "general"
	InsightWeekly       InsightContext = "weekly"
	InsightMonthly      InsightContext = "monthly"
	InsightMotivational InsightContext = "motivational"
)

// Valid reports whether c is a known insight context.
func (c InsightContext) Valid() bool {
	switch c {
	case InsightGeneral, InsightWeekly, InsightMonthly, InsightMotivational:
		return true
	}
	return false
}

// weeksPerMonth converts monthly amounts to weekly ones.
const weeksPerMonth = 52.0 / 12.0

// Selector picks an index in [0,n).
type Selector func(n int) int

// Narrator renders computed strategies into short insight strings.
type Narrator struct {
	pick    Selector
	printer *message.Printer
}

// NewNarrator returns a Narrator. A nil selector picks motivational
// templates at random.
func NewNarrator(pick Selector) *Narrator {
	if pick == nil {
		pick = rand.IntN
	}
	return &Narrator{pick: pick, printer: message.NewPrinter(language.English)}
}

var motivationalTemplates = []string{
	"Every payment counts: you are on track to be debt-free by %[1]s. Keep going!",
	"Stick with the plan and you keep %[2]s of interest in your own pocket.",
	"Small wins add up. Knocking out %[3]s first builds the momentum for everything after it.",
	"You are %[4]d months closer to freedom than paying minimums alone. That is real progress.",
}

// GenerateInsight renders an insight for context. Unknown contexts render
// the general insight.
func (n *Narrator) GenerateInsight(debts []models.Debt, strategy AIDebtStrategy, context InsightContext) string {
	if len(strategy.DebtOrder) == 0 {
		if len(debts) == 0 {
			return "You have no active debts. Consider directing the freed cash flow toward savings."
		}
		return "Add minimum payments to your debts to build a payoff plan."
	}
	first := strategy.DebtOrder[0]

	switch context {
	case InsightWeekly:
		weekly := (first.MonthlyPayment + first.ExtraPayment) / weeksPerMonth
		return n.printer.Sprintf("This week, set aside %s for %s. Across your %d debts, staying on plan saves %s in interest.",
			n.money(weekly), first.CreditorName, len(strategy.DebtOrder), n.money(strategy.TotalInterestSaved))
	case InsightMonthly:
		return n.printer.Sprintf("This month, pay the minimums on everything and send an extra %s to %s. %s",
			n.money(strategy.CashFlowImpact), first.CreditorName, first.Reasoning)
	case InsightMotivational:
		tmpl := motivationalTemplates[n.pick(len(motivationalTemplates))]
		return fmt.Sprintf(tmpl, debtFreeLabel(strategy), n.money(strategy.TotalInterestSaved), first.CreditorName, strategy.MonthsReduced)
	default:
		return n.printer.Sprintf("Following the %s plan could save you %s in interest and make you debt-free %d months sooner. Focus first on %s: %s.",
			strategy.Name, n.money(strategy.TotalInterestSaved), strategy.MonthsReduced, first.CreditorName, first.Reasoning)
	}
}

func (n *Narrator) money(v float64) string {
	return n.printer.Sprintf("$%.2f", v)
}

func debtFreeLabel(s AIDebtStrategy) string {
	if s.ProjectedDebtFreeDate == "" {
		return "the end of the plan"
	}
	return s.ProjectedDebtFreeDate
}
