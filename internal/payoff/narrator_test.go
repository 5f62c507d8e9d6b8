package payoff

import (
	"strings"
	"testing"
)

func narratedStrategy() AIDebtStrategy {
	return AIDebtStrategy{
		Name:                  "Debt Avalanche",
		TotalInterestSaved:    1234.5,
		MonthsReduced:         12,
		CashFlowImpact:        1250,
		ProjectedDebtFreeDate: "2027-03-15",
		DebtOrder: []DebtPriority{
			{DebtID: "a", CreditorName: "Card A", Priority: 1, MonthlyPayment: 50, ExtraPayment: 1250, Reasoning: "High interest rate (25.0%)"},
			{DebtID: "b", CreditorName: "Loan B", Priority: 2, MonthlyPayment: 200},
		},
	}
}

func TestGenerateInsight(t *testing.T) {
	n := NewNarrator(func(int) int { return 0 })
	debts := samplePortfolio()
	strategy := narratedStrategy()

	tests := []struct {
		context InsightContext
		want    []string
	}{
		{InsightGeneral, []string{"Debt Avalanche", "$1,234.50", "12 months", "Card A"}},
		{InsightWeekly, []string{"$300.00", "Card A", "2 debts", "$1,234.50"}},
		{InsightMonthly, []string{"$1,250.00", "Card A", "High interest rate (25.0%)"}},
		{InsightContext("unknown"), []string{"Debt Avalanche", "Card A"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.context), func(t *testing.T) {
			got := n.GenerateInsight(debts, strategy, tt.context)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("expected %q in %q", want, got)
				}
			}
		})
	}
}

func TestGenerateInsight_Motivational(t *testing.T) {
	strategy := narratedStrategy()
	wants := []string{"2027-03-15", "$1,234.50", "Card A", "12 months"}

	for i, want := range wants {
		n := NewNarrator(func(int) int { return i })
		got := n.GenerateInsight(nil, strategy, InsightMotivational)
		if !strings.Contains(got, want) {
			t.Errorf("template %d: expected %q in %q", i, want, got)
		}
		if strings.Contains(got, "%!") {
			t.Errorf("template %d: formatting error in %q", i, got)
		}
	}

	t.Run("random selector", func(t *testing.T) {
		n := NewNarrator(nil)
		for range 20 {
			if got := n.GenerateInsight(nil, strategy, InsightMotivational); got == "" {
				t.Fatal("expected a motivational message")
			}
		}
	})

	t.Run("no debt-free date", func(t *testing.T) {
		s := narratedStrategy()
		s.ProjectedDebtFreeDate = ""
		got := NewNarrator(func(int) int { return 0 }).GenerateInsight(nil, s, InsightMotivational)
		if !strings.Contains(got, "the end of the plan") {
			t.Errorf("unexpected message %q", got)
		}
	})
}

func TestGenerateInsight_EmptyStrategy(t *testing.T) {
	n := NewNarrator(nil)
	noDebts := n.GenerateInsight(nil, AIDebtStrategy{}, InsightGeneral)
	withDebts := n.GenerateInsight(samplePortfolio(), AIDebtStrategy{}, InsightWeekly)
	if noDebts == "" || withDebts == "" || noDebts == withDebts {
		t.Errorf("expected two distinct non-empty messages, got %q and %q", noDebts, withDebts)
	}
}

func TestInsightContextValid(t *testing.T) {
	for _, c := range []InsightContext{InsightGeneral, InsightWeekly, InsightMonthly, InsightMotivational} {
		if !c.Valid() {
			t.Errorf("expected %s to be valid", c)
		}
	}
	if InsightContext("daily").Valid() {
		t.Error("expected daily to be invalid")
	}
}
