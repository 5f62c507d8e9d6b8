package payoff

import (
	"testing"
)

func baseStrategy(t *testing.T) AIDebtStrategy {
	t.Helper()
	debts := samplePortfolio()
	return GenerateStrategy(HeuristicAvalanche, debts, NewFinancialSnapshot(debts, 4000, 3000, 5000), DefaultWeights(), testNow)
}

func TestSimulateScenarios_BaseReproducesStrategy(t *testing.T) {
	debts := samplePortfolio()
	snapshot := NewFinancialSnapshot(debts, 4000, 3000, 5000)
	baselineMonths, baselineInterest := MinimumOnlyBaseline(debts)

	for _, h := range []Heuristic{HeuristicAvalanche, HeuristicSnowball, HeuristicOptimized} {
		t.Run(string(h), func(t *testing.T) {
			base := GenerateStrategy(h, debts, snapshot, DefaultWeights(), testNow)

			sims := SimulateScenarios(debts, base, []ScenarioAssumptions{{}}, testNow)
			if len(sims) != 1 {
				t.Fatalf("expected 1 simulation, got %d", len(sims))
			}
			sim := sims[0]

			if sim.ProjectedDebtFree != base.ProjectedDebtFreeDate {
				t.Errorf("expected debt-free date %s, got %s", base.ProjectedDebtFreeDate, sim.ProjectedDebtFree)
			}
			if base.TotalInterestSaved <= 0 || base.MonthsReduced <= 0 {
				t.Fatalf("expected the plan to beat minimums, saved %.2f over %d months", base.TotalInterestSaved, base.MonthsReduced)
			}
			assertApprox(t, "interest", sim.TotalInterestPaid, baselineInterest-base.TotalInterestSaved, 1e-6)
			if sim.MonthsToDebtFree != baselineMonths-base.MonthsReduced {
				t.Errorf("expected %d months, got %d", baselineMonths-base.MonthsReduced, sim.MonthsToDebtFree)
			}
			if sim.NeverPaysOff != base.NeverPaysOff {
				t.Errorf("expected never pays off %v, got %v", base.NeverPaysOff, sim.NeverPaysOff)
			}
			if sim.Name != "Base Scenario" {
				t.Errorf("expected base scenario name, got %q", sim.Name)
			}
			if sim.SuccessProbability != 100 {
				t.Errorf("expected success 100, got %f", sim.SuccessProbability)
			}
			assertApprox(t, "total paid", sim.TotalAmountPaid, 11300+sim.TotalInterestPaid, 1e-6)
		})
	}
}

func TestSimulateScenarios_HorizonMatchesStrategyNotSlowestDebt(t *testing.T) {
	debts := samplePortfolio()
	base := baseStrategy(t)
	sim := SimulateScenarios(debts, base, []ScenarioAssumptions{{}}, testNow)[0]

	var slowest int
	for _, p := range base.DebtOrder {
		slowest = max(slowest, p.MonthsToPayoff)
	}
	if sim.MonthsToDebtFree >= slowest {
		t.Errorf("expected freed payments to roll over: %d months vs slowest standalone %d", sim.MonthsToDebtFree, slowest)
	}
}

func TestSimulateScenarios_Perturbations(t *testing.T) {
	debts := samplePortfolio()
	base := baseStrategy(t)
	increase := 5.0
	decrease := -30.0

	sims := SimulateScenarios(debts, base, []ScenarioAssumptions{
		{},
		{MonthlyExtraPayment: 200},
		{IncomeChangePercent: -20},
		{InterestRateChange: &increase},
		{InterestRateChange: &decrease},
	}, testNow)
	baseline, extra, lowerIncome, higherRate, lowerRate := sims[0], sims[1], sims[2], sims[3], sims[4]

	if extra.TotalInterestPaid >= baseline.TotalInterestPaid {
		t.Errorf("extra payment should reduce interest: %.2f vs %.2f", extra.TotalInterestPaid, baseline.TotalInterestPaid)
	}
	if lowerIncome.MonthsToDebtFree <= baseline.MonthsToDebtFree {
		t.Errorf("lower income should lengthen payoff: %d vs %d", lowerIncome.MonthsToDebtFree, baseline.MonthsToDebtFree)
	}
	if higherRate.TotalInterestPaid <= baseline.TotalInterestPaid {
		t.Errorf("higher rate should increase interest: %.2f vs %.2f", higherRate.TotalInterestPaid, baseline.TotalInterestPaid)
	}
	if lowerRate.TotalInterestPaid != 0 {
		t.Errorf("rates floored at 0 should accrue no interest, got %.2f", lowerRate.TotalInterestPaid)
	}
	if lowerIncome.SuccessProbability != 80 {
		t.Errorf("expected success 80, got %f", lowerIncome.SuccessProbability)
	}

	if *debts[0].InterestRate != 25 {
		t.Errorf("scenario mutated input rate: %f", *debts[0].InterestRate)
	}
}

func TestSimulateScenarios_PaymentRange(t *testing.T) {
	debts := samplePortfolio()
	base := baseStrategy(t)
	sim := SimulateScenarios(debts, base, []ScenarioAssumptions{{}}, testNow)[0]

	first := base.DebtOrder[0]
	if sim.MonthlyPaymentRange.Max != first.MonthlyPayment+first.ExtraPayment {
		t.Errorf("expected max %.2f, got %.2f", first.MonthlyPayment+first.ExtraPayment, sim.MonthlyPaymentRange.Max)
	}
	if sim.MonthlyPaymentRange.Min != 25 {
		t.Errorf("expected min 25, got %.2f", sim.MonthlyPaymentRange.Min)
	}
}

func TestSimulateScenarios_SkipsUnknownDebts(t *testing.T) {
	base := baseStrategy(t)
	sim := SimulateScenarios(samplePortfolio()[:1], base, []ScenarioAssumptions{{}}, testNow)[0]
	if sim.TotalAmountPaid <= 0 || sim.TotalAmountPaid > 2000 {
		t.Errorf("expected only debt a to be simulated, total paid %.2f", sim.TotalAmountPaid)
	}
}

func TestSuccessProbability(t *testing.T) {
	tests := []struct {
		name string
		a    ScenarioAssumptions
		want float64
	}{
		{"base", ScenarioAssumptions{}, 100},
		{"mild income drop", ScenarioAssumptions{IncomeChangePercent: -10}, 100},
		{"income drop", ScenarioAssumptions{IncomeChangePercent: -20}, 80},
		{"expense jump", ScenarioAssumptions{ExpenseChangePercent: 15}, 85},
		{"combined", ScenarioAssumptions{IncomeChangePercent: -20, ExpenseChangePercent: 15, UnexpectedExpenses: []float64{100, 200, 300}}, 50},
		{"floored", ScenarioAssumptions{UnexpectedExpenses: make([]float64, 25)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuccessProbability(tt.a); got != tt.want {
				t.Errorf("expected %.0f, got %.0f", tt.want, got)
			}
		})
	}
}

func TestScenarioName(t *testing.T) {
	up := 2.0
	tests := []struct {
		a    ScenarioAssumptions
		want string
	}{
		{ScenarioAssumptions{}, "Base Scenario"},
		{ScenarioAssumptions{Name: "Job loss"}, "Job loss"},
		{ScenarioAssumptions{IncomeChangePercent: -15}, "Income Decrease"},
		{ScenarioAssumptions{IncomeChangePercent: 5, MonthlyExtraPayment: 100}, "Income Increase + Extra Payments"},
		{ScenarioAssumptions{ExpenseChangePercent: 10, InterestRateChange: &up, UnexpectedExpenses: []float64{500}}, "Expense Increase + Rate Increase + Unexpected Expenses"},
	}
	for _, tt := range tests {
		if got := ScenarioName(tt.a); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
