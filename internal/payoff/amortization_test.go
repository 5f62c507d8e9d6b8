package payoff

import (
	"math"
	"testing"

	"debtpilot/internal/models"
)

func TestCalculatePayoff_ZeroInterest(t *testing.T) {
	tests := []struct {
		name    string
		balance float64
		payment float64
	}{
		{"uneven final payment", 1000, 300},
		{"exact multiple", 1200, 100},
		{"single payment", 500, 500},
		{"fractional balance", 999.5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debt := newDebt("d", "Zero", tt.balance, 0, tt.payment)
			calc := CalculatePayoff(debt, tt.payment, 0)

			want := int(math.Ceil(tt.balance / tt.payment))
			if calc.MonthsToPayoff != want {
				t.Errorf("expected %d months, got %d", want, calc.MonthsToPayoff)
			}
			if calc.TotalInterest != 0 {
				t.Errorf("expected zero interest, got %f", calc.TotalInterest)
			}
			if !calc.PaidOff {
				t.Error("expected debt to be paid off")
			}
		})
	}
}

func TestCalculatePayoff_MissingRateMeansZero(t *testing.T) {
	debt := newDebt("d", "No rate", 600, 0, 100)
	debt.InterestRate = nil

	calc := CalculatePayoff(debt, 100, 0)
	if calc.MonthsToPayoff != 6 || calc.TotalInterest != 0 {
		t.Errorf("expected 6 months and no interest, got %d months and %f", calc.MonthsToPayoff, calc.TotalInterest)
	}
}

func TestCalculatePayoff_ConvergesWithInterest(t *testing.T) {
	debt := newDebt("d", "Card", 5000, 20, 150)
	calc := CalculatePayoff(debt, 150, 0)

	if calc.MonthsToPayoff >= MaxPayoffMonths {
		t.Fatalf("expected convergence before the cap, got %d months", calc.MonthsToPayoff)
	}
	if calc.MonthsToPayoff != 50 {
		t.Errorf("expected 50 months, got %d", calc.MonthsToPayoff)
	}
	if calc.TotalInterest <= 0 {
		t.Errorf("expected positive interest, got %f", calc.TotalInterest)
	}
	assertApprox(t, "total amount", calc.TotalAmount, 5000+calc.TotalInterest, 1e-9)
	if calc.RemainingBalance > BalanceEpsilon {
		t.Errorf("expected balance at most %v, got %f", BalanceEpsilon, calc.RemainingBalance)
	}
	if calc.NeverPaysOff() {
		t.Error("converging plan must not report never-pays-off")
	}
}

func TestCalculatePayoff_Schedule(t *testing.T) {
	debt := newDebt("d", "Loan", 2400, 12, 250)
	calc := CalculatePayoff(debt, 250, 0)

	if len(calc.Schedule) != calc.MonthsToPayoff {
		t.Fatalf("expected %d schedule rows, got %d", calc.MonthsToPayoff, len(calc.Schedule))
	}

	var principal, interest float64
	for i, row := range calc.Schedule {
		if row.Month != i+1 {
			t.Errorf("row %d: expected month %d, got %d", i, i+1, row.Month)
		}
		assertApprox(t, "payment split", row.Principal+row.Interest, row.Payment, 1e-9)
		principal += row.Principal
		interest += row.Interest
	}
	assertApprox(t, "principal sum", principal, 2400, 1e-6)
	assertApprox(t, "interest sum", interest, calc.TotalInterest, 1e-9)

	first := calc.Schedule[0]
	assertApprox(t, "first month interest", first.Interest, 24, 1e-9)
	if last := calc.Schedule[len(calc.Schedule)-1]; last.RemainingBalance > BalanceEpsilon {
		t.Errorf("expected final balance near zero, got %f", last.RemainingBalance)
	}
}

func TestCalculatePayoff_ExtraPaymentMonotonic(t *testing.T) {
	debt := newDebt("d", "Card", 8000, 22, 200)

	prev := CalculatePayoff(debt, 200, 0)
	for _, extra := range []float64{50, 100, 200, 400, 800} {
		calc := CalculatePayoff(debt, 200, extra)
		if calc.MonthsToPayoff >= prev.MonthsToPayoff {
			t.Errorf("extra %.0f: expected fewer than %d months, got %d", extra, prev.MonthsToPayoff, calc.MonthsToPayoff)
		}
		if calc.TotalInterest >= prev.TotalInterest {
			t.Errorf("extra %.0f: expected less interest than %.2f, got %.2f", extra, prev.TotalInterest, calc.TotalInterest)
		}
		prev = calc
	}
}

func TestCalculatePayoff_NeverPaysOff(t *testing.T) {
	t.Run("payment below interest", func(t *testing.T) {
		debt := newDebt("d", "Underwater", 10000, 30, 100)
		calc := CalculatePayoff(debt, 100, 0)

		if calc.MonthsToPayoff != MaxPayoffMonths {
			t.Errorf("expected cap of %d months, got %d", MaxPayoffMonths, calc.MonthsToPayoff)
		}
		if !calc.NeverPaysOff() {
			t.Error("expected never-pays-off signal")
		}
		if calc.RemainingBalance <= 10000 {
			t.Errorf("expected balance to grow, got %f", calc.RemainingBalance)
		}
	})

	t.Run("zero payment", func(t *testing.T) {
		debt := newDebt("d", "Ignored", 500, 0, 0)
		calc := CalculatePayoff(debt, 0, 0)
		if !calc.NeverPaysOff() {
			t.Error("expected never-pays-off signal for zero payment")
		}
	})
}

func TestCalculatePayoff_Termination(t *testing.T) {
	inputs := []models.Debt{
		newDebt("1", "huge", 1e12, 99, 1),
		newDebt("2", "tiny payment", 100, 5, 0.0001),
		newDebt("3", "negative rate", 100, -12, 1),
		newDebt("4", "nan rate", 100, math.NaN(), 10),
	}
	for _, d := range inputs {
		calc := CalculatePayoff(d, d.Minimum(), 0)
		if calc.MonthsToPayoff > MaxPayoffMonths {
			t.Errorf("%s: exceeded cap with %d months", d.CreditorName, calc.MonthsToPayoff)
		}
	}

	nan := CalculatePayoff(inputs[3], 10, 0)
	if nan.TotalInterest != 0 || nan.MonthsToPayoff != 10 {
		t.Errorf("expected NaN rate to be treated as zero, got %d months and %f interest", nan.MonthsToPayoff, nan.TotalInterest)
	}
}

func TestCalculatePayoff_ZeroBalance(t *testing.T) {
	calc := CalculatePayoff(newDebt("d", "Paid", 0, 18, 50), 50, 0)
	if calc.MonthsToPayoff != 0 || len(calc.Schedule) != 0 {
		t.Errorf("expected no months for zero balance, got %d", calc.MonthsToPayoff)
	}
	if !calc.PaidOff || calc.NeverPaysOff() {
		t.Error("expected zero balance to count as paid off")
	}
}

func TestCalculatePayoff_DoesNotMutateDebt(t *testing.T) {
	debt := newDebt("d", "Card", 3000, 19.99, 90)
	CalculatePayoff(debt, 90, 100)
	if debt.CurrentBalance != 3000 || *debt.InterestRate != 19.99 {
		t.Errorf("input debt was modified: %+v", debt)
	}
}
