package payoff

import (
	"math"
	"testing"

	"debtpilot/internal/models"
)

func TestCalculateDebtSummary(t *testing.T) {
	t.Run("empty portfolio", func(t *testing.T) {
		s := CalculateDebtSummary(nil, 5000, testNow)
		if s.DebtCount != 0 || s.TotalDebt != 0 || s.TotalMinimumPayments != 0 {
			t.Errorf("expected zero summary, got %+v", s)
		}
		if math.IsNaN(s.AverageInterestRate) || math.IsNaN(s.WeightedAverageRate) {
			t.Error("expected averages to be 0, not NaN")
		}
		if s.HighestInterestDebt != nil || s.SmallestBalanceDebt != nil {
			t.Error("expected no highlighted debts")
		}
	})

	t.Run("mixed portfolio", func(t *testing.T) {
		debts := samplePortfolio()
		s := CalculateDebtSummary(debts, 5000, testNow)

		if s.DebtCount != 3 {
			t.Errorf("expected 3 debts, got %d", s.DebtCount)
		}
		assertApprox(t, "total debt", s.TotalDebt, 11300, 1e-9)
		assertApprox(t, "total minimums", s.TotalMinimumPayments, 275, 1e-9)
		assertApprox(t, "average rate", s.AverageInterestRate, 40.0/3, 1e-9)
		assertApprox(t, "weighted rate", s.WeightedAverageRate, (25*1000+10*10000+5*300)/11300.0, 1e-9)
		assertApprox(t, "debt to income", s.DebtToIncomeRatio, 5.5, 1e-9)

		if s.HighestInterestDebt == nil || s.HighestInterestDebt.ID != "a" {
			t.Errorf("expected highest interest debt a, got %+v", s.HighestInterestDebt)
		}
		if s.SmallestBalanceDebt == nil || s.SmallestBalanceDebt.ID != "c" {
			t.Errorf("expected smallest balance debt c, got %+v", s.SmallestBalanceDebt)
		}

		slowest := CalculatePayoff(debts[1], 200, 0)
		if s.MonthsToPayoffAtMinimum != slowest.MonthsToPayoff {
			t.Errorf("expected %d months, got %d", slowest.MonthsToPayoff, s.MonthsToPayoffAtMinimum)
		}
		wantDate := testNow.AddDate(0, slowest.MonthsToPayoff, 0).Format("2006-01-02")
		if s.ProjectedPayoffDate != wantDate {
			t.Errorf("expected projected date %s, got %s", wantDate, s.ProjectedPayoffDate)
		}
		if len(s.UnpayableDebtIDs) != 0 {
			t.Errorf("expected no unpayable debts, got %v", s.UnpayableDebtIDs)
		}
	})

	t.Run("highlighted debts are copies", func(t *testing.T) {
		debts := samplePortfolio()
		s := CalculateDebtSummary(debts, 0, testNow)
		s.HighestInterestDebt.CurrentBalance = 1
		if debts[0].CurrentBalance != 1000 {
			t.Error("summary must not alias the caller's slice")
		}
	})

	t.Run("zero income and unpayable debt", func(t *testing.T) {
		debts := []models.Debt{
			newDebt("ok", "Fine", 1000, 10, 100),
			newDebt("bad", "Underwater", 20000, 24, 50),
		}
		s := CalculateDebtSummary(debts, 0, testNow)
		if s.DebtToIncomeRatio != 0 {
			t.Errorf("expected ratio 0 with zero income, got %f", s.DebtToIncomeRatio)
		}
		if len(s.UnpayableDebtIDs) != 1 || s.UnpayableDebtIDs[0] != "bad" {
			t.Errorf("expected [bad] unpayable, got %v", s.UnpayableDebtIDs)
		}
		if s.MonthsToPayoffAtMinimum != MaxPayoffMonths {
			t.Errorf("expected horizon capped at %d, got %d", MaxPayoffMonths, s.MonthsToPayoffAtMinimum)
		}
	})
}
