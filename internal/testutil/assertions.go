package testutil

import (
	"errors"
	"math"
	"testing"

	apperrors "debtpilot/internal/errors"
)

// CentTolerance is the largest difference two money amounts may have and
// still be considered equal.
const CentTolerance = 0.005

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s, cause: %v)", expectedCode, appErr.Code, appErr.Message, appErr.Internal)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertMoney checks that two amounts agree to the cent.
func AssertMoney(t *testing.T, name string, got, want float64) {
	t.Helper()

	if math.IsNaN(got) || math.Abs(got-want) > CentTolerance {
		t.Errorf("%s: expected %.2f, got %.4f", name, want, got)
	}
}
