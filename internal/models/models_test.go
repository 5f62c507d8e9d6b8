package models_test

import (
	"testing"

	"debtpilot/internal/models"
	"debtpilot/internal/testutil"
	"debtpilot/internal/uuid"
)

func TestBaseAssignsID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	debt := testutil.CreateTestDebt(t, db, testutil.NewUserID(), 500, 10, 25)
	if !uuid.IsValid(debt.ID) {
		t.Errorf("expected generated UUID, got %q", debt.ID)
	}

	preset := uuid.New()
	kept := &models.Debt{Base: models.Base{ID: preset}, UserID: "u", CreditorName: "Bank", DebtType: models.DebtTypeOther}
	testutil.AssertNoError(t, db.Create(kept).Error)
	if kept.ID != preset {
		t.Errorf("expected preset id %s to be kept, got %s", preset, kept.ID)
	}

	bad := &models.Debt{Base: models.Base{ID: "not-a-uuid"}, UserID: "u", CreditorName: "Bank", DebtType: models.DebtTypeOther}
	if err := db.Create(bad).Error; err == nil {
		t.Error("expected malformed id to be rejected")
	}
}

func TestAuditLogAssignsID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	entry := &models.AuditLog{UserID: "u", Action: models.AuditCreateDebt, ResourceType: models.AuditResourceDebt}
	testutil.AssertNoError(t, db.Create(entry).Error)
	if !uuid.IsValid(entry.ID) || entry.CreatedAt.IsZero() {
		t.Errorf("expected id and timestamp, got %+v", entry)
	}
}
