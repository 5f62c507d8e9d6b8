package pagination_test

import (
	"testing"

	"debtpilot/internal/models"
	"debtpilot/internal/pagination"
	"debtpilot/internal/testutil"
)

func TestDefaults(t *testing.T) {
	tests := []struct {
		name         string
		in           pagination.PageRequest
		wantPage     int
		wantPageSize int
	}{
		{"empty", pagination.PageRequest{}, 1, pagination.DefaultPageSize},
		{"kept", pagination.PageRequest{Page: 3, PageSize: 5}, 3, 5},
		{"negative", pagination.PageRequest{Page: -2, PageSize: -1}, 1, pagination.DefaultPageSize},
		{"clamped", pagination.PageRequest{Page: 1, PageSize: 500}, 1, pagination.MaxPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.in
			req.Defaults()
			if req.Page != tt.wantPage || req.PageSize != tt.wantPageSize {
				t.Errorf("got page %d size %d, want %d/%d", req.Page, req.PageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := pagination.NewPageResponse[int](nil, 1, 20, 41)
	if resp.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", resp.TotalPages)
	}
	if resp.Data == nil {
		t.Error("expected empty slice, not nil")
	}
}

func TestFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	userID := testutil.NewUserID()
	for i := 1; i <= 5; i++ {
		testutil.CreateTestDebt(t, db, userID, float64(i*100), 10, 25)
	}
	testutil.CreateTestDebt(t, db, testutil.NewUserID(), 999, 10, 25)

	query := db.Model(&models.Debt{}).Where("user_id = ?", userID)

	page, err := pagination.Find[models.Debt](query, pagination.PageRequest{Page: 2, PageSize: 2}, "current_balance ASC")
	testutil.AssertNoError(t, err)
	if page.TotalItems != 5 || page.TotalPages != 3 {
		t.Errorf("expected 5 items over 3 pages, got %d/%d", page.TotalItems, page.TotalPages)
	}
	if len(page.Data) != 2 || page.Data[0].CurrentBalance != 300 || page.Data[1].CurrentBalance != 400 {
		t.Errorf("unexpected page contents %+v", page.Data)
	}

	// The query is reusable after Find.
	page, err = pagination.Find[models.Debt](query, pagination.PageRequest{}, "current_balance DESC")
	testutil.AssertNoError(t, err)
	if len(page.Data) != 5 || page.Data[0].CurrentBalance != 500 {
		t.Errorf("unexpected first page %+v", page.Data)
	}
}
