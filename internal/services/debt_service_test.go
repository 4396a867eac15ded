package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Yashuu213/MoneyViewer/internal/models"
	"github.com/Yashuu213/MoneyViewer/internal/testutil"
)

func TestCreateDebt(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)

		debt, err := svc.CreateDebt(user.ID, "Alex", models.DebtTypeLent, decimal.NewFromInt(100), "dinner", time.Now())
		testutil.AssertNoError(t, err)

		if debt.ID == "" {
			t.Fatal("expected non-empty debt ID")
		}
		if debt.Name != "Alex" || debt.Type != models.DebtTypeLent {
			t.Errorf("unexpected debt: %+v", debt)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateDebt(user.ID, "", models.DebtTypeLent, decimal.NewFromInt(100), "", time.Now())
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("invalid_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateDebt(user.ID, "Alex", models.DebtType("owed"), decimal.NewFromInt(100), "", time.Now())
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestGetUserDebts(t *testing.T) {
	t.Run("returns_user_debts_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)

		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestDebt(t, db, user1.ID, "Alex", models.DebtTypeLent, 100)
		testutil.CreateTestDebt(t, db, user2.ID, "Kim", models.DebtTypeBorrowed, 40)

		list, err := svc.GetUserDebts(user1.ID)
		testutil.AssertNoError(t, err)

		if len(list) != 1 || list[0].Name != "Alex" {
			t.Errorf("expected only user1's debt, got %+v", list)
		}
	})
}

func TestDeleteDebt(t *testing.T) {
	t.Run("deletes_own_debt", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)

		debt := testutil.CreateTestDebt(t, db, user.ID, "Alex", models.DebtTypeLent, 100)

		testutil.AssertNoError(t, svc.DeleteDebt(user.ID, debt.ID))

		list, err := svc.GetUserDebts(user.ID)
		testutil.AssertNoError(t, err)
		if len(list) != 0 {
			t.Errorf("expected no debts after delete, got %d", len(list))
		}
	})

	t.Run("unknown_id_is_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.AssertNoError(t, svc.DeleteDebt(user.ID, "missing"))
	})
}
