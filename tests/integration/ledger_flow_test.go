package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestTransactionFlow_CreateListDelete(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "txflow", "password123")
	token := app.loginUser(t, "txflow", "password123")

	// Create an income and an expense
	rec := app.request("POST", "/api/v1/transactions",
		`{"amount":"1000","description":"salary","type":"income","category":"Salary"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create income failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/transactions",
		`{"amount":"250.75","description":"groceries","type":"expense","category":"Food"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create expense failed: %d %s", rec.Code, rec.Body.String())
	}
	created := parseJSON(t, rec)
	expenseID := created["id"].(string)

	// List
	rec = app.request("GET", "/api/v1/transactions", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
	}
	list := parseJSON(t, rec)["transactions"].([]interface{})
	if len(list) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(list))
	}

	// Summary reflects both records
	rec = app.request("GET", "/api/v1/summary", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)
	if summary["income"] != "1000" {
		t.Errorf("expected income 1000, got %v", summary["income"])
	}
	if summary["expense"] != "250.75" {
		t.Errorf("expected expense 250.75, got %v", summary["expense"])
	}
	if summary["balance"] != "749.25" {
		t.Errorf("expected balance 749.25, got %v", summary["balance"])
	}

	// Delete the expense; repeat delete stays 204
	rec = app.request("DELETE", "/api/v1/transactions/"+expenseID, "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("DELETE", "/api/v1/transactions/"+expenseID, "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("repeat delete should be 204, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/transactions", "", token)
	list = parseJSON(t, rec)["transactions"].([]interface{})
	if len(list) != 1 {
		t.Fatalf("expected 1 transaction after delete, got %d", len(list))
	}
}

func TestTransactionFlow_UserIsolation(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "alice2", "password123")
	app.registerUser(t, "mallory", "password123")
	aliceToken := app.loginUser(t, "alice2", "password123")
	malloryToken := app.loginUser(t, "mallory", "password123")

	rec := app.request("POST", "/api/v1/transactions",
		`{"amount":"10","description":"coffee","type":"expense"}`, aliceToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", rec.Code)
	}
	txID := parseJSON(t, rec)["id"].(string)

	// Mallory sees nothing and cannot delete Alice's record
	rec = app.request("GET", "/api/v1/transactions", "", malloryToken)
	list := parseJSON(t, rec)["transactions"].([]interface{})
	if len(list) != 0 {
		t.Fatalf("expected empty list for other user, got %d", len(list))
	}

	rec = app.request("DELETE", "/api/v1/transactions/"+txID, "", malloryToken)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("cross-user delete should be a 204 no-op, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/transactions", "", aliceToken)
	list = parseJSON(t, rec)["transactions"].([]interface{})
	if len(list) != 1 {
		t.Fatal("expected Alice's record to survive cross-user delete")
	}
}

func TestDebtFlow_LendingBalances(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "lender", "password123")
	token := app.loginUser(t, "lender", "password123")

	for _, body := range []string{
		`{"name":"Alex","amount":"100","type":"lent"}`,
		`{"name":"alex","amount":"40","type":"borrowed"}`,
		`{"name":"Kim","amount":"10","type":"borrowed"}`,
	} {
		rec := app.request("POST", "/api/v1/debts", body, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create debt failed: %d %s", rec.Code, rec.Body.String())
		}
	}

	rec := app.request("GET", "/api/v1/lending", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("lending failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)

	people := result["people"].([]interface{})
	if len(people) != 2 {
		t.Fatalf("expected 2 people after case-insensitive grouping, got %d", len(people))
	}
	if result["owed_to_user"] != "60" {
		t.Errorf("expected owed_to_user 60, got %v", result["owed_to_user"])
	}
	if result["owed_by_user"] != "10" {
		t.Errorf("expected owed_by_user 10, got %v", result["owed_by_user"])
	}

	// Find Alex's net position
	var alexBalance interface{}
	for _, p := range people {
		person := p.(map[string]interface{})
		if person["name"] == "Alex" || person["name"] == "alex" {
			alexBalance = person["balance"]
		}
	}
	if alexBalance != "60" {
		t.Errorf("expected Alex balance 60, got %v", alexBalance)
	}
}

func TestSummaryFlow_CategoriesAndMonthly(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "analyst", "password123")
	token := app.loginUser(t, "analyst", "password123")

	entries := []struct {
		amount, description, category, date string
	}{
		{"30", "lunch", "Food", "2025-02-10T00:00:00Z"},
		{"20", "mystery", "", "2025-01-05T00:00:00Z"},
		{"15", "dinner", "Food", "2025-01-20T00:00:00Z"},
	}
	for _, e := range entries {
		body := fmt.Sprintf(`{"amount":%q,"description":%q,"type":"expense","category":%q,"date":%q}`,
			e.amount, e.description, e.category, e.date)
		rec := app.request("POST", "/api/v1/transactions", body, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create failed: %d %s", rec.Code, rec.Body.String())
		}
	}

	rec := app.request("GET", "/api/v1/summary/categories?type=expense", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("categories failed: %d %s", rec.Code, rec.Body.String())
	}
	categories := parseJSON(t, rec)["categories"].(map[string]interface{})
	if categories["Food"] != "45" {
		t.Errorf("expected Food 45, got %v", categories["Food"])
	}
	if categories["Uncategorized"] != "20" {
		t.Errorf("expected Uncategorized 20, got %v", categories["Uncategorized"])
	}

	rec = app.request("GET", "/api/v1/summary/monthly?type=expense", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("monthly failed: %d %s", rec.Code, rec.Body.String())
	}
	months := parseJSON(t, rec)["months"].([]interface{})
	if len(months) != 2 {
		t.Fatalf("expected 2 months, got %d", len(months))
	}
	// Newest first: Feb then Jan
	first := months[0].(map[string]interface{})
	second := months[1].(map[string]interface{})
	if first["label"] != "Feb" || first["amount"] != "30" {
		t.Errorf("expected Feb 30 first, got %v %v", first["label"], first["amount"])
	}
	if second["label"] != "Jan" || second["amount"] != "35" {
		t.Errorf("expected Jan 35 second, got %v %v", second["label"], second["amount"])
	}
}
