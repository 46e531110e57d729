package handlers

import (
	"net/http"
	"testing"

	"github.com/SahilGite123/budget-buddy-together/models"
	"github.com/SahilGite123/budget-buddy-together/store"
)

func TestCreateGroupAddsProtectedMember(t *testing.T) {
	s := store.New("")
	r := testRouter(s)

	w := doRequest(t, r, "POST", "/api/groups", models.CreateGroupRequest{
		Name: "Roommates",
		Members: []models.UserInput{
			{Name: "John", Email: "john@example.com"},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	groups := s.Groups()
	if len(groups) != 1 {
		t.Fatalf("len(Groups()) = %d, want 1", len(groups))
	}
	g := groups[0]
	if len(g.Members) != 2 {
		t.Fatalf("members = %d, want John plus the session user", len(g.Members))
	}
	if g.Members[0].ID != models.ProtectedMemberID {
		t.Errorf("first member = %s, want the protected member", g.Members[0].ID)
	}
	if g.Members[1].ID == "" {
		t.Error("new member was not assigned an id")
	}
	if g.TotalExpenses != 0 {
		t.Errorf("TotalExpenses = %.2f, want 0 at creation", g.TotalExpenses)
	}
}

func TestCreateGroupRequiresName(t *testing.T) {
	r := testRouter(store.New(""))

	w := doRequest(t, r, "POST", "/api/groups", models.CreateGroupRequest{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpdateGroupProtectedMember(t *testing.T) {
	s := store.New("")
	g := seedGroup(t, s, "Trip")
	r := testRouter(s)

	// Attempting to drop the session user from membership is rejected.
	w := doRequest(t, r, "PUT", "/api/groups/"+g.ID, models.UpdateGroupRequest{
		Members: []models.UserInput{
			{ID: "user-2", Name: "John", Email: "john@example.com"},
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body = %s", w.Code, w.Body.String())
	}

	got, _ := s.Group(g.ID)
	if len(got.Members) != 2 {
		t.Errorf("membership changed despite rejection: %d members", len(got.Members))
	}

	// Renaming alone is fine.
	w = doRequest(t, r, "PUT", "/api/groups/"+g.ID, models.UpdateGroupRequest{Name: "Road Trip"})
	if w.Code != http.StatusOK {
		t.Fatalf("rename: status = %d", w.Code)
	}
	got, _ = s.Group(g.ID)
	if got.Name != "Road Trip" {
		t.Errorf("Name = %q, want Road Trip", got.Name)
	}
}

func TestDeleteGroupEndpointCascades(t *testing.T) {
	s := store.New("")
	g := seedGroup(t, s, "Trip")
	s.AddExpense(models.Expense{
		Title: "Hotel", Amount: 200, Category: models.CategoryTravel,
		IsGroup: true, GroupID: g.ID, PaidBy: models.ProtectedMemberID,
	})
	r := testRouter(s)

	w := doRequest(t, r, "DELETE", "/api/groups/"+g.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := len(s.Expenses()); got != 0 {
		t.Errorf("expenses remain after cascade: %d", got)
	}

	w = doRequest(t, r, "GET", "/api/groups/"+g.ID+"/expenses", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expenses of deleted group: status = %d, want 404", w.Code)
	}
}

func TestGroupBalancesEndpoint(t *testing.T) {
	s := store.New("")
	g := seedGroup(t, s, "Trip")
	s.AddExpense(models.Expense{
		Title: "Hotel", Amount: 200, Category: models.CategoryTravel,
		IsGroup: true, GroupID: g.ID, PaidBy: models.ProtectedMemberID,
		Members: []models.ExpenseMember{
			{UserID: models.ProtectedMemberID, UserName: "You", Amount: 100, Paid: true},
			{UserID: "user-2", UserName: "John", Amount: 100},
		},
	})
	r := testRouter(s)

	w := doRequest(t, r, "GET", "/api/groups/"+g.ID+"/balances", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeResponse(t, w)
	items, ok := resp.Data.([]interface{})
	if !ok || len(items) != 2 {
		t.Fatalf("data = %v, want 2 member balances", resp.Data)
	}

	w = doRequest(t, r, "GET", "/api/groups/missing/balances", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown group: status = %d, want 404", w.Code)
	}
}
