package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/SahilGite123/budget-buddy-together/models"
	"github.com/SahilGite123/budget-buddy-together/store"
	"github.com/SahilGite123/budget-buddy-together/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testRouter wires the full route table against a fresh store.
func testRouter(s *store.Store) *gin.Engine {
	h := New(s)
	r := gin.New()
	api := r.Group("/api")

	api.POST("/expenses", h.CreateExpense)
	api.GET("/expenses", h.ListExpenses)
	api.GET("/expenses/:id", h.GetExpense)
	api.PUT("/expenses/:id", h.UpdateExpense)
	api.DELETE("/expenses/:id", h.DeleteExpense)
	api.GET("/transactions/recent", h.RecentTransactions)

	api.POST("/groups", h.CreateGroup)
	api.GET("/groups", h.ListGroups)
	api.GET("/groups/:id", h.GetGroup)
	api.PUT("/groups/:id", h.UpdateGroup)
	api.DELETE("/groups/:id", h.DeleteGroup)
	api.GET("/groups/:id/expenses", h.GetGroupExpenses)
	api.GET("/groups/:id/balances", h.GetGroupBalances)

	api.GET("/wallets", h.ListWallets)
	api.PUT("/wallets/:id", h.UpdateWallet)
	api.POST("/wallets/transfer-to-savings", h.TransferToSavings)
	api.POST("/wallets/use-savings", h.UseSavings)

	api.GET("/summary", h.GetSummary)
	api.GET("/summary/groups", h.GetGroupSummaries)
	api.GET("/categories", h.ListCategories)
	api.GET("/analytics/overview", h.AnalyticsOverview)
	api.GET("/analytics/categories", h.CategoryBreakdown)
	api.GET("/analytics/categories/:category/daily", h.DailyCategoryExpenses)
	api.GET("/analytics/trend", h.MonthlyTrend)

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return resp
}

func seedGroup(t *testing.T, s *store.Store, name string) models.Group {
	t.Helper()
	return s.AddGroup(models.Group{
		Name: name,
		Members: []models.User{
			{ID: models.ProtectedMemberID, Name: "You", Email: "you@example.com"},
			{ID: "user-2", Name: "John", Email: "john@example.com"},
		},
	})
}
