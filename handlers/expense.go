package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SahilGite123/budget-buddy-together/models"
	"github.com/SahilGite123/budget-buddy-together/store"
	"github.com/SahilGite123/budget-buddy-together/utils"
)

// shareTolerance is how far member shares may drift from the expense
// amount before the request is rejected (a cent, for equal splits that
// don't divide evenly).
const shareTolerance = 0.011

// POST /api/expenses
func (h *Handler) CreateExpense(c *gin.Context) {
	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			utils.BadRequest(c, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	expense := models.Expense{
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    models.ParseCategory(req.Category),
		Date:        date,
		Description: req.Description,
		IsGroup:     req.IsGroup,
		ReceiptURL:  req.ReceiptURL,
	}

	if req.IsGroup {
		if req.GroupID == "" {
			utils.BadRequest(c, "group_id is required for a group expense")
			return
		}
		expense.GroupID = req.GroupID
		expense.PaidBy = req.PaidBy
		if expense.PaidBy == "" {
			expense.PaidBy = h.store.CurrentUser()
		}
		members, err := buildMembers(req.Members, req.Amount)
		if err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		expense.Members = members
	}

	created, err := h.store.AddExpense(expense)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Expense added", created)
}

// GET /api/expenses
func (h *Handler) ListExpenses(c *gin.Context) {
	expenses := h.store.Expenses()

	if raw := c.Query("category"); raw != "" {
		category := models.ParseCategory(raw)
		filtered := make([]models.Expense, 0, len(expenses))
		for _, e := range expenses {
			if e.Category == category {
				filtered = append(filtered, e)
			}
		}
		expenses = filtered
	}

	utils.SuccessResponse(c, http.StatusOK, "", expenses)
}

// GET /api/expenses/:id
func (h *Handler) GetExpense(c *gin.Context) {
	expense, err := h.store.Expense(c.Param("id"))
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", expense)
}

// PUT /api/expenses/:id
func (h *Handler) UpdateExpense(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if req.Amount < 0 {
		utils.BadRequest(c, "amount must be positive")
		return
	}

	existing, err := h.store.Expense(id)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	upd := store.ExpenseUpdate{
		Title:       req.Title,
		Amount:      req.Amount,
		Description: req.Description,
		IsGroup:     req.IsGroup,
		GroupID:     req.GroupID,
		PaidBy:      req.PaidBy,
	}
	if req.Category != "" {
		upd.Category = models.ParseCategory(req.Category)
	}
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			utils.BadRequest(c, "invalid date, expected YYYY-MM-DD")
			return
		}
		upd.Date = &parsed
	}
	if req.Members != nil {
		amount := existing.Amount
		if req.Amount > 0 {
			amount = req.Amount
		}
		members, err := buildMembers(req.Members, amount)
		if err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		upd.Members = members
	}

	updated, err := h.store.UpdateExpense(id, upd)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Expense updated", updated)
}

// DELETE /api/expenses/:id
func (h *Handler) DeleteExpense(c *gin.Context) {
	if err := h.store.DeleteExpense(c.Param("id")); err != nil {
		h.respondStoreError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Expense deleted", nil)
}

// GET /api/transactions/recent
func (h *Handler) RecentTransactions(c *gin.Context) {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.BadRequest(c, "invalid limit")
			return
		}
		limit = parsed
	}
	utils.SuccessResponse(c, http.StatusOK, "", h.store.RecentExpenses(limit))
}

// buildMembers validates and converts member share inputs. Shares must sum
// to the expense amount within a cent.
func buildMembers(inputs []models.ExpenseMemberInput, amount float64) ([]models.ExpenseMember, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	members := make([]models.ExpenseMember, 0, len(inputs))
	var total float64
	for _, in := range inputs {
		members = append(members, models.ExpenseMember{
			UserID:   in.UserID,
			UserName: in.UserName,
			Amount:   in.Amount,
			Paid:     in.Paid,
		})
		total += in.Amount
	}
	total = utils.RoundToTwo(total)
	if math.Abs(total-amount) > shareTolerance {
		return nil, fmt.Errorf("member shares sum to %.2f, expected %.2f", total, amount)
	}
	return members, nil
}
