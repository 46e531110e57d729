package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SahilGite123/budget-buddy-together/models"
	"github.com/SahilGite123/budget-buddy-together/store"
	"github.com/SahilGite123/budget-buddy-together/utils"
)

// GET /api/wallets
func (h *Handler) ListWallets(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.store.Wallets())
}

// PUT /api/wallets/:id
func (h *Handler) UpdateWallet(c *gin.Context) {
	var req models.UpdateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if req.MonthlyLimit != nil && *req.MonthlyLimit < 0 {
		utils.BadRequest(c, "monthly limit must not be negative")
		return
	}
	if req.SavingsGoal != nil && *req.SavingsGoal < 0 {
		utils.BadRequest(c, "savings goal must not be negative")
		return
	}

	updated, err := h.store.UpdateWallet(c.Param("id"), store.WalletUpdate{
		Amount:        req.Amount,
		MonthlyLimit:  req.MonthlyLimit,
		SavingsGoal:   req.SavingsGoal,
		FixedExpenses: req.FixedExpenses,
	})
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Wallet updated", updated)
}

// POST /api/wallets/transfer-to-savings
func (h *Handler) TransferToSavings(c *gin.Context) {
	var req models.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.store.TransferToSavings(req.Amount); err != nil {
		h.respondStoreError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Transfer complete", h.store.Wallets())
}

// POST /api/wallets/use-savings
func (h *Handler) UseSavings(c *gin.Context) {
	var req models.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.store.UseSavings(req.Amount); err != nil {
		h.respondStoreError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Transfer complete", h.store.Wallets())
}
