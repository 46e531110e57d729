package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SahilGite123/budget-buddy-together/models"
	"github.com/SahilGite123/budget-buddy-together/utils"
)

// GET /api/summary
func (h *Handler) GetSummary(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.store.ExpenseSummary())
}

// GET /api/summary/groups
func (h *Handler) GetGroupSummaries(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.store.GroupExpenseSummaries())
}

// GET /api/categories
func (h *Handler) ListCategories(c *gin.Context) {
	infos := make([]models.CategoryInfo, 0, len(models.Categories))
	for _, category := range models.Categories {
		infos = append(infos, models.CategoryInfo{
			Name:  category,
			Color: models.CategoryColor(category),
		})
	}
	utils.SuccessResponse(c, http.StatusOK, "", infos)
}

// GET /api/analytics/overview
func (h *Handler) AnalyticsOverview(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.store.AnalyticsOverview())
}

// GET /api/analytics/categories
func (h *Handler) CategoryBreakdown(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.store.CategoryBreakdown())
}

// GET /api/analytics/categories/:category/daily
func (h *Handler) DailyCategoryExpenses(c *gin.Context) {
	raw := c.Param("category")
	if !models.IsValidCategory(raw) {
		utils.BadRequest(c, "unknown category")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "",
		h.store.DailyCategoryExpenses(models.Category(raw)))
}

// GET /api/analytics/trend
func (h *Handler) MonthlyTrend(c *gin.Context) {
	months := 6
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 24 {
			utils.BadRequest(c, "months must be between 1 and 24")
			return
		}
		months = parsed
	}
	utils.SuccessResponse(c, http.StatusOK, "", h.store.MonthlyTrend(months))
}
