package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SahilGite123/budget-buddy-together/config"
	"github.com/SahilGite123/budget-buddy-together/handlers"
	"github.com/SahilGite123/budget-buddy-together/logging"
	"github.com/SahilGite123/budget-buddy-together/middleware"
	"github.com/SahilGite123/budget-buddy-together/store"
)

func main() {
	// Load configuration
	config.Load()
	if err := config.AppConfig.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(config.AppConfig.LogLevel)

	// Build the session store. All state is in memory and lost on exit.
	var st *store.Store
	if config.AppConfig.Seed {
		st = store.NewSeeded(config.AppConfig.CurrentUserID)
	} else {
		st = store.New(config.AppConfig.CurrentUserID)
	}
	h := handlers.New(st)

	// Setup router
	gin.SetMode(config.AppConfig.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": config.AppConfig.AppName,
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// Expenses
		api.POST("/expenses", h.CreateExpense)
		api.GET("/expenses", h.ListExpenses)
		api.GET("/expenses/:id", h.GetExpense)
		api.PUT("/expenses/:id", h.UpdateExpense)
		api.DELETE("/expenses/:id", h.DeleteExpense)
		api.GET("/transactions/recent", h.RecentTransactions)

		// Groups
		api.POST("/groups", h.CreateGroup)
		api.GET("/groups", h.ListGroups)
		api.GET("/groups/:id", h.GetGroup)
		api.PUT("/groups/:id", h.UpdateGroup)
		api.DELETE("/groups/:id", h.DeleteGroup)
		api.GET("/groups/:id/expenses", h.GetGroupExpenses)
		api.GET("/groups/:id/balances", h.GetGroupBalances)

		// Wallets
		api.GET("/wallets", h.ListWallets)
		api.PUT("/wallets/:id", h.UpdateWallet)
		api.POST("/wallets/transfer-to-savings", h.TransferToSavings)
		api.POST("/wallets/use-savings", h.UseSavings)

		// Summaries and analytics
		api.GET("/summary", h.GetSummary)
		api.GET("/summary/groups", h.GetGroupSummaries)
		api.GET("/categories", h.ListCategories)
		api.GET("/analytics/overview", h.AnalyticsOverview)
		api.GET("/analytics/categories", h.CategoryBreakdown)
		api.GET("/analytics/categories/:category/daily", h.DailyCategoryExpenses)
		api.GET("/analytics/trend", h.MonthlyTrend)
	}

	addr := "0.0.0.0:" + config.AppConfig.Port
	slog.Info("Server starting", "app", config.AppConfig.AppName, "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
