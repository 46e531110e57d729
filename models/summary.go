package models

// ExpenseSummary aggregates the whole expense collection for the dashboard.
type ExpenseSummary struct {
	TotalSpent float64              `json:"total_spent"`
	ThisMonth  float64              `json:"this_month"`
	ThisWeek   float64              `json:"this_week"`
	ByCategory map[Category]float64 `json:"by_category"`
}

// GroupExpenseSummary is the "you owe / you are owed" rollup for one group,
// from the perspective of the session user.
type GroupExpenseSummary struct {
	GroupID    string  `json:"group_id"`
	GroupName  string  `json:"group_name"`
	Total      float64 `json:"total"`
	YouOwe     float64 `json:"you_owe"`
	YouAreOwed float64 `json:"you_are_owed"`
}

// MemberBalance is one member's position inside a group: what they paid for
// the group, the sum of their shares, and the net (positive = owed money).
type MemberBalance struct {
	UserID string  `json:"user_id"`
	Name   string  `json:"name"`
	Paid   float64 `json:"paid"`
	Owed   float64 `json:"owed"`
	Net    float64 `json:"net"`
}

// CategoryExpense is one slice of the category breakdown.
type CategoryExpense struct {
	Category   Category `json:"category"`
	Amount     float64  `json:"amount"`
	Percentage float64  `json:"percentage"`
	Color      string   `json:"color"`
}

// DailyExpense is one day's total within a category, used by the
// per-category 30-day drill-down.
type DailyExpense struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Amount float64 `json:"amount"`
}

// MonthlyExpenseTrend is one month's total in the spending trend.
// Months with no expenses are present with a zero amount.
type MonthlyExpenseTrend struct {
	Month  string  `json:"month"` // YYYY-MM
	Amount float64 `json:"amount"`
}

// AnalyticsOverview is the headline figures of the analytics page.
type AnalyticsOverview struct {
	TotalSpent        float64  `json:"total_spent"`
	AverageMonthly    float64  `json:"average_monthly"`
	TopCategory       Category `json:"top_category,omitempty"`
	TopCategoryAmount float64  `json:"top_category_amount"`
}

// CategoryInfo pairs a category with its presentation color.
type CategoryInfo struct {
	Name  Category `json:"name"`
	Color string   `json:"color"`
}
