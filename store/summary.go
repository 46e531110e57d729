package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/SahilGite123/budget-buddy-together/models"
)

// Derived views. Everything here is recomputed from the current collection
// contents on every call; nothing is cached. At this scale a full scan per
// read is cheaper than keeping invalidation correct.

// ExpenseSummary returns the dashboard rollup: total spent, this calendar
// month, this week (from the most recent Sunday at local midnight), and a
// per-category breakdown that only includes categories with expenses.
func (s *Store) ExpenseSummary() models.ExpenseSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	startOfWeek := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -int(now.Weekday()))

	summary := models.ExpenseSummary{
		ByCategory: make(map[models.Category]float64),
	}
	for _, e := range s.expenses {
		summary.TotalSpent = round2(summary.TotalSpent + e.Amount)
		if e.Date.Month() == now.Month() && e.Date.Year() == now.Year() {
			summary.ThisMonth = round2(summary.ThisMonth + e.Amount)
		}
		if !e.Date.Before(startOfWeek) {
			summary.ThisWeek = round2(summary.ThisWeek + e.Amount)
		}
		summary.ByCategory[e.Category] = round2(summary.ByCategory[e.Category] + e.Amount)
	}
	return summary
}

// ExpensesByCategory returns the per-category totals, categories without
// expenses omitted.
func (s *Store) ExpensesByCategory() map[models.Category]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[models.Category]float64)
	for _, e := range s.expenses {
		out[e.Category] = round2(out[e.Category] + e.Amount)
	}
	return out
}

// GroupExpenseSummaries computes, for every group, what the session user
// still owes and is still owed. An expense with no member shares
// contributes nothing to either figure.
func (s *Store) GroupExpenseSummaries() []models.GroupExpenseSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]models.GroupExpenseSummary, 0, len(s.groups))
	for _, g := range s.groups {
		summary := models.GroupExpenseSummary{
			GroupID:   g.ID,
			GroupName: g.Name,
			Total:     g.TotalExpenses,
		}
		for _, e := range s.expenses {
			if e.GroupID != g.ID {
				continue
			}
			if e.PaidBy == s.currentUser {
				// Others' unpaid shares are owed to the user.
				for _, m := range e.Members {
					if m.UserID != s.currentUser && !m.Paid {
						summary.YouAreOwed = round2(summary.YouAreOwed + m.Amount)
					}
				}
			} else {
				for _, m := range e.Members {
					if m.UserID == s.currentUser && !m.Paid {
						summary.YouOwe = round2(summary.YouOwe + m.Amount)
					}
				}
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// MemberBalances computes each group member's position: the sum they paid
// for the group, the sum of their shares, and the net of the two.
func (s *Store) MemberBalances(groupID string) ([]models.MemberBalance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g := s.findGroup(groupID)
	if g == nil {
		return nil, fmt.Errorf("group %s: %w", groupID, ErrNotFound)
	}

	balances := make([]models.MemberBalance, 0, len(g.Members))
	for _, member := range g.Members {
		b := models.MemberBalance{UserID: member.ID, Name: member.Name}
		for _, e := range s.expenses {
			if e.GroupID != groupID {
				continue
			}
			if e.PaidBy == member.ID {
				b.Paid = round2(b.Paid + e.Amount)
			}
			for _, m := range e.Members {
				if m.UserID == member.ID {
					b.Owed = round2(b.Owed + m.Amount)
				}
			}
		}
		b.Net = round2(b.Paid - b.Owed)
		balances = append(balances, b)
	}
	return balances, nil
}

// CategoryBreakdown returns the category totals with each category's share
// of total spending, largest first. Categories with no expenses are absent.
func (s *Store) CategoryBreakdown() []models.CategoryExpense {
	byCategory := s.ExpensesByCategory()

	var total float64
	for _, amount := range byCategory {
		total += amount
	}

	out := make([]models.CategoryExpense, 0, len(byCategory))
	for category, amount := range byCategory {
		pct := 0.0
		if total > 0 {
			pct = amount / total
		}
		out = append(out, models.CategoryExpense{
			Category:   category,
			Amount:     amount,
			Percentage: pct,
			Color:      models.CategoryColor(category),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// dailySeriesDays is the window of the per-category drill-down: today and
// the 29 days before it.
const dailySeriesDays = 30

// DailyCategoryExpenses returns per-day totals for one category over the
// last 30 days, oldest first. Every day in the window is present; days
// without expenses carry a zero amount so a chart gets a continuous axis.
func (s *Store) DailyCategoryExpenses(category models.Category) []models.DailyExpense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(dailySeriesDays - 1))

	byDay := make(map[string]float64)
	for _, e := range s.expenses {
		if e.Category != category || e.Date.Before(start) || e.Date.After(now) {
			continue
		}
		day := e.Date.Format("2006-01-02")
		byDay[day] = round2(byDay[day] + e.Amount)
	}

	out := make([]models.DailyExpense, 0, dailySeriesDays)
	for i := 0; i < dailySeriesDays; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		out = append(out, models.DailyExpense{Date: day, Amount: byDay[day]})
	}
	return out
}

// MonthlyTrend returns the total spent in each of the last months calendar
// months, oldest first and including the current month. Months with no
// expenses appear with a zero amount.
func (s *Store) MonthlyTrend(months int) []models.MonthlyExpenseTrend {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if months < 1 {
		months = 1
	}

	now := time.Now()
	out := make([]models.MonthlyExpenseTrend, 0, months)
	for i := months - 1; i >= 0; i-- {
		ref := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)

		var total float64
		for _, e := range s.expenses {
			if e.Date.Year() == ref.Year() && e.Date.Month() == ref.Month() {
				total = round2(total + e.Amount)
			}
		}
		out = append(out, models.MonthlyExpenseTrend{
			Month:  ref.Format("2006-01"),
			Amount: total,
		})
	}
	return out
}

// AnalyticsOverview returns the headline analytics figures: total spend,
// average monthly spend over the last six months, and the top category.
func (s *Store) AnalyticsOverview() models.AnalyticsOverview {
	const trendMonths = 6

	trend := s.MonthlyTrend(trendMonths)
	breakdown := s.CategoryBreakdown()

	var overview models.AnalyticsOverview
	var sixMonthTotal float64
	for _, m := range trend {
		sixMonthTotal += m.Amount
	}
	overview.AverageMonthly = round2(sixMonthTotal / trendMonths)

	for _, c := range breakdown {
		overview.TotalSpent = round2(overview.TotalSpent + c.Amount)
	}
	if len(breakdown) > 0 {
		overview.TopCategory = breakdown[0].Category
		overview.TopCategoryAmount = breakdown[0].Amount
	}
	return overview
}
