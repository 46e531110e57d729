package store

import (
	"time"

	"github.com/SahilGite123/budget-buddy-together/models"
)

// seed loads the sample data set: five expenses (two of them group
// expenses), the two groups they reference, and one wallet of each type.
// Expense dates are anchored to the current month so the month and week
// summaries have something to show on a fresh session.
func (s *Store) seed() {
	now := time.Now()
	day := func(d int) time.Time {
		return time.Date(now.Year(), now.Month(), d, 12, 0, 0, 0, now.Location())
	}

	you := models.User{ID: models.ProtectedMemberID, Name: "You", Email: "you@example.com"}

	s.groups = []models.Group{
		{
			ID:          "group-1",
			Name:        "Movie Buddies",
			Description: "For movie outings and related expenses",
			Members: []models.User{
				you,
				{ID: "user-2", Name: "John", Email: "john@example.com"},
				{ID: "user-3", Name: "Sarah", Email: "sarah@example.com"},
			},
			TotalExpenses: 42.00,
			CreatedAt:     now.AddDate(0, 0, -17),
		},
		{
			ID:          "group-2",
			Name:        "Work Team",
			Description: "For work-related expenses and team outings",
			Members: []models.User{
				you,
				{ID: "user-4", Name: "Mike", Email: "mike@example.com"},
				{ID: "user-5", Name: "Lisa", Email: "lisa@example.com"},
				{ID: "user-6", Name: "David", Email: "david@example.com"},
			},
			TotalExpenses: 132.75,
			CreatedAt:     now.AddDate(0, 0, -31),
		},
	}

	s.expenses = []models.Expense{
		{
			ID:          "expense-1",
			Title:       "Groceries",
			Amount:      78.50,
			Category:    models.CategoryFood,
			Date:        day(1),
			Description: "Weekly grocery shopping",
		},
		{
			ID:       "expense-2",
			Title:    "Movie Night",
			Amount:   42.00,
			Category: models.CategoryEntertainment,
			Date:     day(2),
			IsGroup:  true,
			GroupID:  "group-1",
			PaidBy:   models.ProtectedMemberID,
			Members: []models.ExpenseMember{
				{UserID: "user-1", UserName: "You", Amount: 14.00, Paid: true},
				{UserID: "user-2", UserName: "John", Amount: 14.00},
				{UserID: "user-3", UserName: "Sarah", Amount: 14.00},
			},
		},
		{
			ID:          "expense-3",
			Title:       "Rent",
			Amount:      950.00,
			Category:    models.CategoryHousing,
			Date:        day(1),
			Description: "Monthly rent payment",
		},
		{
			ID:       "expense-4",
			Title:    "Team Lunch",
			Amount:   132.75,
			Category: models.CategoryFood,
			Date:     day(3),
			IsGroup:  true,
			GroupID:  "group-2",
			PaidBy:   models.ProtectedMemberID,
			Members: []models.ExpenseMember{
				{UserID: "user-1", UserName: "You", Amount: 33.19, Paid: true},
				{UserID: "user-4", UserName: "Mike", Amount: 33.19},
				{UserID: "user-5", UserName: "Lisa", Amount: 33.19},
				{UserID: "user-6", UserName: "David", Amount: 33.19},
			},
		},
		{
			ID:          "expense-5",
			Title:       "Electricity Bill",
			Amount:      85.20,
			Category:    models.CategoryUtilities,
			Date:        day(2),
			Description: "Monthly electricity payment",
		},
	}

	s.wallets = []models.Wallet{
		{
			ID:           "wallet-1",
			Type:         models.WalletSpending,
			Amount:       1250.00,
			MonthlyLimit: 2000.00,
		},
		{
			ID:            "wallet-2",
			Type:          models.WalletSavings,
			Amount:        3500.00,
			SavingsGoal:   10000.00,
			FixedExpenses: 1200.00,
		},
	}
}
