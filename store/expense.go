package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/SahilGite123/budget-buddy-together/models"
)

// ExpenseUpdate is a partial expense update. Pointer fields distinguish
// "set to zero value" from "leave alone"; value fields are applied only
// when non-zero.
type ExpenseUpdate struct {
	Title       string
	Amount      float64
	Category    models.Category
	Date        *time.Time
	Description *string
	IsGroup     *bool
	GroupID     *string
	PaidBy      string
	Members     []models.ExpenseMember
}

// AddExpense assigns a fresh id, appends the expense, and applies its side
// effects: a group-linked expense increments that group's running total,
// and the spending wallet is debited by the amount, floored at zero.
// Overdraft is absorbed, never an error; the wallet is advisory.
//
// A group-linked expense whose group does not exist is rejected with
// ErrNotFound and nothing is recorded.
func (s *Store) AddExpense(e models.Expense) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}

	if e.IsGroup && e.GroupID != "" {
		g := s.findGroup(e.GroupID)
		if g == nil {
			return models.Expense{}, fmt.Errorf("group %s: %w", e.GroupID, ErrNotFound)
		}
		g.TotalExpenses = round2(g.TotalExpenses + e.Amount)
	}

	if w := s.findWalletByType(models.WalletSpending); w != nil {
		w.Amount = round2(w.Amount - e.Amount)
		if w.Amount < 0 {
			w.Amount = 0
		}
	}

	s.expenses = append(s.expenses, e)
	return e, nil
}

// Expense returns the expense with the given id.
func (s *Store) Expense(id string) (models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Expense{}, fmt.Errorf("expense %s: %w", id, ErrNotFound)
}

// Expenses returns a copy of the expense collection in store order.
func (s *Store) Expenses() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// GroupExpenses returns the expenses linked to groupID, in store order.
func (s *Store) GroupExpenses(groupID string) []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Expense
	for _, e := range s.expenses {
		if e.GroupID == groupID {
			out = append(out, e)
		}
	}
	return out
}

// RecentExpenses returns up to limit expenses, newest date first. Ties keep
// insertion order.
func (s *Store) RecentExpenses(limit int) []models.Expense {
	s.mu.RLock()
	out := make([]models.Expense, len(s.expenses))
	copy(out, s.expenses)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// UpdateExpense merges the given fields into the matching expense and
// reconciles group running totals: when the amount or the group linkage
// changes, the old contribution is removed and the new one applied, so the
// accumulators cannot drift through the update path.
func (s *Store) UpdateExpense(id string, upd ExpenseUpdate) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var e *models.Expense
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			e = &s.expenses[i]
			break
		}
	}
	if e == nil {
		return models.Expense{}, fmt.Errorf("expense %s: %w", id, ErrNotFound)
	}

	oldGroupID, oldAmount := "", 0.0
	if e.IsGroup && e.GroupID != "" {
		oldGroupID, oldAmount = e.GroupID, e.Amount
	}

	next := *e
	if upd.Title != "" {
		next.Title = upd.Title
	}
	if upd.Amount > 0 {
		next.Amount = upd.Amount
	}
	if upd.Category != "" {
		next.Category = upd.Category
	}
	if upd.Date != nil {
		next.Date = *upd.Date
	}
	if upd.Description != nil {
		next.Description = *upd.Description
	}
	if upd.IsGroup != nil {
		next.IsGroup = *upd.IsGroup
	}
	if upd.GroupID != nil {
		next.GroupID = *upd.GroupID
	}
	if upd.PaidBy != "" {
		next.PaidBy = upd.PaidBy
	}
	if upd.Members != nil {
		next.Members = upd.Members
	}

	newGroupID, newAmount := "", 0.0
	if next.IsGroup && next.GroupID != "" {
		newGroupID, newAmount = next.GroupID, next.Amount
	}

	if oldGroupID != newGroupID || oldAmount != newAmount {
		if newGroupID != "" && s.findGroup(newGroupID) == nil {
			return models.Expense{}, fmt.Errorf("group %s: %w", newGroupID, ErrNotFound)
		}
		if oldGroupID != "" {
			if g := s.findGroup(oldGroupID); g != nil {
				g.TotalExpenses = round2(g.TotalExpenses - oldAmount)
			}
		}
		if newGroupID != "" {
			g := s.findGroup(newGroupID)
			g.TotalExpenses = round2(g.TotalExpenses + newAmount)
		}
	}

	*e = next
	return next, nil
}

// DeleteExpense removes the expense. A group-linked expense decrements its
// group's running total by the deleted amount.
func (s *Store) DeleteExpense(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.expenses {
		if e.ID != id {
			continue
		}
		if e.IsGroup && e.GroupID != "" {
			if g := s.findGroup(e.GroupID); g != nil {
				g.TotalExpenses = round2(g.TotalExpenses - e.Amount)
			}
		}
		s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
		return nil
	}
	return fmt.Errorf("expense %s: %w", id, ErrNotFound)
}
