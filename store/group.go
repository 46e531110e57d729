package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SahilGite123/budget-buddy-together/models"
)

// GroupUpdate is a partial group update. A nil Members slice leaves the
// membership untouched.
type GroupUpdate struct {
	Name        string
	Description *string
	Members     []models.User
}

func (s *Store) findGroup(id string) *models.Group {
	for i := range s.groups {
		if s.groups[i].ID == id {
			return &s.groups[i]
		}
	}
	return nil
}

// AddGroup assigns a fresh id and creation time, starts the running total
// at zero, and appends the group.
func (s *Store) AddGroup(g models.Group) models.Group {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	g.CreatedAt = time.Now()
	g.TotalExpenses = 0
	s.groups = append(s.groups, g)
	return g
}

// Group returns the group with the given id.
func (s *Store) Group(id string) (models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if g := s.findGroup(id); g != nil {
		return *g, nil
	}
	return models.Group{}, fmt.Errorf("group %s: %w", id, ErrNotFound)
}

// Groups returns a copy of the group collection in store order.
func (s *Store) Groups() []models.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Group, len(s.groups))
	copy(out, s.groups)
	return out
}

// UpdateGroup merges the given fields into the matching group. The running
// total is not touched here; it belongs to the expense mutators.
func (s *Store) UpdateGroup(id string, upd GroupUpdate) (models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.findGroup(id)
	if g == nil {
		return models.Group{}, fmt.Errorf("group %s: %w", id, ErrNotFound)
	}

	if upd.Name != "" {
		g.Name = upd.Name
	}
	if upd.Description != nil {
		g.Description = *upd.Description
	}
	if upd.Members != nil {
		g.Members = upd.Members
	}
	return *g, nil
}

// DeleteGroup removes the group and cascades: every expense linked to it is
// deleted as well. The cascade is irreversible.
func (s *Store) DeleteGroup(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i, g := range s.groups {
		if g.ID == id {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("group %s: %w", id, ErrNotFound)
	}

	kept := s.expenses[:0]
	for _, e := range s.expenses {
		if e.GroupID != id {
			kept = append(kept, e)
		}
	}
	s.expenses = kept
	return nil
}
