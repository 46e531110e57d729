// Package store owns the in-memory expense, group and wallet collections.
// It is the only component allowed to mutate them; everything else consumes
// its snapshots and derived views. State lives for the lifetime of the
// process and is seeded from sample data at startup.
package store

import (
	"errors"
	"math"
	"sync"

	"github.com/SahilGite123/budget-buddy-together/models"
)

var (
	// ErrNotFound is returned when a referenced expense, group or wallet
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientFunds is returned by the wallet transfers when the
	// source wallet cannot cover the requested amount. Balances are left
	// unchanged.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Store holds the three collections behind a single lock. Reads take the
// read lock and return copies; callers never see internal slices.
type Store struct {
	mu          sync.RWMutex
	currentUser string
	expenses    []models.Expense
	groups      []models.Group
	wallets     []models.Wallet
}

// New returns an empty store. currentUser identifies the session user for
// the owe/owed summaries; pass models.ProtectedMemberID unless testing.
func New(currentUser string) *Store {
	if currentUser == "" {
		currentUser = models.ProtectedMemberID
	}
	return &Store{currentUser: currentUser}
}

// NewSeeded returns a store populated with the sample data set.
func NewSeeded(currentUser string) *Store {
	s := New(currentUser)
	s.seed()
	return s
}

// CurrentUser returns the session user id the summaries are computed for.
func (s *Store) CurrentUser() string {
	return s.currentUser
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
