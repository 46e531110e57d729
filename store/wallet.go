package store

import (
	"fmt"

	"github.com/SahilGite123/budget-buddy-together/models"
)

// WalletUpdate is a partial wallet update. Every field is optional; set
// fields are written as-is, with no invariant checks. Callers that want a
// guarded balance change use the transfer operations instead.
type WalletUpdate struct {
	Amount        *float64
	MonthlyLimit  *float64
	SavingsGoal   *float64
	FixedExpenses *float64
}

func (s *Store) findWallet(id string) *models.Wallet {
	for i := range s.wallets {
		if s.wallets[i].ID == id {
			return &s.wallets[i]
		}
	}
	return nil
}

// findWalletByType returns the first wallet of the given type. Wallets are
// seeded once per type and never created through the API, so the lookup is
// unambiguous.
func (s *Store) findWalletByType(t models.WalletType) *models.Wallet {
	for i := range s.wallets {
		if s.wallets[i].Type == t {
			return &s.wallets[i]
		}
	}
	return nil
}

// Wallets returns a copy of the wallet collection.
func (s *Store) Wallets() []models.Wallet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Wallet, len(s.wallets))
	copy(out, s.wallets)
	return out
}

// Wallet returns the wallet with the given id.
func (s *Store) Wallet(id string) (models.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if w := s.findWallet(id); w != nil {
		return *w, nil
	}
	return models.Wallet{}, fmt.Errorf("wallet %s: %w", id, ErrNotFound)
}

// WalletByType returns the wallet of the given type.
func (s *Store) WalletByType(t models.WalletType) (models.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if w := s.findWalletByType(t); w != nil {
		return *w, nil
	}
	return models.Wallet{}, fmt.Errorf("%s wallet: %w", t, ErrNotFound)
}

// UpdateWallet merges the given fields into the matching wallet.
func (s *Store) UpdateWallet(id string, upd WalletUpdate) (models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.findWallet(id)
	if w == nil {
		return models.Wallet{}, fmt.Errorf("wallet %s: %w", id, ErrNotFound)
	}

	if upd.Amount != nil {
		w.Amount = *upd.Amount
	}
	if upd.MonthlyLimit != nil {
		w.MonthlyLimit = *upd.MonthlyLimit
	}
	if upd.SavingsGoal != nil {
		w.SavingsGoal = *upd.SavingsGoal
	}
	if upd.FixedExpenses != nil {
		w.FixedExpenses = *upd.FixedExpenses
	}
	return *w, nil
}

// TransferToSavings moves amount from the spending wallet to the savings
// wallet. The sum of the two balances is preserved exactly.
func (s *Store) TransferToSavings(amount float64) error {
	return s.transfer(models.WalletSpending, models.WalletSavings, amount)
}

// UseSavings moves amount from the savings wallet back to the spending
// wallet. Inverse of TransferToSavings.
func (s *Store) UseSavings(amount float64) error {
	return s.transfer(models.WalletSavings, models.WalletSpending, amount)
}

func (s *Store) transfer(from, to models.WalletType, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.findWalletByType(from)
	if src == nil {
		return fmt.Errorf("%s wallet: %w", from, ErrNotFound)
	}
	dst := s.findWalletByType(to)
	if dst == nil {
		return fmt.Errorf("%s wallet: %w", to, ErrNotFound)
	}

	if amount > src.Amount {
		return fmt.Errorf("%s wallet has %.2f, requested %.2f: %w",
			from, src.Amount, amount, ErrInsufficientFunds)
	}

	src.Amount = round2(src.Amount - amount)
	dst.Amount = round2(dst.Amount + amount)
	return nil
}
