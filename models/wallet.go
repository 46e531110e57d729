package models

// WalletType distinguishes the two balance buckets.
type WalletType string

const (
	WalletSpending WalletType = "spending"
	WalletSavings  WalletType = "savings"
)

// Wallet is a balance bucket. MonthlyLimit applies to the spending wallet;
// SavingsGoal and FixedExpenses apply to the savings wallet.
type Wallet struct {
	ID            string     `json:"id"`
	Type          WalletType `json:"type"`
	Amount        float64    `json:"amount"`
	MonthlyLimit  float64    `json:"monthly_limit,omitempty"`
	SavingsGoal   float64    `json:"savings_goal,omitempty"`
	FixedExpenses float64    `json:"fixed_expenses,omitempty"`
}

// Request structs
type UpdateWalletRequest struct {
	Amount        *float64 `json:"amount"`
	MonthlyLimit  *float64 `json:"monthly_limit"`
	SavingsGoal   *float64 `json:"savings_goal"`
	FixedExpenses *float64 `json:"fixed_expenses"`
}

type TransferRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
