package models

import "time"

// Expense is a single dated spending record. Group expenses additionally
// carry the group linkage, the payer and the per-member shares.
type Expense struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Amount      float64         `json:"amount"`
	Category    Category        `json:"category"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	IsGroup     bool            `json:"is_group"`
	GroupID     string          `json:"group_id,omitempty"`
	PaidBy      string          `json:"paid_by,omitempty"`
	Members     []ExpenseMember `json:"members,omitempty"`
	ReceiptURL  string          `json:"receipt_url,omitempty"`
}

// ExpenseMember is one participant's share of a group expense.
type ExpenseMember struct {
	UserID   string  `json:"user_id"`
	UserName string  `json:"user_name"`
	Amount   float64 `json:"amount"`
	Paid     bool    `json:"paid"`
}

// Request structs
type CreateExpenseRequest struct {
	Title       string               `json:"title" binding:"required"`
	Amount      float64              `json:"amount" binding:"required,gt=0"`
	Category    string               `json:"category"`
	Date        string               `json:"date"` // YYYY-MM-DD, defaults to today
	Description string               `json:"description"`
	IsGroup     bool                 `json:"is_group"`
	GroupID     string               `json:"group_id"`
	PaidBy      string               `json:"paid_by"`
	Members     []ExpenseMemberInput `json:"members"`
	ReceiptURL  string               `json:"receipt_url"`
}

type ExpenseMemberInput struct {
	UserID   string  `json:"user_id" binding:"required"`
	UserName string  `json:"user_name"`
	Amount   float64 `json:"amount" binding:"gte=0"`
	Paid     bool    `json:"paid"`
}

// UpdateExpenseRequest carries a partial update. Pointer fields distinguish
// "clear this" from "leave untouched"; value fields follow the usual
// zero-means-unset convention.
type UpdateExpenseRequest struct {
	Title       string               `json:"title"`
	Amount      float64              `json:"amount"`
	Category    string               `json:"category"`
	Date        string               `json:"date"`
	Description *string              `json:"description"`
	IsGroup     *bool                `json:"is_group"`
	GroupID     *string              `json:"group_id"`
	PaidBy      string               `json:"paid_by"`
	Members     []ExpenseMemberInput `json:"members"`
}
