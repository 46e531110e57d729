package models

import "time"

// ProtectedMemberID identifies the session user ("You"). This member is
// part of every group by construction and can never be removed.
const ProtectedMemberID = "user-1"

// Group is a named collection of users who share some expenses.
//
// TotalExpenses is a running accumulator maintained on every expense
// mutation, not recomputed from the expense collection on read.
type Group struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Members       []User    `json:"members"`
	TotalExpenses float64   `json:"total_expenses"`
	CreatedAt     time.Time `json:"created_at"`
}

// Request structs
type CreateGroupRequest struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	Members     []UserInput `json:"members"`
}

type UpdateGroupRequest struct {
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	Members     []UserInput `json:"members"`
}

type UserInput struct {
	ID    string `json:"id"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}
