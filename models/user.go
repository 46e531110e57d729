package models

// User is a group participant. There are no accounts or credentials; the
// session user is the fixed ProtectedMemberID.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}
