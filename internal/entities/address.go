package entities

import "time"

// Address belongs to one user. At most one of a user's addresses is the default.
type Address struct {
	ID            string
	UserID        string
	Label         string
	RecipientName string
	Phone         string
	Line          string
	IsDefault     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
