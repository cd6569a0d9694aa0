package domain

import "time"

// User is the identity record. RefreshToken holds the single outstanding
// refresh token for the user, or nil after logout.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	RefreshToken *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
