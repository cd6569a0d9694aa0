package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/AniTigerSib/BookTrackerBackend/internal/auth/domain UserRepository

type UserRepository interface {
	// GetByLogin returns (nil, nil) when no such login exists.
	GetByLogin(ctx context.Context, login string) (*User, error)
	// GetByID returns (nil, nil) when no such user exists.
	GetByID(ctx context.Context, id int64) (*User, error)
	// Create inserts the user and fills in the generated ID.
	Create(ctx context.Context, user *User) error
	// UpdateRefreshToken overwrites the stored refresh token; nil clears it.
	UpdateRefreshToken(ctx context.Context, userID int64, token *string) error
	// SwapRefreshToken replaces the stored refresh token only while it
	// still equals old. Returns false when the comparison lost, which
	// means a concurrent rotation or logout got there first.
	SwapRefreshToken(ctx context.Context, userID int64, old, new string) (bool, error)
}
