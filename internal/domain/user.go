package domain

import (
	"context"
	"time"
)

// User represents a registered user. Accounts are created by the identity provider;
// this service only reads them.
// swagger:model User
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"-"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines read access to user storage.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
}
