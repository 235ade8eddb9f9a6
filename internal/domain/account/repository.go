package account

import (
	"context"
)

// UserRepository - interface for the users table
type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}
