package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/account"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) account.UserRepository {
	return &userRepository{db: db}
}

// Create implements account.UserRepository.
func (u *userRepository) Create(ctx context.Context, user account.User) (account.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (username, password_hash, role, employee_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Role,
		user.EmployeeID,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return account.User{}, account.ErrUsernameExists
		}
		return account.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByUsername implements account.UserRepository.
func (u *userRepository) GetByUsername(ctx context.Context, username string) (account.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, username, password_hash, role, employee_id, created_at
		FROM users
		WHERE username = $1
	`

	var user account.User
	err := q.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.EmployeeID, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.User{}, account.ErrUserNotFound
		}
		return account.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}
