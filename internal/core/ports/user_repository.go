package ports

import (
	"context"

	"github.com/planetary/planetary-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts the user and fills in its generated ID.
	// A duplicate email yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) error
	UpdatePasswordHash(ctx context.Context, email, hash string) error
}
