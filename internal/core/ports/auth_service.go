package ports

import (
	"context"

	"github.com/planetary/planetary-api/internal/core/domain"
)

// RegisterInput carries the fields submitted on registration.
type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns a signed bearer token for a matching email and password.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// RecoverPassword mails a fresh password to the owner of email.
	RecoverPassword(ctx context.Context, email string) error
}
