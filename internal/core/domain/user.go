package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRecoveryThrottled  = errors.New("password recovery requested too recently")
)

// User models a registered account.
type User struct {
	ID           int64  `json:"id"         db:"id"`
	FirstName    string `json:"first_name" db:"first_name"`
	LastName     string `json:"last_name"  db:"last_name"`
	Email        string `json:"email"      db:"email"`
	PasswordHash string `json:"-"          db:"password_hash"`
}
