package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/planetary/planetary-api/internal/core/domain"
)

// UserRepository stores users in the users table.
type UserRepository struct {
	db sqlx.ExtContext
}

// NewUserRepository accepts a *sqlx.DB or a *sqlx.Tx.
func NewUserRepository(db sqlx.ExtContext) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	q := r.db.Rebind(`SELECT id, first_name, last_name, email, password_hash FROM users WHERE email = ?`)
	if err := sqlx.GetContext(ctx, r.db, &u, q, email); err != nil {
		if isNoRows(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

// Create inserts u and sets its generated ID.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	q := r.db.Rebind(`INSERT INTO users (first_name, last_name, email, password_hash)
		VALUES (?, ?, ?, ?) RETURNING id`)
	if err := sqlx.GetContext(ctx, r.db, &u.ID, q, u.FirstName, u.LastName, u.Email, u.PasswordHash); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, email, hash string) error {
	q := r.db.Rebind(`UPDATE users SET password_hash = ? WHERE email = ?`)
	res, err := r.db.ExecContext(ctx, q, hash, email)
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Count returns the number of stored users.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, r.db, &n, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
