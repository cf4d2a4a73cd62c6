package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/planetary/planetary-api/internal/api/metrics"
	"github.com/planetary/planetary-api/internal/core/domain"
	"github.com/planetary/planetary-api/internal/core/ports"
)

const (
	recoverySubject = "Here is your planetary API password"
	tempPasswordLen = 12
	tempAlphabet    = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// AuthService implements registration, login and password recovery.
type AuthService struct {
	repo     ports.UserRepository
	tokens   ports.TokenIssuer
	mailer   ports.Mailer
	throttle ports.RecoveryThrottle
	log      zerolog.Logger
}

// NewAuthService wires the auth use cases. throttle may be nil, in which
// case recovery is never rate limited.
func NewAuthService(
	repo ports.UserRepository,
	tokens ports.TokenIssuer,
	mailer ports.Mailer,
	throttle ports.RecoveryThrottle,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, mailer: mailer, throttle: throttle, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("user registered")
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("login: issue token: %w", err)
	}
	metrics.LoginAttemptsTotal.WithLabelValues("accepted").Inc()
	return token, user, nil
}

// RecoverPassword replaces the stored hash with the hash of a freshly
// generated password and mails that password to the account owner. If the
// mail cannot be delivered the previous hash is put back.
func (s *AuthService) RecoverPassword(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	reserved := false
	if s.throttle != nil {
		ok, err := s.throttle.Allow(ctx, user.Email)
		if err != nil {
			s.log.Warn().Err(err).Str("email", user.Email).Msg("recovery throttle check failed, continuing")
		} else if !ok {
			metrics.RecoveryEmailsTotal.WithLabelValues("throttled").Inc()
			return domain.ErrRecoveryThrottled
		}
		reserved = err == nil
	}

	// Only a delivered mail keeps the cooldown slot.
	delivered := false
	if reserved {
		defer func() {
			if delivered {
				return
			}
			if err := s.throttle.Release(ctx, user.Email); err != nil {
				s.log.Warn().Err(err).Str("email", user.Email).Msg("failed to release recovery throttle")
			}
		}()
	}

	password, err := generatePassword()
	if err != nil {
		return fmt.Errorf("recover password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("recover password: hash: %w", err)
	}
	if err := s.repo.UpdatePasswordHash(ctx, user.Email, string(hash)); err != nil {
		return fmt.Errorf("recover password: %w", err)
	}

	msg := ports.Message{
		To:      user.Email,
		Subject: recoverySubject,
		Body:    fmt.Sprintf("Your planetary API password is %s", password),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		if restoreErr := s.repo.UpdatePasswordHash(ctx, user.Email, user.PasswordHash); restoreErr != nil {
			s.log.Error().Err(restoreErr).Str("email", user.Email).Msg("failed to restore password hash")
		}
		metrics.RecoveryEmailsTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("recover password: send mail: %w", err)
	}

	delivered = true
	metrics.RecoveryEmailsTotal.WithLabelValues("sent").Inc()
	s.log.Info().Str("email", user.Email).Msg("recovery password sent")
	return nil
}

func generatePassword() (string, error) {
	limit := big.NewInt(int64(len(tempAlphabet)))
	var b strings.Builder
	b.Grow(tempPasswordLen)
	for i := 0; i < tempPasswordLen; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b.WriteByte(tempAlphabet[n.Int64()])
	}
	return b.String(), nil
}
