package ports

import "context"

// Message is a single plaintext email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers a message synchronously.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// RecoveryThrottle limits how often a password recovery may run for one email.
type RecoveryThrottle interface {
	// Allow reserves the recovery slot for email. It returns false while a
	// previous reservation is still active.
	Allow(ctx context.Context, email string) (bool, error)
	// Release drops the reservation so the next request for email is allowed.
	Release(ctx context.Context, email string) error
}
