package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RecoveryThrottle allows one password recovery per email per cooldown.
// Key format: recovery:<lowercased email>
type RecoveryThrottle struct {
	client   *redis.Client
	cooldown time.Duration
}

func NewRecoveryThrottle(client *redis.Client, cooldown time.Duration) *RecoveryThrottle {
	return &RecoveryThrottle{client: client, cooldown: cooldown}
}

// Allow claims the cooldown slot for email with SET NX. It returns false if
// the slot is already held.
func (t *RecoveryThrottle) Allow(ctx context.Context, email string) (bool, error) {
	ok, err := t.client.SetNX(ctx, t.key(email), time.Now().UTC().Format(time.RFC3339), t.cooldown).Result()
	if err != nil {
		return false, fmt.Errorf("recovery throttle: %w", err)
	}
	return ok, nil
}

// Release deletes the cooldown slot for email.
func (t *RecoveryThrottle) Release(ctx context.Context, email string) error {
	if err := t.client.Del(ctx, t.key(email)).Err(); err != nil {
		return fmt.Errorf("recovery throttle: %w", err)
	}
	return nil
}

func (t *RecoveryThrottle) key(email string) string {
	return "recovery:" + strings.ToLower(strings.TrimSpace(email))
}
