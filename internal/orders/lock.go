package orders

import (
	"context"
	"time"

	pkgerrors "github.com/nextplayhq/nextplay-backend/pkg/errors"
	"github.com/nextplayhq/nextplay-backend/pkg/redis"
)

// SubmissionLock serializes checkout per cart token. The TTL bounds how long a
// crashed submission can block the cart.
type SubmissionLock interface {
	Acquire(ctx context.Context, token string) (bool, error)
	Release(ctx context.Context, token string) error
}

type redisLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSubmissionLock builds a Redis SetNX lock with the given TTL.
func NewSubmissionLock(client *redis.Client, ttl time.Duration) SubmissionLock {
	return &redisLock{client: client, ttl: ttl}
}

func (l *redisLock) Acquire(ctx context.Context, token string) (bool, error) {
	acquired, err := l.client.SetNX(ctx, l.client.CheckoutLockKey(token), "1", l.ttl)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "acquiring submission lock")
	}
	return acquired, nil
}

func (l *redisLock) Release(ctx context.Context, token string) error {
	if err := l.client.Del(ctx, l.client.CheckoutLockKey(token)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "releasing submission lock")
	}
	return nil
}
