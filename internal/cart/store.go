package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	pkgerrors "github.com/nextplayhq/nextplay-backend/pkg/errors"
	"github.com/nextplayhq/nextplay-backend/pkg/redis"
)

// Store persists cart snapshots keyed by client token.
type Store interface {
	Load(ctx context.Context, token string) (*State, error)
	Save(ctx context.Context, token string, state *State) error
	Delete(ctx context.Context, token string) error
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore builds a Redis-backed cart store. Snapshots expire after ttl so
// abandoned carts age out on their own.
func NewStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

// Load reads the cart for a token. A missing key is an empty cart, not an error.
func (s *redisStore) Load(ctx context.Context, token string) (*State, error) {
	raw, err := s.client.Get(ctx, s.client.CartKey(token))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return NewState(), nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart state")
	}
	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		// A corrupt snapshot is unrecoverable; start the client over rather than
		// failing every cart request for the rest of the session.
		return NewState(), nil
	}
	return &state, nil
}

func (s *redisStore) Save(ctx context.Context, token string, state *State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding cart state")
	}
	if err := s.client.Set(ctx, s.client.CartKey(token), payload, s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart state")
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.client.CartKey(token)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting cart state")
	}
	return nil
}
