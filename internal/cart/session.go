package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/themosthappypiano/thewoofingoven/pkg/logger"
)

// sessionBackend is the slice of the redis client the session store needs.
type sessionBackend interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartKey(token string) string
}

// SessionStore persists carts in redis keyed by an opaque token. Writes are
// fire-and-forget: the in-memory cart is the source of truth for the
// request, persistence only survives reloads. Two devices sharing a token
// can clobber each other; that race is accepted, not resolved.
type SessionStore struct {
	backend sessionBackend
	ttl     time.Duration
	logg    *logger.Logger
}

// NewSessionStore builds a session store with the given TTL.
func NewSessionStore(backend sessionBackend, ttl time.Duration, logg *logger.Logger) *SessionStore {
	return &SessionStore{backend: backend, ttl: ttl, logg: logg}
}

// NewToken mints a cart session token.
func NewToken() string {
	return uuid.NewString()
}

// Load returns the cart stored under token, or an empty cart when nothing
// is stored (missing key, expired session, undecodable blob).
func (s *SessionStore) Load(ctx context.Context, token string) *Cart {
	if token == "" || s.backend == nil {
		return New()
	}
	raw, err := s.backend.Get(ctx, s.backend.CartKey(token))
	if err != nil {
		if s.logg != nil && err != goredis.Nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart session load failed")
		}
		return New()
	}
	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart session blob undecodable")
		}
		return New()
	}
	if cart.Lines == nil {
		cart.Lines = []Line{}
	}
	return &cart
}

// Save writes the cart under token. Failures are logged and swallowed.
func (s *SessionStore) Save(ctx context.Context, token string, cart *Cart) {
	if token == "" || s.backend == nil || cart == nil {
		return
	}
	blob, err := json.Marshal(cart)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart session encode failed")
		}
		return
	}
	if err := s.backend.Set(ctx, s.backend.CartKey(token), blob, s.ttl); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart session save failed")
	}
}

// Delete drops the stored cart for token.
func (s *SessionStore) Delete(ctx context.Context, token string) {
	if token == "" || s.backend == nil {
		return
	}
	if err := s.backend.Del(ctx, s.backend.CartKey(token)); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart session delete failed")
	}
}
