package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"triptogether_echo/internal/models"
)

const (
	pageStateKeyPrefix = "page_state:"
	lockTTL            = 5 * time.Second
	lockRetryDelay     = 25 * time.Millisecond
)

// RedisStore keeps page states as JSON documents in Redis. Updates of one
// session are serialized with a SETNX lock so concurrent tabs posting to the
// same session never lose a change.
type RedisStore struct {
	cache *RedisCache
	ttl   time.Duration
}

// NewRedisStore creates a store on top of the cache; sessions expire after ttl of inactivity
func NewRedisStore(cache *RedisCache, ttl time.Duration) *RedisStore {
	return &RedisStore{cache: cache, ttl: ttl}
}

func pageStateKey(sessionID string) string {
	return pageStateKeyPrefix + sessionID
}

// Create starts a new page session
func (s *RedisStore) Create(ctx context.Context) (*models.PageState, error) {
	state := models.NewPageState(uuid.New().String(), time.Now())
	if err := s.cache.Set(ctx, pageStateKey(state.SessionID), state, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to save page state: %w", err)
	}
	return state, nil
}

// Load returns the session's state
func (s *RedisStore) Load(ctx context.Context, sessionID string) (*models.PageState, error) {
	var state models.PageState
	if err := s.cache.Get(ctx, pageStateKey(sessionID), &state); err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to load page state: %w", err)
	}
	return &state, nil
}

// Update applies fn under the session lock and saves the result
func (s *RedisStore) Update(ctx context.Context, sessionID string, fn func(state *models.PageState) error) (*models.PageState, error) {
	unlock, err := s.lock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	state, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(state); err != nil {
		return nil, err
	}

	state.UpdatedAt = time.Now()
	if err := s.cache.Set(ctx, pageStateKey(sessionID), state, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to save page state: %w", err)
	}
	return state, nil
}

func lockKey(sessionID string) string {
	return pageStateKey(sessionID) + ":lock"
}

func (s *RedisStore) lock(ctx context.Context, sessionID string) (func(), error) {
	key := lockKey(sessionID)
	token := uuid.New().String()
	for {
		ok, err := s.cache.AcquireLock(ctx, key, token, lockTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to lock page state: %w", err)
		}
		if ok {
			return func() {
				// Release with a fresh context so a cancelled request still unlocks
				released, err := s.cache.ReleaseLock(context.Background(), key, token)
				if err != nil {
					log.WithError(err).WithField("session", sessionID).Warn("Failed to release page state lock")
				} else if !released {
					log.WithField("session", sessionID).Warn("Page state lock expired before release")
				}
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to lock page state: %w", ctx.Err())
		case <-time.After(lockRetryDelay):
		}
	}
}
