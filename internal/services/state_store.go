package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"triptogether_echo/internal/models"
)

// ErrStateNotFound is returned for unknown or expired page sessions
var ErrStateNotFound = errors.New("page state not found")

// StateStore keeps the transient state of page sessions.
// Update runs fn with exclusive access to one session's state and saves the result.
type StateStore interface {
	Create(ctx context.Context) (*models.PageState, error)
	Load(ctx context.Context, sessionID string) (*models.PageState, error)
	Update(ctx context.Context, sessionID string, fn func(state *models.PageState) error) (*models.PageState, error)
}

type memoryEntry struct {
	state   *models.PageState
	expires time.Time
}

// MemoryStore keeps page states in process memory with a sliding TTL
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an in-memory store whose sessions expire after ttl of inactivity
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

// Create starts a new page session
func (s *MemoryStore) Create(ctx context.Context) (*models.PageState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictExpired(now)

	state := models.NewPageState(uuid.New().String(), now)
	s.entries[state.SessionID] = &memoryEntry{state: state, expires: now.Add(s.ttl)}
	return state.Clone(), nil
}

// Load returns a copy of the session's state
func (s *MemoryStore) Load(ctx context.Context, sessionID string) (*models.PageState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return entry.state.Clone(), nil
}

// Update applies fn to the session's state. The state is only saved when fn succeeds.
func (s *MemoryStore) Update(ctx context.Context, sessionID string, fn func(state *models.PageState) error) (*models.PageState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	working := entry.state.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	now := s.now()
	working.UpdatedAt = now
	entry.state = working
	entry.expires = now.Add(s.ttl)
	return working.Clone(), nil
}

// Len returns the number of live sessions
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpired(s.now())
	return len(s.entries)
}

func (s *MemoryStore) lookup(sessionID string) (*memoryEntry, error) {
	entry, ok := s.entries[sessionID]
	if !ok {
		return nil, ErrStateNotFound
	}
	if !s.now().Before(entry.expires) {
		delete(s.entries, sessionID)
		return nil, ErrStateNotFound
	}
	return entry, nil
}

func (s *MemoryStore) evictExpired(now time.Time) {
	for id, entry := range s.entries {
		if !now.Before(entry.expires) {
			delete(s.entries, id)
		}
	}
}
