// Package session persists each browser's view model between requests.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"backoffice/internal/view"
	"backoffice/pkg/logger"
	"backoffice/pkg/redis"
)

// Store loads and saves view models by session id. Loading an unknown id
// yields the initial model.
type Store interface {
	Load(ctx context.Context, id string) (view.Model, error)
	Save(ctx context.Context, id string, m view.Model) error
}

// RedisStore keeps models as JSON in Redis. Every load slides the TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisStore creates a Redis-backed store
func NewRedisStore(client *redis.Client, ttl time.Duration, logger *logger.Logger) *RedisStore {
	if ttl <= 0 {
		ttl = redis.TTLSession
	}
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

func (s *RedisStore) Load(ctx context.Context, id string) (view.Model, error) {
	data, err := s.client.GetEx(ctx, s.client.Keys.Session(id), s.ttl)
	if redis.IsNil(err) {
		return view.Initial(), nil
	}
	if err != nil {
		return view.Initial(), fmt.Errorf("failed to load session: %w", err)
	}

	m := view.Initial()
	if err := json.Unmarshal(data, &m); err != nil {
		s.logger.WithError(err).Warn("Session data corrupted, starting fresh")
		return view.Initial(), nil
	}
	return m, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, m view.Model) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.client.Keys.Session(id), data, s.ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

type memoryEntry struct {
	model   view.Model
	expires time.Time
}

// MemoryStore keeps models in process memory. Used when Redis is not configured.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an in-memory store
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = redis.TTLSession
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Load(ctx context.Context, id string) (view.Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || s.now().After(e.expires) {
		delete(s.entries, id)
		return view.Initial(), nil
	}
	return e.model, nil
}

func (s *MemoryStore) Save(ctx context.Context, id string, m view.Model) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, k)
		}
	}
	s.entries[id] = memoryEntry{model: m, expires: now.Add(s.ttl)}
	return nil
}

// Len returns the number of live sessions
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
