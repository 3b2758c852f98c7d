package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"rankreel/types"
)

// ErrNotFound is returned when no status exists for a job ID.
var ErrNotFound = errors.New("state: job not found")

const (
	keyPrefix  = "rankreel:job:"
	defaultTTL = 24 * time.Hour
)

// Store keeps the latest JobUpdate per job in Redis so the HTTP job
// endpoint can answer lookups after the composing goroutine has moved
// on. Entries expire after a day; long-term history belongs to the
// external datastore, not this service.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore connects a job status store.
func NewStore(addr, password string, db int) *Store {
	return &Store{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: defaultTTL,
	}
}

// Ping verifies connectivity at startup.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Report implements composer.StatusReporter by persisting the update.
func (s *Store) Report(ctx context.Context, update types.JobUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("marshal job update: %w", err)
	}

	if err := s.rdb.Set(ctx, keyPrefix+update.JobID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("store job update: %w", err)
	}
	return nil
}

// Get returns the latest update for a job.
func (s *Store) Get(ctx context.Context, jobID string) (*types.JobUpdate, error) {
	data, err := s.rdb.Get(ctx, keyPrefix+jobID).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load job update: %w", err)
	}

	var update types.JobUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return nil, fmt.Errorf("decode job update: %w", err)
	}
	return &update, nil
}

// Close releases the Redis connection.
func (s *Store) Close() error {
	return s.rdb.Close()
}
