// Package redis reserves letter numbering ordinals in Redis so several API instances
// can share one counter per numbering scope.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// reserveScript raises the stored counter to at least ARGV[1], increments it and returns it.
// Redis runs scripts atomically, so concurrent reservations never share an ordinal.
var reserveScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local floor = tonumber(ARGV[1])
if floor > current then
	current = floor
end
current = current + 1
redis.call('SET', KEYS[1], current)
return current
`)

// SequenceStore implements ordinal reservation using Redis
type SequenceStore struct {
	client *redis.Client
	prefix string
}

var _ portsrepo.SequenceReserver = (*SequenceStore)(nil)

// NewSequenceStore creates a new Redis-backed sequence store
func NewSequenceStore(redisURL string) (*SequenceStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewSequenceStoreWithClient(client), nil
}

// NewSequenceStoreWithClient creates a store from an existing Redis client
func NewSequenceStoreWithClient(client *redis.Client) *SequenceStore {
	return &SequenceStore{
		client: client,
		prefix: "letter-seq:",
	}
}

// key generates the Redis key for a numbering scope
func (s *SequenceStore) key(scope domain.SequenceScope) string {
	return s.prefix + scope.Key()
}

// ReserveOrdinal returns max(stored, floor)+1 and stores it.
func (s *SequenceStore) ReserveOrdinal(ctx context.Context, scope domain.SequenceScope, floor int) (int, error) {
	n, err := reserveScript.Run(ctx, s.client, []string{s.key(scope)}, floor).Int()
	if err != nil {
		return 0, fmt.Errorf("reserve ordinal in scope %s: %w", scope.Key(), err)
	}
	return n, nil
}

// Close closes the Redis connection
func (s *SequenceStore) Close() error {
	return s.client.Close()
}

// Ping checks if Redis is reachable
func (s *SequenceStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Client exposes the underlying client so other Redis consumers can share the connection.
func (s *SequenceStore) Client() *redis.Client {
	return s.client
}
