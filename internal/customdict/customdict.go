// Package customdict persists user-added dictionary words in a Redis set so
// they survive restarts and are shared between instances. The in-memory
// dictionary only grows during a session; removals here take effect the next
// time the set is loaded.
package customdict

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the Redis set the store uses unless overridden.
const DefaultKey = "spellcheck:custom_words"

// Store wraps a Redis client around a single set of custom words.
type Store struct {
	client *redis.Client
	key    string
}

// New creates a Store on client. An empty key falls back to DefaultKey.
func New(client *redis.Client, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{client: client, key: key}
}

// Add inserts a word into the set and reports whether it was new there.
func (s *Store) Add(ctx context.Context, word string) (bool, error) {
	added, err := s.client.SAdd(ctx, s.key, word).Result()
	if err != nil {
		return false, fmt.Errorf("add custom word: %w", err)
	}
	return added > 0, nil
}

// Remove deletes a word from the set. Removing an absent word is not an
// error.
func (s *Store) Remove(ctx context.Context, word string) error {
	if err := s.client.SRem(ctx, s.key, word).Err(); err != nil {
		return fmt.Errorf("remove custom word: %w", err)
	}
	return nil
}

// All returns every word in the set.
func (s *Store) All(ctx context.Context) ([]string, error) {
	words, err := s.client.SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("list custom words: %w", err)
	}
	return words, nil
}
