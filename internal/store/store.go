package store

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/kumarlokesh/sysd/exercises/trie-set/internal/trie"
)

// SetStore is a string set that is safe for concurrent use. It serializes
// access to a trie.Trie, which has no locking of its own.
type SetStore struct {
	mu   sync.RWMutex
	trie *trie.Trie
}

// NewSetStore creates an empty store
func NewSetStore() *SetStore {
	return &SetStore{trie: trie.New()}
}

// Add inserts key and reports whether it was already present.
func (s *SetStore) Add(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, existed := s.trie.Insert(key)
	return existed, nil
}

// Remove erases key and reports whether it was present.
func (s *SetStore) Remove(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.trie.Erase(key), nil
}

// Contains reports whether key is present.
func (s *SetStore) Contains(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.trie.Contains(key), nil
}

// List returns the keys having prefix, in order.
func (s *SetStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.trie.KeysWithPrefix(prefix), nil
}

// Len returns the number of keys.
func (s *SetStore) Len(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.trie.Size(), nil
}

// Clear removes every key.
func (s *SetStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trie.Clear()
	return nil
}

// Dump returns the debug rendering of the underlying tree.
func (s *SetStore) Dump(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.trie.String(), nil
}

// Snapshot returns a deep copy of the current set.
func (s *SetStore) Snapshot(ctx context.Context) (*trie.Trie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.trie.Clone(), nil
}

// Load adds every line read from r as a key, trailing "\r" removed, and
// returns how many were new. Blank lines are skipped.
func (s *SetStore) Load(ctx context.Context, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	added := 0
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		existed, err := s.Add(ctx, line)
		if err != nil {
			return added, err
		}
		if !existed {
			added++
		}
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("failed to read keys: %w", err)
	}
	return added, nil
}
