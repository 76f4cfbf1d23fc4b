package db

import (
	"context"
	"fmt"
	"path"
	"sort"
	"sync"
)

// MemoryRedisClient keeps keys in process memory. It backs the preference
// store when Redis is unreachable, and the tests.
type MemoryRedisClient struct {
	data    map[string]string // Key-value store
	mu      sync.RWMutex      // Mutex for thread-safe operations
	context context.Context
	failErr error
}

// NewMemoryRedisClient initializes a new MemoryRedisClient.
func NewMemoryRedisClient(ctx context.Context) *MemoryRedisClient {
	return &MemoryRedisClient{
		data:    make(map[string]string),
		context: ctx,
	}
}

// FailWith makes every following operation return err; nil restores normal
// behaviour. Used to exercise storage failures.
func (m *MemoryRedisClient) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
}

// Set stores a key-value pair.
func (m *MemoryRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key.
func (m *MemoryRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failErr != nil {
		return "", m.failErr
	}
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

// Keys returns the keys matching pattern, sorted.
func (m *MemoryRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failErr != nil {
		return nil, m.failErr
	}

	keys := []string{}
	for k := range m.data {
		ok, err := path.Match(pattern, k)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Del removes key.
func (m *MemoryRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	delete(m.data, key)
	return nil
}

// Ping succeeds unless a failure was injected or the client's context is
// done.
func (m *MemoryRedisClient) Ping() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failErr != nil {
		return m.failErr
	}
	return m.context.Err()
}
