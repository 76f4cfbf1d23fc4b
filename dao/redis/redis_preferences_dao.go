package redis

import (
	"cinemap/config"
	"cinemap/db"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
)

// RedisPreferencesDAO is an opaque key/value store for user preferences.
// Values are stored as JSON under keys namespaced with the app prefix.
type RedisPreferencesDAO struct {
	client db.RedisClient
	prefix string
}

// NewRedisPreferencesDAO initializes a RedisPreferencesDAO with the Redis client.
func NewRedisPreferencesDAO(client db.RedisClient) *RedisPreferencesDAO {
	return &RedisPreferencesDAO{client: client, prefix: config.PREFERENCES_KEY_PREFIX}
}

func (dao *RedisPreferencesDAO) storageKey(key string) string {
	return dao.prefix + key
}

// GetItem decodes the value stored under key into dest. found is false when
// nothing is stored.
func (dao *RedisPreferencesDAO) GetItem(key string, dest interface{}) (bool, error) {
	str, err := dao.client.Get(dao.storageKey(key))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get preference %s from redis: %w", key, err)
	}
	if err := json.Unmarshal([]byte(str), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal preference %s: %w", key, err)
	}
	return true, nil
}

// SetItem stores value as JSON under key.
func (dao *RedisPreferencesDAO) SetItem(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal preference %s: %w", key, err)
	}
	if err := dao.client.Set(dao.storageKey(key), string(data)); err != nil {
		return fmt.Errorf("failed to set preference %s in redis: %w", key, err)
	}
	return nil
}

func (dao *RedisPreferencesDAO) RemoveItem(key string) error {
	if err := dao.client.Del(dao.storageKey(key)); err != nil {
		return fmt.Errorf("failed to delete preference key %s: %w", key, err)
	}
	return nil
}

// Clear removes every key in the app namespace and leaves other keys alone.
func (dao *RedisPreferencesDAO) Clear() error {
	keys, err := dao.client.Keys(dao.prefix + "*")
	if err != nil {
		return fmt.Errorf("failed to list preference keys: %w", err)
	}
	for _, k := range keys {
		if err := dao.client.Del(k); err != nil {
			return fmt.Errorf("failed to delete preference key %s: %w", k, err)
		}
	}
	log.Printf("[RedisPreferencesDAO] Cleared %d preference keys", len(keys))
	return nil
}

// ListKeys returns the stored keys with the app prefix stripped.
func (dao *RedisPreferencesDAO) ListKeys() ([]string, error) {
	keys, err := dao.client.Keys(dao.prefix + "*")
	if err != nil {
		return nil, fmt.Errorf("failed to list preference keys: %w", err)
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, strings.TrimPrefix(k, dao.prefix))
	}
	return out, nil
}
