// Package storage persists small cached payloads onto the local
// filesystem. It plays the role browser local storage played for the web
// client: one JSON value per key, stamped with its capture time, with
// freshness decided by the caller.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Cache stores timestamped JSON entries under a base directory.
type Cache struct {
	basePath string
}

type envelope struct {
	Value     json.RawMessage `json:"value"`
	Timestamp int64           `json:"timestamp"`
}

// NewCache initializes a cache rooted at basePath.
func NewCache(basePath string) (*Cache, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}
	return &Cache{basePath: basePath}, nil
}

// Put stores the value under key with the given capture time.
func (c *Cache) Put(key string, value any, capturedAt time.Time) error {
	if c == nil {
		return errors.New("storage: no cache configured")
	}
	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("storage: marshal value: %w", err)
	}
	data, err := json.Marshal(envelope{Value: raw, Timestamp: capturedAt.UnixMilli()})
	if err != nil {
		return fmt.Errorf("storage: marshal envelope: %w", err)
	}
	fullPath := filepath.Join(c.basePath, cleanKey+".json")
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return fmt.Errorf("storage: write entry: %w", err)
	}
	return nil
}

// Get loads the value stored under key into out and returns its capture
// time. The second return is false when the entry is absent or unreadable.
func (c *Cache) Get(key string, out any) (time.Time, bool) {
	if c == nil {
		return time.Time{}, false
	}
	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return time.Time{}, false
	}
	data, err := os.ReadFile(filepath.Join(c.basePath, cleanKey+".json"))
	if err != nil {
		return time.Time{}, false
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return time.Time{}, false
	}
	if err := json.Unmarshal(env.Value, out); err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(env.Timestamp), true
}

// sanitizeKey normalizes a key and prevents escaping the cache root.
func sanitizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("storage: key is required")
	}
	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.TrimPrefix(key, "./")
	key = strings.TrimLeft(key, "/")
	cleaned := filepath.Clean(key)
	cleaned = strings.ReplaceAll(cleaned, "\\", "/")
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") || strings.Contains(cleaned, "/") {
		return "", errors.New("storage: invalid key")
	}
	return cleaned, nil
}
