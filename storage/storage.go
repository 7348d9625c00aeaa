/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package storage provides the key-value persistence backends for snapshots.
package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNotFound is returned by Get when the key has never been written.
	ErrNotFound = errors.New("storage: key not found")

	// ErrQuotaExceeded is returned by Set when the write would grow the
	// store past its quota. The previous value is left in place.
	ErrQuotaExceeded = errors.New("storage: quota exceeded")
)

// Store is a key-value store.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases the store's resources.
	Close() error
}

// Driver names a storage backend.
type Driver string

const (
	DriverFile   Driver = "file"
	DriverSQLite Driver = "sqlite"
	DriverMemory Driver = "memory"
)

// quotaError wraps ErrQuotaExceeded with the sizes involved.
func quotaError(key string, size, quota int64) error {
	return fmt.Errorf("writing %s (%d bytes, quota %d): %w", key, size, quota, ErrQuotaExceeded)
}

// MemoryStore is an in-process Store, used for tests and the MCP server.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string][]byte
	quota int64
}

// NewMemoryStore creates an empty memory store. A quota of zero is unlimited.
func NewMemoryStore(quota int64) *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}, quota: quota}
}

// Get implements Store.
func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set implements Store.
func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.quota > 0 {
		sizes := make(map[string]int64, len(m.data))
		for k, v := range m.data {
			sizes[k] = int64(len(v))
		}
		if total := projected(sizes, key, int64(len(value))); total > m.quota {
			return quotaError(key, total, m.quota)
		}
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	return nil
}

// Keys returns a copy of the stored keys and their sizes.
func (m *MemoryStore) Keys() map[string]int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]int, len(m.data))
	for k, v := range m.data {
		out[k] = len(v)
	}
	return out
}

// projected returns the total size after replacing key with size bytes.
func projected(sizes map[string]int64, key string, size int64) int64 {
	var total int64
	for k, s := range sizes {
		if k != key {
			total += s
		}
	}
	return total + size
}
