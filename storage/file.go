/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package storage

import (
	"context"
	"errors"
	iofs "io/fs"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"bennypowers.dev/tessera/fs"
)

const fileExt = ".json"

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// FileStore keeps one file per key in a directory.
type FileStore struct {
	mu    sync.Mutex
	fs    fs.FileSystem
	dir   string
	quota int64
}

// NewFileStore creates a store rooted at dir. A quota of zero is unlimited;
// otherwise the total size of all keys may not exceed quota bytes.
func NewFileStore(filesystem fs.FileSystem, dir string, quota int64) (*FileStore, error) {
	if err := filesystem.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{fs: filesystem, dir: dir, quota: quota}, nil
}

func (s *FileStore) path(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", errors.New("storage: invalid key " + key)
	}
	return filepath.Join(s.dir, key+fileExt), nil
}

// Get implements Store.
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := s.fs.ReadFile(p)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

// Set implements Store. The value is written to a temporary file and
// renamed into place.
func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quota > 0 {
		sizes, err := s.sizes()
		if err != nil {
			return err
		}
		if total := projected(sizes, key, int64(len(value))); total > s.quota {
			return quotaError(key, total, s.quota)
		}
	}

	tmp := p + ".tmp"
	if err := s.fs.WriteFile(tmp, value, 0644); err != nil {
		return err
	}
	return s.fs.Rename(tmp, p)
}

// sizes returns the size of every stored key.
func (s *FileStore) sizes() (map[string]int64, error) {
	entries, err := s.fs.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		out[strings.TrimSuffix(name, fileExt)] = info.Size()
	}
	return out, nil
}

// Close implements Store.
func (s *FileStore) Close() error {
	return nil
}
