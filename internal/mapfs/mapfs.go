/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs is an in-memory fs.FileSystem for tests.
package mapfs

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// keep marks a directory that holds no files yet.
const keep = ".keep"

// epoch is the modification time of every file, so listings are stable.
var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// MapFileSystem keeps files in an fstest.MapFS. Paths are rooted at "/" and
// stored without the leading slash; directories exist implicitly through
// their contents.
type MapFileSystem struct {
	mu    sync.RWMutex
	files fstest.MapFS
}

// New returns an empty filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{files: fstest.MapFS{}}
}

// AddFile seeds a file, creating parents implicitly.
func (m *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key(p)] = &fstest.MapFile{Data: []byte(content), Mode: mode, ModTime: epoch}
}

func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadFile(m.files, key(name))
}

func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(name)
	if err := m.parentIsDir("open", k); err != nil {
		return err
	}
	m.files[k] = &fstest.MapFile{Data: append([]byte(nil), data...), Mode: perm, ModTime: epoch}
	return nil
}

// Rename moves a single file. Renaming directories is not supported.
func (m *MapFileSystem) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	from, to := key(oldpath), key(newpath)
	f, ok := m.files[from]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	if err := m.parentIsDir("rename", to); err != nil {
		return err
	}
	delete(m.files, from)
	m.files[to] = f
	return nil
}

func (m *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(p)
	if _, ok := m.files[k]; ok {
		return &fs.PathError{Op: "mkdir", Path: p, Err: fmt.Errorf("not a directory")}
	}
	m.files[path.Join(k, keep)] = &fstest.MapFile{Mode: perm.Perm(), ModTime: epoch}
	return nil
}

// ReadDir lists a directory. Placeholder entries are hidden.
func (m *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries, err := fs.ReadDir(m.files, dirKey(name))
	if err != nil {
		return nil, err
	}
	out := entries[:0]
	for _, e := range entries {
		if e.Name() != keep {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MapFileSystem) Exists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	k := key(p)
	if _, ok := m.files[k]; ok {
		return true
	}
	for name := range m.files {
		if strings.HasPrefix(name, k+"/") {
			return true
		}
	}
	return false
}

// parentIsDir fails when the parent of k is a regular file. Callers hold mu.
func (m *MapFileSystem) parentIsDir(op, k string) error {
	dir := path.Dir(k)
	if dir == "." {
		return nil
	}
	if f, ok := m.files[dir]; ok && !f.Mode.IsDir() {
		return &fs.PathError{Op: op, Path: "/" + k, Err: fmt.Errorf("not a directory")}
	}
	return nil
}

func key(p string) string {
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

// dirKey is key for directories; the root is "." in fs.FS terms.
func dirKey(p string) string {
	if k := key(p); k != "" {
		return k
	}
	return "."
}
