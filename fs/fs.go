/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs is the filesystem seam shared by config loading, the file
// storage backend and export writing.
package fs

import (
	"io/fs"
	"os"
)

// FileSystem is the subset of filesystem operations tessera performs.
// internal/mapfs provides an in-memory implementation for tests.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Rename replaces newpath atomically where the platform allows it.
	// The file store writes a temp file and renames it over the key.
	Rename(oldpath, newpath string) error

	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Exists reports whether path names a file or directory.
	Exists(path string) bool
}

// OS is the FileSystem backed by package os.
type OS struct{}

// NewOSFileSystem returns the operating system's filesystem.
func NewOSFileSystem() OS {
	return OS{}
}

func (OS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (OS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (OS) Rename(oldpath, newpath string) error { return os.Rename(oldpath, newpath) }

func (OS) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }

func (OS) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }

func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
