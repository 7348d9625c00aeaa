/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides fixture and golden-file helpers for tessera tests.
package testutil

import (
	"bytes"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/tessera/internal/mapfs"
)

// updateGolden enables updating golden files with actual output when -update flag is set.
var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// candidates lists where a testdata-relative path may live. Packages sit up
// to two levels below the module root and may keep their own testdata.
func candidates(rel string) []string {
	return []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
	}
}

func locate(rel string) (string, bool) {
	for _, p := range candidates(rel) {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// NewFixtureFS copies a testdata directory into a MapFileSystem rooted at
// rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	dir, ok := locate(fixtureDir)
	if !ok {
		t.Fatalf("Could not find fixtures at %s (tried all paths)", fixtureDir)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.Join(rootPath, rel), string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to load fixtures from %s: %v", fixtureDir, err)
	}
	return mfs
}

// LoadFixtureFile reads a single fixture file and returns its content.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()
	path, ok := locate(fixturePath)
	if !ok {
		t.Fatalf("Failed to read fixture %s (tried all paths)", fixturePath)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", fixturePath, err)
	}
	return content
}

// UpdateGoldenFile writes actual output to the golden file when -update flag is set.
func UpdateGoldenFile(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	if !*updateGolden {
		return
	}

	paths := candidates(goldenPath)
	target := paths[0]
	for _, p := range paths {
		if _, err := os.Stat(filepath.Dir(p)); err == nil {
			target = p
			break
		}
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		t.Fatalf("Failed to create directory for golden file %s: %v", goldenPath, err)
	}
	if err := os.WriteFile(target, actual, 0644); err != nil {
		t.Fatalf("Failed to write golden file %s: %v", goldenPath, err)
	}
	t.Logf("Updated golden file: %s", target)
}

// AssertGolden updates the golden file when -update is set, then compares
// actual against it.
func AssertGolden(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	UpdateGoldenFile(t, goldenPath, actual)
	want := LoadFixtureFile(t, goldenPath)
	if !bytes.Equal(want, actual) {
		t.Errorf("output does not match %s\n--- want ---\n%s\n--- got ---\n%s", goldenPath, want, actual)
	}
}
