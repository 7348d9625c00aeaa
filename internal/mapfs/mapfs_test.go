/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapfs_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tessera/internal/mapfs"
)

func TestWriteReadRename(t *testing.T) {
	m := mapfs.New()
	require.NoError(t, m.WriteFile("/state/a.json.tmp", []byte("1"), 0644))
	require.NoError(t, m.Rename("/state/a.json.tmp", "/state/a.json"))

	data, err := m.ReadFile("state/a.json")
	require.NoError(t, err)
	assert.Equal(t, "1", string(data))
	assert.False(t, m.Exists("/state/a.json.tmp"))

	err = m.Rename("/state/missing", "/state/b")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMkdirAllAndReadDir(t *testing.T) {
	m := mapfs.New()
	require.NoError(t, m.MkdirAll("/store", 0755))
	assert.True(t, m.Exists("/store"))

	entries, err := m.ReadDir("/store")
	require.NoError(t, err)
	assert.Empty(t, entries, "placeholder is not listed")

	m.AddFile("/store/current.json", "default", 0644)
	entries, err = m.ReadDir("/store")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "current.json", entries[0].Name())
}

func TestWriteUnderFileFails(t *testing.T) {
	m := mapfs.New()
	m.AddFile("/store", "not a dir", 0644)
	assert.Error(t, m.WriteFile("/store/x.json", nil, 0644))
	assert.Error(t, m.MkdirAll("/store", 0755))
}
