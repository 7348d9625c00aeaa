/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package workspace_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tessera/config"
	"bennypowers.dev/tessera/defaults"
	"bennypowers.dev/tessera/export"
	"bennypowers.dev/tessera/internal/mapfs"
	"bennypowers.dev/tessera/internal/workspace"
	"bennypowers.dev/tessera/snapshot"
)

func TestOpenWith_Defaults(t *testing.T) {
	mfs := mapfs.New()
	w, err := workspace.OpenWith(context.Background(), mfs, "/project", workspace.Settings{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	assert.Equal(t, "file", w.Config.Storage.Driver)
	assert.Equal(t, defaults.SnapshotID, w.Store.Current().ID)
	assert.True(t, mfs.Exists("/project/.tessera"), "file store directory should be created")
	assert.Equal(t, "/project/dist", w.OutDir())

	formats, err := w.ExportFormats()
	require.NoError(t, err)
	assert.Equal(t, export.DefaultFormats(), formats)
}

func TestOpenWith_ConfigFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tessera.yaml", `
name: Acme
prefix: acme
storage:
  driver: memory
export:
  outDir: /abs/out
  formats: [css]
  include: ["color/**"]
`, 0644)

	w, err := workspace.OpenWith(context.Background(), mfs, "/project", workspace.Settings{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	assert.Equal(t, "Acme", w.Store.Current().Name)
	assert.Equal(t, "/abs/out", w.OutDir())
	opts := w.ExportOptions()
	assert.Equal(t, "acme", opts.Prefix)
	assert.Equal(t, []string{"color/**"}, opts.Include)

	formats, err := w.ExportFormats()
	require.NoError(t, err)
	assert.Equal(t, []export.Format{export.FormatCSS}, formats)
}

func TestOpenWith_SettingsOverrideConfig(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tessera.yaml", "prefix: acme\n", 0644)

	w, err := workspace.OpenWith(context.Background(), mfs, "/project", workspace.Settings{
		Store:    "memory",
		Prefix:   "rh",
		LogLevel: "error",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	assert.Equal(t, "memory", w.Config.Storage.Driver)
	assert.Equal(t, "rh", w.ExportOptions().Prefix)
	assert.Equal(t, "error", w.Config.Log.Level)
	assert.False(t, mfs.Exists("/project/.tessera"))
}

func TestOpenWith_ExplicitConfigFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/elsewhere/tessera.json", `{"prefix": "ds", "storage": {"driver": "memory"}}`, 0644)

	w, err := workspace.OpenWith(context.Background(), mfs, "/project", workspace.Settings{ConfigFile: "/elsewhere/tessera.json"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	assert.Equal(t, "ds", w.Config.Prefix)
}

func TestOpenWith_InvalidOverride(t *testing.T) {
	_, err := workspace.OpenWith(context.Background(), mapfs.New(), "/project", workspace.Settings{LogLevel: "loud"})
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = workspace.OpenWith(context.Background(), mapfs.New(), "/project", workspace.Settings{Store: "redis:localhost"})
	assert.Error(t, err)
}

func TestOpenWith_PersistsAcrossSessions(t *testing.T) {
	ctx := context.Background()
	mfs := mapfs.New()

	w, err := workspace.OpenWith(ctx, mfs, "/project", workspace.Settings{})
	require.NoError(t, err)
	saved, err := w.Store.SaveSnapshot(ctx, "Dark", "")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	w2, err := workspace.OpenWith(ctx, mfs, "/project", workspace.Settings{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w2.Close() })

	assert.Equal(t, saved.ID, w2.Store.Current().ID)
	_, err = w2.Store.Get(defaults.SnapshotID)
	assert.NoError(t, err)
	_, err = w2.Store.Get("nope")
	assert.ErrorIs(t, err, snapshot.ErrSnapshotNotFound)
}
