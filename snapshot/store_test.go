/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package snapshot_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/snapshot"
	"bennypowers.dev/tessera/storage"
	"bennypowers.dev/tessera/token"
)

var v = component.V

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func buttonDefaults() component.Layers {
	return component.Layers{
		BaseTokens: component.Tokens{
			Color: &component.ColorTokens{FG: v("color.text.onAccent"), BG: v("color.accent.primary.base")},
		},
	}
}

func seed() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		ID:        "default",
		Name:      "Default",
		CreatedAt: epoch,
		UpdatedAt: epoch,
		Globals: token.Branch{
			"color": token.Branch{"accent": token.Branch{"primary": token.Branch{"base": token.String("#0f62fe")}}},
		},
		Components: map[string]component.Layers{"button": buttonDefaults()},
	}
}

// frozenClock always returns the same instant.
func frozenClock() time.Time { return epoch }

func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("snap-%d", n)
	}
}

func openStore(t *testing.T, backend storage.Store) *snapshot.Store {
	t.Helper()
	s, err := snapshot.Open(context.Background(), snapshot.Options{
		Backend:  backend,
		Registry: component.NewRegistry(component.Definition{ID: "button", Defaults: buttonDefaults()}),
		Seeds:    []*snapshot.Snapshot{seed()},
		Now:      frozenClock,
		NewID:    sequentialIDs(),
	})
	require.NoError(t, err)
	return s
}

func TestOpen_SeedsWhenEmpty(t *testing.T) {
	s := openStore(t, storage.NewMemoryStore(0))
	assert.Equal(t, "default", s.Current().ID)
	require.Len(t, s.List(), 1)
}

func TestOpen_IgnoresMalformedState(t *testing.T) {
	backend := storage.NewMemoryStore(0)
	require.NoError(t, backend.Set(context.Background(), snapshot.KeySnapshots, []byte(`{"broken": true}`)))

	s := openStore(t, backend)
	assert.Equal(t, "default", s.Current().ID)
}

func TestUpdateGlobalToken_CopyOnWrite(t *testing.T) {
	s := openStore(t, nil)
	before := s.Current()

	require.NoError(t, s.UpdateGlobalToken(context.Background(), "space.4", token.String("16px")))

	after := s.Current()
	_, ok := before.Globals.Literal("space.4")
	assert.False(t, ok, "readers of the old snapshot never see the edit")
	lit, ok := after.Globals.Literal("space.4")
	require.True(t, ok)
	assert.Equal(t, "16px", lit.String())
	assert.Equal(t, before.ID, after.ID, "auto-save keeps the id")
}

func TestUpdateGlobalToken_InvalidPath(t *testing.T) {
	s := openStore(t, nil)
	assert.Error(t, s.UpdateGlobalToken(context.Background(), "", token.String("x")))
	assert.Error(t, s.UpdateGlobalToken(context.Background(), "a..b", token.String("x")))
}

func TestUpdatedAt_StrictlyIncreases(t *testing.T) {
	s := openStore(t, nil)
	ctx := context.Background()

	prev := s.Current().UpdatedAt
	for i := range 5 {
		require.NoError(t, s.UpdateGlobalToken(ctx, fmt.Sprintf("space.%d", i), token.String("1px")))
		now := s.Current().UpdatedAt
		assert.True(t, now.After(prev), "updatedAt must increase even with a frozen clock")
		prev = now
	}
}

func TestUpdateComponentTokens_MergesCategory(t *testing.T) {
	s := openStore(t, nil)
	ctx := context.Background()

	patch := component.Tokens{Color: &component.ColorTokens{BG: v("color.accent.primary.hover")}}
	require.NoError(t, s.UpdateComponentTokens(ctx, "button", component.LayerRef{Kind: component.LayerBase}, patch))

	base := s.Current().Components["button"].BaseTokens
	assert.Equal(t, component.Value("color.accent.primary.hover"), *base.Color.BG)
	assert.Equal(t, component.Value("color.text.onAccent"), *base.Color.FG, "sibling fields survive")

	hover := component.Tokens{Color: &component.ColorTokens{BG: v("red")}}
	require.NoError(t, s.UpdateComponentTokens(ctx, "button", component.LayerRef{Kind: component.LayerState, Name: "hover"}, hover))
	assert.Equal(t, []string{"hover"}, s.Current().Components["button"].StateNames())
}

func TestUpdateComponentTokens_UnknownIDIsNoop(t *testing.T) {
	s := openStore(t, nil)
	before := s.Current()

	err := s.UpdateComponentTokens(context.Background(), "nope", component.LayerRef{}, component.Tokens{Radius: v("0")})
	require.NoError(t, err)
	assert.Same(t, before, s.Current())
}

func TestSetComponentToken(t *testing.T) {
	s := openStore(t, nil)
	ctx := context.Background()
	base := component.LayerRef{Kind: component.LayerBase}

	require.NoError(t, s.SetComponentToken(ctx, "button", base, "radius", v("radius.pill")))
	assert.Equal(t, component.Value("radius.pill"), *s.Current().Components["button"].BaseTokens.Radius)

	require.NoError(t, s.SetComponentToken(ctx, "button", base, "color.fg", nil))
	assert.False(t, s.Current().Components["button"].BaseTokens.Has("color.fg"))

	assert.Error(t, s.SetComponentToken(ctx, "button", base, "color.outline", v("x")))
}

func TestResetComponentTokens(t *testing.T) {
	s := openStore(t, nil)
	ctx := context.Background()

	require.NoError(t, s.UpdateComponentTokens(ctx, "button", component.LayerRef{}, component.Tokens{Radius: v("0")}))
	require.NoError(t, s.ResetComponentTokens(ctx, "button"))
	assert.Equal(t, buttonDefaults(), s.Current().Components["button"])

	before := s.Current()
	require.NoError(t, s.ResetComponentTokens(ctx, "nope"))
	assert.Same(t, before, s.Current())
}

func TestSaveSnapshot_MintsNewID(t *testing.T) {
	s := openStore(t, nil)
	ctx := context.Background()

	first, err := s.SaveSnapshot(ctx, "Brand A", "")
	require.NoError(t, err)
	second, err := s.SaveSnapshot(ctx, "Brand A", "same name")
	require.NoError(t, err)

	assert.NotEqual(t, "default", first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, second.ID, s.Current().ID)
	assert.Len(t, s.List(), 3)
}

func TestLoadSnapshot(t *testing.T) {
	s := openStore(t, nil)
	ctx := context.Background()

	saved, err := s.SaveSnapshot(ctx, "Other", "")
	require.NoError(t, err)
	require.NoError(t, s.UpdateGlobalToken(ctx, "space.1", token.String("4px")))

	loaded, err := s.LoadSnapshot(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, "default", loaded.ID)
	_, ok := s.Current().Globals.Literal("space.1")
	assert.False(t, ok)

	other, err := s.Get(saved.ID)
	require.NoError(t, err)
	_, ok = other.Globals.Literal("space.1")
	assert.True(t, ok, "auto-save wrote into the saved snapshot")

	_, err = s.LoadSnapshot(ctx, "missing")
	assert.ErrorIs(t, err, snapshot.ErrSnapshotNotFound)
}

func TestPersistence_Reopen(t *testing.T) {
	backend := storage.NewMemoryStore(0)
	ctx := context.Background()

	s := openStore(t, backend)
	require.NoError(t, s.UpdateGlobalToken(ctx, "space.4", token.String("16px")))
	saved, err := s.SaveSnapshot(ctx, "Saved", "")
	require.NoError(t, err)

	reopened := openStore(t, backend)
	assert.Equal(t, saved.ID, reopened.Current().ID)
	lit, ok := reopened.Current().Globals.Literal("space.4")
	require.True(t, ok)
	assert.Equal(t, "16px", lit.String())
	assert.Len(t, reopened.List(), 2)
}

func TestPersistence_QuotaExceeded(t *testing.T) {
	backend := storage.NewMemoryStore(2048)
	s := openStore(t, backend)

	err := s.UpdateGlobalToken(context.Background(), "icons.custom.logo", token.String(string(make([]byte, 4096))))
	require.ErrorIs(t, err, storage.ErrQuotaExceeded)
}

func TestImport(t *testing.T) {
	s := openStore(t, nil)
	ctx := context.Background()

	added, err := s.Import(ctx, []byte(`[{"id":"default","globals":{}},{"id":"imported","globals":{"a":{"b":"c"}}}]`))
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	added, err = s.Import(ctx, []byte(`{"id":"single","globals":{}}`))
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	_, err = s.Import(ctx, []byte(`nonsense`))
	assert.ErrorIs(t, err, snapshot.ErrNotAList)
}

func TestConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	s := openStore(t, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 50 {
			_ = s.UpdateGlobalToken(ctx, "space.n", token.Number(float64(i)))
		}
	}()
	for range 50 {
		snap := s.Current()
		// A published snapshot always carries the seeded globals.
		_, ok := snap.Globals.Literal("color.accent.primary.base")
		assert.True(t, ok)
	}
	wg.Wait()
}
