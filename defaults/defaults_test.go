/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package defaults_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/defaults"
	"bennypowers.dev/tessera/resolver"
	"bennypowers.dev/tessera/style"
	"bennypowers.dev/tessera/token"
)

func TestGlobals(t *testing.T) {
	g := defaults.Globals()

	for path, want := range map[string]string{
		"color.accent.primary.base": "#0f62fe",
		"space.4":                   "16px",
		"font.size.1":               "12px",
		"font.size.5":               "24px",
		"color.neutral.0":           "#ffffff",
		"weight.bold":               "700",
	} {
		lit, ok := g.Literal(path)
		require.True(t, ok, path)
		assert.Equal(t, want, lit.String(), path)
	}

	for _, category := range []string{"color", "font", "textRole", "lineHeight", "weight", "space", "radius", "shadow", "motion", "icons"} {
		_, ok := g[category]
		assert.True(t, ok, category)
	}
	_, ok := g.Get("motion.loading.spin")
	assert.True(t, ok)
}

func TestGlobals_ReturnsCopies(t *testing.T) {
	a := defaults.Globals()
	a["color"].(token.Branch)["hijacked"] = token.String("x")

	_, ok := defaults.Globals().Get("color.hijacked")
	assert.False(t, ok)
}

func TestGlobals_AllReferencesResolve(t *testing.T) {
	assert.Empty(t, resolver.Unresolved(defaults.Globals()))
	assert.False(t, resolver.BuildDependencyGraph(defaults.Globals()).HasCycle())
}

func TestRegistry(t *testing.T) {
	reg := defaults.Registry()
	assert.Equal(t, []string{"badge", "button", "card", "icon-button", "input", "spinner", "switch", "tooltip"}, reg.IDs())
}

func TestRegistry_ComponentReferencesResolve(t *testing.T) {
	g := defaults.Globals()
	for _, id := range defaults.Registry().IDs() {
		def, _ := defaults.Registry().Lookup(id)
		def.Defaults.Map(func(path string, v component.Value) component.Value {
			if token.IsReference(string(v)) {
				_, ok := resolver.Lookup(g, string(v))
				assert.True(t, ok, "%s %s -> %s", id, path, v)
			}
			return v
		})
	}
}

func TestRegistry_DefaultsHonorContracts(t *testing.T) {
	for _, id := range defaults.Registry().IDs() {
		def, _ := defaults.Registry().Lookup(id)
		assert.Empty(t, def.Contract.Violations(def.Defaults), id)
	}
}

func TestSnapshot(t *testing.T) {
	now := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	snap := defaults.Snapshot(now)

	assert.Equal(t, defaults.SnapshotID, snap.ID)
	assert.Equal(t, now, snap.CreatedAt)
	assert.Len(t, snap.Components, len(defaults.Registry()))

	s := style.ForComponent(snap.Globals, snap.Components["button"], "", "")
	assert.Equal(t, "#0f62fe", s.BackgroundColor)
	assert.Equal(t, "#ffffff", s.Color)
	assert.Equal(t, "8px 16px", s.Padding)

	hover := style.ForComponent(snap.Globals, snap.Components["button"], "hover", "")
	assert.Equal(t, "#0353e9", hover.BackgroundColor)
	assert.Equal(t, s.Color, hover.Color)
}
