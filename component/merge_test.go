/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tessera/component"
)

var v = component.V

func buttonBase() component.Tokens {
	return component.Tokens{
		Color: &component.ColorTokens{
			FG: v("color.text.onAccent"),
			BG: v("color.accent.primary.base"),
		},
		Spacing: &component.SpacingTokens{PaddingX: v("space.4"), PaddingY: v("space.2")},
		Radius:  v("radius.md"),
		Shadow:  v("shadow.sm"),
	}
}

func TestMerge_Precedence(t *testing.T) {
	base := buttonBase()
	state := component.Tokens{Color: &component.ColorTokens{BG: v("color.accent.primary.hover")}}
	variant := component.Tokens{Color: &component.ColorTokens{BG: v("transparent")}}

	merged := component.Merge(base, state, variant)
	assert.Equal(t, "transparent", string(*merged.Color.BG), "variant beats state")

	merged = component.Merge(base, state)
	assert.Equal(t, "color.accent.primary.hover", string(*merged.Color.BG), "state beats base")

	merged = component.Merge(base)
	assert.Equal(t, "color.accent.primary.base", string(*merged.Color.BG))
}

func TestMerge_FieldIndependence(t *testing.T) {
	base := buttonBase()
	hover := component.Tokens{Color: &component.ColorTokens{BG: v("color.accent.primary.hover")}}

	merged := component.Merge(base, hover, component.Tokens{})

	require.NotNil(t, merged.Color.FG)
	assert.Equal(t, *base.Color.FG, *merged.Color.FG, "fg must be inherited from base")
	assert.Equal(t, *base.Spacing.PaddingX, *merged.Spacing.PaddingX)
	assert.Equal(t, *base.Radius, *merged.Radius)
}

func TestMerge_EmptyStringIsALiteral(t *testing.T) {
	base := buttonBase()
	override := component.Tokens{Shadow: v("")}

	merged := component.Merge(base, override)
	require.NotNil(t, merged.Shadow)
	assert.Equal(t, "", string(*merged.Shadow))
}

func TestMerge_ScalarReplace(t *testing.T) {
	base := component.Tokens{Radius: v("radius.md"), Layout: &component.LayoutTokens{MinWidth: v("64px"), MaxWidth: v("320px")}}
	variant := component.Tokens{Radius: v("radius.pill"), Layout: &component.LayoutTokens{MinWidth: v("0")}}

	merged := component.Merge(base, variant)
	assert.Equal(t, "radius.pill", string(*merged.Radius))
	assert.Equal(t, "0", string(*merged.Layout.MinWidth))
	assert.Equal(t, "320px", string(*merged.Layout.MaxWidth))
}

func TestMerge_DoesNotAliasInputs(t *testing.T) {
	base := buttonBase()
	merged := component.Merge(base)
	*merged.Color.BG = "mutated"
	assert.Equal(t, "color.accent.primary.base", string(*base.Color.BG))
}

func TestMerge_PrecedenceAcrossAllFields(t *testing.T) {
	layers := make([]component.Tokens, 3)
	for i, owner := range []string{"base", "state", "variant"} {
		for j, path := range component.FieldPaths() {
			// Each layer defines a different subset of fields.
			if (j+i)%3 == 0 || i == 0 {
				var err error
				layers[i], err = layers[i].Set(path, v(owner+":"+path))
				require.NoError(t, err)
			}
		}
	}

	merged := component.Merge(layers...)
	for _, path := range component.FieldPaths() {
		want := ""
		switch {
		case layers[2].Has(path):
			want = "variant:" + path
		case layers[1].Has(path):
			want = "state:" + path
		default:
			want = "base:" + path
		}
		got, ok := merged.Get(path)
		require.True(t, ok, path)
		assert.Equal(t, want, string(got), path)
	}
}

func TestLayers_Effective(t *testing.T) {
	layers := component.Layers{
		BaseTokens: buttonBase(),
		States: map[string]component.Tokens{
			"hover": {Color: &component.ColorTokens{BG: v("color.accent.primary.hover")}},
		},
		Variants: map[string]component.Tokens{
			"ghost": {Color: &component.ColorTokens{BG: v("transparent")}},
		},
	}

	got := layers.Effective("hover", "")
	assert.Equal(t, "color.accent.primary.hover", string(*got.Color.BG))
	assert.Equal(t, "color.text.onAccent", string(*got.Color.FG))

	got = layers.Effective("hover", "ghost")
	assert.Equal(t, "transparent", string(*got.Color.BG))

	got = layers.Effective("nonexistent", "")
	assert.Equal(t, "color.accent.primary.base", string(*got.Color.BG))
}

func TestLayers_WithLayer(t *testing.T) {
	layers := component.Layers{BaseTokens: buttonBase()}
	patch := component.Tokens{Color: &component.ColorTokens{BG: v("color.surface.disabled")}}

	updated := layers.WithLayer(component.LayerRef{Kind: component.LayerState, Name: "disabled"}, patch)

	_, ok := layers.Layer(component.LayerRef{Kind: component.LayerState, Name: "disabled"})
	assert.False(t, ok, "original layers untouched")

	got, ok := updated.Layer(component.LayerRef{Kind: component.LayerState, Name: "disabled"})
	require.True(t, ok)
	assert.Equal(t, "color.surface.disabled", string(*got.Color.BG))
	assert.Equal(t, []string{"disabled"}, updated.StateNames())
}
