/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package component_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tessera/component"
)

func TestTokens_SetAndGet(t *testing.T) {
	var tokens component.Tokens

	updated, err := tokens.Set("typography.weight", v("weight.semibold"))
	require.NoError(t, err)

	got, ok := updated.Get("typography.weight")
	require.True(t, ok)
	assert.Equal(t, component.Value("weight.semibold"), got)
	assert.Nil(t, tokens.Typography, "Set must not modify the receiver")

	removed, err := updated.Set("typography.weight", nil)
	require.NoError(t, err)
	assert.False(t, removed.Has("typography.weight"))
}

func TestTokens_SetUnknownField(t *testing.T) {
	_, err := component.Tokens{}.Set("color.outline", v("red"))
	assert.ErrorContains(t, err, "unknown token field")
}

func TestTokens_EachOrder(t *testing.T) {
	tokens := buttonBase()
	var paths []string
	tokens.Each(func(path string, _ component.Value) {
		paths = append(paths, path)
	})
	assert.Equal(t, []string{"color.fg", "color.bg", "spacing.paddingX", "spacing.paddingY", "radius", "shadow"}, paths)
}

func TestTokens_Map(t *testing.T) {
	mapped := buttonBase().Map(func(_ string, val component.Value) component.Value {
		return "x:" + val
	})
	assert.Equal(t, component.Value("x:radius.md"), *mapped.Radius)
	assert.Nil(t, mapped.Border)
}

func TestTokens_JSON(t *testing.T) {
	data := []byte(`{"color":{"bg":"color.accent.primary.base","fg":""},"radius":4,"layout":{"minWidth":"64px"}}`)

	var tokens component.Tokens
	require.NoError(t, json.Unmarshal(data, &tokens))

	assert.Equal(t, component.Value("4"), *tokens.Radius)
	require.NotNil(t, tokens.Color.FG, "explicit empty string must be kept")
	assert.Equal(t, component.Value(""), *tokens.Color.FG)
	assert.Nil(t, tokens.Color.Border)

	out, err := json.Marshal(tokens)
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":{"bg":"color.accent.primary.base","fg":""},"radius":"4","layout":{"minWidth":"64px"}}`, string(out))
}

func TestTokens_IsEmpty(t *testing.T) {
	assert.True(t, component.Tokens{}.IsEmpty())
	assert.True(t, component.Tokens{Color: &component.ColorTokens{}}.IsEmpty())
	assert.False(t, buttonBase().IsEmpty())
}

func TestContract_Violations(t *testing.T) {
	contract := component.Contract{
		Anatomy:   []string{"root", "label"},
		Variants:  []string{"ghost"},
		States:    []string{"hover"},
		Required:  []string{"color.bg", "typography.size"},
		Forbidden: []string{"layout", "radius"},
	}
	layers := component.Layers{
		BaseTokens: buttonBase(),
		States: map[string]component.Tokens{
			"hover": {Radius: v("radius.lg")},
		},
		Variants: map[string]component.Tokens{
			"ghost": {Layout: &component.LayoutTokens{MinWidth: v("0")}},
			"huge":  {},
		},
	}

	violations := contract.Violations(layers)

	var fields []string
	for _, vi := range violations {
		fields = append(fields, vi.Layer+"|"+vi.Field)
	}
	assert.ElementsMatch(t, []string{
		"base|typography.size",
		"state:hover|radius",
		"variant:ghost|layout.minWidth",
		"variant:huge|",
	}, fields)
}

func TestDefinition_DisplayLabel(t *testing.T) {
	assert.Equal(t, "Icon Button", component.Definition{ID: "icon-button"}.DisplayLabel())
	assert.Equal(t, "CTA", component.Definition{ID: "cta", Label: "CTA"}.DisplayLabel())
}

func TestRegistry_IDs(t *testing.T) {
	r := component.NewRegistry(component.Definition{ID: "input"}, component.Definition{ID: "button"})
	assert.Equal(t, []string{"button", "input"}, r.IDs())
}
