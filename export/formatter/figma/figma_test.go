/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package figma_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/export/formatter"
	"bennypowers.dev/tessera/export/formatter/figma"
	"bennypowers.dev/tessera/token"
)

var exportedAt = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func document() *formatter.Document {
	return &formatter.Document{
		Name:    "Acme",
		Version: "2.0.0",
		Globals: token.Branch{
			"color": token.Branch{
				"accent": token.Branch{"primary": token.Branch{"base": token.String("#ff0000")}},
				"text":   token.Branch{"link": token.String("color.accent.primary.base")},
				"weird":  token.String("not-a-color"),
			},
			"space":  token.Branch{"4": token.String("16px")},
			"radius": token.Branch{"md": token.String("auto")},
			"weight": token.Branch{"bold": token.Number(700)},
			"font":   token.Branch{"size": token.Branch{"1": token.String("0.75rem")}, "family": token.Branch{"sans": token.String("Inter")}},
		},
		Components: map[string]component.Layers{
			"button": {
				BaseTokens: component.Tokens{
					Color:  &component.ColorTokens{BG: component.V("color.accent.primary.base"), FG: component.V("#ffffff")},
					Radius: component.V("radius.missing"),
				},
				States: map[string]component.Tokens{
					"hover": {Spacing: &component.SpacingTokens{Gap: component.V("space.4")}},
				},
			},
		},
	}
}

func export(t *testing.T, opts formatter.Options) figma.File {
	t.Helper()
	opts.Now = func() time.Time { return exportedAt }
	data, err := figma.New().Format(document(), opts)
	require.NoError(t, err)

	var file figma.File
	require.NoError(t, json.Unmarshal(data, &file))
	return file
}

func variables(c figma.Collection) map[string]figma.Variable {
	out := map[string]figma.Variable{}
	for _, v := range c.Variables {
		out[v.Name] = v
	}
	return out
}

func TestFormat_Header(t *testing.T) {
	file := export(t, formatter.Options{})
	assert.Equal(t, figma.FileVersion, file.Version)
	assert.True(t, exportedAt.Equal(file.ExportedAt))
	assert.Equal(t, "Acme", file.SourceSystem)
	assert.Equal(t, "2.0.0", file.SourceVersion)
	require.Len(t, file.Collections, 2)
	assert.Equal(t, "Primitives", file.Collections[0].Name)
	assert.Equal(t, "Components", file.Collections[1].Name)
}

func TestFormat_Types(t *testing.T) {
	vars := variables(export(t, formatter.Options{}).Collections[0])

	base := vars["color/accent/primary/base"]
	assert.Equal(t, figma.TypeColor, base.Type)
	assert.Equal(t, map[string]any{"r": 1.0, "g": 0.0, "b": 0.0, "a": 1.0}, base.ValuesByMode[figma.DefaultModeID])
	assert.Equal(t, "var(--color-accent-primary-base)", base.CodeSyntax["WEB"])

	weird := vars["color/weird"]
	assert.Equal(t, figma.TypeString, weird.Type, "unparseable colors degrade to STRING")
	assert.Equal(t, "not-a-color", weird.ValuesByMode[figma.DefaultModeID])

	assert.Equal(t, figma.TypeFloat, vars["space/4"].Type)
	assert.Equal(t, 16.0, vars["space/4"].ValuesByMode[figma.DefaultModeID])

	assert.Equal(t, figma.TypeFloat, vars["font/size/1"].Type)
	assert.Equal(t, 0.75, vars["font/size/1"].ValuesByMode[figma.DefaultModeID])

	assert.Equal(t, figma.TypeFloat, vars["weight/bold"].Type)
	assert.Equal(t, 700.0, vars["weight/bold"].ValuesByMode[figma.DefaultModeID])

	assert.Equal(t, figma.TypeString, vars["radius/md"].Type, "non-numeric FLOAT candidates degrade to STRING")
	assert.Equal(t, figma.TypeString, vars["font/family/sans"].Type)
}

func TestFormat_GlobalAlias(t *testing.T) {
	vars := variables(export(t, formatter.Options{}).Collections[0])

	link := vars["color/text/link"]
	assert.Equal(t, figma.TypeColor, link.Type)
	assert.Equal(t, map[string]any{
		"type": "VARIABLE_ALIAS",
		"id":   figma.VariableID("primitives", []string{"color", "accent", "primary", "base"}),
	}, link.ValuesByMode[figma.DefaultModeID])
}

func TestFormat_ComponentAliases(t *testing.T) {
	vars := variables(export(t, formatter.Options{}).Collections[1])

	bg := vars["button/base/color/bg"]
	assert.Equal(t, "VARIABLE_ALIAS", bg.ValuesByMode[figma.DefaultModeID].(map[string]any)["type"])
	assert.Equal(t, "var(--button-color-bg)", bg.CodeSyntax["WEB"])

	fg := vars["button/base/color/fg"]
	assert.Equal(t, figma.TypeColor, fg.Type)
	assert.Equal(t, map[string]any{"r": 1.0, "g": 1.0, "b": 1.0, "a": 1.0}, fg.ValuesByMode[figma.DefaultModeID])

	radius := vars["button/base/radius"]
	assert.Equal(t, figma.TypeString, radius.Type, "dangling reference keeps its string")
	assert.Equal(t, "radius.missing", radius.ValuesByMode[figma.DefaultModeID])

	gap := vars["button/state-hover/spacing/gap"]
	assert.Equal(t, figma.TypeFloat, gap.Type)
	assert.Equal(t, "VARIABLE_ALIAS", gap.ValuesByMode[figma.DefaultModeID].(map[string]any)["type"])
}

func TestFormat_IncludeDropsAliasTargets(t *testing.T) {
	file := export(t, formatter.Options{Include: []string{"color/text/**"}})
	vars := variables(file.Collections[0])

	require.Len(t, vars, 1)
	link := vars["color/text/link"]
	assert.Equal(t, figma.TypeColor, link.Type)
	assert.Equal(t, map[string]any{"r": 1.0, "g": 0.0, "b": 0.0, "a": 1.0}, link.ValuesByMode[figma.DefaultModeID])
}

func TestClassify(t *testing.T) {
	tests := map[string]figma.VariableType{
		"color.accent.primary.base": figma.TypeColor,
		"border.color":              figma.TypeColor,
		"space.4":                   figma.TypeFloat,
		"spacing.paddingX":          figma.TypeFloat,
		"radius":                    figma.TypeFloat,
		"weight.bold":               figma.TypeFloat,
		"typography.weight":         figma.TypeFloat,
		"font.size.3":               figma.TypeFloat,
		"icons.size.md":             figma.TypeFloat,
		"font.family.sans":          figma.TypeString,
		"motion.duration.fast":      figma.TypeString,
	}
	for path, want := range tests {
		assert.Equal(t, want, figma.Classify(path), path)
	}
}

func TestConvert_LeadingNumber(t *testing.T) {
	typ, v := figma.Convert(figma.TypeFloat, token.String("-2.5px"))
	assert.Equal(t, figma.TypeFloat, typ)
	assert.Equal(t, -2.5, v)

	typ, v = figma.Convert(figma.TypeFloat, token.String(".5rem"))
	assert.Equal(t, figma.TypeFloat, typ)
	assert.Equal(t, 0.5, v)

	typ, v = figma.Convert(figma.TypeFloat, token.String("calc(1px + 2px)"))
	assert.Equal(t, figma.TypeString, typ)
	assert.Equal(t, "calc(1px + 2px)", v)
}
