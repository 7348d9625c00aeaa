/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package style_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/style"
	"bennypowers.dev/tessera/token"
)

var v = component.V

func globals() token.Branch {
	return token.Branch{
		"color": token.Branch{
			"accent": token.Branch{
				"primary": token.Branch{
					"base":  token.String("#0f62fe"),
					"hover": token.String("#0353e9"),
				},
			},
			"text": token.Branch{
				"onAccent": token.String("#ffffff"),
			},
			"border": token.Branch{
				"subtle": token.String("#c6c6c6"),
			},
		},
		"space": token.Branch{
			"2": token.String("8px"),
			"4": token.String("16px"),
		},
		"font": token.Branch{
			"family": token.Branch{
				"sans": token.String("'IBM Plex Sans', sans-serif"),
				"mono": token.String("'IBM Plex Mono', monospace"),
			},
		},
		"weight": token.Branch{
			"semibold": token.Number(600),
			"fallback": token.String("bold"),
		},
		"motion": token.Branch{
			"duration": token.Branch{"fast": token.String("150ms")},
			"easing":   token.Branch{"standard": token.String("cubic-bezier(0.2, 0, 0.38, 0.9)")},
		},
	}
}

func button() component.Layers {
	return component.Layers{
		BaseTokens: component.Tokens{
			Color: &component.ColorTokens{
				FG: v("color.text.onAccent"),
				BG: v("color.accent.primary.base"),
			},
			Spacing: &component.SpacingTokens{PaddingX: v("space.4"), PaddingY: v("space.2")},
		},
		States: map[string]component.Tokens{
			"hover": {Color: &component.ColorTokens{BG: v("color.accent.primary.hover")}},
		},
	}
}

func TestMaterialize_ResolvesBackground(t *testing.T) {
	s := style.ForComponent(globals(), button(), "", "")
	assert.Equal(t, "#0f62fe", s.BackgroundColor)
	assert.Equal(t, "#ffffff", s.Color)
	assert.Equal(t, "8px 16px", s.Padding)
}

func TestMaterialize_HoverKeepsForeground(t *testing.T) {
	s := style.ForComponent(globals(), button(), "hover", "")
	assert.Equal(t, "#0353e9", s.BackgroundColor)
	assert.Equal(t, "#ffffff", s.Color)
}

func TestMaterialize_Padding(t *testing.T) {
	tests := []struct {
		name    string
		spacing *component.SpacingTokens
		want    string
	}{
		{"both", &component.SpacingTokens{PaddingX: v("space.4"), PaddingY: v("space.2")}, "8px 16px"},
		{"x only", &component.SpacingTokens{PaddingX: v("space.4")}, ""},
		{"y only", &component.SpacingTokens{PaddingY: v("space.2")}, ""},
		{"y empty literal", &component.SpacingTokens{PaddingX: v("space.4"), PaddingY: v("")}, ""},
		{"literals", &component.SpacingTokens{PaddingX: v("4px"), PaddingY: v("2px")}, "2px 4px"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := style.Materialize(globals(), component.Tokens{Spacing: tt.spacing})
			assert.Equal(t, tt.want, s.Padding)
			if tt.want == "" {
				assert.NotContains(t, s.CSS(), "padding:")
			} else {
				assert.Contains(t, s.CSS(), "padding: "+tt.want+";")
			}
		})
	}
}

func TestMaterialize_Border(t *testing.T) {
	t.Run("no color means no border", func(t *testing.T) {
		s := style.Materialize(globals(), component.Tokens{
			Border: &component.BorderTokens{Width: v("2px"), Style: v("dashed")},
		})
		assert.Empty(t, s.BorderColor)
		assert.Empty(t, s.BorderWidth)
		assert.Empty(t, s.BorderStyle)
	})

	t.Run("defaults with color", func(t *testing.T) {
		s := style.Materialize(globals(), component.Tokens{
			Border: &component.BorderTokens{Color: v("color.border.subtle")},
		})
		assert.Equal(t, "#c6c6c6", s.BorderColor)
		assert.Equal(t, "1px", s.BorderWidth)
		assert.Equal(t, "solid", s.BorderStyle)
	})

	t.Run("explicit width and style", func(t *testing.T) {
		s := style.Materialize(globals(), component.Tokens{
			Border: &component.BorderTokens{Color: v("red"), Width: v("2px"), Style: v("dashed")},
		})
		assert.Equal(t, "2px", s.BorderWidth)
		assert.Equal(t, "dashed", s.BorderStyle)
	})

	t.Run("color category border", func(t *testing.T) {
		s := style.Materialize(globals(), component.Tokens{
			Color: &component.ColorTokens{Border: v("color.border.subtle")},
		})
		assert.Equal(t, "#c6c6c6", s.BorderColor)
		assert.Equal(t, "1px", s.BorderWidth)
	})
}

func TestMaterialize_FontWeight(t *testing.T) {
	s := style.Materialize(globals(), component.Tokens{
		Typography: &component.TypographyTokens{Weight: v("weight.semibold")},
	})
	require.NotNil(t, s.FontWeight)
	assert.True(t, s.FontWeight.IsNumber())
	assert.Equal(t, "600", s.FontWeight.String())

	s = style.Materialize(globals(), component.Tokens{
		Typography: &component.TypographyTokens{Weight: v("weight.fallback")},
	})
	require.NotNil(t, s.FontWeight)
	assert.False(t, s.FontWeight.IsNumber())
	assert.Equal(t, "bold", s.FontWeight.String())

	data, err := json.Marshal(style.Materialize(globals(), component.Tokens{
		Typography: &component.TypographyTokens{Weight: v("weight.semibold")},
	}))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"fontWeight":600`)
}

func TestMaterialize_FontWeightKeywords(t *testing.T) {
	tests := []struct {
		weight string
		isNum  bool
		want   string
	}{
		{"700", true, "700"},
		{"bold", false, "bold"},
		{"NaN", false, "NaN"},
		{"inf", false, "inf"},
		{"Infinity", false, "Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.weight, func(t *testing.T) {
			s := style.Materialize(globals(), component.Tokens{
				Typography: &component.TypographyTokens{Weight: v(tt.weight)},
			})
			require.NotNil(t, s.FontWeight)
			assert.Equal(t, tt.isNum, s.FontWeight.IsNumber())
			assert.Equal(t, tt.want, s.FontWeight.String())
			_, err := json.Marshal(s)
			require.NoError(t, err)
		})
	}
}

func TestMaterialize_FontFamilyFallback(t *testing.T) {
	s := style.Materialize(globals(), component.Tokens{})
	assert.Equal(t, "'IBM Plex Sans', sans-serif", s.FontFamily)

	s = style.Materialize(globals(), component.Tokens{
		Typography: &component.TypographyTokens{FontFamily: v("font.family.mono")},
	})
	assert.Equal(t, "'IBM Plex Mono', monospace", s.FontFamily)

	s = style.Materialize(token.Branch{}, component.Tokens{})
	assert.Empty(t, s.FontFamily, "no fallback token means no font family")

	aliased := globals().With([]string{"font", "family", "sans"}, token.String("font.family.mono"))
	s = style.Materialize(aliased, component.Tokens{})
	assert.Equal(t, "'IBM Plex Mono', monospace", s.FontFamily)
}

func TestMaterialize_Transition(t *testing.T) {
	s := style.Materialize(globals(), component.Tokens{
		Motion: &component.MotionTokens{Duration: v("motion.duration.fast"), Easing: v("motion.easing.standard")},
	})
	assert.Equal(t, "all 150ms cubic-bezier(0.2, 0, 0.38, 0.9)", s.Transition)

	s = style.Materialize(globals(), component.Tokens{
		Motion: &component.MotionTokens{Duration: v("motion.duration.fast")},
	})
	assert.Equal(t, "all 150ms", s.Transition)

	s = style.Materialize(globals(), component.Tokens{
		Motion: &component.MotionTokens{Transition: v("opacity 100ms"), Duration: v("motion.duration.fast")},
	})
	assert.Equal(t, "opacity 100ms", s.Transition)
}

func TestMaterialize_UnresolvedPassesThrough(t *testing.T) {
	s := style.Materialize(globals(), component.Tokens{Radius: v("radius.huge")})
	assert.Equal(t, "radius.huge", s.BorderRadius)
}

func TestFlatStyle_CSS(t *testing.T) {
	s := style.ForComponent(globals(), button(), "", "")
	assert.Equal(t,
		"color: #ffffff; background-color: #0f62fe; padding: 8px 16px; font-family: 'IBM Plex Sans', sans-serif;",
		s.CSS())
}

func TestForSlot(t *testing.T) {
	layers := button()
	layers.Slots = map[string]component.Tokens{
		"icon": {Color: &component.ColorTokens{FG: v("color.text.onAccent")}},
	}

	s, ok := style.ForSlot(globals(), layers, "icon")
	require.True(t, ok)
	assert.Equal(t, "#ffffff", s.Color)

	_, ok = style.ForSlot(globals(), layers, "label")
	assert.False(t, ok)
}
