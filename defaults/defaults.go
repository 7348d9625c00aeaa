/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package defaults provides the factory design system: the global token
// tree, the component registry, and the seed snapshot built from them.
package defaults

import (
	_ "embed"
	"sync"
	"time"

	"bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/snapshot"
	"bennypowers.dev/tessera/token"
)

// SnapshotID is the id of the seed snapshot.
const SnapshotID = "default"

// Version is the version stamped on the seed snapshot.
const Version = "1.0.0"

//go:embed globals.yaml
var globalsYAML []byte

var parsedGlobals = sync.OnceValue(func() token.Branch {
	tree, err := token.Parse(globalsYAML)
	if err != nil {
		// The embedded file is part of the build.
		panic("defaults: parsing globals.yaml: " + err.Error())
	}
	return tree
})

// Globals returns a fresh copy of the factory global token tree.
func Globals() token.Branch {
	return parsedGlobals().Clone()
}

// Snapshot returns the seed snapshot, stamped with now.
func Snapshot(now time.Time) *snapshot.Snapshot {
	now = now.UTC()
	return &snapshot.Snapshot{
		ID:          SnapshotID,
		Name:        "Default",
		Description: "Factory design system",
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     Version,
		Globals:     Globals(),
		Components:  Registry().DefaultLayers(),
	}
}

var v = component.V

// Registry returns the factory component definitions.
func Registry() component.Registry {
	return component.NewRegistry(
		button(),
		iconButton(),
		input(),
		card(),
		badge(),
		toggle(),
		tooltip(),
		spinner(),
	)
}

func interactiveStates() map[string]component.Tokens {
	return map[string]component.Tokens{
		"hover":  {Color: &component.ColorTokens{BG: v("color.accent.primary.hover")}},
		"active": {Color: &component.ColorTokens{BG: v("color.accent.primary.active")}},
		"focus":  {Border: &component.BorderTokens{Color: v("color.border.focus"), Width: v("2px")}},
		"disabled": {Color: &component.ColorTokens{
			FG: v("color.text.disabled"),
			BG: v("color.surface.disabled"),
		}},
	}
}

func button() component.Definition {
	return component.Definition{
		ID: "button",
		Contract: component.Contract{
			Anatomy:   []string{"root", "label", "icon"},
			Semantics: "button",
			Variants:  []string{"primary", "secondary", "ghost", "sm", "lg"},
			States:    []string{"hover", "active", "focus", "disabled", "loading"},
			Required:  []string{"color.fg", "color.bg", "typography.size"},
			Forbidden: []string{"layout"},
		},
		Defaults: component.Layers{
			BaseTokens: component.Tokens{
				Color: &component.ColorTokens{FG: v("color.text.onAccent"), BG: v("color.accent.primary.base")},
				Typography: &component.TypographyTokens{
					Size:       v("textRole.label.size"),
					Weight:     v("weight.medium"),
					LineHeight: v("lineHeight.tight"),
				},
				Spacing: &component.SpacingTokens{PaddingX: v("space.4"), PaddingY: v("space.2"), Gap: v("space.2")},
				Radius:  v("radius.md"),
				Motion:  &component.MotionTokens{Duration: v("motion.duration.fast"), Easing: v("motion.easing.standard")},
				Layout:  &component.LayoutTokens{MinWidth: v("64px")},
			},
			States: func() map[string]component.Tokens {
				s := interactiveStates()
				s["loading"] = component.Tokens{Color: &component.ColorTokens{FG: v("color.text.disabled")}}
				return s
			}(),
			Variants: map[string]component.Tokens{
				"primary":   {},
				"secondary": {Color: &component.ColorTokens{BG: v("color.accent.secondary.base")}},
				"ghost": {Color: &component.ColorTokens{
					FG:     v("color.accent.primary.base"),
					BG:     v("transparent"),
					Border: v("color.accent.primary.base"),
				}},
				"sm": {
					Typography: &component.TypographyTokens{Size: v("font.size.1")},
					Spacing:    &component.SpacingTokens{PaddingX: v("space.3"), PaddingY: v("space.1")},
				},
				"lg": {
					Typography: &component.TypographyTokens{Size: v("font.size.3")},
					Spacing:    &component.SpacingTokens{PaddingX: v("space.5"), PaddingY: v("space.3")},
				},
			},
			Slots: map[string]component.Tokens{
				"icon": {Typography: &component.TypographyTokens{Size: v("icons.size.sm")}},
			},
		},
	}
}

func iconButton() component.Definition {
	return component.Definition{
		ID: "icon-button",
		Contract: component.Contract{
			Anatomy:   []string{"root", "icon"},
			Semantics: "button",
			Variants:  []string{"ghost", "sm"},
			States:    []string{"hover", "active", "focus", "disabled"},
			Required:  []string{"color.fg", "color.bg"},
			Forbidden: []string{"typography", "layout"},
		},
		Defaults: component.Layers{
			BaseTokens: component.Tokens{
				Color:   &component.ColorTokens{FG: v("color.text.onAccent"), BG: v("color.accent.primary.base")},
				Spacing: &component.SpacingTokens{PaddingX: v("space.2"), PaddingY: v("space.2")},
				Radius:  v("radius.md"),
				Motion:  &component.MotionTokens{Duration: v("motion.duration.fast"), Easing: v("motion.easing.standard")},
			},
			States: interactiveStates(),
			Variants: map[string]component.Tokens{
				"ghost": {Color: &component.ColorTokens{FG: v("color.text.primary"), BG: v("transparent")}},
				"sm":    {Spacing: &component.SpacingTokens{PaddingX: v("space.1"), PaddingY: v("space.1")}},
			},
			Slots: map[string]component.Tokens{
				"icon": {Typography: &component.TypographyTokens{Size: v("icons.size.md")}},
			},
		},
	}
}

func input() component.Definition {
	return component.Definition{
		ID: "input",
		Contract: component.Contract{
			Anatomy:   []string{"root", "label", "field", "helper"},
			Semantics: "textbox",
			Variants:  []string{"sm", "lg"},
			States:    []string{"hover", "focus", "disabled", "invalid"},
			Required:  []string{"color.fg", "color.bg", "border.color"},
			Forbidden: []string{"motion"},
		},
		Defaults: component.Layers{
			BaseTokens: component.Tokens{
				Color:      &component.ColorTokens{FG: v("color.text.primary"), BG: v("color.surface.default")},
				Typography: &component.TypographyTokens{Size: v("textRole.body.size"), LineHeight: v("textRole.body.lineHeight")},
				Spacing:    &component.SpacingTokens{PaddingX: v("space.3"), PaddingY: v("space.2")},
				Border:     &component.BorderTokens{Color: v("color.border.strong"), Width: v("1px"), Style: v("solid")},
				Radius:     v("radius.sm"),
				Layout:     &component.LayoutTokens{MinWidth: v("160px")},
			},
			States: map[string]component.Tokens{
				"hover":    {Border: &component.BorderTokens{Color: v("color.text.primary")}},
				"focus":    {Border: &component.BorderTokens{Color: v("color.border.focus"), Width: v("2px")}},
				"disabled": {Color: &component.ColorTokens{FG: v("color.text.disabled"), BG: v("color.surface.disabled")}},
				"invalid":  {Border: &component.BorderTokens{Color: v("color.status.danger")}},
			},
			Variants: map[string]component.Tokens{
				"sm": {Spacing: &component.SpacingTokens{PaddingX: v("space.2"), PaddingY: v("space.1")}},
				"lg": {Spacing: &component.SpacingTokens{PaddingX: v("space.4"), PaddingY: v("space.3")}},
			},
			Slots: map[string]component.Tokens{
				"helper": {
					Color:      &component.ColorTokens{FG: v("color.text.secondary")},
					Typography: &component.TypographyTokens{Size: v("font.size.1")},
				},
			},
		},
	}
}

func card() component.Definition {
	return component.Definition{
		ID: "card",
		Contract: component.Contract{
			Anatomy:   []string{"root", "header", "body", "footer"},
			Semantics: "article",
			Variants:  []string{"raised", "outlined"},
			States:    []string{"hover"},
			Required:  []string{"color.bg"},
		},
		Defaults: component.Layers{
			BaseTokens: component.Tokens{
				Color:   &component.ColorTokens{FG: v("color.text.primary"), BG: v("color.surface.default")},
				Spacing: &component.SpacingTokens{PaddingX: v("space.5"), PaddingY: v("space.5"), Gap: v("space.3")},
				Radius:  v("radius.lg"),
				Shadow:  v("shadow.sm"),
				Layout:  &component.LayoutTokens{MaxWidth: v("480px")},
			},
			States: map[string]component.Tokens{
				"hover": {Shadow: v("shadow.md")},
			},
			Variants: map[string]component.Tokens{
				"raised":   {Shadow: v("shadow.lg")},
				"outlined": {Shadow: v("shadow.none"), Border: &component.BorderTokens{Color: v("color.border.subtle")}},
			},
		},
	}
}

func badge() component.Definition {
	return component.Definition{
		ID: "badge",
		Contract: component.Contract{
			Anatomy:   []string{"root", "label"},
			Semantics: "status",
			Variants:  []string{"success", "warning", "danger", "info"},
			Required:  []string{"color.fg", "color.bg"},
			Forbidden: []string{"motion", "layout"},
		},
		Defaults: component.Layers{
			BaseTokens: component.Tokens{
				Color:      &component.ColorTokens{FG: v("color.text.onAccent"), BG: v("color.neutral.600")},
				Typography: &component.TypographyTokens{Size: v("font.size.1"), Weight: v("weight.semibold")},
				Spacing:    &component.SpacingTokens{PaddingX: v("space.2"), PaddingY: v("2px")},
				Radius:     v("radius.pill"),
			},
			Variants: map[string]component.Tokens{
				"success": {Color: &component.ColorTokens{BG: v("color.status.success")}},
				"warning": {Color: &component.ColorTokens{FG: v("color.text.primary"), BG: v("color.status.warning")}},
				"danger":  {Color: &component.ColorTokens{BG: v("color.status.danger")}},
				"info":    {Color: &component.ColorTokens{BG: v("color.status.info")}},
			},
		},
	}
}

func toggle() component.Definition {
	return component.Definition{
		ID: "switch",
		Contract: component.Contract{
			Anatomy:   []string{"root", "track", "thumb", "label"},
			Semantics: "switch",
			States:    []string{"checked", "focus", "disabled"},
			Required:  []string{"color.bg"},
			Forbidden: []string{"typography"},
		},
		Defaults: component.Layers{
			BaseTokens: component.Tokens{
				Color:  &component.ColorTokens{BG: v("color.neutral.400")},
				Radius: v("radius.pill"),
				Motion: &component.MotionTokens{Duration: v("motion.duration.normal"), Easing: v("motion.easing.standard")},
				Layout: &component.LayoutTokens{MinWidth: v("40px")},
			},
			States: map[string]component.Tokens{
				"checked":  {Color: &component.ColorTokens{BG: v("color.accent.primary.base")}},
				"focus":    {Border: &component.BorderTokens{Color: v("color.border.focus"), Width: v("2px")}},
				"disabled": {Color: &component.ColorTokens{BG: v("color.surface.disabled")}},
			},
			Slots: map[string]component.Tokens{
				"thumb": {Color: &component.ColorTokens{BG: v("color.neutral.0")}, Shadow: v("shadow.sm"), Radius: v("radius.pill")},
			},
		},
	}
}

func tooltip() component.Definition {
	return component.Definition{
		ID: "tooltip",
		Contract: component.Contract{
			Anatomy:   []string{"root", "arrow", "content"},
			Semantics: "tooltip",
			States:    []string{"open"},
			Required:  []string{"color.fg", "color.bg"},
			Forbidden: []string{"border"},
		},
		Defaults: component.Layers{
			BaseTokens: component.Tokens{
				Color:      &component.ColorTokens{FG: v("color.text.onAccent"), BG: v("color.surface.inverse")},
				Typography: &component.TypographyTokens{Size: v("font.size.1"), LineHeight: v("lineHeight.normal")},
				Spacing:    &component.SpacingTokens{PaddingX: v("space.2"), PaddingY: v("space.1")},
				Radius:     v("radius.sm"),
				Shadow:     v("shadow.md"),
				Motion:     &component.MotionTokens{Transition: v("opacity 100ms ease-in")},
				Layout:     &component.LayoutTokens{MaxWidth: v("240px")},
			},
			States: map[string]component.Tokens{
				"open": {Motion: &component.MotionTokens{Transition: v("opacity 200ms ease-out")}},
			},
		},
	}
}

func spinner() component.Definition {
	return component.Definition{
		ID: "spinner",
		Contract: component.Contract{
			Anatomy:   []string{"root", "track", "indicator"},
			Semantics: "progressbar",
			Variants:  []string{"sm", "lg", "pulse"},
			Required:  []string{"color.fg"},
			Forbidden: []string{"spacing", "typography"},
		},
		Defaults: component.Layers{
			BaseTokens: component.Tokens{
				Color:  &component.ColorTokens{FG: v("color.accent.primary.base"), Border: v("color.neutral.200")},
				Border: &component.BorderTokens{Width: v("3px")},
				Radius: v("radius.pill"),
				Motion: &component.MotionTokens{Duration: v("motion.loading.spin.duration"), Easing: v("motion.loading.spin.easing")},
				Layout: &component.LayoutTokens{MinWidth: v("icons.size.md")},
			},
			Variants: map[string]component.Tokens{
				"sm":    {Layout: &component.LayoutTokens{MinWidth: v("icons.size.sm")}, Border: &component.BorderTokens{Width: v("2px")}},
				"lg":    {Layout: &component.LayoutTokens{MinWidth: v("icons.size.lg")}},
				"pulse": {Motion: &component.MotionTokens{Duration: v("motion.loading.pulse.duration"), Easing: v("motion.loading.pulse.easing")}},
			},
		},
	}
}
