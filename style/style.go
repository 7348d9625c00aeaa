/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package style materializes merged component tokens into flat style records.
package style

import (
	"math"
	"strconv"
	"strings"

	"bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/resolver"
	"bennypowers.dev/tessera/token"
)

// FallbackFontFamily is the global token used when no font family is set.
const FallbackFontFamily = "font.family.sans"

const (
	defaultBorderWidth = "1px"
	defaultBorderStyle = "solid"
)

// FlatStyle is a render-agnostic style record. Every value is resolved;
// empty strings mean the property is not emitted.
type FlatStyle struct {
	Color           string         `json:"color,omitempty"`
	BackgroundColor string         `json:"backgroundColor,omitempty"`
	BorderWidth     string         `json:"borderWidth,omitempty"`
	BorderStyle     string         `json:"borderStyle,omitempty"`
	BorderColor     string         `json:"borderColor,omitempty"`
	BorderRadius    string         `json:"borderRadius,omitempty"`
	BoxShadow       string         `json:"boxShadow,omitempty"`
	Padding         string         `json:"padding,omitempty"`
	Gap             string         `json:"gap,omitempty"`
	FontSize        string         `json:"fontSize,omitempty"`
	FontWeight      *token.Literal `json:"fontWeight,omitempty"`
	LineHeight      string         `json:"lineHeight,omitempty"`
	LetterSpacing   string         `json:"letterSpacing,omitempty"`
	FontFamily      string         `json:"fontFamily,omitempty"`
	Transition      string         `json:"transition,omitempty"`
	MinWidth        string         `json:"minWidth,omitempty"`
	MaxWidth        string         `json:"maxWidth,omitempty"`
}

// Materialize resolves a merged token set against tree into a FlatStyle.
// It is pure and recomputed on every call.
func Materialize(tree token.Branch, t component.Tokens) FlatStyle {
	r := func(v *component.Value) string {
		if v == nil {
			return ""
		}
		return resolver.Resolve(tree, string(*v))
	}

	var s FlatStyle

	if c := t.Color; c != nil {
		s.Color = r(c.FG)
		s.BackgroundColor = r(c.BG)
	}

	if b := t.Border; b != nil || (t.Color != nil && t.Color.Border != nil) {
		var color, width, bstyle string
		if b != nil {
			color = r(b.Color)
			width = r(b.Width)
			bstyle = r(b.Style)
		}
		// border.color wins over color.border
		if color == "" && t.Color != nil {
			color = r(t.Color.Border)
		}
		if color != "" {
			s.BorderColor = color
			s.BorderWidth = orDefault(width, defaultBorderWidth)
			s.BorderStyle = orDefault(bstyle, defaultBorderStyle)
		}
	}

	s.BorderRadius = r(t.Radius)
	s.BoxShadow = r(t.Shadow)

	if sp := t.Spacing; sp != nil {
		x, y := r(sp.PaddingX), r(sp.PaddingY)
		if x != "" && y != "" {
			s.Padding = y + " " + x
		}
		s.Gap = r(sp.Gap)
	}

	if ty := t.Typography; ty != nil {
		s.FontSize = r(ty.Size)
		s.LineHeight = r(ty.LineHeight)
		s.LetterSpacing = r(ty.LetterSpacing)
		s.FontFamily = r(ty.FontFamily)
		if w := r(ty.Weight); w != "" {
			weight := parseWeight(w)
			s.FontWeight = &weight
		}
	}
	if s.FontFamily == "" {
		if lit, ok := resolver.ResolveLiteral(tree, FallbackFontFamily); ok {
			s.FontFamily = lit.String()
		}
	}

	if m := t.Motion; m != nil {
		s.Transition = r(m.Transition)
		if s.Transition == "" {
			if d, e := r(m.Duration), r(m.Easing); d != "" || e != "" {
				s.Transition = strings.Join(strings.Fields("all "+d+" "+e), " ")
			}
		}
	}

	if l := t.Layout; l != nil {
		s.MinWidth = r(l.MinWidth)
		s.MaxWidth = r(l.MaxWidth)
	}

	return s
}

// ForComponent materializes the effective style of a component in the
// given state and variant. Empty names select the default.
func ForComponent(tree token.Branch, layers component.Layers, state, variant string) FlatStyle {
	return Materialize(tree, layers.Effective(state, variant))
}

// ForSlot materializes one anatomy part's tokens.
func ForSlot(tree token.Branch, layers component.Layers, slot string) (FlatStyle, bool) {
	t, ok := layers.Slots[slot]
	if !ok {
		return FlatStyle{}, false
	}
	return Materialize(tree, t), true
}

// parseWeight keeps keywords such as "bold" as strings. ParseFloat also
// accepts "NaN" and "Inf", which are not weights.
func parseWeight(s string) token.Literal {
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return token.Number(f)
	}
	return token.String(s)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
