/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package component provides per-component token layers and the merge engine.
package component

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Value is a component token field: a literal or a dotted token reference.
// Fields are held as *Value; nil means "inherit from the next-lower layer",
// while an explicit empty string is a literal value.
type Value string

// V returns a pointer to a Value, for building token layers.
func V(s string) *Value {
	v := Value(s)
	return &v
}

// String returns the raw field text.
func (v Value) String() string {
	return string(v)
}

// UnmarshalJSON accepts a JSON string or number.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Value(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("token value must be a string or number: %s", data)
	}
	*v = Value(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// ColorTokens holds foreground, background and border colors.
type ColorTokens struct {
	FG     *Value `json:"fg,omitempty"`
	BG     *Value `json:"bg,omitempty"`
	Border *Value `json:"border,omitempty"`
}

// TypographyTokens holds text styling.
type TypographyTokens struct {
	Size          *Value `json:"size,omitempty"`
	Weight        *Value `json:"weight,omitempty"`
	LineHeight    *Value `json:"lineHeight,omitempty"`
	LetterSpacing *Value `json:"letterSpacing,omitempty"`
	FontFamily    *Value `json:"fontFamily,omitempty"`
}

// SpacingTokens holds padding and gap.
type SpacingTokens struct {
	PaddingX *Value `json:"paddingX,omitempty"`
	PaddingY *Value `json:"paddingY,omitempty"`
	Gap      *Value `json:"gap,omitempty"`
}

// BorderTokens holds border styling.
type BorderTokens struct {
	Width *Value `json:"width,omitempty"`
	Style *Value `json:"style,omitempty"`
	Color *Value `json:"color,omitempty"`
}

// MotionTokens holds transition timing.
type MotionTokens struct {
	Transition *Value `json:"transition,omitempty"`
	Duration   *Value `json:"duration,omitempty"`
	Easing     *Value `json:"easing,omitempty"`
}

// LayoutTokens holds size constraints.
type LayoutTokens struct {
	MinWidth *Value `json:"minWidth,omitempty"`
	MaxWidth *Value `json:"maxWidth,omitempty"`
}

// Tokens is one component token layer. Every category is optional.
type Tokens struct {
	Color      *ColorTokens      `json:"color,omitempty"`
	Typography *TypographyTokens `json:"typography,omitempty"`
	Spacing    *SpacingTokens    `json:"spacing,omitempty"`
	Border     *BorderTokens     `json:"border,omitempty"`
	Radius     *Value            `json:"radius,omitempty"`
	Shadow     *Value            `json:"shadow,omitempty"`
	Motion     *MotionTokens     `json:"motion,omitempty"`
	Layout     *LayoutTokens     `json:"layout,omitempty"`
}

// fieldPaths lists every token field in a fixed order. The order drives
// iteration for export and display, so keep it stable.
var fieldPaths = []string{
	"color.fg", "color.bg", "color.border",
	"typography.size", "typography.weight", "typography.lineHeight", "typography.letterSpacing", "typography.fontFamily",
	"spacing.paddingX", "spacing.paddingY", "spacing.gap",
	"border.width", "border.style", "border.color",
	"radius",
	"shadow",
	"motion.transition", "motion.duration", "motion.easing",
	"layout.minWidth", "layout.maxWidth",
}

// slot returns the storage location for a field path. When create is false
// and the field's category is absent, slot returns nil. Unknown paths also
// return nil.
func (t *Tokens) slot(path string, create bool) **Value {
	category, name, _ := strings.Cut(path, ".")
	switch category {
	case "radius":
		return &t.Radius
	case "shadow":
		return &t.Shadow
	case "color":
		if t.Color == nil && !create {
			return nil
		}
		if t.Color == nil {
			t.Color = &ColorTokens{}
		}
		switch name {
		case "fg":
			return &t.Color.FG
		case "bg":
			return &t.Color.BG
		case "border":
			return &t.Color.Border
		}
	case "typography":
		if t.Typography == nil && !create {
			return nil
		}
		if t.Typography == nil {
			t.Typography = &TypographyTokens{}
		}
		switch name {
		case "size":
			return &t.Typography.Size
		case "weight":
			return &t.Typography.Weight
		case "lineHeight":
			return &t.Typography.LineHeight
		case "letterSpacing":
			return &t.Typography.LetterSpacing
		case "fontFamily":
			return &t.Typography.FontFamily
		}
	case "spacing":
		if t.Spacing == nil && !create {
			return nil
		}
		if t.Spacing == nil {
			t.Spacing = &SpacingTokens{}
		}
		switch name {
		case "paddingX":
			return &t.Spacing.PaddingX
		case "paddingY":
			return &t.Spacing.PaddingY
		case "gap":
			return &t.Spacing.Gap
		}
	case "border":
		if t.Border == nil && !create {
			return nil
		}
		if t.Border == nil {
			t.Border = &BorderTokens{}
		}
		switch name {
		case "width":
			return &t.Border.Width
		case "style":
			return &t.Border.Style
		case "color":
			return &t.Border.Color
		}
	case "motion":
		if t.Motion == nil && !create {
			return nil
		}
		if t.Motion == nil {
			t.Motion = &MotionTokens{}
		}
		switch name {
		case "transition":
			return &t.Motion.Transition
		case "duration":
			return &t.Motion.Duration
		case "easing":
			return &t.Motion.Easing
		}
	case "layout":
		if t.Layout == nil && !create {
			return nil
		}
		if t.Layout == nil {
			t.Layout = &LayoutTokens{}
		}
		switch name {
		case "minWidth":
			return &t.Layout.MinWidth
		case "maxWidth":
			return &t.Layout.MaxWidth
		}
	}
	return nil
}

// IsField reports whether path names a component token field.
func IsField(path string) bool {
	return slices.Contains(fieldPaths, path)
}

// FieldPaths returns every settable field path, e.g. "color.bg".
func FieldPaths() []string {
	return slices.Clone(fieldPaths)
}

// Each calls fn for every present field in a fixed order.
func (t Tokens) Each(fn func(path string, v Value)) {
	for _, path := range fieldPaths {
		if v, ok := t.Get(path); ok {
			fn(path, v)
		}
	}
}

// Get returns the field at path, if present.
func (t Tokens) Get(path string) (Value, bool) {
	slot := t.slot(path, false)
	if slot == nil || *slot == nil {
		return "", false
	}
	return **slot, true
}

// Has reports whether the field at path is present.
func (t Tokens) Has(path string) bool {
	_, ok := t.Get(path)
	return ok
}

// Set returns a copy of t with the field at path set to v.
// A nil v removes the field.
func (t Tokens) Set(path string, v *Value) (Tokens, error) {
	if !IsField(path) {
		return t, fmt.Errorf("unknown token field %q (valid: %s)", path, strings.Join(fieldPaths, ", "))
	}
	out := t.Clone()
	if slot := out.slot(path, v != nil); slot != nil {
		*slot = copyValue(v)
	}
	return out, nil
}

// Map returns a copy of t with fn applied to every present field.
func (t Tokens) Map(fn func(path string, v Value) Value) Tokens {
	out := Tokens{}
	t.Each(func(path string, v Value) {
		mapped := fn(path, v)
		out, _ = out.Set(path, &mapped)
	})
	return out
}

// IsEmpty reports whether no field is present.
func (t Tokens) IsEmpty() bool {
	empty := true
	t.Each(func(string, Value) { empty = false })
	return empty
}

// Clone returns a deep copy of t.
func (t Tokens) Clone() Tokens {
	out := Tokens{
		Radius: copyValue(t.Radius),
		Shadow: copyValue(t.Shadow),
	}
	if t.Color != nil {
		out.Color = &ColorTokens{FG: copyValue(t.Color.FG), BG: copyValue(t.Color.BG), Border: copyValue(t.Color.Border)}
	}
	if t.Typography != nil {
		out.Typography = &TypographyTokens{
			Size:          copyValue(t.Typography.Size),
			Weight:        copyValue(t.Typography.Weight),
			LineHeight:    copyValue(t.Typography.LineHeight),
			LetterSpacing: copyValue(t.Typography.LetterSpacing),
			FontFamily:    copyValue(t.Typography.FontFamily),
		}
	}
	if t.Spacing != nil {
		out.Spacing = &SpacingTokens{PaddingX: copyValue(t.Spacing.PaddingX), PaddingY: copyValue(t.Spacing.PaddingY), Gap: copyValue(t.Spacing.Gap)}
	}
	if t.Border != nil {
		out.Border = &BorderTokens{Width: copyValue(t.Border.Width), Style: copyValue(t.Border.Style), Color: copyValue(t.Border.Color)}
	}
	if t.Motion != nil {
		out.Motion = &MotionTokens{Transition: copyValue(t.Motion.Transition), Duration: copyValue(t.Motion.Duration), Easing: copyValue(t.Motion.Easing)}
	}
	if t.Layout != nil {
		out.Layout = &LayoutTokens{MinWidth: copyValue(t.Layout.MinWidth), MaxWidth: copyValue(t.Layout.MaxWidth)}
	}
	return out
}

func copyValue(v *Value) *Value {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
