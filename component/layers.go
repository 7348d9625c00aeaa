/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package component

import (
	"fmt"
	"maps"
	"slices"
)

// Layers holds the token layers of one component.
type Layers struct {
	// BaseTokens are always applied.
	BaseTokens Tokens `json:"baseTokens"`

	// States maps a state name (hover, disabled, loading) to a partial override.
	States map[string]Tokens `json:"states,omitempty"`

	// Variants maps a variant name (sm, ghost) to a partial override.
	Variants map[string]Tokens `json:"variants,omitempty"`

	// Slots maps an anatomy part (icon, label) to its own tokens.
	Slots map[string]Tokens `json:"slots,omitempty"`
}

// LayerKind identifies which layer of a component an edit targets.
type LayerKind string

const (
	LayerBase    LayerKind = "base"
	LayerState   LayerKind = "state"
	LayerVariant LayerKind = "variant"
	LayerSlot    LayerKind = "slot"
)

// ParseLayerKind converts a string to a LayerKind.
func ParseLayerKind(s string) (LayerKind, error) {
	switch LayerKind(s) {
	case LayerBase, "":
		return LayerBase, nil
	case LayerState, LayerVariant, LayerSlot:
		return LayerKind(s), nil
	default:
		return "", fmt.Errorf("unknown layer %q (valid: base, state, variant, slot)", s)
	}
}

// LayerRef addresses one layer; Name is ignored for LayerBase.
type LayerRef struct {
	Kind LayerKind
	Name string
}

// Effective merges base, state and variant layers in canonical order.
// Empty or unknown state and variant names contribute nothing.
func (l Layers) Effective(state, variant string) Tokens {
	return Merge(l.BaseTokens, l.States[state], l.Variants[variant])
}

// Layer returns the tokens stored at ref.
func (l Layers) Layer(ref LayerRef) (Tokens, bool) {
	switch ref.Kind {
	case LayerBase, "":
		return l.BaseTokens, true
	case LayerState:
		t, ok := l.States[ref.Name]
		return t, ok
	case LayerVariant:
		t, ok := l.Variants[ref.Name]
		return t, ok
	case LayerSlot:
		t, ok := l.Slots[ref.Name]
		return t, ok
	}
	return Tokens{}, false
}

// WithLayer returns a copy of l with the layer at ref replaced by tokens.
func (l Layers) WithLayer(ref LayerRef, tokens Tokens) Layers {
	out := l.Clone()
	switch ref.Kind {
	case LayerState:
		out.States = withEntry(out.States, ref.Name, tokens)
	case LayerVariant:
		out.Variants = withEntry(out.Variants, ref.Name, tokens)
	case LayerSlot:
		out.Slots = withEntry(out.Slots, ref.Name, tokens)
	default:
		out.BaseTokens = tokens.Clone()
	}
	return out
}

func withEntry(m map[string]Tokens, name string, tokens Tokens) map[string]Tokens {
	if m == nil {
		m = make(map[string]Tokens)
	}
	m[name] = tokens.Clone()
	return m
}

// Clone returns a deep copy of l.
func (l Layers) Clone() Layers {
	return Layers{
		BaseTokens: l.BaseTokens.Clone(),
		States:     cloneLayerMap(l.States),
		Variants:   cloneLayerMap(l.Variants),
		Slots:      cloneLayerMap(l.Slots),
	}
}

// Map returns a copy of l with fn applied to every field of every layer.
func (l Layers) Map(fn func(path string, v Value) Value) Layers {
	out := Layers{BaseTokens: l.BaseTokens.Map(fn)}
	out.States = mapLayerMap(l.States, fn)
	out.Variants = mapLayerMap(l.Variants, fn)
	out.Slots = mapLayerMap(l.Slots, fn)
	return out
}

// StateNames returns the defined state names in lexical order.
func (l Layers) StateNames() []string {
	return slices.Sorted(maps.Keys(l.States))
}

// VariantNames returns the defined variant names in lexical order.
func (l Layers) VariantNames() []string {
	return slices.Sorted(maps.Keys(l.Variants))
}

// SlotNames returns the defined slot names in lexical order.
func (l Layers) SlotNames() []string {
	return slices.Sorted(maps.Keys(l.Slots))
}

func cloneLayerMap(m map[string]Tokens) map[string]Tokens {
	if m == nil {
		return nil
	}
	out := make(map[string]Tokens, len(m))
	for k, v := range m {
		out[k] = v.Clone()
	}
	return out
}

func mapLayerMap(m map[string]Tokens, fn func(path string, v Value) Value) map[string]Tokens {
	if m == nil {
		return nil
	}
	out := make(map[string]Tokens, len(m))
	for k, v := range m {
		out[k] = v.Map(fn)
	}
	return out
}
