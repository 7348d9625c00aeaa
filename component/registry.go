/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package component

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Definition is the static description of one component.
type Definition struct {
	// ID is the component identifier, e.g. "icon-button".
	ID string `json:"id"`

	// Label is the display name. Defaults to the title-cased ID.
	Label string `json:"label"`

	// Contract describes the component's styling surface.
	Contract Contract `json:"contract"`

	// Defaults are the factory token layers, used to seed and reset.
	Defaults Layers `json:"-"`
}

// DisplayLabel returns Label, or a title-cased form of ID.
func (d Definition) DisplayLabel() string {
	if d.Label != "" {
		return d.Label
	}
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(d.ID, "-", " "))
}

// Registry indexes component definitions by ID.
type Registry map[string]Definition

// NewRegistry builds a registry from definitions.
func NewRegistry(defs ...Definition) Registry {
	r := make(Registry, len(defs))
	for _, d := range defs {
		r[d.ID] = d
	}
	return r
}

// IDs returns all component IDs in lexical order.
func (r Registry) IDs() []string {
	return slices.Sorted(maps.Keys(r))
}

// Lookup returns the definition for id.
func (r Registry) Lookup(id string) (Definition, bool) {
	d, ok := r[id]
	return d, ok
}

// DefaultLayers returns a fresh copy of every component's factory layers.
func (r Registry) DefaultLayers() map[string]Layers {
	out := make(map[string]Layers, len(r))
	for id, d := range r {
		out[id] = d.Defaults.Clone()
	}
	return out
}
