/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tokensjson renders tokens.json.
//
// The canonical shape carries the authored global tree next to a computed
// tree in which every reference is resolved:
//
//	{"name", "description", "version", "updatedAt", "globals", "computed"}
//
// The legacy shape, {"globals", "components"}, is kept for older consumers
// and is only produced on request.
package tokensjson

import (
	"encoding/json"
	"time"

	"bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/export/formatter"
	"bennypowers.dev/tessera/resolver"
	"bennypowers.dev/tessera/token"
)

// ComputedCategories are the top-level categories resolved into "computed".
var ComputedCategories = []string{
	"color", "font", "textRole", "lineHeight", "weight", "space", "radius", "shadow", "motion",
}

// File is the canonical tokens.json document.
type File struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Version     string       `json:"version"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Globals     token.Branch `json:"globals"`
	Computed    token.Branch `json:"computed"`
}

// LegacyFile is the simple {globals, components} document.
type LegacyFile struct {
	Globals    token.Branch                `json:"globals"`
	Components map[string]component.Layers `json:"components"`
}

// Formatter outputs the canonical shape.
type Formatter struct{}

// New creates a new tokens.json formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format renders the canonical tokens.json.
func (f *Formatter) Format(doc *formatter.Document, opts formatter.Options) ([]byte, error) {
	globals := formatter.FilterGlobals(doc.Globals, opts)
	if globals == nil {
		globals = token.Branch{}
	}

	// Resolve against the full tree so filtered-out targets still resolve.
	resolved := resolver.ResolveSubset(doc.Globals, globals)
	computed := token.Branch{}
	for _, category := range ComputedCategories {
		if n, ok := resolved[category]; ok {
			computed[category] = n
		}
	}

	return marshal(File{
		Name:        doc.Name,
		Description: doc.Description,
		Version:     doc.Version,
		UpdatedAt:   doc.UpdatedAt.UTC(),
		Globals:     globals,
		Computed:    computed,
	})
}

// LegacyFormatter outputs the {globals, components} shape.
type LegacyFormatter struct{}

// NewLegacy creates a legacy tokens.json formatter.
func NewLegacy() *LegacyFormatter {
	return &LegacyFormatter{}
}

// Format renders the legacy tokens.json.
func (f *LegacyFormatter) Format(doc *formatter.Document, opts formatter.Options) ([]byte, error) {
	globals := formatter.FilterGlobals(doc.Globals, opts)
	if globals == nil {
		globals = token.Branch{}
	}
	components := doc.Components
	if components == nil {
		components = map[string]component.Layers{}
	}
	return marshal(LegacyFile{Globals: globals, Components: components})
}

// Decode parses a canonical tokens.json document.
func Decode(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
