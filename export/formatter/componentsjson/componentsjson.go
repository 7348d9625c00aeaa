/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package componentsjson renders components.json: every component's contract
// with its authored and resolved token layers.
package componentsjson

import (
	"encoding/json"

	"bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/export/formatter"
	"bennypowers.dev/tessera/resolver"
	"bennypowers.dev/tessera/token"
)

// File is the components.json document.
type File struct {
	Components map[string]Entry `json:"components"`
}

// Entry describes one component.
type Entry struct {
	Label    string             `json:"label"`
	Contract component.Contract `json:"contract"`
	component.Layers
	Resolved component.Layers `json:"resolved"`
}

// Formatter outputs components.json.
type Formatter struct{}

// New creates a new components.json formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format renders components.json. Include filters do not apply; component
// layers are always exported whole.
func (f *Formatter) Format(doc *formatter.Document, _ formatter.Options) ([]byte, error) {
	file := File{Components: make(map[string]Entry, len(doc.Components))}
	for _, id := range doc.ComponentIDs() {
		layers := doc.Components[id]
		file.Components[id] = Entry{
			Label:    doc.Label(id),
			Contract: doc.Contract(id),
			Layers:   layers,
			Resolved: Resolve(doc.Globals, layers),
		}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Resolve returns a copy of layers with every field resolved against tree.
func Resolve(tree token.Branch, layers component.Layers) component.Layers {
	return layers.Map(func(_ string, v component.Value) component.Value {
		return component.Value(resolver.Resolve(tree, string(v)))
	})
}
