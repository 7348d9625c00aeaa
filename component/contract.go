/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package component

import (
	"fmt"
	"slices"
	"strings"
)

// Contract describes a component's styling surface.
// The merge engine does not consult it; contracts are reported by the
// validator and carried verbatim into exports.
type Contract struct {
	// Anatomy lists the component's named parts (root, label, icon).
	Anatomy []string `json:"anatomy"`

	// Semantics describes the component's role, e.g. "button".
	Semantics string `json:"semantics,omitempty"`

	// Variants declares the supported variant names.
	Variants []string `json:"variants"`

	// States declares the supported state names.
	States []string `json:"states"`

	// Required lists field paths every base layer must define.
	Required []string `json:"required"`

	// Forbidden lists field paths that states and variants must not override.
	// Field paths may name a whole category ("layout") or one field ("layout.minWidth").
	Forbidden []string `json:"forbidden"`
}

// Violation is a contract mismatch found in a component's layers.
type Violation struct {
	// Layer names the offending layer, e.g. "state:hover" or "base".
	Layer string
	// Field is the token field path.
	Field string
	// Message describes the mismatch.
	Message string
}

// Violations reports forbidden overrides and missing required fields.
func (c Contract) Violations(l Layers) []Violation {
	var out []Violation

	for _, req := range c.Required {
		if !l.BaseTokens.Has(req) {
			out = append(out, Violation{
				Layer:   "base",
				Field:   req,
				Message: fmt.Sprintf("required field %s is not set", req),
			})
		}
	}

	check := func(kind LayerKind, names []string, layers map[string]Tokens) {
		for _, name := range names {
			layers[name].Each(func(path string, _ Value) {
				if c.forbids(path) {
					out = append(out, Violation{
						Layer:   fmt.Sprintf("%s:%s", kind, name),
						Field:   path,
						Message: fmt.Sprintf("%s %q overrides forbidden field %s", kind, name, path),
					})
				}
			})
		}
	}
	check(LayerState, l.StateNames(), l.States)
	check(LayerVariant, l.VariantNames(), l.Variants)

	for _, name := range l.StateNames() {
		if len(c.States) > 0 && !slices.Contains(c.States, name) {
			out = append(out, Violation{Layer: "state:" + name, Message: fmt.Sprintf("state %q is not declared by the contract", name)})
		}
	}
	for _, name := range l.VariantNames() {
		if len(c.Variants) > 0 && !slices.Contains(c.Variants, name) {
			out = append(out, Violation{Layer: "variant:" + name, Message: fmt.Sprintf("variant %q is not declared by the contract", name)})
		}
	}

	return out
}

func (c Contract) forbids(path string) bool {
	for _, f := range c.Forbidden {
		if f == path || strings.HasPrefix(path, f+".") {
			return true
		}
	}
	return false
}
