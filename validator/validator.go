/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator audits a design system snapshot: reference integrity,
// component contracts and color contrast. Findings are reports only;
// nothing here blocks an edit or a merge.
package validator

import (
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/internal/contrast"
	"bennypowers.dev/tessera/resolver"
	"bennypowers.dev/tessera/snapshot"
	"bennypowers.dev/tessera/style"
	"bennypowers.dev/tessera/token"
)

// Severity ranks a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationError is one audit finding.
type ValidationError struct {
	// Path locates the finding, e.g. "globals.color.text.link" or
	// "components.button.state:hover.color.bg".
	Path string `json:"path"`
	// Message describes what's wrong.
	Message string `json:"message"`
	// Suggestion provides an actionable fix.
	Suggestion string `json:"suggestion,omitempty"`
	// Severity is error or warning.
	Severity Severity `json:"severity"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Options tunes the audit.
type Options struct {
	// MinContrast is the lowest acceptable fg/bg ratio. Zero uses WCAG AA.
	MinContrast float64
	// SkipContrast disables the contrast check.
	SkipContrast bool
}

// Audit runs every check against snap. Contracts come from reg.
func Audit(snap *snapshot.Snapshot, reg component.Registry, opts Options) []ValidationError {
	var out []ValidationError
	out = append(out, ValidateGlobals(snap.Globals)...)
	for _, id := range componentIDs(snap) {
		layers := snap.Components[id]
		out = append(out, ValidateReferences(snap.Globals, id, layers)...)
		if def, ok := reg.Lookup(id); ok {
			out = append(out, ValidateContract(id, def.Contract, layers)...)
		}
		if !opts.SkipContrast {
			out = append(out, ValidateContrast(snap.Globals, id, layers, opts.MinContrast)...)
		}
	}
	return out
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []ValidationError) bool {
	return slices.ContainsFunc(findings, func(e ValidationError) bool {
		return e.Severity == SeverityError
	})
}

// ValidateGlobals reports reference cycles and dangling references in the
// global tree.
func ValidateGlobals(tree token.Branch) []ValidationError {
	var out []ValidationError

	graph := resolver.BuildDependencyGraph(tree)
	inCycle := map[string]bool{}
	if cycle := graph.FindCycle(); cycle != nil {
		for _, p := range cycle {
			inCycle[p] = true
		}
		out = append(out, ValidationError{
			Path:       "globals." + cycle[0],
			Message:    "circular reference: " + strings.Join(cycle, " -> "),
			Suggestion: "replace one reference in the cycle with a literal value",
			Severity:   SeverityError,
		})
	}

	unresolved := resolver.Unresolved(tree)
	paths := make([]string, 0, len(unresolved))
	for p := range unresolved {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	for _, p := range paths {
		if inCycle[p] {
			continue
		}
		ref := unresolved[p]
		hop, cyclic := danglingHop(tree, ref)
		if cyclic {
			out = append(out, ValidationError{
				Path:     "globals." + p,
				Message:  fmt.Sprintf("reference %s leads into a circular reference", ref),
				Severity: SeverityError,
			})
			continue
		}
		out = append(out, ValidationError{
			Path:       "globals." + p,
			Message:    fmt.Sprintf("reference %s does not resolve", hop),
			Suggestion: suggest(tree, hop),
			Severity:   SeverityError,
		})
	}
	return out
}

// ValidateReferences reports component fields whose reference resolves to nothing.
func ValidateReferences(tree token.Branch, id string, layers component.Layers) []ValidationError {
	var out []ValidationError
	eachLayer(layers, func(layer string, t component.Tokens) {
		t.Each(func(field string, v component.Value) {
			ref := string(v)
			if !token.IsReference(ref) {
				return
			}
			if _, ok := resolver.Lookup(tree, ref); ok {
				return
			}
			out = append(out, ValidationError{
				Path:       componentPath(id, layer, field),
				Message:    fmt.Sprintf("reference %s does not resolve; it will render as a literal", ref),
				Suggestion: suggest(tree, ref),
				Severity:   SeverityWarning,
			})
		})
	})
	return out
}

// ValidateContract reports contract violations. They are warnings: merges
// never enforce contracts.
func ValidateContract(id string, contract component.Contract, layers component.Layers) []ValidationError {
	violations := contract.Violations(layers)
	out := make([]ValidationError, 0, len(violations))
	for _, v := range violations {
		out = append(out, ValidationError{
			Path:     componentPath(id, v.Layer, v.Field),
			Message:  v.Message,
			Severity: SeverityWarning,
		})
	}
	return out
}

// ValidateContrast reports state and variant combinations whose text color
// does not meet min against their background. Pairs that cannot be
// measured, such as transparent backgrounds, are skipped.
func ValidateContrast(tree token.Branch, id string, layers component.Layers, min float64) []ValidationError {
	if min == 0 {
		min = contrast.AA
	}
	var out []ValidationError
	check := func(layer, state, variant string) {
		s := style.ForComponent(tree, layers, state, variant)
		if s.Color == "" || s.BackgroundColor == "" {
			return
		}
		ratio, err := contrast.Ratio(s.Color, s.BackgroundColor)
		if err != nil {
			// gradients, keywords and translucent backgrounds
			return
		}
		if ratio < min {
			out = append(out, ValidationError{
				Path:       componentPath(id, layer, "color.fg"),
				Message:    fmt.Sprintf("contrast %.2f:1 between %s and %s is below %.1f:1", ratio, s.Color, s.BackgroundColor, min),
				Suggestion: fmt.Sprintf("current level: %s", contrast.Level(ratio)),
				Severity:   SeverityWarning,
			})
		}
	}

	check("base", "", "")
	for _, name := range layers.StateNames() {
		check("state:"+name, name, "")
	}
	for _, name := range layers.VariantNames() {
		check("variant:"+name, "", name)
	}
	return out
}

func eachLayer(l component.Layers, fn func(layer string, t component.Tokens)) {
	fn("base", l.BaseTokens)
	for _, name := range l.StateNames() {
		fn("state:"+name, l.States[name])
	}
	for _, name := range l.VariantNames() {
		fn("variant:"+name, l.Variants[name])
	}
	for _, name := range l.SlotNames() {
		fn("slot:"+name, l.Slots[name])
	}
}

func componentPath(id, layer, field string) string {
	p := "components." + id + "." + layer
	if field != "" {
		p += "." + field
	}
	return p
}

func componentIDs(snap *snapshot.Snapshot) []string {
	ids := make([]string, 0, len(snap.Components))
	for id := range snap.Components {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// danglingHop returns the first reference in ref's chain that names no
// leaf, or reports that the chain loops.
func danglingHop(tree token.Branch, ref string) (string, bool) {
	seen := map[string]bool{}
	for !seen[ref] {
		seen[ref] = true
		lit, ok := resolver.Lookup(tree, ref)
		if !ok || !lit.IsReference() {
			return ref, false
		}
		ref = lit.String()
	}
	return ref, true
}

// suggest lists existing leaves next to the deepest existing branch of ref.
func suggest(tree token.Branch, ref string) string {
	segments := token.SplitPath(ref)
	for i := len(segments) - 1; i > 0; i-- {
		node, ok := tree.Lookup(segments[:i])
		if !ok {
			continue
		}
		branch, ok := node.(token.Branch)
		if !ok {
			return ""
		}
		prefix := token.JoinPath(segments[:i])
		var options []string
		for _, k := range branch.Keys() {
			options = append(options, prefix+"."+k)
		}
		if len(options) > 5 {
			options = append(options[:5], "...")
		}
		return "available: " + strings.Join(options, ", ")
	}
	return ""
}
