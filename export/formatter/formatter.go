/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for export formatters.
package formatter

import (
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/token"
)

// Formatter defines the interface for export formatters.
type Formatter interface {
	// Format renders the document to the target artifact.
	Format(doc *Document, opts Options) ([]byte, error)
}

// Document is everything an export pass reads: the global token tree,
// every component's layers, and the component registry for labels and
// contracts. Formatters never modify it.
type Document struct {
	Name        string
	Description string
	Version     string
	UpdatedAt   time.Time

	Globals    token.Branch
	Components map[string]component.Layers
	Registry   component.Registry
}

// ComponentIDs returns the IDs of every component with layers, sorted.
func (d *Document) ComponentIDs() []string {
	ids := make([]string, 0, len(d.Components))
	for id := range d.Components {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Label returns the display label for a component.
func (d *Document) Label(id string) string {
	if def, ok := d.Registry.Lookup(id); ok {
		return def.DisplayLabel()
	}
	return component.Definition{ID: id}.DisplayLabel()
}

// Contract returns the contract for a component, or the zero contract.
func (d *Document) Contract(id string) component.Contract {
	def, _ := d.Registry.Lookup(id)
	return def.Contract
}

// Options configures formatter behavior.
type Options struct {
	// Prefix is added to output variable names.
	Prefix string

	// Include limits global token paths to those matching any of these
	// doublestar patterns, matched against "/"-joined paths
	// (e.g. "color/**", "space/*"). Empty includes everything.
	Include []string

	// Now returns the export timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Timestamp returns the export time in UTC.
func (o Options) Timestamp() time.Time {
	if o.Now == nil {
		return time.Now().UTC()
	}
	return o.Now().UTC()
}

// Included reports whether a global token path passes the include filter.
// Invalid patterns never match.
func (o Options) Included(path []string) bool {
	if len(o.Include) == 0 {
		return true
	}
	name := strings.Join(path, "/")
	for _, pattern := range o.Include {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// ValidateInclude reports the first malformed include pattern.
func ValidateInclude(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return &PatternError{Pattern: p}
		}
	}
	return nil
}

// PatternError reports a malformed include pattern.
type PatternError struct {
	Pattern string
}

func (e *PatternError) Error() string {
	return "invalid include pattern: " + e.Pattern
}

// FilterGlobals returns a copy of the global tree holding only included literals.
func FilterGlobals(tree token.Branch, opts Options) token.Branch {
	if len(opts.Include) == 0 {
		return tree
	}
	out := token.Branch{}
	_ = tree.Walk(func(path []string, lit token.Literal) error {
		if opts.Included(path) {
			out = out.With(path, lit)
		}
		return nil
	})
	return out
}

// ApplyPrefix adds a prefix to a name with the given delimiter.
func ApplyPrefix(name, prefix, delimiter string) string {
	if prefix == "" {
		return name
	}
	return prefix + delimiter + name
}

// ToKebabCase converts a string to kebab-case.
func ToKebabCase(s string) string {
	words := SplitIntoWords(s)
	return strings.ToLower(strings.Join(words, "-"))
}

// SplitIntoWords splits a string on hyphens, underscores, dots, and camelCase boundaries.
func SplitIntoWords(s string) []string {
	var words []string
	var current strings.Builder

	for i, r := range s {
		if r == '-' || r == '_' || r == '.' || r == ' ' {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		} else if unicode.IsUpper(r) && i > 0 {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			current.WriteRune(r)
		} else {
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}
