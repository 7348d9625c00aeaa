/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css renders tokens.css: global custom properties plus one rule
// block per component layer.
package css

import (
	"bytes"
	"fmt"
	"strings"

	"bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/export/formatter"
	"bennypowers.dev/tessera/internal/logger"
	"bennypowers.dev/tessera/resolver"
	"bennypowers.dev/tessera/token"
)

// Formatter outputs CSS custom properties.
type Formatter struct{}

// New creates a new CSS formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format renders the :root block and the component blocks.
func (f *Formatter) Format(doc *formatter.Document, opts formatter.Options) ([]byte, error) {
	var buf bytes.Buffer

	globals := formatter.FilterGlobals(doc.Globals, opts)
	buf.WriteString(":root {\n")
	_ = globals.Walk(func(path []string, lit token.Literal) error {
		// Global values are written as authored; references are not resolved.
		writeDecl(&buf, token.CSSVariableName(path, opts.Prefix), lit.String())
		return nil
	})
	buf.WriteString("}\n")

	w := blockWriter{buf: &buf, emitted: globals, globals: doc.Globals, prefix: opts.Prefix}
	for _, id := range doc.ComponentIDs() {
		layers := doc.Components[id]
		selector := ".component-" + id

		w.write(selector, id, layers.BaseTokens)
		for _, name := range layers.StateNames() {
			w.write(fmt.Sprintf(`%s[data-state="%s"]`, selector, name), id, layers.States[name])
		}
		for _, name := range layers.VariantNames() {
			w.write(fmt.Sprintf(`%s[data-variant="%s"]`, selector, name), id, layers.Variants[name])
		}
		for _, name := range layers.SlotNames() {
			w.write(fmt.Sprintf(`%s [data-slot="%s"]`, selector, name), id+"-"+name, layers.Slots[name])
		}
	}

	return buf.Bytes(), nil
}

// PropertyName returns the custom property name of a component field,
// e.g. "--button-spacing-padding-x".
func PropertyName(scope, field, prefix string) string {
	name := formatter.ToKebabCase(scope + "." + field)
	return "--" + formatter.ApplyPrefix(name, strings.ReplaceAll(prefix, ".", "-"), "-")
}

// Value renders a component field value. A reference to a global written
// to :root (emitted) becomes a var() indirection to its property. A
// reference to any other global is resolved against globals, and anything
// else is written literally.
func Value(emitted, globals token.Branch, v component.Value, prefix string) string {
	s := string(v)
	if !token.IsReference(s) {
		return s
	}
	if _, ok := resolver.Lookup(emitted, s); ok {
		return token.VarReference(s, prefix)
	}
	return resolver.Resolve(globals, s)
}

type blockWriter struct {
	buf     *bytes.Buffer
	emitted token.Branch
	globals token.Branch
	prefix  string
}

func (w blockWriter) write(selector, scope string, t component.Tokens) {
	if t.IsEmpty() {
		return
	}
	fmt.Fprintf(w.buf, "\n%s {\n", selector)
	t.Each(func(field string, v component.Value) {
		writeDecl(w.buf, PropertyName(scope, field, w.prefix), Value(w.emitted, w.globals, v, w.prefix))
	})
	w.buf.WriteString("}\n")
}

func writeDecl(buf *bytes.Buffer, name, value string) {
	if !safeValue(value) {
		logger.Debug("css: skipping %s: value cannot be written as a declaration", name)
		return
	}
	fmt.Fprintf(buf, "  %s: %s;\n", name, value)
}

// safeValue reports whether value can sit inside a declaration without
// ending it or the enclosing block.
func safeValue(value string) bool {
	return value != "" && !strings.ContainsAny(value, ";{}\n\r")
}
