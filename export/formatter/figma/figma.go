/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package figma renders figma-variables.json, a variable collection graph
// for import into Figma.
package figma

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/export/formatter"
	"bennypowers.dev/tessera/export/formatter/css"
	"bennypowers.dev/tessera/internal/logger"
	"bennypowers.dev/tessera/resolver"
	"bennypowers.dev/tessera/token"
)

// FileVersion is the version of the figma-variables.json layout.
const FileVersion = "1.0"

// DefaultModeID is the only mode emitted.
const DefaultModeID = "mode:default"

// VariableType is a Figma variable type.
type VariableType string

const (
	TypeColor  VariableType = "COLOR"
	TypeFloat  VariableType = "FLOAT"
	TypeString VariableType = "STRING"
)

// File is the figma-variables.json document.
type File struct {
	Version       string       `json:"version"`
	ExportedAt    time.Time    `json:"exportedAt"`
	SourceSystem  string       `json:"sourceSystem"`
	SourceVersion string       `json:"sourceVersion"`
	Collections   []Collection `json:"collections"`
}

// Collection is a named group of variables.
type Collection struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Modes     []Mode     `json:"modes"`
	Variables []Variable `json:"variables"`
}

// Mode is a collection mode, such as light or dark.
type Mode struct {
	ModeID string `json:"modeId"`
	Name   string `json:"name"`
}

// Variable is one exported token.
type Variable struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Type         VariableType      `json:"type"`
	ValuesByMode map[string]any    `json:"valuesByMode"`
	Scopes       []string          `json:"scopes"`
	CodeSyntax   map[string]string `json:"codeSyntax"`
}

// RGBA is a color with channels in the 0..1 range.
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Alias points a variable's value at another variable.
type Alias struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// NewAlias returns a VARIABLE_ALIAS value for the variable id.
func NewAlias(id string) Alias {
	return Alias{Type: "VARIABLE_ALIAS", ID: id}
}

// Formatter outputs figma-variables.json.
type Formatter struct{}

// New creates a new Figma variables formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format renders the primitives collection from the global tree and the
// components collection from every component layer. References between
// tokens become alias records.
func (f *Formatter) Format(doc *formatter.Document, opts formatter.Options) ([]byte, error) {
	globals := formatter.FilterGlobals(doc.Globals, opts)

	// index maps dotted global paths to their variables.
	index := map[string]*Variable{}
	var primitives []*Variable
	var refs []pending

	_ = globals.Walk(func(path []string, lit token.Literal) error {
		dotted := token.JoinPath(path)
		resolved, ok := resolver.ResolveLiteral(doc.Globals, dotted)
		if !ok {
			resolved = lit
		}
		typ, value := Convert(Classify(dotted), resolved)
		variable := &Variable{
			ID:           VariableID("primitives", path),
			Name:         strings.Join(path, "/"),
			Type:         typ,
			ValuesByMode: map[string]any{DefaultModeID: value},
			Scopes:       Scopes(dotted, typ),
			CodeSyntax:   map[string]string{"WEB": "var(" + token.CSSVariableName(path, opts.Prefix) + ")"},
		}
		index[dotted] = variable
		primitives = append(primitives, variable)
		if lit.IsReference() {
			refs = append(refs, pending{variable, lit.String()})
		}
		return nil
	})

	var components []*Variable
	for _, id := range doc.ComponentIDs() {
		layers := doc.Components[id]
		add := func(layer string, t component.Tokens) {
			t.Each(func(field string, v component.Value) {
				path := append([]string{id, layer}, strings.Split(field, ".")...)
				typ, value := Convert(Classify(field), token.String(resolver.Resolve(doc.Globals, string(v))))
				variable := &Variable{
					ID:           VariableID("components", path),
					Name:         strings.Join(path, "/"),
					Type:         typ,
					ValuesByMode: map[string]any{DefaultModeID: value},
					Scopes:       Scopes(field, typ),
					CodeSyntax:   map[string]string{"WEB": "var(" + css.PropertyName(id, field, opts.Prefix) + ")"},
				}
				components = append(components, variable)
				if token.IsReference(string(v)) {
					refs = append(refs, pending{variable, string(v)})
				}
			})
		}
		add("base", layers.BaseTokens)
		for _, name := range layers.StateNames() {
			add("state-"+name, layers.States[name])
		}
		for _, name := range layers.VariantNames() {
			add("variant-"+name, layers.Variants[name])
		}
	}

	// Aliases take the type of the variable they point at. References to
	// tokens outside the export keep their resolved literal.
	for _, p := range refs {
		target, ok := index[p.target]
		if !ok {
			logger.Debug("figma: %s references %s, which is not exported; writing its value", p.variable.Name, p.target)
			continue
		}
		p.variable.Type = target.Type
		p.variable.Scopes = target.Scopes
		p.variable.ValuesByMode = map[string]any{DefaultModeID: NewAlias(target.ID)}
	}

	system := doc.Name
	if system == "" {
		system = "tessera"
	}
	file := File{
		Version:       FileVersion,
		ExportedAt:    opts.Timestamp(),
		SourceSystem:  system,
		SourceVersion: doc.Version,
		Collections: []Collection{
			collection("primitives", "Primitives", primitives),
			collection("components", "Components", components),
		},
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

type pending struct {
	variable *Variable
	target   string
}

func collection(id, name string, vars []*Variable) Collection {
	c := Collection{
		ID:        "VariableCollectionId:" + id,
		Name:      name,
		Modes:     []Mode{{ModeID: DefaultModeID, Name: "Default"}},
		Variables: make([]Variable, len(vars)),
	}
	for i, v := range vars {
		c.Variables[i] = *v
	}
	return c
}

// VariableID returns a stable variable id within a collection.
func VariableID(collection string, path []string) string {
	return "VariableID:" + collection + "/" + strings.Join(path, "/")
}

// Classify picks the variable type for a token path by its prefix:
// color paths are COLOR; space, spacing, radius, weight and any path with a
// "size" segment are FLOAT; everything else is STRING.
func Classify(path string) VariableType {
	segments := strings.Split(path, ".")
	switch segments[0] {
	case "color":
		return TypeColor
	case "space", "spacing", "radius", "weight":
		return TypeFloat
	}
	for _, s := range segments[1:] {
		switch {
		case s == "color":
			return TypeColor
		case s == "weight", strings.Contains(strings.ToLower(s), "size"):
			return TypeFloat
		}
	}
	if strings.Contains(strings.ToLower(segments[0]), "size") {
		return TypeFloat
	}
	return TypeString
}

var leadingNumber = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)

// Convert turns a resolved literal into a value of the requested type.
// Values that cannot be expressed in that type fall back to STRING.
func Convert(typ VariableType, lit token.Literal) (VariableType, any) {
	switch typ {
	case TypeColor:
		if !lit.IsNumber() {
			if c, err := csscolorparser.Parse(lit.String()); err == nil {
				return TypeColor, RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
			}
		}
	case TypeFloat:
		if f, ok := lit.Float(); ok {
			return TypeFloat, f
		}
		if m := leadingNumber.FindString(strings.TrimSpace(lit.String())); m != "" {
			if f, err := strconv.ParseFloat(m, 64); err == nil {
				return TypeFloat, f
			}
		}
	}
	return TypeString, lit.String()
}

// Scopes returns the Figma scopes a variable applies to.
func Scopes(path string, typ VariableType) []string {
	switch {
	case typ == TypeColor:
		return []string{"ALL_FILLS", "STROKE_COLOR", "EFFECT_COLOR"}
	case typ == TypeString:
		return []string{"ALL_SCOPES"}
	case strings.HasPrefix(path, "radius"):
		return []string{"CORNER_RADIUS"}
	case strings.HasPrefix(path, "space."), strings.HasPrefix(path, "spacing."):
		return []string{"GAP", "WIDTH_HEIGHT"}
	case strings.Contains(path, "weight"):
		return []string{"FONT_WEIGHT"}
	case strings.Contains(strings.ToLower(path), "size"):
		return []string{"FONT_SIZE"}
	}
	return []string{"ALL_SCOPES"}
}
