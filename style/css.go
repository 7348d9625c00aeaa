/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package style

import (
	"fmt"
	"strings"
)

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

func (d Declaration) String() string {
	return fmt.Sprintf("%s: %s;", d.Property, d.Value)
}

// Declarations returns the emitted properties in a fixed order.
func (s FlatStyle) Declarations() []Declaration {
	var weight string
	if s.FontWeight != nil {
		weight = s.FontWeight.String()
	}
	all := []Declaration{
		{"color", s.Color},
		{"background-color", s.BackgroundColor},
		{"border-width", s.BorderWidth},
		{"border-style", s.BorderStyle},
		{"border-color", s.BorderColor},
		{"border-radius", s.BorderRadius},
		{"box-shadow", s.BoxShadow},
		{"padding", s.Padding},
		{"gap", s.Gap},
		{"font-family", s.FontFamily},
		{"font-size", s.FontSize},
		{"font-weight", weight},
		{"line-height", s.LineHeight},
		{"letter-spacing", s.LetterSpacing},
		{"transition", s.Transition},
		{"min-width", s.MinWidth},
		{"max-width", s.MaxWidth},
	}
	out := all[:0]
	for _, d := range all {
		if d.Value != "" {
			out = append(out, d)
		}
	}
	return out
}

// CSS returns the inline declaration text, e.g. "color: #fff; padding: 8px 16px;".
func (s FlatStyle) CSS() string {
	decls := s.Declarations()
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}
