/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token tree.
//
// A tree is made of two node kinds: a [Literal] holds a CSS-legal string or a
// number, and a [Branch] maps keys to child nodes. A literal whose string is a
// dotted path (e.g. "color.text.primary") is a token reference.
package token

import (
	"encoding/json"
	"math"
	"strconv"
)

// Node is either a Literal or a Branch.
type Node interface {
	node()
}

// Literal is a leaf value in the token tree.
type Literal struct {
	str   string
	num   float64
	isNum bool
}

// String creates a string literal.
func String(s string) Literal {
	return Literal{str: s}
}

// Number creates a numeric literal.
func Number(f float64) Literal {
	return Literal{num: f, isNum: true}
}

func (Literal) node() {}

// IsNumber reports whether the literal holds a number.
func (l Literal) IsNumber() bool {
	return l.isNum
}

// Float returns the numeric value and true for numeric literals.
func (l Literal) Float() (float64, bool) {
	return l.num, l.isNum
}

// String returns the literal in string form. Numbers use the shortest
// representation that round-trips, so 16 becomes "16" and 1.5 becomes "1.5".
func (l Literal) String() string {
	if l.isNum {
		return strconv.FormatFloat(l.num, 'f', -1, 64)
	}
	return l.str
}

// IsReference reports whether the literal is a token reference.
func (l Literal) IsReference() bool {
	return !l.isNum && IsReference(l.str)
}

// MarshalJSON encodes numbers as JSON numbers and everything else as strings.
// NaN and infinities have no JSON number form and are written as strings.
func (l Literal) MarshalJSON() ([]byte, error) {
	if l.isNum && !math.IsNaN(l.num) && !math.IsInf(l.num, 0) {
		return []byte(l.String()), nil
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON accepts a JSON string or number.
func (l *Literal) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case float64:
		*l = Number(x)
	case string:
		*l = String(x)
	default:
		*l = String(string(data))
	}
	return nil
}

// Branch maps keys to child nodes.
// Branches are treated as immutable once built; use With to derive a
// modified copy.
type Branch map[string]Node

func (Branch) node() {}

// MarshalJSON encodes the branch as a JSON object with sorted keys.
func (b Branch) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]Node(b))
}

// UnmarshalJSON decodes a JSON object into a branch.
func (b *Branch) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
