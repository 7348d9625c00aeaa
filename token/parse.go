/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrNotATree indicates the decoded document root is not an object.
var ErrNotATree = errors.New("token tree root must be an object")

// Parse decodes a token tree from JSON, JSON with comments, or YAML.
func Parse(data []byte) (Branch, error) {
	var raw any
	if isLikelyJSON(data) {
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	node := FromAny(raw)
	branch, ok := node.(Branch)
	if !ok {
		return nil, ErrNotATree
	}
	return branch, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{', '[':
			return true
		case '/':
			// JSONC comment before the root object
			return true
		default:
			return false
		}
	}
	return false
}

// FromAny converts a generically decoded value into a Node.
// Booleans become string literals, arrays become branches keyed by index, and
// nulls are dropped. YAML maps with non-string keys are normalized.
func FromAny(v any) Node {
	switch x := v.(type) {
	case map[string]any:
		b := make(Branch, len(x))
		for k, val := range x {
			if n := FromAny(val); n != nil {
				b[k] = n
			}
		}
		return b
	case map[any]any:
		b := make(Branch, len(x))
		for k, val := range x {
			if n := FromAny(val); n != nil {
				b[fmt.Sprintf("%v", k)] = n
			}
		}
		return b
	case []any:
		b := make(Branch, len(x))
		for i, val := range x {
			if n := FromAny(val); n != nil {
				b[strconv.Itoa(i)] = n
			}
		}
		return b
	case string:
		return String(x)
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return Number(f)
		}
		return String(x.String())
	case bool:
		return String(strconv.FormatBool(x))
	case Node:
		return x
	case nil:
		return nil
	default:
		return String(fmt.Sprintf("%v", x))
	}
}

// ToAny converts a node into plain maps, strings and float64s.
func ToAny(n Node) any {
	switch x := n.(type) {
	case Branch:
		out := make(map[string]any, len(x))
		for k, v := range x {
			out[k] = ToAny(v)
		}
		return out
	case Literal:
		if f, ok := x.Float(); ok {
			return f
		}
		return x.String()
	default:
		return nil
	}
}
