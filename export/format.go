/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownFormat is returned for an unrecognized format name.
var ErrUnknownFormat = errors.New("unknown format")

// Format represents an export artifact.
type Format string

const (
	// FormatCSS outputs tokens.css: custom properties on :root and one
	// rule block per component layer.
	FormatCSS Format = "css"

	// FormatTokensJSON outputs the canonical tokens.json with resolved
	// values under "computed".
	FormatTokensJSON Format = "tokens-json"

	// FormatTokensJSONLegacy outputs the simple {globals, components} tokens.json.
	FormatTokensJSONLegacy Format = "tokens-json-legacy"

	// FormatComponentsJSON outputs components.json.
	FormatComponentsJSON Format = "components-json"

	// FormatFigma outputs figma-variables.json.
	FormatFigma Format = "figma"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatCSS),
		string(FormatTokensJSON),
		string(FormatTokensJSONLegacy),
		string(FormatComponentsJSON),
		string(FormatFigma),
	}
}

// DefaultFormats are written when no format is requested.
// The legacy shape is opt-in.
func DefaultFormats() []Format {
	return []Format{FormatCSS, FormatTokensJSON, FormatComponentsJSON, FormatFigma}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "css", "tokens.css":
		return FormatCSS, nil
	case "tokens-json", "tokens.json", "json", "":
		return FormatTokensJSON, nil
	case "tokens-json-legacy", "legacy":
		return FormatTokensJSONLegacy, nil
	case "components-json", "components.json", "components":
		return FormatComponentsJSON, nil
	case "figma", "figma-variables", "figma-variables.json":
		return FormatFigma, nil
	default:
		return "", fmt.Errorf("%w: %s (valid: %s)", ErrUnknownFormat, s, strings.Join(ValidFormats(), ", "))
	}
}

// Filename returns the artifact file name for a format.
func (f Format) Filename() string {
	switch f {
	case FormatCSS:
		return "tokens.css"
	case FormatTokensJSONLegacy:
		return "tokens.legacy.json"
	case FormatComponentsJSON:
		return "components.json"
	case FormatFigma:
		return "figma-variables.json"
	default:
		return "tokens.json"
	}
}

// ParseFormats converts names to Formats, dropping duplicates. An empty
// list yields DefaultFormats.
func ParseFormats(names []string) ([]Format, error) {
	if len(names) == 0 {
		return DefaultFormats(), nil
	}
	out := make([]Format, 0, len(names))
	for _, name := range names {
		f, err := ParseFormat(name)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out, nil
}
