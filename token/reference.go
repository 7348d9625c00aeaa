/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

// referencePattern matches dotted identifier paths like color.text.primary.
// The first segment must start with a letter so that plain numbers ("1.5")
// and durations ("0.2s") are never treated as references.
var referencePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*(\.[A-Za-z0-9_-]+)+$`)

// IsReference returns true if value has the shape of a token reference.
// It does not check that the path exists in any tree.
func IsReference(value string) bool {
	return referencePattern.MatchString(value)
}

// SplitPath splits a dotted path into segments.
func SplitPath(dotted string) []string {
	if dotted == "" {
		return nil
	}
	return strings.Split(dotted, ".")
}

// JoinPath joins segments into a dotted path.
func JoinPath(path []string) string {
	return strings.Join(path, ".")
}

// CSSVariableName returns the CSS custom property name for a path.
// e.g., "--color-primary" or "--my-prefix-color-primary"
func CSSVariableName(path []string, prefix string) string {
	if len(path) == 0 {
		return ""
	}
	name := strings.ReplaceAll(strings.Join(path, "-"), ".", "-")
	if prefix != "" {
		return "--" + strings.ReplaceAll(prefix, ".", "-") + "-" + name
	}
	return "--" + name
}

// VarReference returns a var() indirection for a dotted reference.
func VarReference(ref, prefix string) string {
	return "var(" + CSSVariableName(SplitPath(ref), prefix) + ")"
}
