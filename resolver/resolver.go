/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver provides token reference resolution.
package resolver

import (
	"errors"
	"strings"

	"bennypowers.dev/tessera/token"
)

// ErrCircularReference indicates a circular reference was detected.
var ErrCircularReference = errors.New("circular reference detected")

// Resolve resolves a dotted reference against the tree.
//
// Values without a "." are returned unchanged, as is any reference that does
// not name a leaf of the tree. When the leaf is itself a reference to another
// leaf, the chain is followed; it stops before revisiting a path, so
// resolution always terminates. Resolve never fails.
func Resolve(tree token.Branch, ref string) string {
	resolved, _, ok := follow(tree, ref)
	if !ok {
		return ref
	}
	return resolved.String()
}

// ResolveLiteral is Resolve for callers that need the literal's type: a
// chain ending at a number yields that number. The boolean is false when
// ref names no leaf at all.
func ResolveLiteral(tree token.Branch, ref string) (token.Literal, bool) {
	resolved, _, ok := follow(tree, ref)
	return resolved, ok
}

// Lookup performs a single resolution step without following chains.
func Lookup(tree token.Branch, ref string) (token.Literal, bool) {
	if ref == "" || !strings.Contains(ref, ".") {
		return token.Literal{}, false
	}
	return tree.Literal(ref)
}

// follow walks a reference chain. It returns the last literal reached,
// whether that literal is a final (non-reference) value, and whether the
// first step resolved at all.
func follow(tree token.Branch, ref string) (token.Literal, bool, bool) {
	lit, ok := Lookup(tree, ref)
	if !ok {
		return token.Literal{}, false, false
	}
	visited := map[string]bool{ref: true}
	for lit.IsReference() {
		next := lit.String()
		if visited[next] {
			return lit, false, true
		}
		nextLit, ok := Lookup(tree, next)
		if !ok {
			return lit, false, true
		}
		visited[next] = true
		lit = nextLit
	}
	return lit, true, true
}

// ResolveAll returns a copy of the tree where every literal has been walked
// to its resolved value.
func ResolveAll(tree token.Branch) token.Branch {
	return ResolveSubset(tree, tree)
}

// ResolveSubset resolves every literal of subset against tree. Use it when
// subset is a filtered view whose references may point outside it.
func ResolveSubset(tree, subset token.Branch) token.Branch {
	return subset.Map(func(_ []string, lit token.Literal) token.Literal {
		if lit.IsNumber() {
			return lit
		}
		if resolved, ok := ResolveLiteral(tree, lit.String()); ok {
			return resolved
		}
		return lit
	})
}

// Unresolved returns the paths whose reference value does not resolve to a
// literal, keyed by path with the offending reference as value.
func Unresolved(tree token.Branch) map[string]string {
	result := make(map[string]string)
	_ = tree.Walk(func(path []string, lit token.Literal) error {
		if !lit.IsReference() {
			return nil
		}
		if _, final, _ := follow(tree, lit.String()); !final {
			result[token.JoinPath(path)] = lit.String()
		}
		return nil
	})
	return result
}
