/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"slices"
	"strings"
)

// Lookup walks the tree one segment at a time.
// Returns false if any segment is missing or passes through a literal.
func (b Branch) Lookup(path []string) (Node, bool) {
	var current Node = b
	for _, segment := range path {
		branch, ok := current.(Branch)
		if !ok {
			return nil, false
		}
		child, ok := branch[segment]
		if !ok {
			return nil, false
		}
		current = child
	}
	return current, true
}

// Get looks up a dotted path such as "color.accent.primary.base".
func (b Branch) Get(dotted string) (Node, bool) {
	return b.Lookup(SplitPath(dotted))
}

// Literal returns the literal at path, if the path names a leaf.
func (b Branch) Literal(dotted string) (Literal, bool) {
	n, ok := b.Get(dotted)
	if !ok {
		return Literal{}, false
	}
	lit, ok := n.(Literal)
	return lit, ok
}

// With returns a copy of the tree with node stored at path.
// Only branches along the path are copied; untouched subtrees are shared.
// Intermediate branches are created as needed, replacing any literal that
// stands in the way. The receiver is never modified.
func (b Branch) With(path []string, n Node) Branch {
	out := make(Branch, len(b)+1)
	for k, v := range b {
		out[k] = v
	}
	if len(path) == 0 {
		return out
	}
	key := path[0]
	if len(path) == 1 {
		if n == nil {
			delete(out, key)
		} else {
			out[key] = n
		}
		return out
	}
	child, _ := b[key].(Branch)
	out[key] = child.With(path[1:], n)
	return out
}

// Without returns a copy of the tree with the node at path removed.
func (b Branch) Without(path []string) Branch {
	return b.With(path, nil)
}

// Clone returns a deep copy of the tree.
func (b Branch) Clone() Branch {
	if b == nil {
		return nil
	}
	out := make(Branch, len(b))
	for k, v := range b {
		if child, ok := v.(Branch); ok {
			out[k] = child.Clone()
			continue
		}
		out[k] = v
	}
	return out
}

// Keys returns the branch's keys in lexical order.
func (b Branch) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Walk visits every literal depth-first in lexical key order.
// Returning an error from fn stops the walk.
func (b Branch) Walk(fn func(path []string, lit Literal) error) error {
	return b.walk(nil, fn)
}

func (b Branch) walk(prefix []string, fn func(path []string, lit Literal) error) error {
	for _, key := range b.Keys() {
		path := append(prefix[:len(prefix):len(prefix)], key)
		switch v := b[key].(type) {
		case Branch:
			if err := v.walk(path, fn); err != nil {
				return err
			}
		case Literal:
			if err := fn(path, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Paths returns the dotted path of every literal in walk order.
func (b Branch) Paths() []string {
	var paths []string
	_ = b.Walk(func(path []string, _ Literal) error {
		paths = append(paths, strings.Join(path, "."))
		return nil
	})
	return paths
}

// Map returns a new tree with fn applied to every literal.
func (b Branch) Map(fn func(path []string, lit Literal) Literal) Branch {
	return b.mapLiterals(nil, fn)
}

func (b Branch) mapLiterals(prefix []string, fn func(path []string, lit Literal) Literal) Branch {
	out := make(Branch, len(b))
	for k, v := range b {
		path := append(prefix[:len(prefix):len(prefix)], k)
		switch x := v.(type) {
		case Branch:
			out[k] = x.mapLiterals(path, fn)
		case Literal:
			out[k] = fn(path, x)
		}
	}
	return out
}
