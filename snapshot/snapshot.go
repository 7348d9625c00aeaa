/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package snapshot holds the persistable unit of a design system and the
// state store that owns the current one.
package snapshot

import (
	"errors"
	"maps"
	"time"

	"bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/token"
)

var (
	// ErrSnapshotNotFound is returned when loading an unknown snapshot id.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrNotAList is returned when persisted state is not a JSON array.
	ErrNotAList = errors.New("snapshot data is not a list")
)

// Snapshot is one complete instance of the global tree plus every
// component's layers. A published *Snapshot is never modified; mutations
// produce a new one.
type Snapshot struct {
	ID          string                      `json:"id" validate:"required"`
	Name        string                      `json:"name"`
	Description string                      `json:"description,omitempty"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
	Version     string                      `json:"version"`
	Globals     token.Branch                `json:"globals" validate:"required"`
	Components  map[string]component.Layers `json:"components"`
}

// Clone returns a deep copy of s.
func (s *Snapshot) Clone() *Snapshot {
	out := *s
	out.Globals = s.Globals.Clone()
	out.Components = make(map[string]component.Layers, len(s.Components))
	for id, l := range s.Components {
		out.Components[id] = l.Clone()
	}
	return &out
}

// withGlobals returns a shallow copy of s carrying globals.
func (s *Snapshot) withGlobals(globals token.Branch) *Snapshot {
	out := *s
	out.Globals = globals
	return &out
}

// withComponent returns a shallow copy of s with one component's layers replaced.
func (s *Snapshot) withComponent(id string, layers component.Layers) *Snapshot {
	out := *s
	out.Components = maps.Clone(s.Components)
	if out.Components == nil {
		out.Components = map[string]component.Layers{}
	}
	out.Components[id] = layers
	return &out
}

// Summary is the listing view of a snapshot.
type Summary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Version     string    `json:"version"`
}

// Summary returns the listing view of s.
func (s *Snapshot) Summary() Summary {
	return Summary{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		Version:     s.Version,
	}
}
