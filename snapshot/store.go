/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package snapshot

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/internal/logger"
	"bennypowers.dev/tessera/storage"
	"bennypowers.dev/tessera/token"
)

// Storage keys.
const (
	KeySnapshots = "tessera.snapshots"
	KeyCurrent   = "tessera.current"
)

// Options configures a Store.
type Options struct {
	// Backend persists the snapshot list. Nil keeps state in memory only.
	Backend storage.Store

	// Registry supplies factory layers for ResetComponentTokens.
	Registry component.Registry

	// Seeds are merged into the persisted list by id on open.
	// The first seed is current when nothing else is.
	Seeds []*Snapshot

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// NewID mints snapshot ids. Defaults to random UUIDs.
	NewID func() string
}

// Store owns the current snapshot and the list of saved snapshots.
//
// Readers call Current and get an immutable *Snapshot; writers are
// serialized and publish a new snapshot atomically, so a reader never
// observes a partially applied mutation.
type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[Snapshot]
	saved   []*Snapshot

	backend  storage.Store
	registry component.Registry
	now      func() time.Time
	newID    func() string
}

// Open loads persisted state, merges seeds, and selects the current snapshot.
// Malformed persisted data is logged and treated as empty.
func Open(ctx context.Context, opts Options) (*Store, error) {
	s := &Store{
		backend:  opts.Backend,
		registry: opts.Registry,
		now:      opts.Now,
		newID:    opts.NewID,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}

	var persisted []*Snapshot
	var currentID string
	if s.backend != nil {
		data, err := s.backend.Get(ctx, KeySnapshots)
		switch {
		case errors.Is(err, storage.ErrNotFound):
		case err != nil:
			return nil, fmt.Errorf("reading snapshots: %w", err)
		default:
			persisted, err = DecodeList(data)
			if err != nil {
				logger.Warn("ignoring persisted snapshots: %v", err)
			}
		}
		if id, err := s.backend.Get(ctx, KeyCurrent); err == nil {
			currentID = strings.TrimSpace(string(id))
		}
	}

	s.saved = MergeSeeds(persisted, opts.Seeds...)
	if len(s.saved) == 0 {
		s.saved = []*Snapshot{s.empty()}
	}

	cur := s.find(currentID)
	if cur == nil && len(opts.Seeds) > 0 {
		cur = s.find(opts.Seeds[0].ID)
	}
	if cur == nil {
		cur = s.saved[0]
	}
	s.current.Store(cur)
	return s, nil
}

func (s *Store) empty() *Snapshot {
	now := s.now().UTC()
	return &Snapshot{
		ID:         s.newID(),
		Name:       "Untitled",
		CreatedAt:  now,
		UpdatedAt:  now,
		Globals:    token.Branch{},
		Components: map[string]component.Layers{},
	}
}

func (s *Store) find(id string) *Snapshot {
	if id == "" {
		return nil
	}
	for _, snap := range s.saved {
		if snap.ID == id {
			return snap
		}
	}
	return nil
}

// Current returns the current snapshot. It must not be modified.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// List returns summaries of every saved snapshot in save order.
func (s *Store) List() []Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Summary, len(s.saved))
	for i, snap := range s.saved {
		out[i] = snap.Summary()
	}
	return out
}

// Get returns a saved snapshot by id.
func (s *Store) Get(id string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap := s.find(id); snap != nil {
		return snap, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
}

// UpdateGlobalToken sets the node at a dotted path in the global tree.
// A nil node removes the path.
func (s *Store) UpdateGlobalToken(ctx context.Context, path string, node token.Node) error {
	segments := token.SplitPath(path)
	if len(segments) == 0 || slices.Contains(segments, "") {
		return fmt.Errorf("invalid token path %q", path)
	}
	return s.mutate(ctx, func(cur *Snapshot) (*Snapshot, bool) {
		return cur.withGlobals(cur.Globals.With(segments, node)), true
	})
}

// UpdateComponentTokens merges patch into one layer of a component.
// Categories present in patch are merged into the layer field by field.
// An unknown component id leaves the state unchanged.
func (s *Store) UpdateComponentTokens(ctx context.Context, id string, ref component.LayerRef, patch component.Tokens) error {
	return s.mutate(ctx, func(cur *Snapshot) (*Snapshot, bool) {
		layers, ok := cur.Components[id]
		if !ok {
			logger.Debug("update of unknown component %q ignored", id)
			return cur, false
		}
		existing, _ := layers.Layer(ref)
		return cur.withComponent(id, layers.WithLayer(ref, component.Merge(existing, patch))), true
	})
}

// SetComponentToken sets or clears (nil value) one field of a component layer.
// An unknown component id leaves the state unchanged.
func (s *Store) SetComponentToken(ctx context.Context, id string, ref component.LayerRef, field string, value *component.Value) error {
	if !component.IsField(field) {
		_, err := component.Tokens{}.Set(field, value)
		return err
	}
	return s.mutate(ctx, func(cur *Snapshot) (*Snapshot, bool) {
		layers, ok := cur.Components[id]
		if !ok {
			return cur, false
		}
		existing, _ := layers.Layer(ref)
		updated, _ := existing.Set(field, value)
		return cur.withComponent(id, layers.WithLayer(ref, updated)), true
	})
}

// ResetComponentTokens replaces every layer of a component with its
// factory defaults. Ids without a registered definition are ignored.
func (s *Store) ResetComponentTokens(ctx context.Context, id string) error {
	return s.mutate(ctx, func(cur *Snapshot) (*Snapshot, bool) {
		def, ok := s.registry.Lookup(id)
		if !ok {
			logger.Debug("reset of unknown component %q ignored", id)
			return cur, false
		}
		return cur.withComponent(id, def.Defaults.Clone()), true
	})
}

// SaveSnapshot saves the current state as a new snapshot with a fresh id,
// which becomes current.
func (s *Store) SaveSnapshot(ctx context.Context, name, description string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	next := s.Current().Clone()
	next.ID = s.newID()
	next.Name = name
	next.Description = description
	next.CreatedAt = now
	next.UpdatedAt = now

	s.saved = append(slices.Clone(s.saved), next)
	s.current.Store(next)
	return next, s.persist(ctx, true)
}

// LoadSnapshot makes a saved snapshot current, replacing the whole state.
func (s *Store) LoadSnapshot(ctx context.Context, id string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.find(id)
	if snap == nil {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	s.current.Store(snap)
	return snap, s.persist(ctx, false)
}

// Import merges snapshots decoded from data, skipping ids already present.
// It returns the number added.
func (s *Store) Import(ctx context.Context, data []byte) (int, error) {
	in, err := DecodeList(data)
	if errors.Is(err, ErrNotAList) {
		// A single snapshot object is accepted too.
		snap, derr := Decode(data)
		if derr != nil {
			return 0, err
		}
		in = []*Snapshot{snap}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.saved)
	s.saved = MergeSeeds(s.saved, in...)
	added := len(s.saved) - before
	if added == 0 {
		return 0, nil
	}
	return added, s.persist(ctx, true)
}

// mutate applies fn to the current snapshot under the write lock. When fn
// reports a change, the result is stamped, published and auto-saved under
// the same id. The new state is published even if persistence fails; the
// persistence error is returned.
func (s *Store) mutate(ctx context.Context, fn func(*Snapshot) (*Snapshot, bool)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.Current()
	next, changed := fn(cur)
	if !changed {
		return nil
	}
	next.UpdatedAt = s.stamp(cur.UpdatedAt)

	s.saved = slices.Clone(s.saved)
	if i := slices.IndexFunc(s.saved, func(snap *Snapshot) bool { return snap.ID == next.ID }); i >= 0 {
		s.saved[i] = next
	} else {
		s.saved = append(s.saved, next)
	}
	s.current.Store(next)
	return s.persist(ctx, true)
}

// stamp returns a timestamp strictly after prev.
func (s *Store) stamp(prev time.Time) time.Time {
	now := s.now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

// persist writes state to the backend. Callers hold mu.
func (s *Store) persist(ctx context.Context, list bool) error {
	if s.backend == nil {
		return nil
	}
	if list {
		data, err := EncodeList(s.saved)
		if err != nil {
			return fmt.Errorf("encoding snapshots: %w", err)
		}
		if err := s.backend.Set(ctx, KeySnapshots, data); err != nil {
			if errors.Is(err, storage.ErrQuotaExceeded) {
				logger.Error(err, "snapshot not saved")
			}
			return fmt.Errorf("saving snapshots: %w", err)
		}
	}
	if err := s.backend.Set(ctx, KeyCurrent, []byte(s.Current().ID)); err != nil {
		return fmt.Errorf("saving current snapshot id: %w", err)
	}
	return nil
}
