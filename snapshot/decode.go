/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/jsonc"

	"bennypowers.dev/tessera/internal/logger"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator used at the persistence boundary.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// DecodeList parses a persisted snapshot list. Comments are allowed.
// Entries that are not objects, or that lack an id or globals, are dropped
// and logged; extra fields are ignored. Only data that is not a JSON array
// at all is an error.
func DecodeList(data []byte) ([]*Snapshot, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAList, err)
	}

	out := make([]*Snapshot, 0, len(raw))
	for i, entry := range raw {
		snap, err := Decode(entry)
		if err != nil {
			logger.Warn("dropping persisted snapshot %d: %v", i, err)
			continue
		}
		out = append(out, snap)
	}
	return out, nil
}

// Decode parses and validates a single snapshot.
func Decode(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(jsonc.ToJSON(data), &snap); err != nil {
		return nil, err
	}
	if err := validatorInstance().Struct(&snap); err != nil {
		return nil, describe(err)
	}
	return &snap, nil
}

// EncodeList serializes snapshots for persistence.
func EncodeList(snaps []*Snapshot) ([]byte, error) {
	if snaps == nil {
		snaps = []*Snapshot{}
	}
	return json.Marshal(snaps)
}

// MergeSeeds appends each seed whose id is absent from existing.
// Existing snapshots are never overwritten.
func MergeSeeds(existing []*Snapshot, seeds ...*Snapshot) []*Snapshot {
	have := make(map[string]bool, len(existing))
	for _, s := range existing {
		have[s.ID] = true
	}
	out := append([]*Snapshot(nil), existing...)
	for _, seed := range seeds {
		if seed == nil || have[seed.ID] {
			continue
		}
		have[seed.ID] = true
		out = append(out, seed)
	}
	return out
}

func describe(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return fmt.Errorf("field %s failed %q validation", fe.Field(), fe.Tag())
}
