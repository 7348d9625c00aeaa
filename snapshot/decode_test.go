/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tessera/snapshot"
	"bennypowers.dev/tessera/token"
)

func TestDecodeList_DropsInvalidEntries(t *testing.T) {
	data := []byte(`[
		// comments are allowed
		{"id": "ok", "name": "Kept", "globals": {"space": {"4": "16px"}}, "futureField": true},
		{"name": "no id", "globals": {}},
		{"id": "no-globals"},
		{"id": "", "globals": {}},
		{"id": "bad-globals", "globals": "nope"},
		"not an object",
		42,
		{"id": "empty-globals", "globals": {}}
	]`)

	snaps, err := snapshot.DecodeList(data)
	require.NoError(t, err)
	require.Len(t, snaps, 2)

	assert.Equal(t, "ok", snaps[0].ID)
	lit, ok := snaps[0].Globals.Literal("space.4")
	require.True(t, ok)
	assert.Equal(t, "16px", lit.String())
	assert.Equal(t, "empty-globals", snaps[1].ID)
}

func TestDecodeList_NotAList(t *testing.T) {
	_, err := snapshot.DecodeList([]byte(`{"id":"x","globals":{}}`))
	assert.ErrorIs(t, err, snapshot.ErrNotAList)

	_, err = snapshot.DecodeList([]byte(`garbage`))
	assert.ErrorIs(t, err, snapshot.ErrNotAList)

	snaps, err := snapshot.DecodeList(nil)
	assert.NoError(t, err)
	assert.Empty(t, snaps)
}

func TestEncodeList_RoundTrip(t *testing.T) {
	in := []*snapshot.Snapshot{{
		ID:      "a",
		Name:    "A",
		Globals: token.Branch{"weight": token.Branch{"bold": token.Number(700)}},
	}}
	data, err := snapshot.EncodeList(in)
	require.NoError(t, err)

	out, err := snapshot.DecodeList(data)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in[0].Globals, out[0].Globals)
}

func TestMergeSeeds(t *testing.T) {
	existing := []*snapshot.Snapshot{{ID: "default", Name: "Mine", Globals: token.Branch{}}}
	seeds := []*snapshot.Snapshot{
		{ID: "default", Name: "Factory", Globals: token.Branch{}},
		{ID: "dark", Name: "Dark", Globals: token.Branch{}},
	}

	merged := snapshot.MergeSeeds(existing, seeds...)
	require.Len(t, merged, 2)
	assert.Equal(t, "Mine", merged[0].Name, "seeds never overwrite")
	assert.Equal(t, "dark", merged[1].ID)
	assert.Len(t, existing, 1)
}
