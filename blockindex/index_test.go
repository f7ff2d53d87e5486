package blockindex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skryptex/SKX-EDIT/checkpoint"
	"github.com/Skryptex/SKX-EDIT/common/types"
)

func TestIndex(t *testing.T) {
	idx, err := New(2)
	require.NoError(t, err)

	_, ok := idx.Tip()
	require.False(t, ok)

	first := &types.BlockHeader{Height: 1, ID: types.Hash32{1}}
	second := &types.BlockHeader{Height: 3, ID: types.Hash32{3}}
	third := &types.BlockHeader{Height: 2, ID: types.Hash32{2}}
	idx.Add(first)
	idx.Add(second)
	got, ok := idx.Get(first.ID)
	require.True(t, ok)
	require.Same(t, first, got)

	// lookups don't refresh entries, first is still the oldest
	idx.Add(third)
	require.Equal(t, 2, idx.Len())
	_, ok = idx.Get(first.ID)
	require.False(t, ok)
	_, ok = idx.Get(second.ID)
	require.True(t, ok)

	tip, ok := idx.Tip()
	require.True(t, ok)
	require.Same(t, second, tip)
}

func TestInvalidSize(t *testing.T) {
	_, err := New(0)
	require.Error(t, err)
}

func TestLastReached(t *testing.T) {
	r, err := checkpoint.Builtin(checkpoint.MainNetwork)
	require.NoError(t, err)
	checker := checkpoint.NewChecker(checkpoint.NewSelectorFromRegistry(r))

	idx, err := New(DefaultSize)
	require.NoError(t, err)
	for _, e := range r.Entries()[:3] {
		idx.Add(&types.BlockHeader{Height: e.Height, ID: e.ID})
	}
	idx.Add(&types.BlockHeader{Height: 60, ID: types.Hash32{60}})

	header, ok := checkpoint.LastReached[*types.BlockHeader](checker, idx)
	require.True(t, ok)
	require.Equal(t, uint64(50), header.Height)
}

func TestLastReachedKeepsEvictionOrder(t *testing.T) {
	r, err := checkpoint.Builtin(checkpoint.MainNetwork)
	require.NoError(t, err)
	checker := checkpoint.NewChecker(checkpoint.NewSelectorFromRegistry(r))
	genesis := r.Entries()[0]

	idx, err := New(2)
	require.NoError(t, err)
	idx.Add(&types.BlockHeader{Height: genesis.Height, ID: genesis.ID})
	idx.Add(&types.BlockHeader{Height: 1, ID: types.Hash32{1}})

	header, ok := checkpoint.LastReached[*types.BlockHeader](checker, idx)
	require.True(t, ok)
	require.Equal(t, genesis.ID, header.ID)

	idx.Add(&types.BlockHeader{Height: 2, ID: types.Hash32{2}})
	_, ok = idx.Get(genesis.ID)
	require.False(t, ok, "genesis was the oldest entry and must be evicted")
	_, ok = idx.Get(types.Hash32{1})
	require.True(t, ok)
}
