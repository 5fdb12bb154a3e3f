package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBlocksReassignsDenseOrder(t *testing.T) {
	in := Blocks{
		{ID: "c", Type: BlockCTA, Order: 30},
		{ID: "a", Type: BlockHero, Order: 5},
		{ID: "b", Type: BlockText, Order: 12},
	}

	out, err := NormalizeBlocks(in)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
	assert.Equal(t, "c", out[2].ID)
	for i, blk := range out {
		assert.Equal(t, i, blk.Order)
	}

	// The input slice is untouched.
	assert.Equal(t, 30, in[0].Order)
}

func TestNormalizeBlocksStableOnDuplicateOrder(t *testing.T) {
	in := Blocks{
		{ID: "first", Type: BlockText, Order: 1},
		{ID: "second", Type: BlockText, Order: 1},
		{ID: "third", Type: BlockText, Order: 1},
	}

	out, err := NormalizeBlocks(in)
	require.NoError(t, err)

	assert.Equal(t, "first", out[0].ID)
	assert.Equal(t, "second", out[1].ID)
	assert.Equal(t, "third", out[2].ID)
}

func TestNormalizeBlocksRejectsUnknownType(t *testing.T) {
	_, err := NormalizeBlocks(Blocks{{ID: "x", Type: "carousel"}})
	assert.ErrorIs(t, err, ErrInvalidBlock)
}

func TestNormalizeBlocksNil(t *testing.T) {
	out, err := NormalizeBlocks(nil)
	require.NoError(t, err)
	assert.Equal(t, Blocks{}, out)
}

func TestPageStatusValid(t *testing.T) {
	assert.True(t, StatusDraft.Valid())
	assert.True(t, StatusPublished.Valid())
	assert.True(t, StatusArchived.Valid())
	assert.False(t, PageStatus("deleted").Valid())
	assert.False(t, PageStatus("").Valid())
}
