package cta

import (
	"testing"

	"solutions-admin/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAppliesDefaults(t *testing.T) {
	testutil.SetupDB(t)

	c, err := Save(&SaveRequest{PageID: 1, Label: "Fale conosco", URL: "/contato"})
	require.NoError(t, err)

	assert.Equal(t, StylePrimary, c.Style)
	assert.Equal(t, 0, c.Position)
	assert.True(t, c.IsActive)
}

func TestSaveUpdateInPlace(t *testing.T) {
	testutil.SetupDB(t)

	c, err := Save(&SaveRequest{PageID: 1, Label: "Original", URL: "/a"})
	require.NoError(t, err)

	pos := 5
	inactive := false
	updated, err := Save(&SaveRequest{
		ID: &c.ID, PageID: 1, Label: "Atualizado", URL: "/b",
		Style: StyleOutline, Position: &pos, IsActive: &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, c.ID, updated.ID)
	assert.Equal(t, "Atualizado", updated.Label)
	assert.Equal(t, StyleOutline, updated.Style)
	assert.Equal(t, 5, updated.Position)
	assert.False(t, updated.IsActive)

	missing := int64(404)
	_, err = Save(&SaveRequest{ID: &missing, PageID: 1, Label: "X", URL: "/x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByPageOrdersByPositionThenID(t *testing.T) {
	testutil.SetupDB(t)

	two := 2
	one := 1
	first, err := Save(&SaveRequest{PageID: 7, Label: "B", URL: "/b", Position: &two})
	require.NoError(t, err)
	second, err := Save(&SaveRequest{PageID: 7, Label: "C", URL: "/c", Position: &two})
	require.NoError(t, err)
	third, err := Save(&SaveRequest{PageID: 7, Label: "A", URL: "/a", Position: &one})
	require.NoError(t, err)

	// Another page's buttons must not leak in.
	_, err = Save(&SaveRequest{PageID: 8, Label: "Z", URL: "/z"})
	require.NoError(t, err)

	ctas, err := ListByPage(7)
	require.NoError(t, err)
	require.Len(t, ctas, 3)

	assert.Equal(t, third.ID, ctas[0].ID)
	// Duplicate positions keep insertion order via the id tie-break.
	assert.Equal(t, first.ID, ctas[1].ID)
	assert.Equal(t, second.ID, ctas[2].ID)
}

func TestDelete(t *testing.T) {
	testutil.SetupDB(t)

	c, err := Save(&SaveRequest{PageID: 1, Label: "Temp", URL: "/t"})
	require.NoError(t, err)

	require.NoError(t, Delete(c.ID))
	assert.ErrorIs(t, Delete(c.ID), ErrNotFound)
}
