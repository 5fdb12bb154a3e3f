package media

import (
	"testing"

	"solutions-admin/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndGet(t *testing.T) {
	testutil.SetupDB(t)

	mime := "image/png"
	size := int64(2048)
	pageID := int64(3)
	m, err := Insert("logo.png", "/uploads/abc_logo.png", &mime, &size, &pageID)
	require.NoError(t, err)
	assert.NotZero(t, m.ID)

	got, err := GetByID(m.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "logo.png", got.Filename)
	require.NotNil(t, got.MimeType)
	assert.Equal(t, mime, *got.MimeType)

	missing, err := GetByID(404)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDelete(t *testing.T) {
	testutil.SetupDB(t)

	m, err := Insert("doc.pdf", "/uploads/doc.pdf", nil, nil, nil)
	require.NoError(t, err)

	require.NoError(t, Delete(m.ID))
	assert.ErrorIs(t, Delete(m.ID), ErrNotFound)
}
