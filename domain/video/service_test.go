package video

import (
	"testing"

	"solutions-admin/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAppliesDefaults(t *testing.T) {
	testutil.SetupDB(t)

	v, err := Save(&SaveRequest{Title: "Institucional", Source: SourceYoutube, URL: "https://youtu.be/abc"})
	require.NoError(t, err)

	assert.Equal(t, PositionAfterHero, v.Position)
	assert.True(t, v.IsActive)
}

func TestSaveUpdate(t *testing.T) {
	testutil.SetupDB(t)

	v, err := Save(&SaveRequest{Title: "Original", Source: SourceVimeo, URL: "https://vimeo.com/1"})
	require.NoError(t, err)

	inactive := false
	updated, err := Save(&SaveRequest{
		ID:       &v.ID,
		Title:    "Renomeado",
		Source:   SourceVimeo,
		URL:      "https://vimeo.com/1",
		Position: PositionBeforeForm,
		IsActive: &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, "Renomeado", updated.Title)
	assert.Equal(t, PositionBeforeForm, updated.Position)
	assert.False(t, updated.IsActive)

	missing := int64(404)
	_, err = Save(&SaveRequest{ID: &missing, Title: "X", Source: SourceVimeo, URL: "https://vimeo.com/2"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteClearsPageReferences(t *testing.T) {
	db := testutil.SetupDB(t)

	v, err := Save(&SaveRequest{Title: "Compartilhado", Source: SourceYoutube, URL: "https://youtu.be/shared"})
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO pages (slug, title, video_id) VALUES
		('pagina-a', 'Página A', $1),
		('pagina-b', 'Página B', $1),
		('pagina-c', 'Página C', NULL)
	`, v.ID)
	require.NoError(t, err)

	require.NoError(t, Delete(v.ID))

	gone, err := GetByID(v.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	var dangling int
	require.NoError(t, db.Get(&dangling, `SELECT COUNT(*) FROM pages WHERE video_id = $1`, v.ID))
	assert.Zero(t, dangling)

	var total int
	require.NoError(t, db.Get(&total, `SELECT COUNT(*) FROM pages`))
	assert.Equal(t, 3, total)
}

func TestDeleteUnknownID(t *testing.T) {
	testutil.SetupDB(t)

	assert.ErrorIs(t, Delete(404), ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	db := testutil.SetupDB(t)

	_, err := db.Exec(`
		INSERT INTO videos (title, source, url, created_at, updated_at) VALUES
		('Velho', 'youtube', 'https://youtu.be/1', '2024-01-01 00:00:00', '2024-01-01 00:00:00'),
		('Novo', 'youtube', 'https://youtu.be/2', '2024-06-01 00:00:00', '2024-06-01 00:00:00')
	`)
	require.NoError(t, err)

	videos, err := List()
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "Novo", videos[0].Title)
}
