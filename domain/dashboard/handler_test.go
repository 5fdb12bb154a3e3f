package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"solutions-admin/pkg/testutil"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsHandler(t *testing.T) {
	db := testutil.SetupDB(t)

	_, err := db.Exec(`
		INSERT INTO pages (slug, title, status) VALUES
		('a', 'A', 'published'),
		('b', 'B', 'published'),
		('c', 'C', 'draft'),
		('d', 'D', 'archived');
		INSERT INTO videos (title, source, url) VALUES ('V', 'youtube', 'https://youtu.be/v');
		INSERT INTO media_files (filename, url) VALUES ('f.png', '/uploads/f.png');
		INSERT INTO leads (name, status) VALUES ('L1', 'new'), ('L2', 'new'), ('L3', 'contacted');
	`)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, StatsHandler(c))

	var s Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))

	assert.Equal(t, int64(4), s.TotalPages)
	assert.Equal(t, int64(2), s.PublishedPages)
	assert.Equal(t, int64(1), s.DraftPages)
	assert.Equal(t, int64(1), s.ArchivedPages)
	assert.Equal(t, int64(1), s.TotalVideos)
	assert.Equal(t, int64(1), s.TotalMedia)
	assert.Equal(t, int64(3), s.TotalLeads)
	assert.Equal(t, int64(2), s.NewLeads)
}

func TestStatsHandlerEmptyDatabase(t *testing.T) {
	testutil.SetupDB(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, StatsHandler(c))

	var s Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Zero(t, s.TotalPages)
	assert.Zero(t, s.NewLeads)
}
