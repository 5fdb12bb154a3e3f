package dashboard

import (
	"net/http"

	"solutions-admin/config"
	"solutions-admin/pkg/apperrors"

	"github.com/labstack/echo/v4"
)

// Stats is the dashboard summary payload.
type Stats struct {
	TotalPages     int64 `json:"totalPages"`
	PublishedPages int64 `json:"publishedPages"`
	DraftPages     int64 `json:"draftPages"`
	ArchivedPages  int64 `json:"archivedPages"`
	TotalVideos    int64 `json:"totalVideos"`
	TotalMedia     int64 `json:"totalMedia"`
	TotalLeads     int64 `json:"totalLeads"`
	NewLeads       int64 `json:"newLeads"`
}

func count(dest *int64, query string, args ...interface{}) error {
	return config.DB.Get(dest, query, args...)
}

// StatsHandler aggregates the content and lead counters shown on the
// admin dashboard. Counts are independent reads, not a snapshot.
func StatsHandler(c echo.Context) error {
	var s Stats

	queries := []struct {
		dest  *int64
		query string
		args  []interface{}
	}{
		{&s.TotalPages, `SELECT COUNT(*) FROM pages`, nil},
		{&s.PublishedPages, `SELECT COUNT(*) FROM pages WHERE status = $1`, []interface{}{"published"}},
		{&s.DraftPages, `SELECT COUNT(*) FROM pages WHERE status = $1`, []interface{}{"draft"}},
		{&s.ArchivedPages, `SELECT COUNT(*) FROM pages WHERE status = $1`, []interface{}{"archived"}},
		{&s.TotalVideos, `SELECT COUNT(*) FROM videos`, nil},
		{&s.TotalMedia, `SELECT COUNT(*) FROM media_files`, nil},
		{&s.TotalLeads, `SELECT COUNT(*) FROM leads`, nil},
		{&s.NewLeads, `SELECT COUNT(*) FROM leads WHERE status = $1`, []interface{}{"new"}},
	}
	for _, q := range queries {
		if err := count(q.dest, q.query, q.args...); err != nil {
			return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
		}
	}

	return c.JSON(http.StatusOK, s)
}
