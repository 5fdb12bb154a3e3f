package lead

import (
	"testing"

	"solutions-admin/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertStartsAsNew(t *testing.T) {
	testutil.SetupDB(t)

	email := "joao@example.com"
	slug := "direito-tributario"
	l, err := Insert(&SubmitRequest{Name: "João", Email: &email, PageSlug: &slug})
	require.NoError(t, err)

	assert.NotZero(t, l.ID)
	assert.Equal(t, StatusNew, l.Status)
	require.NotNil(t, l.PageSlug)
	assert.Equal(t, slug, *l.PageSlug)
}

func TestListNewestFirst(t *testing.T) {
	db := testutil.SetupDB(t)

	_, err := db.Exec(`
		INSERT INTO leads (name, status, created_at) VALUES
		('Antigo', 'new', '2024-01-01 00:00:00'),
		('Recente', 'new', '2024-06-01 00:00:00')
	`)
	require.NoError(t, err)

	leads, err := List()
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "Recente", leads[0].Name)
}

func TestUpdateStatus(t *testing.T) {
	testutil.SetupDB(t)

	l, err := Insert(&SubmitRequest{Name: "Maria"})
	require.NoError(t, err)

	updated, err := UpdateStatus(l.ID, StatusContacted)
	require.NoError(t, err)
	assert.Equal(t, StatusContacted, updated.Status)

	// Any status is reachable from any other.
	back, err := UpdateStatus(l.ID, StatusNew)
	require.NoError(t, err)
	assert.Equal(t, StatusNew, back.Status)

	_, err = UpdateStatus(404, StatusArchived)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeadStatusValid(t *testing.T) {
	assert.True(t, StatusNew.Valid())
	assert.True(t, StatusContacted.Valid())
	assert.True(t, StatusConverted.Valid())
	assert.True(t, StatusArchived.Valid())
	assert.False(t, LeadStatus("spam").Valid())
}
