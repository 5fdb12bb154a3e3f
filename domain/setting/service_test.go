package setting

import (
	"testing"

	"solutions-admin/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetInsertsAndOverwrites(t *testing.T) {
	testutil.SetupDB(t)

	s, err := Set("site_title", "Escritório XYZ")
	require.NoError(t, err)
	require.NotNil(t, s.Value)
	assert.Equal(t, "Escritório XYZ", *s.Value)

	// Last write wins; the id stays stable.
	again, err := Set("site_title", "Escritório ABC")
	require.NoError(t, err)
	require.NotNil(t, again.Value)
	assert.Equal(t, "Escritório ABC", *again.Value)
	assert.Equal(t, s.ID, again.ID)
}

func TestGetMissingKey(t *testing.T) {
	testutil.SetupDB(t)

	_, err := Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAll(t *testing.T) {
	testutil.SetupDB(t)

	_, err := Set("b_key", "2")
	require.NoError(t, err)
	_, err = Set("a_key", "1")
	require.NoError(t, err)

	settings, err := All()
	require.NoError(t, err)
	require.Len(t, settings, 2)
	assert.Equal(t, "a_key", settings[0].Key)
	assert.Equal(t, "b_key", settings[1].Key)
}
