package admin

import (
	"testing"

	"solutions-admin/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndLookup(t *testing.T) {
	testutil.SetupDB(t)

	a, err := Create("Ana", "ana@escritorio.com", "hash", RoleAdmin)
	require.NoError(t, err)
	assert.NotZero(t, a.ID)
	assert.True(t, a.IsActive)

	// Email lookup is case-insensitive.
	got, err := GetByEmail("ANA@Escritorio.COM")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a.ID, got.ID)

	byID, err := GetByID(a.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Ana", byID.Name)
}

func TestCreateDuplicateEmail(t *testing.T) {
	testutil.SetupDB(t)

	_, err := Create("Ana", "ana@escritorio.com", "hash", RoleAdmin)
	require.NoError(t, err)

	_, err = Create("Outra", "ana@escritorio.com", "hash2", RoleEditor)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetByEmailMissing(t *testing.T) {
	testutil.SetupDB(t)

	got, err := GetByEmail("ninguem@escritorio.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCount(t *testing.T) {
	testutil.SetupDB(t)

	n, err := Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = Create("Ana", "ana@escritorio.com", "hash", RoleAdmin)
	require.NoError(t, err)

	n, err = Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTouchLogin(t *testing.T) {
	testutil.SetupDB(t)

	a, err := Create("Ana", "ana@escritorio.com", "hash", RoleAdmin)
	require.NoError(t, err)
	assert.False(t, a.LastSignedIn.Valid)

	require.NoError(t, TouchLogin(a.ID))

	got, err := GetByID(a.ID)
	require.NoError(t, err)
	assert.True(t, got.LastSignedIn.Valid)
}
