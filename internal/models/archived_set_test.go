package models_test

import (
	"encoding/json"
	"testing"

	"pingo/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchivedSet_ScanNormalizes(t *testing.T) {
	var set models.ArchivedSet
	err := set.Scan([]byte(`[9, 2, 2, 5, 0, 9]`))

	require.NoError(t, err)
	assert.Equal(t, models.ArchivedSet{2, 5, 9}, set, "duplicates and zero entries are dropped, order ascending")
}

func TestArchivedSet_ScanNil(t *testing.T) {
	var set models.ArchivedSet
	err := set.Scan(nil)

	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestArchivedSet_ScanString(t *testing.T) {
	var set models.ArchivedSet
	err := set.Scan(`[3, 1]`)

	require.NoError(t, err)
	assert.Equal(t, models.ArchivedSet{1, 3}, set)
}

func TestArchivedSet_ScanMalformed(t *testing.T) {
	var set models.ArchivedSet

	assert.Error(t, set.Scan([]byte(`{"nope": true}`)))
	assert.Error(t, set.Scan(42))
}

func TestArchivedSet_ValueRoundTrip(t *testing.T) {
	set := models.ArchivedSet{2, 5, 9}

	v, err := set.Value()
	require.NoError(t, err)

	var scanned models.ArchivedSet
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, set, scanned)
}

func TestArchivedSet_ValueNil(t *testing.T) {
	var set models.ArchivedSet

	v, err := set.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v, "nil set must encode as an empty JSON array, not null")
}

func TestArchivedSet_Has(t *testing.T) {
	set := models.ArchivedSet{2, 5}

	assert.True(t, set.Has(5))
	assert.False(t, set.Has(3))
	assert.False(t, models.ArchivedSet(nil).Has(1))
}

func TestUserJSONOmitsPassword(t *testing.T) {
	user := models.User{ID: 1, FullName: "Ann", Email: "ann@example.com", Password: "hash"}

	b, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hash")
	assert.NotContains(t, string(b), "password")
}
