package prefs

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	store, err := NewStore(db)
	require.NoError(t, err)
	return store
}

func TestGetWithoutPreference(t *testing.T) {
	store := newTestStore(t)

	labels, err := store.Get("guild-1", "alice")
	require.NoError(t, err)
	assert.Nil(t, labels)
}

func TestSetGetRoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("guild-1", "alice", []string{"ST", "LW", "CAM"}))

	labels, err := store.Get("guild-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"ST", "LW", "CAM"}, labels)
}

func TestSetReplacesExisting(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("guild-1", "alice", []string{"ST"}))
	require.NoError(t, store.Set("guild-1", "alice", []string{"GK", "CB"}))

	labels, err := store.Get("guild-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"GK", "CB"}, labels)
}

func TestPreferencesAreScoped(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("guild-1", "alice", []string{"ST"}))
	require.NoError(t, store.Set("guild-2", "alice", []string{"GK"}))
	require.NoError(t, store.Set("guild-1", "bob", []string{"CB"}))

	labels, err := store.Get("guild-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"ST"}, labels)

	labels, err = store.Get("guild-2", "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"GK"}, labels)

	labels, err = store.Get("guild-1", "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"CB"}, labels)
}

func TestEmptyLabelsReadBackAsNone(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("guild-1", "alice", nil))

	labels, err := store.Get("guild-1", "alice")
	require.NoError(t, err)
	assert.Nil(t, labels)
}
