package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwise/bookwise-cli/internal/entities"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	alice := entities.User{UserID: "7", Username: "alice", Email: "alice@example.com"}

	t.Run("empty store loads nil", func(t *testing.T) {
		store := setupTestStore(t)

		user, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		store := setupTestStore(t)

		require.NoError(t, store.Save(alice))
		user, err := store.Load()
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, alice, *user)
	})

	t.Run("save replaces the whole record", func(t *testing.T) {
		store := setupTestStore(t)
		require.NoError(t, store.Save(alice))

		bob := entities.User{UserID: "9", Username: "bob", Email: "bob@example.com"}
		require.NoError(t, store.Save(bob))

		user, err := store.Load()
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, bob, *user)
	})

	t.Run("clear removes the identity", func(t *testing.T) {
		store := setupTestStore(t)
		require.NoError(t, store.Save(alice))

		require.NoError(t, store.Clear())
		user, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("clearing an empty store is a no-op", func(t *testing.T) {
		store := setupTestStore(t)
		assert.NoError(t, store.Clear())
	})

	t.Run("malformed record degrades to no session", func(t *testing.T) {
		store := setupTestStore(t)

		rec := record{Key: sessionKey, Value: "{not json"}
		require.NoError(t, store.db.Create(&rec).Error)

		user, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("identity without user id degrades to no session", func(t *testing.T) {
		store := setupTestStore(t)

		rec := record{Key: sessionKey, Value: `{"username":"ghost"}`}
		require.NoError(t, store.db.Create(&rec).Error)

		user, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("survives reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.db")

		store, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, store.Save(alice))
		require.NoError(t, store.Close())

		reopened, err := Open(path)
		require.NoError(t, err)
		defer reopened.Close()

		user, err := reopened.Load()
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, alice, *user)
	})
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	alice := entities.User{UserID: "7", Username: "alice", Email: "alice@example.com"}

	user, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, store.Save(alice))
	user, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, alice, *user)

	// Loaded value is a copy; mutating it must not affect the store.
	user.Username = "mallory"
	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "alice", again.Username)

	require.NoError(t, store.Clear())
	user, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, user)
}
