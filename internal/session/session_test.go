package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-crm/leadline/internal/common"
	"github.com/leadline-crm/leadline/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := testStore(t)

	sess := &Session{
		Token: "tok-123",
		User: model.Employee{
			ID:    "e1",
			Name:  "Meena",
			Email: "meena@example.com",
			Role:  model.RoleManager,
		},
		CreatedAt: time.Now().Truncate(time.Second),
	}
	require.NoError(t, store.Save(sess))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, sess.Token, loaded.Token)
	assert.Equal(t, sess.User, loaded.User)
}

func TestStore_LoadWithoutSession(t *testing.T) {
	store := testStore(t)

	_, err := store.Load()
	assert.ErrorIs(t, err, common.ErrNoSession)
}

func TestStore_SessionFileIsPrivate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStoreAt(path)
	require.NoError(t, store.Save(&Session{Token: "secret"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestStore_Clear(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Save(&Session{Token: "tok"}))

	require.NoError(t, store.Clear())
	_, err := store.Load()
	assert.ErrorIs(t, err, common.ErrNoSession)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

func TestStore_EmptyTokenIsNoSession(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Save(&Session{}))

	_, err := store.Load()
	assert.ErrorIs(t, err, common.ErrNoSession)
}

func TestSession_Valid(t *testing.T) {
	var nilSess *Session
	assert.False(t, nilSess.Valid())
	assert.False(t, (&Session{}).Valid())
	assert.True(t, (&Session{Token: "t"}).Valid())
}
