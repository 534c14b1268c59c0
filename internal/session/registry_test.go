package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ongvang00/HealthManagementSystem/internal/session"
)

func TestCreateLogsInAndRejectsDuplicates(t *testing.T) {
	t.Parallel()
	r := session.New(filepath.Join(t.TempDir(), session.FileName))

	require.NoError(t, r.Create("alice"))
	cur, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, "alice", cur.Username)

	err := r.Create("alice")
	assert.ErrorIs(t, err, session.ErrUserExists)

	require.NoError(t, r.Create("Alice"), "usernames are case-sensitive")
	assert.Equal(t, []string{"Alice", "alice"}, r.Users())
}

func TestLoginRequiresKnownUser(t *testing.T) {
	t.Parallel()
	r := session.New(filepath.Join(t.TempDir(), session.FileName))

	assert.ErrorIs(t, r.Login("bob"), session.ErrUnknownUser)
	_, ok := r.Current()
	assert.False(t, ok)

	require.NoError(t, r.Create("bob"))
	require.NoError(t, r.Create("carol"))
	require.NoError(t, r.Login("bob"))
	cur, _ := r.Current()
	assert.Equal(t, "bob", cur.Username)

	r.Logout()
	_, ok = r.Current()
	assert.False(t, ok)
}

func TestCreateRejectsBlankUsername(t *testing.T) {
	t.Parallel()
	r := session.New(filepath.Join(t.TempDir(), session.FileName))
	assert.Error(t, r.Create("   "))
	assert.Empty(t, r.Users())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "data", session.FileName)

	r := session.New(path)
	require.NoError(t, r.Create("alice"))
	require.NoError(t, r.Create("bob"))
	require.NoError(t, r.Save())

	loaded, err := session.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, loaded.Users())
	cur, ok := loaded.Current()
	require.True(t, ok)
	assert.Equal(t, "bob", cur.Username)
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	t.Parallel()
	r, err := session.Load(filepath.Join(t.TempDir(), session.FileName))
	require.NoError(t, err)
	assert.Empty(t, r.Users())
	_, ok := r.Current()
	assert.False(t, ok)
}

func TestLoadDropsCurrentUserThatIsNotRegistered(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), session.FileName)
	require.NoError(t, os.WriteFile(path, []byte("users: [alice]\ncurrent: mallory\n"), 0o600))

	r, err := session.Load(path)
	require.NoError(t, err)
	_, ok := r.Current()
	assert.False(t, ok)
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), session.FileName)
	require.NoError(t, os.WriteFile(path, []byte("users: [alice\n"), 0o600))

	_, err := session.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse session registry")
}
