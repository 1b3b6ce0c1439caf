package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitssourat/aji/internal/db"
	"github.com/ajitssourat/aji/internal/program"
)

func execute(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
}

func openDB(t *testing.T, path string) *db.Store {
	t.Helper()
	conn, err := db.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(conn) })
	return db.NewStore(conn)
}

func TestHeadlessFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aji.db")
	t.Setenv(db.EnvPath, path)
	t.Setenv(EnvDebug, "")

	execute(t, "register", "amina@example.com", "--password", "secret1")
	execute(t, "onboard", "--met", "2400")
	execute(t, "lang", "ar")
	execute(t, "bilan", "run", "1", "--no-ui", "--score", "7", "--note", "raideur", "--interval", "1ms")
	execute(t, "program", "start", "1", "--no-ui", "--interval", "1ms")
	execute(t, "status")
	execute(t, "faq", "protocole")

	store := openDB(t, path)
	assert.Equal(t, "amina@example.com", store.CurrentUser())
	assert.True(t, store.OnboardingCompleted("amina@example.com"))

	results, err := store.Results("amina@example.com")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].TestID)
	assert.Equal(t, 7, results[0].Score)
	assert.Equal(t, "raideur", results[0].Observation)

	assert.True(t, program.LoadRecord(store, "amina@example.com").Contains(1))

	lang, _, err := store.Get("language")
	require.NoError(t, err)
	assert.Equal(t, "ar", lang)
}

func TestRing(t *testing.T) {
	assert.Equal(t, "[░░░░]", ring(0, 4))
	assert.Equal(t, "[██░░]", ring(0.5, 4))
	assert.Equal(t, "[████]", ring(1, 4))
}
