package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	conn, err := Open(filepath.Join(t.TempDir(), "aji.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(conn) })
	return NewStore(conn)
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/from-env.db")

	p, err := ResolvePath("/tmp/flag.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/flag.db", p)

	p, err = ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.db", p)

	t.Setenv(EnvPath, "")
	p, err = ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".aji", "aji.db"), filepath.Join(filepath.Base(filepath.Dir(p)), filepath.Base(p)))
}

func TestStoreGetSetDelete(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get(KeyMetScore)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(KeyMetScore, "1200"))
	require.NoError(t, s.Set(KeyMetScore, "2400"))
	v, ok, err := s.Get(KeyMetScore)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2400", v)

	require.NoError(t, s.Delete(KeyMetScore))
	require.NoError(t, s.Delete(KeyMetScore))
	_, ok, err = s.Get(KeyMetScore)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreJSON(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SetJSON(KeyCompletedSessions, []int{1, 3}))
	var ids []int
	ok, err := s.GetJSON(KeyCompletedSessions, &ids)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 3}, ids)

	require.NoError(t, s.Set(KeyCompletedSessions, "[1,"))
	ok, err = s.GetJSON(KeyCompletedSessions, &ids)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestScopedKeys(t *testing.T) {
	assert.Equal(t, "completedSessions", CompletedSessionsKey(""))
	assert.Equal(t, "completedSessions_a@b.c", CompletedSessionsKey("a@b.c"))
	assert.Equal(t, "onboardingCompleted_a@b.c", OnboardingKey("a@b.c"))
	assert.Equal(t, "userProfile_a@b.c", ProfileKey("a@b.c"))
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s := openTestStore(t)

	u, err := s.Register("  Amina@Example.com ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "amina@example.com", u.Email)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "secret1", u.PasswordHash)

	_, err = s.Register("amina@example.com", "another1")
	assert.ErrorIs(t, err, ErrEmailTaken)

	got, err := s.Authenticate("AMINA@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Authenticate("amina@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Authenticate("nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Register("not-an-email", "secret1")
	assert.Error(t, err)
	_, err = s.Register("a@example.com", "123")
	assert.Error(t, err)
}

func TestSession(t *testing.T) {
	s := openTestStore(t)
	assert.Empty(t, s.CurrentUser())

	require.NoError(t, s.SignIn("a@example.com"))
	assert.Equal(t, "a@example.com", s.CurrentUser())
	assert.False(t, s.OnboardingCompleted("a@example.com"))

	require.NoError(t, s.Set(OnboardingKey("a@example.com"), "true"))
	assert.True(t, s.OnboardingCompleted("a@example.com"))

	require.NoError(t, s.SignOut())
	assert.Empty(t, s.CurrentUser())
}

func TestMalformedSessionMarker(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set(KeyUser, "not json"))

	assert.Empty(t, s.CurrentUser())
}

func TestResults(t *testing.T) {
	s := openTestStore(t)

	_, err := s.SaveResult(SaveResultRequest{Email: "a@example.com", TestID: 1, Score: 11, MaxScore: 10})
	assert.Error(t, err)

	_, err = s.SaveResult(SaveResultRequest{Email: "a@example.com", TestID: 1, Score: 4, MaxScore: 10})
	require.NoError(t, err)
	_, err = s.SaveResult(SaveResultRequest{Email: "a@example.com", TestID: 2, Score: 9, MaxScore: 10, Observation: "stable"})
	require.NoError(t, err)
	_, err = s.SaveResult(SaveResultRequest{Email: "b@example.com", TestID: 1, Score: 1, MaxScore: 10})
	require.NoError(t, err)

	results, err := s.Results("a@example.com")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	scores, err := s.LatestScores("a@example.com")
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 4, 2: 9}, scores)
}
