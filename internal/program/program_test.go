package program

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitssourat/aji/internal/catalog"
	"github.com/ajitssourat/aji/internal/db"
)

type memStorage map[string]string

func (m memStorage) GetJSON(key string, v any) (bool, error) {
	raw, ok := m[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal([]byte(raw), v)
}

func (m memStorage) SetJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m[key] = string(raw)
	return nil
}

type failingStorage struct{ memStorage }

func (failingStorage) SetJSON(string, any) error { return errors.New("read-only") }

func morningMobility(t *testing.T) catalog.Item {
	t.Helper()
	s, err := catalog.FindSession(1)
	require.NoError(t, err)
	return s
}

func tickN(p *Player, n int) {
	for i := 0; i < n; i++ {
		p.Tick(p.Handle())
	}
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(morningMobility(t), nil, nil)

	assert.Equal(t, 0, p.Index())
	assert.Equal(t, 180, p.Remaining())
	assert.Equal(t, 900, p.SessionRemaining())
	assert.Equal(t, 25, p.Progress())
	ex, ok := p.Exercise()
	require.True(t, ok)
	assert.Equal(t, "warmup", ex.Name)
	next, ok := p.Upcoming()
	require.True(t, ok)
	assert.Equal(t, "hipMobilityEx", next.Name)
}

func TestSessionCountdownInLockstep(t *testing.T) {
	p := NewPlayer(morningMobility(t), nil, nil)
	require.True(t, p.Toggle())

	tickN(p, 200)

	assert.Equal(t, 1, p.Index(), "automatic expiry moves on to the next exercise")
	assert.True(t, p.Running())
	assert.Equal(t, 280, p.Remaining())
	assert.Equal(t, 700, p.SessionRemaining())
	assert.Equal(t, 50, p.Progress())
}

func TestStaleTicksDoNotMoveSessionCountdown(t *testing.T) {
	p := NewPlayer(morningMobility(t), nil, nil)
	require.True(t, p.Toggle())
	tickN(p, 10)
	old := p.Handle()

	p.Toggle()
	p.Tick(old)
	p.Tick(old)

	assert.Equal(t, 890, p.SessionRemaining())
	assert.Equal(t, 170, p.Remaining())
}

func TestSessionCountdownClampedAtZero(t *testing.T) {
	short := catalog.Item{ID: 9, Kind: catalog.KindSession, Minutes: 1,
		Exercises: []catalog.Exercise{{Name: "long", Minutes: 2}}}
	p := NewPlayer(short, nil, nil)
	require.True(t, p.Toggle())

	tickN(p, 90)

	assert.Equal(t, 0, p.SessionRemaining())
	assert.Equal(t, 30, p.Remaining())
}

func TestResetOnlyRewindsCurrentExercise(t *testing.T) {
	p := NewPlayer(morningMobility(t), nil, nil)
	require.True(t, p.Toggle())
	tickN(p, 200)

	p.Reset()

	assert.False(t, p.Running())
	assert.Equal(t, 1, p.Index())
	assert.Equal(t, 300, p.Remaining())
	assert.Equal(t, 700, p.SessionRemaining(), "session countdown is not rewound")
	assert.Equal(t, 50, p.Progress())
}

func TestNextLandsPaused(t *testing.T) {
	p := NewPlayer(morningMobility(t), nil, nil)
	require.True(t, p.Toggle())
	tickN(p, 5)

	p.Next()

	assert.Equal(t, 1, p.Index())
	assert.False(t, p.Running())
	assert.Equal(t, 300, p.Remaining())
}

func TestCompletionRecordedOnce(t *testing.T) {
	store := memStorage{}
	rec := LoadRecord(store, "amina@example.com")
	calls := 0
	p := NewPlayer(morningMobility(t), rec, func(id int) {
		calls++
		assert.Equal(t, 1, id)
	})

	for i := 0; i < 10; i++ {
		p.Next()
	}

	assert.True(t, p.Done())
	assert.NoError(t, p.Err())
	assert.Equal(t, 1, calls)
	assert.Equal(t, []int{1}, rec.IDs())
	assert.JSONEq(t, `[1]`, store[db.CompletedSessionsKey("amina@example.com")])
}

func TestFullRunCompletes(t *testing.T) {
	rec := LoadRecord(memStorage{}, "")
	p := NewPlayer(morningMobility(t), rec, nil)
	require.True(t, p.Toggle())

	tickN(p, 900)

	assert.True(t, p.Done())
	assert.Equal(t, 0, p.SessionRemaining())
	assert.Equal(t, 0, p.Remaining())
	assert.True(t, rec.Contains(1))
}

func TestLeaveStopsTimer(t *testing.T) {
	p := NewPlayer(morningMobility(t), nil, nil)
	require.True(t, p.Toggle())
	handle := p.Handle()

	p.Leave()
	p.Tick(handle)

	assert.Equal(t, 180, p.Remaining())
	assert.Equal(t, 900, p.SessionRemaining())
}

func TestRecordAddIdempotent(t *testing.T) {
	store := memStorage{}
	rec := LoadRecord(store, "")

	require.NoError(t, rec.Add(2))
	require.NoError(t, rec.Add(2))

	assert.Equal(t, 1, rec.Count())
	assert.JSONEq(t, `[2]`, store[db.KeyCompletedSessions])
}

func TestRecordMalformedIsEmpty(t *testing.T) {
	store := memStorage{db.KeyCompletedSessions: "{not json"}

	rec := LoadRecord(store, "")

	assert.Equal(t, 0, rec.Count())
	require.NoError(t, rec.Add(3))
	assert.Equal(t, []int{3}, rec.IDs())
}

func TestRecordWriteFailure(t *testing.T) {
	rec := LoadRecord(failingStorage{memStorage{}}, "")

	err := rec.Add(1)

	assert.Error(t, err)
	assert.False(t, rec.Contains(1))
}

func TestPlayerReportsRecordFailure(t *testing.T) {
	rec := LoadRecord(failingStorage{memStorage{}}, "")
	done := false
	p := NewPlayer(morningMobility(t), rec, func(int) { done = true })

	for i := 0; i < 4; i++ {
		p.Next()
	}

	assert.True(t, done)
	assert.Error(t, p.Err())
}

func TestRecordPersistsPerUser(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "aji.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(conn) })
	store := db.NewStore(conn)

	require.NoError(t, LoadRecord(store, "a@example.com").Add(1))
	require.NoError(t, LoadRecord(store, "a@example.com").Add(3))

	assert.Equal(t, []int{1, 3}, LoadRecord(store, "a@example.com").IDs())
	assert.Equal(t, 0, LoadRecord(store, "b@example.com").Count())
}
