package bilan

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitssourat/aji/internal/catalog"
	"github.com/ajitssourat/aji/internal/db"
)

func hipTest(t *testing.T) catalog.Item {
	t.Helper()
	test, err := catalog.FindTest(1)
	require.NoError(t, err)
	return test
}

type recorder struct {
	outcomes []Outcome
	err      error
}

func (r *recorder) Report(o Outcome) error {
	if r.err != nil {
		return r.err
	}
	r.outcomes = append(r.outcomes, o)
	return nil
}

func tickAll(d *Detail, n int) {
	for i := 0; i < n; i++ {
		d.Tick(d.Handle())
	}
}

func TestNewDetail(t *testing.T) {
	d := NewDetail(hipTest(t), nil)

	assert.Equal(t, PhaseTest, d.Phase())
	assert.Equal(t, 120, d.Remaining())
	assert.Equal(t, DefaultScore, d.Score())
	assert.False(t, d.Running())
}

func TestTimerExpiryOpensEvaluation(t *testing.T) {
	d := NewDetail(hipTest(t), nil)
	require.True(t, d.Toggle())

	tickAll(d, 120)

	assert.Equal(t, PhaseEvaluation, d.Phase())
	assert.Equal(t, 0, d.Remaining())
	assert.False(t, d.Running())
}

func TestFinishEarly(t *testing.T) {
	d := NewDetail(hipTest(t), nil)
	require.True(t, d.Toggle())
	tickAll(d, 30)
	handle := d.Handle()

	d.Finish()

	assert.Equal(t, PhaseEvaluation, d.Phase())
	assert.False(t, d.Tick(handle), "the timer must stop with the test phase")
	assert.Equal(t, 90, d.Remaining())
}

func TestControlsIgnoredDuringEvaluation(t *testing.T) {
	d := NewDetail(hipTest(t), nil)
	d.Finish()

	assert.False(t, d.Toggle())
	d.Reset()
	assert.False(t, d.Running())
	assert.Equal(t, PhaseEvaluation, d.Phase())
}

func TestResetDuringTest(t *testing.T) {
	d := NewDetail(hipTest(t), nil)
	require.True(t, d.Toggle())
	tickAll(d, 45)

	d.Reset()

	assert.Equal(t, 120, d.Remaining())
	assert.False(t, d.Running())
	assert.Equal(t, PhaseTest, d.Phase())
}

func TestScoreClamped(t *testing.T) {
	d := NewDetail(hipTest(t), nil)

	d.SetScore(42)
	assert.Equal(t, 10, d.Score())
	d.SetScore(-1)
	assert.Equal(t, 0, d.Score())
	d.AdjustScore(3)
	assert.Equal(t, 3, d.Score())
}

func TestSaveAndExitReportsOnce(t *testing.T) {
	rec := &recorder{}
	d := NewDetail(hipTest(t), rec)

	_, err := d.SaveAndExit()
	assert.ErrorIs(t, err, ErrNotEvaluated)

	d.Finish()
	d.SetScore(9)
	d.SetObservation("légère douleur à gauche")

	out, err := d.SaveAndExit()
	require.NoError(t, err)
	assert.Equal(t, Outcome{TestID: 1, Score: 9, MaxScore: 10, Observation: "légère douleur à gauche"}, out)
	assert.True(t, d.Saved())

	_, err = d.SaveAndExit()
	assert.ErrorIs(t, err, ErrAlreadySaved)
	assert.Len(t, rec.outcomes, 1)
}

func TestSaveAndExitReporterFailure(t *testing.T) {
	rec := &recorder{err: errors.New("disk full")}
	d := NewDetail(hipTest(t), rec)
	d.Finish()

	_, err := d.SaveAndExit()

	assert.Error(t, err)
	assert.False(t, d.Saved(), "a failed save can be retried")
}

func TestLeaveStopsTimer(t *testing.T) {
	d := NewDetail(hipTest(t), nil)
	require.True(t, d.Toggle())
	tickAll(d, 10)
	handle := d.Handle()

	d.Leave()
	for i := 0; i < 20; i++ {
		d.Tick(handle)
	}

	assert.Equal(t, 110, d.Remaining())
}

func TestOverviewFromCatalog(t *testing.T) {
	o := NewOverview(catalog.Tests(), nil)

	assert.Equal(t, 6, o.CompletedCount())
	assert.Equal(t, 75, o.Progress())
	assert.Equal(t, 7, o.AverageScore())
	assert.False(t, o.IsCompleted(5))
	_, ok := o.Score(5)
	assert.False(t, ok)
}

func TestOverviewWithSavedScores(t *testing.T) {
	o := NewOverview(catalog.Tests(), map[int]int{5: 6, 7: 4, 1: 10})

	assert.Equal(t, 8, o.CompletedCount())
	assert.Equal(t, 100, o.Progress())
	s, ok := o.Score(1)
	require.True(t, ok)
	assert.Equal(t, 10, s)
	// (10+7+9+2+6+5+4+8) / 8 = 6.375
	assert.Equal(t, 6, o.AverageScore())
}

func TestOverviewEmpty(t *testing.T) {
	o := NewOverview(nil, nil)

	assert.Equal(t, 0, o.Progress())
	assert.Equal(t, 0, o.AverageScore())
}

func TestStoreReporter(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "aji.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(conn) })
	store := db.NewStore(conn)

	d := NewDetail(hipTest(t), StoreReporter{Store: store, Email: "amina@example.com"})
	d.Finish()
	d.SetScore(6)
	_, err = d.SaveAndExit()
	require.NoError(t, err)

	o, err := LoadOverview(store, "amina@example.com")
	require.NoError(t, err)
	s, ok := o.Score(1)
	require.True(t, ok)
	assert.Equal(t, 6, s)
}
