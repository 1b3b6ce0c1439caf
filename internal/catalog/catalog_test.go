package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSizes(t *testing.T) {
	assert.Len(t, Tests(), 8)
	assert.Len(t, Sessions(), 3)
}

func TestIDsAreUnique(t *testing.T) {
	for name, items := range map[string][]Item{"tests": Tests(), "sessions": Sessions()} {
		seen := map[int]bool{}
		for _, it := range items {
			assert.False(t, seen[it.ID], "%s: duplicate id %d", name, it.ID)
			seen[it.ID] = true
		}
	}
}

func TestScoresWithinMax(t *testing.T) {
	for _, it := range Tests() {
		if it.Score == nil {
			assert.Equal(t, StatusPending, it.Status, "test %d", it.ID)
			continue
		}
		assert.GreaterOrEqual(t, *it.Score, 0)
		assert.LessOrEqual(t, *it.Score, it.MaxScore)
	}
}

func TestSessionDurationMatchesExercises(t *testing.T) {
	for _, s := range Sessions() {
		total := 0
		for _, ex := range s.Exercises {
			total += ex.Minutes
		}
		assert.Equal(t, s.Minutes, total, "session %d", s.ID)
	}
}

func TestSteps(t *testing.T) {
	test, err := FindTest(1)
	require.NoError(t, err)
	steps := test.Steps()
	require.Len(t, steps, 1)
	assert.Equal(t, 120, steps[0].Seconds())

	session, err := FindSession(2)
	require.NoError(t, err)
	steps = session.Steps()
	require.Len(t, steps, 4)
	assert.Equal(t, "staticBalance", steps[0].Name)
	assert.Equal(t, "coolDown", steps[3].Name)
}

func TestFindUnknown(t *testing.T) {
	_, err := FindSession(42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = FindTest(0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogIsNotMutable(t *testing.T) {
	items := Sessions()
	items[0].Exercises[0].Minutes = 99
	items[0].Name = "changed"

	again, err := FindSession(items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 3, again.Exercises[0].Minutes)
	assert.Equal(t, "morningMobility", again.Name)

	tests := Tests()
	*tests[0].Score = 0
	first, err := FindTest(1)
	require.NoError(t, err)
	assert.Equal(t, 8, *first.Score)
}
