package service

import (
	"testing"

	"prompt_school_backend/internal/catalog"
	"prompt_school_backend/internal/progress"
	"prompt_school_backend/internal/session"
	"prompt_school_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTutorialFixture(t *testing.T) (*TutorialService, *progress.MemoryStore) {
	t.Helper()

	cat, err := catalog.New()
	require.NoError(t, err)

	store := progress.NewMemoryStore()
	return NewTutorialService(cat, session.NewManager(cat), progress.NewTracker(store)), store
}

func TestCheckFailThenPass(t *testing.T) {
	svc, _ := newTutorialFixture(t)
	const userID = 1

	_, err := svc.SelectTutorial(userID, "prompt-foundations")
	require.NoError(t, err)
	_, err = svc.SelectLesson(userID, "clarity-basics")
	require.NoError(t, err)
	_, err = svc.StartExercise(userID, "clarity-ex-1")
	require.NoError(t, err)

	// The starter code never passes; the first check fails and counts.
	result, err := svc.Check(userID)
	require.NoError(t, err)
	assert.False(t, result.Verdict.Success)
	assert.NotEmpty(t, result.Verdict.Message)
	assert.Equal(t, 1, result.Attempts)
	assert.False(t, result.ExerciseCompleted)
	assert.Zero(t, result.Score)
	assert.True(t, result.Saved)

	ex, _ := svc.Catalog.Exercise("clarity-ex-1")
	require.NoError(t, svc.UpdateBuffer(userID, ex.Solution))

	result, err = svc.Check(userID)
	require.NoError(t, err)
	assert.True(t, result.Verdict.Success)
	assert.Equal(t, 2, result.Attempts)
	assert.True(t, result.ExerciseCompleted)
	assert.Equal(t, progress.ExerciseBonus, result.Score)

	// Passing again counts the attempt but the bonus stays granted once.
	result, err = svc.Check(userID)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, progress.ExerciseBonus, result.Score)
}

func TestCheckWithoutActiveExercise(t *testing.T) {
	svc, _ := newTutorialFixture(t)

	_, err := svc.Check(1)
	assert.ErrorIs(t, err, util.ErrNoActiveExercise)
}

func TestCompleteLessonRefusesLocked(t *testing.T) {
	svc, _ := newTutorialFixture(t)
	const userID = 1

	_, err := svc.CompleteLesson(userID, "context-and-roles")
	assert.ErrorIs(t, err, util.ErrLessonLocked)

	result, err := svc.CompleteLesson(userID, "clarity-basics")
	require.NoError(t, err)
	assert.True(t, result.NewlyCompleted)
	assert.True(t, result.Saved)
	assert.Equal(t, progress.LessonBonus, result.Progress.Score)

	// The prerequisite is now met.
	result, err = svc.CompleteLesson(userID, "context-and-roles")
	require.NoError(t, err)
	assert.True(t, result.NewlyCompleted)
	assert.Equal(t, 2*progress.LessonBonus, result.Progress.Score)
}

func TestCompleteLessonIdempotent(t *testing.T) {
	svc, _ := newTutorialFixture(t)

	first, err := svc.CompleteLesson(1, "clarity-basics")
	require.NoError(t, err)
	assert.True(t, first.NewlyCompleted)

	second, err := svc.CompleteLesson(1, "clarity-basics")
	require.NoError(t, err)
	assert.False(t, second.NewlyCompleted)
	assert.Equal(t, first.Progress.Score, second.Progress.Score)
}

func TestCompleteLessonUnknown(t *testing.T) {
	svc, _ := newTutorialFixture(t)

	_, err := svc.CompleteLesson(1, "nope")
	assert.ErrorIs(t, err, util.ErrLessonNotFound)
}

func TestCompletionUnlocksNextLessonInSession(t *testing.T) {
	svc, _ := newTutorialFixture(t)
	const userID = 1

	_, err := svc.SelectTutorial(userID, "prompt-foundations")
	require.NoError(t, err)

	_, err = svc.SelectLesson(userID, "context-and-roles")
	assert.ErrorIs(t, err, util.ErrLessonLocked)

	_, err = svc.CompleteLesson(userID, "clarity-basics")
	require.NoError(t, err)

	view, err := svc.SelectLesson(userID, "context-and-roles")
	require.NoError(t, err)
	assert.Equal(t, session.StateLessonActive, view.State)
	assert.Equal(t, "context-and-roles", view.LessonID)
}

func TestSessionsAreIsolatedPerLearner(t *testing.T) {
	svc, _ := newTutorialFixture(t)

	_, err := svc.SelectTutorial(1, "prompt-foundations")
	require.NoError(t, err)

	view, err := svc.Session(2)
	require.NoError(t, err)
	assert.Equal(t, session.StateCatalog, view.State)
}

func TestProgressSurvivesSessionReset(t *testing.T) {
	svc, store := newTutorialFixture(t)
	const userID = 1

	_, err := svc.CompleteLesson(userID, "clarity-basics")
	require.NoError(t, err)

	_, err = svc.BackToCatalog(userID)
	require.NoError(t, err)

	p, err := svc.Progress(userID)
	require.NoError(t, err)
	assert.True(t, p.CompletedLessons["clarity-basics"])

	stored, err := store.Load(userID)
	require.NoError(t, err)
	assert.True(t, stored.CompletedLessons["clarity-basics"])
}

func TestRevealHintFlow(t *testing.T) {
	svc, _ := newTutorialFixture(t)
	const userID = 1

	_, err := svc.SelectTutorial(userID, "prompt-foundations")
	require.NoError(t, err)
	_, err = svc.SelectLesson(userID, "clarity-basics")
	require.NoError(t, err)
	_, err = svc.StartExercise(userID, "clarity-ex-1")
	require.NoError(t, err)

	hints, err := svc.RevealHint(userID)
	require.NoError(t, err)
	assert.Len(t, hints, 1)

	view, err := svc.Session(userID)
	require.NoError(t, err)
	assert.Len(t, view.Hints, 1)
}
