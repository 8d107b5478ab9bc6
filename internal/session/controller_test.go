package session

import (
	"testing"

	"prompt_school_backend/internal/catalog"
	"prompt_school_backend/internal/model"
	"prompt_school_backend/internal/util"
	"prompt_school_backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)
	return NewController(cat)
}

func TestSelectTutorialPointsAtFirstLesson(t *testing.T) {
	s := newTestController(t)

	require.NoError(t, s.SelectTutorial("prompt-foundations"))

	v := s.Snapshot(model.NewUserProgress())
	assert.Equal(t, StateTutorialSelected, v.State)
	assert.Equal(t, "prompt-foundations", v.TutorialID)
	assert.Equal(t, "clarity-basics", v.LessonID)
}

func TestSelectTutorialUnknown(t *testing.T) {
	s := newTestController(t)

	err := s.SelectTutorial("nope")
	assert.ErrorIs(t, err, util.ErrTutorialNotFound)
	assert.Equal(t, StateCatalog, s.Snapshot(model.NewUserProgress()).State)
}

func TestSelectLessonRequiresPrerequisites(t *testing.T) {
	s := newTestController(t)
	p := model.NewUserProgress()

	require.NoError(t, s.SelectTutorial("prompt-foundations"))

	err := s.SelectLesson("context-and-roles", p)
	assert.ErrorIs(t, err, util.ErrLessonLocked)

	// The refused transition must not move the session.
	v := s.Snapshot(p)
	assert.Equal(t, StateTutorialSelected, v.State)
	assert.Equal(t, "clarity-basics", v.LessonID)

	p.CompletedLessons["clarity-basics"] = true
	require.NoError(t, s.SelectLesson("context-and-roles", p))
	v = s.Snapshot(p)
	assert.Equal(t, StateLessonActive, v.State)
	assert.Equal(t, "context-and-roles", v.LessonID)
}

func TestSelectLessonOutsideTutorial(t *testing.T) {
	s := newTestController(t)
	p := model.NewUserProgress()

	require.NoError(t, s.SelectTutorial("prompt-foundations"))

	err := s.SelectLesson("tool-calling", p)
	assert.ErrorIs(t, err, util.ErrLessonNotInScope)
}

func TestSelectLessonWithoutTutorial(t *testing.T) {
	s := newTestController(t)

	err := s.SelectLesson("clarity-basics", model.NewUserProgress())
	assert.ErrorIs(t, err, util.ErrNoActiveSession)
}

func TestStartExerciseSeedsBuffer(t *testing.T) {
	s := newTestController(t)
	p := model.NewUserProgress()

	require.NoError(t, s.SelectTutorial("prompt-foundations"))
	require.NoError(t, s.SelectLesson("clarity-basics", p))
	require.NoError(t, s.StartExercise("clarity-ex-1"))

	v := s.Snapshot(p)
	assert.Equal(t, StateExerciseActive, v.State)
	assert.Equal(t, "clarity-ex-1", v.ExerciseID)
	assert.Equal(t, "Summarize this article.", v.Buffer)
	assert.Nil(t, v.Verdict)
	assert.Empty(t, v.Hints)
}

func TestStartExerciseOutsideLesson(t *testing.T) {
	s := newTestController(t)
	p := model.NewUserProgress()

	require.NoError(t, s.SelectTutorial("prompt-foundations"))
	require.NoError(t, s.SelectLesson("clarity-basics", p))

	err := s.StartExercise("tools-ex-1")
	assert.ErrorIs(t, err, util.ErrLessonNotInScope)
}

func TestBufferAndVerdictLifecycle(t *testing.T) {
	s := newTestController(t)
	p := model.NewUserProgress()

	require.NoError(t, s.SelectTutorial("prompt-foundations"))
	require.NoError(t, s.SelectLesson("clarity-basics", p))
	require.NoError(t, s.StartExercise("clarity-ex-1"))

	require.NoError(t, s.UpdateBuffer("my attempt"))
	_, buf, err := s.Submission()
	require.NoError(t, err)
	assert.Equal(t, "my attempt", buf)

	require.NoError(t, s.SetVerdict(validation.Fail("not yet")))
	v := s.Snapshot(p)
	require.NotNil(t, v.Verdict)
	assert.False(t, v.Verdict.Success)

	// A failed check leaves the learner in the exercise to retry.
	assert.Equal(t, StateExerciseActive, v.State)
}

func TestBufferRequiresActiveExercise(t *testing.T) {
	s := newTestController(t)

	assert.ErrorIs(t, s.UpdateBuffer("text"), util.ErrNoActiveExercise)
	_, _, err := s.Submission()
	assert.ErrorIs(t, err, util.ErrNoActiveExercise)
	_, err = s.RevealNextHint()
	assert.ErrorIs(t, err, util.ErrNoActiveExercise)
}

func TestHintsRevealInOrderAndCap(t *testing.T) {
	s := newTestController(t)
	p := model.NewUserProgress()

	require.NoError(t, s.SelectTutorial("prompt-foundations"))
	require.NoError(t, s.SelectLesson("clarity-basics", p))
	require.NoError(t, s.StartExercise("clarity-ex-1"))

	hints, err := s.RevealNextHint()
	require.NoError(t, err)
	assert.Len(t, hints, 1)

	hints, err = s.RevealNextHint()
	require.NoError(t, err)
	assert.Len(t, hints, 2)

	// Past the last hint the list stops growing.
	for i := 0; i < 5; i++ {
		hints, err = s.RevealNextHint()
		require.NoError(t, err)
	}
	assert.Len(t, hints, 3)
}

func TestHintsResetOnRestart(t *testing.T) {
	s := newTestController(t)
	p := model.NewUserProgress()

	require.NoError(t, s.SelectTutorial("prompt-foundations"))
	require.NoError(t, s.SelectLesson("clarity-basics", p))
	require.NoError(t, s.StartExercise("clarity-ex-1"))

	_, err := s.RevealNextHint()
	require.NoError(t, err)
	require.NoError(t, s.StartExercise("clarity-ex-1"))

	assert.Empty(t, s.Snapshot(p).Hints)
}

func TestCloseExerciseReturnsToLesson(t *testing.T) {
	s := newTestController(t)
	p := model.NewUserProgress()

	require.NoError(t, s.SelectTutorial("prompt-foundations"))
	require.NoError(t, s.SelectLesson("clarity-basics", p))
	require.NoError(t, s.StartExercise("clarity-ex-1"))
	require.NoError(t, s.CloseExercise())

	v := s.Snapshot(p)
	assert.Equal(t, StateLessonActive, v.State)
	assert.Equal(t, "clarity-basics", v.LessonID)
	assert.Empty(t, v.ExerciseID)
	assert.Empty(t, v.Buffer)
}

func TestBackToCatalogFromAnywhere(t *testing.T) {
	s := newTestController(t)
	p := model.NewUserProgress()

	require.NoError(t, s.SelectTutorial("prompt-foundations"))
	require.NoError(t, s.SelectLesson("clarity-basics", p))
	require.NoError(t, s.StartExercise("clarity-ex-1"))

	s.BackToCatalog()

	v := s.Snapshot(p)
	assert.Equal(t, StateCatalog, v.State)
	assert.Empty(t, v.TutorialID)
	assert.Empty(t, v.LessonID)
	assert.Empty(t, v.ExerciseID)
}

func TestStatusOf(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)

	first, ok := cat.Lesson("clarity-basics")
	require.True(t, ok)
	second, ok := cat.Lesson("context-and-roles")
	require.True(t, ok)

	p := model.NewUserProgress()
	assert.Equal(t, LessonAvailable, StatusOf(first, p))
	assert.Equal(t, LessonLocked, StatusOf(second, p))

	p.CompletedLessons["clarity-basics"] = true
	assert.Equal(t, LessonCompleted, StatusOf(first, p))
	assert.Equal(t, LessonAvailable, StatusOf(second, p))
}

func TestSnapshotLessonStatuses(t *testing.T) {
	s := newTestController(t)
	p := model.NewUserProgress()
	p.CompletedLessons["clarity-basics"] = true

	require.NoError(t, s.SelectTutorial("prompt-foundations"))

	v := s.Snapshot(p)
	require.Len(t, v.Lessons, 3)
	assert.Equal(t, LessonCompleted, v.Lessons[0].Status)
	assert.Equal(t, LessonAvailable, v.Lessons[1].Status)
	assert.Equal(t, LessonLocked, v.Lessons[2].Status)
}
