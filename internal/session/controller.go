// Package session drives a learner's path through the tutorial catalog:
// selecting tutorials and lessons, working exercises, and revealing hints.
// Prerequisite gating lives here; refused transitions mutate nothing.
package session

import (
	"prompt_school_backend/internal/catalog"
	"prompt_school_backend/internal/model"
	"prompt_school_backend/internal/util"
	"prompt_school_backend/internal/validation"
	"sync"
)

type State string

const (
	StateCatalog          State = "catalog"
	StateTutorialSelected State = "tutorial_selected"
	StateLessonActive     State = "lesson_active"
	StateExerciseActive   State = "exercise_active"
)

type LessonStatus string

const (
	LessonCompleted LessonStatus = "completed"
	LessonLocked    LessonStatus = "locked"
	LessonAvailable LessonStatus = "available"
)

// Controller is the per-learner tutorial state machine. All methods are safe
// for concurrent use; a refused transition leaves the state untouched.
type Controller struct {
	catalog *catalog.Catalog

	mu         sync.Mutex
	state      State
	tutorialID string
	lessonID   string
	exerciseID string
	buffer     string
	verdict    *validation.Verdict
	// hintsRevealed counts revealed hints; visible hints are hints[:hintsRevealed].
	// Monotone within one exercise visit, reset on startExercise.
	hintsRevealed int
}

func NewController(cat *catalog.Catalog) *Controller {
	return &Controller{catalog: cat, state: StateCatalog}
}

// SelectTutorial enters the tutorial and points the session at its first
// lesson. Allowed from any state.
func (s *Controller) SelectTutorial(tutorialID string) error {
	t, ok := s.catalog.Tutorial(tutorialID)
	if !ok {
		return util.ErrTutorialNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateTutorialSelected
	s.tutorialID = t.ID
	s.lessonID = ""
	if len(t.Lessons) > 0 {
		s.lessonID = t.Lessons[0].ID
	}
	s.clearExerciseLocked()
	return nil
}

// SelectLesson activates a lesson of the selected tutorial. The transition is
// gated: every prerequisite must be in the learner's completed set, otherwise
// the lesson stays locked and the session is unchanged.
func (s *Controller) SelectLesson(lessonID string, p *model.UserProgress) error {
	l, ok := s.catalog.Lesson(lessonID)
	if !ok {
		return util.ErrLessonNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateCatalog {
		return util.ErrNoActiveSession
	}
	if owner, _ := s.catalog.TutorialOfLesson(lessonID); owner != s.tutorialID {
		return util.ErrLessonNotInScope
	}
	for _, pre := range l.Prerequisites {
		if !p.CompletedLessons[pre] {
			return util.ErrLessonLocked
		}
	}

	s.state = StateLessonActive
	s.lessonID = l.ID
	s.clearExerciseLocked()
	return nil
}

// StartExercise opens an exercise of the active lesson: the submission buffer
// is seeded with the starter code, and any previous verdict and hint reveals
// are cleared.
func (s *Controller) StartExercise(exerciseID string) error {
	e, ok := s.catalog.Exercise(exerciseID)
	if !ok {
		return util.ErrExerciseNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLessonActive && s.state != StateExerciseActive {
		return util.ErrNoActiveSession
	}
	if owner, _ := s.catalog.LessonOfExercise(exerciseID); owner != s.lessonID {
		return util.ErrLessonNotInScope
	}

	s.state = StateExerciseActive
	s.exerciseID = e.ID
	s.buffer = e.StarterCode
	s.verdict = nil
	s.hintsRevealed = 0
	return nil
}

// UpdateBuffer replaces the submission buffer of the active exercise.
func (s *Controller) UpdateBuffer(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateExerciseActive {
		return util.ErrNoActiveExercise
	}
	s.buffer = text
	return nil
}

// Submission returns the active exercise and the current buffer contents.
func (s *Controller) Submission() (*catalog.Exercise, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateExerciseActive {
		return nil, "", util.ErrNoActiveExercise
	}
	e, _ := s.catalog.Exercise(s.exerciseID)
	return e, s.buffer, nil
}

// SetVerdict records the latest check result for display. The session stays
// in the exercise; the learner exits manually.
func (s *Controller) SetVerdict(v validation.Verdict) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateExerciseActive {
		return util.ErrNoActiveExercise
	}
	s.verdict = &v
	return nil
}

// RevealNextHint reveals one more hint, capped at the exercise's hint count.
// Hints never hide again until the exercise is restarted.
func (s *Controller) RevealNextHint() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateExerciseActive {
		return nil, util.ErrNoActiveExercise
	}
	e, _ := s.catalog.Exercise(s.exerciseID)
	if s.hintsRevealed < len(e.Hints) {
		s.hintsRevealed++
	}
	return e.Hints[:s.hintsRevealed], nil
}

// CloseExercise returns to the lesson view.
func (s *Controller) CloseExercise() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateExerciseActive {
		return util.ErrNoActiveExercise
	}
	s.state = StateLessonActive
	s.clearExerciseLocked()
	return nil
}

// BackToCatalog drops the tutorial selection. There is no terminal state; the
// learner can always return here.
func (s *Controller) BackToCatalog() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateCatalog
	s.tutorialID = ""
	s.lessonID = ""
	s.clearExerciseLocked()
}

func (s *Controller) clearExerciseLocked() {
	s.exerciseID = ""
	s.buffer = ""
	s.verdict = nil
	s.hintsRevealed = 0
}

// StatusOf derives a lesson's status from progress alone; nothing is stored.
func StatusOf(l *catalog.Lesson, p *model.UserProgress) LessonStatus {
	if p.CompletedLessons[l.ID] {
		return LessonCompleted
	}
	for _, pre := range l.Prerequisites {
		if !p.CompletedLessons[pre] {
			return LessonLocked
		}
	}
	return LessonAvailable
}
