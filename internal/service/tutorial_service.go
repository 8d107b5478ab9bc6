package service

import (
	"prompt_school_backend/internal/catalog"
	"prompt_school_backend/internal/model"
	"prompt_school_backend/internal/progress"
	"prompt_school_backend/internal/session"
	"prompt_school_backend/internal/util"
	"prompt_school_backend/internal/validation"
	"prompt_school_backend/pkg/logger"
	"prompt_school_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// TutorialService orchestrates the per-learner session state machine, the
// validation rules, and the progress tracker.
type TutorialService struct {
	Catalog  *catalog.Catalog
	Sessions *session.Manager
	Tracker  *progress.Tracker
}

func NewTutorialService(cat *catalog.Catalog, sessions *session.Manager, tracker *progress.Tracker) *TutorialService {
	return &TutorialService{
		Catalog:  cat,
		Sessions: sessions,
		Tracker:  tracker,
	}
}

// CheckResult is what a submission check reports back: the verdict plus the
// progress it produced. Saved is false when the durable write failed; the
// in-memory state still reflects the attempt.
type CheckResult struct {
	Verdict           validation.Verdict `json:"verdict"`
	Attempts          int                `json:"attempts"`
	Score             int                `json:"score"`
	ExerciseCompleted bool               `json:"exerciseCompleted"`
	Saved             bool               `json:"saved"`
}

// CompletionResult reports a lesson-completion call.
type CompletionResult struct {
	NewlyCompleted bool                `json:"newlyCompleted"`
	Progress       *model.UserProgress `json:"progress"`
	Saved          bool                `json:"saved"`
}

func (s *TutorialService) SelectTutorial(userID uint, tutorialID string) (*session.View, error) {
	sess := s.Sessions.Session(userID)
	if err := sess.SelectTutorial(tutorialID); err != nil {
		return nil, err
	}
	return s.snapshot(userID, sess)
}

func (s *TutorialService) SelectLesson(userID uint, lessonID string) (*session.View, error) {
	p, err := s.Tracker.Load(userID)
	if err != nil {
		return nil, err
	}

	sess := s.Sessions.Session(userID)
	if err := sess.SelectLesson(lessonID, p); err != nil {
		return nil, err
	}
	return s.snapshot(userID, sess)
}

func (s *TutorialService) StartExercise(userID uint, exerciseID string) (*session.View, error) {
	sess := s.Sessions.Session(userID)
	if err := sess.StartExercise(exerciseID); err != nil {
		return nil, err
	}
	return s.snapshot(userID, sess)
}

func (s *TutorialService) UpdateBuffer(userID uint, text string) error {
	return s.Sessions.Session(userID).UpdateBuffer(text)
}

// Check grades the current buffer against the active exercise's own rule and
// records the attempt. The session stays in the exercise either way.
func (s *TutorialService) Check(userID uint) (*CheckResult, error) {
	sess := s.Sessions.Session(userID)

	exercise, submission, err := sess.Submission()
	if err != nil {
		return nil, err
	}

	verdict := exercise.Rule(submission)
	if err := sess.SetVerdict(verdict); err != nil {
		return nil, err
	}

	outcome := "fail"
	if verdict.Success {
		outcome = "pass"
	}
	monitoring.ExerciseCheckCounter.WithLabelValues(exercise.ID, outcome).Inc()

	p, saveErr := s.Tracker.RecordExerciseAttempt(userID, exercise.ID, verdict)
	if p == nil {
		return nil, saveErr
	}
	if saveErr != nil {
		logger.Log.Error("progress not saved after exercise attempt",
			zap.Uint("user", userID), zap.String("exercise", exercise.ID), zap.Error(saveErr))
	}

	return &CheckResult{
		Verdict:           verdict,
		Attempts:          p.ExerciseAttempts[exercise.ID],
		Score:             p.Score,
		ExerciseCompleted: p.CompletedExercises[exercise.ID],
		Saved:             saveErr == nil,
	}, nil
}

func (s *TutorialService) RevealHint(userID uint) ([]string, error) {
	return s.Sessions.Session(userID).RevealNextHint()
}

func (s *TutorialService) CloseExercise(userID uint) (*session.View, error) {
	sess := s.Sessions.Session(userID)
	if err := sess.CloseExercise(); err != nil {
		return nil, err
	}
	return s.snapshot(userID, sess)
}

// CompleteLesson marks the session's active lesson complete. Idempotent: the
// lesson bonus is granted only by the first call.
func (s *TutorialService) CompleteLesson(userID uint, lessonID string) (*CompletionResult, error) {
	lesson, ok := s.Catalog.Lesson(lessonID)
	if !ok {
		return nil, util.ErrLessonNotFound
	}

	current, err := s.Tracker.Load(userID)
	if err != nil {
		return nil, err
	}
	if session.StatusOf(lesson, current) == session.LessonLocked {
		return nil, util.ErrLessonLocked
	}

	p, newly, saveErr := s.Tracker.CompleteLesson(userID, lessonID)
	if p == nil {
		return nil, saveErr
	}
	if saveErr != nil {
		logger.Log.Error("progress not saved after lesson completion",
			zap.Uint("user", userID), zap.String("lesson", lessonID), zap.Error(saveErr))
	}
	if newly {
		monitoring.LessonCompletionCounter.Inc()
	}

	return &CompletionResult{
		NewlyCompleted: newly,
		Progress:       p,
		Saved:          saveErr == nil,
	}, nil
}

func (s *TutorialService) BackToCatalog(userID uint) (*session.View, error) {
	sess := s.Sessions.Session(userID)
	sess.BackToCatalog()
	return s.snapshot(userID, sess)
}

func (s *TutorialService) Session(userID uint) (*session.View, error) {
	return s.snapshot(userID, s.Sessions.Session(userID))
}

func (s *TutorialService) Progress(userID uint) (*model.UserProgress, error) {
	return s.Tracker.Load(userID)
}

func (s *TutorialService) snapshot(userID uint, sess *session.Controller) (*session.View, error) {
	p, err := s.Tracker.Load(userID)
	if err != nil {
		return nil, err
	}
	v := sess.Snapshot(p)
	return &v, nil
}
