// Package progress owns the learner's cumulative tutorial state and its
// write-through persistence.
package progress

import (
	"sync"

	"prompt_school_backend/internal/model"
	"prompt_school_backend/internal/validation"
)

// Score bonuses, each granted at most once per lesson/exercise.
const (
	LessonBonus   = 50
	ExerciseBonus = 10
)

// Store is the narrow persistence port for UserProgress. Load must return a
// zero-valued default when nothing is persisted yet, never an error for the
// absent case.
type Store interface {
	Load(userID uint) (*model.UserProgress, error)
	Save(userID uint, p *model.UserProgress) error
}

// Tracker applies progress mutations and persists the full state after each
// one. Writes are serialized per learner so last-writer-wins cannot lose an
// update to interleaving.
type Tracker struct {
	store Store

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewTracker(store Store) *Tracker {
	return &Tracker{
		store: store,
		locks: make(map[uint]*sync.Mutex),
	}
}

func (t *Tracker) learnerLock(userID uint) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[userID] = l
	}
	return l
}

// Load returns the learner's current progress, or the empty default.
func (t *Tracker) Load(userID uint) (*model.UserProgress, error) {
	l := t.learnerLock(userID)
	l.Lock()
	defer l.Unlock()
	return t.store.Load(userID)
}

// RecordExerciseAttempt increments the attempt counter unconditionally. On a
// successful verdict the exercise enters the completed set and earns the
// exercise bonus, both exactly once; repeated successes change nothing else.
//
// The returned state always reflects the mutation; a non-nil error means the
// durable write failed and the caller should surface a "not saved" warning.
func (t *Tracker) RecordExerciseAttempt(userID uint, exerciseID string, verdict validation.Verdict) (*model.UserProgress, error) {
	l := t.learnerLock(userID)
	l.Lock()
	defer l.Unlock()

	p, err := t.store.Load(userID)
	if err != nil {
		return nil, err
	}

	p.ExerciseAttempts[exerciseID]++
	if verdict.Success && !p.CompletedExercises[exerciseID] {
		p.CompletedExercises[exerciseID] = true
		p.Score += ExerciseBonus
	}

	return p, t.store.Save(userID, p)
}

// CompleteLesson is idempotent: the completed set gains the lesson and the
// lesson bonus is added exactly once. The bool reports whether this call was
// the first completion.
func (t *Tracker) CompleteLesson(userID uint, lessonID string) (*model.UserProgress, bool, error) {
	l := t.learnerLock(userID)
	l.Lock()
	defer l.Unlock()

	p, err := t.store.Load(userID)
	if err != nil {
		return nil, false, err
	}

	if p.CompletedLessons[lessonID] {
		return p, false, nil
	}

	p.CompletedLessons[lessonID] = true
	p.Score += LessonBonus

	return p, true, t.store.Save(userID, p)
}
