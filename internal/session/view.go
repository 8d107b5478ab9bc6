package session

import (
	"prompt_school_backend/internal/model"
	"prompt_school_backend/internal/validation"
)

type LessonView struct {
	ID     string       `json:"id"`
	Title  string       `json:"title"`
	Status LessonStatus `json:"status"`
}

// View is a read-only snapshot of the session for rendering. Lesson statuses
// are recomputed from progress on every snapshot.
type View struct {
	State      State               `json:"state"`
	TutorialID string              `json:"tutorialId,omitempty"`
	LessonID   string              `json:"lessonId,omitempty"`
	ExerciseID string              `json:"exerciseId,omitempty"`
	Buffer     string              `json:"buffer,omitempty"`
	Verdict    *validation.Verdict `json:"verdict,omitempty"`
	Hints      []string            `json:"hints,omitempty"`
	Lessons    []LessonView        `json:"lessons,omitempty"`
}

func (s *Controller) Snapshot(p *model.UserProgress) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		State:      s.state,
		TutorialID: s.tutorialID,
		LessonID:   s.lessonID,
		ExerciseID: s.exerciseID,
		Buffer:     s.buffer,
		Verdict:    s.verdict,
	}

	if s.exerciseID != "" {
		if e, ok := s.catalog.Exercise(s.exerciseID); ok {
			v.Hints = e.Hints[:s.hintsRevealed]
		}
	}

	if s.tutorialID != "" {
		if t, ok := s.catalog.Tutorial(s.tutorialID); ok {
			for i := range t.Lessons {
				l := &t.Lessons[i]
				v.Lessons = append(v.Lessons, LessonView{
					ID:     l.ID,
					Title:  l.Title,
					Status: StatusOf(l, p),
				})
			}
		}
	}

	return v
}
