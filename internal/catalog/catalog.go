package catalog

import "fmt"

// Catalog indexes the static content for O(1) lookup. Construct once at
// startup and share; all methods are read-only.
type Catalog struct {
	Tutorials []Tutorial
	Patterns  []Pattern
	Examples  []ExampleEntry
	Templates []CodeTemplate

	tutorialsByID  map[string]*Tutorial
	lessonsByID    map[string]*Lesson
	exercisesByID  map[string]*Exercise
	lessonTutorial map[string]string
	exerciseLesson map[string]string
}

func New() (*Catalog, error) {
	c := &Catalog{
		Tutorials: Tutorials(),
		Patterns:  Patterns(),
		Examples:  Examples(),
		Templates: Templates(),

		tutorialsByID:  make(map[string]*Tutorial),
		lessonsByID:    make(map[string]*Lesson),
		exercisesByID:  make(map[string]*Exercise),
		lessonTutorial: make(map[string]string),
		exerciseLesson: make(map[string]string),
	}

	for ti := range c.Tutorials {
		t := &c.Tutorials[ti]
		if _, dup := c.tutorialsByID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate tutorial id %q", t.ID)
		}
		c.tutorialsByID[t.ID] = t

		for li := range t.Lessons {
			l := &t.Lessons[li]
			if _, dup := c.lessonsByID[l.ID]; dup {
				return nil, fmt.Errorf("duplicate lesson id %q", l.ID)
			}
			c.lessonsByID[l.ID] = l
			c.lessonTutorial[l.ID] = t.ID

			for ei := range l.Exercises {
				e := &l.Exercises[ei]
				if _, dup := c.exercisesByID[e.ID]; dup {
					return nil, fmt.Errorf("duplicate exercise id %q", e.ID)
				}
				if e.Rule == nil {
					return nil, fmt.Errorf("exercise %q has no validation rule", e.ID)
				}
				c.exercisesByID[e.ID] = e
				c.exerciseLesson[e.ID] = l.ID
			}
		}
	}

	// Prerequisites must point at lessons within the same tutorial.
	for lessonID, l := range c.lessonsByID {
		for _, pre := range l.Prerequisites {
			preTutorial, ok := c.lessonTutorial[pre]
			if !ok {
				return nil, fmt.Errorf("lesson %q requires unknown lesson %q", lessonID, pre)
			}
			if preTutorial != c.lessonTutorial[lessonID] {
				return nil, fmt.Errorf("lesson %q requires %q from another tutorial", lessonID, pre)
			}
		}
	}

	return c, nil
}

func (c *Catalog) Tutorial(id string) (*Tutorial, bool) {
	t, ok := c.tutorialsByID[id]
	return t, ok
}

func (c *Catalog) Lesson(id string) (*Lesson, bool) {
	l, ok := c.lessonsByID[id]
	return l, ok
}

func (c *Catalog) Exercise(id string) (*Exercise, bool) {
	e, ok := c.exercisesByID[id]
	return e, ok
}

// TutorialOfLesson reports which tutorial a lesson belongs to.
func (c *Catalog) TutorialOfLesson(lessonID string) (string, bool) {
	id, ok := c.lessonTutorial[lessonID]
	return id, ok
}

// LessonOfExercise reports which lesson an exercise belongs to.
func (c *Catalog) LessonOfExercise(exerciseID string) (string, bool) {
	id, ok := c.exerciseLesson[exerciseID]
	return id, ok
}
