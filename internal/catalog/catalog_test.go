package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildsConsistentIndex(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Tutorials)
	assert.NotEmpty(t, c.Patterns)
	assert.NotEmpty(t, c.Examples)
	assert.NotEmpty(t, c.Templates)

	for _, tut := range c.Tutorials {
		got, ok := c.Tutorial(tut.ID)
		require.True(t, ok)
		assert.Equal(t, tut.ID, got.ID)

		for _, l := range tut.Lessons {
			owner, ok := c.TutorialOfLesson(l.ID)
			require.True(t, ok)
			assert.Equal(t, tut.ID, owner)

			for _, e := range l.Exercises {
				lessonID, ok := c.LessonOfExercise(e.ID)
				require.True(t, ok)
				assert.Equal(t, l.ID, lessonID)
			}
		}
	}
}

func TestLookupMisses(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	_, ok := c.Tutorial("nope")
	assert.False(t, ok)
	_, ok = c.Lesson("nope")
	assert.False(t, ok)
	_, ok = c.Exercise("nope")
	assert.False(t, ok)
}

func TestPrerequisitesStayWithinTutorial(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	for _, tut := range c.Tutorials {
		for _, l := range tut.Lessons {
			for _, pre := range l.Prerequisites {
				owner, ok := c.TutorialOfLesson(pre)
				require.True(t, ok, "lesson %s requires unknown lesson %s", l.ID, pre)
				assert.Equal(t, tut.ID, owner)
			}
		}
	}
}

// Every shipped solution must pass its own rule, and every starter must fail
// it; otherwise the exercise is either unsolvable or solved on open.
func TestSolutionsPassAndStartersFail(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	for _, tut := range c.Tutorials {
		for _, l := range tut.Lessons {
			for _, e := range l.Exercises {
				v := e.Rule(e.Solution)
				assert.True(t, v.Success, "solution for %s rejected: %s", e.ID, v.Message)

				v = e.Rule(e.StarterCode)
				assert.False(t, v.Success, "starter for %s should not already pass", e.ID)
			}
		}
	}
}

func TestRulesAreDeterministicPerExercise(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	for _, tut := range c.Tutorials {
		for _, l := range tut.Lessons {
			for _, e := range l.Exercises {
				first := e.Rule(e.Solution)
				for i := 0; i < 3; i++ {
					assert.Equal(t, first, e.Rule(e.Solution), "rule for %s is not deterministic", e.ID)
				}
			}
		}
	}
}

func TestExercisesCarryHints(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	for _, tut := range c.Tutorials {
		for _, l := range tut.Lessons {
			for _, e := range l.Exercises {
				assert.NotEmpty(t, e.Hints, "exercise %s has no hints", e.ID)
				assert.NotEmpty(t, e.StarterCode, "exercise %s has no starter code", e.ID)
				assert.NotEmpty(t, e.Solution, "exercise %s has no solution", e.ID)
			}
		}
	}
}
