package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFillsOlderPayloads(t *testing.T) {
	// A version-zero payload with missing maps, as an early client wrote it.
	var p UserProgress
	require.NoError(t, json.Unmarshal([]byte(`{"score":30}`), &p))

	p.Normalize()

	assert.Equal(t, ProgressSchemaVersion, p.Version)
	assert.NotNil(t, p.CompletedLessons)
	assert.NotNil(t, p.CompletedExercises)
	assert.NotNil(t, p.ExerciseAttempts)
	assert.Equal(t, 30, p.Score)
}

func TestProgressRoundTrip(t *testing.T) {
	p := NewUserProgress()
	p.CompletedLessons["l1"] = true
	p.ExerciseAttempts["e1"] = 4
	p.Score = 60

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var back UserProgress
	require.NoError(t, json.Unmarshal(raw, &back))
	back.Normalize()

	assert.Equal(t, p.Version, back.Version)
	assert.True(t, back.CompletedLessons["l1"])
	assert.Equal(t, 4, back.ExerciseAttempts["e1"])
	assert.Equal(t, 60, back.Score)
}
