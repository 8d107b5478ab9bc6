package repository

import (
	"testing"
	"time"

	"prompt_school_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserProfile{},
		&model.LearningEntry{},
		&model.Workflow{},
		&model.Prompt{},
		&model.DeviceConfiguration{},
	))
	return db
}

func promptTitles(prompts []model.Prompt) []string {
	titles := make([]string, len(prompts))
	for i, p := range prompts {
		titles[i] = p.Title
	}
	return titles
}

func TestPromptReplaceAllRoundTrip(t *testing.T) {
	repo := NewPromptRepository(newTestDB(t))

	saved := []model.Prompt{
		{Title: "Review prompt", Body: "You are a reviewer."},
		{Title: "Summary prompt", Body: "Summarize for a PM."},
	}
	require.NoError(t, repo.ReplaceAll(1, saved))

	got, err := repo.FindAllByUser(1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Review prompt", "Summary prompt"}, promptTitles(got))

	// A second save replaces the whole set; nothing from the first survives.
	require.NoError(t, repo.ReplaceAll(1, []model.Prompt{
		{Title: "Only prompt", Body: "Just this one."},
	}))

	got, err = repo.FindAllByUser(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Only prompt"}, promptTitles(got))
}

func TestPromptReplaceAllEmptyClearsLibrary(t *testing.T) {
	repo := NewPromptRepository(newTestDB(t))

	require.NoError(t, repo.ReplaceAll(1, []model.Prompt{{Title: "One", Body: "body"}}))
	require.NoError(t, repo.ReplaceAll(1, nil))

	got, err := repo.FindAllByUser(1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReplaceAllScopedToLearner(t *testing.T) {
	repo := NewWorkflowRepository(newTestDB(t))

	require.NoError(t, repo.ReplaceAll(1, []model.Workflow{{Name: "Mine", Nodes: "[]", Edges: "[]"}}))
	require.NoError(t, repo.ReplaceAll(2, []model.Workflow{{Name: "Theirs", Nodes: "[]", Edges: "[]"}}))

	require.NoError(t, repo.ReplaceAll(1, nil))

	mine, err := repo.FindAllByUser(1)
	require.NoError(t, err)
	assert.Empty(t, mine)

	theirs, err := repo.FindAllByUser(2)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, "Theirs", theirs[0].Name)
	assert.Equal(t, uint(2), theirs[0].UserID)
}

func TestReplaceAllForcesOwnership(t *testing.T) {
	repo := NewWorkflowRepository(newTestDB(t))

	// Client-supplied IDs and UserIDs are overwritten with the caller's scope.
	require.NoError(t, repo.ReplaceAll(1, []model.Workflow{
		{BaseModel: model.BaseModel{ID: 99}, UserID: 7, Name: "Smuggled", Nodes: "[]", Edges: "[]"},
	}))

	other, err := repo.FindAllByUser(7)
	require.NoError(t, err)
	assert.Empty(t, other)

	mine, err := repo.FindAllByUser(1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, uint(1), mine[0].UserID)
	assert.NotEqual(t, uint(99), mine[0].ID)
}

func TestReplaceAllRollsBackOnInsertFailure(t *testing.T) {
	db := newTestDB(t)
	repo := NewPromptRepository(db)

	require.NoError(t, db.Exec(
		"CREATE UNIQUE INDEX idx_prompts_user_title ON prompts(user_id, title)").Error)

	require.NoError(t, repo.ReplaceAll(1, []model.Prompt{{Title: "Keep me", Body: "original"}}))

	// The duplicate title fails mid-insert; the whole save must roll back,
	// including the delete that preceded it.
	err := repo.ReplaceAll(1, []model.Prompt{
		{Title: "Dup", Body: "first"},
		{Title: "Dup", Body: "second"},
	})
	require.Error(t, err)

	got, err := repo.FindAllByUser(1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Keep me", got[0].Title)
	assert.Equal(t, "original", got[0].Body)
}

func TestLearningEntriesNewestFirst(t *testing.T) {
	repo := NewLearningEntryRepository(newTestDB(t))

	older := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.ReplaceAll(1, []model.LearningEntry{
		{Title: "Older", RecordedAt: older},
		{Title: "Newer", RecordedAt: newer},
	}))

	got, err := repo.FindAllByUser(1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Newer", got[0].Title)
	assert.Equal(t, "Older", got[1].Title)
}

func TestProfileUpsertKeyedOnLearner(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))

	none, err := repo.FindByUserID(1)
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, repo.Upsert(&model.UserProfile{UserID: 1, DisplayName: "Ada", SkillLevel: "beginner"}))
	require.NoError(t, repo.Upsert(&model.UserProfile{UserID: 1, DisplayName: "Ada L.", SkillLevel: "advanced"}))

	got, err := repo.FindByUserID(1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ada L.", got.DisplayName)
	assert.Equal(t, "advanced", got.SkillLevel)

	var count int64
	require.NoError(t, repo.DB.Model(&model.UserProfile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "upsert must not grow a second row")
}

func TestDeviceConfigUpsertForUserKeepsBinding(t *testing.T) {
	repo := NewDeviceConfigRepository(newTestDB(t))

	// The identity flow binds learner 1 to their device.
	require.NoError(t, repo.Upsert(&model.DeviceConfiguration{DeviceID: "device-a", UserID: 1}))

	// Learner 1 updates preferences; the binding survives.
	require.NoError(t, repo.UpsertForUser(&model.DeviceConfiguration{UserID: 1, Theme: "light", EditorFontSize: 16}))

	got, err := repo.FindByUserID(1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "device-a", got.DeviceID)
	assert.Equal(t, "light", got.Theme)
}

func TestDeviceConfigUpsertForUserCannotStealDevice(t *testing.T) {
	repo := NewDeviceConfigRepository(newTestDB(t))

	require.NoError(t, repo.Upsert(&model.DeviceConfiguration{DeviceID: "device-a", UserID: 1}))

	// Learner 2 submits learner 1's device id; it must not rebind the device.
	require.NoError(t, repo.UpsertForUser(&model.DeviceConfiguration{UserID: 2, DeviceID: "device-a", Theme: "light"}))

	owner, err := repo.FindByDeviceID("device-a")
	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, uint(1), owner.UserID, "the identity mapping stays with its learner")

	mine, err := repo.FindByUserID(2)
	require.NoError(t, err)
	require.NotNil(t, mine)
	assert.NotEqual(t, "device-a", mine.DeviceID)
	assert.NotEmpty(t, mine.DeviceID)
	assert.Equal(t, "light", mine.Theme)
}

func TestDeviceConfigUpsertForUserGeneratesDeviceID(t *testing.T) {
	repo := NewDeviceConfigRepository(newTestDB(t))

	// Two learners without identity rows save preferences; each gets a
	// distinct generated device id so the unique index cannot collide.
	first := &model.DeviceConfiguration{UserID: 1, Theme: "dark"}
	require.NoError(t, repo.UpsertForUser(first))
	second := &model.DeviceConfiguration{UserID: 2, Theme: "dark"}
	require.NoError(t, repo.UpsertForUser(second))

	assert.NotEmpty(t, first.DeviceID)
	assert.NotEmpty(t, second.DeviceID)
	assert.NotEqual(t, first.DeviceID, second.DeviceID)
}
