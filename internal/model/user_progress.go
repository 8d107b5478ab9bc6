package model

// ProgressSchemaVersion is written into every persisted progress payload.
// Older payloads (version zero) are default-filled on load.
const ProgressSchemaVersion = 1

// UserProgress is the learner's cumulative tutorial state. It is serialized
// as a single JSON payload per learner; the sets are represented as maps so
// membership checks stay O(1) and duplicates are impossible by construction.
type UserProgress struct {
	Version            int             `json:"version"`
	CompletedLessons   map[string]bool `json:"completedLessons"`
	CompletedExercises map[string]bool `json:"completedExercises"`
	ExerciseAttempts   map[string]int  `json:"exerciseAttempts"`
	Score              int             `json:"score"`
}

// NewUserProgress returns the zero-valued default used when nothing has been
// persisted yet.
func NewUserProgress() *UserProgress {
	return &UserProgress{
		Version:            ProgressSchemaVersion,
		CompletedLessons:   make(map[string]bool),
		CompletedExercises: make(map[string]bool),
		ExerciseAttempts:   make(map[string]int),
	}
}

// Normalize default-fills maps that are missing from older payloads.
func (p *UserProgress) Normalize() {
	if p.CompletedLessons == nil {
		p.CompletedLessons = make(map[string]bool)
	}
	if p.CompletedExercises == nil {
		p.CompletedExercises = make(map[string]bool)
	}
	if p.ExerciseAttempts == nil {
		p.ExerciseAttempts = make(map[string]int)
	}
	if p.Version < ProgressSchemaVersion {
		p.Version = ProgressSchemaVersion
	}
}

// ProgressRecord is the durable row backing a learner's UserProgress:
// one row per learner, the whole state as one JSON payload.
type ProgressRecord struct {
	BaseModel
	UserID  uint   `gorm:"uniqueIndex;not null" json:"userId"`
	Payload string `gorm:"type:json" json:"payload"`
}

func (ProgressRecord) TableName() string {
	return "user_progress_records"
}
