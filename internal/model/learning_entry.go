package model

import "time"

// LearningEntry is a journal-style record of something the learner studied.
type LearningEntry struct {
	BaseModel
	UserID     uint      `gorm:"index;not null" json:"userId"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Topic      string    `gorm:"size:100" json:"topic"`
	Notes      string    `gorm:"type:text" json:"notes"`
	Insights   string    `gorm:"type:text" json:"insights"`
	RecordedAt time.Time `json:"recordedAt"`
}

func (LearningEntry) TableName() string {
	return "learning_entries"
}
