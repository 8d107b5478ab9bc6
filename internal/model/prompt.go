package model

// Prompt is a saved prompt text the learner keeps in their library.
type Prompt struct {
	BaseModel
	UserID   uint   `gorm:"index;not null" json:"userId"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Body     string `gorm:"type:text;not null" json:"body"`
	Category string `gorm:"size:100" json:"category"`
	Tags     string `gorm:"size:255" json:"tags"`
}

func (Prompt) TableName() string {
	return "prompts"
}
