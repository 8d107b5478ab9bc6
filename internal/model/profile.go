package model

// UserProfile is the singleton per-learner profile record. Columns are
// snake_case by gorm convention, JSON stays camelCase; repositories are the
// only layer that sees both namings.
type UserProfile struct {
	BaseModel
	UserID      uint   `gorm:"uniqueIndex;not null" json:"userId"`
	DisplayName string `gorm:"size:100" json:"displayName"`
	Bio         string `gorm:"type:text" json:"bio"`
	SkillLevel  string `gorm:"size:20;default:'beginner'" json:"skillLevel"`
	FocusArea   string `gorm:"size:100" json:"focusArea"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
