package repository

import (
	"prompt_school_backend/internal/model"

	"gorm.io/gorm"
)

type PromptRepository struct {
	DB *gorm.DB
}

func NewPromptRepository(db *gorm.DB) *PromptRepository {
	return &PromptRepository{DB: db}
}

func (r *PromptRepository) FindAllByUser(userID uint) ([]model.Prompt, error) {
	prompts := []model.Prompt{}
	err := r.DB.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&prompts).Error
	return prompts, err
}

// ReplaceAll deletes the learner's prompt library and re-inserts the given
// list atomically.
func (r *PromptRepository) ReplaceAll(userID uint, prompts []model.Prompt) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&model.Prompt{}).Error; err != nil {
			return err
		}
		for i := range prompts {
			prompts[i].ID = 0
			prompts[i].UserID = userID
			if err := tx.Create(&prompts[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
