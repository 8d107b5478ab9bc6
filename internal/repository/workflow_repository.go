package repository

import (
	"prompt_school_backend/internal/model"

	"gorm.io/gorm"
)

type WorkflowRepository struct {
	DB *gorm.DB
}

func NewWorkflowRepository(db *gorm.DB) *WorkflowRepository {
	return &WorkflowRepository{DB: db}
}

func (r *WorkflowRepository) FindAllByUser(userID uint) ([]model.Workflow, error) {
	workflows := []model.Workflow{}
	err := r.DB.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&workflows).Error
	return workflows, err
}

// ReplaceAll deletes the learner's saved workflows and re-inserts the given
// list atomically.
func (r *WorkflowRepository) ReplaceAll(userID uint, workflows []model.Workflow) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&model.Workflow{}).Error; err != nil {
			return err
		}
		for i := range workflows {
			workflows[i].ID = 0
			workflows[i].UserID = userID
			if err := tx.Create(&workflows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
