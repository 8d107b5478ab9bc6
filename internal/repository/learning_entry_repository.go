package repository

import (
	"prompt_school_backend/internal/model"

	"gorm.io/gorm"
)

type LearningEntryRepository struct {
	DB *gorm.DB
}

func NewLearningEntryRepository(db *gorm.DB) *LearningEntryRepository {
	return &LearningEntryRepository{DB: db}
}

// FindAllByUser returns the learner's entries newest first. No rows is an
// empty list, not an error.
func (r *LearningEntryRepository) FindAllByUser(userID uint) ([]model.LearningEntry, error) {
	entries := []model.LearningEntry{}
	err := r.DB.Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Find(&entries).Error
	return entries, err
}

// ReplaceAll swaps the learner's whole collection in one transaction: delete
// everything scoped to the learner, then insert the given list. A failed
// delete aborts the insert.
func (r *LearningEntryRepository) ReplaceAll(userID uint, entries []model.LearningEntry) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&model.LearningEntry{}).Error; err != nil {
			return err
		}
		for i := range entries {
			entries[i].ID = 0
			entries[i].UserID = userID
			if err := tx.Create(&entries[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
