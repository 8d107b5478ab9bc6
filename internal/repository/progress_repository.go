package repository

import (
	"encoding/json"
	"errors"
	"prompt_school_backend/internal/model"

	"gorm.io/gorm"
)

// ProgressRepository persists a learner's whole UserProgress as one JSON
// payload per row. It satisfies the progress.Store port.
type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Load returns the persisted progress, or the zero-valued default when no row
// exists yet. Absence is not an error.
func (r *ProgressRepository) Load(userID uint) (*model.UserProgress, error) {
	var rec model.ProgressRecord
	err := r.DB.Where("user_id = ?", userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.NewUserProgress(), nil
	}
	if err != nil {
		return nil, err
	}

	var p model.UserProgress
	if err := json.Unmarshal([]byte(rec.Payload), &p); err != nil {
		return nil, err
	}
	p.Normalize()
	return &p, nil
}

// Save writes the full state, last-writer-wins.
func (r *ProgressRepository) Save(userID uint, p *model.UserProgress) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}

	var rec model.ProgressRecord
	err = r.DB.Where("user_id = ?", userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = model.ProgressRecord{UserID: userID, Payload: string(raw)}
		return r.DB.Create(&rec).Error
	}
	if err != nil {
		return err
	}

	rec.Payload = string(raw)
	return r.DB.Save(&rec).Error
}
