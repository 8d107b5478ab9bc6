package repository

import (
	"errors"
	"prompt_school_backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeviceConfigRepository struct {
	DB *gorm.DB
}

func NewDeviceConfigRepository(db *gorm.DB) *DeviceConfigRepository {
	return &DeviceConfigRepository{DB: db}
}

// FindByDeviceID returns (nil, nil) for an unknown device.
func (r *DeviceConfigRepository) FindByDeviceID(deviceID string) (*model.DeviceConfiguration, error) {
	var cfg model.DeviceConfiguration
	err := r.DB.Where("device_id = ?", deviceID).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *DeviceConfigRepository) FindByUserID(userID uint) (*model.DeviceConfiguration, error) {
	var cfg model.DeviceConfiguration
	err := r.DB.Where("user_id = ?", userID).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpsertForUser keys on the learner and overwrites the configuration fields.
// The device binding is not client-writable through this path: an existing
// row keeps its DeviceID, and a fresh row gets a generated id. The
// device_id unique index is what the identity lookup trusts, so a learner
// must never be able to point it at another learner's device.
func (r *DeviceConfigRepository) UpsertForUser(cfg *model.DeviceConfiguration) error {
	var existing model.DeviceConfiguration
	err := r.DB.Where("user_id = ?", cfg.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg.DeviceID = uuid.NewString()
		return r.DB.Create(cfg).Error
	}
	if err != nil {
		return err
	}

	cfg.ID = existing.ID
	cfg.CreatedAt = existing.CreatedAt
	cfg.DeviceID = existing.DeviceID
	return r.DB.Save(cfg).Error
}

// Upsert keys on the device and overwrites all configuration fields. Used by
// the identity flow, which owns the device binding.
func (r *DeviceConfigRepository) Upsert(cfg *model.DeviceConfiguration) error {
	var existing model.DeviceConfiguration
	err := r.DB.Where("device_id = ?", cfg.DeviceID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(cfg).Error
	}
	if err != nil {
		return err
	}

	cfg.ID = existing.ID
	cfg.CreatedAt = existing.CreatedAt
	return r.DB.Save(cfg).Error
}
