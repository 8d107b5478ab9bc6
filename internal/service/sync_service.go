package service

import (
	"prompt_school_backend/internal/model"
	"prompt_school_backend/internal/repository"
	"prompt_school_backend/pkg/logger"

	"go.uber.org/zap"
)

// SyncService is the read-all/replace-all boundary for the learner's domain
// collections. Fetches tolerate zero rows (empty list, not an error); saves
// are replace-all and atomic per collection. Concurrent writers for the same
// learner are a known limitation of the replace-all pattern, not a supported
// mode.
type SyncService struct {
	Profiles      *repository.ProfileRepository
	Entries       *repository.LearningEntryRepository
	Workflows     *repository.WorkflowRepository
	Prompts       *repository.PromptRepository
	DeviceConfigs *repository.DeviceConfigRepository
}

func NewSyncService(
	profiles *repository.ProfileRepository,
	entries *repository.LearningEntryRepository,
	workflows *repository.WorkflowRepository,
	prompts *repository.PromptRepository,
	deviceConfigs *repository.DeviceConfigRepository,
) *SyncService {
	return &SyncService{
		Profiles:      profiles,
		Entries:       entries,
		Workflows:     workflows,
		Prompts:       prompts,
		DeviceConfigs: deviceConfigs,
	}
}

func (s *SyncService) GetProfile(userID uint) (*model.UserProfile, error) {
	return s.Profiles.FindByUserID(userID)
}

func (s *SyncService) SaveProfile(userID uint, profile *model.UserProfile) error {
	profile.UserID = userID
	if err := s.Profiles.Upsert(profile); err != nil {
		logger.Log.Error("profile save failed", zap.Uint("user", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *SyncService) GetLearningEntries(userID uint) ([]model.LearningEntry, error) {
	return s.Entries.FindAllByUser(userID)
}

func (s *SyncService) SaveLearningEntries(userID uint, entries []model.LearningEntry) error {
	if err := s.Entries.ReplaceAll(userID, entries); err != nil {
		logger.Log.Error("learning entries save failed", zap.Uint("user", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *SyncService) GetWorkflows(userID uint) ([]model.Workflow, error) {
	return s.Workflows.FindAllByUser(userID)
}

func (s *SyncService) SaveWorkflows(userID uint, workflows []model.Workflow) error {
	if err := s.Workflows.ReplaceAll(userID, workflows); err != nil {
		logger.Log.Error("workflows save failed", zap.Uint("user", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *SyncService) GetPrompts(userID uint) ([]model.Prompt, error) {
	return s.Prompts.FindAllByUser(userID)
}

func (s *SyncService) SavePrompts(userID uint, prompts []model.Prompt) error {
	if err := s.Prompts.ReplaceAll(userID, prompts); err != nil {
		logger.Log.Error("prompts save failed", zap.Uint("user", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *SyncService) GetDeviceConfig(userID uint) (*model.DeviceConfiguration, error) {
	return s.DeviceConfigs.FindByUserID(userID)
}

func (s *SyncService) SaveDeviceConfig(userID uint, cfg *model.DeviceConfiguration) error {
	cfg.UserID = userID
	// The client does not get to choose the device binding; a PUT carrying
	// another learner's deviceId must not rebind that device.
	cfg.DeviceID = ""
	if err := s.DeviceConfigs.UpsertForUser(cfg); err != nil {
		logger.Log.Error("device config save failed", zap.Uint("user", userID), zap.Error(err))
		return err
	}
	return nil
}
