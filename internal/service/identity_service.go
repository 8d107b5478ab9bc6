package service

import (
	"context"
	"errors"
	"fmt"
	"prompt_school_backend/internal/config"
	"prompt_school_backend/internal/model"
	"prompt_school_backend/internal/util"
	"prompt_school_backend/pkg/logger"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const deviceIdentityKeyPrefix = "identity:device:"

type deviceStore interface {
	FindByDeviceID(deviceID string) (*model.DeviceConfiguration, error)
	Upsert(cfg *model.DeviceConfiguration) error
}

type identityUserStore interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
}

// IdentityService resolves a device to a learner identity. A device that has
// never been seen gets a guest learner generated once; the mapping is
// persisted in device_configurations and cached in redis so repeat visits
// reuse the same identity for the life of the device.
type IdentityService struct {
	Devices deviceStore
	Users   identityUserStore
	Redis   *redis.Client
	Cfg     *config.Config
}

func NewIdentityService(devices deviceStore, users identityUserStore, rdb *redis.Client, cfg *config.Config) *IdentityService {
	return &IdentityService{
		Devices: devices,
		Users:   users,
		Redis:   rdb,
		Cfg:     cfg,
	}
}

// EnsureLearner returns the learner bound to the device, creating one on
// first contact, plus a session token.
func (s *IdentityService) EnsureLearner(ctx context.Context, deviceID string) (*model.User, string, error) {
	if deviceID == "" {
		return nil, "", errors.New("device id is required")
	}

	if user, err := s.fromCache(ctx, deviceID); err == nil && user != nil {
		return s.withToken(user)
	}

	cfg, err := s.Devices.FindByDeviceID(deviceID)
	if err != nil {
		return nil, "", err
	}

	var user *model.User
	if cfg != nil {
		user, err = s.Users.FindByID(cfg.UserID)
		if err != nil {
			return nil, "", err
		}
	} else {
		user, err = s.createGuest(deviceID)
		if err != nil {
			return nil, "", err
		}
	}

	s.cache(ctx, deviceID, user.ID)
	return s.withToken(user)
}

func (s *IdentityService) createGuest(deviceID string) (*model.User, error) {
	tag := uuid.New().String()
	user := &model.User{
		Name:  "Guest " + tag[:8],
		Email: fmt.Sprintf("guest-%s@guest.local", tag),
		Role:  model.Learner,
		Guest: true,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}

	if err := s.Devices.Upsert(&model.DeviceConfiguration{
		DeviceID: deviceID,
		UserID:   user.ID,
	}); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *IdentityService) fromCache(ctx context.Context, deviceID string) (*model.User, error) {
	val, err := s.Redis.Get(ctx, deviceIdentityKeyPrefix+deviceID).Result()
	if err != nil {
		return nil, err
	}
	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return nil, err
	}
	return s.Users.FindByID(uint(userID))
}

func (s *IdentityService) cache(ctx context.Context, deviceID string, userID uint) {
	// Cache failures are not fatal; the database mapping is authoritative.
	if err := s.Redis.Set(ctx, deviceIdentityKeyPrefix+deviceID, strconv.FormatUint(uint64(userID), 10), 0).Err(); err != nil {
		logger.Log.Warn("failed to cache device identity", zap.String("device", deviceID), zap.Error(err))
	}
}

func (s *IdentityService) withToken(user *model.User) (*model.User, string, error) {
	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
