package controller

import (
	"prompt_school_backend/internal/model"
	"prompt_school_backend/internal/service"
	"prompt_school_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SyncController exposes the per-learner domain collections: read-all fetches
// and replace-all saves.
type SyncController struct {
	SyncService *service.SyncService
}

func NewSyncController(syncService *service.SyncService) *SyncController {
	return &SyncController{SyncService: syncService}
}

// @Summary Get the learner's profile
// @Tags sync
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /sync/profile [get]
func (c *SyncController) GetProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.SyncService.GetProfile(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// @Summary Upsert the learner's profile
// @Tags sync
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.UserProfile true "profile"
// @Success 200 {object} util.Response
// @Router /sync/profile [put]
func (c *SyncController) SaveProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var profile model.UserProfile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SyncService.SaveProfile(user.UserID, &profile); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// @Summary Get the learner's journal entries, newest first
// @Tags sync
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /sync/learning-entries [get]
func (c *SyncController) GetLearningEntries(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	entries, err := c.SyncService.GetLearningEntries(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// @Summary Replace the learner's journal entries
// @Tags sync
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body []model.LearningEntry true "entries"
// @Success 200 {object} util.Response
// @Router /sync/learning-entries [put]
func (c *SyncController) SaveLearningEntries(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var entries []model.LearningEntry
	if err := ctx.ShouldBindJSON(&entries); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SyncService.SaveLearningEntries(user.UserID, entries); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// @Summary Get the learner's saved workflows
// @Tags sync
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /sync/workflows [get]
func (c *SyncController) GetWorkflows(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	workflows, err := c.SyncService.GetWorkflows(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, workflows)
}

// @Summary Replace the learner's saved workflows
// @Tags sync
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body []model.Workflow true "workflows"
// @Success 200 {object} util.Response
// @Router /sync/workflows [put]
func (c *SyncController) SaveWorkflows(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var workflows []model.Workflow
	if err := ctx.ShouldBindJSON(&workflows); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SyncService.SaveWorkflows(user.UserID, workflows); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, workflows)
}

// @Summary Get the learner's prompt library
// @Tags sync
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /sync/prompts [get]
func (c *SyncController) GetPrompts(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	prompts, err := c.SyncService.GetPrompts(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, prompts)
}

// @Summary Replace the learner's prompt library
// @Tags sync
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body []model.Prompt true "prompts"
// @Success 200 {object} util.Response
// @Router /sync/prompts [put]
func (c *SyncController) SavePrompts(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var prompts []model.Prompt
	if err := ctx.ShouldBindJSON(&prompts); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SyncService.SavePrompts(user.UserID, prompts); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, prompts)
}

// @Summary Get the device configuration
// @Tags sync
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /sync/device-config [get]
func (c *SyncController) GetDeviceConfig(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	cfg, err := c.SyncService.GetDeviceConfig(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, cfg)
}

// @Summary Upsert the device configuration
// @Tags sync
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.DeviceConfiguration true "configuration"
// @Success 200 {object} util.Response
// @Router /sync/device-config [put]
func (c *SyncController) SaveDeviceConfig(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var cfg model.DeviceConfiguration
	if err := ctx.ShouldBindJSON(&cfg); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SyncService.SaveDeviceConfig(user.UserID, &cfg); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, cfg)
}
