package controller

import (
	"errors"
	"net/http"
	"prompt_school_backend/internal/service"
	"prompt_school_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlaygroundController struct {
	PlaygroundService *service.PlaygroundService
}

func NewPlaygroundController(playgroundService *service.PlaygroundService) *PlaygroundController {
	return &PlaygroundController{PlaygroundService: playgroundService}
}

// @Summary Run playground code in the remote sandbox
// @Tags playground
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.RunRequest true "source"
// @Success 200 {object} util.Response
// @Router /playground/run [post]
func (c *PlaygroundController) Run(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.RunRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.PlaygroundService.Run(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, util.ErrSandboxUnavailable) {
			util.Error(ctx, http.StatusBadGateway, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
