package controller

import (
	"errors"
	"prompt_school_backend/internal/service"
	"prompt_school_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TutorialController struct {
	TutorialService *service.TutorialService
}

func NewTutorialController(tutorialService *service.TutorialService) *TutorialController {
	return &TutorialController{TutorialService: tutorialService}
}

func respondSessionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrTutorialNotFound),
		errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrExerciseNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrLessonLocked):
		// A refused gated transition, not a failure.
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrNoActiveSession),
		errors.Is(err, util.ErrNoActiveExercise),
		errors.Is(err, util.ErrLessonNotInScope):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary Select a tutorial
// @Tags tutorials
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "tutorial id"
// @Success 200 {object} util.Response
// @Router /tutorials/{id}/select [post]
func (c *TutorialController) SelectTutorial(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.TutorialService.SelectTutorial(user.UserID, ctx.Param("id"))
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Select a lesson (gated by prerequisites)
// @Tags tutorials
// @Produce json
// @Security ApiKeyAuth
// @Param lessonId path string true "lesson id"
// @Success 200 {object} util.Response
// @Router /tutorials/lessons/{lessonId}/select [post]
func (c *TutorialController) SelectLesson(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.TutorialService.SelectLesson(user.UserID, ctx.Param("lessonId"))
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Start an exercise of the active lesson
// @Tags tutorials
// @Produce json
// @Security ApiKeyAuth
// @Param exerciseId path string true "exercise id"
// @Success 200 {object} util.Response
// @Router /tutorials/exercises/{exerciseId}/start [post]
func (c *TutorialController) StartExercise(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.TutorialService.StartExercise(user.UserID, ctx.Param("exerciseId"))
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

type bufferRequest struct {
	Text string `json:"text"`
}

// @Summary Update the submission buffer
// @Tags tutorials
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body bufferRequest true "buffer contents"
// @Success 200 {object} util.Response
// @Router /tutorials/exercises/buffer [put]
func (c *TutorialController) UpdateBuffer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req bufferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TutorialService.UpdateBuffer(user.UserID, req.Text); err != nil {
		respondSessionError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "buffer updated"})
}

// @Summary Check the current submission
// @Description Grades the buffer against the exercise's rule and records the attempt.
// @Tags tutorials
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /tutorials/exercises/check [post]
func (c *TutorialController) Check(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.TutorialService.Check(user.UserID)
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary Reveal the next hint
// @Tags tutorials
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /tutorials/exercises/hint [post]
func (c *TutorialController) RevealHint(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	hints, err := c.TutorialService.RevealHint(user.UserID)
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"hints": hints})
}

// @Summary Close the active exercise
// @Tags tutorials
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /tutorials/exercises/close [post]
func (c *TutorialController) CloseExercise(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.TutorialService.CloseExercise(user.UserID)
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Mark a lesson complete (idempotent)
// @Tags tutorials
// @Produce json
// @Security ApiKeyAuth
// @Param lessonId path string true "lesson id"
// @Success 200 {object} util.Response
// @Router /tutorials/lessons/{lessonId}/complete [post]
func (c *TutorialController) CompleteLesson(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.TutorialService.CompleteLesson(user.UserID, ctx.Param("lessonId"))
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary Return to the catalog
// @Tags tutorials
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /tutorials/session/catalog [post]
func (c *TutorialController) BackToCatalog(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.TutorialService.BackToCatalog(user.UserID)
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Get the current session snapshot
// @Tags tutorials
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /tutorials/session [get]
func (c *TutorialController) GetSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.TutorialService.Session(user.UserID)
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Get the learner's progress
// @Tags tutorials
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /tutorials/progress [get]
func (c *TutorialController) GetProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	p, err := c.TutorialService.Progress(user.UserID)
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	util.Success(ctx, p)
}
