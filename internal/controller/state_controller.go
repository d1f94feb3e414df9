package controller

import (
	"encoding/json"
	"io"
	"net/http"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StateController struct {
	StateService *service.StateService
}

func NewStateController(stateService *service.StateService) *StateController {
	return &StateController{StateService: stateService}
}

// SaveState godoc
// @Summary Merge and persist quiz progress
// @Description Merge a partial progress snapshot into the stored state: attempts overlay per key, review marks union, scalars last-write-wins, unknown fields pass through
// @Tags state
// @Accept json
// @Produce json
// @Param state body object true "Partial progress state"
// @Success 200 {object} util.Response{data=object} "Merged"
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 500 {object} util.Response "Write failure"
// @Router /api/state [post]
func (c *StateController) SaveState(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		util.BadRequest(ctx, "Invalid state payload")
		return
	}

	// Arrays, scalars and null are not valid progress documents, only a
	// JSON object is.
	var incoming model.ProgressState
	if err := json.Unmarshal(body, &incoming); err != nil || incoming == nil {
		util.BadRequest(ctx, "Invalid state payload")
		return
	}

	merged, err := c.StateService.MergeAndPersist(incoming)
	if err != nil {
		switch err {
		case util.ErrInvalidStatePayload:
			util.BadRequest(ctx, "Invalid state payload")
		case util.ErrStateWrite:
			util.Error(ctx, http.StatusInternalServerError, "Failed to save state")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"message": "State merged and saved",
		"state":   merged,
	})
}

// GetState godoc
// @Summary Read back the persisted progress state
// @Tags state
// @Produce json
// @Success 200 {object} object "The stored document, verbatim"
// @Failure 404 {object} util.Response "No state saved yet"
// @Router /quiz-state.json [get]
func (c *StateController) GetState(ctx *gin.Context) {
	data, err := c.StateService.Get()
	if err != nil {
		util.NotFound(ctx, "State file not found")
		return
	}
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
