package controller

import (
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const appVersion = "2.0.0"

type HealthController struct {
	QuestionService *service.QuestionService
}

func NewHealthController(questionService *service.QuestionService) *HealthController {
	return &HealthController{QuestionService: questionService}
}

// HealthCheck godoc
// @Summary Health check
// @Description Service status plus a quick look at the content tree
// @Tags system
// @Produce json
// @Success 200 {object} util.Response{data=object} "Success"
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status":             "ok",
		"subjects_directory": c.QuestionService.RootDir,
		"subjects_available": len(c.QuestionService.Subjects()),
		"version":            appVersion,
	})
}
