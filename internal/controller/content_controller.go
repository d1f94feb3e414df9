package controller

import (
	"fmt"
	"strconv"

	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	QuestionService *service.QuestionService
}

func NewContentController(questionService *service.QuestionService) *ContentController {
	return &ContentController{QuestionService: questionService}
}

// GetSubjects godoc
// @Summary List subjects
// @Description List the top-level subject directories of the content tree
// @Tags content
// @Produce json
// @Success 200 {object} util.Response{data=object} "Success"
// @Router /api/subjects [get]
func (c *ContentController) GetSubjects(ctx *gin.Context) {
	util.Success(ctx, gin.H{"subjects": c.QuestionService.Subjects()})
}

// GetDivisions godoc
// @Summary List divisions of a subject
// @Tags content
// @Produce json
// @Param subject path string true "Subject name"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 404 {object} util.Response "Subject not found"
// @Router /api/subjects/{subject}/divisions [get]
func (c *ContentController) GetDivisions(ctx *gin.Context) {
	subject := ctx.Param("subject")

	divisions, err := c.QuestionService.Divisions(subject)
	if err != nil {
		util.NotFound(ctx, fmt.Sprintf("Subject %q not found", subject))
		return
	}

	util.Success(ctx, gin.H{
		"subject":   subject,
		"divisions": divisions,
	})
}

// GetChapters godoc
// @Summary List chapter files of a division
// @Tags content
// @Produce json
// @Param subject path string true "Subject name"
// @Param division path string true "Division name"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 404 {object} util.Response "Division not found"
// @Router /api/subjects/{subject}/{division}/chapters [get]
func (c *ContentController) GetChapters(ctx *gin.Context) {
	subject := ctx.Param("subject")
	division := ctx.Param("division")

	chapters, err := c.QuestionService.Chapters(subject, division)
	if err != nil {
		util.NotFound(ctx, fmt.Sprintf("Division %q not found in subject %q", division, subject))
		return
	}

	util.Success(ctx, gin.H{
		"subject":  subject,
		"division": division,
		"chapters": chapters,
	})
}

// GetQuestions godoc
// @Summary Get questions, optionally filtered
// @Description Aggregate content-bearing questions across the tree; subject, division and chapter filters are exact matches
// @Tags content
// @Produce json
// @Param subject query string false "Subject filter"
// @Param division query string false "Division filter"
// @Param chapter query string false "Chapter filename filter (with extension)"
// @Success 200 {object} util.Response{data=object} "Success"
// @Router /api/questions [get]
func (c *ContentController) GetQuestions(ctx *gin.Context) {
	subject := ctx.Query("subject")
	division := ctx.Query("division")
	chapter := ctx.Query("chapter")

	questions := c.QuestionService.Aggregate(subject, division, chapter)
	monitoring.QuestionsServed.Add(float64(len(questions)))

	util.Success(ctx, gin.H{
		"questions": questions,
		"total":     len(questions),
		"filters": gin.H{
			"subject":  subject,
			"division": division,
			"chapter":  chapter,
		},
	})
}

// GetSingleQuestion godoc
// @Summary Get one question by position
// @Description Return the record at a zero-based index of one chapter file; unlike the aggregate endpoint no content filter is applied
// @Tags content
// @Produce json
// @Param subject path string true "Subject name"
// @Param division path string true "Division name"
// @Param chapter path string true "Chapter filename"
// @Param index path int true "Zero-based question index"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 404 {object} util.Response "Chapter or index not found"
// @Router /api/question/{subject}/{division}/{chapter}/{index} [get]
func (c *ContentController) GetSingleQuestion(ctx *gin.Context) {
	subject := ctx.Param("subject")
	division := ctx.Param("division")
	chapter := ctx.Param("chapter")

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		util.BadRequest(ctx, "Question index must be an integer")
		return
	}

	question, err := c.QuestionService.SingleQuestion(subject, division, chapter, index)
	if err != nil {
		switch err {
		case util.ErrChapterNotFound:
			util.NotFound(ctx, "Question file not found")
		case util.ErrQuestionIndexOutOfRange:
			util.NotFound(ctx, "Question index out of range")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.QuestionsServed.Inc()
	util.Success(ctx, gin.H{"question": question})
}

// GetStructure godoc
// @Summary Get the full content structure
// @Description Nested subject/division/chapter summary with per-chapter question counts and aggregate totals
// @Tags content
// @Produce json
// @Success 200 {object} util.Response{data=object} "Success"
// @Router /api/structure [get]
func (c *ContentController) GetStructure(ctx *gin.Context) {
	structure := c.QuestionService.Summarize()

	util.Success(ctx, gin.H{
		"structure": structure,
		"summary":   structure.Summarize(),
	})
}
