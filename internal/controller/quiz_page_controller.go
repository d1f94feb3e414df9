package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"quizhub_backend/internal/config"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// QuizPageController serves the quiz frontend. Subject, division and chapter
// pages deliver the same template with the addressed filters injected as a
// script block, so the frontend can scope itself from the URL.
type QuizPageController struct {
	ContentRepo  *repository.ContentRepository
	AssetService *service.AssetService
	Cfg          *config.Config
}

func NewQuizPageController(contentRepo *repository.ContentRepository, assetService *service.AssetService, cfg *config.Config) *QuizPageController {
	return &QuizPageController{
		ContentRepo:  contentRepo,
		AssetService: assetService,
		Cfg:          cfg,
	}
}

// Index serves the quiz page without filters.
func (c *QuizPageController) Index(ctx *gin.Context) {
	c.renderQuizPage(ctx, "", "", "")
}

// SubjectPage serves the quiz page scoped to a subject.
func (c *QuizPageController) SubjectPage(ctx *gin.Context) {
	c.renderQuizPage(ctx, ctx.Param("subject"), "", "")
}

// DivisionPage serves the quiz page scoped to a division.
func (c *QuizPageController) DivisionPage(ctx *gin.Context) {
	c.renderQuizPage(ctx, ctx.Param("subject"), ctx.Param("division"), "")
}

// ChapterPage serves the quiz page scoped to a chapter file. The extension
// may be omitted in the URL.
func (c *QuizPageController) ChapterPage(ctx *gin.Context) {
	c.renderQuizPage(ctx, ctx.Param("subject"), ctx.Param("division"), ctx.Param("chapter"))
}

// Asset serves a media asset, searching the content tree when it is not in
// the top-level assets directory.
func (c *QuizPageController) Asset(ctx *gin.Context) {
	name := strings.TrimPrefix(ctx.Param("filepath"), "/")
	if path := c.AssetService.Resolve(name); path != "" {
		ctx.File(path)
		return
	}
	ctx.Status(http.StatusNotFound)
}

// PrefixedAsset serves assets addressed relative to a subject or division
// page.
func (c *QuizPageController) PrefixedAsset(ctx *gin.Context) {
	prefix := ctx.Param("subject")
	if division := ctx.Param("division"); division != "" {
		prefix = filepath.Join(prefix, division)
	}
	name := strings.TrimPrefix(ctx.Param("filepath"), "/")
	if path := c.AssetService.ResolvePrefixed(prefix, name); path != "" {
		ctx.File(path)
		return
	}
	ctx.Status(http.StatusNotFound)
}

// Favicon serves favicon.ico when present, 204 otherwise.
func (c *QuizPageController) Favicon(ctx *gin.Context) {
	icon := filepath.Join(c.Cfg.Content.WebDir, "favicon.ico")
	if _, err := os.Stat(icon); err == nil {
		ctx.File(icon)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *QuizPageController) renderQuizPage(ctx *gin.Context, subject, division, chapter string) {
	root := c.Cfg.Content.RootDir
	ext := c.ContentRepo.ChapterExtension()

	filters := map[string]string{}
	if subject != "" {
		filters["subject"] = subject
	}
	if division != "" {
		filters["division"] = division
	}
	if chapter != "" {
		if !strings.HasSuffix(chapter, ext) {
			chapter += ext
		}
		filters["chapter"] = chapter
	}

	if subject != "" && !c.ContentRepo.PathExists(filepath.Join(root, subject)) {
		ctx.String(http.StatusNotFound, "Subject %q not found", subject)
		return
	}
	if division != "" && !c.ContentRepo.PathExists(filepath.Join(root, subject, division)) {
		ctx.String(http.StatusNotFound, "Division %q not found in subject %q", division, subject)
		return
	}
	if chapter != "" && !c.ContentRepo.PathExists(filepath.Join(root, subject, division, chapter)) {
		ctx.String(http.StatusNotFound, "Chapter %q not found in %s/%s", chapter, subject, division)
		return
	}

	templatePath := filepath.Join(c.Cfg.Content.WebDir, "quiz.html")
	html, err := os.ReadFile(templatePath)
	if err != nil {
		ctx.String(http.StatusInternalServerError, "Error loading quiz template")
		return
	}

	filterJSON, err := json.Marshal(filters)
	if err != nil {
		ctx.String(http.StatusInternalServerError, "Error loading quiz template")
		return
	}

	script := fmt.Sprintf(`
	<script>
	window.urlFilters = %s;
	window.urlZen = %t;
	window.urlNext = %t;
	</script>
	`, filterJSON, boolFlag(ctx.Query("zen")), boolFlag(ctx.Query("next")))

	page := strings.Replace(string(html), "</head>", script+"</head>", 1)
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func boolFlag(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
