package app

import (
	"path/filepath"

	"quizhub_backend/docs"
	"quizhub_backend/internal/config"
	"quizhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Content and progress API
	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.GET("/subjects", c.content.GetSubjects)
		api.GET("/subjects/:subject/divisions", c.content.GetDivisions)
		api.GET("/subjects/:subject/:division/chapters", c.content.GetChapters)
		api.GET("/questions", c.content.GetQuestions)
		api.GET("/question/:subject/:division/:chapter/:index", c.content.GetSingleQuestion)
		api.GET("/structure", c.content.GetStructure)

		api.POST("/state", c.state.SaveState)
	}

	router.GET("/quiz-state.json", c.state.GetState)

	// Quiz frontend
	webDir := cfg.Content.WebDir
	router.StaticFile("/quiz.css", filepath.Join(webDir, "quiz.css"))
	router.StaticFile("/quiz.js", filepath.Join(webDir, "quiz.js"))
	router.StaticFile("/quiz.html", filepath.Join(webDir, "quiz.html"))
	router.Static("/static", webDir)
	router.GET("/favicon.ico", c.quizPage.Favicon)

	router.GET("/assets/*filepath", c.quizPage.Asset)

	router.GET("/", c.quizPage.Index)
	router.GET("/:subject", c.quizPage.SubjectPage)
	router.GET("/:subject/assets/*filepath", c.quizPage.PrefixedAsset)
	router.GET("/:subject/:division", c.quizPage.DivisionPage)
	router.GET("/:subject/:division/assets/*filepath", c.quizPage.PrefixedAsset)
	router.GET("/:subject/:division/:chapter", c.quizPage.ChapterPage)
}
