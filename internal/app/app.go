package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizhub_backend/internal/config"
	"quizhub_backend/internal/controller"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/service"
	"quizhub_backend/pkg/logger"
	"quizhub_backend/pkg/monitoring"
	"quizhub_backend/pkg/security"
	"quizhub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	services *services
	tp       tracerProvider
}

type tracerProvider interface {
	Shutdown(ctx context.Context) error
}

type repositories struct {
	content *repository.ContentRepository
	state   *repository.StateRepository
}

type services struct {
	question *service.QuestionService
	state    *service.StateService
	asset    *service.AssetService
}

type controllers struct {
	content  *controller.ContentController
	state    *controller.StateController
	health   *controller.HealthController
	quizPage *controller.QuizPageController
}

func (a *App) initRepositories(cfg *config.Config) *repositories {
	return &repositories{
		content: repository.NewContentRepository(cfg.Content.ChapterExtension),
		state:   repository.NewStateRepository(cfg.State.FilePath),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	return &services{
		question: service.NewQuestionService(repos.content, cfg.Content.RootDir),
		state:    service.NewStateService(repos.state),
		asset:    service.NewAssetService(cfg.Content.RootDir),
	}
}

func (a *App) initControllers(repos *repositories, s *services) *controllers {
	return &controllers{
		content:  controller.NewContentController(s.question),
		state:    controller.NewStateController(s.state),
		health:   controller.NewHealthController(s.question),
		quizPage: controller.NewQuizPageController(repos.content, s.asset, a.Config),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimitWindow()))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ApplyConfig picks up a hot-reloaded configuration. Only settings that can
// change without rebuilding the router take effect.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config.Content = cfg.Content
	a.services.question.RootDir = cfg.Content.RootDir
	a.services.asset.RootDir = cfg.Content.RootDir
	logger.Log.Info("Configuration reloaded",
		zap.String("content_root", cfg.Content.RootDir))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	app := &App{
		Config: cfg,
	}

	repos := app.initRepositories(cfg)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(repos, services)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("quizhub-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tp = tp
	}

	app.registerRoutes(router, controllers, cfg)

	services.question.LogContentCensus()

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release", "test":
		return mode
	}
	return gin.DebugMode
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tp != nil {
		if err := a.tp.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
