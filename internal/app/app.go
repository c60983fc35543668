package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"recruit_backend/internal/config"
	"recruit_backend/internal/controller"
	"recruit_backend/internal/model"
	"recruit_backend/internal/psych"
	"recruit_backend/internal/repository"
	"recruit_backend/internal/service"
	"recruit_backend/pkg/configwatcher"
	"recruit_backend/pkg/database"
	"recruit_backend/pkg/logger"
	"recruit_backend/pkg/monitoring"
	"recruit_backend/pkg/security"
	"recruit_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config    *config.Config
	ConfigDir string
	Router    *gin.Engine
	DB        *gorm.DB
	Redis     *redis.Client

	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
	stopWatcher     context.CancelFunc
}

type repositories struct {
	assessment *repository.AssessmentRepository
	question   *repository.QuestionRepository
}

type services struct {
	assessment *service.AssessmentService
	question   *service.QuestionService
}

type controllers struct {
	assessment *controller.AssessmentController
	question   *controller.QuestionController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		assessment: repository.NewAssessmentRepository(db),
		question:   repository.NewQuestionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, catalog *psych.Catalog, rdb *redis.Client) *services {
	var cache service.ResultCache = service.NopResultCache{}
	if rdb != nil {
		cache = service.NewRedisResultCache(rdb, cfg.Redis.ResultTTL())
	}

	return &services{
		assessment: service.NewAssessmentService(catalog, repos.assessment, cache, model.TestType(cfg.Assessment.DefaultType)),
		question:   service.NewQuestionService(catalog, repos.question),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		assessment: controller.NewAssessmentController(s.assessment),
		question:   controller.NewQuestionController(s.question),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window()))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks watches the config directory and fans reloads out to
// the registered callbacks.
func (a *App) startBackgroundTasks() {
	if a.ConfigDir == "" {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.stopWatcher = cancel

	go func() {
		err := configwatcher.WatchConfig(ctx, a.ConfigDir, configwatcher.DefaultDebounce, func(cfg *config.Config) {
			for _, cb := range a.configCallbacks {
				cb(cfg)
			}
		})
		if err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()
}

// New wires the application from an already opened database. Redis may be nil.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, catalog *psych.Catalog) (*App, error) {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	app.services = app.initServices(repos, cfg, catalog, rdb)

	if err := app.services.question.SeedQuestionBank(); err != nil {
		return nil, err
	}

	controllers := app.initControllers(app.services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Mode == "debug" {
		router.Use(gin.Logger())
	}
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	app.RegisterConfigCallback(logger.ApplyConfig)

	return app, nil
}

func NewApp(cfg *config.Config, configDir string) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	}

	app, err := New(cfg, db, rdb, psych.DefaultCatalog())
	if err != nil {
		logger.Log.Fatal("Failed to initialize application", zap.Error(err))
	}
	app.ConfigDir = configDir

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	if !cfg.MigrateOnly {
		app.startBackgroundTasks()
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(ctx)
	logger.Log.Info("Server exiting")
}

// Close releases the watcher, tracer, redis and database handles.
func (a *App) Close(ctx context.Context) {
	if a.stopWatcher != nil {
		a.stopWatcher()
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Log.Error("Failed to close database", zap.Error(err))
		}
	}
}
