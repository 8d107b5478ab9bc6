package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"prompt_school_backend/internal/catalog"
	"prompt_school_backend/internal/config"
	"prompt_school_backend/internal/controller"
	"prompt_school_backend/internal/progress"
	"prompt_school_backend/internal/repository"
	"prompt_school_backend/internal/service"
	"prompt_school_backend/internal/session"
	"prompt_school_backend/pkg/configwatcher"
	"prompt_school_backend/pkg/database"
	"prompt_school_backend/pkg/logger"
	"prompt_school_backend/pkg/monitoring"
	"prompt_school_backend/pkg/security"
	"prompt_school_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	Catalog         *catalog.Catalog
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user          *repository.UserRepository
	progress      *repository.ProgressRepository
	profile       *repository.ProfileRepository
	learningEntry *repository.LearningEntryRepository
	workflow      *repository.WorkflowRepository
	prompt        *repository.PromptRepository
	deviceConfig  *repository.DeviceConfigRepository
}

type services struct {
	auth       *service.AuthService
	identity   *service.IdentityService
	storage    *service.StorageService
	tutorial   *service.TutorialService
	sync       *service.SyncService
	playground *service.PlaygroundService
}

type controllers struct {
	auth       *controller.AuthController
	catalog    *controller.CatalogController
	tutorial   *controller.TutorialController
	sync       *controller.SyncController
	playground *controller.PlaygroundController
	user       *controller.UserController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:          repository.NewUserRepository(db),
		progress:      repository.NewProgressRepository(db),
		profile:       repository.NewProfileRepository(db),
		learningEntry: repository.NewLearningEntryRepository(db),
		workflow:      repository.NewWorkflowRepository(db),
		prompt:        repository.NewPromptRepository(db),
		deviceConfig:  repository.NewDeviceConfigRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.identity = service.NewIdentityService(repos.deviceConfig, repos.user, rdb, cfg)

	tracker := progress.NewTracker(repos.progress)
	sessions := session.NewManager(a.Catalog)
	s.tutorial = service.NewTutorialService(a.Catalog, sessions, tracker)

	s.sync = service.NewSyncService(
		repos.profile,
		repos.learningEntry,
		repos.workflow,
		repos.prompt,
		repos.deviceConfig,
	)

	s.playground = service.NewPlaygroundService(cfg.Sandbox)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.identity),
		catalog:    controller.NewCatalogController(a.Catalog),
		tutorial:   controller.NewTutorialController(s.tutorial),
		sync:       controller.NewSyncController(s.sync),
		playground: controller.NewPlaygroundController(s.playground),
		user:       controller.NewUserController(repos.user, s.storage),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) watchConfig() {
	go configwatcher.WatchConfig("configs/config.yaml", a.Config, func(raw interface{}) {
		cfg, ok := raw.(*config.Config)
		if !ok {
			return
		}
		a.Config = cfg
		for _, callback := range a.configCallbacks {
			callback(cfg)
		}
		logger.Log.Info("Configuration reloaded")
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	cat, err := catalog.New()
	if err != nil {
		logger.Log.Fatal("Failed to build content catalog", zap.Error(err))
		log.Fatalf("Failed to build content catalog: %v", err)
	}

	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		Catalog: cat,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, repos, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("prompt-school", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.watchConfig()

	return app
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

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
