package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kpi_tracker_backend/internal/config"
	"kpi_tracker_backend/internal/controller"
	"kpi_tracker_backend/internal/repository"
	"kpi_tracker_backend/internal/service"
	"kpi_tracker_backend/pkg/configwatcher"
	"kpi_tracker_backend/pkg/database"
	"kpi_tracker_backend/pkg/logger"
	"kpi_tracker_backend/pkg/monitoring"
	"kpi_tracker_backend/pkg/security"
	"kpi_tracker_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user    *repository.UserRepository
	goal    *repository.GoalRepository
	workLog *repository.WorkLogRepository
	setting *repository.SettingRepository
}

type services struct {
	settings *service.SettingsService
	auth     *service.AuthService
	user     *service.UserService
	storage  *service.StorageService
	goal     *service.GoalService
	workLog  *service.WorkLogService
	home     *service.HomeService
	report   *service.ReportService
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	goal     *controller.GoalController
	workLog  *controller.WorkLogController
	home     *controller.HomeController
	report   *controller.ReportController
	settings *controller.SettingsController
	upload   *controller.UploadController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		goal:    repository.NewGoalRepository(db),
		workLog: repository.NewWorkLogRepository(db),
		setting: repository.NewSettingRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.settings = service.NewSettingsService(repos.setting, rdb, cfg)
	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, s.settings, cfg)
	s.user = service.NewUserService(repos.user)
	s.goal = service.NewGoalService(repos.goal, repos.workLog, s.settings)
	s.workLog = service.NewWorkLogService(repos.workLog, repos.goal, s.storage, s.settings)
	s.home = service.NewHomeService(repos.goal, repos.workLog, s.settings)
	s.report = service.NewReportService(repos.goal, repos.workLog)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		user:     controller.NewUserController(s.user),
		goal:     controller.NewGoalController(s.goal, s.settings),
		workLog:  controller.NewWorkLogController(s.workLog),
		home:     controller.NewHomeController(s.home),
		report:   controller.NewReportController(s.report),
		settings: controller.NewSettingsController(s.settings),
		upload:   controller.NewUploadController(s.storage),
		health:   controller.NewHealthController(db),
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

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis only backs the settings cache; run degraded without it.
		logger.Log.Warn("Redis unavailable, settings cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("kpi-tracker", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		reloaded, ok := newCfg.(*config.Config)
		if !ok {
			return
		}
		logger.Log.Info("Configuration reloaded")
		for _, cb := range app.configCallbacks {
			cb(reloaded)
		}
	})

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

	log.Println("Server exiting")
}
