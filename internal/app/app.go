package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"lumina_lms_backend/internal/config"
	"lumina_lms_backend/internal/controller"
	"lumina_lms_backend/internal/repository"
	"lumina_lms_backend/internal/service"
	"lumina_lms_backend/pkg/database"
	"lumina_lms_backend/pkg/logger"
	"lumina_lms_backend/pkg/monitoring"
	"lumina_lms_backend/pkg/security"
	"lumina_lms_backend/pkg/tracing"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *database.DB

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	user        *repository.UserRepository
	course      *repository.CourseRepository
	enrollment  *repository.EnrollmentRepository
	submission  *repository.SubmissionRepository
	post        *repository.PostRepository
	achievement *repository.AchievementRepository
	certificate *repository.CertificateRepository
	event       *repository.EventRepository
}

type services struct {
	auth         *service.AuthService
	course       *service.CourseService
	assessment   *service.AssessmentService
	community    *service.CommunityService
	gamification *service.GamificationService
	admin        *service.AdminService
}

type controllers struct {
	auth         *controller.AuthController
	course       *controller.CourseController
	assessment   *controller.AssessmentController
	community    *controller.CommunityController
	gamification *controller.GamificationController
	admin        *controller.AdminController
	health       *controller.HealthController
}

func initRepositories(db *database.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		course:      repository.NewCourseRepository(db),
		enrollment:  repository.NewEnrollmentRepository(db),
		submission:  repository.NewSubmissionRepository(db),
		post:        repository.NewPostRepository(db),
		achievement: repository.NewAchievementRepository(db),
		certificate: repository.NewCertificateRepository(db),
		event:       repository.NewEventRepository(db),
	}
}

func initServices(repos *repositories, cfg *config.Config) *services {
	return &services{
		auth:         service.NewAuthService(repos.user, cfg),
		course:       service.NewCourseService(repos.course, repos.enrollment),
		assessment:   service.NewAssessmentService(repos.submission),
		community:    service.NewCommunityService(repos.post, cfg),
		gamification: service.NewGamificationService(repos.user, repos.achievement),
		admin:        service.NewAdminService(repos.certificate, repos.event),
	}
}

func initControllers(s *services) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		course:       controller.NewCourseController(s.course, s.auth),
		assessment:   controller.NewAssessmentController(s.assessment, s.auth),
		community:    controller.NewCommunityController(s.community, s.auth),
		gamification: controller.NewGamificationController(s.gamification),
		admin:        controller.NewAdminController(s.admin),
		health:       controller.NewHealthController(),
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
		router.Use(tracing.GinMiddleware(cfg.Tracing.Service()))
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	db := database.Open()
	if err := database.Seed(db); err != nil {
		logger.Log.Fatal("Failed to seed demo data", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := initRepositories(db)
	services := initServices(repos, cfg)
	controllers := initControllers(services)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.Service(), cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	defer logger.Log.Sync()

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
