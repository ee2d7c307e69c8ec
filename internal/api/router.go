package api

import (
	"github.com/gorilla/sessions"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/studentworks/showcase/docs"
	"github.com/studentworks/showcase/internal/api/handler"
	"github.com/studentworks/showcase/internal/api/metrics"
	"github.com/studentworks/showcase/internal/api/middleware"
	"github.com/studentworks/showcase/internal/api/session"
	"github.com/studentworks/showcase/internal/core/domain"
	"github.com/studentworks/showcase/internal/core/service"
	"github.com/studentworks/showcase/internal/infrastructure/db/sqldb"
	"github.com/studentworks/showcase/internal/infrastructure/http/handlers"
	"github.com/studentworks/showcase/internal/infrastructure/storage/fsstore"
)

// Dependencies are the long-lived resources the router is built from.
type Dependencies struct {
	DB           *sqlx.DB
	Redis        *redis.Client // nil when sessions live in cookies
	SessionStore sessions.Store
	Files        *fsstore.Store
	Logger       zerolog.Logger

	AutoApprove   bool
	MaxUploadSize string // echo BodyLimit syntax, e.g. "10M"
	HashCost      int    // bcrypt cost; 0 keeps the default
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Dependencies ---
	sessionManager := session.NewManager(deps.SessionStore)

	authService := service.NewAuthService(sqldb.NewUserRepository(deps.DB), deps.Logger)
	if deps.HashCost > 0 {
		authService.WithHashCost(deps.HashCost)
	}
	projectService := service.NewProjectService(sqldb.NewProjectRepository(deps.DB), deps.Files, deps.AutoApprove, deps.Logger)

	authHandler := handler.NewAuthHandler(authService, sessionManager)
	projectHandler := handler.NewProjectHandler(projectService, sessionManager)
	adminHandler := handler.NewAdminHandler(projectService, sessionManager)
	fileHandler := handler.NewFileHandler(deps.Files)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(metrics.Middleware())
	e.Use(requestLogger(deps.Logger))
	e.Use(middleware.Auth(sessionManager))

	requireLogin := middleware.RequireLogin("/login")
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	uploadLimit := deps.MaxUploadSize
	if uploadLimit == "" {
		uploadLimit = "10M"
	}

	// --- Public routes ---
	e.GET("/", projectHandler.Index)
	e.GET("/browse", projectHandler.Browse)
	e.GET("/project/:id", projectHandler.Show)
	e.GET("/uploads/:filename", fileHandler.Serve)

	// --- Auth routes ---
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// --- Student routes ---
	e.GET("/upload", projectHandler.UploadForm, requireLogin)
	e.POST("/upload", projectHandler.Upload, requireLogin, echomiddleware.BodyLimit(uploadLimit))
	e.GET("/edit/:id", projectHandler.EditForm, requireLogin)
	e.POST("/edit/:id", projectHandler.Edit, requireLogin)
	e.POST("/delete/:id", projectHandler.Delete, requireLogin)

	// --- Moderation routes ---
	e.GET("/admin", adminHandler.Dashboard, adminOnly)
	e.GET("/approve/:id", adminHandler.Approve, adminOnly)

	// --- Operations ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
