package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lionsacademy/register-backend/internal/config"
	"github.com/lionsacademy/register-backend/internal/handler"
	"github.com/lionsacademy/register-backend/internal/metrics"
	"github.com/lionsacademy/register-backend/internal/middleware"
	"github.com/lionsacademy/register-backend/internal/response"
	"github.com/rs/zerolog"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Student    *handler.StudentHandler
	Attendance *handler.AttendanceHandler
	Report     *handler.ReportHandler
	Dashboard  *handler.DashboardHandler
}

// Limiters throttle the unauthenticated routes.
type Limiters struct {
	Public middleware.Limiter
	Login  middleware.Limiter
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	cfg *config.Config,
	tokens middleware.TokenValidator,
	handlers *Handlers,
	limiters Limiters,
	m *metrics.Metrics,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID first so the logger and error bodies can use it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log, "/health", "/metrics"))
	router.Use(middleware.Metrics(m))

	router.Use(middleware.BrotliWithConfig(middleware.BrotliConfig{
		Quality:   middleware.DefaultBrotliConfig.Quality,
		MinLength: middleware.DefaultBrotliConfig.MinLength,
		Skipper: func(c *gin.Context) bool {
			return c.Request.URL.Path == "/metrics"
		},
	}))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Kiosk and dashboard bundle, if one is deployed next to the API.
	if cfg.WebDir != "" {
		web := router.Group("/app")
		web.Use(middleware.CacheControl(3600))
		{
			web.Static("/", cfg.WebDir)
		}
	}

	api := router.Group("/api/v1")
	api.Use(middleware.NoStore())

	// ─── 1. Public Group (Rate Limited) ────────────────────────────────
	public := api.Group("")
	public.Use(middleware.RateLimit(limiters.Public, log))
	{
		public.POST("/attendance", handlers.Attendance.SignIn)
		public.GET("/students/search", handlers.Student.Search)
	}
	api.POST("/auth/login", middleware.RateLimit(limiters.Login, log), handlers.Auth.Login)

	// ─── 2. Admin Group (JWT) ──────────────────────────────────────────
	admin := api.Group("")
	admin.Use(middleware.RequireAdminJWT(tokens))
	{
		admin.GET("/auth/me", handlers.Auth.Me)
		admin.POST("/auth/change-password", handlers.Auth.ChangePassword)

		// Students
		admin.GET("/students", handlers.Student.List)
		admin.GET("/students/:id", handlers.Student.Get)
		admin.POST("/students", handlers.Student.Create)
		admin.PUT("/students/:id", handlers.Student.Update)
		admin.DELETE("/students/:id", handlers.Student.Delete)

		// Attendance log and reports
		admin.GET("/attendance", handlers.Attendance.List)
		admin.DELETE("/attendance/:id", handlers.Attendance.Delete)
		admin.GET("/attendance/stats", handlers.Report.Stats)
		admin.GET("/attendance/report/by-student", handlers.Report.ByStudent)
		admin.GET("/attendance/report/over-attendance", handlers.Report.OverAttendance)
		admin.GET("/attendance/report/age-transitions", handlers.Report.AgeTransitions)

		// Dashboard
		admin.GET("/dashboard", handlers.Dashboard.Summary)
	}

	return router
}
