package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lionsacademy/register-backend/internal/config"
	"github.com/lionsacademy/register-backend/internal/database"
	"github.com/lionsacademy/register-backend/internal/handler"
	"github.com/lionsacademy/register-backend/internal/logger"
	"github.com/lionsacademy/register-backend/internal/metrics"
	"github.com/lionsacademy/register-backend/internal/middleware"
	"github.com/lionsacademy/register-backend/internal/repository"
	"github.com/lionsacademy/register-backend/internal/router"
	"github.com/lionsacademy/register-backend/internal/service"
	"github.com/lionsacademy/register-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting attendance register")

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid TIMEZONE")
	}
	clock := service.NewClock(loc)
	log.Info().Str("timezone", loc.String()).Str("today", clock.Today().String()).Msg("Calendar configured")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis (optional) ───────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	// ─── Rate Limiters ─────────────────────────────────────────────────
	// Redis shares the budget across instances; otherwise each process
	// keeps its own buckets.
	var limiters router.Limiters
	if rdb != nil {
		defer rdb.Close()
		limiters.Public = middleware.NewRedisLimiter(rdb, "public", cfg.PublicRateLimit, time.Minute)
		limiters.Login = middleware.NewRedisLimiter(rdb, "login", cfg.LoginRateLimit, time.Minute)
	} else {
		limiters.Public = middleware.NewRateLimiter(ctx, cfg.PublicRateLimit, time.Minute)
		limiters.Login = middleware.NewRateLimiter(ctx, cfg.LoginRateLimit, time.Minute)
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	studentRepo := repository.NewStudentRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	reportRepo := repository.NewReportRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, adminRepo, log)
	studentService := service.NewStudentService(studentRepo, clock, log)
	attendanceService := service.NewAttendanceService(studentRepo, attendanceRepo, clock, log)
	reportService := service.NewReportService(reportRepo, studentRepo, log)
	dashboardService := service.NewDashboardService(dashboardRepo, clock, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	m := metrics.New()
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Student:    handler.NewStudentHandler(studentService),
		Attendance: handler.NewAttendanceHandler(attendanceService, m),
		Report:     handler.NewReportHandler(reportService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(cfg, authService, handlers, limiters, m, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}
