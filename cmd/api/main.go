package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/medibook/hospital-api/internal/config"
	"github.com/medibook/hospital-api/internal/email"
	"github.com/medibook/hospital-api/internal/handler"
	appointmentHandler "github.com/medibook/hospital-api/internal/handler/appointment"
	authHandler "github.com/medibook/hospital-api/internal/handler/auth"
	healthHandler "github.com/medibook/hospital-api/internal/handler/health"
	"github.com/medibook/hospital-api/internal/middleware"
	"github.com/medibook/hospital-api/internal/repository/postgres"
	"github.com/medibook/hospital-api/internal/router"
	appointmentService "github.com/medibook/hospital-api/internal/service/appointment"
	authService "github.com/medibook/hospital-api/internal/service/auth"
	healthService "github.com/medibook/hospital-api/internal/service/health"
	pkgauth "github.com/medibook/hospital-api/pkg/auth"
	"github.com/medibook/hospital-api/pkg/logger"
	"github.com/medibook/hospital-api/pkg/messaging"
	redisbroker "github.com/medibook/hospital-api/pkg/messaging/redis"
	"github.com/medibook/hospital-api/pkg/security"
)

func main() {
	log.Logger = *logger.NewLogger(nil).Zerolog()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	recordRepo := postgres.NewHealthRecordRepository(db)
	profileRepo := postgres.NewHealthProfileRepository(db)

	// Appointment events are best effort: a missing broker only disables
	// downstream reminders.
	var publisher messaging.Publisher
	if cfg.Redis.URL != "" {
		broker, err := redisbroker.NewRedisBroker(redisbroker.Config{
			URL:          cfg.Redis.URL,
			MaxRetries:   cfg.Redis.MaxRetries,
			RetryBackoff: cfg.Redis.RetryBackoff,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		}, &log.Logger)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, appointment events disabled")
		} else {
			defer broker.Close()
			publisher = broker
		}
	}

	var emailSvc email.Service
	if cfg.SMTP.Host != "" {
		emailSvc = email.NewSMTPService(email.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	} else {
		emailSvc = email.NewNoopService()
	}

	// Services
	jwtSvc := pkgauth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	hasher := security.NewBcryptHasher(12)
	authSvc := authService.NewService(userRepo, hasher, jwtSvc)
	appointmentSvc := appointmentService.NewService(appointmentRepo, userRepo, publisher, emailSvc)
	healthSvc := healthService.NewService(recordRepo, profileRepo)

	// HTTP layer
	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		healthHandler.NewHandler(healthSvc),
		handler.NewHandler(db),
		router.Config{
			RateLimit:  rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:  cfg.RateLimit.Burst,
			Timeout:    cfg.Server.RequestTimeout,
			CORSConfig: middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
