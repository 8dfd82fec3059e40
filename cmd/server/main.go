package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	partsapi "go.pilab.hu/partsdesk/api/echo"
	"go.pilab.hu/partsdesk/cache"
	"go.pilab.hu/partsdesk/config"
	"go.pilab.hu/partsdesk/internal/auth"
	"go.pilab.hu/partsdesk/mongodb"
	"go.pilab.hu/partsdesk/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logLevel, parseErr := zerolog.ParseLevel(cfg.LogLevel)
	if parseErr != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	log.Info().
		Str("http_port", cfg.HTTPPort).
		Str("mongo_db_name", cfg.MongoDBName).
		Str("log_level", logLevel.String()).
		Msg("Starting partsdesk server")

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer mongodb.Close(ctx, db)

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure indexes")
	}

	// Repositories
	sessionRepo := mongodb.NewSessionRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	incidentRepo := mongodb.NewIncidentRepository(db)

	// Services
	sessionTTL := time.Duration(cfg.SessionTTLMin) * time.Minute
	sessionCache := cache.NewSessionCache(sessionTTL)
	defer sessionCache.Stop()

	sessionService := services.NewSessionService(sessionRepo, sessionCache, sessionTTL)
	hasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	userService := services.NewUserService(userRepo, sessionService, hasher)
	productService := services.NewProductService(productRepo)
	incidentService := services.NewIncidentService(incidentRepo)

	// HTTP surface
	e := echo.New()
	e.HideBanner = true
	e.Validator = partsapi.NewValidator()
	e.HTTPErrorHandler = partsapi.ErrorHandler
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogMethod: true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))

	partsapi.NewAPI(sessionService, userService, productService, incidentService).RegisterRoutes(e)

	go func() {
		if err := e.Start(":" + cfg.HTTPPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}
}
