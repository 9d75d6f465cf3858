package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/matchmake/internal/config"
	"github.com/bagdasarian/matchmake/internal/db"
	"github.com/bagdasarian/matchmake/internal/handler"
	"github.com/bagdasarian/matchmake/internal/handler/middleware"
	"github.com/bagdasarian/matchmake/internal/handler/server"
	"github.com/bagdasarian/matchmake/internal/repository/postgres"
	"github.com/bagdasarian/matchmake/internal/service"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.MustLoad()
	setupLogger(cfg.Log)

	database := db.MustLoad(context.Background(), cfg.Database)
	log.Info().Str("host", cfg.Database.Host).Msg("connected to database")
	defer database.Close()

	clock := clockwork.NewRealClock()

	teamRepo := postgres.NewTeamRepository(database)
	requestRepo := postgres.NewRequestRepository(database)
	challengeRepo := postgres.NewChallengeRepository(database)
	matchRepo := postgres.NewMatchRepository(database)

	teamService := service.NewTeamService(teamRepo)
	requestService := service.NewRequestService(requestRepo, teamRepo, clock)
	challengeService := service.NewChallengeService(challengeRepo, teamRepo, clock)
	matchService := service.NewMatchService(matchRepo, teamRepo, clock)

	h := handler.NewHandler(teamService, requestService, challengeService, matchService, database)
	router := server.NewRouter(server.RouterDeps{
		Handler:        h,
		Auth:           middleware.NewAuthenticator(cfg.Auth.JWTSecret, clock),
		Clock:          clock,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})
	srv := server.NewServer(router, cfg.HTTPAddr)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
}

func setupLogger(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	// логгер по умолчанию для контекстов без request id
	zerolog.DefaultContextLogger = &log.Logger
}
