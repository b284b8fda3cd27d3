package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/periodicapp/periodic/internal/config"
	"github.com/periodicapp/periodic/internal/handler"
	"github.com/periodicapp/periodic/internal/logger"
	"github.com/periodicapp/periodic/internal/server"
	"github.com/periodicapp/periodic/internal/service"
	"github.com/periodicapp/periodic/internal/session"
	"github.com/periodicapp/periodic/internal/store"
	"github.com/periodicapp/periodic/internal/workers"
	"github.com/periodicapp/periodic/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("periodic-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	sessionStore, background := newSessionBackend(cfg.Session, storages, log)
	sessions := session.NewManager(sessionStore, cfg.Session, log)

	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, sessions, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newSessionBackend picks the configured session store. The postgres
// backend shares the main database and brings a sweeper for expired rows;
// the redis backend relies on native key expiry and needs no workers.
func newSessionBackend(cfg config.Session, storages *store.Storages, log *logger.Logger) (session.Store, *workers.Workers) {
	switch cfg.Backend {
	case config.SessionBackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
		return session.NewRedisStore(client, log), workers.NewWorkers()
	default:
		sweeper := workers.NewSessionSweeper(storages.SessionRepository, cfg.SweepInterval, log)
		return storages.SessionRepository, workers.NewWorkers(sweeper)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
