package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"

	"github.com/studentworks/showcase/internal/api"
	"github.com/studentworks/showcase/internal/api/session"
	"github.com/studentworks/showcase/internal/infrastructure/config"
	redisdb "github.com/studentworks/showcase/internal/infrastructure/db/redis"
	"github.com/studentworks/showcase/internal/infrastructure/db/sqldb"
	"github.com/studentworks/showcase/internal/infrastructure/storage/fsstore"
	"github.com/studentworks/showcase/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

//go:generate swag init --dir ../../ --generalInfo cmd/server/main.go --output ../../docs --outputTypes go

// @title        Project Showcase
// @version      1.0
// @description  Students upload projects, admins moderate them, visitors browse approved work.
// @BasePath     /
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "showcase",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqldb.Connect(ctx, sqldb.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to open database")
	}
	defer db.Close()

	files, err := fsstore.New(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare upload directory")
	}

	var (
		rdb   *redis.Client
		store sessions.Store
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()

		rs := redisdb.NewSessionStore(rdb, cfg.SessionTTL, []byte(cfg.SessionSecret))
		rs.Options().Secure = cfg.IsProduction()
		store = rs
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sessions stored in redis")
	} else {
		store = session.NewCookieStore([]byte(cfg.SessionSecret), cfg.SessionTTL, cfg.IsProduction())
	}

	e := api.NewRouter(api.Dependencies{
		DB:            db,
		Redis:         rdb,
		SessionStore:  store,
		Files:         files,
		Logger:        log,
		AutoApprove:   cfg.AutoApprove,
		MaxUploadSize: cfg.Storage.MaxUploadSize,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Bool("auto_approve", cfg.AutoApprove).
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
