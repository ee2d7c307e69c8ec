// Command showcasectl performs out-of-band account administration and
// schema migration against the showcase database.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/studentworks/showcase/internal/core/service"
	"github.com/studentworks/showcase/internal/infrastructure/config"
	"github.com/studentworks/showcase/internal/infrastructure/db/sqldb"
	"github.com/studentworks/showcase/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "showcasectl"})

	ctx := context.Background()
	db, err := sqldb.Connect(ctx, sqldb.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	cli := commandLine{
		accounts: service.NewAuthService(sqldb.NewUserRepository(db), log),
		migrate: func(ctx context.Context) error {
			return sqldb.Migrate(ctx, db)
		},
		out: os.Stdout,
	}
	err = cli.run(ctx, os.Args)
	_ = db.Close()
	if err != nil {
		if !errors.Is(err, errHelp) {
			log.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}
