package main

import (
	"context"
	"fmt"
	"inventory/internal/config"
	"inventory/internal/core/domain/logging"
	"inventory/internal/db"
	zaplogging "inventory/internal/implementations/logging"
	"os"
)

func main() {
	log := zaplogging.NewZapLogger(false)
	defer log.Sync()

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s up|down\n", os.Args[0])
		os.Exit(2)
	}
	direction, err := db.ParseMigrationDirection(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: %s up|down\n", os.Args[0])
		os.Exit(2)
	}

	cfg, err := config.LoadMigrateConfig()
	if err != nil {
		log.Error(context.Background(), "Could not load config.", logging.Entry("err", err))
		os.Exit(1)
	}

	if err := db.Migrate(cfg.PostgresqlURL, cfg.MigrationsPath, direction); err != nil {
		log.Error(
			context.Background(),
			"Could not apply migrations.",
			logging.Entry("direction", direction),
			logging.Entry("err", err),
		)
		os.Exit(1)
	}
	log.Info(
		context.Background(),
		"Migrations have been applied.",
		logging.Entry("direction", direction),
		logging.Entry("path", cfg.MigrationsPath),
	)
}
