package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type MigrationDirection string

const (
	MigrateUp   MigrationDirection = "up"
	MigrateDown MigrationDirection = "down"
)

var ErrInvalidMigrationDirection = errors.New("invalid migration direction")

func ParseMigrationDirection(value string) (MigrationDirection, error) {
	switch MigrationDirection(value) {
	case MigrateUp:
		return MigrateUp, nil
	case MigrateDown:
		return MigrateDown, nil
	default:
		return "", ErrInvalidMigrationDirection
	}
}

// Migrate applies the migrations from migrationsPath in the given direction,
// an up-to-date schema is not an error.
func Migrate(connString string, migrationsPath string, direction MigrationDirection) error {
	m, err := migrate.New("file://"+migrationsPath, connString)
	if err != nil {
		return fmt.Errorf("could not connect to DB for applying migrations: %w", err)
	}
	defer m.Close()

	switch direction {
	case MigrateUp:
		err = m.Up()
	case MigrateDown:
		err = m.Down()
	default:
		return ErrInvalidMigrationDirection
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
