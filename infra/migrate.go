package infra

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies every pending migration. An up-to-date schema is not an error.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return withMigrator(ctx, db, func(m *migrate.Migrate) error {
		return ignoreNoChange(m.Up())
	})
}

// Reset drops every table owned by the migrations and recreates the schema.
func Reset(ctx context.Context, db *gorm.DB) error {
	return withMigrator(ctx, db, func(m *migrate.Migrate) error {
		if err := ignoreNoChange(m.Down()); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		return ignoreNoChange(m.Up())
	})
}

// withMigrator runs fn against a migrator bound to a single dedicated
// connection, which is released afterwards without closing the pool.
func withMigrator(ctx context.Context, db *gorm.DB, fn func(*migrate.Migrate) error) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire migration connection: %w", err)
	}
	driver, err := migratepostgres.WithConnection(ctx, conn, &migratepostgres.Config{})
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("migration driver: %w", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		_ = driver.Close()
		return fmt.Errorf("migration source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = src.Close()
		_ = driver.Close()
		return err
	}
	defer func() { _, _ = m.Close() }()
	return fn(m)
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
