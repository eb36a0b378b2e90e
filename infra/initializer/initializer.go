package initializer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/amirasaad/banking/infra"
	infra_repository "github.com/amirasaad/banking/infra/repository"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/repository"
	"gorm.io/gorm"
)

// Deps holds the wired application dependencies.
type Deps struct {
	Config *config.App
	Logger *slog.Logger
	DB     *gorm.DB
	Uow    repository.UnitOfWork

	closers []io.Closer
}

// InitializeDependencies sets up the file logger, opens the database and
// applies pending migrations. Callers must Close the returned Deps.
func InitializeDependencies(ctx context.Context, cfg *config.App) (deps *Deps, err error) {
	deps = &Deps{Config: cfg}
	defer func() {
		if err != nil {
			_ = deps.Close()
			deps = nil
		}
	}()

	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		return deps, fmt.Errorf("failed to open log file: %w", err)
	}
	deps.closers = append(deps.closers, logFile)
	deps.Logger = setupLogger(logFile, cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env, logFile)
	if err != nil {
		deps.Logger.Error("Failed to initialize database", "error", err)
		return deps, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return deps, err
	}
	deps.closers = append(deps.closers, sqlDB)
	deps.DB = db

	if err := infra.Migrate(ctx, db); err != nil {
		deps.Logger.Error("Failed to apply migrations", "error", err)
		return deps, fmt.Errorf("failed to apply migrations: %w", err)
	}

	deps.Uow = infra_repository.NewUoW(db)
	deps.Logger.Info("Dependencies initialized", "env", cfg.Env, "db", cfg.DB.Name)
	return deps, nil
}

// Close releases the database pool and the log file, newest first.
func (d *Deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i].Close())
	}
	d.closers = nil
	return errors.Join(errs...)
}
