package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirasaad/banking/infra"
	"github.com/amirasaad/banking/infra/initializer"
	"github.com/amirasaad/banking/internal/fixtures/seed"
	"github.com/amirasaad/banking/pkg/config"
	log "github.com/charmbracelet/log"
)

func main() {
	reset := flag.Bool("reset", false, "drop every table before seeding")
	individuals := flag.String("individuals", "", "individuals CSV (embedded fixtures when empty)")
	employees := flag.String("employees", "", "employees CSV (embedded fixtures when empty)")
	flag.Parse()

	if err := run(*reset, *individuals, *employees); err != nil {
		log.Fatal(err)
	}
}

func run(reset bool, individualsPath, employeesPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	fixtures, err := seed.Load(individualsPath, employeesPath)
	if err != nil {
		return err
	}

	deps, err := initializer.InitializeDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.Close(); err != nil {
			log.Error("failed to release dependencies", "error", err)
		}
	}()

	if reset {
		deps.Logger.Warn("Resetting database", "db", cfg.DB.Name)
		if err := infra.Reset(ctx, deps.DB); err != nil {
			return fmt.Errorf("failed to reset database: %w", err)
		}
	}
	if err := seed.Run(ctx, deps.Uow, fixtures, deps.Logger); err != nil {
		return err
	}
	log.Info("Seed complete",
		"individuals", len(fixtures.Individuals),
		"employees", len(fixtures.Employees),
	)
	return nil
}
