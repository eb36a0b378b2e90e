package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirasaad/banking/infra/initializer"
	"github.com/amirasaad/banking/pkg/cli"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/service/auth"
	"github.com/amirasaad/banking/pkg/service/directory"
	"github.com/amirasaad/banking/pkg/service/ledger"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
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

	svc := cli.Services{
		Auth:      auth.New(deps.Uow, deps.Logger),
		Ledger:    ledger.New(deps.Uow, deps.Logger),
		Directory: directory.New(deps.Uow, deps.Logger),
	}
	deps.Logger.Info("Starting console", "env", cfg.Env)
	return cli.New(svc, os.Stdin, os.Stdout, deps.Logger).Run(ctx)
}
