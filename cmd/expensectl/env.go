package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/expense_manager_backend/internal/core/ports/services"
	"github.com/SscSPs/expense_manager_backend/internal/core/services"
	"github.com/SscSPs/expense_manager_backend/internal/events"
	"github.com/SscSPs/expense_manager_backend/internal/platform/config"
	"github.com/SscSPs/expense_manager_backend/internal/repositories/database"
	"github.com/SscSPs/expense_manager_backend/pkg/logging"
	"github.com/google/subcommands"
)

// environment is shared by every command. cfg is loaded on first use so
// help and flags work without a configured store.
type environment struct {
	cfg *config.Config
	out io.Writer
	// style is a glamour standard style; empty picks one from the terminal.
	style string
}

func commands(env *environment) []subcommands.Command {
	return []subcommands.Command{
		&migrateCmd{env: env},
		&balancesCmd{env: env},
		&auditCmd{env: env},
	}
}

func (e *environment) config() (*config.Config, error) {
	if e.cfg != nil {
		return e.cfg, nil
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logging.Setup(os.Stderr, cfg.LogLevel, cfg.IsProduction)
	e.cfg = cfg
	return cfg, nil
}

// services opens the store and builds the service layer without events or metrics.
func (e *environment) services(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
	cfg, err := e.config()
	if err != nil {
		return nil, nil, err
	}
	store, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return services.NewServiceContainer(cfg, store.Repos, events.NoopPublisher{}, nil), store.Close, nil
}

func (e *environment) print(markdown string) error {
	rendered, err := renderMarkdown(markdown, e.style)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(e.out, rendered)
	return err
}

func fail(err error) subcommands.ExitStatus {
	slog.Error("Command failed", slog.String("error", err.Error()))
	return subcommands.ExitFailure
}
