package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pocket-ledger/backend/config"
	"github.com/pocket-ledger/backend/internal/infra/db"
	"github.com/pocket-ledger/backend/internal/infra/dependency"
	"github.com/pocket-ledger/backend/internal/integration/adapters"
	"github.com/pocket-ledger/backend/internal/integration/persistence"
)

// app holds what the subcommands share. It is filled by the root PersistentPreRunE.
type app struct {
	cfg      *config.Config
	database *db.Database
	injector *dependency.Injector
	verbose  bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Administrative tasks for the Pocket Ledger database",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output to stderr")

	cmd.AddCommand(
		newMigrateCmd(a),
		newExportCmd(a),
		newInsightsCmd(a),
	)
	return cmd
}

func (a *app) open(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	a.cfg = config.Load()

	database, err := db.NewConnection(&a.cfg.Database)
	if err != nil {
		return err
	}
	a.database = database

	injector, err := dependency.NewInjector(a.cfg, database.DB(), dependency.Options{
		Clock: adapters.NewSystemClock(),
	})
	if err != nil {
		return err
	}
	a.injector = injector
	return nil
}

func (a *app) close() error {
	if a.database == nil {
		return nil
	}
	return a.database.Close()
}

// resolveUser finds the user id for an email address.
func (a *app) resolveUser(cmd *cobra.Command, email string) (uuid.UUID, error) {
	user, err := persistence.NewUserRepository(a.database.DB()).FindByEmail(cmd.Context(), strings.ToLower(email))
	if err != nil {
		return uuid.Nil, fmt.Errorf("user %q: %w", email, err)
	}
	return user.ID, nil
}
