package main

import (
	"fmt"
	"io"

	"github.com/dame620/firstbackjhipstergradle/internal/config"
	"github.com/dame620/firstbackjhipstergradle/internal/database"
	"github.com/dame620/firstbackjhipstergradle/internal/lib/utils"
	"github.com/dame620/firstbackjhipstergradle/internal/logger"
	"github.com/dame620/firstbackjhipstergradle/internal/repository"
	"github.com/dame620/firstbackjhipstergradle/internal/server"
	"github.com/dame620/firstbackjhipstergradle/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app holds what the subcommands share. It is filled lazily so that
// --help works without a database.
type app struct {
	out      io.Writer
	cfg      *config.Config
	log      zerolog.Logger
	srv      *server.Server
	services *service.Services
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "scheduler",
		Short:         "Inspect and migrate the appointment scheduling database",
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.NewLogger(cfg.Observability)
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.srv == nil {
				return nil
			}
			return a.srv.Shutdown()
		},
	}
	root.SetOut(out)

	root.AddCommand(newMigrateCmd(a), newHealthCmd(a))
	for _, cmd := range resourceCommands(a) {
		root.AddCommand(cmd)
	}
	return root
}

// connect opens the configured database and wires repositories and services.
func (a *app) connect(cmd *cobra.Command) error {
	srv, err := server.New(cmd.Context(), a.cfg, &a.log, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	a.srv = srv

	repos, err := repository.NewRepositories(srv)
	if err != nil {
		return err
	}
	a.services, err = service.NewService(srv, repos)
	return err
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch a.cfg.Database.Driver {
			case "postgres":
				return database.Migrate(cmd.Context(), &a.log, a.cfg)
			case "sqlite":
				// Opening a SQLite database applies the embedded schema.
				db, err := database.OpenSQLite(cmd.Context(), a.cfg.Database.Path, &a.log)
				if err != nil {
					return err
				}
				return db.Close()
			default:
				return fmt.Errorf("unsupported database driver %q", a.cfg.Database.Driver)
			}
		},
	}
}

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check database connectivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.connect(cmd); err != nil {
				return err
			}
			report := a.srv.CheckHealth(cmd.Context())
			if err := utils.PrintJSON(a.out, report); err != nil {
				return err
			}
			if !report.Healthy() {
				return fmt.Errorf("database is %s", report.Status)
			}
			return nil
		},
	}
}
