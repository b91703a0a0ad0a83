// Package server defines the Server struct that composes the app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - the application logger
//   - the database handle (pgx pool or SQLite)
//   - the instrumented executor every repository shares
//   - the Prometheus collectors of that executor
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dame620/firstbackjhipstergradle/internal/config"
	"github.com/dame620/firstbackjhipstergradle/internal/database"
	"github.com/dame620/firstbackjhipstergradle/internal/executor"
	"github.com/dame620/firstbackjhipstergradle/internal/query"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

var errNoDatabase = errors.New("no database connection")

// Server is the application container that holds shared resources.
//
// Exactly one of DB (postgres) and SQLite is set, depending on the
// configured driver.
type Server struct {
	Config *config.Config
	Logger *zerolog.Logger

	DB     *database.Database
	SQLite *sql.DB

	Executor executor.Executor
	Metrics  *executor.Metrics
}

// New connects to the configured database and builds the shared executor.
// Metrics are registered on reg when enabled; reg may be nil.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, reg prometheus.Registerer) (*Server, error) {
	s := &Server{
		Config: cfg,
		Logger: logger,
	}

	var base executor.Executor
	switch cfg.Database.Driver {
	case "postgres":
		db, err := database.New(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		s.DB = db
		base = executor.NewPgx(db.Pool)
	case "sqlite":
		db, err := database.OpenSQLite(ctx, cfg.Database.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		s.SQLite = db
		base = executor.NewSQL(db, query.SQLite)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	obs := cfg.Observability
	if obs == nil {
		obs = config.DefaultObservabilityConfig()
	}
	if obs.Metrics.Enabled {
		m, err := executor.NewMetrics(reg, obs.Metrics.Namespace)
		if err != nil {
			s.Shutdown()
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		s.Metrics = m
	}

	s.Executor = executor.Instrument(base, *logger, s.Metrics, obs.Logging.SlowQueryThreshold)
	return s, nil
}

// Shutdown closes the database handle.
func (s *Server) Shutdown() error {
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}
	if s.SQLite != nil {
		if err := s.SQLite.Close(); err != nil {
			return fmt.Errorf("failed to close sqlite database: %w", err)
		}
	}
	return nil
}
