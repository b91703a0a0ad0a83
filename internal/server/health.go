package server

import (
	"context"
	"time"
)

// HealthCheck is the result of one dependency check.
type HealthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthReport is the overall status plus every dependency check.
type HealthReport struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]HealthCheck `json:"checks"`
}

// Healthy reports whether every check passed.
func (r *HealthReport) Healthy() bool { return r.Status == "healthy" }

// CheckHealth pings the database with a 5 second timeout.
func (s *Server) CheckHealth(ctx context.Context) *HealthReport {
	logger := s.Logger.With().Str("operation", "health_check").Logger()

	report := &HealthReport{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: s.Config.Primary.Env,
		Checks:      make(map[string]HealthCheck),
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	dbStart := time.Now()
	err := s.ping(ctx)
	took := time.Since(dbStart)

	if err != nil {
		report.Status = "unhealthy"
		report.Checks["database"] = HealthCheck{
			Status:       "unhealthy",
			ResponseTime: took.String(),
			Error:        err.Error(),
		}
		logger.Error().
			Err(err).
			Dur("response_time", took).
			Msg("database health check failed")
		return report
	}

	report.Checks["database"] = HealthCheck{
		Status:       "healthy",
		ResponseTime: took.String(),
	}
	logger.Info().
		Dur("response_time", took).
		Msg("database health check passed")
	return report
}

func (s *Server) ping(ctx context.Context) error {
	switch {
	case s.DB != nil:
		return s.DB.Pool.Ping(ctx)
	case s.SQLite != nil:
		return s.SQLite.PingContext(ctx)
	default:
		return errNoDatabase
	}
}
