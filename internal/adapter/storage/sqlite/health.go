package sqlite

import (
	"context"
	"database/sql"
)

// HealthCheck implements ports.HealthChecker for the wallet database.
type HealthCheck struct {
	db *sql.DB
}

// NewHealthCheck creates a SQLite health checker.
func NewHealthCheck(db *sql.DB) *HealthCheck {
	return &HealthCheck{db: db}
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "sqlite"
}

// Healthy checks database connectivity.
func (h *HealthCheck) Healthy(ctx context.Context) error {
	return h.db.PingContext(ctx)
}
