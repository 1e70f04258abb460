package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version the application
// expects. A database that cannot be migrated this far is a fatal error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema: audits and classified events",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS audits (
					id TEXT PRIMARY KEY,
					period_start DATETIME NOT NULL,
					period_end DATETIME NOT NULL,
					audit_days INTEGER NOT NULL,
					total_hours REAL NOT NULL DEFAULT 0,
					hours_unique REAL NOT NULL DEFAULT 0,
					hours_founder REAL NOT NULL DEFAULT 0,
					hours_senior REAL NOT NULL DEFAULT 0,
					hours_junior REAL NOT NULL DEFAULT 0,
					hours_ea REAL NOT NULL DEFAULT 0,
					founder_cost REAL,
					delegated_cost REAL NOT NULL DEFAULT 0,
					arbitrage REAL,
					efficiency_score INTEGER NOT NULL DEFAULT 0,
					reclaimable_hours REAL NOT NULL DEFAULT 0,
					reclaimable_hours_weekly REAL NOT NULL DEFAULT 0,
					planning_score INTEGER NOT NULL DEFAULT 0,
					planning_assessment TEXT NOT NULL DEFAULT '',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_audits_created ON audits(created_at)`,

				`CREATE TABLE IF NOT EXISTS audit_events (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					audit_id TEXT NOT NULL,
					external_event_id TEXT,
					title TEXT NOT NULL,
					description TEXT,
					start_time DATETIME NOT NULL,
					end_time DATETIME NOT NULL,
					is_all_day INTEGER NOT NULL DEFAULT 0,
					attendees_count INTEGER NOT NULL DEFAULT 0,
					is_recurring INTEGER NOT NULL DEFAULT 0,
					duration_minutes INTEGER NOT NULL,
					is_leave INTEGER NOT NULL DEFAULT 0,
					leave_method TEXT NOT NULL DEFAULT 'none',
					leave_confidence TEXT NOT NULL DEFAULT 'low',
					tier TEXT,
					final_tier TEXT,
					business_area TEXT,
					vertical TEXT,
					confidence TEXT,
					event_category TEXT,
					planning_score INTEGER NOT NULL DEFAULT 0,
					FOREIGN KEY (audit_id) REFERENCES audits(id)
				)`,
				`CREATE INDEX idx_audit_events_audit ON audit_events(audit_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Role recommendations and their tasks",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS audit_roles (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					audit_id TEXT NOT NULL,
					position INTEGER NOT NULL,
					role_title TEXT NOT NULL,
					role_tier TEXT NOT NULL,
					vertical TEXT,
					business_area TEXT NOT NULL,
					hours_per_week INTEGER NOT NULL,
					cost_weekly REAL NOT NULL DEFAULT 0,
					cost_monthly REAL NOT NULL DEFAULT 0,
					cost_annual REAL NOT NULL DEFAULT 0,
					job_description TEXT NOT NULL DEFAULT '',
					FOREIGN KEY (audit_id) REFERENCES audits(id)
				)`,
				`CREATE INDEX idx_audit_roles_audit ON audit_roles(audit_id)`,

				`CREATE TABLE IF NOT EXISTS audit_role_tasks (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					role_id INTEGER NOT NULL,
					title TEXT NOT NULL,
					hours_per_week REAL NOT NULL,
					FOREIGN KEY (role_id) REFERENCES audit_roles(id)
				)`,
				`CREATE INDEX idx_audit_role_tasks_role ON audit_role_tasks(role_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// runMigrations applies any pending migrations inside transactions.
func runMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	var current int
	if err := db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= current {
			continue
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Description, err)
		}

		if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, migration.Version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	return nil
}
