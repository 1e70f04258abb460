// Package storage persists audit runs in SQLite.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/nick0a/founderbleed-sub001/internal/model"
)

// SQLiteStorage implements audit persistence using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// AuditRecord is one persisted audit run: the engine's full result plus
// identity and period metadata.
type AuditRecord struct {
	CreatedAt   time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
	ID          string
	Events      []model.ClassifiedEvent
	Roles       []model.RoleRecommendation
	Metrics     model.AuditMetrics
	Planning    model.PlanningScoreResult
	AuditDays   int
}

// AuditSummary is the listing view of a stored audit.
type AuditSummary struct {
	CreatedAt       time.Time
	PeriodStart     time.Time
	PeriodEnd       time.Time
	ID              string
	TotalHours      float64
	EfficiencyScore int
	PlanningScore   int
	RoleCount       int
}

// NewSQLiteStorage creates a new SQLite storage instance at dbPath, creating
// the parent directory when needed.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{db: db, dbPath: dbPath}, nil
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	return runMigrations(ctx, s.db)
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
