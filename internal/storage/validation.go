package storage

import (
	"context"
	"fmt"

	"github.com/nick0a/founderbleed-sub001/internal/model"
)

// validateContext ensures a usable context was supplied.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context is required")
	}
	return ctx.Err()
}

// validateString ensures a required string argument is non-empty.
func validateString(value, name string) error {
	if value == "" {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}

// validateAuditRecord checks the invariants a record must hold before it is
// written.
func validateAuditRecord(record *AuditRecord) error {
	if record == nil {
		return fmt.Errorf("audit record is required")
	}
	if err := validateString(record.ID, "audit id"); err != nil {
		return err
	}
	if record.AuditDays < 1 {
		return fmt.Errorf("audit days must be at least 1, got %d", record.AuditDays)
	}
	if len(record.Roles) > model.MaxRecommendedRoles {
		return fmt.Errorf("audit may carry at most %d roles, got %d",
			model.MaxRecommendedRoles, len(record.Roles))
	}
	for i := range record.Roles {
		if err := record.Roles[i].Validate(); err != nil {
			return fmt.Errorf("invalid role at index %d: %w", i, err)
		}
	}
	return nil
}
