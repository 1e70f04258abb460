package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nick0a/founderbleed-sub001/internal/cli"
	"github.com/nick0a/founderbleed-sub001/internal/common"
	"github.com/nick0a/founderbleed-sub001/internal/config"
	"github.com/nick0a/founderbleed-sub001/internal/storage"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report [audit-id]",
		Short: "Show a stored audit",
		Long: `Render a stored audit: financial metrics, the planning assessment, and
the recommended hires. Without an argument the most recent audit is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReport,
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	var record *storage.AuditRecord
	if len(args) == 1 {
		record, err = store.GetAudit(ctx, args[0])
	} else {
		record, err = store.GetLatestAudit(ctx)
	}
	if errors.Is(err, common.ErrNotFound) {
		return common.NewUserError(
			"No matching audit found; run 'bleed audit' first or check the id with 'bleed list'",
			err)
	}
	if err != nil {
		return fmt.Errorf("failed to load audit: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderAudit(record))
	return nil
}
