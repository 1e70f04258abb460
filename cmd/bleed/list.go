package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nick0a/founderbleed-sub001/internal/cli"
	"github.com/nick0a/founderbleed-sub001/internal/config"
	"github.com/nick0a/founderbleed-sub001/internal/storage"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored audits",
		RunE:  runList,
	}

	cmd.Flags().IntP("limit", "n", 20, "maximum number of audits to show")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	summaries, err := store.ListAudits(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list audits: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderAuditList(summaries))
	return nil
}
