package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/nick0a/founderbleed-sub001/internal/cli"
	"github.com/nick0a/founderbleed-sub001/internal/common"
	"github.com/nick0a/founderbleed-sub001/internal/config"
	"github.com/nick0a/founderbleed-sub001/internal/engine"
	"github.com/nick0a/founderbleed-sub001/internal/ingest"
	"github.com/nick0a/founderbleed-sub001/internal/model"
	"github.com/nick0a/founderbleed-sub001/internal/storage"
)

func auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Run a time audit over a calendar export",
		Long: `Classify every event in a calendar export, price the time against
delegation rates, and store the resulting audit.

The export is a JSON file of normalized calendar events. When --from or --to
is omitted the audit period is derived from the events themselves.`,
		RunE: runAudit,
	}

	cmd.Flags().StringP("events", "e", "", "path to the JSON calendar export (required)")
	cmd.Flags().String("from", "", "audit period start (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "audit period end (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("events")

	return cmd
}

func runAudit(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	eventsPath, _ := cmd.Flags().GetString("events")
	fromFlag, _ := cmd.Flags().GetString("from")
	toFlag, _ := cmd.Flags().GetString("to")

	rates := config.Rates()
	if err := rates.Validate(); err != nil {
		return common.NewUserError(
			"Check the rates section of your config file; all delegation rates must be positive",
			err)
	}

	file, err := os.Open(eventsPath)
	if err != nil {
		return common.NewUserError(
			fmt.Sprintf("Could not open %s; export your calendar first and pass the file with --events", eventsPath),
			err)
	}
	defer func() { _ = file.Close() }()

	events, err := ingest.NewParser().ParseFile(ctx, file)
	if err != nil {
		return fmt.Errorf("failed to parse events: %w", err)
	}
	if len(events) == 0 {
		return common.ErrNoEvents
	}

	periodStart, periodEnd, err := resolvePeriod(fromFlag, toFlag, events)
	if err != nil {
		return err
	}

	bar := newAuditProgressBar(len(events))
	result := engine.Run(engine.Request{
		PeriodStart:       periodStart,
		PeriodEnd:         periodEnd,
		Events:            events,
		ExclusionKeywords: config.ExclusionKeywords(),
		Rates:             rates,
		IsSoloFounder:     config.IsSoloFounder(),
		Progress: func(_, _ int) {
			_ = bar.Add(1)
		},
	})

	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	record := &storage.AuditRecord{
		ID:          uuid.NewString(),
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		AuditDays:   result.AuditDays,
		Events:      result.Events,
		Roles:       result.Roles,
		Metrics:     result.Metrics,
		Planning:    result.Planning,
	}
	if err := store.SaveAudit(ctx, record); err != nil {
		return fmt.Errorf("failed to save audit: %w", err)
	}

	common.LogInfo("Audit complete", common.Fields{
		"audit_id":    record.ID,
		"events":      len(record.Events),
		"roles":       len(record.Roles),
		"total_hours": record.Metrics.TotalHours,
	})

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderAudit(record))
	return nil
}

// resolvePeriod parses the period flags, falling back to the span the events
// themselves cover.
func resolvePeriod(fromFlag, toFlag string, events []model.RawEvent) (time.Time, time.Time, error) {
	var start, end time.Time

	if fromFlag != "" {
		t, err := time.Parse("2006-01-02", fromFlag)
		if err != nil {
			return start, end, fmt.Errorf("invalid --from date %q: %w", fromFlag, err)
		}
		start = t
	}
	if toFlag != "" {
		t, err := time.Parse("2006-01-02", toFlag)
		if err != nil {
			return start, end, fmt.Errorf("invalid --to date %q: %w", toFlag, err)
		}
		end = t
	}

	if start.IsZero() || end.IsZero() {
		derivedStart, derivedEnd := eventSpan(events)
		if start.IsZero() {
			start = derivedStart
		}
		if end.IsZero() {
			end = derivedEnd
		}
	}

	if !end.After(start) {
		return start, end, common.ErrInvalidPeriod
	}
	return start, end, nil
}

func eventSpan(events []model.RawEvent) (time.Time, time.Time) {
	start, end := events[0].Start, events[0].End
	for _, ev := range events[1:] {
		if ev.Start.Before(start) {
			start = ev.Start
		}
		if ev.End.After(end) {
			end = ev.End
		}
	}
	return start, end
}

func newAuditProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Auditing events...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
