// Package ingest reads normalized calendar event exports.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/nick0a/founderbleed-sub001/internal/model"
)

// rawEventJSON mirrors one record of the calendar export. Timestamps are
// RFC 3339; all-day events may carry bare dates instead.
type rawEventJSON struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Start          string `json:"start"`
	End            string `json:"end"`
	CalendarID     string `json:"calendar_id"`
	EventType      string `json:"event_type"`
	AttendeesCount int    `json:"attendees_count"`
	IsAllDay       bool   `json:"is_all_day"`
	IsRecurring    bool   `json:"is_recurring"`
	HasMeetLink    bool   `json:"has_meet_link"`
}

// Parser implements calendar export parsing.
type Parser struct{}

// NewParser creates a new event export parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile parses a JSON calendar export and returns events. Records whose
// timestamps cannot be parsed are skipped with a warning rather than failing
// the whole import.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]model.RawEvent, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read event export: %w", err)
	}

	var records []rawEventJSON
	if err := json.Unmarshal(content, &records); err != nil {
		// Some exports wrap the list in an envelope.
		var envelope struct {
			Events []rawEventJSON `json:"events"`
		}
		if envErr := json.Unmarshal(content, &envelope); envErr != nil {
			return nil, fmt.Errorf("failed to parse event export: %w", err)
		}
		records = envelope.Events
	}

	var events []model.RawEvent
	var skipped int
	for i, record := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start, err := parseEventTime(record.Start)
		if err != nil {
			slog.Warn("Skipping event with unparseable start time",
				"index", i,
				"title", record.Title,
				"error", err)
			skipped++
			continue
		}
		end, err := parseEventTime(record.End)
		if err != nil {
			slog.Warn("Skipping event with unparseable end time",
				"index", i,
				"title", record.Title,
				"error", err)
			skipped++
			continue
		}

		events = append(events, model.RawEvent{
			ExternalEventID:   record.ID,
			Title:             record.Title,
			Description:       record.Description,
			Start:             start,
			End:               end,
			CalendarID:        record.CalendarID,
			ProviderEventType: record.EventType,
			AttendeesCount:    record.AttendeesCount,
			IsAllDay:          record.IsAllDay,
			IsRecurring:       record.IsRecurring,
			HasMeetLink:       record.HasMeetLink,
		})
	}

	slog.Info("Parsed event export",
		"total_events", len(events),
		"skipped", skipped)

	return events, nil
}

// parseEventTime accepts RFC 3339 timestamps and bare dates.
func parseEventTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
