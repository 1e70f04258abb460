package ingest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_Array(t *testing.T) {
	input := `[
		{
			"id": "evt-1",
			"title": "Sprint planning",
			"description": "backlog grooming",
			"start": "2025-03-03T09:00:00Z",
			"end": "2025-03-03T10:30:00Z",
			"calendar_id": "primary",
			"attendees_count": 4,
			"is_recurring": true,
			"has_meet_link": true
		},
		{
			"id": "evt-2",
			"title": "Conference",
			"start": "2025-03-05",
			"end": "2025-03-07",
			"is_all_day": true
		}
	]`

	parser := NewParser()
	events, err := parser.ParseFile(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, events, 2)

	first := events[0]
	assert.Equal(t, "evt-1", first.ExternalEventID)
	assert.Equal(t, "Sprint planning", first.Title)
	assert.Equal(t, time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), first.Start)
	assert.Equal(t, 4, first.AttendeesCount)
	assert.True(t, first.IsRecurring)
	assert.True(t, first.HasMeetLink)
	assert.False(t, first.IsAllDay)

	second := events[1]
	assert.True(t, second.IsAllDay)
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), second.Start)
	assert.Equal(t, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), second.End)
}

func TestParseFile_Envelope(t *testing.T) {
	input := `{"events": [
		{"id": "evt-1", "title": "Standup", "start": "2025-03-03T09:00:00Z", "end": "2025-03-03T09:15:00Z"}
	]}`

	parser := NewParser()
	events, err := parser.ParseFile(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Standup", events[0].Title)
}

func TestParseFile_SkipsBadTimestamps(t *testing.T) {
	input := `[
		{"id": "evt-1", "title": "Good", "start": "2025-03-03T09:00:00Z", "end": "2025-03-03T10:00:00Z"},
		{"id": "evt-2", "title": "Bad start", "start": "yesterday", "end": "2025-03-03T10:00:00Z"},
		{"id": "evt-3", "title": "Missing end", "start": "2025-03-03T09:00:00Z", "end": ""}
	]`

	parser := NewParser()
	events, err := parser.ParseFile(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Good", events[0].Title)
}

func TestParseFile_InvalidJSON(t *testing.T) {
	parser := NewParser()
	_, err := parser.ParseFile(context.Background(), strings.NewReader("not json"))
	assert.Error(t, err)
}

func TestParseFile_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	parser := NewParser()
	_, err := parser.ParseFile(ctx, strings.NewReader(`[
		{"id": "evt-1", "title": "Good", "start": "2025-03-03T09:00:00Z", "end": "2025-03-03T10:00:00Z"}
	]`))
	assert.ErrorIs(t, err, context.Canceled)
}
