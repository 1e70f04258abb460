// Package model defines the core domain models used throughout the application.
package model

import (
	"math"
	"time"
)

// allDayHoursPerDay is how many working hours an all-day event counts for.
const allDayHoursPerDay = 8

// RawEvent represents a single normalized calendar event as handed over by
// the calendar-fetch collaborator. It is never mutated after construction.
type RawEvent struct {
	Start             time.Time
	End               time.Time
	ExternalEventID   string
	Title             string
	Description       string
	CalendarID        string
	ProviderEventType string
	AttendeesCount    int
	IsAllDay          bool
	IsRecurring       bool
	HasMeetLink       bool
}

// DurationMinutes derives the event's duration. All-day events count a fixed
// eight working hours per day; timed events use the wall-clock delta floored
// to whole minutes. Never negative.
func (e *RawEvent) DurationMinutes() int {
	if e.IsAllDay {
		days := int(math.Round(e.End.Sub(e.Start).Hours() / 24))
		if days < 0 {
			days = 0
		}
		return days * allDayHoursPerDay * 60
	}

	minutes := int(math.Floor(e.End.Sub(e.Start).Minutes()))
	if minutes < 0 {
		return 0
	}
	return minutes
}

// ClassifiedEvent is a raw event after the full per-event pipeline has run.
// Classification is nil when the event was detected as leave.
type ClassifiedEvent struct {
	Classification  *ClassificationResult
	Event           RawEvent
	Leave           LeaveResult
	FinalTier       Tier
	DurationMinutes int
	PlanningScore   int
}

// DurationHours returns the event duration in fractional hours.
func (c *ClassifiedEvent) DurationHours() float64 {
	return float64(c.DurationMinutes) / 60.0
}

// IsLeave reports whether the event was classified as an absence.
func (c *ClassifiedEvent) IsLeave() bool {
	return c.Leave.IsLeave
}
