// Package planning scores calendar hygiene, both per event and aggregated
// over an audit period with a generated narrative assessment.
package planning

import (
	"math"
	"strings"

	"github.com/nick0a/founderbleed-sub001/internal/model"
)

// Per-event rubric weights. Points are additive.
const (
	titleFullPoints    = 40
	titlePartialPoints = 20
	durationPoints     = 30
	descriptionPoints  = 20
	recurringPoints    = 10
)

// Realistic duration band for a deliberately planned event, in minutes.
const (
	minRealisticMinutes = 15
	maxRealisticMinutes = 240
)

// minDescriptionLength is the shortest description that counts as real.
const minDescriptionLength = 10

// Aggregate component weights. They sum to 1.
const (
	coverageWeight    = 0.25
	titleWeight       = 0.25
	durationWeight    = 0.25
	recurringWeight   = 0.15
	descriptionWeight = 0.10
)

// expectedWeeklyHours is the full working week coverage is measured against.
const expectedWeeklyHours = 40

// vagueTitles are titles that say nothing about the event. Matched exactly
// or as a prefix, case-insensitively.
var vagueTitles = []string{
	"call", "meeting", "meet", "sync", "chat", "catch up", "catchup", "tbd",
	"hold", "block", "busy", "1:1",
}

// ScoreEvent rates a single event's hygiene from 0 to 100.
func ScoreEvent(event *model.RawEvent, durationMinutes int) int {
	score := 0

	words := len(strings.Fields(event.Title))
	switch {
	case words > 3 && !isVagueTitle(event.Title):
		score += titleFullPoints
	case words > 1:
		score += titlePartialPoints
	}

	if !event.IsAllDay && durationMinutes >= minRealisticMinutes && durationMinutes <= maxRealisticMinutes {
		score += durationPoints
	}

	if hasRealDescription(event.Description) {
		score += descriptionPoints
	}

	if event.IsRecurring {
		score += recurringPoints
	}

	return score
}

// ScorePeriod aggregates hygiene over every event kept for one audit period
// and composes the narrative assessment.
func ScorePeriod(events []model.ClassifiedEvent, auditDays int) model.PlanningScoreResult {
	if len(events) == 0 {
		return model.PlanningScoreResult{
			Score:      0,
			Assessment: emptyAssessment,
		}
	}

	if auditDays < 1 {
		auditDays = 1
	}

	var scheduledHours float64
	descriptiveTitles := 0
	realisticDurations := 0
	recurring := 0
	described := 0

	for i := range events {
		ev := &events[i]
		scheduledHours += ev.DurationHours()

		if words := len(strings.Fields(ev.Event.Title)); words > 3 && !isVagueTitle(ev.Event.Title) {
			descriptiveTitles++
		}
		if !ev.Event.IsAllDay && ev.DurationMinutes >= minRealisticMinutes && ev.DurationMinutes <= maxRealisticMinutes {
			realisticDurations++
		}
		if ev.Event.IsRecurring {
			recurring++
		}
		if hasRealDescription(ev.Event.Description) {
			described++
		}
	}

	total := float64(len(events))
	expectedHours := float64(auditDays) / 7 * expectedWeeklyHours

	components := model.PlanningComponents{
		EventCoverage:      math.Min(100, scheduledHours/expectedHours*100),
		TitleQuality:       float64(descriptiveTitles) / total * 100,
		DurationAccuracy:   float64(realisticDurations) / total * 100,
		RecurringUsage:     float64(recurring) / total * 100,
		DescriptionQuality: float64(described) / total * 100,
	}

	weighted := components.EventCoverage*coverageWeight +
		components.TitleQuality*titleWeight +
		components.DurationAccuracy*durationWeight +
		components.RecurringUsage*recurringWeight +
		components.DescriptionQuality*descriptionWeight

	return model.PlanningScoreResult{
		Score:      int(math.Round(weighted)),
		Components: components,
		Assessment: buildAssessment(components),
	}
}

// isVagueTitle reports whether the title exactly matches or starts with one
// of the vague-title entries.
func isVagueTitle(title string) bool {
	normalized := strings.ToLower(strings.TrimSpace(title))
	for _, vague := range vagueTitles {
		if normalized == vague || strings.HasPrefix(normalized, vague) {
			return true
		}
	}
	return false
}

func hasRealDescription(description string) bool {
	return len(strings.TrimSpace(description)) > minDescriptionLength
}
