// Package engine orchestrates the full time-audit pipeline: pre-processing,
// leave detection, classification, planning scores, financial metrics, and
// hiring recommendations.
//
// Everything here is a pure transformation over in-memory structures. All
// I/O (fetching events, persistence, rendering) belongs to the callers;
// audits for different users may therefore run fully in parallel.
package engine

import (
	"math"
	"strings"
	"time"

	"github.com/nick0a/founderbleed-sub001/internal/classify"
	"github.com/nick0a/founderbleed-sub001/internal/leave"
	"github.com/nick0a/founderbleed-sub001/internal/metrics"
	"github.com/nick0a/founderbleed-sub001/internal/model"
	"github.com/nick0a/founderbleed-sub001/internal/planning"
	"github.com/nick0a/founderbleed-sub001/internal/roles"
)

// Request carries everything one audit run needs. Progress, when set, is
// invoked after each event is processed; it must not mutate anything.
type Request struct {
	Progress          func(done, total int)
	PeriodStart       time.Time
	PeriodEnd         time.Time
	Events            []model.RawEvent
	ExclusionKeywords []string
	Rates             model.RateConfig
	IsSoloFounder     bool
}

// Result is the complete outcome of one audit run, ready for the
// persistence and rendering layers.
type Result struct {
	Events    []model.ClassifiedEvent
	Roles     []model.RoleRecommendation
	Metrics   model.AuditMetrics
	Planning  model.PlanningScoreResult
	AuditDays int
}

// AuditDays derives the period length in whole days, never below one.
func (r *Request) AuditDays() int {
	days := int(math.Round(r.PeriodEnd.Sub(r.PeriodStart).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// Run executes the audit pipeline. Identical inputs always produce an
// identical result.
func Run(req Request) Result {
	auditDays := req.AuditDays()

	classified := make([]model.ClassifiedEvent, 0, len(req.Events))
	for i := range req.Events {
		ev, kept := processEvent(&req.Events[i], req.ExclusionKeywords, req.IsSoloFounder)
		if kept {
			classified = append(classified, ev)
		}
		if req.Progress != nil {
			req.Progress(i+1, len(req.Events))
		}
	}

	return Result{
		Events:    classified,
		Metrics:   metrics.Calculate(classified, req.Rates, auditDays),
		Planning:  planning.ScorePeriod(classified, auditDays),
		Roles:     roles.Recommend(classified, req.Rates, auditDays),
		AuditDays: auditDays,
	}
}

// processEvent runs the per-event stages. Events with no usable duration or
// an excluded title are dropped entirely.
func processEvent(raw *model.RawEvent, exclusions []string, isSoloFounder bool) (model.ClassifiedEvent, bool) {
	if titleExcluded(raw.Title, exclusions) {
		return model.ClassifiedEvent{}, false
	}

	duration := raw.DurationMinutes()
	if duration <= 0 {
		return model.ClassifiedEvent{}, false
	}

	leaveResult := leave.Detect(raw)
	if leaveResult.IsLeave {
		return model.ClassifiedEvent{
			Event:           *raw,
			Leave:           leaveResult,
			DurationMinutes: duration,
		}, true
	}

	classification := classify.Classify(raw, isSoloFounder)

	return model.ClassifiedEvent{
		Event:           *raw,
		Classification:  &classification,
		Leave:           leaveResult,
		FinalTier:       classify.FinalTier(classification.SuggestedTier, isSoloFounder),
		DurationMinutes: duration,
		PlanningScore:   planning.ScoreEvent(raw, duration),
	}, true
}

// titleExcluded applies the user's exclusion keywords as case-insensitive
// substring matches against the title.
func titleExcluded(title string, exclusions []string) bool {
	if len(exclusions) == 0 {
		return false
	}
	lower := strings.ToLower(title)
	for _, kw := range exclusions {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
