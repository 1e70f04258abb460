// Package leave classifies whether a calendar event represents an absence.
//
// Detection is a prioritized rule cascade: rules are evaluated in declared
// order and the first match wins, so a provider-declared out-of-office type
// always beats keyword heuristics, and title keywords always beat the broad
// title+description sweep.
package leave

import (
	"strings"

	"github.com/nick0a/founderbleed-sub001/internal/model"
)

// rule is one step of the cascade. The method tag identifies which rule
// fired in the returned result.
type rule struct {
	matches    func(in input) bool
	method     string
	confidence model.Confidence
}

// input is the pre-normalized view of an event the rules operate on.
type input struct {
	title        string
	combined     string
	providerType string
	isAllDay     bool
}

// cascade holds the rules in priority order. Iteration order is load-bearing.
var cascade = []rule{
	{
		method:     model.LeaveMethodProviderType,
		confidence: model.ConfidenceHigh,
		matches: func(in input) bool {
			for _, t := range providerOOOTypes {
				if in.providerType == t {
					return true
				}
			}
			return false
		},
	},
	{
		method:     model.LeaveMethodKeywordTitle,
		confidence: model.ConfidenceHigh,
		matches: func(in input) bool {
			return containsAny(in.title, vacationTitleKeywords)
		},
	},
	{
		method:     model.LeaveMethodKeywordOOO,
		confidence: model.ConfidenceHigh,
		matches: func(in input) bool {
			return containsAny(in.title, oooTitleKeywords)
		},
	},
	{
		method:     model.LeaveMethodKeywordMedical,
		confidence: model.ConfidenceHigh,
		matches: func(in input) bool {
			return containsAny(in.title, medicalTitleKeywords)
		},
	},
	{
		method:     model.LeaveMethodKeywordMatch,
		confidence: model.ConfidenceMedium,
		matches: func(in input) bool {
			return containsAny(in.combined, broadLeaveKeywords)
		},
	},
	{
		method:     model.LeaveMethodPatternTravel,
		confidence: model.ConfidenceLow,
		matches: func(in input) bool {
			return in.isAllDay && containsAny(in.title, travelPatternKeywords)
		},
	},
	{
		method:     model.LeaveMethodPatternBlocked,
		confidence: model.ConfidenceLow,
		matches: func(in input) bool {
			return in.isAllDay && containsAny(in.title, blockedPatternKeywords)
		},
	},
}

// Detect runs the cascade against a single event.
func Detect(event *model.RawEvent) model.LeaveResult {
	in := input{
		title:        strings.ToLower(event.Title),
		combined:     strings.ToLower(event.Title + " " + event.Description),
		providerType: strings.ToLower(event.ProviderEventType),
		isAllDay:     event.IsAllDay,
	}

	for _, r := range cascade {
		if r.matches(in) {
			return model.LeaveResult{
				IsLeave:    true,
				Method:     r.method,
				Confidence: r.confidence,
			}
		}
	}

	return model.LeaveResult{
		IsLeave:    false,
		Method:     model.LeaveMethodNone,
		Confidence: model.ConfidenceLow,
	}
}

// containsAny reports whether s contains any of the given lowercase keywords.
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
