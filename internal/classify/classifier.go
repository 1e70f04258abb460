// Package classify assigns a delegation tier, business area, vertical,
// confidence, and category to a single non-leave calendar event.
package classify

import (
	"strings"

	"github.com/nick0a/founderbleed-sub001/internal/model"
)

// attendeeOverrideThreshold is the attendee count at or above which an event
// is assumed to need the founder in the room regardless of its keywords.
const attendeeOverrideThreshold = 5

// Confidence thresholds on the total matched-keyword count.
const (
	highConfidenceMatches   = 3
	mediumConfidenceMatches = 1
)

// Classify produces the delegation classification for one event. It is a
// pure function of its inputs.
func Classify(event *model.RawEvent, isSoloFounder bool) model.ClassificationResult {
	text := strings.ToLower(event.Title + " " + event.Description)

	area, areaKeyword := matchBusinessArea(text)
	tier, tierMatches := matchTier(text)

	keywords := make([]string, 0, 1+len(tierMatches))
	if areaKeyword != "" {
		keywords = append(keywords, areaKeyword)
	}
	keywords = append(keywords, tierMatches...)

	confidence := confidenceFor(len(keywords))

	// Large meetings pull the founder in no matter what the keywords say.
	if event.AttendeesCount >= attendeeOverrideThreshold {
		if isSoloFounder {
			tier = model.TierUnique
		} else {
			tier = model.TierFounder
		}
		confidence = model.ConfidenceLow
	}

	return model.ClassificationResult{
		SuggestedTier:   tier,
		BusinessArea:    area,
		Vertical:        verticalFor(area),
		Confidence:      confidence,
		EventCategory:   matchCategory(text),
		KeywordsMatched: keywords,
	}
}

// FinalTier applies the solo-founder adjustment to a suggested tier: a solo
// founder has no cofounder to hand founder-tier work to, so it stays with
// them as unique.
func FinalTier(tier model.Tier, isSoloFounder bool) model.Tier {
	if tier == model.TierFounder && isSoloFounder {
		return model.TierUnique
	}
	return tier
}

// matchBusinessArea scans the area table in order and stops at the first
// area with a matching keyword. Returns the default area and no keyword when
// nothing matches.
func matchBusinessArea(text string) (area, keyword string) {
	for _, entry := range businessAreas {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.area, kw
			}
		}
	}
	return model.DefaultBusinessArea, ""
}

// matchTier scans the whole tier table without breaking on a match, so the
// last matching tier in declared order wins. This mirrors the behavior the
// product has always shipped; see DESIGN.md before changing it.
func matchTier(text string) (model.Tier, []string) {
	tier := model.TierSenior
	var matched []string

	for _, entry := range tierScan {
		hit := false
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				matched = append(matched, kw)
				hit = true
			}
		}
		if hit {
			tier = entry.tier
		}
	}

	return tier, matched
}

// verticalFor maps a business area onto the engineering/business axis.
func verticalFor(area string) model.Vertical {
	if engineeringAreas[area] {
		return model.VerticalEngineering
	}
	return model.VerticalBusiness
}

// matchCategory picks the event category, travel having top priority, then
// exercise, then leisure. Work is the default.
func matchCategory(text string) model.EventCategory {
	for _, kw := range travelKeywords {
		if strings.Contains(text, kw) {
			return model.CategoryTravel
		}
	}
	for _, kw := range exerciseKeywords {
		if strings.Contains(text, kw) {
			return model.CategoryExercise
		}
	}
	for _, kw := range leisureKeywords {
		if strings.Contains(text, kw) {
			return model.CategoryLeisure
		}
	}
	return model.CategoryWork
}

// confidenceFor converts a matched-keyword count into a confidence level.
func confidenceFor(matches int) model.Confidence {
	switch {
	case matches >= highConfidenceMatches:
		return model.ConfidenceHigh
	case matches >= mediumConfidenceMatches:
		return model.ConfidenceMedium
	default:
		return model.ConfidenceLow
	}
}
