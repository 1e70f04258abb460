package model

// Tier is the delegation level of the skill an event requires.
type Tier string

// Tier constants, ordered from least to most delegable.
const (
	TierUnique  Tier = "unique"
	TierFounder Tier = "founder"
	TierSenior  Tier = "senior"
	TierJunior  Tier = "junior"
	TierEA      Tier = "ea"
)

// Tiers lists every valid tier in declared order.
func Tiers() []Tier {
	return []Tier{TierUnique, TierFounder, TierSenior, TierJunior, TierEA}
}

// IsValid reports whether the tier is one of the five known values.
func (t Tier) IsValid() bool {
	switch t {
	case TierUnique, TierFounder, TierSenior, TierJunior, TierEA:
		return true
	}
	return false
}

// IsDelegable reports whether work at this tier can be handed to a hire.
func (t Tier) IsDelegable() bool {
	return t == TierSenior || t == TierJunior || t == TierEA
}

// NormalizeTier maps unknown tier values to the senior default.
func NormalizeTier(t Tier) Tier {
	if !t.IsValid() {
		return TierSenior
	}
	return t
}

// Vertical is the engineering/business axis used to pick tier-specific rates.
type Vertical string

// Vertical constants.
const (
	VerticalEngineering Vertical = "engineering"
	VerticalBusiness    Vertical = "business"
)

// NormalizeVertical maps unknown vertical values to the business default.
func NormalizeVertical(v Vertical) Vertical {
	if v != VerticalEngineering && v != VerticalBusiness {
		return VerticalBusiness
	}
	return v
}

// Confidence expresses how sure a classifier is about its result.
type Confidence string

// Confidence constants.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// EventCategory distinguishes working time from personal time on the calendar.
type EventCategory string

// Event category constants. Work is the default.
const (
	CategoryWork     EventCategory = "work"
	CategoryLeisure  EventCategory = "leisure"
	CategoryExercise EventCategory = "exercise"
	CategoryTravel   EventCategory = "travel"
)

// DefaultBusinessArea is assigned when no business-area keyword matches.
const DefaultBusinessArea = "Operations"

// ClassificationResult is the delegation classification of a single non-leave
// event.
type ClassificationResult struct {
	BusinessArea    string
	SuggestedTier   Tier
	Vertical        Vertical
	Confidence      Confidence
	EventCategory   EventCategory
	KeywordsMatched []string
}
