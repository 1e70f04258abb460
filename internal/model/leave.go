package model

// Leave detection method tags. Each identifies which rule in the cascade
// fired for a given event.
const (
	LeaveMethodProviderType   = "provider_type"
	LeaveMethodKeywordTitle   = "keyword_title"
	LeaveMethodKeywordOOO     = "keyword_ooo"
	LeaveMethodKeywordMedical = "keyword_medical"
	LeaveMethodKeywordMatch   = "keyword_match"
	LeaveMethodPatternTravel  = "pattern_travel"
	LeaveMethodPatternBlocked = "pattern_blocked"
	LeaveMethodNone           = "none"
)

// LeaveResult records whether an event represents an absence and which
// detection rule decided it.
type LeaveResult struct {
	Method     string
	Confidence Confidence
	IsLeave    bool
}
