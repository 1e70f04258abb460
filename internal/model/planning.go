package model

// PlanningComponents are the five weighted inputs to the aggregate planning
// score, each already expressed on a 0-100 scale.
type PlanningComponents struct {
	EventCoverage      float64
	TitleQuality       float64
	DurationAccuracy   float64
	RecurringUsage     float64
	DescriptionQuality float64
}

// PlanningScoreResult is the calendar-hygiene outcome for one audit period.
// Assessment is markdown, ready to render verbatim.
type PlanningScoreResult struct {
	Assessment string
	Components PlanningComponents
	Score      int
}
