package planning

import (
	"strings"

	"github.com/nick0a/founderbleed-sub001/internal/model"
)

// emptyAssessment is returned verbatim for an empty audit period.
const emptyAssessment = "No events found in the audit period, so there is nothing to assess yet."

// Section fallbacks when no threshold rule fires.
const (
	defaultStrength       = "Calendar habits are developing; nothing stands out yet."
	defaultImprovement    = "No major planning gaps detected this period."
	defaultRecommendation = "Keep scheduling deliberately and re-audit next period."
)

// narrativeRule adds a bullet to one of the three sections when its
// threshold predicate holds for the component scores.
type narrativeRule struct {
	applies func(c model.PlanningComponents) bool
	section int
	text    string
}

const (
	sectionStrengths = iota
	sectionImprovements
	sectionRecommendations
)

// narrativeRules are evaluated independently; every firing rule contributes
// its bullet.
var narrativeRules = []narrativeRule{
	{
		section: sectionStrengths,
		text:    "Most of your working hours are captured on the calendar.",
		applies: func(c model.PlanningComponents) bool { return c.EventCoverage >= 80 },
	},
	{
		section: sectionStrengths,
		text:    "Event titles are mostly descriptive, which makes delegation analysis reliable.",
		applies: func(c model.PlanningComponents) bool { return c.TitleQuality >= 70 },
	},
	{
		section: sectionStrengths,
		text:    "Events are scheduled with realistic durations.",
		applies: func(c model.PlanningComponents) bool { return c.DurationAccuracy >= 70 },
	},
	{
		section: sectionStrengths,
		text:    "Strong use of recurring events keeps routine work predictable.",
		applies: func(c model.PlanningComponents) bool { return c.RecurringUsage > 50 },
	},
	{
		section: sectionImprovements,
		text:    "Less than half of your expected working hours appear on the calendar.",
		applies: func(c model.PlanningComponents) bool { return c.EventCoverage < 50 },
	},
	{
		section: sectionImprovements,
		text:    "Many event titles are too vague to tell what the time was spent on.",
		applies: func(c model.PlanningComponents) bool { return c.TitleQuality < 50 },
	},
	{
		section: sectionImprovements,
		text:    "Many events have unrealistic durations (all-day blocks or under 15 minutes).",
		applies: func(c model.PlanningComponents) bool { return c.DurationAccuracy < 50 },
	},
	{
		section: sectionImprovements,
		text:    "Few events carry a description or agenda.",
		applies: func(c model.PlanningComponents) bool { return c.DescriptionQuality < 30 },
	},
	{
		section: sectionRecommendations,
		text:    "Block working time on the calendar so the audit reflects how your week is actually spent.",
		applies: func(c model.PlanningComponents) bool { return c.EventCoverage < 50 },
	},
	{
		section: sectionRecommendations,
		text:    "Rename vague events to say what the time is for, e.g. \"Review Q3 pipeline\" instead of \"Sync\".",
		applies: func(c model.PlanningComponents) bool { return c.TitleQuality < 50 },
	},
	{
		section: sectionRecommendations,
		text:    "Convert routines into recurring events instead of re-creating them each week.",
		applies: func(c model.PlanningComponents) bool { return c.RecurringUsage < 20 },
	},
	{
		section: sectionRecommendations,
		text:    "Add a short agenda to meetings so attendees can prepare and the audit can classify them.",
		applies: func(c model.PlanningComponents) bool { return c.DescriptionQuality < 30 },
	},
}

// buildAssessment composes the three markdown sections from whichever rules
// fire, falling back to a single default line per empty section.
func buildAssessment(c model.PlanningComponents) string {
	sections := [3][]string{}
	for _, rule := range narrativeRules {
		if rule.applies(c) {
			sections[rule.section] = append(sections[rule.section], rule.text)
		}
	}

	var b strings.Builder
	writeSection(&b, "Strengths", sections[sectionStrengths], defaultStrength)
	b.WriteString("\n")
	writeSection(&b, "Areas to Improve", sections[sectionImprovements], defaultImprovement)
	b.WriteString("\n")
	writeSection(&b, "Recommendations", sections[sectionRecommendations], defaultRecommendation)

	return strings.TrimRight(b.String(), "\n")
}

func writeSection(b *strings.Builder, heading string, bullets []string, fallback string) {
	b.WriteString("## " + heading + "\n")
	if len(bullets) == 0 {
		bullets = []string{fallback}
	}
	for _, bullet := range bullets {
		b.WriteString("- " + bullet + "\n")
	}
}
