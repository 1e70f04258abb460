package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nick0a/founderbleed-sub001/internal/model"
)

func TestClassify_BusinessArea(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		description  string
		wantArea     string
		wantVertical model.Vertical
	}{
		{
			name:         "sales keyword",
			title:        "Demo with Acme",
			wantArea:     "Sales",
			wantVertical: model.VerticalBusiness,
		},
		{
			name:         "development keyword",
			title:        "Sprint planning",
			wantArea:     "Development",
			wantVertical: model.VerticalEngineering,
		},
		{
			name:         "design keyword",
			title:        "Figma walkthrough",
			wantArea:     "Design",
			wantVertical: model.VerticalEngineering,
		},
		{
			name:         "analytics keyword",
			title:        "Dashboard check-in",
			wantArea:     "Data/Analytics",
			wantVertical: model.VerticalEngineering,
		},
		{
			name:         "first area in declared order wins",
			title:        "Sales pipeline code review",
			wantArea:     "Sales",
			wantVertical: model.VerticalBusiness,
		},
		{
			name:         "keyword in description counts",
			title:        "Weekly check-in",
			description:  "review the marketing campaign numbers",
			wantArea:     "Marketing",
			wantVertical: model.VerticalBusiness,
		},
		{
			name:         "no match defaults to operations",
			title:        "Weekly check-in",
			wantArea:     "Operations",
			wantVertical: model.VerticalBusiness,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := model.RawEvent{Title: tt.title, Description: tt.description}
			got := Classify(&event, false)
			assert.Equal(t, tt.wantArea, got.BusinessArea)
			assert.Equal(t, tt.wantVertical, got.Vertical)
		})
	}
}

func TestClassify_TierLastMatchWins(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		wantTier model.Tier
	}{
		{
			name:     "no tier keywords defaults to senior",
			title:    "Weekly check-in",
			wantTier: model.TierSenior,
		},
		{
			name:     "single junior keyword",
			title:    "Bug fix for login page",
			wantTier: model.TierJunior,
		},
		{
			name:     "single ea keyword",
			title:    "Travel booking for conference",
			wantTier: model.TierEA,
		},
		{
			// Both unique and junior lists match; junior is declared later
			// so it overwrites the earlier match.
			name:     "later tier list overrides earlier match",
			title:    "Board meeting documentation",
			wantTier: model.TierJunior,
		},
		{
			name:     "founder keyword overridden by senior keyword",
			title:    "Investor pitch roadmap",
			wantTier: model.TierSenior,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := model.RawEvent{Title: tt.title}
			got := Classify(&event, false)
			assert.Equal(t, tt.wantTier, got.SuggestedTier)
		})
	}
}

func TestClassify_AttendeeOverride(t *testing.T) {
	t.Run("large meeting forces founder tier for team founders", func(t *testing.T) {
		event := model.RawEvent{Title: "Bug fix standup", AttendeesCount: 5}
		got := Classify(&event, false)
		assert.Equal(t, model.TierFounder, got.SuggestedTier)
		assert.Equal(t, model.ConfidenceLow, got.Confidence)
	})

	t.Run("large meeting forces unique tier for solo founders", func(t *testing.T) {
		event := model.RawEvent{Title: "Bug fix standup", AttendeesCount: 7}
		got := Classify(&event, true)
		assert.Equal(t, model.TierUnique, got.SuggestedTier)
		assert.Equal(t, model.ConfidenceLow, got.Confidence)
	})

	t.Run("four attendees does not trigger the override", func(t *testing.T) {
		event := model.RawEvent{Title: "Bug fix standup", AttendeesCount: 4}
		got := Classify(&event, false)
		assert.Equal(t, model.TierJunior, got.SuggestedTier)
	})
}

func TestClassify_Confidence(t *testing.T) {
	t.Run("no keyword matches is low", func(t *testing.T) {
		event := model.RawEvent{Title: "Weekly check-in"}
		got := Classify(&event, false)
		assert.Equal(t, model.ConfidenceLow, got.Confidence)
		assert.Empty(t, got.KeywordsMatched)
	})

	t.Run("one match is medium", func(t *testing.T) {
		event := model.RawEvent{Title: "Quick demo"}
		got := Classify(&event, false)
		assert.Equal(t, model.ConfidenceMedium, got.Confidence)
		assert.Equal(t, []string{"demo"}, got.KeywordsMatched)
	})

	t.Run("three matches is high", func(t *testing.T) {
		event := model.RawEvent{Title: "Sprint planning", Description: "bug fix triage"}
		got := Classify(&event, false)
		require.GreaterOrEqual(t, len(got.KeywordsMatched), 3)
		assert.Equal(t, model.ConfidenceHigh, got.Confidence)
	})
}

func TestClassify_EventCategory(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  model.EventCategory
	}{
		{"plain meeting is work", "Sprint planning", model.CategoryWork},
		{"gym session", "Gym", model.CategoryExercise},
		{"team lunch", "Lunch with Sam", model.CategoryLeisure},
		{"flight", "Flight to Austin", model.CategoryTravel},
		{"travel beats leisure", "Flight then dinner", model.CategoryTravel},
		{"exercise beats leisure", "Yoga then coffee", model.CategoryExercise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := model.RawEvent{Title: tt.title}
			got := Classify(&event, false)
			assert.Equal(t, tt.want, got.EventCategory)
		})
	}
}

func TestFinalTier(t *testing.T) {
	assert.Equal(t, model.TierUnique, FinalTier(model.TierFounder, true))
	assert.Equal(t, model.TierFounder, FinalTier(model.TierFounder, false))
	assert.Equal(t, model.TierSenior, FinalTier(model.TierSenior, true))
	assert.Equal(t, model.TierEA, FinalTier(model.TierEA, true))
}

func TestClassify_IsPure(t *testing.T) {
	event := model.RawEvent{Title: "Investor pitch", Description: "series A deck", AttendeesCount: 3}
	first := Classify(&event, false)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(&event, false))
	}
}
