package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nick0a/founderbleed-sub001/internal/model"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name           string
		event          model.RawEvent
		wantLeave      bool
		wantMethod     string
		wantConfidence model.Confidence
	}{
		{
			name:           "provider declared out of office",
			event:          model.RawEvent{Title: "Busy", ProviderEventType: "outOfOffice"},
			wantLeave:      true,
			wantMethod:     model.LeaveMethodProviderType,
			wantConfidence: model.ConfidenceHigh,
		},
		{
			name:           "provider type beats keyword rules",
			event:          model.RawEvent{Title: "Vacation in Lisbon", ProviderEventType: "outOfOffice"},
			wantLeave:      true,
			wantMethod:     model.LeaveMethodProviderType,
			wantConfidence: model.ConfidenceHigh,
		},
		{
			name:           "vacation in title",
			event:          model.RawEvent{Title: "Family Vacation"},
			wantLeave:      true,
			wantMethod:     model.LeaveMethodKeywordTitle,
			wantConfidence: model.ConfidenceHigh,
		},
		{
			name:           "vacation title match ignores description",
			event:          model.RawEvent{Title: "Vacation", Description: "sprint planning and code review"},
			wantLeave:      true,
			wantMethod:     model.LeaveMethodKeywordTitle,
			wantConfidence: model.ConfidenceHigh,
		},
		{
			name:           "pto abbreviation",
			event:          model.RawEvent{Title: "PTO - back Monday"},
			wantLeave:      true,
			wantMethod:     model.LeaveMethodKeywordTitle,
			wantConfidence: model.ConfidenceHigh,
		},
		{
			name:           "annual leave",
			event:          model.RawEvent{Title: "Annual Leave"},
			wantLeave:      true,
			wantMethod:     model.LeaveMethodKeywordTitle,
			wantConfidence: model.ConfidenceHigh,
		},
		{
			name:           "ooo in title",
			event:          model.RawEvent{Title: "OOO all week"},
			wantLeave:      true,
			wantMethod:     model.LeaveMethodKeywordOOO,
			wantConfidence: model.ConfidenceHigh,
		},
		{
			name:           "out of office phrase",
			event:          model.RawEvent{Title: "Out of office"},
			wantLeave:      true,
			wantMethod:     model.LeaveMethodKeywordOOO,
			wantConfidence: model.ConfidenceHigh,
		},
		{
			name:           "doctor appointment",
			event:          model.RawEvent{Title: "Doctor appointment"},
			wantLeave:      true,
			wantMethod:     model.LeaveMethodKeywordMedical,
			wantConfidence: model.ConfidenceHigh,
		},
		{
			name:           "leave keyword only in description",
			event:          model.RawEvent{Title: "Away", Description: "parental leave begins"},
			wantLeave:      true,
			wantMethod:     model.LeaveMethodKeywordMatch,
			wantConfidence: model.ConfidenceMedium,
		},
		{
			name:           "sabbatical in description",
			event:          model.RawEvent{Title: "Gone", Description: "starting my sabbatical"},
			wantLeave:      true,
			wantMethod:     model.LeaveMethodKeywordMatch,
			wantConfidence: model.ConfidenceMedium,
		},
		{
			name:           "all-day flight is travel pattern",
			event:          model.RawEvent{Title: "Flight to NYC", IsAllDay: true},
			wantLeave:      true,
			wantMethod:     model.LeaveMethodPatternTravel,
			wantConfidence: model.ConfidenceLow,
		},
		{
			name:       "timed flight is not leave",
			event:      model.RawEvent{Title: "Flight to NYC", IsAllDay: false},
			wantLeave:  false,
			wantMethod: model.LeaveMethodNone,
		},
		{
			name:           "all-day blocked slot",
			event:          model.RawEvent{Title: "Blocked", IsAllDay: true},
			wantLeave:      true,
			wantMethod:     model.LeaveMethodPatternBlocked,
			wantConfidence: model.ConfidenceLow,
		},
		{
			name:           "ordinary meeting is not leave",
			event:          model.RawEvent{Title: "Sprint planning", Description: "backlog grooming"},
			wantLeave:      false,
			wantMethod:     model.LeaveMethodNone,
			wantConfidence: model.ConfidenceLow,
		},
		{
			name:           "case insensitive matching",
			event:          model.RawEvent{Title: "VACATION TIME"},
			wantLeave:      true,
			wantMethod:     model.LeaveMethodKeywordTitle,
			wantConfidence: model.ConfidenceHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(&tt.event)
			assert.Equal(t, tt.wantLeave, got.IsLeave)
			assert.Equal(t, tt.wantMethod, got.Method)
			if tt.wantConfidence != "" {
				assert.Equal(t, tt.wantConfidence, got.Confidence)
			}
		})
	}
}

func TestDetect_IsPure(t *testing.T) {
	event := model.RawEvent{Title: "Vacation", Description: "two weeks off"}
	first := Detect(&event)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Detect(&event))
	}
}
