package roles

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nick0a/founderbleed-sub001/internal/model"
)

func event(title string, tier model.Tier, area string, vertical model.Vertical, minutes int) model.ClassifiedEvent {
	return model.ClassifiedEvent{
		Event: model.RawEvent{Title: title},
		Classification: &model.ClassificationResult{
			SuggestedTier: tier,
			BusinessArea:  area,
			Vertical:      vertical,
		},
		FinalTier:       tier,
		DurationMinutes: minutes,
	}
}

func devEvents(n, minutesEach int) []model.ClassifiedEvent {
	events := make([]model.ClassifiedEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, event(
			fmt.Sprintf("Implement feature %d", i),
			model.TierSenior, "Development", model.VerticalEngineering, minutesEach))
	}
	return events
}

func TestRecommend_SingleOverloadedCluster(t *testing.T) {
	// Ten 8-hour senior development events over 7 days: 80 weekly hours,
	// clamped to one full-time role.
	got := Recommend(devEvents(10, 480), model.DefaultRateConfig(), 7)

	require.Len(t, got, 1)
	role := got[0]
	assert.Equal(t, "Senior Developer", role.RoleTitle)
	assert.Equal(t, model.TierSenior, role.RoleTier)
	assert.Equal(t, 40, role.HoursPerWeek)
	assert.Equal(t, "Development", role.BusinessArea)
	require.NotNil(t, role.Vertical)
	assert.Equal(t, model.VerticalEngineering, *role.Vertical)

	// Full-time at $150/hr.
	assert.InDelta(t, 312000.0, role.CostAnnual, 0.01)
	assert.InDelta(t, 6000.0, role.CostWeekly, 0.01)
	assert.InDelta(t, 25980.0, role.CostMonthly, 0.01)

	assert.NotEmpty(t, role.JobDescription)
	assert.Contains(t, role.JobDescription, "# Senior Developer")
	require.NoError(t, role.Validate())
}

func TestRecommend_IgnoresLeaveAndNonDelegableTiers(t *testing.T) {
	events := []model.ClassifiedEvent{
		event("Board meeting", model.TierUnique, "Fundraising", model.VerticalBusiness, 6000),
		event("Investor sync", model.TierFounder, "Fundraising", model.VerticalBusiness, 6000),
	}
	leave := model.ClassifiedEvent{
		Leave:           model.LeaveResult{IsLeave: true, Method: model.LeaveMethodKeywordTitle, Confidence: model.ConfidenceHigh},
		FinalTier:       model.TierSenior,
		DurationMinutes: 6000,
	}
	events = append(events, leave)

	got := Recommend(events, model.DefaultRateConfig(), 7)
	assert.Empty(t, got)
}

func TestRecommend_BelowThresholdClustersConsolidate(t *testing.T) {
	// Three senior clusters of 3 weekly hours each: none viable alone, but
	// together they clear the 8-hour bar as one consolidated role.
	events := []model.ClassifiedEvent{
		event("Pipeline review", model.TierSenior, "Sales", model.VerticalBusiness, 180),
		event("Campaign retro", model.TierSenior, "Marketing", model.VerticalBusiness, 180),
		event("Budget review", model.TierSenior, "Finance", model.VerticalBusiness, 180),
	}

	got := Recommend(events, model.DefaultRateConfig(), 7)

	require.Len(t, got, 1)
	role := got[0]
	assert.Equal(t, ConsolidatedArea, role.BusinessArea)
	assert.Equal(t, model.TierSenior, role.RoleTier)
	assert.Equal(t, "Senior Generalist", role.RoleTitle)
	assert.Equal(t, 9, role.HoursPerWeek)
	// Consolidated senior roles are priced at the mean of both verticals.
	assert.InDelta(t, 137.5*2080*9/40, role.CostAnnual, 0.01)
}

func TestRecommend_BucketBelowThresholdIsDropped(t *testing.T) {
	events := []model.ClassifiedEvent{
		event("Pipeline review", model.TierSenior, "Sales", model.VerticalBusiness, 120),
		event("Inbox triage", model.TierEA, "Operations", model.VerticalBusiness, 120),
	}

	got := Recommend(events, model.DefaultRateConfig(), 7)
	assert.Empty(t, got)
}

func TestRecommend_RoleCapAndMerge(t *testing.T) {
	mk := func(area string, weeklyHours int) []model.ClassifiedEvent {
		return []model.ClassifiedEvent{event(
			area+" work", model.TierSenior, area, model.VerticalBusiness, weeklyHours*60)}
	}

	var events []model.ClassifiedEvent
	events = append(events, mk("Sales", 40)...)
	events = append(events, mk("Marketing", 35)...)
	events = append(events, mk("Finance", 30)...)
	events = append(events, mk("Legal", 25)...)
	events = append(events, mk("Product", 20)...)
	events = append(events, mk("Operations", 15)...)

	got := Recommend(events, model.DefaultRateConfig(), 7)

	require.Len(t, got, model.MaxRecommendedRoles)
	for _, role := range got {
		assert.GreaterOrEqual(t, role.HoursPerWeek, model.MinRoleHoursPerWeek)
		assert.LessOrEqual(t, role.HoursPerWeek, model.MaxRoleHoursPerWeek)
		require.NoError(t, role.Validate())
	}

	// The two smallest roles (20h and 15h) merge into one 35-hour
	// consolidated role.
	var consolidated *model.RoleRecommendation
	for i := range got {
		if got[i].BusinessArea == ConsolidatedArea {
			consolidated = &got[i]
		}
	}
	require.NotNil(t, consolidated)
	assert.Equal(t, 35, consolidated.HoursPerWeek)
	assert.Equal(t, model.TierSenior, consolidated.RoleTier)
	assert.Len(t, consolidated.Tasks, 2)
}

func TestRecommend_MergedRoleHoursAreClamped(t *testing.T) {
	mk := func(area string, weeklyHours int) model.ClassifiedEvent {
		return event(area+" work", model.TierSenior, area, model.VerticalBusiness, weeklyHours*60)
	}

	events := []model.ClassifiedEvent{
		mk("Sales", 40), mk("Marketing", 40), mk("Finance", 40),
		mk("Legal", 40), mk("Product", 38), mk("Operations", 36),
	}

	got := Recommend(events, model.DefaultRateConfig(), 7)

	require.Len(t, got, model.MaxRecommendedRoles)
	for _, role := range got {
		assert.LessOrEqual(t, role.HoursPerWeek, model.MaxRoleHoursPerWeek)
	}
}

func TestRecommend_MergedTierMajorityAndTieBreak(t *testing.T) {
	mk := func(title string, tier model.Tier, area string, weeklyHours int) model.ClassifiedEvent {
		return event(title, tier, area, model.VerticalBusiness, weeklyHours*60)
	}

	// Top four are seniors; the overflow holds one junior and one ea role,
	// a tie broken in declared order: junior wins.
	events := []model.ClassifiedEvent{
		mk("Sales work", model.TierSenior, "Sales", 40),
		mk("Marketing work", model.TierSenior, "Marketing", 39),
		mk("Finance work", model.TierSenior, "Finance", 38),
		mk("Legal work", model.TierSenior, "Legal", 37),
		mk("Ops admin", model.TierJunior, "Operations", 12),
		mk("Inbox triage", model.TierEA, "Operations", 10),
	}

	got := Recommend(events, model.DefaultRateConfig(), 7)

	require.Len(t, got, model.MaxRecommendedRoles)
	var consolidated *model.RoleRecommendation
	for i := range got {
		if got[i].BusinessArea == ConsolidatedArea {
			consolidated = &got[i]
		}
	}
	require.NotNil(t, consolidated)
	assert.Equal(t, model.TierJunior, consolidated.RoleTier)
	assert.Equal(t, 22, consolidated.HoursPerWeek)
}

func TestRecommend_TaskAggregation(t *testing.T) {
	var events []model.ClassifiedEvent
	// Same title twice: hours must fold into one task.
	events = append(events, event("Weekly pipeline review", model.TierSenior, "Sales", model.VerticalBusiness, 240))
	events = append(events, event("Weekly pipeline review", model.TierSenior, "Sales", model.VerticalBusiness, 240))
	events = append(events, event("Quarterly forecast prep", model.TierSenior, "Sales", model.VerticalBusiness, 120))

	got := Recommend(events, model.DefaultRateConfig(), 7)

	require.Len(t, got, 1)
	tasks := got[0].Tasks
	require.Len(t, tasks, 2)
	assert.Equal(t, "Weekly pipeline review", tasks[0].Title)
	assert.InDelta(t, 8.0, tasks[0].HoursPerWeek, 0.001)
	assert.Equal(t, "Quarterly forecast prep", tasks[1].Title)
	assert.InDelta(t, 2.0, tasks[1].HoursPerWeek, 0.001)
}

func TestRecommend_TasksCappedAtTen(t *testing.T) {
	var events []model.ClassifiedEvent
	for i := 0; i < 15; i++ {
		events = append(events, event(
			fmt.Sprintf("Distinct task %02d", i),
			model.TierSenior, "Development", model.VerticalEngineering, 60))
	}

	got := Recommend(events, model.DefaultRateConfig(), 7)

	require.Len(t, got, 1)
	assert.Len(t, got[0].Tasks, model.MaxRoleTasks)
}

func TestRecommend_WeeklyNormalization(t *testing.T) {
	// 28 hours over a 14-day audit is 14 weekly hours.
	events := []model.ClassifiedEvent{
		event("Support queue", model.TierEA, "Operations", model.VerticalBusiness, 28*60),
	}

	got := Recommend(events, model.DefaultRateConfig(), 14)

	require.Len(t, got, 1)
	assert.Equal(t, 14, got[0].HoursPerWeek)
	assert.Equal(t, "Executive Assistant", got[0].RoleTitle)
	assert.Nil(t, got[0].Vertical)
}

func TestRecommend_Deterministic(t *testing.T) {
	var events []model.ClassifiedEvent
	events = append(events, devEvents(5, 240)...)
	events = append(events, event("Inbox triage", model.TierEA, "Operations", model.VerticalBusiness, 600))
	events = append(events, event("Pipeline review", model.TierSenior, "Sales", model.VerticalBusiness, 600))

	first := Recommend(events, model.DefaultRateConfig(), 7)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Recommend(events, model.DefaultRateConfig(), 7))
	}
}
