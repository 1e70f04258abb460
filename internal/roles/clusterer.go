// Package roles converts delegable calendar hours into concrete hiring-role
// recommendations with generated job descriptions.
//
// The pipeline is a small explicit state machine: each (tier, business area)
// cluster is either emitted as a specialized role or folded into a per-tier
// consolidation bucket; each non-empty bucket faces the same minimum-hours
// test; and if more than five roles survive, everything past the top four is
// merged into one consolidated role.
package roles

import (
	"math"
	"sort"
	"strings"

	"github.com/nick0a/founderbleed-sub001/internal/model"
)

// minViableWeeklyHours is the smallest weekly commitment worth hiring for.
const minViableWeeklyHours = 8.0

// hourlyToAnnualHours converts an hourly rate to a full-time annual cost.
const hourlyToAnnualHours = 2080

// weeksPerMonth converts weekly cost to monthly cost.
const weeksPerMonth = 4.33

// cluster is one group of delegable events sharing a tier and business area.
// Consolidation buckets are clusters with mixed source areas.
type cluster struct {
	tier   model.Tier
	area   string
	mixed  bool
	events []*model.ClassifiedEvent
}

// Recommend groups delegable, non-leave events into at most five hiring
// roles. Deterministic for identical inputs.
func Recommend(events []model.ClassifiedEvent, rates model.RateConfig, auditDays int) []model.RoleRecommendation {
	if auditDays < 1 {
		auditDays = 1
	}
	weeklyFactor := 7.0 / float64(auditDays)

	clusters := groupByTierAndArea(events)

	buckets := map[model.Tier][]*model.ClassifiedEvent{}
	var emitted []model.RoleRecommendation

	for _, c := range clusters {
		weekly := clusterHours(c.events) * weeklyFactor
		if weekly >= minViableWeeklyHours {
			emitted = append(emitted, buildRole(c, weekly, rates, weeklyFactor))
		} else {
			buckets[c.tier] = append(buckets[c.tier], c.events...)
		}
	}

	// Below-threshold clusters get a second chance as one consolidated
	// cluster per tier; buckets that still fall short are dropped.
	for _, tier := range []model.Tier{model.TierSenior, model.TierJunior, model.TierEA} {
		bucketed := buckets[tier]
		if len(bucketed) == 0 {
			continue
		}
		c := cluster{tier: tier, area: ConsolidatedArea, mixed: true, events: bucketed}
		weekly := clusterHours(bucketed) * weeklyFactor
		if weekly >= minViableWeeklyHours {
			emitted = append(emitted, buildRole(c, weekly, rates, weeklyFactor))
		}
	}

	sortRoles(emitted)

	if len(emitted) > model.MaxRecommendedRoles {
		merged := mergeRoles(emitted[model.MaxRecommendedRoles-1:], rates)
		emitted = append(emitted[:model.MaxRecommendedRoles-1], merged)
		sortRoles(emitted)
	}

	return emitted
}

// groupByTierAndArea buckets delegable events and returns the clusters in a
// deterministic order: tiers in declared order, areas alphabetically.
func groupByTierAndArea(events []model.ClassifiedEvent) []cluster {
	type key struct {
		tier model.Tier
		area string
	}

	groups := map[key][]*model.ClassifiedEvent{}
	for i := range events {
		ev := &events[i]
		if ev.IsLeave() {
			continue
		}
		tier := model.NormalizeTier(ev.FinalTier)
		if !tier.IsDelegable() {
			continue
		}
		area := model.DefaultBusinessArea
		if ev.Classification != nil && ev.Classification.BusinessArea != "" {
			area = ev.Classification.BusinessArea
		}
		k := key{tier: tier, area: area}
		groups[k] = append(groups[k], ev)
	}

	keys := make([]key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	tierOrder := map[model.Tier]int{model.TierSenior: 0, model.TierJunior: 1, model.TierEA: 2}
	sort.Slice(keys, func(i, j int) bool {
		if tierOrder[keys[i].tier] != tierOrder[keys[j].tier] {
			return tierOrder[keys[i].tier] < tierOrder[keys[j].tier]
		}
		return keys[i].area < keys[j].area
	})

	clusters := make([]cluster, 0, len(keys))
	for _, k := range keys {
		clusters = append(clusters, cluster{tier: k.tier, area: k.area, events: groups[k]})
	}
	return clusters
}

// buildRole emits one recommendation from a viable cluster.
func buildRole(c cluster, weeklyHours float64, rates model.RateConfig, weeklyFactor float64) model.RoleRecommendation {
	hoursPerWeek := clampHours(int(math.Ceil(weeklyHours)))

	vertical := clusterVertical(c)

	var hourly float64
	if c.mixed {
		hourly = rates.MeanTierRate(c.tier)
	} else {
		hourly = rates.DelegatedRate(c.tier, verticalOrBusiness(vertical))
	}

	role := model.RoleRecommendation{
		RoleTitle:    titleFor(c.tier, verticalOrBusiness(vertical), c.area),
		RoleTier:     c.tier,
		Vertical:     vertical,
		BusinessArea: c.area,
		HoursPerWeek: hoursPerWeek,
		Tasks:        aggregateTasks(c.events, weeklyFactor),
	}
	applyCosts(&role, hourly)
	role.JobDescription = buildDescription(&role)

	return role
}

// mergeRoles collapses the overflow roles into one consolidated role. Tier
// and vertical are chosen by majority count among the merged roles; tier
// ties break by declared order (senior, then junior, then ea) and vertical
// ties fall back to business.
func mergeRoles(overflow []model.RoleRecommendation, rates model.RateConfig) model.RoleRecommendation {
	tierCounts := map[model.Tier]int{}
	verticalCounts := map[model.Vertical]int{}
	taskHours := map[string]float64{}
	totalHours := 0

	for i := range overflow {
		r := &overflow[i]
		tierCounts[r.RoleTier]++
		if r.Vertical != nil {
			verticalCounts[*r.Vertical]++
		}
		totalHours += r.HoursPerWeek
		for _, task := range r.Tasks {
			taskHours[task.Title] += task.HoursPerWeek
		}
	}

	tier := majorityTier(tierCounts)

	var vertical *model.Vertical
	if tier != model.TierEA {
		v := majorityVertical(verticalCounts)
		vertical = &v
	}

	role := model.RoleRecommendation{
		RoleTitle:    titleFor(tier, verticalOrBusiness(vertical), ConsolidatedArea),
		RoleTier:     tier,
		Vertical:     vertical,
		BusinessArea: ConsolidatedArea,
		HoursPerWeek: clampHours(totalHours),
		Tasks:        topTasks(taskHours),
	}
	applyCosts(&role, rates.MeanTierRate(tier))
	role.JobDescription = buildDescription(&role)

	return role
}

// applyCosts derives annual, weekly, and monthly cost from an hourly rate
// pro-rated by the role's weekly hours.
func applyCosts(role *model.RoleRecommendation, hourlyRate float64) {
	annual := hourlyRate * hourlyToAnnualHours * float64(role.HoursPerWeek) / float64(model.MaxRoleHoursPerWeek)
	weekly := annual / 52

	role.CostAnnual = model.FiniteOrZero(annual)
	role.CostWeekly = model.FiniteOrZero(weekly)
	role.CostMonthly = model.FiniteOrZero(weekly * weeksPerMonth)
}

// aggregateTasks folds cluster events into per-title weekly hours.
func aggregateTasks(events []*model.ClassifiedEvent, weeklyFactor float64) []model.RoleTask {
	hoursByTitle := map[string]float64{}
	for _, ev := range events {
		hoursByTitle[ev.Event.Title] += ev.DurationHours() * weeklyFactor
	}
	return topTasks(hoursByTitle)
}

// topTasks sorts aggregated tasks by weekly hours descending (title
// ascending on ties) and keeps the top ten.
func topTasks(hoursByTitle map[string]float64) []model.RoleTask {
	tasks := make([]model.RoleTask, 0, len(hoursByTitle))
	for title, hours := range hoursByTitle {
		tasks = append(tasks, model.RoleTask{Title: title, HoursPerWeek: hours})
	}

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].HoursPerWeek != tasks[j].HoursPerWeek {
			return tasks[i].HoursPerWeek > tasks[j].HoursPerWeek
		}
		return tasks[i].Title < tasks[j].Title
	})

	if len(tasks) > model.MaxRoleTasks {
		tasks = tasks[:model.MaxRoleTasks]
	}
	return tasks
}

// clusterVertical resolves a cluster's vertical from its events. EA roles
// have no vertical; mixed clusters take the majority, ties going to
// business.
func clusterVertical(c cluster) *model.Vertical {
	if c.tier == model.TierEA {
		return nil
	}

	counts := map[model.Vertical]int{}
	for _, ev := range c.events {
		if ev.Classification != nil {
			counts[model.NormalizeVertical(ev.Classification.Vertical)]++
		} else {
			counts[model.VerticalBusiness]++
		}
	}

	v := majorityVertical(counts)
	return &v
}

func majorityTier(counts map[model.Tier]int) model.Tier {
	best := model.TierSenior
	bestCount := -1
	for _, tier := range []model.Tier{model.TierSenior, model.TierJunior, model.TierEA} {
		if counts[tier] > bestCount {
			best = tier
			bestCount = counts[tier]
		}
	}
	return best
}

func majorityVertical(counts map[model.Vertical]int) model.Vertical {
	if counts[model.VerticalEngineering] > counts[model.VerticalBusiness] {
		return model.VerticalEngineering
	}
	return model.VerticalBusiness
}

func verticalOrBusiness(v *model.Vertical) model.Vertical {
	if v == nil {
		return model.VerticalBusiness
	}
	return *v
}

func clusterHours(events []*model.ClassifiedEvent) float64 {
	var total float64
	for _, ev := range events {
		total += ev.DurationHours()
	}
	return total
}

func clampHours(hours int) int {
	if hours < model.MinRoleHoursPerWeek {
		return model.MinRoleHoursPerWeek
	}
	if hours > model.MaxRoleHoursPerWeek {
		return model.MaxRoleHoursPerWeek
	}
	return hours
}

// sortRoles orders recommendations by weekly hours descending, breaking
// ties by title so output is stable.
func sortRoles(roles []model.RoleRecommendation) {
	sort.Slice(roles, func(i, j int) bool {
		if roles[i].HoursPerWeek != roles[j].HoursPerWeek {
			return roles[i].HoursPerWeek > roles[j].HoursPerWeek
		}
		return strings.Compare(roles[i].RoleTitle, roles[j].RoleTitle) < 0
	})
}
