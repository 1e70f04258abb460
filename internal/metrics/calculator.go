// Package metrics aggregates classified, non-leave events into hour totals,
// cost, arbitrage, and efficiency figures for one audit period.
package metrics

import (
	"math"

	"github.com/nick0a/founderbleed-sub001/internal/model"
)

// Calculate produces the financial metrics for one audit run. Leave events
// are excluded before any aggregation. All money math degrades to nil or 0
// rather than ever surfacing NaN or Infinity.
func Calculate(events []model.ClassifiedEvent, rates model.RateConfig, auditDays int) model.AuditMetrics {
	if auditDays < 1 {
		auditDays = 1
	}

	var hours model.TierHours
	var delegatedCost float64

	for i := range events {
		ev := &events[i]
		if ev.IsLeave() {
			continue
		}

		tier := model.NormalizeTier(ev.FinalTier)
		h := ev.DurationHours()

		switch tier {
		case model.TierUnique:
			hours.Unique += h
		case model.TierFounder:
			hours.Founder += h
		case model.TierSenior:
			hours.Senior += h
		case model.TierJunior:
			hours.Junior += h
		case model.TierEA:
			hours.EA += h
		}

		delegatedCost += h * rates.DelegatedRate(tier, eventVertical(ev))
	}

	totalHours := hours.Total()
	founderCost := founderCostTotal(rates, totalHours)

	reclaimable := hours.Delegable()

	return model.AuditMetrics{
		TotalHours:             totalHours,
		HoursByTier:            hours,
		FounderCostTotal:       founderCost,
		DelegatedCostTotal:     model.FiniteOrZero(delegatedCost),
		Arbitrage:              model.SubPtr(founderCost, model.Float(model.FiniteOrZero(delegatedCost))),
		EfficiencyScore:        efficiencyScore(hours, totalHours),
		ReclaimableHours:       reclaimable,
		ReclaimableHoursWeekly: reclaimable * 7 / float64(auditDays),
	}
}

// founderCostTotal prices the audited hours at the founder's own rate.
// Nil whenever that rate is unknown.
func founderCostTotal(rates model.RateConfig, totalHours float64) *float64 {
	hourly := rates.FounderHourlyRate()
	if hourly == nil {
		return nil
	}
	return model.FiniteOrNil(*hourly * totalHours)
}

// efficiencyScore is the percentage of hours spent on non-delegable work,
// rounded and clamped to [0, 100]. Zero total hours scores zero.
func efficiencyScore(hours model.TierHours, totalHours float64) int {
	if totalHours <= 0 {
		return 0
	}

	score := int(math.Round(100 * (hours.Unique + hours.Founder) / totalHours))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// eventVertical reads the classified vertical, defaulting to business for
// events that carry no classification.
func eventVertical(ev *model.ClassifiedEvent) model.Vertical {
	if ev.Classification == nil {
		return model.VerticalBusiness
	}
	return model.NormalizeVertical(ev.Classification.Vertical)
}
