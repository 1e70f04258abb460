package model

// TierHours buckets audited hours by delegation tier.
type TierHours struct {
	Unique  float64
	Founder float64
	Senior  float64
	Junior  float64
	EA      float64
}

// Total sums all five buckets.
func (h TierHours) Total() float64 {
	return h.Unique + h.Founder + h.Senior + h.Junior + h.EA
}

// Delegable sums the hours that could be handed to a hire.
func (h TierHours) Delegable() float64 {
	return h.Senior + h.Junior + h.EA
}

// AuditMetrics aggregates the financial outcome of one audit run.
// FounderCostTotal and Arbitrage are nil when the founder's own rate is
// unknown; DelegatedCostTotal always carries a number.
type AuditMetrics struct {
	FounderCostTotal       *float64
	Arbitrage              *float64
	HoursByTier            TierHours
	TotalHours             float64
	DelegatedCostTotal     float64
	ReclaimableHours       float64
	ReclaimableHoursWeekly float64
	EfficiencyScore        int
}
