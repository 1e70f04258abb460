package model

import "fmt"

// workingHoursPerYear converts annual compensation to an hourly rate.
const workingHoursPerYear = 2080

// RateConfig holds the user's compensation settings: their own annualized
// cost (optional) and the hourly market rates used to price delegated work.
type RateConfig struct {
	SalaryAnnual       *float64
	EquityPercentage   *float64
	CompanyValuation   *float64
	VestingPeriodYears *float64

	SeniorEngineeringRate float64
	SeniorBusinessRate    float64
	JuniorEngineeringRate float64
	JuniorBusinessRate    float64
	EARate                float64
}

// DefaultRateConfig returns the rate configuration used when the user has
// not set their own.
func DefaultRateConfig() RateConfig {
	return RateConfig{
		SeniorEngineeringRate: 150,
		SeniorBusinessRate:    125,
		JuniorEngineeringRate: 60,
		JuniorBusinessRate:    45,
		EARate:                35,
	}
}

// Validate ensures the required hourly rates are usable.
func (r *RateConfig) Validate() error {
	rates := map[string]float64{
		"senior engineering rate": r.SeniorEngineeringRate,
		"senior business rate":    r.SeniorBusinessRate,
		"junior engineering rate": r.JuniorEngineeringRate,
		"junior business rate":    r.JuniorBusinessRate,
		"ea rate":                 r.EARate,
	}
	for name, rate := range rates {
		if !IsFinite(rate) || rate < 0 {
			return fmt.Errorf("%s must be a nonnegative number, got %v", name, rate)
		}
	}
	return nil
}

// FounderHourlyRate derives the founder's own hourly cost from salary plus
// annualized equity. Returns nil when no positive salary is configured; the
// equity component is added only when percentage, valuation, and vesting
// period are all present with a positive vesting period.
func (r *RateConfig) FounderHourlyRate() *float64 {
	if r.SalaryAnnual == nil || *r.SalaryAnnual <= 0 {
		return nil
	}

	annual := *r.SalaryAnnual
	if r.EquityPercentage != nil && r.CompanyValuation != nil &&
		r.VestingPeriodYears != nil && *r.VestingPeriodYears > 0 {
		annual += *r.CompanyValuation * *r.EquityPercentage / 100 / *r.VestingPeriodYears
	}

	return FiniteOrNil(annual / workingHoursPerYear)
}

// DelegatedRate returns the hourly rate for work at the given tier and
// vertical. Unique and founder work is priced at the founder's own rate, or
// zero when that is unknown.
func (r *RateConfig) DelegatedRate(tier Tier, vertical Vertical) float64 {
	switch NormalizeTier(tier) {
	case TierSenior:
		if NormalizeVertical(vertical) == VerticalEngineering {
			return r.SeniorEngineeringRate
		}
		return r.SeniorBusinessRate
	case TierJunior:
		if NormalizeVertical(vertical) == VerticalEngineering {
			return r.JuniorEngineeringRate
		}
		return r.JuniorBusinessRate
	case TierEA:
		return r.EARate
	case TierUnique, TierFounder:
		if hourly := r.FounderHourlyRate(); hourly != nil {
			return *hourly
		}
		return 0
	}
	return 0
}

// MeanTierRate averages the two vertical rates for a delegable tier, used to
// price mixed-vertical consolidated roles.
func (r *RateConfig) MeanTierRate(tier Tier) float64 {
	switch NormalizeTier(tier) {
	case TierSenior:
		return (r.SeniorEngineeringRate + r.SeniorBusinessRate) / 2
	case TierJunior:
		return (r.JuniorEngineeringRate + r.JuniorBusinessRate) / 2
	case TierEA:
		return r.EARate
	default:
		return 0
	}
}
