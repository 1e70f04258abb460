// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/nick0a/founderbleed-sub001/internal/model"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DatabasePath resolves the audit database location, honoring the
// database.path config key.
func DatabasePath() string {
	if path := viper.GetString("database.path"); path != "" {
		return ExpandPath(path)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "bleed.db"
	}
	return filepath.Join(home, ".local", "share", "bleed", "bleed.db")
}

// Rates builds the rate configuration from the config file, falling back to
// defaults for anything unset. Optional fields stay nil unless the key is
// present and positive.
func Rates() model.RateConfig {
	rates := model.DefaultRateConfig()

	setRate := func(key string, target *float64) {
		if viper.IsSet(key) {
			*target = viper.GetFloat64(key)
		}
	}
	setRate("rates.senior_engineering", &rates.SeniorEngineeringRate)
	setRate("rates.senior_business", &rates.SeniorBusinessRate)
	setRate("rates.junior_engineering", &rates.JuniorEngineeringRate)
	setRate("rates.junior_business", &rates.JuniorBusinessRate)
	setRate("rates.ea", &rates.EARate)

	setOptional := func(key string, target **float64) {
		if viper.IsSet(key) {
			v := viper.GetFloat64(key)
			*target = &v
		}
	}
	setOptional("founder.salary_annual", &rates.SalaryAnnual)
	setOptional("founder.equity_percentage", &rates.EquityPercentage)
	setOptional("founder.company_valuation", &rates.CompanyValuation)
	setOptional("founder.vesting_period_years", &rates.VestingPeriodYears)

	return rates
}

// ExclusionKeywords returns the user's title exclusion list.
func ExclusionKeywords() []string {
	return viper.GetStringSlice("audit.exclusion_keywords")
}

// IsSoloFounder reports whether the user configured themselves as a solo
// founder.
func IsSoloFounder() bool {
	return viper.GetBool("founder.solo")
}
