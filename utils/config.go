package utils

import (
	"fmt"
	"time"

	"staycalc/config"
	"staycalc/services/pricing"
)

// GetEnv returns the application environment
func GetEnv() string {
	return config.GetEnv()
}

// IsProduction checks if the environment is production
func IsProduction() bool {
	return config.IsProduction()
}

// Location resolves the configured TIMEZONE used to decide what "today" is.
// An unknown zone falls back to UTC and is reported as an error.
func Location() (*time.Location, error) {
	name := config.AppConfig.Timezone
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

// PricingTables builds the rate and occupancy tables, taking each one from
// config when it is set there and from the built-in defaults otherwise.
func PricingTables(cfg config.PricingConfig) (*pricing.Tables, error) {
	rates := pricing.DefaultRates()
	if len(cfg.Seasons) > 0 {
		rates = make([]pricing.SeasonalRate, len(cfg.Seasons))
		for i, s := range cfg.Seasons {
			rates[i] = pricing.SeasonalRate{Start: s.Start, End: s.End, Price: s.Price}
		}
	}
	multipliers := pricing.DefaultMultipliers()
	if len(cfg.Multipliers) > 0 {
		multipliers = cfg.Multipliers
	}
	tables, err := pricing.NewTables(rates, multipliers)
	if err != nil {
		return nil, fmt.Errorf("pricing tables: %w", err)
	}
	return tables, nil
}
