// File: services/pricing/tables.go
package pricing

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"staycalc/models"
)

// SeasonalRate is a fixed nightly price for every day in [Start, End].
// Bounds are inclusive ISO dates.
type SeasonalRate struct {
	Start string `json:"start" mapstructure:"start"`
	End   string `json:"end" mapstructure:"end"`
	Price int    `json:"price" mapstructure:"price"`
}

// Tables is the read-only pricing configuration. Build it once with
// NewTables and pass it by pointer; nothing mutates it afterwards.
type Tables struct {
	rates       []SeasonalRate
	multipliers map[string]float64
}

// DefaultRates is the built-in season table.
func DefaultRates() []SeasonalRate {
	return []SeasonalRate{
		{Start: "2025-06-25", End: "2025-07-10", Price: 2500},
		{Start: "2025-07-11", End: "2025-09-19", Price: 3175},
		{Start: "2025-09-20", End: "2025-09-30", Price: 3780},
		{Start: "2025-10-01", End: "2025-10-15", Price: 3180},
		{Start: "2025-10-16", End: "2025-10-31", Price: 2255},
	}
}

// DefaultMultipliers is the built-in occupancy table, keyed "<adults>_<children>".
func DefaultMultipliers() map[string]float64 {
	return map[string]float64{
		"1_0": 1.7, "1_1": 1.7, "1_2": 2.0,
		"2_0": 2.0, "2_1": 2.0, "3_0": 2.7,
	}
}

// DefaultTables wraps the built-in tables.
func DefaultTables() *Tables {
	t, err := NewTables(DefaultRates(), DefaultMultipliers())
	if err != nil {
		panic(fmt.Sprintf("pricing: invalid built-in tables: %v", err))
	}
	return t
}

// NewTables validates and copies the given tables. Ranges must be valid ISO
// dates, ordered and non-overlapping; multiplier keys must look like "2_1".
func NewTables(rates []SeasonalRate, multipliers map[string]float64) (*Tables, error) {
	if len(multipliers) == 0 {
		return nil, fmt.Errorf("no occupancy multipliers configured")
	}

	copied := append([]SeasonalRate(nil), rates...)
	for i, r := range copied {
		start, err := models.ParseDate(r.Start)
		if err != nil {
			return nil, fmt.Errorf("season %d: %w", i, err)
		}
		end, err := models.ParseDate(r.End)
		if err != nil {
			return nil, fmt.Errorf("season %d: %w", i, err)
		}
		if end.Before(start.Time) {
			return nil, fmt.Errorf("season %d: end %s before start %s", i, r.End, r.Start)
		}
		if r.Price < 0 {
			return nil, fmt.Errorf("season %d: negative price %d", i, r.Price)
		}
		// normalize DD.MM.YYYY input so string comparison works
		copied[i].Start, copied[i].End = start.String(), end.String()
	}
	sort.SliceStable(copied, func(i, j int) bool { return copied[i].Start < copied[j].Start })
	for i := 1; i < len(copied); i++ {
		if copied[i].Start <= copied[i-1].End {
			return nil, fmt.Errorf("season %s..%s overlaps %s..%s",
				copied[i].Start, copied[i].End, copied[i-1].Start, copied[i-1].End)
		}
	}

	mult := make(map[string]float64, len(multipliers))
	for key, v := range multipliers {
		if _, _, ok := parseCombination(key); !ok {
			return nil, fmt.Errorf("invalid occupancy key %q", key)
		}
		if v <= 0 {
			return nil, fmt.Errorf("occupancy %s: multiplier must be positive", key)
		}
		mult[key] = v
	}
	return &Tables{rates: copied, multipliers: mult}, nil
}

// NightlyRate returns the price of the first season containing day.
// ok is false when no season covers it.
func (t *Tables) NightlyRate(day models.Date) (int, bool) {
	iso := day.String()
	for _, r := range t.rates {
		if iso >= r.Start && iso <= r.End {
			return r.Price, true
		}
	}
	return 0, false
}

// Multiplier looks up the occupancy combination.
func (t *Tables) Multiplier(adults, children int) (float64, bool) {
	m, ok := t.multipliers[CombinationKey(adults, children)]
	return m, ok
}

// Rates returns a copy of the season table.
func (t *Tables) Rates() []SeasonalRate {
	return append([]SeasonalRate(nil), t.rates...)
}

// Combinations returns a copy of the occupancy table.
func (t *Tables) Combinations() map[string]float64 {
	out := make(map[string]float64, len(t.multipliers))
	for k, v := range t.multipliers {
		out[k] = v
	}
	return out
}

// CombinationKey builds the "<adults>_<children>" lookup key.
func CombinationKey(adults, children int) string {
	return strconv.Itoa(adults) + "_" + strconv.Itoa(children)
}

func parseCombination(key string) (int, int, bool) {
	parts := strings.Split(key, "_")
	if len(parts) != 2 {
		return 0, 0, false
	}
	adults, err := strconv.Atoi(parts[0])
	if err != nil || adults < 0 {
		return 0, 0, false
	}
	children, err := strconv.Atoi(parts[1])
	if err != nil || children < 0 {
		return 0, 0, false
	}
	return adults, children, true
}
