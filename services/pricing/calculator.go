// File: services/pricing/calculator.go
package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"staycalc/models"
)

const (
	// AdultAge and above counts as an adult.
	AdultAge = 13
	// InfantAge and below is free and not counted at all.
	InfantAge = 1
)

// Calculator prices a stay from the seasonal and occupancy tables.
type Calculator struct {
	tables    *Tables
	maxNights int
}

// CalculatorOption configures a Calculator.
type CalculatorOption func(*Calculator)

// WithMaxNights sets the longest stay Calculate accepts.
func WithMaxNights(n int) CalculatorOption {
	return func(c *Calculator) {
		if n > 0 {
			c.maxNights = n
		}
	}
}

func NewCalculator(tables *Tables, opts ...CalculatorOption) *Calculator {
	c := &Calculator{tables: tables, maxNights: models.DefaultMaxNights}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MaxNights is the longest stay the calculator prices.
func (c *Calculator) MaxNights() int {
	return c.maxNights
}

// Tables exposes the configuration the calculator prices with.
func (c *Calculator) Tables() *Tables {
	return c.tables
}

// Occupancy is the result of splitting child ages into billing groups.
type Occupancy struct {
	Adults           int
	BillableAges     []int
	PromotedToAdult  int
	DiscardedInfants int
}

// PartitionAges moves ages >= 13 into the adult count, keeps 2..12 as billable
// children and drops infants. Every age lands in exactly one group.
func PartitionAges(adults int, ages []int) Occupancy {
	occ := Occupancy{Adults: adults, BillableAges: []int{}}
	for _, age := range ages {
		switch {
		case age >= AdultAge:
			occ.Adults++
			occ.PromotedToAdult++
		case age > InfantAge:
			occ.BillableAges = append(occ.BillableAges, age)
		default:
			occ.DiscardedInfants++
		}
	}
	return occ
}

// Calculate sums the nightly seasonal rate for nights consecutive days from
// checkin and applies the occupancy multiplier. A night outside every season
// contributes zero. An unsupported guest mix returns an *OccupancyError.
func (c *Calculator) Calculate(checkin models.Date, nights, adults int, childAges []int) (*models.PriceResult, error) {
	if nights <= 0 || nights > c.maxNights {
		return nil, fmt.Errorf("night count must be within 1..%d, got %d", c.maxNights, nights)
	}

	occ := PartitionAges(adults, childAges)
	children := len(occ.BillableAges)
	multiplier, ok := c.tables.Multiplier(occ.Adults, children)
	if !ok {
		return nil, NewOccupancyError(occ.Adults, children)
	}

	total, unpriced := 0, 0
	day := checkin
	for i := 0; i < nights; i++ {
		rate, ok := c.tables.NightlyRate(day)
		if !ok {
			unpriced++
		}
		total += rate
		day = day.AddDays(1)
	}

	ages := append([]int{}, childAges...)
	return &models.PriceResult{
		Nights:         nights,
		TotalAdults:    occ.Adults,
		TotalChildren:  children,
		ChildrenAges:   ages,
		Price:          int(math.Round(float64(total) * multiplier)),
		Info:           summary(nights, occ),
		UnpricedNights: unpriced,
	}, nil
}

// summary renders e.g. "4 gece, 2 yetişkin, 2 çocuk (5, 8 yaş)".
func summary(nights int, occ Occupancy) string {
	s := fmt.Sprintf("%d gece, %d yetişkin, %d çocuk", nights, occ.Adults, len(occ.BillableAges))
	if len(occ.BillableAges) > 0 {
		parts := make([]string, len(occ.BillableAges))
		for i, age := range occ.BillableAges {
			parts[i] = strconv.Itoa(age)
		}
		s += " (" + strings.Join(parts, ", ") + " yaş)"
	}
	return s
}
