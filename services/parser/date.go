// File: services/parser/date.go
package parser

import (
	"strings"
	"time"

	"staycalc/models"
)

// StayRange is a "14-19 temmuz" style mention.
type StayRange struct {
	Checkin  models.Date
	Checkout models.Date
	Nights   int
}

// Date infers the check-in date. Patterns are tried in priority order and the
// first hit wins: day + month name, yarın/bugün, weekday name, bare day with a
// locative suffix ("14'ünde").
func (e *Extractor) Date(text string, today models.Date) (models.Date, bool) {
	if m := e.dayMonthRe.FindStringSubmatch(text); m != nil {
		day, _ := atoi(m[1])
		month, _ := e.lex.Month(m[2])
		return models.NewDate(rolloverYear(today, month, day), month, day)
	}

	if strings.Contains(text, "yarın") {
		return today.AddDays(1), true
	}
	if strings.Contains(text, "bugün") {
		return today, true
	}

	if m := e.weekdayRe.FindStringSubmatch(text); m != nil {
		wanted, _ := e.lex.Weekday(m[1])
		diff := (int(wanted) - int(today.Weekday()) + 7) % 7
		if diff == 0 {
			diff = 7
		}
		if strings.Contains(text, "gelecek") || strings.Contains(text, "haftaya") {
			diff += 7
		}
		return today.AddDays(diff), true
	}

	if m := e.ordinalRe.FindStringSubmatch(text); m != nil {
		day, _ := atoi(m[1])
		year, month := today.Year(), today.Month()
		if day < today.Day() {
			month++
			if month > time.December {
				month = time.January
				year++
			}
		}
		return models.NewDate(year, month, day)
	}

	return models.Date{}, false
}

// Range recognizes two day numbers sharing one month name. It is independent
// of Date and, when present, overrides both check-in and night count.
func (e *Extractor) Range(text string, today models.Date) (StayRange, bool) {
	m := e.rangeRe.FindStringSubmatch(text)
	if m == nil {
		return StayRange{}, false
	}
	first, _ := atoi(m[1])
	second, _ := atoi(m[2])
	month, _ := e.lex.Month(m[3])
	year := rolloverYear(today, month, first)

	checkin, ok := models.NewDate(year, month, first)
	if !ok {
		return StayRange{}, false
	}
	checkout, ok := models.NewDate(year, month, second)
	if !ok {
		return StayRange{}, false
	}
	nights := checkin.DaysUntil(checkout)
	if nights <= 0 || nights > e.maxNights {
		return StayRange{}, false
	}
	return StayRange{Checkin: checkin, Checkout: checkout, Nights: nights}, true
}

// rolloverYear picks next year when the month/day has already passed this year.
func rolloverYear(today models.Date, month time.Month, day int) int {
	year := today.Year()
	if month < today.Month() || (month == today.Month() && day < today.Day()) {
		year++
	}
	return year
}
