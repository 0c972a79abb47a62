package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ISODate is the layout used for session records and seasonal rate ranges.
const ISODate = "2006-01-02"

// Date is a calendar day with no time-of-day, always held at UTC midnight.
type Date struct {
	time.Time
}

// NewDate returns the given calendar day. ok is false when the parts do not
// name a real day (e.g. 31 February), instead of normalizing into the next month.
func NewDate(year int, month time.Month, day int) (Date, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, false
	}
	return Date{t}, true
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts YYYY-MM-DD and DD.MM.YYYY.
func ParseDate(s string) (Date, error) {
	for _, layout := range []string{ISODate, "02.01.2006", "2.1.2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

// AddDays moves the date by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// DaysUntil returns the number of whole days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time).Round(24*time.Hour) / (24 * time.Hour))
}

func (d Date) String() string {
	return d.Format(ISODate)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
