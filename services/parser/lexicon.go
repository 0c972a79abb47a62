// File: services/parser/lexicon.go
package parser

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lexicon holds the fixed Turkish vocabularies the extractors match against.
// It is built once and never mutated; share one instance between goroutines.
type Lexicon struct {
	numbers      map[string]int
	numberWords  []string
	months       []string // ocak..aralık, index 0 = January
	monthTitles  []string
	weekdays     []string // pazar..cumartesi, index = time.Weekday
	weekdayTitle []string
}

// DefaultLexicon returns the Turkish vocabulary used by the calculator.
func DefaultLexicon() *Lexicon {
	numbers := map[string]int{
		"sıfır": 0, "bir": 1, "iki": 2, "üç": 3, "dört": 4, "beş": 5,
		"altı": 6, "yedi": 7, "sekiz": 8, "dokuz": 9, "on": 10,
	}
	return &Lexicon{
		numbers: numbers,

		// Longest first so alternations never stop at a shorter prefix.
		numberWords: []string{"sıfır", "sekiz", "dokuz", "dört", "altı", "yedi", "bir", "iki", "beş", "üç", "on"},

		months: []string{
			"ocak", "şubat", "mart", "nisan", "mayıs", "haziran",
			"temmuz", "ağustos", "eylül", "ekim", "kasım", "aralık",
		},
		monthTitles: []string{
			"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
			"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
		},
		weekdays:     []string{"pazar", "pazartesi", "salı", "çarşamba", "perşembe", "cuma", "cumartesi"},
		weekdayTitle: []string{"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi"},
	}
}

// Normalize lower-cases text with Turkish rules (I→ı, İ→i).
// A Caser keeps state, so each call gets its own.
func (l *Lexicon) Normalize(text string) string {
	return cases.Lower(language.Turkish).String(text)
}

// Number resolves a digit string or a spelled-out number word.
func (l *Lexicon) Number(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	if n, ok := atoi(token); ok {
		return n, true
	}
	n, ok := l.numbers[token]
	return n, ok
}

// Month resolves a lower-case month name.
func (l *Lexicon) Month(name string) (time.Month, bool) {
	for i, m := range l.months {
		if m == name {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

// MonthName is the display name, e.g. "Temmuz".
func (l *Lexicon) MonthName(m time.Month) string {
	return l.monthTitles[m-1]
}

// WeekdayName is the display name, e.g. "Salı".
func (l *Lexicon) WeekdayName(d time.Weekday) string {
	return l.weekdayTitle[d]
}

// Weekday resolves a lower-case weekday name.
func (l *Lexicon) Weekday(name string) (time.Weekday, bool) {
	for i, d := range l.weekdays {
		if d == name {
			return time.Weekday(i), true
		}
	}
	return 0, false
}

func (l *Lexicon) monthPattern() string {
	return alternation(l.months)
}

func (l *Lexicon) numberPattern() string {
	return `\d+|` + alternation(l.numberWords)
}

// weekdayPattern lists the longer names first: pazartesi before pazar,
// cumartesi before cuma.
func (l *Lexicon) weekdayPattern() string {
	ordered := append([]string(nil), l.weekdays...)
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && len(ordered[j]) > len(ordered[j-1]); j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}
	return alternation(ordered)
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

func atoi(s string) (int, bool) {
	if len(s) == 0 || len(s) > 6 {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
