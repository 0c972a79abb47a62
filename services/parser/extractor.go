// File: services/parser/extractor.go
package parser

import (
	"regexp"

	"staycalc/models"
)

// boundary stands in for a leading \b, which RE2 only knows for ASCII words.
const boundary = `(?:^|[^\p{L}\d])`

// ageBoundary also refuses a number right after "+", which belongs to the
// "2+1" guest shorthand.
const ageBoundary = `(?:^|[^\p{L}\d+])`

// Extractor scans normalized (lower-case) text for single booking fields.
// All methods are pure; one Extractor can serve every request.
type Extractor struct {
	lex *Lexicon

	dayMonthRe *regexp.Regexp
	rangeRe    *regexp.Regexp
	weekdayRe  *regexp.Regexp
	ordinalRe  *regexp.Regexp

	nightRe *regexp.Regexp

	noChildRe  *regexp.Regexp
	adultRe    *regexp.Regexp
	childRe    *regexp.Regexp
	plusRe     *regexp.Regexp
	personRe   *regexp.Regexp
	ageLabelRe *regexp.Regexp
	ageFirstRe *regexp.Regexp
	ageNextRe  *regexp.Regexp
	ageWordRe  *regexp.Regexp
	ageDayRe   *regexp.Regexp
	ageListRe  *regexp.Regexp
	ageScanRe  *regexp.Regexp
	listSepRe  *regexp.Regexp

	// words that end a labeled age list when they follow a number
	unitWords []string

	maxNights int
}

// NewExtractor compiles the patterns for the given vocabulary.
func NewExtractor(lex *Lexicon) *Extractor {
	months := lex.monthPattern()
	num := lex.numberPattern()

	unitWords := append([]string{"gece", "gün", "yetişkin", "büyük", "çocuk", "küçük", "kişi"}, lex.months...)

	return &Extractor{
		lex: lex,

		dayMonthRe: regexp.MustCompile(boundary + `(\d{1,2})[\s.]*(` + months + `)`),
		rangeRe:    regexp.MustCompile(boundary + `(\d{1,2})[\s.]*[-–][\s.]*(\d{1,2})[\s.]*(` + months + `)`),
		weekdayRe:  regexp.MustCompile(`(?:^|[^\p{L}])(` + lex.weekdayPattern() + `)`),
		ordinalRe:  regexp.MustCompile(boundary + `(\d{1,2})\s*['’]?\s*[sy]?[iıuü]nd[ae]`),

		nightRe: regexp.MustCompile(boundary + `(` + num + `)[\s-]*(gece|gün)`),

		noChildRe:  regexp.MustCompile(`çocuksuz|çocu[kğ]\p{L}*\s+(?:yok|olmayacak|bulunmuyor)`),
		adultRe:    regexp.MustCompile(boundary + `(` + num + `)\s*(?:yetişkin|büyük)`),
		childRe:    regexp.MustCompile(boundary + `(` + num + `)\s*(?:çocuk|küçük)`),
		plusRe:     regexp.MustCompile(`(\d+)\s*\+\s*(\d+)`),
		personRe:   regexp.MustCompile(boundary + `(` + num + `)\s*kişi`),
		ageLabelRe: regexp.MustCompile(`yaş(?:ları|lari|lar|ı|i)?`),
		ageFirstRe: regexp.MustCompile(`^[\s:]*(\d{1,2})`),
		ageNextRe:  regexp.MustCompile(`^\s*(?:,|ve|ile|&|/)\s*(\d{1,2})`),
		ageWordRe:  regexp.MustCompile(`^\s*(\p{L}+)`),
		ageDayRe:   regexp.MustCompile(`^\s*['’]|^\s*[sy]?[iıuü]nd[ae]`),
		ageListRe:  regexp.MustCompile(ageBoundary + `(\d{1,2}(?:\s*(?:,|ve|ile)\s*\d{1,2})+)\s*yaş`),
		ageScanRe:  regexp.MustCompile(ageBoundary + `(\d{1,2})\s*yaş`),
		listSepRe:  regexp.MustCompile(`\s*(?:,|ve|ile)\s*`),

		unitWords: unitWords,
		maxNights: models.DefaultMaxNights,
	}
}

// withMaxNights sets the largest night count the extractors accept.
func (e *Extractor) withMaxNights(n int) {
	if n > 0 {
		e.maxNights = n
	}
}
