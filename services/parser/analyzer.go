// File: services/parser/analyzer.go
package parser

import (
	"strings"
	"time"

	"staycalc/models"
)

// Analyzer turns a free-text message into booking fields and merges them
// with what the session already knows.
type Analyzer struct {
	lex *Lexicon
	ext *Extractor
	now func() time.Time
	loc *time.Location
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// WithLocation sets the time zone "today" is computed in.
func WithLocation(loc *time.Location) Option {
	return func(a *Analyzer) {
		if loc != nil {
			a.loc = loc
		}
	}
}

// WithMaxNights caps the night count read from text; larger values are misses.
func WithMaxNights(n int) Option {
	return func(a *Analyzer) { a.ext.withMaxNights(n) }
}

func NewAnalyzer(lex *Lexicon, opts ...Option) *Analyzer {
	a := &Analyzer{
		lex: lex,
		ext: NewExtractor(lex),
		now: time.Now,
		loc: time.UTC,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Lexicon exposes the vocabulary, e.g. for verbose date formatting.
func (a *Analyzer) Lexicon() *Lexicon {
	return a.lex
}

// Today is the reference day relative expressions are resolved against.
func (a *Analyzer) Today() models.Date {
	return models.DateOf(a.now().In(a.loc))
}

// Analysis is the outcome of one message.
type Analysis struct {
	// Extracted holds only what this message said.
	Extracted models.BookingFields
	// Fields is the prior record with Extracted merged over it.
	Fields models.BookingFields
}

// Analyze splits raw into trimmed non-empty lines and extracts every line on
// its own. For each field a later line overrides an earlier one, then the
// result is merged over prior (a new non-nil value wins). Single-line text is
// just the one-line case.
func (a *Analyzer) Analyze(raw string, prior models.BookingFields) Analysis {
	today := a.Today()
	var turn models.BookingFields

	for _, line := range strings.Split(a.lex.Normalize(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		turn.Merge(a.ExtractLine(line, today))
	}

	fields := prior.Clone()
	fields.Merge(turn)
	// "çocuk yok" without new ages drops ages remembered from earlier turns.
	if turn.DeclaredChildCount != nil && *turn.DeclaredChildCount == 0 && len(turn.ChildAges) == 0 {
		fields.ChildAges = nil
	}
	return Analysis{Extracted: turn, Fields: fields}
}

// ExtractLine runs every extractor over one normalized line.
func (a *Analyzer) ExtractLine(line string, today models.Date) models.BookingFields {
	var f models.BookingFields

	if d, ok := a.ext.Date(line, today); ok {
		f.Checkin = &d
	}
	if n, ok := a.ext.Nights(line); ok {
		f.NightCount = intPtr(n)
	}
	if r, ok := a.ext.Range(line, today); ok {
		checkin := r.Checkin
		f.Checkin = &checkin
		f.NightCount = intPtr(r.Nights)
	}

	people := a.ext.People(line)
	f.AdultCount = people.Adults
	f.DeclaredChildCount = people.Children
	f.ChildAges = people.Ages
	return f
}
