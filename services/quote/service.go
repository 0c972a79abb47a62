// File: services/quote/service.go
package quote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"staycalc/models"
	"staycalc/services/parser"
	"staycalc/services/pricing"
	"staycalc/services/session"
	"staycalc/utils"

	"go.uber.org/zap"
)

// DefaultSessionID is used when a request names no session.
const DefaultSessionID = "global"

// QuoteService runs one conversational turn: parse, merge, gate, price.
type QuoteService interface {
	Process(ctx context.Context, req models.QuoteRequest) (*models.QuoteResponse, error)
	Session(ctx context.Context, sessionID string) (*models.SessionView, error)
	Reset(ctx context.Context, sessionID string) error
	Seasons() SeasonsView
}

// Options tunes a DefaultQuoteService.
type Options struct {
	DefaultSessionID string
	CurrencySuffix   string
	Logger           *zap.Logger
}

// DefaultQuoteService implements QuoteService.
type DefaultQuoteService struct {
	Repo     session.Repository
	Analyzer *parser.Analyzer
	Calc     *pricing.Calculator

	defaultSessionID string
	currency         string
	logger           *zap.Logger
}

func NewQuoteService(repo session.Repository, analyzer *parser.Analyzer, calc *pricing.Calculator, opts Options) *DefaultQuoteService {
	if opts.DefaultSessionID == "" {
		opts.DefaultSessionID = DefaultSessionID
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &DefaultQuoteService{
		Repo:             repo,
		Analyzer:         analyzer,
		Calc:             calc,
		defaultSessionID: opts.DefaultSessionID,
		currency:         opts.CurrencySuffix,
		logger:           opts.Logger,
	}
}

// Process handles one message. Only repository failures come back as errors;
// missing fields and unsupported guest mixes are normal responses.
//
// The session is read, updated and written back without a lock, so two
// concurrent turns on the same session id can lose one of the updates.
func (s *DefaultQuoteService) Process(ctx context.Context, req models.QuoteRequest) (*models.QuoteResponse, error) {
	sessionID := s.sessionID(req.SessionID)
	logger := s.logger.With(zap.String("sessionId", sessionID))

	stored, err := s.Repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	analysis := s.Analyzer.Analyze(req.Message, *stored)
	fields := analysis.Fields
	maxNights := s.Calc.MaxNights()
	applyOverrides(&fields, req, maxNights, logger)
	// a record saved under a higher MAX_NIGHTS asks for the night count again
	if fields.NightCount != nil && *fields.NightCount > maxNights {
		logger.Warn("dropping stored night count above limit", zap.Int("nights", *fields.NightCount), zap.Int("maxNights", maxNights))
		fields.NightCount = nil
	}

	if err := s.Repo.Put(ctx, sessionID, &fields); err != nil {
		return nil, fmt.Errorf("save session %s: %w", sessionID, err)
	}

	missing := MissingFields(fields)
	if len(missing) > 0 {
		logger.Debug("quote incomplete", zap.Strings("missing", missing))
		joined := strings.Join(missing, ", ")
		return &models.QuoteResponse{
			Completed:     false,
			Missing:       joined,
			Message:       "Lütfen eksik bilgileri girin: " + joined,
			Session:       &fields,
			MissingFields: missing,
		}, nil
	}

	result, err := s.Calc.Calculate(*fields.Checkin, *fields.NightCount, *fields.AdultCount, fields.ChildAges)
	if err != nil {
		var occErr *pricing.OccupancyError
		if errors.As(err, &occErr) {
			logger.Info("unsupported occupancy", zap.Int("adults", occErr.Adults), zap.Int("children", occErr.Children))
			return &models.QuoteResponse{Completed: true, Error: occErr.Message, MissingFields: []string{}}, nil
		}
		return nil, fmt.Errorf("calculate price: %w", err)
	}

	checkout := fields.Checkin.AddDays(result.Nights)
	logger.Info("quote priced",
		zap.String("checkin", fields.Checkin.String()),
		zap.Int("nights", result.Nights),
		zap.Int("price", result.Price))

	return &models.QuoteResponse{
		Completed: true,
		PricedQuote: &models.PricedQuote{
			Checkin:        s.verboseDate(*fields.Checkin),
			Checkout:       s.verboseDate(checkout),
			Nights:         result.Nights,
			Adults:         result.TotalAdults,
			Children:       result.TotalChildren,
			ChildrenAges:   result.ChildrenAges,
			Price:          result.Price,
			FormattedPrice: utils.FormatPrice(result.Price, s.currency),
			Info:           result.Info,
			UnpricedNights: result.UnpricedNights,
		},
		Session:       &fields,
		MissingFields: []string{},
	}, nil
}

// Session returns the stored record and what is still missing.
func (s *DefaultQuoteService) Session(ctx context.Context, sessionID string) (*models.SessionView, error) {
	sessionID = s.sessionID(sessionID)
	fields, err := s.Repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	missing := MissingFields(*fields)
	return &models.SessionView{
		SessionID: sessionID,
		Session:   *fields,
		Missing:   missing,
		Completed: len(missing) == 0,
	}, nil
}

// Reset forgets everything collected for the session.
func (s *DefaultQuoteService) Reset(ctx context.Context, sessionID string) error {
	sessionID = s.sessionID(sessionID)
	if err := s.Repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	return nil
}

// SeasonsView is the public shape of the pricing tables.
type SeasonsView struct {
	Seasons      []pricing.SeasonalRate `json:"seasons"`
	Combinations map[string]float64     `json:"combinations"`
	Currency     string                 `json:"currency"`
}

func (s *DefaultQuoteService) Seasons() SeasonsView {
	tables := s.Calc.Tables()
	return SeasonsView{
		Seasons:      tables.Rates(),
		Combinations: tables.Combinations(),
		Currency:     s.currency,
	}
}

func (s *DefaultQuoteService) sessionID(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return s.defaultSessionID
}

// verboseDate renders "<day> <MonthName> <WeekdayName>", e.g. "15 Temmuz Salı".
func (s *DefaultQuoteService) verboseDate(d models.Date) string {
	lex := s.Analyzer.Lexicon()
	return fmt.Sprintf("%d %s %s", d.Day(), lex.MonthName(d.Month()), lex.WeekdayName(d.Weekday()))
}
