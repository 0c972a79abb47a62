package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// PriceResult is the breakdown produced by the price calculator.
type PriceResult struct {
	Nights         int    `json:"nights"`
	TotalAdults    int    `json:"totalAdults"`
	TotalChildren  int    `json:"totalChildren"`
	ChildrenAges   []int  `json:"childrenAges"`
	Price          int    `json:"price"`
	Info           string `json:"info"`
	UnpricedNights int    `json:"unpricedNights,omitempty"` // nights outside every season
}

// QuoteRequest is the payload coming into POST /api/quote.
// The structured fields bypass text parsing and win over it for the turn.
type QuoteRequest struct {
	Message      string     `json:"message"`
	SessionID    string     `json:"sessionId"`
	Checkin      *string    `json:"checkin,omitempty"`
	NightCount   *LooseInt  `json:"nightCount,omitempty"`
	Adults       *LooseInt  `json:"adults,omitempty"`
	Children     *LooseInt  `json:"children,omitempty"`
	ChildrenAges *LooseInts `json:"childrenAges,omitempty"`
}

// QuoteResponse covers the three result shapes: incomplete, priced and
// priced-but-unsupported. Unused fields are omitted.
type QuoteResponse struct {
	Completed bool   `json:"completed"`
	Missing   string `json:"missing,omitempty"`
	Message   string `json:"message,omitempty"`
	*PricedQuote
	Error   string         `json:"error,omitempty"`
	Session *BookingFields `json:"session,omitempty"`

	MissingFields []string `json:"-"`
}

// PricedQuote is flattened into QuoteResponse once a price was computed.
type PricedQuote struct {
	Checkin        string `json:"checkin"`
	Checkout       string `json:"checkout"`
	Nights         int    `json:"nights"`
	Adults         int    `json:"adults"`
	Children       int    `json:"children"`
	ChildrenAges   []int  `json:"childrenAges"`
	Price          int    `json:"price"`
	FormattedPrice string `json:"formattedPrice"`
	Info           string `json:"info"`
	UnpricedNights int    `json:"unpricedNights,omitempty"`
}

// SessionView is returned by GET /api/quote/session/:sessionID.
type SessionView struct {
	SessionID string        `json:"sessionId"`
	Session   BookingFields `json:"session"`
	Missing   []string      `json:"missing"`
	Completed bool          `json:"completed"`
}

// LooseInt is a count sent by a client as a JSON number or numeric string.
// Anything else decodes without error and leaves Valid false.
type LooseInt struct {
	Value int
	Valid bool
}

func (l *LooseInt) UnmarshalJSON(b []byte) error {
	*l = LooseInt{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		if v == float64(int(v)) {
			*l = LooseInt{Value: int(v), Valid: true}
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*l = LooseInt{Value: n, Valid: true}
		}
	}
	return nil
}

func (l LooseInt) MarshalJSON() ([]byte, error) {
	if !l.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(l.Value)), nil
}

// LooseInts is an age list sent as a JSON array or a comma separated string.
// A list with any non-numeric entry decodes to Valid false.
type LooseInts struct {
	Values []int
	Valid  bool
}

func (l *LooseInts) UnmarshalJSON(b []byte) error {
	*l = LooseInts{}
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var items []LooseInt
	if err := json.Unmarshal(b, &items); err != nil {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		for _, part := range strings.Split(s, ",") {
			var item LooseInt
			_ = item.UnmarshalJSON([]byte(strconv.Quote(part)))
			items = append(items, item)
		}
	}
	values := make([]int, 0, len(items))
	for _, item := range items {
		if !item.Valid {
			return nil
		}
		values = append(values, item.Value)
	}
	*l = LooseInts{Values: values, Valid: true}
	return nil
}

func (l LooseInts) MarshalJSON() ([]byte, error) {
	if !l.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(l.Values)
}
