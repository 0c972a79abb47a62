// File: services/quote/overrides.go
package quote

import (
	"strings"

	"staycalc/models"

	"go.uber.org/zap"
)

// applyOverrides writes the structured request fields straight into the
// record. They run after text extraction, so for this turn an explicit field
// always beats what was parsed from the message. A malformed value is logged
// and skipped; the field keeps whatever it held before. A night count above
// maxNights counts as malformed.
func applyOverrides(fields *models.BookingFields, req models.QuoteRequest, maxNights int, logger *zap.Logger) {
	if req.Checkin != nil && strings.TrimSpace(*req.Checkin) != "" {
		if d, err := models.ParseDate(strings.TrimSpace(*req.Checkin)); err == nil {
			fields.Checkin = &d
		} else {
			logger.Warn("ignoring malformed checkin override", zap.String("checkin", *req.Checkin), zap.Error(err))
		}
	}
	if v, ok := within(req.NightCount, 1, maxNights); ok {
		fields.NightCount = models.IntPtr(v)
	} else if req.NightCount != nil {
		logger.Warn("ignoring malformed nightCount override", zap.Int("maxNights", maxNights))
	}
	if v, ok := atLeast(req.Adults, 1); ok {
		fields.AdultCount = models.IntPtr(v)
	} else if req.Adults != nil {
		logger.Warn("ignoring malformed adults override")
	}
	if v, ok := atLeast(req.Children, 0); ok {
		fields.DeclaredChildCount = models.IntPtr(v)
		if v == 0 && (req.ChildrenAges == nil || !req.ChildrenAges.Valid) {
			fields.ChildAges = nil
		}
	} else if req.Children != nil {
		logger.Warn("ignoring malformed children override")
	}
	if req.ChildrenAges != nil {
		if req.ChildrenAges.Valid && validAges(req.ChildrenAges.Values) {
			fields.ChildAges = append([]int(nil), req.ChildrenAges.Values...)
		} else {
			logger.Warn("ignoring malformed childrenAges override")
		}
	}
}

func atLeast(v *models.LooseInt, floor int) (int, bool) {
	if v == nil || !v.Valid || v.Value < floor {
		return 0, false
	}
	return v.Value, true
}

func within(v *models.LooseInt, floor, ceiling int) (int, bool) {
	n, ok := atLeast(v, floor)
	if !ok || n > ceiling {
		return 0, false
	}
	return n, true
}

func validAges(ages []int) bool {
	for _, a := range ages {
		if a < 0 || a > 120 {
			return false
		}
	}
	return true
}
