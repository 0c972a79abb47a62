// File: services/quote/gate.go
package quote

import "staycalc/models"

// Names of the fields reported back when they are still unknown.
const (
	MissingCheckin    = "giriş tarihi"
	MissingNightCount = "gece sayısı"
	MissingAdultCount = "yetişkin sayısı"
	MissingChildAges  = "çocuk yaşları"
)

// MissingFields lists what still has to be asked before a price can be given.
// Children's ages are only required once a positive child count was declared,
// and only until there are at least as many ages as declared children.
func MissingFields(f models.BookingFields) []string {
	missing := []string{}
	if f.Checkin == nil {
		missing = append(missing, MissingCheckin)
	}
	if f.NightCount == nil || *f.NightCount <= 0 {
		missing = append(missing, MissingNightCount)
	}
	if f.AdultCount == nil || *f.AdultCount <= 0 {
		missing = append(missing, MissingAdultCount)
	}
	if f.DeclaredChildCount != nil && *f.DeclaredChildCount > 0 && len(f.ChildAges) < *f.DeclaredChildCount {
		missing = append(missing, MissingChildAges)
	}
	return missing
}

// Complete reports whether the record can be priced.
func Complete(f models.BookingFields) bool {
	return len(MissingFields(f)) == 0
}
