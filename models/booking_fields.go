package models

// DefaultMaxNights is the longest stay accepted when MAX_NIGHTS is not set.
const DefaultMaxNights = 365

// BookingFields is the per-session record filled in turn by turn.
// A nil pointer means the field has not been given yet.
type BookingFields struct {
	Checkin            *Date `json:"checkin,omitempty"`
	NightCount         *int  `json:"nightCount,omitempty"`
	AdultCount         *int  `json:"adults,omitempty"`
	DeclaredChildCount *int  `json:"children,omitempty"`
	ChildAges          []int `json:"childrenAges,omitempty"`
}

// Clone returns a deep copy so callers can merge without aliasing the stored record.
func (f BookingFields) Clone() BookingFields {
	out := BookingFields{
		Checkin:            cloneDate(f.Checkin),
		NightCount:         cloneInt(f.NightCount),
		AdultCount:         cloneInt(f.AdultCount),
		DeclaredChildCount: cloneInt(f.DeclaredChildCount),
	}
	if f.ChildAges != nil {
		out.ChildAges = append([]int(nil), f.ChildAges...)
	}
	return out
}

// Merge overwrites fields of f with the non-nil fields of newer.
// Ages are replaced, never appended.
func (f *BookingFields) Merge(newer BookingFields) {
	if newer.Checkin != nil {
		f.Checkin = cloneDate(newer.Checkin)
	}
	if newer.NightCount != nil {
		f.NightCount = cloneInt(newer.NightCount)
	}
	if newer.AdultCount != nil {
		f.AdultCount = cloneInt(newer.AdultCount)
	}
	if newer.DeclaredChildCount != nil {
		f.DeclaredChildCount = cloneInt(newer.DeclaredChildCount)
	}
	if len(newer.ChildAges) > 0 {
		f.ChildAges = append([]int(nil), newer.ChildAges...)
	}
}

// IntPtr is a small helper for building optional counts.
func IntPtr(v int) *int {
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneDate(p *Date) *Date {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
