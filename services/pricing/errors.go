package pricing

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOccupancy is matched with errors.Is for any OccupancyError.
var ErrUnsupportedOccupancy = errors.New("unsupported occupancy combination")

// OccupancyError is a business outcome, not a fault: the guest mix has no
// multiplier in the table.
type OccupancyError struct {
	Code     string
	Message  string
	Adults   int
	Children int
}

func (e *OccupancyError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, CombinationKey(e.Adults, e.Children))
}

func (e *OccupancyError) Is(target error) bool {
	return target == ErrUnsupportedOccupancy
}

func NewOccupancyError(adults, children int) error {
	return &OccupancyError{
		Code:     "unsupportedOccupancy",
		Message:  "Bu kişi/çocuk kombinasyonuna göre fiyatlandırma yapılamıyor.",
		Adults:   adults,
		Children: children,
	}
}
