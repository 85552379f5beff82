package availability

import (
	"errors"
	"math"
	"time"
)

var ErrInvalidStay = errors.New("check-out must be after check-in")

// Stay is a requested [check-in, check-out) date range. The check-out night is
// not consumed, so a one-night stay runs check-in to check-in+1d.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStay validates the range strictly: both dates present and check-out
// strictly after check-in. Interactive search treats a failed validation as
// "no date filter", not as an error; that downgrade belongs to the caller.
func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return Stay{}, ErrInvalidStay
	}
	if !checkOut.After(checkIn) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{checkIn: checkIn, checkOut: checkOut}, nil
}

func (s Stay) CheckIn() time.Time {
	return s.checkIn
}

func (s Stay) CheckOut() time.Time {
	return s.checkOut
}

// Nights is the number of calendar nights the stay spans: the duration in
// days, rounded half-up, floored at one. Rounding absorbs DST-shifted and
// time-of-day-polluted inputs from the UI date picker.
func (s Stay) Nights() int {
	days := s.checkOut.Sub(s.checkIn).Hours() / 24
	nights := int(math.Floor(days + 0.5))
	if nights < 1 {
		nights = 1
	}
	return nights
}
