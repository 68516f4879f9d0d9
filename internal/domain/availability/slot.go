package availability

import "time"

// TimeSlot is a candidate appointment interval of service duration within an
// availability window, flagged against existing bookings.
type TimeSlot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

// Overlaps is the half-open interval test used everywhere a booking is
// checked against a candidate range.
func Overlaps(existingStart, existingEnd, start, end time.Time) bool {
	return existingStart.Before(end) && existingEnd.After(start)
}

// ISOWeekday maps time.Weekday (Sunday=0) to ISO numbering (Monday=1,
// Sunday=7).
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
