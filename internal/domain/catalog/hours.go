package catalog

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// TimeOfDay is minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM" (24-hour clock).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	// The layout alone accepts a single-digit hour.
	if len(s) != 5 {
		return 0, fmt.Errorf("invalid time of day %q (want HH:MM)", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q (want HH:MM)", s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// String formats t as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Hours is a daily opening window. Close before Open means the window
// wraps past midnight.
type Hours struct {
	Open  TimeOfDay
	Close TimeOfDay
}

// ParseHours parses opening and closing times.
func ParseHours(open, closing string) (Hours, error) {
	o, err := ParseTimeOfDay(open)
	if err != nil {
		return Hours{}, fmt.Errorf("opening time: %w", err)
	}
	c, err := ParseTimeOfDay(closing)
	if err != nil {
		return Hours{}, fmt.Errorf("closing time: %w", err)
	}
	return Hours{Open: o, Close: c}, nil
}

// WrapsMidnight reports whether the window crosses midnight.
func (h Hours) WrapsMidnight() bool { return h.Close < h.Open }

// OpenAt reports whether t falls inside the window. Open is inclusive,
// Close exclusive. Equal Open and Close means open all day.
func (h Hours) OpenAt(t TimeOfDay) bool {
	t = TimeOfDay(((int(t) % minutesPerDay) + minutesPerDay) % minutesPerDay)
	switch {
	case h.Open == h.Close:
		return true
	case h.WrapsMidnight():
		return t >= h.Open || t < h.Close
	default:
		return t >= h.Open && t < h.Close
	}
}
