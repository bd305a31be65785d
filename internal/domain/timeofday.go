package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a facility-local wall-clock time with minute precision,
// stored as minutes since midnight. No timezone is attached.
type TimeOfDay int

const MinutesPerHour = 60

// ParseTimeOfDay parses "15:04" style strings.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 3)
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return TimeOfDay(h*MinutesPerHour + m), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/MinutesPerHour, int(t)%MinutesPerHour)
}

// Hours returns the duration from midnight in fractional hours.
func (t TimeOfDay) Hours() float64 {
	return float64(t) / MinutesPerHour
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("time of day must be a %q string", "15:04")
	}
	v, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*t = TimeOfDay(v)
		return nil
	case []byte:
		n, err := strconv.Atoi(string(v))
		if err != nil {
			return fmt.Errorf("TimeOfDay: cannot scan %q", string(v))
		}
		*t = TimeOfDay(n)
		return nil
	default:
		return fmt.Errorf("TimeOfDay: expected int64, got %T", src)
	}
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching edges do not overlap. Every overlap
// check in the platform (pricing rules, availability blocks, bookings,
// slot generation) goes through this predicate.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return !(aEnd <= bStart || aStart >= bEnd)
}

// DateOnly normalizes a timestamp to midnight UTC so calendar dates
// compare and store consistently.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekdayIndex maps a date to the 0=Monday..6=Sunday convention used by
// pricing rule day sets.
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
