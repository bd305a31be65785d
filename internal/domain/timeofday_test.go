package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, s string) TimeOfDay {
	v, err := ParseTimeOfDay(s)
	assert.NoError(t, err)
	return v
}

func TestOverlaps_Symmetry(t *testing.T) {
	cases := [][4]string{
		{"09:00", "10:00", "09:30", "11:00"},
		{"09:00", "10:00", "10:00", "11:00"},
		{"08:00", "12:00", "09:00", "10:00"},
		{"14:00", "15:00", "06:00", "07:00"},
	}
	for _, c := range cases {
		a1, a2 := mustTime(t, c[0]), mustTime(t, c[1])
		b1, b2 := mustTime(t, c[2]), mustTime(t, c[3])
		assert.Equal(t, Overlaps(a1, a2, b1, b2), Overlaps(b1, b2, a1, a2),
			"overlaps(%s-%s, %s-%s) must be symmetric", c[0], c[1], c[2], c[3])
	}
}

func TestOverlaps_HalfOpenBoundary(t *testing.T) {
	// Touching edges do not overlap.
	assert.False(t, Overlaps(mustTime(t, "09:00"), mustTime(t, "10:00"), mustTime(t, "10:00"), mustTime(t, "11:00")))
	assert.False(t, Overlaps(mustTime(t, "10:00"), mustTime(t, "11:00"), mustTime(t, "09:00"), mustTime(t, "10:00")))

	// One shared minute does.
	assert.True(t, Overlaps(mustTime(t, "09:00"), mustTime(t, "10:01"), mustTime(t, "10:00"), mustTime(t, "11:00")))
}

func TestOverlaps_Containment(t *testing.T) {
	assert.True(t, Overlaps(mustTime(t, "08:00"), mustTime(t, "20:00"), mustTime(t, "12:00"), mustTime(t, "13:00")))
	assert.True(t, Overlaps(mustTime(t, "12:00"), mustTime(t, "13:00"), mustTime(t, "08:00"), mustTime(t, "20:00")))
}

func TestParseTimeOfDay(t *testing.T) {
	v, err := ParseTimeOfDay("09:30")
	assert.NoError(t, err)
	assert.Equal(t, TimeOfDay(570), v)
	assert.Equal(t, "09:30", v.String())
	assert.InDelta(t, 9.5, v.Hours(), 1e-9)

	// Seconds are tolerated, anything else is not.
	_, err = ParseTimeOfDay("09:30:00")
	assert.NoError(t, err)
	for _, bad := range []string{"", "24:00", "09:60", "half past nine"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestWeekdayIndex_MondayIsZero(t *testing.T) {
	// 2024-06-03 is a Monday.
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, WeekdayIndex(monday))
	assert.Equal(t, 6, WeekdayIndex(monday.AddDate(0, 0, 6)))
}

func TestWeekdays_SharesDay(t *testing.T) {
	assert.True(t, Weekdays{0, 1, 2}.SharesDay(Weekdays{2, 3}))
	assert.False(t, Weekdays{0, 1}.SharesDay(Weekdays{5, 6}))
}
