//go:build unit

package availability_test

import (
	"testing"
	"time"

	"github.com/nivekneved/travellounge-sub002/internal/domain/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewStay(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		stay, err := availability.NewStay(day(2026, 3, 10), day(2026, 3, 12))
		require.NoError(t, err)
		assert.Equal(t, day(2026, 3, 10), stay.CheckIn())
		assert.Equal(t, day(2026, 3, 12), stay.CheckOut())
	})

	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
	}{
		{name: "zero check-in", checkOut: day(2026, 3, 12)},
		{name: "zero check-out", checkIn: day(2026, 3, 10)},
		{name: "both zero"},
		{name: "check-out equals check-in", checkIn: day(2026, 3, 10), checkOut: day(2026, 3, 10)},
		{name: "check-out before check-in", checkIn: day(2026, 3, 12), checkOut: day(2026, 3, 10)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := availability.NewStay(c.checkIn, c.checkOut)
			require.ErrorIs(t, err, availability.ErrInvalidStay)
		})
	}
}

func TestStayNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{
			name:     "single night",
			checkIn:  day(2026, 3, 10),
			checkOut: day(2026, 3, 11),
			expected: 1,
		},
		{
			name:     "week stay",
			checkIn:  day(2026, 3, 10),
			checkOut: day(2026, 3, 17),
			expected: 7,
		},
		{
			name:     "dst-shifted range still rounds to whole nights",
			checkIn:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 3, 12, 1, 0, 0, 0, time.UTC),
			expected: 2,
		},
		{
			name:     "sub-day range floors at one night",
			checkIn:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "half day and over rounds up",
			checkIn:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC),
			expected: 2,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stay, err := availability.NewStay(c.checkIn, c.checkOut)
			require.NoError(t, err)
			assert.Equal(t, c.expected, stay.Nights())
		})
	}
}
