//go:build unit

package dates_test

import (
	"testing"
	"time"

	"dreamstay/internal/pkg/dates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
		ok   bool
	}{
		{name: "display layout", in: "15/08/2025", want: day(2025, 8, 15), ok: true},
		{name: "iso layout", in: "2025-08-15", want: day(2025, 8, 15), ok: true},
		{name: "empty", in: "", ok: false},
		{name: "us layout rejected", in: "08/15/2025", ok: false},
		{name: "garbage", in: "mañana", ok: false},
		{name: "nonexistent day", in: "31/02/2025", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := dates.Parse(tc.in)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.True(t, got.Equal(tc.want), "got %v", got)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "03/01/2025", dates.Format(day(2025, 1, 3)))
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		startA, endA, startB, endB time.Time
		want                       bool
	}{
		{
			name:   "disjoint",
			startA: day(2025, 7, 1), endA: day(2025, 7, 5),
			startB: day(2025, 7, 10), endB: day(2025, 7, 12),
			want: false,
		},
		{
			name:   "touching endpoints do not overlap",
			startA: day(2025, 7, 1), endA: day(2025, 7, 5),
			startB: day(2025, 7, 5), endB: day(2025, 7, 8),
			want: false,
		},
		{
			name:   "one night shared",
			startA: day(2025, 7, 1), endA: day(2025, 7, 5),
			startB: day(2025, 7, 4), endB: day(2025, 7, 8),
			want: true,
		},
		{
			name:   "containment",
			startA: day(2025, 7, 1), endA: day(2025, 7, 10),
			startB: day(2025, 7, 3), endB: day(2025, 7, 4),
			want: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dates.Overlaps(tc.startA, tc.endA, tc.startB, tc.endB))
			assert.Equal(t, tc.want, dates.Overlaps(tc.startB, tc.endB, tc.startA, tc.endA), "must be symmetric")
		})
	}
}

func TestNights(t *testing.T) {
	assert.Equal(t, 2, dates.Nights(day(2025, 7, 10), day(2025, 7, 12)))
	assert.Equal(t, 1, dates.Nights(day(2025, 7, 10), day(2025, 7, 11)))
	// Same-day stays still bill one night.
	assert.Equal(t, 1, dates.Nights(day(2025, 7, 10), day(2025, 7, 10)))
}

func TestToday(t *testing.T) {
	// 01:30 UTC with a UTC-3 caller (offset 180) is still the previous day
	// locally.
	now := time.Date(2025, 7, 2, 1, 30, 0, 0, time.UTC)
	assert.True(t, dates.Today(now, 180).Equal(day(2025, 7, 1)))
	assert.True(t, dates.Today(now, 0).Equal(day(2025, 7, 2)))
	// East of UTC the offset is negative and can move the day forward.
	assert.True(t, dates.Today(time.Date(2025, 7, 2, 23, 30, 0, 0, time.UTC), -120).Equal(day(2025, 7, 3)))
}

func TestAge(t *testing.T) {
	today := day(2025, 7, 1)
	cases := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{name: "birthday passed", birth: day(1990, 1, 1), want: 35},
		{name: "birthday today", birth: day(2000, 7, 1), want: 25},
		{name: "birthday tomorrow", birth: day(2000, 7, 2), want: 24},
		{name: "under two", birth: day(2024, 6, 1), want: 1},
		{name: "future birth", birth: day(2026, 1, 1), want: -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dates.Age(tc.birth, today))
		})
	}
}
