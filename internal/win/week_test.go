package win_test

import (
	"testing"
	"time"

	"momentum/internal/win"
)

func TestCurrentWeekStartsMonday(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"midweek",
			time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC), // Wednesday
			time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday belongs to the week that started the prior monday",
			time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC), // Sunday
			time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			"monday itself",
			time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			"monday midnight",
			time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := win.CurrentWeek(tc.now)
			if !w.Start.Equal(tc.want) {
				t.Errorf("start = %v, want %v", w.Start, tc.want)
			}
			if !w.End.Equal(tc.want.AddDate(0, 0, 7)) {
				t.Errorf("end = %v, want %v", w.End, tc.want.AddDate(0, 0, 7))
			}
		})
	}
}

func TestWindowBoundaries(t *testing.T) {
	w := win.CurrentWeek(time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC))

	cases := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"monday midnight included", time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), true},
		{"prior sunday 23:59:59 excluded", time.Date(2026, 8, 23, 23, 59, 59, 0, time.UTC), false},
		{"last second of week included", time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC), true},
		{"next monday midnight excluded", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.Contains(tc.t); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.t, got, tc.want)
			}
		})
	}
}
