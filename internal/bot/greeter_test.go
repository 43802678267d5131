package bot

import (
	"testing"
	"time"
)

func TestSameCalendarDay(t *testing.T) {
	base := time.Date(2024, 6, 15, 23, 30, 0, 0, time.Local)
	cases := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same moment", base, base, true},
		{"same day different hour", base, base.Add(-20 * time.Hour), true},
		{"crosses midnight", base, base.Add(time.Hour), false},
		{"previous day", base, base.AddDate(0, 0, -1), false},
		{"same day of next month", base, base.AddDate(0, 1, 0), false},
		{"same date of next year", base, base.AddDate(1, 0, 0), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := sameCalendarDay(c.a, c.b); got != c.want {
				t.Errorf("sameCalendarDay(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}
