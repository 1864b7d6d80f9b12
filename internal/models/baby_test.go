package models

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		dob  time.Time
		now  time.Time
		want int
	}{
		{"born today", date(2026, time.August, 29), date(2026, time.August, 29), 0},
		{"three weeks old", date(2026, time.August, 8), date(2026, time.August, 29), 0},
		{"exactly one month", date(2026, time.July, 29), date(2026, time.August, 29), 1},
		{"one day short of a month", date(2026, time.July, 30), date(2026, time.August, 29), 0},
		{"fourteen months aligned", date(2025, time.June, 29), date(2026, time.August, 29), 14},
		{"fourteen months, later day of month", date(2025, time.June, 5), date(2026, time.August, 29), 14},
		{"fourteen months, earlier day of month", date(2025, time.June, 29), date(2026, time.August, 15), 13},
		{"across year boundary", date(2025, time.November, 10), date(2026, time.January, 10), 2},
		{"varying month lengths", date(2026, time.January, 31), date(2026, time.March, 1), 1},
		{"four years", date(2022, time.August, 29), date(2026, time.August, 29), 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthsBetween(tt.dob, tt.now)
			if got != tt.want {
				t.Errorf("MonthsBetween(%s, %s) = %d, want %d",
					tt.dob.Format("2006-01-02"), tt.now.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestBabyAgeInMonths(t *testing.T) {
	// Anchor on the first of the month so AddDate cannot overflow into the
	// next month for short months.
	now := time.Now()
	dob := date(now.Year(), now.Month(), 1).AddDate(0, -14, 0)
	baby := Baby{DateOfBirth: dob}
	if got := baby.AgeInMonths(); got != 14 {
		t.Errorf("AgeInMonths() = %d, want 14", got)
	}

	newborn := Baby{DateOfBirth: now}
	if got := newborn.AgeInMonths(); got != 0 {
		t.Errorf("AgeInMonths() for newborn = %d, want 0", got)
	}
}
