package timesheet

import (
	"testing"
	"time"

	"github.com/shiftops/workforce-backend-go/internal/domain/timesheet"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return date
}

func TestResolveRate(t *testing.T) {
	tests := []struct {
		name            string
		date            string
		isPublicHoliday bool
		clientRate      string
		locationRate    string
		want            string
	}{
		{
			name:            "public holiday on a weekday doubles",
			date:            "2025-06-04", // Wednesday
			isPublicHoliday: true,
			clientRate:      timesheet.RateNormal,
			locationRate:    timesheet.RateNormal,
			want:            timesheet.RateDouble,
		},
		{
			name:         "plain weekday stays normal",
			date:         "2025-06-04",
			clientRate:   timesheet.RateDouble,
			locationRate: timesheet.RateDouble,
			want:         timesheet.RateNormal,
		},
		{
			name:         "saturday with both flags doubles",
			date:         "2025-06-07",
			clientRate:   timesheet.RateDouble,
			locationRate: timesheet.RateDouble,
			want:         timesheet.RateDouble,
		},
		{
			name:         "sunday with both flags doubles",
			date:         "2025-06-08",
			clientRate:   timesheet.RateDouble,
			locationRate: timesheet.RateDouble,
			want:         timesheet.RateDouble,
		},
		{
			name:         "saturday with only location flagged stays normal",
			date:         "2025-06-07",
			clientRate:   timesheet.RateNormal,
			locationRate: timesheet.RateDouble,
			want:         timesheet.RateNormal,
		},
		{
			name:         "saturday with only client flagged stays normal",
			date:         "2025-06-07",
			clientRate:   timesheet.RateDouble,
			locationRate: timesheet.RateNormal,
			want:         timesheet.RateNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRate(mustDate(t, tt.date), tt.isPublicHoliday, tt.clientRate, tt.locationRate)
			if got != tt.want {
				t.Errorf("ResolveRate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEndTime(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		hours     float64
		want      string
	}{
		{name: "whole hours", startTime: "09:00", hours: 8, want: "17:00"},
		{name: "half hour fraction", startTime: "09:00", hours: 7.5, want: "16:30"},
		{name: "wraps past midnight", startTime: "20:00", hours: 10, want: "06:00"},
		{name: "quarter hour fraction", startTime: "08:15", hours: 4.25, want: "12:30"},
		{name: "minutes wrap without carrying", startTime: "09:45", hours: 0.5, want: "09:15"},
		{name: "ends exactly at midnight", startTime: "16:00", hours: 8, want: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EndTime(tt.startTime, tt.hours)
			if err != nil {
				t.Fatalf("EndTime() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("EndTime(%q, %v) = %q, want %q", tt.startTime, tt.hours, got, tt.want)
			}
		})
	}
}

func TestEndTimeInvalidStart(t *testing.T) {
	if _, err := EndTime("not-a-time", 8); err == nil {
		t.Error("EndTime() expected error for malformed start time")
	}
}

func TestEffectiveRate(t *testing.T) {
	if got := EffectiveRate(25, timesheet.RateDouble); got != 50 {
		t.Errorf("EffectiveRate(25, double) = %v, want 50", got)
	}
	if got := EffectiveRate(25, timesheet.RateNormal); got != 25 {
		t.Errorf("EffectiveRate(25, normal) = %v, want 25", got)
	}
}

func TestDerive(t *testing.T) {
	entry := timesheet.Entry{
		Date:        mustDate(t, "2025-06-07"), // Saturday, ISO week 23
		StartTime:   "09:00",
		Hours:       7.5,
		RatePerHour: 30,
	}

	if err := derive(&entry, false, timesheet.RateDouble, timesheet.RateDouble); err != nil {
		t.Fatalf("derive() error = %v", err)
	}

	if entry.Rate != timesheet.RateDouble {
		t.Errorf("Rate = %q, want %q", entry.Rate, timesheet.RateDouble)
	}
	if entry.RatePerHour != 60 {
		t.Errorf("RatePerHour = %v, want resolved 60", entry.RatePerHour)
	}
	if entry.EndTime != "16:30" {
		t.Errorf("EndTime = %q, want 16:30", entry.EndTime)
	}
	if entry.Cost != 450 {
		t.Errorf("Cost = %v, want 450", entry.Cost)
	}
	if entry.Cost != entry.Hours*entry.RatePerHour {
		t.Errorf("Cost = %v, want Hours*RatePerHour = %v", entry.Cost, entry.Hours*entry.RatePerHour)
	}
	if entry.Year != 2025 {
		t.Errorf("Year = %d, want 2025", entry.Year)
	}
	if entry.Month != "Jun" {
		t.Errorf("Month = %q, want Jun", entry.Month)
	}
	if entry.ISOWeek != 23 {
		t.Errorf("ISOWeek = %d, want 23", entry.ISOWeek)
	}
}

func TestDeriveNormalRateKeepsWage(t *testing.T) {
	entry := timesheet.Entry{
		Date:        mustDate(t, "2025-06-04"), // Wednesday
		StartTime:   "09:00",
		Hours:       8,
		RatePerHour: 30,
	}

	if err := derive(&entry, false, timesheet.RateDouble, timesheet.RateDouble); err != nil {
		t.Fatalf("derive() error = %v", err)
	}

	if entry.Rate != timesheet.RateNormal {
		t.Errorf("Rate = %q, want %q", entry.Rate, timesheet.RateNormal)
	}
	if entry.RatePerHour != 30 {
		t.Errorf("RatePerHour = %v, want 30", entry.RatePerHour)
	}
	if entry.Cost != 240 {
		t.Errorf("Cost = %v, want 240", entry.Cost)
	}
}
