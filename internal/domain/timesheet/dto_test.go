package timesheet

import (
	"testing"
	"time"
)

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name string
		day  string
		from string
		to   string
	}{
		{name: "monday", day: "2025-06-02", from: "2025-06-02", to: "2025-06-08"},
		{name: "midweek", day: "2025-06-04", from: "2025-06-02", to: "2025-06-08"},
		{name: "sunday belongs to the ending week", day: "2025-06-08", from: "2025-06-02", to: "2025-06-08"},
		{name: "year boundary", day: "2026-01-01", from: "2025-12-29", to: "2026-01-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := time.Parse("2006-01-02", tt.day)
			if err != nil {
				t.Fatalf("bad test date %q: %v", tt.day, err)
			}
			from, to := WeekRange(day)
			if got := from.Format("2006-01-02"); got != tt.from {
				t.Errorf("from = %s, want %s", got, tt.from)
			}
			if got := to.Format("2006-01-02"); got != tt.to {
				t.Errorf("to = %s, want %s", got, tt.to)
			}
		})
	}
}

func TestListFilterNormalizeDefaultsUserViewToCurrentWeek(t *testing.T) {
	userID := int64(7)
	filter := ListFilter{UserID: &userID}
	filter.Normalize()

	if filter.DateFrom == nil || filter.DateTo == nil {
		t.Fatal("per-user filter without dates should default to the current week")
	}
	wantFrom, wantTo := WeekRange(time.Now())
	if !filter.DateFrom.Equal(wantFrom) || !filter.DateTo.Equal(wantTo) {
		t.Errorf("defaulted range = %s..%s, want %s..%s",
			filter.DateFrom.Format("2006-01-02"), filter.DateTo.Format("2006-01-02"),
			wantFrom.Format("2006-01-02"), wantTo.Format("2006-01-02"))
	}

	flat := ListFilter{}
	flat.Normalize()
	if flat.DateFrom != nil || flat.DateTo != nil {
		t.Error("listing without a user keeps the unscoped range")
	}
}
