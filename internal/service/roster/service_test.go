package roster

import (
	"context"
	"testing"

	"github.com/shiftops/workforce-backend-go/internal/domain/roster"
)

type stubRepo struct {
	rows []roster.Row
}

func (s *stubRepo) List(ctx context.Context, filter roster.Filter) ([]roster.Row, int64, error) {
	return s.rows, int64(len(s.rows)), nil
}

func testRows() []roster.Row {
	return []roster.Row{
		{ID: 1, EmployeeID: 10, Username: "alice", Date: "2025-06-02", StartTime: "09:00", EndTime: "17:00", LocationName: "Depot", EventName: "Setup", TaskName: "Rigging", Hours: 8},
		{ID: 2, EmployeeID: 11, Username: "bob", Date: "2025-06-02", StartTime: "10:00", EndTime: "18:00", LocationName: "Arena", EventName: "Show", TaskName: "Security", Hours: 8},
		{ID: 3, EmployeeID: 10, Username: "alice", Date: "2025-06-03", StartTime: "12:00", EndTime: "20:00", LocationName: "Depot", EventName: "Show", TaskName: "Rigging", Hours: 8},
	}
}

func TestViewFlat(t *testing.T) {
	svc := NewRosterService(&stubRepo{rows: testRows()})

	resp, err := svc.View(context.Background(), roster.Filter{})
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}

	if len(resp.Shifts) != 3 {
		t.Fatalf("expected 3 shifts, got %d", len(resp.Shifts))
	}
	if resp.Groups != nil {
		t.Error("flat view should have no groups")
	}
	if resp.Shifts[0].ShiftTime != "09:00 AM - 05:00 PM" {
		t.Errorf("shift time = %q, want %q", resp.Shifts[0].ShiftTime, "09:00 AM - 05:00 PM")
	}
	if resp.TotalCount != 3 {
		t.Errorf("total count = %d, want 3", resp.TotalCount)
	}
}

func TestClock12(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"09:05", "09:05 AM"},
		{"12:00", "12:00 PM"},
		{"17:30", "05:30 PM"},
		{"23:59", "11:59 PM"},
	}
	for _, tt := range tests {
		if got := clock12(tt.in); got != tt.want {
			t.Errorf("clock12(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestViewGrouped(t *testing.T) {
	svc := NewRosterService(&stubRepo{rows: testRows()})

	resp, err := svc.View(context.Background(), roster.Filter{GroupBy: roster.GroupUsername})
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}

	if len(resp.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(resp.Groups))
	}
	if resp.Groups[0].Key != "alice" || len(resp.Groups[0].Shifts) != 2 {
		t.Errorf("unexpected first group: %+v", resp.Groups[0])
	}
	if resp.Groups[1].Key != "bob" || len(resp.Groups[1].Shifts) != 1 {
		t.Errorf("unexpected second group: %+v", resp.Groups[1])
	}
}

func TestViewUnknownGroupKey(t *testing.T) {
	svc := NewRosterService(&stubRepo{})

	_, err := svc.View(context.Background(), roster.Filter{GroupBy: "color"})
	if err != roster.ErrUnknownGroupKey {
		t.Errorf("expected ErrUnknownGroupKey, got %v", err)
	}
}
