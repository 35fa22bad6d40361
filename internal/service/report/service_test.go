package report

import (
	"testing"
	"time"

	reportdomain "github.com/shiftops/workforce-backend-go/internal/domain/report"
	"github.com/shiftops/workforce-backend-go/internal/domain/timesheet"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func sampleRows() []timesheet.Entry {
	date := func(value string) time.Time {
		d, _ := time.Parse("2006-01-02", value)
		return d
	}

	return []timesheet.Entry{
		{
			ID: 1, EmployeeID: 10, Username: strPtr("alice"),
			Date: date("2025-03-03"), LocationID: 1, LocationName: strPtr("Depot"),
			EventName: strPtr("Setup"), TaskName: strPtr("Rigging"),
			ClientID: int64Ptr(7), ClientName: strPtr("Acme"), ClientEmail: strPtr("billing@acme.test"),
			StartTime: "09:00", EndTime: "17:00",
			Hours: 8, RatePerHour: 25, Rate: timesheet.RateNormal, Cost: 200,
			Year: 2025, Month: "Mar", ISOWeek: 10,
		},
		{
			ID: 2, EmployeeID: 10, Username: strPtr("alice"),
			Date: date("2025-03-08"), LocationID: 1, LocationName: strPtr("Depot"),
			EventName: strPtr("Setup"), TaskName: strPtr("Rigging"),
			ClientID: int64Ptr(7), ClientName: strPtr("Acme"), ClientEmail: strPtr("billing@acme.test"),
			StartTime: "09:00", EndTime: "13:00",
			Hours: 4, RatePerHour: 25, Rate: timesheet.RateDouble, Cost: 200,
			Year: 2025, Month: "Mar", ISOWeek: 10,
		},
		{
			ID: 3, EmployeeID: 11, Username: strPtr("bob"),
			Date: date("2025-04-01"), LocationID: 2, LocationName: strPtr("Arena"),
			EventName: strPtr("Show"), TaskName: strPtr("Security"),
			StartTime: "18:00", EndTime: "23:00",
			Hours: 5, RatePerHour: 30, Rate: timesheet.RateNormal, Cost: 150,
			Year: 2025, Month: "Apr", ISOWeek: 14,
		},
	}
}

func TestBuildEmployeeReports(t *testing.T) {
	reports, grandTotal := buildEmployeeReports(sampleRows())

	if len(reports) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(reports))
	}
	if grandTotal.Shifts != 3 || grandTotal.Hours != 17 || grandTotal.Cost != 550 {
		t.Errorf("grand total = %+v, want {3 17 550}", grandTotal)
	}

	alice := reports[0]
	if alice.Username != "alice" {
		t.Fatalf("expected alice first, got %q", alice.Username)
	}
	if alice.Total.Shifts != 2 || alice.Total.Hours != 12 || alice.Total.Cost != 400 {
		t.Errorf("alice total = %+v, want {2 12 400}", alice.Total)
	}
	if len(alice.Rates) != 2 {
		t.Fatalf("expected alice to have 2 rate groups, got %d", len(alice.Rates))
	}

	normal := alice.Rates[0]
	if normal.Rate != timesheet.RateNormal {
		t.Errorf("first rate group = %q, want normal", normal.Rate)
	}
	if len(normal.Years) != 1 || normal.Years[0].Year != 2025 {
		t.Fatalf("unexpected year grouping: %+v", normal.Years)
	}
	months := normal.Years[0].Months
	if len(months) != 1 || months[0].Month != "Mar" {
		t.Fatalf("unexpected month grouping: %+v", months)
	}
	rates := months[0].RatesPerHour
	if len(rates) != 1 || rates[0].RatePerHour != 25 {
		t.Fatalf("unexpected rate-per-hour grouping: %+v", rates)
	}
	if len(rates[0].Shifts) != 1 || rates[0].Shifts[0].ID != 1 {
		t.Errorf("unexpected leaf shifts: %+v", rates[0].Shifts)
	}
}

func TestBuildClientReports(t *testing.T) {
	reports, grandTotal := buildClientReports(sampleRows())

	if len(reports) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(reports))
	}
	if grandTotal.Cost != 550 {
		t.Errorf("grand total cost = %v, want 550", grandTotal.Cost)
	}

	acme := reports[0]
	if acme.ClientName != "Acme" || acme.Email != "billing@acme.test" {
		t.Errorf("unexpected client header: %+v", acme)
	}
	if len(acme.Locations) != 1 || acme.Locations[0].LocationName != "Depot" {
		t.Fatalf("unexpected location grouping: %+v", acme.Locations)
	}
	if len(acme.Locations[0].Users) != 1 || acme.Locations[0].Users[0].Username != "alice" {
		t.Fatalf("unexpected user grouping: %+v", acme.Locations[0].Users)
	}

	unassigned := reports[1]
	if unassigned.ClientName != "Unassigned" {
		t.Errorf("rows without a client should group under Unassigned, got %q", unassigned.ClientName)
	}
	if unassigned.Total.Shifts != 1 || unassigned.Total.Cost != 150 {
		t.Errorf("unassigned total = %+v, want {1 5 150}", unassigned.Total)
	}
}

func TestBuildClientSummaries(t *testing.T) {
	reports, _ := buildClientSummaries(sampleRows())

	if len(reports) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(reports))
	}

	acme := reports[0]
	if len(acme.Locations) != 1 {
		t.Fatalf("expected 1 location, got %d", len(acme.Locations))
	}
	if len(acme.Locations[0].Rates) != 2 {
		t.Errorf("expected normal and double rate rows, got %d", len(acme.Locations[0].Rates))
	}
}

func TestPageOfLeavesTotalsAlone(t *testing.T) {
	rows := sampleRows()
	reports, grandTotal := buildEmployeeReports(rows)

	page1 := pageOf(reports, 1, 1)
	page2 := pageOf(reports, 2, 1)
	page3 := pageOf(reports, 3, 1)

	if len(page1) != 1 || len(page2) != 1 || len(page3) != 0 {
		t.Fatalf("unexpected page sizes: %d %d %d", len(page1), len(page2), len(page3))
	}
	if page1[0].Username != "alice" || page2[0].Username != "bob" {
		t.Errorf("unexpected page contents: %q %q", page1[0].Username, page2[0].Username)
	}

	// Rebuilding from the same rows must give the same grand total no
	// matter which page is requested.
	_, again := buildEmployeeReports(rows)
	if again != grandTotal {
		t.Errorf("grand total changed between builds: %+v vs %+v", again, grandTotal)
	}
}

func TestDecodeFilterRoundTrip(t *testing.T) {
	year := 2025
	filter := reportdomain.Filter{
		Year:        &year,
		EmployeeIDs: []int64{10, 11},
	}

	payload, err := encodeFilter(filter)
	if err != nil {
		t.Fatalf("encodeFilter() error = %v", err)
	}

	decoded, err := DecodeFilter(payload)
	if err != nil {
		t.Fatalf("DecodeFilter() error = %v", err)
	}
	if decoded.Year == nil || *decoded.Year != year {
		t.Errorf("decoded year = %v, want %d", decoded.Year, year)
	}
	if len(decoded.EmployeeIDs) != 2 {
		t.Errorf("decoded employee ids = %v, want 2 entries", decoded.EmployeeIDs)
	}
}
