package timesheet

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shiftops/workforce-backend-go/internal/domain/master"
	"github.com/shiftops/workforce-backend-go/internal/domain/timesheet"
	"github.com/shiftops/workforce-backend-go/internal/domain/user"
	"github.com/xuri/excelize/v2"
)

type stubTimesheetRepo struct {
	timesheet.Repository
	existing map[string]bool
	created  int
}

func (s *stubTimesheetRepo) Exists(ctx context.Context, e timesheet.Entry) (bool, error) {
	return s.existing[e.Date.Format("2006-01-02")+" "+e.StartTime], nil
}

func (s *stubTimesheetRepo) Create(ctx context.Context, e timesheet.Entry) (timesheet.Entry, bool, error) {
	s.created++
	return e, true, nil
}

type stubUserRepo struct {
	user.Repository
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{ID: 7, Name: "Erin", Username: "erin", Email: email}, nil
}

type stubMasterRepo struct {
	master.Repository
}

func (s *stubMasterRepo) ListLocations(ctx context.Context) ([]master.Location, error) {
	return []master.Location{{ID: 1, Name: "Depot", Rate: master.RateNormal}}, nil
}

func (s *stubMasterRepo) ListEvents(ctx context.Context) ([]master.Event, error) {
	return []master.Event{{ID: 2, Name: "Show"}}, nil
}

func (s *stubMasterRepo) ListTasks(ctx context.Context) ([]master.Task, error) {
	return []master.Task{{ID: 3, Name: "Rigging"}}, nil
}

func (s *stubMasterRepo) ListClients(ctx context.Context) ([]master.Client, error) {
	return []master.Client{{ID: 4, Name: "Acme", Rate: master.RateNormal}}, nil
}

func importWorkbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()

	wb := excelize.NewFile()
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	for i, column := range importColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			t.Fatalf("header cell: %v", err)
		}
		if err := wb.SetCellValue(sheet, cell, column); err != nil {
			t.Fatalf("write header: %v", err)
		}
	}
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				t.Fatalf("data cell: %v", err)
			}
			if err := wb.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("write row: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		t.Fatalf("render workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestImportRejectsFileWithDuplicateRows(t *testing.T) {
	repo := &stubTimesheetRepo{existing: map[string]bool{"2025-06-02 09:00": true}}
	svc := &TimesheetServiceImpl{
		repo:    repo,
		users:   &stubUserRepo{},
		masters: &stubMasterRepo{},
	}

	file := importWorkbook(t, [][]interface{}{
		{"erin", "erin@example.com", "2025-06-02", "Depot", "Show", "Rigging", "Acme", "09:00", 8, 25, "No"},
		{"erin", "erin@example.com", "2025-06-03", "Depot", "Show", "Rigging", "Acme", "09:00", 8, 25, "No"},
	})

	_, err := svc.Import(context.Background(), file, 1)
	if !errors.Is(err, timesheet.ErrImportDuplicates) {
		t.Fatalf("expected ErrImportDuplicates, got %v", err)
	}
	if !strings.Contains(err.Error(), "rows [2]") {
		t.Errorf("error should list the offending row, got %q", err.Error())
	}
	if repo.created != 0 {
		t.Errorf("a rejected file must insert nothing, created %d rows", repo.created)
	}
}

func TestParseImportRowStartTimes(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  string
	}{
		{name: "clock time", start: "09:00", want: "09:00"},
		{name: "short clock time", start: "9:00", want: "09:00"},
		{name: "excel day fraction morning", start: "0.375", want: "09:00"},
		{name: "excel day fraction afternoon", start: "0.6875", want: "16:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := []string{"erin", "erin@example.com", "2025-06-02", "Depot", "Show", "Rigging", "Acme", tt.start, "8", "25", "No"}
			row, err := parseImportRow(raw)
			if err != nil {
				t.Fatalf("parseImportRow() error = %v", err)
			}
			if row.startTime != tt.want {
				t.Errorf("startTime = %q, want %q", row.startTime, tt.want)
			}
		})
	}
}

func TestImportTemplateCarriesExampleRow(t *testing.T) {
	svc := &TimesheetServiceImpl{}

	data, err := svc.ImportTemplate(context.Background())
	if err != nil {
		t.Fatalf("ImportTemplate() error = %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("template is not a readable workbook: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows(wb.GetSheetName(0))
	if err != nil {
		t.Fatalf("read template sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one example row, got %d rows", len(rows))
	}
	if rows[0][0] != importColumns[0] {
		t.Errorf("header[0] = %q, want %q", rows[0][0], importColumns[0])
	}
	if rows[1][1] != "jane.doe@example.com" {
		t.Errorf("example email = %q, want jane.doe@example.com", rows[1][1])
	}
}
