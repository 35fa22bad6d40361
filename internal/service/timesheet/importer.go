package timesheet

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shiftops/workforce-backend-go/internal/domain/master"
	"github.com/shiftops/workforce-backend-go/internal/domain/notification"
	"github.com/shiftops/workforce-backend-go/internal/domain/timesheet"
	"github.com/shiftops/workforce-backend-go/internal/domain/user"
	"github.com/shiftops/workforce-backend-go/internal/repository/postgresql"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
)

// importColumns is the header row of the import workbook, also rendered
// into the downloadable template.
var importColumns = []string{
	"Username", "Email", "Date", "Location", "Event", "Task",
	"Client", "Start Time", "Hours", "Rate Per Hour", "Public Holiday",
}

// importRow is one parsed data row.
type importRow struct {
	username        string
	email           string
	date            time.Time
	location        string
	event           string
	task            string
	client          string
	startTime       string
	hours           float64
	ratePerHour     float64
	isPublicHoliday bool
}

// preparedImport is a validated workbook row ready to insert.
type preparedImport struct {
	rowNum     int
	employeeID int64
	entry      timesheet.Entry
}

// Import implements timesheet.Service. Referenced users and reference rows
// are created on the fly; bad rows are reported back without aborting the
// rest of the workbook. Rows whose shift already exists reject the whole
// file, so a re-upload cannot half-import.
func (s *TimesheetServiceImpl) Import(ctx context.Context, file io.Reader, actorID int64) (timesheet.ImportResult, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return timesheet.ImportResult{}, timesheet.ErrImportInvalidFile
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return timesheet.ImportResult{}, timesheet.ErrImportEmptyFile
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return timesheet.ImportResult{}, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) <= 1 {
		return timesheet.ImportResult{}, timesheet.ErrImportEmptyFile
	}

	loader, err := s.newReferenceLoader(ctx)
	if err != nil {
		return timesheet.ImportResult{}, err
	}

	var result timesheet.ImportResult
	var prepared []preparedImport
	for i, raw := range rows[1:] {
		rowNum := i + 2

		row, err := parseImportRow(raw)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}

		employee, created, err := s.findOrCreateEmployee(ctx, row.username, row.email)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		if created {
			result.CreatedUsers++
		}

		entry, err := loader.buildEntry(ctx, row, employee.ID, actorID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		prepared = append(prepared, preparedImport{rowNum: rowNum, employeeID: employee.ID, entry: entry})
	}

	var duplicateRows []int
	for _, p := range prepared {
		exists, err := s.repo.Exists(ctx, p.entry)
		if err != nil {
			return timesheet.ImportResult{}, err
		}
		if exists {
			duplicateRows = append(duplicateRows, p.rowNum)
		}
	}
	if len(duplicateRows) > 0 {
		return timesheet.ImportResult{}, fmt.Errorf("%w: rows %v", timesheet.ErrImportDuplicates, duplicateRows)
	}

	for _, p := range prepared {
		err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
			createdEntry, inserted, err := s.repo.Create(txCtx, p.entry)
			if err != nil {
				return err
			}
			if !inserted {
				// Inserted concurrently since the pre-scan
				return timesheet.ErrDuplicateEntry
			}

			if err := s.repo.CreateLog(txCtx, timesheet.LogEntry{
				TimesheetID: createdEntry.ID,
				UserID:      actorID,
				Action:      timesheet.LogActionImport,
				Detail:      fmt.Sprintf("imported shift on %s", p.entry.Date.Format("2006-01-02")),
			}); err != nil {
				return err
			}
			return s.notifications.EnqueueShiftJob(txCtx, p.employeeID, createdEntry.ID, notification.ActionCreate)
		})
		if err != nil {
			if errors.Is(err, timesheet.ErrDuplicateEntry) {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: duplicate shift skipped", p.rowNum))
				continue
			}
			return timesheet.ImportResult{}, err
		}
		result.Inserted++
	}

	return result, nil
}

// ImportTemplate implements timesheet.Service.
func (s *TimesheetServiceImpl) ImportTemplate(ctx context.Context) ([]byte, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	for i, column := range importColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := workbook.SetCellValue(sheet, cell, column); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	example := []interface{}{
		"jane.doe", "jane.doe@example.com", "2025-06-02", "Main Hall",
		"Conference", "Setup", "Acme Events", "09:00", 7.5, 30, "No",
	}
	for i, value := range example {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, fmt.Errorf("failed to build example cell: %w", err)
		}
		if err := workbook.SetCellValue(sheet, cell, value); err != nil {
			return nil, fmt.Errorf("failed to write example row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render template: %w", err)
	}
	return buf.Bytes(), nil
}

func parseImportRow(raw []string) (importRow, error) {
	if len(raw) < 10 {
		return importRow{}, fmt.Errorf("expected at least 10 columns, got %d", len(raw))
	}

	cell := func(i int) string {
		if i < len(raw) {
			return strings.TrimSpace(raw[i])
		}
		return ""
	}

	row := importRow{
		username:  cell(0),
		email:     strings.ToLower(cell(1)),
		location:  cell(3),
		event:     cell(4),
		task:      cell(5),
		client:    cell(6),
		startTime: cell(7),
	}
	if row.username == "" || row.email == "" {
		return importRow{}, fmt.Errorf("username and email are required")
	}
	if row.location == "" || row.event == "" || row.task == "" {
		return importRow{}, fmt.Errorf("location, event and task are required")
	}

	date, err := time.Parse("2006-01-02", cell(2))
	if err != nil {
		return importRow{}, fmt.Errorf("invalid date %q", cell(2))
	}
	row.date = date

	// Excel time cells arrive as day fractions, e.g. 0.375 for 09:00.
	if f, ferr := strconv.ParseFloat(row.startTime, 64); ferr == nil && f >= 0 && f < 1 {
		minutes := int(math.Round(f * 24 * 60))
		row.startTime = fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
	}
	if len(row.startTime) == 4 {
		row.startTime = "0" + row.startTime
	}
	if _, err := time.Parse("15:04", row.startTime); err != nil {
		return importRow{}, fmt.Errorf("invalid start time %q", cell(7))
	}

	row.hours, err = strconv.ParseFloat(cell(8), 64)
	if err != nil || row.hours <= 0 {
		return importRow{}, fmt.Errorf("invalid hours %q", cell(8))
	}

	row.ratePerHour, err = strconv.ParseFloat(cell(9), 64)
	if err != nil || row.ratePerHour <= 0 {
		return importRow{}, fmt.Errorf("invalid rate per hour %q", cell(9))
	}

	switch strings.ToLower(cell(10)) {
	case "yes", "y", "true", "1":
		row.isPublicHoliday = true
	}

	return row, nil
}

func (s *TimesheetServiceImpl) findOrCreateEmployee(ctx context.Context, username, email string) (user.User, bool, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, false, err
	}

	password, err := randomPassword()
	if err != nil {
		return user.User{}, false, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, false, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	created, err := s.users.Create(ctx, user.User{
		Name:         username,
		Username:     username,
		Email:        email,
		PasswordHash: &hashStr,
		Role:         user.RoleEmployee,
		Status:       user.StatusActive,
	})
	if err != nil {
		return user.User{}, false, err
	}

	if err := s.email.SendWelcome(created.Email, created.Name, created.Email, password, s.frontendURL); err != nil {
		log.Printf("[TimesheetService] Failed to send welcome email to user %d: %v", created.ID, err)
	}

	return created, true, nil
}

func randomPassword() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return "Wf1!" + hex.EncodeToString(buf), nil
}

// referenceLoader resolves reference names to ids, creating missing rows,
// and caches everything for the duration of one import.
type referenceLoader struct {
	masters   master.Repository
	locations map[string]master.Location
	events    map[string]int64
	tasks     map[string]int64
	clients   map[string]master.Client
}

func (s *TimesheetServiceImpl) newReferenceLoader(ctx context.Context) (*referenceLoader, error) {
	loader := &referenceLoader{
		masters:   s.masters,
		locations: make(map[string]master.Location),
		events:    make(map[string]int64),
		tasks:     make(map[string]int64),
		clients:   make(map[string]master.Client),
	}

	locations, err := s.masters.ListLocations(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range locations {
		loader.locations[strings.ToLower(l.Name)] = l
	}

	events, err := s.masters.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		loader.events[strings.ToLower(e.Name)] = e.ID
	}

	tasks, err := s.masters.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		loader.tasks[strings.ToLower(t.Name)] = t.ID
	}

	clients, err := s.masters.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		loader.clients[strings.ToLower(c.Name)] = c
	}

	return loader, nil
}

func (l *referenceLoader) buildEntry(ctx context.Context, row importRow, employeeID, actorID int64) (timesheet.Entry, error) {
	location, ok := l.locations[strings.ToLower(row.location)]
	if !ok {
		created, err := l.masters.CreateLocation(ctx, master.Location{Name: row.location, Rate: master.RateNormal})
		if err != nil {
			return timesheet.Entry{}, fmt.Errorf("failed to create location %q: %w", row.location, err)
		}
		l.locations[strings.ToLower(row.location)] = created
		location = created
	}

	eventID, ok := l.events[strings.ToLower(row.event)]
	if !ok {
		created, err := l.masters.CreateEvent(ctx, master.Event{Name: row.event, Color: "#cccccc"})
		if err != nil {
			return timesheet.Entry{}, fmt.Errorf("failed to create event %q: %w", row.event, err)
		}
		l.events[strings.ToLower(row.event)] = created.ID
		eventID = created.ID
	}

	taskID, ok := l.tasks[strings.ToLower(row.task)]
	if !ok {
		created, err := l.masters.CreateTask(ctx, master.Task{Name: row.task})
		if err != nil {
			return timesheet.Entry{}, fmt.Errorf("failed to create task %q: %w", row.task, err)
		}
		l.tasks[strings.ToLower(row.task)] = created.ID
		taskID = created.ID
	}

	var clientID *int64
	clientRate := master.RateNormal
	if row.client != "" {
		client, ok := l.clients[strings.ToLower(row.client)]
		if !ok {
			created, err := l.masters.CreateClient(ctx, master.Client{Name: row.client, Rate: master.RateNormal})
			if err != nil {
				return timesheet.Entry{}, fmt.Errorf("failed to create client %q: %w", row.client, err)
			}
			l.clients[strings.ToLower(row.client)] = created
			client = created
		}
		clientID = &client.ID
		clientRate = client.Rate
	}

	entry := timesheet.Entry{
		EmployeeID:  employeeID,
		Date:        row.date,
		LocationID:  location.ID,
		EventID:     eventID,
		TaskID:      taskID,
		ClientID:    clientID,
		StartTime:   row.startTime,
		Hours:       row.hours,
		RatePerHour: row.ratePerHour,
		CreatedBy:   actorID,
	}
	if err := derive(&entry, row.isPublicHoliday, clientRate, location.Rate); err != nil {
		return timesheet.Entry{}, err
	}

	return entry, nil
}
