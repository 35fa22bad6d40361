package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shiftops/workforce-backend-go/internal/domain/master"
	"github.com/shiftops/workforce-backend-go/internal/domain/notification"
	"github.com/shiftops/workforce-backend-go/internal/domain/settings"
	"github.com/shiftops/workforce-backend-go/internal/domain/timesheet"
	"github.com/shiftops/workforce-backend-go/internal/domain/user"
	"github.com/shiftops/workforce-backend-go/internal/pkg/database"
	"github.com/shiftops/workforce-backend-go/internal/pkg/email"
	"github.com/shiftops/workforce-backend-go/internal/repository/postgresql"
)

type TimesheetServiceImpl struct {
	db            *database.DB
	repo          timesheet.Repository
	users         user.Repository
	masters       master.Repository
	settings      settings.Repository
	notifications notification.Service
	email         email.EmailService
	frontendURL   string
}

func NewTimesheetService(
	db *database.DB,
	repo timesheet.Repository,
	users user.Repository,
	masters master.Repository,
	settingsRepo settings.Repository,
	notifications notification.Service,
	emailService email.EmailService,
	frontendURL string,
) timesheet.Service {
	return &TimesheetServiceImpl{
		db:            db,
		repo:          repo,
		users:         users,
		masters:       masters,
		settings:      settingsRepo,
		notifications: notifications,
		email:         emailService,
		frontendURL:   frontendURL,
	}
}

// SearchEmployees implements timesheet.Service.
func (s *TimesheetServiceImpl) SearchEmployees(ctx context.Context, username string) ([]timesheet.Option, error) {
	matches, err := s.users.SearchActive(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}

	options := make([]timesheet.Option, 0, len(matches))
	for _, u := range matches {
		options = append(options, timesheet.Option{ID: u.ID, Name: u.Username})
	}
	return options, nil
}

// Details implements timesheet.Service.
func (s *TimesheetServiceImpl) Details(ctx context.Context) (timesheet.DetailsResponse, error) {
	locations, err := s.masters.ListLocations(ctx)
	if err != nil {
		return timesheet.DetailsResponse{}, err
	}
	events, err := s.masters.ListEvents(ctx)
	if err != nil {
		return timesheet.DetailsResponse{}, err
	}
	tasks, err := s.masters.ListTasks(ctx)
	if err != nil {
		return timesheet.DetailsResponse{}, err
	}
	clients, err := s.masters.ListClients(ctx)
	if err != nil {
		return timesheet.DetailsResponse{}, err
	}

	resp := timesheet.DetailsResponse{
		Locations: make([]timesheet.LocationDetail, 0, len(locations)),
		Events:    make([]timesheet.Option, 0, len(events)),
		Tasks:     make([]timesheet.Option, 0, len(tasks)),
		Clients:   make([]timesheet.ClientDetail, 0, len(clients)),
	}
	for _, l := range locations {
		resp.Locations = append(resp.Locations, timesheet.LocationDetail{ID: l.ID, Name: l.Name, Rate: l.Rate})
	}
	for _, e := range events {
		resp.Events = append(resp.Events, timesheet.Option{ID: e.ID, Name: e.Name})
	}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, timesheet.Option{ID: t.ID, Name: t.Name})
	}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, timesheet.ClientDetail{ID: c.ID, Name: c.Name, Rate: c.Rate})
	}

	appSettings, err := s.settings.Get(ctx)
	if err != nil && !errors.Is(err, settings.ErrSettingsNotFound) {
		return timesheet.DetailsResponse{}, err
	}
	resp.MaxWageRate = appSettings.MaxWageRate

	return resp, nil
}

// FilterOptions implements timesheet.Service.
func (s *TimesheetServiceImpl) FilterOptions(ctx context.Context, filter timesheet.FilterOptionsFilter) (timesheet.FilterOptionsResponse, error) {
	return s.repo.FilterOptions(ctx, filter)
}

// rates loads the location and client rate labels referenced by a request.
// A missing client means the location rate decides alone, reported as
// "normal" here so weekends stay undoubled.
func (s *TimesheetServiceImpl) rates(ctx context.Context, locationID int64, clientID *int64) (clientRate, locationRate string, err error) {
	location, err := s.masters.GetLocation(ctx, locationID)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve location rate: %w", err)
	}
	locationRate = location.Rate

	clientRate = master.RateNormal
	if clientID != nil {
		client, err := s.masters.GetClient(ctx, *clientID)
		if err != nil {
			return "", "", fmt.Errorf("failed to resolve client rate: %w", err)
		}
		clientRate = client.Rate
	}

	return clientRate, locationRate, nil
}

// CreateEntries implements timesheet.Service.
func (s *TimesheetServiceImpl) CreateEntries(ctx context.Context, req timesheet.CreateEntriesRequest, actorID int64) (timesheet.CreateEntriesResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.CreateEntriesResponse{}, err
	}

	clientRate, locationRate, err := s.rates(ctx, req.LocationID, req.ClientID)
	if err != nil {
		return timesheet.CreateEntriesResponse{}, err
	}

	single := len(req.EmployeeIDs) == 1 && len(req.Dates) == 1

	var resp timesheet.CreateEntriesResponse
	for _, employeeID := range req.EmployeeIDs {
		for _, rawDate := range req.Dates {
			date, err := time.Parse("2006-01-02", rawDate)
			if err != nil {
				return timesheet.CreateEntriesResponse{}, fmt.Errorf("failed to parse date %q: %w", rawDate, err)
			}

			entry := timesheet.Entry{
				EmployeeID:  employeeID,
				Date:        date,
				LocationID:  req.LocationID,
				EventID:     req.EventID,
				TaskID:      req.TaskID,
				ClientID:    req.ClientID,
				StartTime:   req.StartTime,
				Hours:       req.Hours,
				RatePerHour: req.RatePerHour,
				CreatedBy:   actorID,
			}
			if err := derive(&entry, req.IsPublicHoliday, clientRate, locationRate); err != nil {
				return timesheet.CreateEntriesResponse{}, err
			}

			err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
				created, inserted, err := s.repo.Create(txCtx, entry)
				if err != nil {
					return err
				}
				if !inserted {
					resp.Skipped++
					return nil
				}
				resp.Inserted++

				if err := s.repo.CreateLog(txCtx, timesheet.LogEntry{
					TimesheetID: created.ID,
					UserID:      actorID,
					Action:      timesheet.LogActionCreate,
					Detail:      fmt.Sprintf("shift on %s at location %d", rawDate, req.LocationID),
				}); err != nil {
					return err
				}

				return s.notifications.EnqueueShiftJob(txCtx, employeeID, created.ID, notification.ActionCreate)
			})
			if err != nil {
				return timesheet.CreateEntriesResponse{}, err
			}
		}
	}

	if single && resp.Inserted == 0 {
		return timesheet.CreateEntriesResponse{}, timesheet.ErrDuplicateEntry
	}
	if resp.Inserted == 0 {
		return timesheet.CreateEntriesResponse{}, timesheet.ErrNoEntriesInserted
	}

	resp.Complete = resp.Skipped == 0
	return resp, nil
}

// UpdateEntry implements timesheet.Service. Derived columns are recomputed
// from the patched inputs and the employee is re-notified.
func (s *TimesheetServiceImpl) UpdateEntry(ctx context.Context, req timesheet.UpdateEntryRequest, actorID int64) (timesheet.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.EntryResponse{}, err
	}

	entry, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return timesheet.EntryResponse{}, fmt.Errorf("failed to parse date %q: %w", *req.Date, err)
		}
		entry.Date = date
	}
	if req.LocationID != nil {
		entry.LocationID = *req.LocationID
	}
	if req.EventID != nil {
		entry.EventID = *req.EventID
	}
	if req.TaskID != nil {
		entry.TaskID = *req.TaskID
	}
	if req.ClientID != nil {
		entry.ClientID = req.ClientID
	}
	if req.StartTime != nil {
		entry.StartTime = *req.StartTime
	}
	if req.Hours != nil {
		entry.Hours = *req.Hours
	}
	if req.RatePerHour != nil {
		entry.RatePerHour = *req.RatePerHour
	} else if entry.Rate == timesheet.RateDouble {
		// The stored wage is the resolved one. Recover the base rate so
		// derive does not double it a second time.
		entry.RatePerHour = entry.RatePerHour / 2
	}
	if req.Invoiced != nil {
		entry.Invoiced = *req.Invoiced
	}
	entry.LastModifiedBy = &actorID

	clientRate, locationRate, err := s.rates(ctx, entry.LocationID, entry.ClientID)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}

	isPublicHoliday := entry.Rate == timesheet.RateDouble && !isWeekend(entry.Date)
	if req.IsPublicHoliday != nil {
		isPublicHoliday = *req.IsPublicHoliday
	}
	if err := derive(&entry, isPublicHoliday, clientRate, locationRate); err != nil {
		return timesheet.EntryResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.repo.Update(txCtx, entry); err != nil {
			return err
		}
		if err := s.repo.CreateLog(txCtx, timesheet.LogEntry{
			TimesheetID: entry.ID,
			UserID:      actorID,
			Action:      timesheet.LogActionUpdate,
			Detail:      fmt.Sprintf("shift %d updated", entry.ID),
		}); err != nil {
			return err
		}
		return s.notifications.ResetShiftJob(txCtx, entry.EmployeeID, entry.ID, notification.ActionUpdate)
	})
	if err != nil {
		return timesheet.EntryResponse{}, err
	}

	updated, err := s.repo.GetByID(ctx, entry.ID)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}
	return timesheet.ToEntryResponse(updated), nil
}

func isWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// DeleteEntry implements timesheet.Service. The employee is notified of the
// cancellation before the shift's pending jobs are dropped.
func (s *TimesheetServiceImpl) DeleteEntry(ctx context.Context, id int64, actorID int64) error {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.notifications.DropShiftJobs(txCtx, entry.ID); err != nil {
			return err
		}
		if err := s.repo.CreateLog(txCtx, timesheet.LogEntry{
			TimesheetID: entry.ID,
			UserID:      actorID,
			Action:      timesheet.LogActionDelete,
			Detail:      fmt.Sprintf("shift on %s removed", entry.Date.Format("2006-01-02")),
		}); err != nil {
			return err
		}
		return s.repo.Delete(txCtx, id)
	})
}

// UpdateInvoices implements timesheet.Service.
func (s *TimesheetServiceImpl) UpdateInvoices(ctx context.Context, req timesheet.InvoiceUpdateRequest, actorID int64) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	var updated []int64
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		ids, err := s.repo.SetInvoiced(txCtx, req.IDs, req.Invoiced)
		if err != nil {
			return err
		}
		updated = ids

		for _, id := range ids {
			if err := s.repo.CreateLog(txCtx, timesheet.LogEntry{
				TimesheetID: id,
				UserID:      actorID,
				Action:      timesheet.LogActionInvoice,
				Detail:      fmt.Sprintf("invoiced set to %t", req.Invoiced),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(updated), nil
}

// ListEntries implements timesheet.Service.
func (s *TimesheetServiceImpl) ListEntries(ctx context.Context, filter timesheet.ListFilter) ([]timesheet.EntryResponse, int64, error) {
	filter.Normalize()

	entries, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]timesheet.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, timesheet.ToEntryResponse(e))
	}
	return responses, total, nil
}

// ListLogs implements timesheet.Service.
func (s *TimesheetServiceImpl) ListLogs(ctx context.Context, page, pageSize int) ([]timesheet.LogResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 20
	}

	logs, total, err := s.repo.ListLogs(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]timesheet.LogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, timesheet.ToLogResponse(l))
	}
	return responses, total, nil
}

// GetShift implements timesheet.Service.
func (s *TimesheetServiceImpl) GetShift(ctx context.Context, id int64) (timesheet.ShiftDetailResponse, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return timesheet.ShiftDetailResponse{}, err
	}

	logs, err := s.repo.LogsByTimesheetID(ctx, id)
	if err != nil {
		return timesheet.ShiftDetailResponse{}, err
	}

	resp := timesheet.ShiftDetailResponse{
		Entry: timesheet.ToEntryResponse(entry),
		Logs:  make([]timesheet.LogResponse, 0, len(logs)),
	}
	for _, l := range logs {
		resp.Logs = append(resp.Logs, timesheet.ToLogResponse(l))
	}
	return resp, nil
}

// BackfillNotifications implements timesheet.Service.
func (s *TimesheetServiceImpl) BackfillNotifications(ctx context.Context, req timesheet.BackfillNotificationsRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	from, err := time.Parse("2006-01-02", req.DateFrom)
	if err != nil {
		return 0, fmt.Errorf("failed to parse date_from: %w", err)
	}
	to, err := time.Parse("2006-01-02", req.DateTo)
	if err != nil {
		return 0, fmt.Errorf("failed to parse date_to: %w", err)
	}

	entries, err := s.repo.EntryIDsWithoutJobs(ctx, from, to)
	if err != nil {
		return 0, err
	}

	for _, e := range entries {
		if err := s.notifications.EnqueueShiftJob(ctx, e.EmployeeID, e.ID, notification.ActionCreate); err != nil {
			return 0, err
		}
	}
	return len(entries), nil
}
