package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftops/workforce-backend-go/internal/domain/timesheet"
	"github.com/shiftops/workforce-backend-go/internal/pkg/database"
)

type timesheetRepository struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.Repository {
	return &timesheetRepository{db: db}
}

const timesheetColumns = `
	t.id, t.employee_id, t.date, t.location_id, t.event_id, t.task_id, t.client_id,
	t.start_time, t.end_time, t.rate_per_hour, t.rate, t.hours, t.cost,
	t.year, t.month, t.iso_week, t.invoiced, t.created_by, t.last_modified_by,
	t.created_at, t.updated_at`

// Create implements timesheet.Repository. The partial unique index over the
// natural shift key turns a concurrent duplicate into inserted=false
// instead of a race.
func (r *timesheetRepository) Create(ctx context.Context, entry timesheet.Entry) (timesheet.Entry, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (
			employee_id, date, location_id, event_id, task_id, client_id,
			start_time, end_time, rate_per_hour, rate, hours, cost,
			year, month, iso_week, invoiced, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		)
		ON CONFLICT (employee_id, date, location_id, event_id, task_id, start_time, end_time, rate_per_hour)
		DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID,
		entry.Date,
		entry.LocationID,
		entry.EventID,
		entry.TaskID,
		entry.ClientID,
		entry.StartTime,
		entry.EndTime,
		entry.RatePerHour,
		entry.Rate,
		entry.Hours,
		entry.Cost,
		entry.Year,
		entry.Month,
		entry.ISOWeek,
		entry.Invoiced,
		entry.CreatedBy,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			// Conflict target hit, nothing inserted
			return timesheet.Entry{}, false, nil
		}
		return timesheet.Entry{}, false, fmt.Errorf("failed to create timesheet entry: %w", err)
	}

	return entry, true, nil
}

// Exists implements timesheet.Repository. The predicate mirrors the unique
// index behind Create.
func (r *timesheetRepository) Exists(ctx context.Context, entry timesheet.Entry) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM timesheets
			WHERE employee_id = $1 AND date = $2 AND location_id = $3
			  AND event_id = $4 AND task_id = $5 AND start_time = $6
			  AND end_time = $7 AND rate_per_hour = $8
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query,
		entry.EmployeeID,
		entry.Date,
		entry.LocationID,
		entry.EventID,
		entry.TaskID,
		entry.StartTime,
		entry.EndTime,
		entry.RatePerHour,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing timesheet entry: %w", err)
	}
	return exists, nil
}

func (r *timesheetRepository) GetByID(ctx context.Context, id int64) (timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + timesheetColumns + `,
			u.username, u.name, u.mobile,
			l.name AS location_name, e.name AS event_name, k.name AS task_name,
			c.name AS client_name, c.email AS client_email
		FROM timesheets t
		JOIN users u ON u.id = t.employee_id
		JOIN locations l ON l.id = t.location_id
		JOIN events e ON e.id = t.event_id
		JOIN tasks k ON k.id = t.task_id
		LEFT JOIN clients c ON c.id = t.client_id
		WHERE t.id = $1
	`

	var e timesheet.Entry
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.EmployeeID, &e.Date, &e.LocationID, &e.EventID, &e.TaskID, &e.ClientID,
		&e.StartTime, &e.EndTime, &e.RatePerHour, &e.Rate, &e.Hours, &e.Cost,
		&e.Year, &e.Month, &e.ISOWeek, &e.Invoiced, &e.CreatedBy, &e.LastModifiedBy,
		&e.CreatedAt, &e.UpdatedAt,
		&e.Username, &e.EmployeeName, &e.Mobile,
		&e.LocationName, &e.EventName, &e.TaskName,
		&e.ClientName, &e.ClientEmail,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.Entry{}, timesheet.ErrEntryNotFound
		}
		return timesheet.Entry{}, fmt.Errorf("failed to get timesheet entry: %w", err)
	}

	return e, nil
}

func (r *timesheetRepository) Update(ctx context.Context, entry timesheet.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets SET
			employee_id = $1, date = $2, location_id = $3, event_id = $4, task_id = $5,
			client_id = $6, start_time = $7, end_time = $8, rate_per_hour = $9, rate = $10,
			hours = $11, cost = $12, year = $13, month = $14, iso_week = $15,
			invoiced = $16, last_modified_by = $17, updated_at = NOW()
		WHERE id = $18
	`

	tag, err := q.Exec(ctx, query,
		entry.EmployeeID, entry.Date, entry.LocationID, entry.EventID, entry.TaskID,
		entry.ClientID, entry.StartTime, entry.EndTime, entry.RatePerHour, entry.Rate,
		entry.Hours, entry.Cost, entry.Year, entry.Month, entry.ISOWeek,
		entry.Invoiced, entry.LastModifiedBy, entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update timesheet entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrEntryNotFound
	}

	return nil
}

func (r *timesheetRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM timesheets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete timesheet entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrEntryNotFound
	}

	return nil
}

// List implements timesheet.Repository.
func (r *timesheetRepository) List(ctx context.Context, filter timesheet.ListFilter) ([]timesheet.Entry, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if len(filter.LocationIDs) > 0 {
		baseWhere += fmt.Sprintf(" AND t.location_id = ANY($%d)", argIdx)
		args = append(args, filter.LocationIDs)
		argIdx++
	}
	if filter.Invoiced != nil {
		baseWhere += fmt.Sprintf(" AND t.invoiced = $%d", argIdx)
		args = append(args, *filter.Invoiced)
		argIdx++
	}
	if filter.EmployeeID != nil {
		baseWhere += fmt.Sprintf(" AND t.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.UserID != nil {
		baseWhere += fmt.Sprintf(" AND t.employee_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.DateFrom != nil {
		baseWhere += fmt.Sprintf(" AND t.date >= $%d", argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		baseWhere += fmt.Sprintf(" AND t.date <= $%d", argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM timesheets t WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count timesheet entries: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT`+timesheetColumns+`,
			u.username, l.name AS location_name, e.name AS event_name,
			k.name AS task_name, c.name AS client_name
		FROM timesheets t
		JOIN users u ON u.id = t.employee_id
		JOIN locations l ON l.id = t.location_id
		JOIN events e ON e.id = t.event_id
		JOIN tasks k ON k.id = t.task_id
		LEFT JOIN clients c ON c.id = t.client_id
		WHERE %s
		ORDER BY t.id DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list timesheet entries: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.Entry
	for rows.Next() {
		var e timesheet.Entry
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.Date, &e.LocationID, &e.EventID, &e.TaskID, &e.ClientID,
			&e.StartTime, &e.EndTime, &e.RatePerHour, &e.Rate, &e.Hours, &e.Cost,
			&e.Year, &e.Month, &e.ISOWeek, &e.Invoiced, &e.CreatedBy, &e.LastModifiedBy,
			&e.CreatedAt, &e.UpdatedAt,
			&e.Username, &e.LocationName, &e.EventName, &e.TaskName, &e.ClientName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan timesheet entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate timesheet entries: %w", err)
	}

	return entries, total, nil
}

// SetInvoiced implements timesheet.Repository.
func (r *timesheetRepository) SetInvoiced(ctx context.Context, ids []int64, invoiced bool) ([]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		UPDATE timesheets
		SET invoiced = $1, updated_at = NOW()
		WHERE id = ANY($2)
		RETURNING id
	`, invoiced, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to update invoiced flag: %w", err)
	}
	defer rows.Close()

	var updated []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan updated id: %w", err)
		}
		updated = append(updated, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate updated ids: %w", err)
	}

	return updated, nil
}

// FilterOptions implements timesheet.Repository. The distinct option lists
// are scoped to rows matching the filter; years, months and templates are
// always global.
func (r *timesheetRepository) FilterOptions(ctx context.Context, filter timesheet.FilterOptionsFilter) (timesheet.FilterOptionsResponse, error) {
	q := GetQuerier(ctx, r.db)
	resp := timesheet.FilterOptionsResponse{}

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Year != nil {
		baseWhere += fmt.Sprintf(" AND t.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Month != nil {
		baseWhere += fmt.Sprintf(" AND t.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if len(filter.EmployeeIDs) > 0 {
		baseWhere += fmt.Sprintf(" AND t.employee_id = ANY($%d)", argIdx)
		args = append(args, filter.EmployeeIDs)
		argIdx++
	}
	if filter.LocationID != nil {
		baseWhere += fmt.Sprintf(" AND t.location_id = $%d", argIdx)
		args = append(args, *filter.LocationID)
		argIdx++
	}
	if filter.EventID != nil {
		baseWhere += fmt.Sprintf(" AND t.event_id = $%d", argIdx)
		args = append(args, *filter.EventID)
		argIdx++
	}
	if filter.TaskID != nil {
		baseWhere += fmt.Sprintf(" AND t.task_id = $%d", argIdx)
		args = append(args, *filter.TaskID)
		argIdx++
	}
	if filter.ClientID != nil {
		baseWhere += fmt.Sprintf(" AND t.client_id = $%d", argIdx)
		args = append(args, *filter.ClientID)
		argIdx++
	}
	if filter.Rate != nil {
		baseWhere += fmt.Sprintf(" AND t.rate = $%d", argIdx)
		args = append(args, *filter.Rate)
		argIdx++
	}
	if len(filter.RatesPerHour) > 0 {
		baseWhere += fmt.Sprintf(" AND t.rate_per_hour = ANY($%d)", argIdx)
		args = append(args, filter.RatesPerHour)
		argIdx++
	}

	scanOptions := func(query string, dest *[]timesheet.Option) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var o timesheet.Option
			if err := rows.Scan(&o.ID, &o.Name); err != nil {
				return err
			}
			*dest = append(*dest, o)
		}
		return rows.Err()
	}

	if err := scanOptions(`
		SELECT DISTINCT l.id, l.name FROM timesheets t
		JOIN locations l ON l.id = t.location_id
		WHERE `+baseWhere+` ORDER BY l.name`, &resp.Locations); err != nil {
		return resp, fmt.Errorf("failed to load location options: %w", err)
	}
	if err := scanOptions(`
		SELECT DISTINCT e.id, e.name FROM timesheets t
		JOIN events e ON e.id = t.event_id
		WHERE `+baseWhere+` ORDER BY e.name`, &resp.Events); err != nil {
		return resp, fmt.Errorf("failed to load event options: %w", err)
	}
	if err := scanOptions(`
		SELECT DISTINCT k.id, k.name FROM timesheets t
		JOIN tasks k ON k.id = t.task_id
		WHERE `+baseWhere+` ORDER BY k.name`, &resp.Tasks); err != nil {
		return resp, fmt.Errorf("failed to load task options: %w", err)
	}
	if err := scanOptions(`
		SELECT DISTINCT c.id, c.name FROM timesheets t
		JOIN clients c ON c.id = t.client_id
		WHERE `+baseWhere+` ORDER BY c.name`, &resp.Clients); err != nil {
		return resp, fmt.Errorf("failed to load client options: %w", err)
	}
	if err := scanOptions(`
		SELECT DISTINCT u.id, u.username FROM timesheets t
		JOIN users u ON u.id = t.employee_id
		WHERE `+baseWhere+` ORDER BY u.username`, &resp.Employees); err != nil {
		return resp, fmt.Errorf("failed to load employee options: %w", err)
	}

	rateRows, err := q.Query(ctx, `
		SELECT DISTINCT t.rate_per_hour FROM timesheets t
		WHERE `+baseWhere+` ORDER BY t.rate_per_hour`, args...)
	if err != nil {
		return resp, fmt.Errorf("failed to load rate options: %w", err)
	}
	defer rateRows.Close()
	for rateRows.Next() {
		var rate float64
		if err := rateRows.Scan(&rate); err != nil {
			return resp, fmt.Errorf("failed to scan rate option: %w", err)
		}
		resp.RatesPerHour = append(resp.RatesPerHour, rate)
	}
	if err := rateRows.Err(); err != nil {
		return resp, fmt.Errorf("failed to iterate rate options: %w", err)
	}

	yearRows, err := q.Query(ctx, `SELECT DISTINCT year FROM timesheets ORDER BY year DESC`)
	if err != nil {
		return resp, fmt.Errorf("failed to load year options: %w", err)
	}
	defer yearRows.Close()
	for yearRows.Next() {
		var year int
		if err := yearRows.Scan(&year); err != nil {
			return resp, fmt.Errorf("failed to scan year option: %w", err)
		}
		resp.Years = append(resp.Years, year)
	}
	if err := yearRows.Err(); err != nil {
		return resp, fmt.Errorf("failed to iterate year options: %w", err)
	}

	// Months in calendar order, not alphabetical
	resp.Months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

	tmplRows, err := q.Query(ctx, `SELECT id, title FROM templates ORDER BY title`)
	if err != nil {
		return resp, fmt.Errorf("failed to load template options: %w", err)
	}
	defer tmplRows.Close()
	for tmplRows.Next() {
		var o timesheet.Option
		if err := tmplRows.Scan(&o.ID, &o.Name); err != nil {
			return resp, fmt.Errorf("failed to scan template option: %w", err)
		}
		resp.Templates = append(resp.Templates, o)
	}
	if err := tmplRows.Err(); err != nil {
		return resp, fmt.Errorf("failed to iterate template options: %w", err)
	}

	return resp, nil
}

// EntryIDsWithoutJobs implements timesheet.Repository.
func (r *timesheetRepository) EntryIDsWithoutJobs(ctx context.Context, from, to time.Time) ([]timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT t.id, t.employee_id
		FROM timesheets t
		LEFT JOIN whatsapp_notifications w ON w.timesheet_id = t.id
		WHERE t.date BETWEEN $1 AND $2
		  AND w.id IS NULL
		ORDER BY t.id
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to find entries without jobs: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.Entry
	for rows.Next() {
		var e timesheet.Entry
		if err := rows.Scan(&e.ID, &e.EmployeeID); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}

// CreateLog implements timesheet.Repository.
func (r *timesheetRepository) CreateLog(ctx context.Context, log timesheet.LogEntry) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO timesheet_logs (timesheet_id, user_id, action, detail)
		VALUES ($1, $2, $3, $4)
	`, log.TimesheetID, log.UserID, log.Action, log.Detail)
	if err != nil {
		return fmt.Errorf("failed to create timesheet log: %w", err)
	}

	return nil
}

// ListLogs implements timesheet.Repository.
func (r *timesheetRepository) ListLogs(ctx context.Context, page, pageSize int) ([]timesheet.LogEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM timesheet_logs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count timesheet logs: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT g.id, g.timesheet_id, g.user_id, g.action, g.detail, g.created_at, u.username
		FROM timesheet_logs g
		LEFT JOIN users u ON u.id = g.user_id
		ORDER BY g.id DESC
		LIMIT $1 OFFSET $2
	`, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list timesheet logs: %w", err)
	}
	defer rows.Close()

	var logs []timesheet.LogEntry
	for rows.Next() {
		var l timesheet.LogEntry
		if err := rows.Scan(&l.ID, &l.TimesheetID, &l.UserID, &l.Action, &l.Detail, &l.CreatedAt, &l.Username); err != nil {
			return nil, 0, fmt.Errorf("failed to scan timesheet log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate timesheet logs: %w", err)
	}

	return logs, total, nil
}

// LogsByTimesheetID implements timesheet.Repository.
func (r *timesheetRepository) LogsByTimesheetID(ctx context.Context, timesheetID int64) ([]timesheet.LogEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT g.id, g.timesheet_id, g.user_id, g.action, g.detail, g.created_at, u.username
		FROM timesheet_logs g
		LEFT JOIN users u ON u.id = g.user_id
		WHERE g.timesheet_id = $1
		ORDER BY g.id DESC
	`, timesheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs for entry: %w", err)
	}
	defer rows.Close()

	var logs []timesheet.LogEntry
	for rows.Next() {
		var l timesheet.LogEntry
		if err := rows.Scan(&l.ID, &l.TimesheetID, &l.UserID, &l.Action, &l.Detail, &l.CreatedAt, &l.Username); err != nil {
			return nil, fmt.Errorf("failed to scan timesheet log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate logs: %w", err)
	}

	return logs, nil
}
