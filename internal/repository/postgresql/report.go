package postgresql

import (
	"context"
	"fmt"

	"github.com/shiftops/workforce-backend-go/internal/domain/report"
	"github.com/shiftops/workforce-backend-go/internal/domain/timesheet"
	"github.com/shiftops/workforce-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepository{db: db}
}

// Rows implements report.Repository. The scan is never paginated; the tree
// builders group in memory and totals must cover the whole filtered set.
func (r *reportRepository) Rows(ctx context.Context, filter report.Filter) ([]timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

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
		WHERE ` + baseWhere + `
		ORDER BY u.username, t.rate, t.year, t.date, t.id
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query report rows: %w", err)
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
			&e.Username, &e.EmployeeName, &e.Mobile,
			&e.LocationName, &e.EventName, &e.TaskName,
			&e.ClientName, &e.ClientEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}

	return entries, nil
}
