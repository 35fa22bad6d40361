package postgresql

import (
	"context"
	"fmt"

	"github.com/shiftops/workforce-backend-go/internal/domain/roster"
	"github.com/shiftops/workforce-backend-go/internal/pkg/database"
)

type rosterRepository struct {
	db *database.DB
}

func NewRosterRepository(db *database.DB) roster.Repository {
	return &rosterRepository{db: db}
}

// List implements roster.Repository.
func (r *rosterRepository) List(ctx context.Context, filter roster.Filter) ([]roster.Row, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Date != nil {
		baseWhere += fmt.Sprintf(" AND t.date = $%d", argIdx)
		args = append(args, *filter.Date)
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
	if filter.ClientID != nil {
		baseWhere += fmt.Sprintf(" AND t.client_id = $%d", argIdx)
		args = append(args, *filter.ClientID)
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

	countQuery := `SELECT COUNT(*) FROM timesheets t WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count roster rows: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT
			t.id, t.employee_id, u.username, to_char(t.date, 'YYYY-MM-DD'),
			t.start_time, t.end_time, t.hours,
			l.name AS location_name, e.name AS event_name, k.name AS task_name,
			COALESCE(c.name, '') AS client_name
		FROM timesheets t
		JOIN users u ON u.id = t.employee_id
		JOIN locations l ON l.id = t.location_id
		JOIN events e ON e.id = t.event_id
		JOIN tasks k ON k.id = t.task_id
		LEFT JOIN clients c ON c.id = t.client_id
		WHERE %s
		ORDER BY t.date, t.start_time, u.username
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list roster rows: %w", err)
	}
	defer rows.Close()

	var result []roster.Row
	for rows.Next() {
		var row roster.Row
		if err := rows.Scan(
			&row.ID, &row.EmployeeID, &row.Username, &row.Date,
			&row.StartTime, &row.EndTime, &row.Hours,
			&row.LocationName, &row.EventName, &row.TaskName,
			&row.ClientName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan roster row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate roster rows: %w", err)
	}

	return result, total, nil
}
