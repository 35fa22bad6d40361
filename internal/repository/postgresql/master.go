package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftops/workforce-backend-go/internal/domain/master"
	"github.com/shiftops/workforce-backend-go/internal/pkg/database"
)

type masterRepository struct {
	db *database.DB
}

func NewMasterRepository(db *database.DB) master.Repository {
	return &masterRepository{db: db}
}

// masterErr maps constraint violations onto domain errors.
func masterErr(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return master.ErrDuplicateName
		case "23503":
			return master.ErrInUse
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ========================================
// LOCATIONS
// ========================================

func (r *masterRepository) CreateLocation(ctx context.Context, l master.Location) (master.Location, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx,
		`INSERT INTO locations (name, rate) VALUES ($1, $2) RETURNING id, created_at`,
		l.Name, l.Rate,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return master.Location{}, masterErr(err, "failed to create location")
	}

	return l, nil
}

func (r *masterRepository) ListLocations(ctx context.Context) ([]master.Location, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, rate, created_at FROM locations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var locations []master.Location
	for rows.Next() {
		var l master.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Rate, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *masterRepository) GetLocation(ctx context.Context, id int64) (master.Location, error) {
	q := GetQuerier(ctx, r.db)

	var l master.Location
	err := q.QueryRow(ctx, `SELECT id, name, rate, created_at FROM locations WHERE id = $1`, id).
		Scan(&l.ID, &l.Name, &l.Rate, &l.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return master.Location{}, master.ErrNotFound
		}
		return master.Location{}, fmt.Errorf("failed to get location: %w", err)
	}

	return l, nil
}

func (r *masterRepository) UpdateLocation(ctx context.Context, l master.Location) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE locations SET name = $1, rate = $2 WHERE id = $3`, l.Name, l.Rate, l.ID)
	if err != nil {
		return masterErr(err, "failed to update location")
	}
	if tag.RowsAffected() == 0 {
		return master.ErrNotFound
	}
	return nil
}

func (r *masterRepository) DeleteLocation(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return masterErr(err, "failed to delete location")
	}
	if tag.RowsAffected() == 0 {
		return master.ErrNotFound
	}
	return nil
}

// ========================================
// EVENTS
// ========================================

func (r *masterRepository) CreateEvent(ctx context.Context, e master.Event) (master.Event, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx,
		`INSERT INTO events (name, event_color) VALUES ($1, $2) RETURNING id, created_at`,
		e.Name, e.Color,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return master.Event{}, masterErr(err, "failed to create event")
	}

	return e, nil
}

func (r *masterRepository) ListEvents(ctx context.Context) ([]master.Event, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, event_color, created_at FROM events ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []master.Event
	for rows.Next() {
		var e master.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Color, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *masterRepository) UpdateEvent(ctx context.Context, e master.Event) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE events SET name = $1, event_color = $2 WHERE id = $3`, e.Name, e.Color, e.ID)
	if err != nil {
		return masterErr(err, "failed to update event")
	}
	if tag.RowsAffected() == 0 {
		return master.ErrNotFound
	}
	return nil
}

func (r *masterRepository) DeleteEvent(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return masterErr(err, "failed to delete event")
	}
	if tag.RowsAffected() == 0 {
		return master.ErrNotFound
	}
	return nil
}

// ========================================
// TASKS
// ========================================

func (r *masterRepository) CreateTask(ctx context.Context, t master.Task) (master.Task, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx,
		`INSERT INTO tasks (name) VALUES ($1) RETURNING id, created_at`,
		t.Name,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return master.Task{}, masterErr(err, "failed to create task")
	}

	return t, nil
}

func (r *masterRepository) ListTasks(ctx context.Context) ([]master.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, created_at FROM tasks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []master.Task
	for rows.Next() {
		var t master.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *masterRepository) UpdateTask(ctx context.Context, t master.Task) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE tasks SET name = $1 WHERE id = $2`, t.Name, t.ID)
	if err != nil {
		return masterErr(err, "failed to update task")
	}
	if tag.RowsAffected() == 0 {
		return master.ErrNotFound
	}
	return nil
}

func (r *masterRepository) DeleteTask(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return masterErr(err, "failed to delete task")
	}
	if tag.RowsAffected() == 0 {
		return master.ErrNotFound
	}
	return nil
}

// ========================================
// CLIENTS
// ========================================

func (r *masterRepository) CreateClient(ctx context.Context, c master.Client) (master.Client, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx,
		`INSERT INTO clients (name, email, rate) VALUES ($1, $2, $3) RETURNING id, created_at`,
		c.Name, c.Email, c.Rate,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return master.Client{}, masterErr(err, "failed to create client")
	}

	return c, nil
}

func (r *masterRepository) ListClients(ctx context.Context) ([]master.Client, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, email, rate, created_at FROM clients ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []master.Client
	for rows.Next() {
		var c master.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Rate, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *masterRepository) GetClient(ctx context.Context, id int64) (master.Client, error) {
	q := GetQuerier(ctx, r.db)

	var c master.Client
	err := q.QueryRow(ctx, `SELECT id, name, email, rate, created_at FROM clients WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Email, &c.Rate, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return master.Client{}, master.ErrNotFound
		}
		return master.Client{}, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

func (r *masterRepository) UpdateClient(ctx context.Context, c master.Client) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE clients SET name = $1, email = $2, rate = $3 WHERE id = $4`,
		c.Name, c.Email, c.Rate, c.ID)
	if err != nil {
		return masterErr(err, "failed to update client")
	}
	if tag.RowsAffected() == 0 {
		return master.ErrNotFound
	}
	return nil
}

func (r *masterRepository) DeleteClient(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return masterErr(err, "failed to delete client")
	}
	if tag.RowsAffected() == 0 {
		return master.ErrNotFound
	}
	return nil
}

// ========================================
// QUALIFICATIONS / SKILLS / LANGUAGES
// ========================================

var attributeKindTables = map[string]string{
	"qualification": "qualifications",
	"skill":         "skills",
	"language":      "languages",
}

func (r *masterRepository) CreateAttribute(ctx context.Context, a master.Attribute) (master.Attribute, error) {
	table, ok := attributeKindTables[a.Kind]
	if !ok {
		return master.Attribute{}, fmt.Errorf("%w: %q", master.ErrUnknownKind, a.Kind)
	}
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx,
		fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1) RETURNING id`, table),
		a.Name,
	).Scan(&a.ID)
	if err != nil {
		return master.Attribute{}, masterErr(err, "failed to create "+a.Kind)
	}

	return a, nil
}

func (r *masterRepository) ListAttributes(ctx context.Context, kind string) ([]master.Attribute, error) {
	table, ok := attributeKindTables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", master.ErrUnknownKind, kind)
	}
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, fmt.Sprintf(`SELECT id, name FROM %s ORDER BY name`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	defer rows.Close()

	var attrs []master.Attribute
	for rows.Next() {
		a := master.Attribute{Kind: kind}
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", kind, err)
		}
		attrs = append(attrs, a)
	}
	return attrs, rows.Err()
}

func (r *masterRepository) UpdateAttribute(ctx context.Context, a master.Attribute) error {
	table, ok := attributeKindTables[a.Kind]
	if !ok {
		return fmt.Errorf("%w: %q", master.ErrUnknownKind, a.Kind)
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, fmt.Sprintf(`UPDATE %s SET name = $1 WHERE id = $2`, table), a.Name, a.ID)
	if err != nil {
		return masterErr(err, "failed to update "+a.Kind)
	}
	if tag.RowsAffected() == 0 {
		return master.ErrNotFound
	}
	return nil
}

func (r *masterRepository) DeleteAttribute(ctx context.Context, kind string, id int64) error {
	table, ok := attributeKindTables[kind]
	if !ok {
		return fmt.Errorf("%w: %q", master.ErrUnknownKind, kind)
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return masterErr(err, "failed to delete "+kind)
	}
	if tag.RowsAffected() == 0 {
		return master.ErrNotFound
	}
	return nil
}

// ========================================
// REPORT TEMPLATES
// ========================================

func (r *masterRepository) CreateTemplate(ctx context.Context, t master.Template) (master.Template, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx,
		`INSERT INTO templates (title, type, columns) VALUES ($1, $2, $3) RETURNING id, created_at`,
		t.Title, t.Type, t.Columns,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return master.Template{}, masterErr(err, "failed to create template")
	}

	return t, nil
}

func (r *masterRepository) ListTemplates(ctx context.Context) ([]master.Template, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, title, type, columns, created_at FROM templates ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []master.Template
	for rows.Next() {
		var t master.Template
		if err := rows.Scan(&t.ID, &t.Title, &t.Type, &t.Columns, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *masterRepository) GetTemplate(ctx context.Context, id int64) (master.Template, error) {
	q := GetQuerier(ctx, r.db)

	var t master.Template
	err := q.QueryRow(ctx, `SELECT id, title, type, columns, created_at FROM templates WHERE id = $1`, id).
		Scan(&t.ID, &t.Title, &t.Type, &t.Columns, &t.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return master.Template{}, master.ErrNotFound
		}
		return master.Template{}, fmt.Errorf("failed to get template: %w", err)
	}

	return t, nil
}

func (r *masterRepository) UpdateTemplate(ctx context.Context, t master.Template) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE templates SET title = $1, type = $2, columns = $3 WHERE id = $4`,
		t.Title, t.Type, t.Columns, t.ID)
	if err != nil {
		return masterErr(err, "failed to update template")
	}
	if tag.RowsAffected() == 0 {
		return master.ErrNotFound
	}
	return nil
}

func (r *masterRepository) DeleteTemplate(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		return masterErr(err, "failed to delete template")
	}
	if tag.RowsAffected() == 0 {
		return master.ErrNotFound
	}
	return nil
}
