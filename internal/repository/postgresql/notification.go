package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shiftops/workforce-backend-go/internal/domain/notification"
	"github.com/shiftops/workforce-backend-go/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// ========================================
// WHATSAPP JOBS
// ========================================

// CreateWhatsAppJob implements notification.Repository.
func (r *notificationRepository) CreateWhatsAppJob(ctx context.Context, job notification.WhatsAppJob) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO whatsapp_notifications (employee_id, timesheet_id, action, status)
		 VALUES ($1, $2, $3, $4)`,
		job.EmployeeID, job.TimesheetID, job.ActionType, notification.StatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to create whatsapp job: %w", err)
	}
	return nil
}

// CreateWhatsAppJobs implements notification.Repository.
func (r *notificationRepository) CreateWhatsAppJobs(ctx context.Context, jobs []notification.WhatsAppJob) (int, error) {
	created := 0
	for _, job := range jobs {
		if err := r.CreateWhatsAppJob(ctx, job); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// PendingWhatsAppJobs implements notification.Repository. Rows are joined with
// the shift and employee so the sweep can fill the message template without
// further queries.
func (r *notificationRepository) PendingWhatsAppJobs(ctx context.Context, limit int) ([]notification.PendingWhatsAppJob, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT w.id, w.employee_id, w.timesheet_id, w.action,
		        u.username, u.mobile,
		        t.date, t.start_time, t.end_time, l.name
		 FROM whatsapp_notifications w
		 JOIN users u ON u.id = w.employee_id
		 JOIN timesheets t ON t.id = w.timesheet_id
		 JOIN locations l ON l.id = t.location_id
		 WHERE w.status = $1
		 ORDER BY w.id
		 LIMIT $2`,
		notification.StatusPending, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending whatsapp jobs: %w", err)
	}
	defer rows.Close()

	var jobs []notification.PendingWhatsAppJob
	for rows.Next() {
		var j notification.PendingWhatsAppJob
		err := rows.Scan(
			&j.ID, &j.EmployeeID, &j.TimesheetID, &j.ActionType,
			&j.EmployeeName, &j.Mobile,
			&j.Date, &j.StartTime, &j.EndTime, &j.LocationName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan whatsapp job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// MarkWhatsAppJobSent implements notification.Repository.
func (r *notificationRepository) MarkWhatsAppJobSent(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE whatsapp_notifications SET status = $1, sent_at = NOW() WHERE id = $2`,
		notification.StatusSent, id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark whatsapp job sent: %w", err)
	}
	return nil
}

// ResetWhatsAppJob implements notification.Repository. An already-sent job for
// the same shift is flipped back to pending with the new action so the sweep
// notifies again instead of inserting a duplicate row.
func (r *notificationRepository) ResetWhatsAppJob(ctx context.Context, employeeID, timesheetID int64, action string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE whatsapp_notifications SET status = $1, action = $2, sent_at = NULL
		 WHERE employee_id = $3 AND timesheet_id = $4`,
		notification.StatusPending, action, employeeID, timesheetID,
	)
	if err != nil {
		return fmt.Errorf("failed to reset whatsapp job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.CreateWhatsAppJob(ctx, notification.WhatsAppJob{
			EmployeeID: employeeID, TimesheetID: timesheetID, ActionType: action,
		})
	}
	return nil
}

// DeleteWhatsAppJobs implements notification.Repository.
func (r *notificationRepository) DeleteWhatsAppJobs(ctx context.Context, timesheetID int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM whatsapp_notifications WHERE timesheet_id = $1`, timesheetID)
	if err != nil {
		return fmt.Errorf("failed to delete whatsapp jobs: %w", err)
	}
	return nil
}

// ========================================
// MAIL JOBS
// ========================================

// CreateMailJob implements notification.Repository.
func (r *notificationRepository) CreateMailJob(ctx context.Context, job notification.MailJob) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO mail_jobs (kind, filter, created_by, status) VALUES ($1, $2, $3, $4)`,
		job.Kind, job.Filter, job.CreatedBy, notification.StatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to create mail job: %w", err)
	}
	return nil
}

// PendingMailJobs implements notification.Repository.
func (r *notificationRepository) PendingMailJobs(ctx context.Context, limit int) ([]notification.MailJob, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, kind, filter, created_by, status, created_at
		 FROM mail_jobs
		 WHERE status = $1
		 ORDER BY id
		 LIMIT $2`,
		notification.StatusPending, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending mail jobs: %w", err)
	}
	defer rows.Close()

	var jobs []notification.MailJob
	for rows.Next() {
		var j notification.MailJob
		if err := rows.Scan(&j.ID, &j.Kind, &j.Filter, &j.CreatedBy, &j.Status, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mail job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// MarkMailJobSent implements notification.Repository.
func (r *notificationRepository) MarkMailJobSent(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE mail_jobs SET status = $1, sent_at = NOW() WHERE id = $2`,
		notification.StatusSent, id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark mail job sent: %w", err)
	}
	return nil
}

// ========================================
// PUSH JOBS
// ========================================

// CreatePushJobs implements notification.Repository.
func (r *notificationRepository) CreatePushJobs(ctx context.Context, jobs []notification.PushJob) error {
	q := GetQuerier(ctx, r.db)

	for _, job := range jobs {
		data, err := json.Marshal(job.Data)
		if err != nil {
			return fmt.Errorf("failed to encode push data: %w", err)
		}
		_, err = q.Exec(ctx,
			`INSERT INTO push_jobs (user_id, title, body, data, status) VALUES ($1, $2, $3, $4, $5)`,
			job.UserID, job.Title, job.Body, data, notification.StatusPending,
		)
		if err != nil {
			return fmt.Errorf("failed to create push job: %w", err)
		}
	}
	return nil
}

// PendingPushJobs implements notification.Repository.
func (r *notificationRepository) PendingPushJobs(ctx context.Context, limit int) ([]notification.PushJob, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, user_id, title, body, data, status, created_at
		 FROM push_jobs
		 WHERE status = $1
		 ORDER BY id
		 LIMIT $2`,
		notification.StatusPending, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending push jobs: %w", err)
	}
	defer rows.Close()

	var jobs []notification.PushJob
	for rows.Next() {
		var (
			j    notification.PushJob
			data []byte
		)
		if err := rows.Scan(&j.ID, &j.UserID, &j.Title, &j.Body, &data, &j.Status, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan push job: %w", err)
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &j.Data); err != nil {
				return nil, fmt.Errorf("failed to decode push data: %w", err)
			}
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// MarkPushJobSent implements notification.Repository.
func (r *notificationRepository) MarkPushJobSent(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE push_jobs SET status = $1, sent_at = NOW() WHERE id = $2`,
		notification.StatusSent, id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark push job sent: %w", err)
	}
	return nil
}

// ========================================
// PUSH SETTINGS
// ========================================

// UpsertPushSetting implements notification.Repository. One row per user and
// device token.
func (r *notificationRepository) UpsertPushSetting(ctx context.Context, s notification.PushSetting) (notification.PushSetting, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx,
		`INSERT INTO push_settings (user_id, device_token, message_enabled, dashboard_enabled, newsfeed_enabled)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, device_token) DO UPDATE SET
			message_enabled = EXCLUDED.message_enabled,
			dashboard_enabled = EXCLUDED.dashboard_enabled,
			newsfeed_enabled = EXCLUDED.newsfeed_enabled,
			updated_at = NOW()
		 RETURNING id, updated_at`,
		s.UserID, s.DeviceToken, s.MessageEnabled, s.DashboardEnabled, s.NewsfeedEnabled,
	).Scan(&s.ID, &s.UpdatedAt)
	if err != nil {
		return notification.PushSetting{}, fmt.Errorf("failed to upsert push setting: %w", err)
	}
	return s, nil
}

// PushSettingsForUser implements notification.Repository.
func (r *notificationRepository) PushSettingsForUser(ctx context.Context, userID int64) ([]notification.PushSetting, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, user_id, device_token, message_enabled, dashboard_enabled, newsfeed_enabled
		 FROM push_settings
		 WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list push settings: %w", err)
	}
	defer rows.Close()

	var settings []notification.PushSetting
	for rows.Next() {
		var s notification.PushSetting
		err := rows.Scan(&s.ID, &s.UserID, &s.DeviceToken, &s.MessageEnabled, &s.DashboardEnabled, &s.NewsfeedEnabled)
		if err != nil {
			return nil, fmt.Errorf("failed to scan push setting: %w", err)
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// MessageEnabledTokens implements notification.Repository. It returns the
// device tokens with message notifications on, keyed by user.
func (r *notificationRepository) MessageEnabledTokens(ctx context.Context, userIDs []int64) (map[int64][]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT user_id, device_token
		 FROM push_settings
		 WHERE user_id = ANY($1) AND message_enabled = TRUE`,
		userIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}
	defer rows.Close()

	tokens := make(map[int64][]string)
	for rows.Next() {
		var (
			userID int64
			token  string
		)
		if err := rows.Scan(&userID, &token); err != nil {
			return nil, fmt.Errorf("failed to scan device token: %w", err)
		}
		tokens[userID] = append(tokens[userID], token)
	}
	return tokens, rows.Err()
}

// ========================================
// FEEDBACK
// ========================================

// CreateFeedback implements notification.Repository.
func (r *notificationRepository) CreateFeedback(ctx context.Context, f notification.Feedback) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO feedback (user_id, rating, message) VALUES ($1, $2, $3)`,
		f.UserID, f.Rating, f.Message,
	)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}
