package notification

import (
	"context"
)

// Repository defines data access for the notification job tables and push
// settings.
type Repository interface {
	// WhatsApp jobs
	CreateWhatsAppJob(ctx context.Context, job WhatsAppJob) error
	CreateWhatsAppJobs(ctx context.Context, jobs []WhatsAppJob) (int, error)

	// PendingWhatsAppJobs returns pending jobs joined with shift context,
	// oldest first, capped at limit.
	PendingWhatsAppJobs(ctx context.Context, limit int) ([]PendingWhatsAppJob, error)

	MarkWhatsAppJobSent(ctx context.Context, id int64) error

	// ResetWhatsAppJob flips the job for a timesheet entry back to pending
	// with the given action, creating it when none exists.
	ResetWhatsAppJob(ctx context.Context, employeeID, timesheetID int64, action string) error

	// DeleteWhatsAppJobs removes jobs tied to a deleted timesheet entry.
	DeleteWhatsAppJobs(ctx context.Context, timesheetID int64) error

	// Mail jobs
	CreateMailJob(ctx context.Context, job MailJob) error
	PendingMailJobs(ctx context.Context, limit int) ([]MailJob, error)
	MarkMailJobSent(ctx context.Context, id int64) error

	// Push jobs
	CreatePushJobs(ctx context.Context, jobs []PushJob) error
	PendingPushJobs(ctx context.Context, limit int) ([]PushJob, error)
	MarkPushJobSent(ctx context.Context, id int64) error

	// Push settings
	UpsertPushSetting(ctx context.Context, s PushSetting) (PushSetting, error)
	PushSettingsForUser(ctx context.Context, userID int64) ([]PushSetting, error)

	// MessageEnabledTokens returns device tokens of the given users that
	// have the message toggle on.
	MessageEnabledTokens(ctx context.Context, userIDs []int64) (map[int64][]string, error)

	CreateFeedback(ctx context.Context, f Feedback) error
}
