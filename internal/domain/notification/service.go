package notification

import "context"

// Service defines business logic for outbound notifications. Delivery
// failures are logged and retried on the next sweep; they never fail the
// request that queued the job.
type Service interface {
	// EnqueueShiftJob records a WhatsApp job for a shift change.
	EnqueueShiftJob(ctx context.Context, employeeID, timesheetID int64, action string) error

	ResetShiftJob(ctx context.Context, employeeID, timesheetID int64, action string) error

	DropShiftJobs(ctx context.Context, timesheetID int64) error

	// EnqueuePush queues one push job per recipient honoring the message
	// toggle. Honors a transaction on the context, so callers can tie the
	// enqueue to their own write.
	EnqueuePush(ctx context.Context, userIDs []int64, title, body string, data map[string]string) error

	// Sweeps, driven by the cron scheduler.
	ProcessWhatsAppJobs(ctx context.Context) error
	ProcessPushJobs(ctx context.Context) error
	ProcessMailJobs(ctx context.Context) error

	// Push settings and feedback
	SavePushSetting(ctx context.Context, userID int64, req PushSettingRequest) (PushSettingResponse, error)
	GetPushSettings(ctx context.Context, userID int64) ([]PushSettingResponse, error)
	SaveFeedback(ctx context.Context, userID int64, req FeedbackRequest) error
}
