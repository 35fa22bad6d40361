package notification

import "time"

// Job statuses
const (
	StatusPending = 0
	StatusSent    = 1
)

// WhatsApp job actions
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Mail job kinds
const (
	MailKindEmployee = "employee"
	MailKindClient   = "client"
)

// WhatsAppJob is one pending or sent WhatsApp notification for a shift
// change. Jobs are swept by the scheduler; status flips to sent only after
// a successful delivery, so delivery is at-least-once.
type WhatsAppJob struct {
	ID          int64
	EmployeeID  int64
	TimesheetID int64
	Status      int
	ActionType  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PendingWhatsAppJob is a job joined with the context the message template
// needs. Mobile is nil when the employee has no number on file.
type PendingWhatsAppJob struct {
	WhatsAppJob
	EmployeeName string
	Mobile       *string
	Date         time.Time
	StartTime    string
	EndTime      string
	LocationName string
}

// MailJob is one queued report mail. Filter holds the serialized report
// filter so the sweep can re-render the report at send time.
type MailJob struct {
	ID        int64
	Kind      string
	Filter    []byte
	CreatedBy int64
	Status    int
	CreatedAt time.Time
}

// PushJob is one queued FCM notification.
type PushJob struct {
	ID        int64
	UserID    int64
	Title     string
	Body      string
	Data      map[string]string
	Status    int
	CreatedAt time.Time
}

// PushSetting is one registered device with its per-category toggles.
type PushSetting struct {
	ID               int64
	UserID           int64
	DeviceToken      string
	MessageEnabled   bool
	DashboardEnabled bool
	NewsfeedEnabled  bool
	UpdatedAt        time.Time
}

type Feedback struct {
	ID        int64
	UserID    int64
	Rating    int
	Message   string
	CreatedAt time.Time
}
