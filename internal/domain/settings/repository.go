package settings

import "context"

// Repository defines data access for app settings and attachments.
type Repository interface {
	Get(ctx context.Context) (AppSettings, error)
	Update(ctx context.Context, s AppSettings) error

	// WhatsAppToken is a point read used by the notification sweep.
	WhatsAppToken(ctx context.Context) (string, error)

	CreateAttachment(ctx context.Context, a Attachment) (Attachment, error)
	GetAttachment(ctx context.Context, id int64) (Attachment, error)
}
