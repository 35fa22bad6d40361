package settings

import (
	"context"
	"io"
	"mime/multipart"
)

// Service defines business logic for app settings and file uploads.
type Service interface {
	Get(ctx context.Context) (Response, error)

	Update(ctx context.Context, req UpdateRequest) (Response, error)

	// UploadAttachment stores the file under a generated name and records
	// it.
	UploadAttachment(ctx context.Context, header *multipart.FileHeader, uploadedBy int64) (AttachmentResponse, error)

	// OpenAttachment resolves an attachment for static serving.
	OpenAttachment(ctx context.Context, id int64) (Attachment, io.ReadCloser, error)
}
