package settings

import "time"

// AppSettings is the single-row application configuration editable from
// the admin panel.
type AppSettings struct {
	ID             int64
	AppTitle       string
	PrimaryColor   string
	SecondaryColor string
	MaxWageRate    float64
	LogoPath       *string
	PDFLogoPath    *string
	PDFFooter      *string
	WhatsAppToken  *string
	UpdatedAt      time.Time
}

// Attachment is one uploaded file stored under a generated name.
type Attachment struct {
	ID          int64
	FileName    string
	StoredPath  string
	ContentType string
	SizeBytes   int64
	UploadedBy  int64
	CreatedAt   time.Time
}
