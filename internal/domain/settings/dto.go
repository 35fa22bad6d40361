package settings

import (
	"mime/multipart"

	"github.com/shiftops/workforce-backend-go/internal/pkg/validator"
)

// UpdateRequest is a partial settings update. Logo files arrive as
// multipart uploads alongside the form fields.
type UpdateRequest struct {
	ID             int64    `json:"-"`
	AppTitle       *string  `json:"app_title"`
	PrimaryColor   *string  `json:"primary_color"`
	SecondaryColor *string  `json:"secondary_color"`
	MaxWageRate    *float64 `json:"max_wage_rate"`
	PDFFooter      *string  `json:"pdf_footer"`
	WhatsAppToken  *string  `json:"whatsapp_token"`

	Logo    *multipart.FileHeader `json:"-"`
	PDFLogo *multipart.FileHeader `json:"-"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MaxWageRate != nil && *r.MaxWageRate <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_wage_rate",
			Message: "max_wage_rate must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID             int64   `json:"id"`
	AppTitle       string  `json:"app_title"`
	PrimaryColor   string  `json:"primary_color"`
	SecondaryColor string  `json:"secondary_color"`
	MaxWageRate    float64 `json:"max_wage_rate"`
	LogoURL        *string `json:"logo_url"`
	PDFLogoURL     *string `json:"pdf_logo_url"`
	PDFFooter      *string `json:"pdf_footer"`
	// The WhatsApp token is write-only; it never leaves the server.
}

type AttachmentResponse struct {
	ID       int64  `json:"id"`
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}
