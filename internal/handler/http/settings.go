package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/shiftops/workforce-backend-go/internal/domain/settings"
	"github.com/shiftops/workforce-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UploadAttachment(w http.ResponseWriter, r *http.Request)
	ServeAttachment(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.Service
}

func NewSettingsHandler(settingsService settings.Service) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
	}
}

// Get handles GET /settings. The response never includes the WhatsApp
// token, so this is safe to expose to the login page.
func (h *settingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update handles PUT /settings. Fields arrive as a multipart form so the
// logo uploads can ride along.
func (h *settingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	var req settings.UpdateRequest
	req.AppTitle = formString(r, "app_title")
	req.PrimaryColor = formString(r, "primary_color")
	req.SecondaryColor = formString(r, "secondary_color")
	req.PDFFooter = formString(r, "pdf_footer")
	req.WhatsAppToken = formString(r, "whatsapp_token")

	if raw := r.FormValue("max_wage_rate"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.BadRequest(w, "max_wage_rate must be a number", nil)
			return
		}
		req.MaxWageRate = &rate
	}

	if files := r.MultipartForm.File["logo"]; len(files) > 0 {
		req.Logo = files[0]
	}
	if files := r.MultipartForm.File["pdf_logo"]; len(files) > 0 {
		req.PDFLogo = files[0]
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.settingsService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UploadAttachment handles POST /attachments
func (h *settingsHandlerImpl) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		response.BadRequest(w, "Missing file upload", nil)
		return
	}

	callerID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.settingsService.UploadAttachment(r.Context(), files[0], callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "File uploaded", result)
}

// ServeAttachment handles GET /attachments/{id}
func (h *settingsHandlerImpl) ServeAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid attachment id", nil)
		return
	}

	attachment, reader, err := h.settingsService.OpenAttachment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", attachment.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", attachment.FileName))
	if attachment.SizeBytes > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(attachment.SizeBytes, 10))
	}
	io.Copy(w, reader)
}

// formString returns a pointer to a multipart form value, nil when the
// field is absent.
func formString(r *http.Request, key string) *string {
	vals, ok := r.MultipartForm.Value[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}
