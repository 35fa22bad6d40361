package response

import (
	"errors"
	"net/http"

	"github.com/shiftops/workforce-backend-go/internal/domain/auth"
	"github.com/shiftops/workforce-backend-go/internal/domain/chat"
	"github.com/shiftops/workforce-backend-go/internal/domain/feed"
	"github.com/shiftops/workforce-backend-go/internal/domain/master"
	"github.com/shiftops/workforce-backend-go/internal/domain/report"
	"github.com/shiftops/workforce-backend-go/internal/domain/roster"
	"github.com/shiftops/workforce-backend-go/internal/domain/settings"
	"github.com/shiftops/workforce-backend-go/internal/domain/timesheet"
	"github.com/shiftops/workforce-backend-go/internal/domain/user"
	"github.com/shiftops/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInactiveAccount):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailTaken):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUsernameTaken):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrWeakPassword):
		BadRequest(w, err.Error(), nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Timesheet entry not found")
	case errors.Is(err, timesheet.ErrDuplicateEntry):
		Conflict(w, "An identical shift already exists")
	case errors.Is(err, timesheet.ErrNoEntriesInserted):
		Conflict(w, "All requested shifts already exist")
	case errors.Is(err, timesheet.ErrForbidden):
		Forbidden(w, "You are not allowed to access this entry")
	case errors.Is(err, timesheet.ErrImportInvalidFile):
		BadRequest(w, "Uploaded file is not a valid xlsx workbook", nil)
	case errors.Is(err, timesheet.ErrImportEmptyFile):
		BadRequest(w, "Uploaded workbook contains no data rows", nil)
	case errors.Is(err, timesheet.ErrImportDuplicates):
		BadRequest(w, err.Error(), nil)

	// Master data errors
	case errors.Is(err, master.ErrNotFound):
		NotFound(w, "Record not found")
	case errors.Is(err, master.ErrDuplicateName):
		Conflict(w, "A record with this name already exists")
	case errors.Is(err, master.ErrInvalidRate):
		BadRequest(w, "Rate must be normal or double", nil)
	case errors.Is(err, master.ErrInUse):
		Conflict(w, "Record is referenced by timesheet entries")
	case errors.Is(err, master.ErrUnknownKind):
		BadRequest(w, "Attribute kind must be qualification, skill or language", nil)

	// Report domain errors
	case errors.Is(err, report.ErrTemplateNotFound):
		NotFound(w, "Report template not found")
	case errors.Is(err, report.ErrNoRows):
		NotFound(w, "No rows match the report filter")
	case errors.Is(err, report.ErrUnknownMailKind):
		BadRequest(w, "Report mail kind must be employee or client", nil)
	case errors.Is(err, report.ErrUnknownColumn):
		BadRequest(w, "Report template references an unknown column", nil)
	case errors.Is(err, roster.ErrUnknownGroupKey):
		BadRequest(w, "Unknown group key", nil)

	// Chat and feed errors
	case errors.Is(err, chat.ErrConversationNotFound):
		NotFound(w, "Conversation not found")
	case errors.Is(err, chat.ErrNotParticipant):
		Forbidden(w, "You are not a participant of this conversation")
	case errors.Is(err, feed.ErrPostNotFound):
		NotFound(w, "Post not found")

	// Settings errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Settings not found")
	case errors.Is(err, settings.ErrAttachmentNotFound):
		NotFound(w, "Attachment not found")
	case errors.Is(err, settings.ErrFileTooLarge):
		BadRequest(w, "Uploaded file exceeds the size limit", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
