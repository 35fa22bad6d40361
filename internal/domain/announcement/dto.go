package announcement

import (
	"time"

	"github.com/shiftops/workforce-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	UserIDs []int64 `json:"user_ids"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}
	if len(r.UserIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "user_ids",
			Message: "at least one recipient is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	CreatedBy  int64   `json:"created_by"`
	AuthorName *string `json:"author_name,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

func ToResponse(a Announcement) Response {
	return Response{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		CreatedBy:  a.CreatedBy,
		AuthorName: a.AuthorName,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
}
