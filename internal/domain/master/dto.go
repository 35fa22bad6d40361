package master

import (
	"github.com/shiftops/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// REQUESTS
// ========================================

type LocationRequest struct {
	Name string `json:"name"`
	Rate string `json:"rate"`
}

func (r *LocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.Rate != RateNormal && r.Rate != RateDouble {
		errs = append(errs, validator.ValidationError{
			Field:   "rate",
			Message: "rate must be normal or double",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventRequest struct {
	Name  string `json:"name"`
	Color string `json:"event_color"`
}

func (r *EventRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{
			Field:   "name",
			Message: "name is required",
		}}
	}
	return nil
}

type NameRequest struct {
	Name string `json:"name"`
}

func (r *NameRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{
			Field:   "name",
			Message: "name is required",
		}}
	}
	return nil
}

type ClientRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Rate  string  `json:"rate"`
}

func (r *ClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email address is required",
		})
	}
	if r.Rate != RateNormal && r.Rate != RateDouble {
		errs = append(errs, validator.ValidationError{
			Field:   "rate",
			Message: "rate must be normal or double",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TemplateRequest struct {
	Title   string   `json:"title"`
	Type    string   `json:"type"`
	Columns []string `json:"columns"`
}

func (r *TemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(r.Columns) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "columns",
			Message: "at least one column is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// RESPONSES
// ========================================

type LocationResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Rate string `json:"rate"`
}

type EventResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"event_color"`
}

type NameResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ClientResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Rate  string  `json:"rate"`
}

type TemplateResponse struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title"`
	Type    string   `json:"type"`
	Columns []string `json:"columns"`
}
