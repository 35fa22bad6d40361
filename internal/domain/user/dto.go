package user

import (
	"time"

	"github.com/shiftops/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// REQUESTS
// ========================================

type CreateUserRequest struct {
	Name           string  `json:"name"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	Mobile         *string `json:"mobile"`
	Address        *string `json:"address"`
	Role           string  `json:"role"`
	Password       string  `json:"password"`
	Qualifications []int64 `json:"qualifications"`
	Skills         []int64 `json:"skills"`
	Languages      []int64 `json:"languages"`

	// RequirePassword is set by the v2 endpoint. The v1 endpoint generates
	// a password and mails it instead.
	RequirePassword bool `json:"-"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email address is required",
		})
	}
	if r.Role != RoleAdmin && r.Role != RoleEmployee {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be \"1\" or \"2\"",
		})
	}
	if r.RequirePassword && !validator.IsStrongPassword(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters with one capital letter and one special character",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateUserRequest is a partial update; nil fields keep their value.
// Attribute slices are diffed against the stored sets: missing ids are
// added, absent ones removed. A nil slice leaves the set untouched.
type UpdateUserRequest struct {
	ID             int64   `json:"-"`
	Name           *string `json:"name"`
	Username       *string `json:"username"`
	Email          *string `json:"email"`
	Mobile         *string `json:"mobile"`
	Address        *string `json:"address"`
	Role           *string `json:"role"`
	Status         *string `json:"status"`
	Qualifications []int64 `json:"qualifications"`
	Skills         []int64 `json:"skills"`
	Languages      []int64 `json:"languages"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email address is required",
		})
	}
	if r.Role != nil && *r.Role != RoleAdmin && *r.Role != RoleEmployee {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be \"1\" or \"2\"",
		})
	}
	if r.Status != nil && *r.Status != StatusActive && *r.Status != StatusInactive {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// FILTERS
// ========================================

type ListFilter struct {
	Username         *string
	QualificationIDs []int64
	SkillIDs         []int64
	LanguageIDs      []int64
	Page             int
	PageSize         int
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 200 {
		f.PageSize = 20
	}
}

// ========================================
// RESPONSES
// ========================================

type UserResponse struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	Username       string      `json:"username"`
	Email          string      `json:"email"`
	Mobile         *string     `json:"mobile"`
	Address        *string     `json:"address"`
	Role           string      `json:"role"`
	Status         string      `json:"status"`
	Qualifications []Attribute `json:"qualifications"`
	Skills         []Attribute `json:"skills"`
	Languages      []Attribute `json:"languages"`
	CreatedAt      string      `json:"created_at"`
}

func ToUserResponse(u User) UserResponse {
	resp := UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Username:       u.Username,
		Email:          u.Email,
		Mobile:         u.Mobile,
		Address:        u.Address,
		Role:           u.Role,
		Status:         u.Status,
		Qualifications: u.Qualifications,
		Skills:         u.Skills,
		Languages:      u.Languages,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
	if resp.Qualifications == nil {
		resp.Qualifications = []Attribute{}
	}
	if resp.Skills == nil {
		resp.Skills = []Attribute{}
	}
	if resp.Languages == nil {
		resp.Languages = []Attribute{}
	}
	return resp
}

// SummaryResponse feeds the attribute pickers.
type SummaryResponse struct {
	Qualifications []Attribute `json:"qualifications"`
	Skills         []Attribute `json:"skills"`
	Languages      []Attribute `json:"languages"`
}
