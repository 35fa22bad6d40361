package auth

import (
	"github.com/shiftops/workforce-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email address is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GeneratePasswordRequest issues a fresh password to the account with the
// given email and sends it by mail.
type GeneratePasswordRequest struct {
	Email string `json:"email"`
}

func (r *GeneratePasswordRequest) Validate() error {
	if !validator.IsValidEmail(r.Email) {
		return validator.ValidationErrors{{
			Field:   "email",
			Message: "a valid email address is required",
		}}
	}
	return nil
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   int64        `json:"expires_at"`
	User        LoginProfile `json:"user"`
}

type LoginProfile struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
