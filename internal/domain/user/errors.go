package user

import "errors"

// User domain errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("a user with this email already exists")
	ErrUsernameTaken = errors.New("a user with this username already exists")
	ErrWeakPassword  = errors.New("password must be at least 8 characters with one capital letter and one special character")
	ErrInactiveUser  = errors.New("user account is inactive")
)
