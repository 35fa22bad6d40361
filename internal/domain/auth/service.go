package auth

import "context"

// Service defines business logic for authentication.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// GeneratePassword replaces the account password with a random one and
	// mails it to the user. Always succeeds from the caller's point of
	// view so the endpoint does not leak which emails exist.
	GeneratePassword(ctx context.Context, req GeneratePasswordRequest) error
}
