package user

import "context"

// Service defines business logic for user management.
type Service interface {
	// Create adds a user. When req.RequirePassword is false a random
	// password is generated and mailed to the new account.
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	Get(ctx context.Context, id int64) (UserResponse, error)

	List(ctx context.Context, filter ListFilter) ([]UserResponse, int64, error)

	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	Delete(ctx context.Context, id int64) error

	Summary(ctx context.Context) (SummaryResponse, error)
}
