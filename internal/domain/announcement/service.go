package announcement

import "context"

// Service defines business logic for announcements.
type Service interface {
	Create(ctx context.Context, req CreateRequest, creatorID int64) (Response, error)

	ListForUser(ctx context.Context, userID int64) ([]Response, error)
}
