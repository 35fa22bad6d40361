package announcement

import "context"

// Repository defines data access for announcements and their recipient
// mapping rows.
type Repository interface {
	Create(ctx context.Context, a Announcement, userIDs []int64) (Announcement, error)

	// ListForUser returns announcements addressed to the user, newest
	// first.
	ListForUser(ctx context.Context, userID int64) ([]Announcement, error)
}
