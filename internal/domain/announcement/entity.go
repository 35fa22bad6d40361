package announcement

import "time"

type Announcement struct {
	ID        int64
	Title     string
	Content   string
	CreatedBy int64
	CreatedAt time.Time

	AuthorName *string
}
