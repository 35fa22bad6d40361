package feed

import "time"

type Post struct {
	ID        int64
	UserID    int64
	Content   string
	CreatedAt time.Time

	Username      *string
	TotalComments int
	TotalLikes    int
	IsLiked       bool
}

type Comment struct {
	ID        int64
	PostID    int64
	UserID    int64
	Content   string
	CreatedAt time.Time

	Username *string
}
