package feed

import "context"

// Repository defines data access for the news feed.
type Repository interface {
	CreatePost(ctx context.Context, p Post) (Post, error)

	// GetPost loads one post with counters computed for viewerID.
	GetPost(ctx context.Context, id, viewerID int64) (Post, error)

	// ListPosts returns posts newest first with counters for viewerID.
	ListPosts(ctx context.Context, viewerID int64) ([]Post, error)

	CreateComment(ctx context.Context, c Comment) (Comment, error)

	ListComments(ctx context.Context, postID int64) ([]Comment, error)

	// ToggleLike inserts or removes the like and reports the new state
	// plus the resulting like count.
	ToggleLike(ctx context.Context, postID, userID int64) (bool, int, error)
}
