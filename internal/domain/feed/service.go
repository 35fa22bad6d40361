package feed

import "context"

// Service defines business logic for the news feed.
type Service interface {
	CreatePost(ctx context.Context, req CreatePostRequest, authorID int64) (PostResponse, error)

	CreateComment(ctx context.Context, req CreateCommentRequest, authorID int64) (CommentResponse, error)

	ToggleLike(ctx context.Context, postID, userID int64) (LikeResponse, error)

	ListPosts(ctx context.Context, viewerID int64) ([]PostResponse, error)

	GetPost(ctx context.Context, id, viewerID int64) (PostDetailResponse, error)
}
