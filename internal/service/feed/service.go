package feed

import (
	"context"

	"github.com/shiftops/workforce-backend-go/internal/domain/feed"
)

type FeedServiceImpl struct {
	repo feed.Repository
}

func NewFeedService(repo feed.Repository) feed.Service {
	return &FeedServiceImpl{repo: repo}
}

// CreatePost implements feed.Service.
func (s *FeedServiceImpl) CreatePost(ctx context.Context, req feed.CreatePostRequest, authorID int64) (feed.PostResponse, error) {
	if err := req.Validate(); err != nil {
		return feed.PostResponse{}, err
	}

	created, err := s.repo.CreatePost(ctx, feed.Post{UserID: authorID, Content: req.Content})
	if err != nil {
		return feed.PostResponse{}, err
	}
	return feed.ToPostResponse(created), nil
}

// CreateComment implements feed.Service.
func (s *FeedServiceImpl) CreateComment(ctx context.Context, req feed.CreateCommentRequest, authorID int64) (feed.CommentResponse, error) {
	if err := req.Validate(); err != nil {
		return feed.CommentResponse{}, err
	}

	// Confirm the post exists before commenting on it.
	if _, err := s.repo.GetPost(ctx, req.PostID, authorID); err != nil {
		return feed.CommentResponse{}, err
	}

	created, err := s.repo.CreateComment(ctx, feed.Comment{
		PostID:  req.PostID,
		UserID:  authorID,
		Content: req.Content,
	})
	if err != nil {
		return feed.CommentResponse{}, err
	}
	return feed.ToCommentResponse(created), nil
}

// ToggleLike implements feed.Service.
func (s *FeedServiceImpl) ToggleLike(ctx context.Context, postID, userID int64) (feed.LikeResponse, error) {
	if _, err := s.repo.GetPost(ctx, postID, userID); err != nil {
		return feed.LikeResponse{}, err
	}

	liked, total, err := s.repo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return feed.LikeResponse{}, err
	}
	return feed.LikeResponse{Liked: liked, TotalLikes: total}, nil
}

// ListPosts implements feed.Service.
func (s *FeedServiceImpl) ListPosts(ctx context.Context, viewerID int64) ([]feed.PostResponse, error) {
	posts, err := s.repo.ListPosts(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	responses := make([]feed.PostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, feed.ToPostResponse(p))
	}
	return responses, nil
}

// GetPost implements feed.Service.
func (s *FeedServiceImpl) GetPost(ctx context.Context, id, viewerID int64) (feed.PostDetailResponse, error) {
	post, err := s.repo.GetPost(ctx, id, viewerID)
	if err != nil {
		return feed.PostDetailResponse{}, err
	}

	comments, err := s.repo.ListComments(ctx, id)
	if err != nil {
		return feed.PostDetailResponse{}, err
	}

	resp := feed.PostDetailResponse{
		Post:     feed.ToPostResponse(post),
		Comments: make([]feed.CommentResponse, 0, len(comments)),
	}
	for _, c := range comments {
		resp.Comments = append(resp.Comments, feed.ToCommentResponse(c))
	}
	return resp, nil
}
