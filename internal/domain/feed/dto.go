package feed

import (
	"strings"
	"time"

	"github.com/shiftops/workforce-backend-go/internal/pkg/validator"
)

type CreatePostRequest struct {
	Content string `json:"content"`
}

func (r *CreatePostRequest) Validate() error {
	content := strings.TrimSpace(r.Content)
	if len(content) < 5 || len(content) > 500 {
		return validator.ValidationErrors{{
			Field:   "content",
			Message: "content must be between 5 and 500 characters",
		}}
	}
	return nil
}

type CreateCommentRequest struct {
	PostID  int64  `json:"post_id"`
	Content string `json:"content"`
}

func (r *CreateCommentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PostID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "post_id",
			Message: "post_id is required",
		})
	}
	content := strings.TrimSpace(r.Content)
	if len(content) < 1 || len(content) > 300 {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content must be between 1 and 300 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PostResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	Username      *string `json:"username,omitempty"`
	Content       string  `json:"content"`
	TotalComments int     `json:"total_comments"`
	TotalLikes    int     `json:"total_likes"`
	IsLiked       bool    `json:"is_liked"`
	CreatedAt     string  `json:"created_at"`
}

func ToPostResponse(p Post) PostResponse {
	return PostResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		Username:      p.Username,
		Content:       p.Content,
		TotalComments: p.TotalComments,
		TotalLikes:    p.TotalLikes,
		IsLiked:       p.IsLiked,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

type CommentResponse struct {
	ID        int64   `json:"id"`
	PostID    int64   `json:"post_id"`
	UserID    int64   `json:"user_id"`
	Username  *string `json:"username,omitempty"`
	Content   string  `json:"content"`
	CreatedAt string  `json:"created_at"`
}

func ToCommentResponse(c Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Username:  c.Username,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

type PostDetailResponse struct {
	Post     PostResponse      `json:"post"`
	Comments []CommentResponse `json:"comments"`
}

type LikeResponse struct {
	Liked      bool `json:"liked"`
	TotalLikes int  `json:"total_likes"`
}
