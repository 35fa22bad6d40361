package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftops/workforce-backend-go/internal/domain/feed"
	"github.com/shiftops/workforce-backend-go/internal/pkg/database"
)

type feedRepository struct {
	db *database.DB
}

func NewFeedRepository(db *database.DB) feed.Repository {
	return &feedRepository{db: db}
}

const postColumns = `
	p.id, p.user_id, u.username, p.content, p.created_at,
	(SELECT COUNT(*) FROM post_comments pc WHERE pc.post_id = p.id) AS total_comments,
	(SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = p.id) AS total_likes,
	EXISTS (SELECT 1 FROM post_likes pl WHERE pl.post_id = p.id AND pl.user_id = $1) AS is_liked`

// CreatePost implements feed.Repository.
func (r *feedRepository) CreatePost(ctx context.Context, p feed.Post) (feed.Post, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx,
		`INSERT INTO posts (user_id, content) VALUES ($1, $2) RETURNING id, created_at`,
		p.UserID, p.Content,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return feed.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	err = q.QueryRow(ctx, `SELECT username FROM users WHERE id = $1`, p.UserID).Scan(&p.Username)
	if err != nil {
		return feed.Post{}, fmt.Errorf("failed to resolve author: %w", err)
	}

	return p, nil
}

// GetPost implements feed.Repository.
func (r *feedRepository) GetPost(ctx context.Context, id, viewerID int64) (feed.Post, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $2`, postColumns)

	var p feed.Post
	err := q.QueryRow(ctx, query, viewerID, id).Scan(
		&p.ID, &p.UserID, &p.Username, &p.Content, &p.CreatedAt,
		&p.TotalComments, &p.TotalLikes, &p.IsLiked,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return feed.Post{}, feed.ErrPostNotFound
		}
		return feed.Post{}, fmt.Errorf("failed to get post: %w", err)
	}

	return p, nil
}

// ListPosts implements feed.Repository.
func (r *feedRepository) ListPosts(ctx context.Context, viewerID int64) ([]feed.Post, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC, p.id DESC`, postColumns)

	rows, err := q.Query(ctx, query, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []feed.Post
	for rows.Next() {
		var p feed.Post
		err := rows.Scan(
			&p.ID, &p.UserID, &p.Username, &p.Content, &p.CreatedAt,
			&p.TotalComments, &p.TotalLikes, &p.IsLiked,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// CreateComment implements feed.Repository.
func (r *feedRepository) CreateComment(ctx context.Context, c feed.Comment) (feed.Comment, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx,
		`INSERT INTO post_comments (post_id, user_id, content) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		c.PostID, c.UserID, c.Content,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return feed.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}

	err = q.QueryRow(ctx, `SELECT username FROM users WHERE id = $1`, c.UserID).Scan(&c.Username)
	if err != nil {
		return feed.Comment{}, fmt.Errorf("failed to resolve commenter: %w", err)
	}

	return c, nil
}

// ListComments implements feed.Repository.
func (r *feedRepository) ListComments(ctx context.Context, postID int64) ([]feed.Comment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT pc.id, pc.post_id, pc.user_id, u.username, pc.content, pc.created_at
		 FROM post_comments pc
		 JOIN users u ON u.id = pc.user_id
		 WHERE pc.post_id = $1
		 ORDER BY pc.created_at, pc.id`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []feed.Comment
	for rows.Next() {
		var c feed.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Username, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// ToggleLike implements feed.Repository. It removes an existing like, or
// records one when none exists, and returns the resulting state.
func (r *feedRepository) ToggleLike(ctx context.Context, postID, userID int64) (bool, int, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`,
		postID, userID,
	)
	if err != nil {
		return false, 0, fmt.Errorf("failed to remove like: %w", err)
	}

	liked := false
	if tag.RowsAffected() == 0 {
		_, err = q.Exec(ctx,
			`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			postID, userID,
		)
		if err != nil {
			return false, 0, fmt.Errorf("failed to add like: %w", err)
		}
		liked = true
	}

	var total int
	err = q.QueryRow(ctx, `SELECT COUNT(*) FROM post_likes WHERE post_id = $1`, postID).Scan(&total)
	if err != nil {
		return false, 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return liked, total, nil
}
