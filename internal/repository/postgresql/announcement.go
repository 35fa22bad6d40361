package postgresql

import (
	"context"
	"fmt"

	"github.com/shiftops/workforce-backend-go/internal/domain/announcement"
	"github.com/shiftops/workforce-backend-go/internal/pkg/database"
)

type announcementRepository struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.Repository {
	return &announcementRepository{db: db}
}

// Create implements announcement.Repository.
func (r *announcementRepository) Create(ctx context.Context, a announcement.Announcement, userIDs []int64) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx,
		`INSERT INTO announcements (title, content, created_by) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		a.Title, a.Content, a.CreatedBy,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	_, err = q.Exec(ctx,
		`INSERT INTO announcement_users (announcement_id, user_id)
		 SELECT $1, unnest($2::bigint[])
		 ON CONFLICT DO NOTHING`,
		a.ID, userIDs,
	)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to add recipients: %w", err)
	}

	return a, nil
}

// ListForUser implements announcement.Repository.
func (r *announcementRepository) ListForUser(ctx context.Context, userID int64) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT a.id, a.title, a.content, a.created_by, a.created_at
		 FROM announcements a
		 JOIN announcement_users au ON au.announcement_id = a.id
		 WHERE au.user_id = $1
		 ORDER BY a.created_at DESC, a.id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var announcements []announcement.Announcement
	for rows.Next() {
		var a announcement.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.CreatedBy, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}
