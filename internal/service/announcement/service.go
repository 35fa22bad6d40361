package announcement

import (
	"context"
	"strconv"

	"github.com/shiftops/workforce-backend-go/internal/domain/announcement"
	"github.com/shiftops/workforce-backend-go/internal/domain/notification"
	"github.com/shiftops/workforce-backend-go/internal/pkg/database"
	"github.com/shiftops/workforce-backend-go/internal/repository/postgresql"
)

type AnnouncementServiceImpl struct {
	db            *database.DB
	repo          announcement.Repository
	notifications notification.Service
}

func NewAnnouncementService(db *database.DB, repo announcement.Repository, notifications notification.Service) announcement.Service {
	return &AnnouncementServiceImpl{
		db:            db,
		repo:          repo,
		notifications: notifications,
	}
}

// Create implements announcement.Service. Recipients get a push
// notification queued in the same transaction as the announcement.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.CreateRequest, creatorID int64) (announcement.Response, error) {
	if err := req.Validate(); err != nil {
		return announcement.Response{}, err
	}

	var created announcement.Announcement
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.Create(txCtx, announcement.Announcement{
			Title:     req.Title,
			Content:   req.Content,
			CreatedBy: creatorID,
		}, req.UserIDs)
		if err != nil {
			return err
		}

		return s.notifications.EnqueuePush(txCtx, req.UserIDs, req.Title, req.Content, map[string]string{
			"type":            "announcement",
			"announcement_id": strconv.FormatInt(created.ID, 10),
		})
	})
	if err != nil {
		return announcement.Response{}, err
	}

	return announcement.ToResponse(created), nil
}

// ListForUser implements announcement.Service.
func (s *AnnouncementServiceImpl) ListForUser(ctx context.Context, userID int64) ([]announcement.Response, error) {
	announcements, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]announcement.Response, 0, len(announcements))
	for _, a := range announcements {
		responses = append(responses, announcement.ToResponse(a))
	}
	return responses, nil
}
