package notification

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shiftops/workforce-backend-go/internal/config"
	"github.com/shiftops/workforce-backend-go/internal/domain/master"
	"github.com/shiftops/workforce-backend-go/internal/domain/notification"
	"github.com/shiftops/workforce-backend-go/internal/domain/report"
	"github.com/shiftops/workforce-backend-go/internal/domain/settings"
	"github.com/shiftops/workforce-backend-go/internal/domain/user"
	"github.com/shiftops/workforce-backend-go/internal/pkg/email"
	"github.com/shiftops/workforce-backend-go/internal/pkg/push"
	"github.com/shiftops/workforce-backend-go/internal/pkg/whatsapp"
	reportservice "github.com/shiftops/workforce-backend-go/internal/service/report"
)

// sweepBatchSize caps how many jobs one sweep picks up.
const sweepBatchSize = 50

type NotificationServiceImpl struct {
	repo     notification.Repository
	settings settings.Repository
	users    user.Repository
	masters  master.Repository
	reports  report.Service
	whatsapp *whatsapp.Client
	push     *push.Sender
	email    email.EmailService
	cfg      config.WhatsAppConfig
}

func NewNotificationService(
	repo notification.Repository,
	settingsRepo settings.Repository,
	users user.Repository,
	masters master.Repository,
	reports report.Service,
	whatsappClient *whatsapp.Client,
	pushSender *push.Sender,
	emailService email.EmailService,
	cfg config.WhatsAppConfig,
) notification.Service {
	return &NotificationServiceImpl{
		repo:     repo,
		settings: settingsRepo,
		users:    users,
		masters:  masters,
		reports:  reports,
		whatsapp: whatsappClient,
		push:     pushSender,
		email:    emailService,
		cfg:      cfg,
	}
}

// EnqueueShiftJob implements notification.Service.
func (s *NotificationServiceImpl) EnqueueShiftJob(ctx context.Context, employeeID, timesheetID int64, action string) error {
	return s.repo.CreateWhatsAppJob(ctx, notification.WhatsAppJob{
		EmployeeID:  employeeID,
		TimesheetID: timesheetID,
		ActionType:  action,
	})
}

// ResetShiftJob implements notification.Service.
func (s *NotificationServiceImpl) ResetShiftJob(ctx context.Context, employeeID, timesheetID int64, action string) error {
	return s.repo.ResetWhatsAppJob(ctx, employeeID, timesheetID, action)
}

// DropShiftJobs implements notification.Service.
func (s *NotificationServiceImpl) DropShiftJobs(ctx context.Context, timesheetID int64) error {
	return s.repo.DeleteWhatsAppJobs(ctx, timesheetID)
}

// EnqueuePush implements notification.Service.
func (s *NotificationServiceImpl) EnqueuePush(ctx context.Context, userIDs []int64, title, body string, data map[string]string) error {
	jobs := make([]notification.PushJob, 0, len(userIDs))
	for _, id := range userIDs {
		jobs = append(jobs, notification.PushJob{
			UserID: id,
			Title:  title,
			Body:   body,
			Data:   data,
		})
	}
	return s.repo.CreatePushJobs(ctx, jobs)
}

// ========================================
// WHATSAPP SWEEP
// ========================================

// templateFor maps a shift action onto its message template name.
func (s *NotificationServiceImpl) templateFor(action string) string {
	switch action {
	case notification.ActionUpdate:
		return s.cfg.TemplateUpdate
	case notification.ActionDelete:
		return s.cfg.TemplateDelete
	default:
		return s.cfg.TemplateCreate
	}
}

// ProcessWhatsAppJobs implements notification.Service. A delivery failure
// leaves the job pending for the next sweep.
func (s *NotificationServiceImpl) ProcessWhatsAppJobs(ctx context.Context) error {
	token, err := s.settings.WhatsAppToken(ctx)
	if err != nil && !errors.Is(err, settings.ErrSettingsNotFound) {
		return err
	}
	if token == "" {
		return nil
	}

	jobs, err := s.repo.PendingWhatsAppJobs(ctx, sweepBatchSize)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		if job.Mobile == nil || *job.Mobile == "" {
			log.Printf("[NotificationService] Skipping whatsapp job %d: employee %d has no mobile number", job.ID, job.EmployeeID)
			if err := s.repo.MarkWhatsAppJobSent(ctx, job.ID); err != nil {
				return err
			}
			continue
		}

		params := []string{
			job.EmployeeName,
			job.Date.Format("2006-01-02"),
			fmt.Sprintf("%s - %s", job.StartTime, job.EndTime),
			job.LocationName,
		}
		if err := s.whatsapp.SendTemplate(ctx, token, *job.Mobile, s.templateFor(job.ActionType), params); err != nil {
			log.Printf("[NotificationService] Failed to send whatsapp job %d: %v", job.ID, err)
			continue
		}

		if err := s.repo.MarkWhatsAppJobSent(ctx, job.ID); err != nil {
			return err
		}
	}
	return nil
}

// ========================================
// PUSH SWEEP
// ========================================

// toggleAllows checks the per-category device toggle for a job.
func toggleAllows(setting notification.PushSetting, jobType string) bool {
	switch jobType {
	case "message":
		return setting.MessageEnabled
	case "announcement":
		return setting.DashboardEnabled
	case "feed":
		return setting.NewsfeedEnabled
	default:
		return true
	}
}

// ProcessPushJobs implements notification.Service.
func (s *NotificationServiceImpl) ProcessPushJobs(ctx context.Context) error {
	if !s.push.Enabled() {
		return nil
	}

	jobs, err := s.repo.PendingPushJobs(ctx, sweepBatchSize)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		deviceSettings, err := s.repo.PushSettingsForUser(ctx, job.UserID)
		if err != nil {
			return err
		}

		delivered := true
		for _, setting := range deviceSettings {
			if !toggleAllows(setting, job.Data["type"]) {
				continue
			}
			if err := s.push.Send(ctx, setting.DeviceToken, job.Title, job.Body, job.Data); err != nil {
				log.Printf("[NotificationService] Failed to push job %d to device of user %d: %v", job.ID, job.UserID, err)
				delivered = false
			}
		}
		if !delivered {
			continue
		}

		if err := s.repo.MarkPushJobSent(ctx, job.ID); err != nil {
			return err
		}
	}
	return nil
}

// ========================================
// MAIL SWEEP
// ========================================

// ProcessMailJobs implements notification.Service. The stored filter is
// re-rendered at send time so the mail reflects the data as of delivery.
func (s *NotificationServiceImpl) ProcessMailJobs(ctx context.Context) error {
	jobs, err := s.repo.PendingMailJobs(ctx, sweepBatchSize)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		if err := s.sendMailJob(ctx, job); err != nil {
			if errors.Is(err, report.ErrNoRows) || errors.Is(err, report.ErrNoRecipients) {
				// Nothing to send; retrying will not change that.
				log.Printf("[NotificationService] Dropping mail job %d: %v", job.ID, err)
				if err := s.repo.MarkMailJobSent(ctx, job.ID); err != nil {
					return err
				}
				continue
			}
			log.Printf("[NotificationService] Failed to send mail job %d: %v", job.ID, err)
			continue
		}

		if err := s.repo.MarkMailJobSent(ctx, job.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *NotificationServiceImpl) sendMailJob(ctx context.Context, job notification.MailJob) error {
	filter, err := reportservice.DecodeFilter(job.Filter)
	if err != nil {
		return err
	}

	var (
		download report.Download
		to       []string
		subject  string
	)
	switch job.Kind {
	case notification.MailKindEmployee:
		download, err = s.reports.DownloadEmployeePDF(ctx, filter)
		if err != nil {
			return err
		}
		to, err = s.employeeRecipients(ctx, filter.EmployeeIDs)
		if err != nil {
			return err
		}
		subject = "Your shift report"
	case notification.MailKindClient:
		download, err = s.reports.DownloadClientPDF(ctx, filter)
		if err != nil {
			return err
		}
		to, err = s.clientRecipients(ctx, filter.ClientID)
		if err != nil {
			return err
		}
		subject = "Shift report"
	default:
		return fmt.Errorf("unknown mail job kind %q", job.Kind)
	}

	if len(to) == 0 {
		return report.ErrNoRecipients
	}

	return s.email.SendReport(to, subject, "Please find the attached shift report.", download.Filename, download.Content)
}

func (s *NotificationServiceImpl) employeeRecipients(ctx context.Context, employeeIDs []int64) ([]string, error) {
	var to []string
	for _, id := range employeeIDs {
		u, err := s.users.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		to = append(to, u.Email)
	}
	return to, nil
}

func (s *NotificationServiceImpl) clientRecipients(ctx context.Context, clientID *int64) ([]string, error) {
	if clientID == nil {
		return nil, nil
	}
	client, err := s.masters.GetClient(ctx, *clientID)
	if err != nil {
		if errors.Is(err, master.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if client.Email == nil || *client.Email == "" {
		return nil, nil
	}
	return []string{*client.Email}, nil
}

// ========================================
// PUSH SETTINGS / FEEDBACK
// ========================================

// SavePushSetting implements notification.Service.
func (s *NotificationServiceImpl) SavePushSetting(ctx context.Context, userID int64, req notification.PushSettingRequest) (notification.PushSettingResponse, error) {
	if err := req.Validate(); err != nil {
		return notification.PushSettingResponse{}, err
	}

	setting := notification.PushSetting{
		UserID:           userID,
		DeviceToken:      req.DeviceToken,
		MessageEnabled:   true,
		DashboardEnabled: true,
		NewsfeedEnabled:  true,
	}
	if req.MessageEnabled != nil {
		setting.MessageEnabled = *req.MessageEnabled
	}
	if req.DashboardEnabled != nil {
		setting.DashboardEnabled = *req.DashboardEnabled
	}
	if req.NewsfeedEnabled != nil {
		setting.NewsfeedEnabled = *req.NewsfeedEnabled
	}

	saved, err := s.repo.UpsertPushSetting(ctx, setting)
	if err != nil {
		return notification.PushSettingResponse{}, err
	}
	return notification.ToPushSettingResponse(saved), nil
}

// GetPushSettings implements notification.Service.
func (s *NotificationServiceImpl) GetPushSettings(ctx context.Context, userID int64) ([]notification.PushSettingResponse, error) {
	deviceSettings, err := s.repo.PushSettingsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]notification.PushSettingResponse, 0, len(deviceSettings))
	for _, setting := range deviceSettings {
		responses = append(responses, notification.ToPushSettingResponse(setting))
	}
	return responses, nil
}

// SaveFeedback implements notification.Service.
func (s *NotificationServiceImpl) SaveFeedback(ctx context.Context, userID int64, req notification.FeedbackRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.repo.CreateFeedback(ctx, notification.Feedback{
		UserID:  userID,
		Rating:  req.Rating,
		Message: req.Message,
	})
}
