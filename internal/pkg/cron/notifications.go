package cron

import (
	"time"

	"github.com/shiftops/workforce-backend-go/internal/domain/notification"
)

type NotificationJobs struct {
	notificationSvc notification.Service
}

func NewNotificationJobs(notificationSvc notification.Service) *NotificationJobs {
	return &NotificationJobs{notificationSvc: notificationSvc}
}

func (j *NotificationJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("send_whatsapp_notifications", 1*time.Minute, j.notificationSvc.ProcessWhatsAppJobs)
	scheduler.AddJob("send_push_notifications", 30*time.Second, j.notificationSvc.ProcessPushJobs)
	scheduler.AddJob("send_report_mails", 1*time.Minute, j.notificationSvc.ProcessMailJobs)
}
