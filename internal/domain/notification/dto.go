package notification

import (
	"github.com/shiftops/workforce-backend-go/internal/pkg/validator"
)

type PushSettingRequest struct {
	DeviceToken      string `json:"device_token"`
	MessageEnabled   *bool  `json:"message_enabled"`
	DashboardEnabled *bool  `json:"dashboard_enabled"`
	NewsfeedEnabled  *bool  `json:"newsfeed_enabled"`
}

func (r *PushSettingRequest) Validate() error {
	if validator.IsEmpty(r.DeviceToken) {
		return validator.ValidationErrors{{
			Field:   "device_token",
			Message: "device_token is required",
		}}
	}
	return nil
}

type PushSettingResponse struct {
	DeviceToken      string `json:"device_token"`
	MessageEnabled   bool   `json:"message_enabled"`
	DashboardEnabled bool   `json:"dashboard_enabled"`
	NewsfeedEnabled  bool   `json:"newsfeed_enabled"`
}

func ToPushSettingResponse(s PushSetting) PushSettingResponse {
	return PushSettingResponse{
		DeviceToken:      s.DeviceToken,
		MessageEnabled:   s.MessageEnabled,
		DashboardEnabled: s.DashboardEnabled,
		NewsfeedEnabled:  s.NewsfeedEnabled,
	}
}

type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

func (r *FeedbackRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: "rating must be between 1 and 5",
		})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
