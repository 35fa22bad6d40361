package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const messagingScope = "https://www.googleapis.com/auth/firebase.messaging"

// Sender delivers push notifications through the FCM HTTP v1 API using a
// service account token source.
type Sender struct {
	projectID   string
	tokenSource oauth2.TokenSource
	httpClient  *http.Client
}

// NewSender reads the service account credentials file and prepares a
// token source. Returns a disabled sender when no credentials are
// configured so callers can treat push as optional.
func NewSender(projectID, credentialsFile string) (*Sender, error) {
	s := &Sender{
		projectID:  projectID,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}

	if projectID == "" || credentialsFile == "" {
		return s, nil
	}

	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read fcm credentials: %w", err)
	}

	conf, err := google.JWTConfigFromJSON(data, messagingScope)
	if err != nil {
		return nil, fmt.Errorf("parse fcm credentials: %w", err)
	}

	s.tokenSource = conf.TokenSource(context.Background())
	return s, nil
}

// Enabled reports whether push delivery is configured.
func (s *Sender) Enabled() bool {
	return s.tokenSource != nil
}

type message struct {
	Message messageBody `json:"message"`
}

type messageBody struct {
	Token        string            `json:"token"`
	Notification notificationBody  `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type notificationBody struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Send delivers one notification to a device token.
func (s *Sender) Send(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	if !s.Enabled() {
		return fmt.Errorf("push sender not configured")
	}

	token, err := s.tokenSource.Token()
	if err != nil {
		return fmt.Errorf("fcm token: %w", err)
	}

	payload, err := json.Marshal(message{
		Message: messageBody{
			Token:        deviceToken,
			Notification: notificationBody{Title: title, Body: body},
			Data:         data,
		},
	})
	if err != nil {
		return fmt.Errorf("marshal fcm message: %w", err)
	}

	url := fmt.Sprintf("https://fcm.googleapis.com/v1/projects/%s/messages:send", s.projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build fcm request: %w", err)
	}
	token.SetAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send fcm message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("fcm api returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
