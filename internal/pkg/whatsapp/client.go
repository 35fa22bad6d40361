package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const graphAPIBase = "https://graph.facebook.com/v17.0"

// Client sends template messages through the WhatsApp Business Cloud API.
// The access token is passed per call because admins rotate it at runtime
// through the settings endpoint.
type Client struct {
	phoneNumberID string
	httpClient    *http.Client
}

func NewClient(phoneNumberID string) *Client {
	return &Client{
		phoneNumberID: phoneNumberID,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
	}
}

type templateMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Template         template `json:"template"`
}

type template struct {
	Name       string      `json:"name"`
	Language   language    `json:"language"`
	Components []component `json:"components"`
}

type language struct {
	Code string `json:"code"`
}

type component struct {
	Type       string      `json:"type"`
	Parameters []parameter `json:"parameters"`
}

type parameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// SendTemplate delivers a template message with positional body parameters
// to the given phone number in international format.
func (c *Client) SendTemplate(ctx context.Context, accessToken, to, templateName string, params []string) error {
	if c.phoneNumberID == "" {
		return fmt.Errorf("whatsapp phone number id not configured")
	}

	bodyParams := make([]parameter, 0, len(params))
	for _, p := range params {
		bodyParams = append(bodyParams, parameter{Type: "text", Text: p})
	}

	msg := templateMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "template",
		Template: template{
			Name:     templateName,
			Language: language{Code: "en"},
			Components: []component{
				{Type: "body", Parameters: bodyParams},
			},
		},
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal whatsapp message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", graphAPIBase, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build whatsapp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send whatsapp message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("whatsapp api error %d: %s", apiErr.Error.Code, apiErr.Error.Message)
		}
		return fmt.Errorf("whatsapp api returned status %d", resp.StatusCode)
	}

	return nil
}
