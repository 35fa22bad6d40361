package email

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"log/slog"
	"mime"
	"net/smtp"
	"time"

	"github.com/shiftops/workforce-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendWelcome(to, name, email, password, loginURL string) error
	SendNewPassword(to, name, password string) error
	SendReport(to []string, subject, note, filename string, attachment []byte) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type welcomeEmailData struct {
	Name     string
	Email    string
	Password string
	LoginURL string
}

// SendWelcome sends login credentials to a newly created user.
func (s *emailServiceImpl) SendWelcome(to, name, email, password, loginURL string) error {
	data := welcomeEmailData{
		Name:     name,
		Email:    email,
		Password: password,
		LoginURL: loginURL,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "welcome.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.send(to, "Your account is ready", body.String(), "", nil)
}

type newPasswordEmailData struct {
	Name     string
	Password string
}

// SendNewPassword sends a freshly generated password to an existing user.
func (s *emailServiceImpl) SendNewPassword(to, name, password string) error {
	data := newPasswordEmailData{
		Name:     name,
		Password: password,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "new_password.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.send(to, "Your new password", body.String(), "", nil)
}

type reportEmailData struct {
	Note string
}

// SendReport mails a generated report workbook to the given recipients.
func (s *emailServiceImpl) SendReport(to []string, subject, note, filename string, attachment []byte) error {
	data := reportEmailData{Note: note}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "report.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	var lastErr error
	for _, recipient := range to {
		if err := s.send(recipient, subject, body.String(), filename, attachment); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

func (s *emailServiceImpl) send(to, subject, htmlBody, attachmentName string, attachment []byte) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From
	message := s.buildMessage(to, subject, htmlBody, attachmentName, attachment)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}

const mixedBoundary = "WORKFORCE-MAIL-BOUNDARY"

func (s *emailServiceImpl) buildMessage(to, subject, htmlBody, attachmentName string, attachment []byte) []byte {
	var msg bytes.Buffer

	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")

	if attachment == nil {
		msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		msg.WriteString(htmlBody)
		return msg.Bytes()
	}

	fmt.Fprintf(&msg, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", mixedBoundary)

	fmt.Fprintf(&msg, "--%s\r\n", mixedBoundary)
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(htmlBody)
	msg.WriteString("\r\n")

	contentType := mime.TypeByExtension(".xlsx")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	fmt.Fprintf(&msg, "--%s\r\n", mixedBoundary)
	fmt.Fprintf(&msg, "Content-Type: %s; name=%q\r\n", contentType, attachmentName)
	msg.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&msg, "Content-Disposition: attachment; filename=%q\r\n\r\n", attachmentName)

	encoded := base64.StdEncoding.EncodeToString(attachment)
	// RFC 2045 caps encoded lines at 76 characters.
	for len(encoded) > 76 {
		msg.WriteString(encoded[:76])
		msg.WriteString("\r\n")
		encoded = encoded[76:]
	}
	msg.WriteString(encoded)
	msg.WriteString("\r\n")
	fmt.Fprintf(&msg, "--%s--\r\n", mixedBoundary)

	return msg.Bytes()
}
