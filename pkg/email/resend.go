package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/resendlabs/resend-go"
	"github.com/sefazor/snapvault-backend/internal/config"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Sender delivers transactional mail.
type Sender interface {
	SendWelcomeEmail(email, fullName string) error
}

// EmailService sends mail through Resend.
type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

// NewSender returns a Resend backed sender, or a no-op sender when no API key
// is configured.
func NewSender(cfg config.EmailConfig, log *zap.Logger) Sender {
	if !cfg.Enabled() {
		return Noop{}
	}
	return &EmailService{
		client:   resend.NewClient(cfg.ResendAPIKey),
		from:     cfg.FromAddress,
		fromName: cfg.FromName,
		logger:   log.Named("email"),
	}
}

func (s *EmailService) SendWelcomeEmail(email, fullName string) error {
	html, err := render("welcome.html", map[string]interface{}{
		"PlatformName": s.fromName,
		"FullName":     fullName,
		"Email":        email,
		"Year":         time.Now().Year(),
	})
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{email},
		Subject: "Welcome to " + s.fromName + "!",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Warn("failed to send welcome email", zap.String("to", email), zap.Error(err))
		return err
	}

	s.logger.Info("sent welcome email", zap.String("to", email), zap.String("id", resp.Id))
	return nil
}

func render(name string, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return body.String(), nil
}

// Noop drops every message.
type Noop struct{}

func (Noop) SendWelcomeEmail(string, string) error { return nil }
