// Package email provides the email client for sending transactional emails.
package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/resendlabs/resend-go"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/email/templates"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
)

// Service defines the interface for sending emails, allowing for mock implementations in tests.
type Service interface {
	SendEnquiryNotification(ctx context.Context, enquiry *catalog.Enquiry) error
}

// Config holds the delivery settings for the Resend client.
type Config struct {
	APIKey     string
	FromEmail  string
	FromName   string
	ToEmail    string // back-office inbox receiving enquiry notifications
	Attempts   uint
	RetryDelay time.Duration
}

// ResendClient is the concrete implementation of the email Service using the Resend API.
type ResendClient struct {
	client     *resend.Client
	fromEmail  string
	fromName   string
	toEmail    string
	attempts   uint
	retryDelay time.Duration
	logger     *logging.ChanneledLogger
}

// NewService creates a new email service client, returning the Service interface.
func NewService(cfg Config, logger *logging.ChanneledLogger) (Service, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}
	if cfg.ToEmail == "" {
		return nil, fmt.Errorf("enquiry notification recipient is required")
	}
	if cfg.FromEmail == "" {
		cfg.FromEmail = "noreply@shantihimalaya.com"
	}
	if cfg.FromName == "" {
		cfg.FromName = "Shanti Himalaya"
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 2 * time.Second
	}

	return &ResendClient{
		client:     resend.NewClient(cfg.APIKey),
		fromEmail:  cfg.FromEmail,
		fromName:   cfg.FromName,
		toEmail:    cfg.ToEmail,
		attempts:   cfg.Attempts,
		retryDelay: cfg.RetryDelay,
		logger:     logger,
	}, nil
}

// SendEnquiryNotification composes and sends the new-enquiry email to the
// back-office inbox, retrying transient delivery failures.
func (c *ResendClient) SendEnquiryNotification(ctx context.Context, enquiry *catalog.Enquiry) error {
	subject := fmt.Sprintf("New enquiry: %s", enquiry.Subject)

	var content strings.Builder
	content.WriteString(templates.GetHeading("New website enquiry"))
	content.WriteString(templates.GetDetailTable(
		"Name", enquiry.Name,
		"Email", enquiry.Email,
		"Phone", deref(enquiry.Phone),
		"Trip interest", deref(enquiry.TripInterest),
		"Travel dates", deref(enquiry.TravelDates),
		"Journey", deref(enquiry.JourneyTitle),
		"Subject", enquiry.Subject,
	))
	content.WriteString(templates.GetParagraph(enquiry.Message))

	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader: subject,
		Content:   content.String(),
	})

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{c.toEmail},
		ReplyTo: enquiry.Email,
		Subject: subject,
		Html:    htmlContent,
	}

	err := retry.Do(
		func() error {
			_, err := c.client.Emails.Send(params)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.retryDelay),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Email().Warn("Enquiry notification send retry",
				"attempt", n+1, "error", err.Error(), "enquiryId", enquiry.ID)
		}),
	)
	if err != nil {
		c.logger.Email().Error("Enquiry notification send failed",
			"error", err.Error(), "enquiryId", enquiry.ID)
		return fmt.Errorf("failed to send enquiry notification via Resend: %w", err)
	}

	c.logger.Email().Info("Enquiry notification sent", "enquiryId", enquiry.ID)
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
