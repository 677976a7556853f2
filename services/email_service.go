package services

import (
	"context"
	"errors"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

// ErrSenderNotConfigured is returned by senders that have no API key. The
// message is skipped rather than failed.
var ErrSenderNotConfigured = errors.New("sender not configured")

type EmailSender interface {
	Send(ctx context.Context, to []string, subject, html string) error
}

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.EmailConfig
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	es := &EmailService{
		logger: logger,
		cfg:    cfg.Email,
	}
	if cfg.Email.ApiKey != "" {
		es.client = resend.NewClient(cfg.Email.ApiKey)
	}
	return es
}

func (es *EmailService) Send(ctx context.Context, to []string, subject, html string) error {
	if es.client == nil {
		es.logger.Warn("Resend API key not configured, email skipped", gecho.Field("subject", subject))
		return ErrSenderNotConfigured
	}

	params := &resend.SendEmailRequest{
		From:    es.cfg.From,
		To:      to,
		Html:    html,
		Subject: subject,
	}

	sent, err := es.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	es.logger.Debug("Email sent", gecho.Field("id", sent.Id), gecho.Field("subject", subject))
	return nil
}
