package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
)

type SmsSender interface {
	Send(ctx context.Context, recipient, content string) error
}

// SmsService sends transactional SMS through the Brevo REST API
type SmsService struct {
	logger     *gecho.Logger
	cfg        *structs.SmsConfig
	httpClient *http.Client
}

type brevoSmsRequest struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Content   string `json:"content"`
	Type      string `json:"type"`
}

func NewSmsService(logger *gecho.Logger, cfg *structs.Config) *SmsService {
	return &SmsService{
		logger:     logger,
		cfg:        cfg.Sms,
		httpClient: &http.Client{Timeout: cfg.Sms.Timeout},
	}
}

func (ss *SmsService) Send(ctx context.Context, recipient, content string) error {
	if ss.cfg.ApiKey == "" {
		ss.logger.Warn("Brevo API key not configured, SMS skipped")
		return ErrSenderNotConfigured
	}
	if recipient == "" {
		return fmt.Errorf("sms recipient is empty")
	}

	body, err := json.Marshal(brevoSmsRequest{
		Sender:    ss.cfg.Sender,
		Recipient: recipient,
		Content:   content,
		Type:      "transactional",
	})
	if err != nil {
		return fmt.Errorf("encode sms request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ss.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("api-key", ss.cfg.ApiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := ss.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("brevo responded %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
