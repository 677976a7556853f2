package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"photomagnet_server/structs"
	"photomagnet_server/structs/tables"
	"strings"

	"github.com/MonkyMars/gecho"
)

type templateExecutor interface {
	Execute(w io.Writer, data any) error
}

type notificationData struct {
	Order        *tables.Order
	Product      string
	ConfirmURL   string
	SupportEmail string
}

// NotificationService renders order notifications and hands them to the
// email and SMS senders. Failures are reported to the caller, never retried.
type NotificationService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	email  EmailSender
	sms    SmsSender
}

func NewNotificationService(logger *gecho.Logger, cfg *structs.Config, email EmailSender, sms SmsSender) *NotificationService {
	return &NotificationService{
		logger: logger,
		cfg:    cfg,
		email:  email,
		sms:    sms,
	}
}

// ConfirmURL is the link the admin follows to confirm an order
func (ns *NotificationService) ConfirmURL(orderId string) string {
	return strings.TrimRight(ns.cfg.Server.PublicURL, "/") + "/api/confirm-order?orderId=" + url.QueryEscape(orderId)
}

func (ns *NotificationService) data(order *tables.Order) notificationData {
	return notificationData{
		Order:        order,
		Product:      order.ProductLabel(),
		ConfirmURL:   ns.ConfirmURL(order.OrderId),
		SupportEmail: ns.cfg.Email.SupportEmail,
	}
}

// NotifyAdmin emails and texts the shop admin about a new order
func (ns *NotificationService) NotifyAdmin(ctx context.Context, order *tables.Order) (structs.NotificationResult, error) {
	var result structs.NotificationResult
	var errs []error
	data := ns.data(order)

	if ns.cfg.Email.AdminAddress == "" {
		ns.logger.Warn("Admin email address not configured, admin email skipped")
	} else {
		subject := fmt.Sprintf("🎉 New Order Received - %s", order.OrderId)
		err := ns.sendEmail(ctx, ns.cfg.Email.AdminAddress, subject, adminEmailTemplate, data)
		result.EmailSent = ns.record("email", err, &errs)
	}

	err := ns.sendSms(ctx, ns.cfg.Sms.AdminNumber, adminSmsTemplate, data)
	result.SmsSent = ns.record("sms", err, &errs)

	return result, errors.Join(errs...)
}

// NotifyCustomerConfirmed tells the customer their order was confirmed. The
// email is only sent when the order carries an address.
func (ns *NotificationService) NotifyCustomerConfirmed(ctx context.Context, order *tables.Order) (structs.NotificationResult, error) {
	var result structs.NotificationResult
	var errs []error
	data := ns.data(order)

	if order.Email != "" {
		subject := fmt.Sprintf("Order Confirmed - %s", order.OrderId)
		err := ns.sendEmail(ctx, order.Email, subject, customerEmailTemplate, data)
		result.EmailSent = ns.record("email", err, &errs)
	}

	err := ns.sendSms(ctx, order.Whatsapp, customerSmsTemplate, data)
	result.SmsSent = ns.record("sms", err, &errs)

	return result, errors.Join(errs...)
}

func (ns *NotificationService) sendEmail(ctx context.Context, to, subject string, tmpl templateExecutor, data notificationData) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render email: %w", err)
	}
	return ns.email.Send(ctx, []string{to}, subject, body.String())
}

func (ns *NotificationService) sendSms(ctx context.Context, recipient string, tmpl templateExecutor, data notificationData) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render sms: %w", err)
	}
	return ns.sms.Send(ctx, recipient, body.String())
}

// record counts the outcome and reports whether the message went out
func (ns *NotificationService) record(channel string, err error, errs *[]error) bool {
	switch {
	case err == nil:
		NotificationsSent.WithLabelValues(channel, "sent").Inc()
		return true
	case errors.Is(err, ErrSenderNotConfigured):
		NotificationsSent.WithLabelValues(channel, "skipped").Inc()
		return false
	default:
		NotificationsSent.WithLabelValues(channel, "failed").Inc()
		ns.logger.Error("Failed to send notification", gecho.Field("channel", channel), gecho.Field("error", err))
		*errs = append(*errs, fmt.Errorf("%s: %w", channel, err))
		return false
	}
}
