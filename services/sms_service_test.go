package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmsService_Send(t *testing.T) {
	var got brevoSmsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "brevo-key", r.Header.Get("api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":1}`))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.Sms.ApiKey = "brevo-key"
	cfg.Sms.URL = srv.URL

	err := NewSmsService(testLogger(), cfg).Send(context.Background(), "+919876543210", "hello")
	require.NoError(t, err)

	assert.Equal(t, brevoSmsRequest{
		Sender:    "PhotoMagnet",
		Recipient: "+919876543210",
		Content:   "hello",
		Type:      "transactional",
	}, got)
}

func TestSmsService_SendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"invalid_parameter"}`))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.Sms.ApiKey = "brevo-key"
	cfg.Sms.URL = srv.URL

	err := NewSmsService(testLogger(), cfg).Send(context.Background(), "+919876543210", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "invalid_parameter")
}

func TestSmsService_NotConfigured(t *testing.T) {
	err := NewSmsService(testLogger(), testConfig()).Send(context.Background(), "+919876543210", "hello")
	assert.ErrorIs(t, err, ErrSenderNotConfigured)
}

func TestEmailService_NotConfiguredHTMLBody(t *testing.T) {
	err := NewEmailService(testLogger(), testConfig()).Send(context.Background(), []string{"a@example.com"}, "s", "<p>x</p>")
	assert.ErrorIs(t, err, ErrSenderNotConfigured)
}
