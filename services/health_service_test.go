package services

import (
	"testing"

	"photomagnet_server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseHealthWithMemoryDriver(t *testing.T) {
	hs := NewHealthService(testLogger(), testConfig(), nil)

	status, err := hs.GetDatabaseHealthStatus(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "memory", status.Driver)
	assert.True(t, status.Connected)
}

func TestIntegrationStatus(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = &structs.RateLimitConfig{Enabled: true}
	cfg.Email.ApiKey = "re_test"
	cfg.Events.Brokers = []string{"kafka:9092"}

	status := NewHealthService(testLogger(), cfg, nil).GetIntegrationStatus()
	assert.Equal(t, "sandbox", status.Payments)
	assert.True(t, status.Email)
	assert.True(t, status.AdminEmail)
	assert.False(t, status.Sms)
	assert.False(t, status.AdminSms)
	assert.True(t, status.Events)
	assert.True(t, status.RateLimiter)
}

func TestIntegrationStatusPaymentModes(t *testing.T) {
	tests := []struct {
		name string
		edit func(cfg *structs.Config)
		want string
	}{
		{"live", func(cfg *structs.Config) { cfg.Payment.Env = "production" }, "live"},
		{"mock", func(cfg *structs.Config) {
			cfg.Payment.AppID = ""
			cfg.Payment.MockMode = true
		}, "mock"},
		{"mock ignored in production", func(cfg *structs.Config) {
			cfg.Payment.AppID = ""
			cfg.Payment.MockMode = true
			cfg.Server.Environment = "production"
		}, "disabled"},
		{"missing secret", func(cfg *structs.Config) { cfg.Payment.SecretKey = "" }, "disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.RateLimit = &structs.RateLimitConfig{}
			tt.edit(cfg)

			assert.Equal(t, tt.want, NewHealthService(testLogger(), cfg, nil).GetIntegrationStatus().Payments)
		})
	}
}
