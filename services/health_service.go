package services

import (
	"context"
	"photomagnet_server/database"
	"photomagnet_server/structs"
	"runtime"
	"time"

	"github.com/MonkyMars/gecho"
)

var uptimeStart time.Time

func init() {
	uptimeStart = time.Now()
}

type serverHealthStatus struct {
	Uptime       float64   `json:"uptime"`        // in seconds
	CurrentTime  time.Time `json:"current_time"`  // server current time
	ServiceAlive bool      `json:"service_alive"` // always true if service is running
	RamStats     *RamStats `json:"ram_stats"`
}

type RamStats struct {
	TotalMB     uint64 `json:"total_mb"`
	UsedMB      uint64 `json:"used_mb"`
	FreeMB      uint64 `json:"free_mb"`
	UsedPercent uint64 `json:"used_percent"`
}

type databaseHealthStatus struct {
	Driver         string    `json:"driver"`
	Connected      bool      `json:"connected"`
	LastChecked    time.Time `json:"last_checked"`
	ResponseTimeMs int64     `json:"response_time_ms"`
	OpenConns      int       `json:"open_conns,omitempty"`
	InUse          int       `json:"in_use,omitempty"`
}

// integrationStatus reports which outbound integrations have credentials.
// An unconfigured integration is skipped at runtime rather than failing.
type integrationStatus struct {
	Payments    string `json:"payments"` // live, sandbox, mock or disabled
	Email       bool   `json:"email"`
	AdminEmail  bool   `json:"admin_email"`
	Sms         bool   `json:"sms"`
	AdminSms    bool   `json:"admin_sms"`
	Events      bool   `json:"events"`
	RateLimiter bool   `json:"rate_limiter"`
}

type HealthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB // nil with the memory driver
}

func NewHealthService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *HealthService {
	return &HealthService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

func getRamStats() *RamStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	totalMB := m.Sys / 1024 / 1024
	usedMB := m.Alloc / 1024 / 1024
	freeMB := totalMB - usedMB
	usedPercent := uint64(0)
	if totalMB > 0 {
		usedPercent = (usedMB * 100) / totalMB
	}

	return &RamStats{
		TotalMB:     totalMB,
		UsedMB:      usedMB,
		FreeMB:      freeMB,
		UsedPercent: usedPercent,
	}
}

func (hs *HealthService) GetServerHealthStatus() serverHealthStatus {
	return serverHealthStatus{
		Uptime:       time.Since(uptimeStart).Seconds(),
		CurrentTime:  time.Now(),
		ServiceAlive: true,
		RamStats:     getRamStats(),
	}
}

func (hs *HealthService) GetDatabaseHealthStatus(ctx context.Context) (databaseHealthStatus, error) {
	if hs.db == nil {
		return databaseHealthStatus{
			Driver:      "memory",
			Connected:   true,
			LastChecked: time.Now(),
		}, nil
	}

	start := time.Now()
	err := hs.db.Health(ctx)
	stats := hs.db.GetStats()

	dbStatus := databaseHealthStatus{
		Driver:         "postgres",
		Connected:      err == nil,
		LastChecked:    time.Now(),
		ResponseTimeMs: time.Since(start).Milliseconds(),
		OpenConns:      stats.OpenConnections,
		InUse:          stats.InUse,
	}

	if err != nil {
		hs.logger.Error("Database health check failed", gecho.Field("error", err))
	}

	return dbStatus, err
}

func (hs *HealthService) GetIntegrationStatus() integrationStatus {
	payments := "disabled"
	switch {
	case hs.cfg.Payment.AppID != "" && hs.cfg.Payment.SecretKey != "":
		payments = hs.cfg.Payment.Env
		if payments == "production" {
			payments = "live"
		}
	case hs.cfg.Payment.MockMode && !hs.cfg.Server.IsProduction():
		payments = "mock"
	}

	return integrationStatus{
		Payments:    payments,
		Email:       hs.cfg.Email.ApiKey != "",
		AdminEmail:  hs.cfg.Email.ApiKey != "" && hs.cfg.Email.AdminAddress != "",
		Sms:         hs.cfg.Sms.ApiKey != "",
		AdminSms:    hs.cfg.Sms.ApiKey != "" && hs.cfg.Sms.AdminNumber != "",
		Events:      len(hs.cfg.Events.Brokers) > 0,
		RateLimiter: hs.cfg.RateLimit.Enabled,
	}
}
