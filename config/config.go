package config

import (
	"photomagnet_server/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = Load()
	})
	return configInstance
}

// Load reads the configuration from the environment without caching it.
func Load() *structs.Config {
	return &structs.Config{
		Server: &structs.ServerConfig{
			AppName:        getEnvAsString("APP_NAME", "PhotoMagnet_no_env"),
			Environment:    getEnvAsString("APP_ENV", "development"),
			Port:           getEnvAsString("APP_PORT", ":8082"),
			PublicURL:      getEnvAsString("PUBLIC_URL", "http://localhost:8082"),
			FrontendURL:    getEnvAsString("FRONTEND_URL", "http://localhost:3000"),
			ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
			WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 30*time.Second),
			IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
			MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			MaxBodyBytes:   int64(getEnvAsInt("SERVER_MAX_BODY_BYTES", 10<<20)),
			TrustedProxies: getEnvAsSlice("TRUSTED_PROXIES", nil),
		},
		Cors: &structs.CorsConfig{
			AllowOrigins:     getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),
			AllowMethods:     getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowHeaders:     getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
			ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length", "X-RateLimit-Remaining"}),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 300),
		},
		Database: &structs.DatabaseConfig{
			Driver:       getEnvAsString("DB_DRIVER", "postgres"),
			Host:         getEnvAsString("DB_HOST", "localhost"),
			Port:         getEnvAsInt("DB_PORT", 5432),
			User:         getEnvAsString("DB_USER", "postgres"),
			Password:     getEnvAsString("DB_PASSWORD", "password"),
			Name:         getEnvAsString("DB_NAME", "photomagnet_db"),
			SSLMode:      getEnvAsString("DB_SSLMODE", "disable"),
			MaxConns:     getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:     getEnvAsInt("DB_MIN_CONNS", 2),
			MaxLifetime:  getEnvAsTimeDuration("DB_MAX_LIFETIME", 30*time.Minute),
			MaxIdleTime:  getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
			ReadTimeout:  getEnvAsTimeDuration("DB_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getEnvAsTimeDuration("DB_WRITE_TIMEOUT", 5*time.Second),
			EnableRetry:  getEnvAsBool("DB_RETRY_ENABLED", false),
		},
		Auth: &structs.AuthConfig{
			AccessTokenSecret: getEnvAsString("AUTH_ACCESS_TOKEN_SECRET", "default_access_secret"),
			AccessTokenExpiry: getEnvAsTimeDuration("AUTH_ACCESS_TOKEN_EXPIRY", 7*24*time.Hour),
		},
		Setup: &structs.SetupConfig{
			AdminEmail:    getEnvAsString("ADMIN_EMAIL", ""),
			AdminPassword: getEnvAsString("ADMIN_PASSWORD", ""),
			SetupKey:      getEnvAsString("SETUP_KEY", "SETUP_ADMIN_2024"),
			ResetStockKey: getEnvAsString("RESET_STOCK_KEY", "RESET_STOCK_2024"),
			DefaultStock:  getEnvAsInt("DEFAULT_STOCK_QUANTITY", 100),
		},
		Payment: &structs.PaymentConfig{
			AppID:      getEnvAsString("CASHFREE_APP_ID", ""),
			SecretKey:  getEnvAsString("CASHFREE_SECRET_KEY", ""),
			Env:        getEnvAsString("CASHFREE_ENV", "sandbox"),
			APIVersion: getEnvAsString("CASHFREE_API_VERSION", "2023-08-01"),
			ReturnURL:  getEnvAsString("PAYMENT_RETURN_URL", "http://localhost:3000/payment-success?order_id={order_id}"),
			MockMode:   getEnvAsBool("PAYMENT_MOCK_MODE", false),
			Timeout:    getEnvAsTimeDuration("PAYMENT_TIMEOUT", 15*time.Second),
		},
		Email: &structs.EmailConfig{
			ApiKey:       getEnvAsString("RESEND_API_KEY", ""),
			From:         getEnvAsString("EMAIL_FROM", "Photo Magnet Celebrations <orders@photomagnetcelebrations.com>"),
			AdminAddress: getEnvAsString("ADMIN_NOTIFY_EMAIL", ""),
			SupportEmail: getEnvAsString("SUPPORT_EMAIL", "orders@photomagnetcelebrations.com"),
		},
		Sms: &structs.SmsConfig{
			ApiKey:      getEnvAsString("BREVO_API_KEY", ""),
			URL:         getEnvAsString("BREVO_SMS_URL", "https://api.brevo.com/v3/transactionalSMS/sms"),
			Sender:      getEnvAsString("SMS_SENDER", "PhotoMagnet"),
			AdminNumber: getEnvAsString("ADMIN_PHONE_NUMBER", ""),
			Timeout:     getEnvAsTimeDuration("SMS_TIMEOUT", 10*time.Second),
		},
		Cache: &structs.CacheConfig{
			Address:         getEnvAsString("REDIS_ADDR", "localhost:6379"),
			Username:        getEnvAsString("REDIS_USERNAME", ""),
			Password:        getEnvAsString("REDIS_PASSWORD", ""),
			DB:              getEnvAsInt("REDIS_DB", 0),
			PoolSize:        getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns:    getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
			MaxIdleConns:    getEnvAsInt("REDIS_MAX_IDLE_CONNS", 5),
			PoolTimeout:     getEnvAsTimeDuration("REDIS_POOL_TIMEOUT", 4*time.Second),
			IdleTimeout:     getEnvAsTimeDuration("REDIS_IDLE_TIMEOUT", 5*time.Minute),
			DialTimeout:     getEnvAsTimeDuration("REDIS_DIAL_TIMEOUT", 2*time.Second),
			ReadTimeout:     getEnvAsTimeDuration("REDIS_READ_TIMEOUT", time.Second),
			WriteTimeout:    getEnvAsTimeDuration("REDIS_WRITE_TIMEOUT", time.Second),
			MaxRetries:      getEnvAsInt("REDIS_MAX_RETRIES", 0),
			MinRetryBackoff: getEnvAsTimeDuration("REDIS_MIN_RETRY_BACKOFF", 8*time.Millisecond),
			MaxRetryBackoff: getEnvAsTimeDuration("REDIS_MAX_RETRY_BACKOFF", 512*time.Millisecond),
		},
		RateLimit: &structs.RateLimitConfig{
			Enabled:       getEnvAsBool("RATE_LIMIT_ENABLED", false),
			AuthLimit:     getEnvAsInt("RATE_LIMIT_AUTH_LIMIT", 5),
			AuthWindow:    getEnvAsTimeDuration("RATE_LIMIT_AUTH_WINDOW", time.Minute),
			AdminLimit:    getEnvAsInt("RATE_LIMIT_ADMIN_LIMIT", 120),
			AdminWindow:   getEnvAsTimeDuration("RATE_LIMIT_ADMIN_WINDOW", time.Minute),
			GeneralLimit:  getEnvAsInt("RATE_LIMIT_GENERAL_LIMIT", 60),
			GeneralWindow: getEnvAsTimeDuration("RATE_LIMIT_GENERAL_WINDOW", time.Minute),
		},
		Events: &structs.EventsConfig{
			Brokers:    getEnvAsSlice("KAFKA_BROKERS", nil),
			OrderTopic: getEnvAsString("KAFKA_ORDER_TOPIC", "photomagnet.orders"),
			ClientID:   getEnvAsString("KAFKA_CLIENT_ID", "photomagnet-server"),
		},
	}
}

func GetLogLevel() string {
	if IsProduction() {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.IsProduction()
}
