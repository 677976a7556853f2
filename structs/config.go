package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Auth      *AuthConfig
	Setup     *SetupConfig
	Payment   *PaymentConfig
	Email     *EmailConfig
	Sms       *SmsConfig
	Cache     *CacheConfig
	RateLimit *RateLimitConfig
	Events    *EventsConfig
}

type ServerConfig struct {
	AppName        string        // PhotoMagnet
	Environment    string        // development, production
	Port           string        // :8082
	PublicURL      string        // base URL of this API, used in emailed links
	FrontendURL    string        // storefront/admin dashboard origin
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
	MaxBodyBytes   int64
	TrustedProxies []string // IPs or CIDRs allowed to set X-Forwarded-For
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type DatabaseConfig struct {
	Driver       string // postgres, memory
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration
	MaxIdleTime  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	EnableRetry  bool
}

type AuthConfig struct {
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
}

// SetupConfig holds the bootstrap admin credentials and the secrets gating
// the destructive setup endpoints.
type SetupConfig struct {
	AdminEmail    string
	AdminPassword string
	SetupKey      string
	ResetStockKey string
	DefaultStock  int
}

type PaymentConfig struct {
	AppID      string
	SecretKey  string
	Env        string // sandbox, production
	APIVersion string
	ReturnURL  string
	MockMode   bool
	Timeout    time.Duration
}

type EmailConfig struct {
	ApiKey       string
	From         string
	AdminAddress string
	SupportEmail string
}

type SmsConfig struct {
	ApiKey      string
	URL         string
	Sender      string
	AdminNumber string
	Timeout     time.Duration
}

type CacheConfig struct {
	Address         string
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	MaxIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
}

type RateLimitConfig struct {
	Enabled       bool
	AuthLimit     int
	AuthWindow    time.Duration
	AdminLimit    int
	AdminWindow   time.Duration
	GeneralLimit  int
	GeneralWindow time.Duration
}

type EventsConfig struct {
	Brokers    []string
	OrderTopic string
	ClientID   string
}

func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}
