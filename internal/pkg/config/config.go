package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, limits, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Cookie      CookieConfig
	SMS         SMSConfig
	CreditCheck CreditCheckConfig
	Notify      NotifyConfig
	RateLimit   RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret          string        `envconfig:"JWT_SECRET" required:"true"`
	AccessDuration  time.Duration `envconfig:"JWT_ACCESS_DURATION" default:"15m"`
	RefreshDuration time.Duration `envconfig:"JWT_REFRESH_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// SMSConfig configures the pattern-based SMS gateway. An empty APIKey
// disables the gateway and notifications are written to the log instead.
type SMSConfig struct {
	BaseURL string        `envconfig:"SMS_BASE_URL" default:"https://api.sms-gateway.local"`
	APIKey  string        `envconfig:"SMS_API_KEY" default:""`
	Sender  string        `envconfig:"SMS_SENDER" default:""`
	Timeout time.Duration `envconfig:"SMS_TIMEOUT" default:"10s"`
}

// CreditCheckConfig configures the external credit scoring service.
// Enabled=false short-circuits every check to the SKIPPED outcome.
type CreditCheckConfig struct {
	Enabled bool          `envconfig:"CREDIT_CHECK_ENABLED" default:"false"`
	BaseURL string        `envconfig:"CREDIT_CHECK_BASE_URL" default:""`
	APIKey  string        `envconfig:"CREDIT_CHECK_API_KEY" default:""`
	Timeout time.Duration `envconfig:"CREDIT_CHECK_TIMEOUT" default:"15s"`
}

type NotifyConfig struct {
	PollInterval time.Duration `envconfig:"NOTIFY_POLL_INTERVAL" default:"5s"`
	BatchSize    int32         `envconfig:"NOTIFY_BATCH_SIZE" default:"20"`
	MaxAttempts  int32         `envconfig:"NOTIFY_MAX_ATTEMPTS" default:"5"`
}

type RateLimitConfig struct {
	SubmitRate  float64 `envconfig:"RATE_LIMIT_SUBMIT_RATE" default:"1"`
	SubmitBurst int     `envconfig:"RATE_LIMIT_SUBMIT_BURST" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:          "test-secret",
			AccessDuration:  15 * time.Minute,
			RefreshDuration: 168 * time.Hour,
		},
		Notify: NotifyConfig{
			PollInterval: 50 * time.Millisecond,
			BatchSize:    20,
			MaxAttempts:  3,
		},
	}
}
