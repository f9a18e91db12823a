package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// Policy values (commission rates, payout threshold) may additionally come from
// the YAML rule file named by COMMISSION_RULES_FILE.
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Cookie     CookieConfig
	Commission CommissionConfig
	Payout     PayoutConfig
	Settlement SettlementConfig
	RateLimit  RateLimitConfig
	Kafka      KafkaConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
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
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

// Tokens are issued by the storefront's identity service; this service only verifies them.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string `envconfig:"JWT_ISSUER" default:"storefront"`
	Duration string `envconfig:"JWT_DURATION" default:"1h"`
}

type CookieConfig struct {
	Domain   string        `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool          `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string        `envconfig:"COOKIE_SAMESITE" default:"Lax"`
	MaxAge   time.Duration `envconfig:"REFERRAL_COOKIE_MAX_AGE" default:"168h"`
}

// Rates are expressed in basis points (1% = 100).
type CommissionConfig struct {
	AffiliateRateBps int64  `envconfig:"COMMISSION_AFFILIATE_RATE_BPS" default:"500"`
	AgentRateBps     int64  `envconfig:"COMMISSION_AGENT_RATE_BPS" default:"1000"`
	RulesFile        string `envconfig:"COMMISSION_RULES_FILE" default:""`
}

type PayoutConfig struct {
	Threshold     int64         `envconfig:"PAYOUT_THRESHOLD" default:"200000"`
	Currency      string        `envconfig:"PAYOUT_CURRENCY" default:"JPY"`
	ResubmitAfter time.Duration `envconfig:"PAYOUT_RESUBMIT_AFTER" default:"15m"`
}

type SettlementConfig struct {
	URL             string        `envconfig:"SETTLEMENT_URL" default:""`
	APIKey          string        `envconfig:"SETTLEMENT_API_KEY" default:""`
	Timeout         time.Duration `envconfig:"SETTLEMENT_TIMEOUT" default:"10s"`
	MaxRetries      int           `envconfig:"SETTLEMENT_MAX_RETRIES" default:"3"`
	InitialInterval time.Duration `envconfig:"SETTLEMENT_RETRY_INITIAL_INTERVAL" default:"500ms"`
	MaxInterval     time.Duration `envconfig:"SETTLEMENT_RETRY_MAX_INTERVAL" default:"5s"`
}

// An empty RedisAddr falls back to a process-local limiter (single instance only).
type RateLimitConfig struct {
	RedisAddr       string        `envconfig:"REDIS_ADDR" default:""`
	ClicksPerWindow int           `envconfig:"RATE_LIMIT_CLICKS" default:"60"`
	Window          time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	Burst           int           `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS" default:""`
	Topic   string   `envconfig:"KAFKA_REFERRAL_TOPIC" default:"partner.referral-events"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not loaded", "error", err.Error())
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}

	if cfg.Commission.RulesFile != "" {
		rules, err := LoadRuleFile(cfg.Commission.RulesFile)
		if err != nil {
			return Config{}, err
		}
		rules.ApplyTo(&cfg)
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
			TimeZone: "Asia/Tokyo",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-partner-service",
			Issuer:   "storefront",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
			MaxAge:   168 * time.Hour,
		},
		Commission: CommissionConfig{
			AffiliateRateBps: 500,
			AgentRateBps:     1000,
		},
		Payout: PayoutConfig{
			Threshold: 200000,
			Currency:  "JPY",
		},
		Settlement: SettlementConfig{
			Timeout:         time.Second,
			MaxRetries:      1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
		},
		RateLimit: RateLimitConfig{
			ClicksPerWindow: 1000,
			Window:          time.Minute,
			Burst:           1000,
		},
		Kafka: KafkaConfig{
			Topic: "partner.referral-events",
		},
	}
}
