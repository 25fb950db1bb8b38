package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Booking BookingConfig
	Relay   RelayConfig
	Static  StaticConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/London"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// BookingConfig bounds every store call made while placing an order.
type BookingConfig struct {
	StoreTimeout time.Duration `envconfig:"BOOKING_STORE_TIMEOUT" default:"5s"`
	ReadRetries  int           `envconfig:"BOOKING_READ_RETRIES" default:"1"`
	RetryBackoff time.Duration `envconfig:"BOOKING_RETRY_BACKOFF" default:"50ms"`
}

// RelayConfig drives the background worker that drains queued notification jobs.
type RelayConfig struct {
	Enabled   bool          `envconfig:"RELAY_ENABLED" default:"true"`
	Interval  time.Duration `envconfig:"RELAY_INTERVAL" default:"2s"`
	BatchSize int           `envconfig:"RELAY_BATCH_SIZE" default:"20"`
}

type StaticConfig struct {
	Dir   string `envconfig:"STATIC_DIR" default:"./static"`
	Route string `envconfig:"STATIC_ROUTE" default:"/static"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required for the %q store driver", c.Store.Driver)
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Booking.StoreTimeout <= 0 {
		return fmt.Errorf("BOOKING_STORE_TIMEOUT must be positive, got %s", c.Booking.StoreTimeout)
	}
	// reads are retried at most once
	if c.Booking.ReadRetries < 0 || c.Booking.ReadRetries > 1 {
		return fmt.Errorf("BOOKING_READ_RETRIES must be 0 or 1, got %d", c.Booking.ReadRetries)
	}
	if c.Relay.Enabled && (c.Relay.Interval <= 0 || c.Relay.BatchSize <= 0) {
		return fmt.Errorf("RELAY_INTERVAL and RELAY_BATCH_SIZE must be positive when the relay is enabled")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver: StoreDriverPostgres,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Booking: BookingConfig{
			StoreTimeout: 2 * time.Second,
			ReadRetries:  1,
			RetryBackoff: 10 * time.Millisecond,
		},
		Relay: RelayConfig{
			Enabled:   false,
			Interval:  100 * time.Millisecond,
			BatchSize: 10,
		},
		Static: StaticConfig{
			Dir:   "./static",
			Route: "/static",
		},
	}
}
