package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CacheBackendMemory  = "memory"
	CacheBackendMongoDB = "mongodb"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	API      APIConfig
	Cache    CacheConfig
	WhatsApp WhatsAppConfig
	Schedule ScheduleConfig
	MongoDB  MongoDBConfig
	Log      LogConfig
}

// LogConfig selects the log level and encoder.
type LogConfig struct {
	Level  string
	Format string
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// APIConfig points the client at the cattle platform REST backend.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CacheConfig controls the weight-estimation cache.
type CacheConfig struct {
	Backend    string
	TTLMinutes int
}

// WhatsAppConfig contains credentials for the Meta WhatsApp Cloud API. Alert
// forwarding is disabled when AccessToken is empty.
type WhatsAppConfig struct {
	AccessToken   string
	PhoneNumberID string
	BaseURL       string
	APIVersion    string
	AlertsTo      string
}

// Enabled reports whether enough credentials are present to send messages.
func (c WhatsAppConfig) Enabled() bool {
	return c.AccessToken != "" && c.PhoneNumberID != "" && c.AlertsTo != ""
}

// ScheduleConfig holds cron expressions for background jobs.
type ScheduleConfig struct {
	CacheWarmCron string
	AlertsCron    string
	Timezone      string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are fine when configuration comes from the environment.
		_ = godotenv.Load()
	}

	timeout, err := getenvDuration("API_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	ttl, err := getenvInt("ESTIMATIONS_CACHE_TTL_MINUTES", 30)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		API: APIConfig{
			BaseURL: getenvWithDefault("API_BASE_URL", "http://localhost:8000"),
			Timeout: timeout,
		},
		Cache: CacheConfig{
			Backend:    strings.ToLower(getenvWithDefault("CACHE_BACKEND", CacheBackendMemory)),
			TTLMinutes: ttl,
		},
		WhatsApp: WhatsAppConfig{
			AccessToken:   os.Getenv("WHATSAPP_TOKEN"),
			PhoneNumberID: os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
			BaseURL:       getenvWithDefault("WHATSAPP_BASE_URL", "https://graph.facebook.com"),
			APIVersion:    getenvWithDefault("WHATSAPP_API_VERSION", "v20.0"),
			AlertsTo:      os.Getenv("WHATSAPP_ALERTS_TO"),
		},
		Schedule: ScheduleConfig{
			CacheWarmCron: getenvWithDefault("CACHE_WARM_CRON_SCHEDULE", "*/30 * * * *"),
			AlertsCron:    getenvWithDefault("ALERTS_CRON_SCHEDULE", "*/5 * * * *"),
			Timezone:      getenvWithDefault("TIMEZONE", "America/La_Paz"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "cattle_admin"),
		},
		Log: LogConfig{
			Level:  getenvWithDefault("LOG_LEVEL", "info"),
			Format: getenvWithDefault("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.API.BaseURL == "" {
		return errors.New("API_BASE_URL must not be empty")
	}

	if c.API.Timeout <= 0 {
		return errors.New("API_TIMEOUT must be positive")
	}

	if c.Cache.TTLMinutes <= 0 {
		return errors.New("ESTIMATIONS_CACHE_TTL_MINUTES must be positive")
	}

	switch c.Cache.Backend {
	case CacheBackendMemory:
	case CacheBackendMongoDB:
		if c.MongoDB.URI == "" {
			return errors.New("MONGODB_URI must be provided when CACHE_BACKEND=mongodb")
		}
		if c.MongoDB.DBName == "" {
			return errors.New("MONGODB_DB_NAME must not be empty")
		}
	default:
		return fmt.Errorf("unsupported CACHE_BACKEND %q", c.Cache.Backend)
	}

	if c.WhatsApp.AccessToken != "" {
		if c.WhatsApp.PhoneNumberID == "" {
			return errors.New("WHATSAPP_PHONE_NUMBER_ID must be provided with WHATSAPP_TOKEN")
		}
		if c.WhatsApp.AlertsTo == "" {
			return errors.New("WHATSAPP_ALERTS_TO must be provided with WHATSAPP_TOKEN")
		}
	}

	if c.Schedule.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getenvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
