package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"

	ImageStoreCloudinary = "cloudinary"
	ImageStoreLocal      = "local"
)

// Config is read once at startup and passed to whatever needs it.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Images   ImageConfig
	Logger   LoggerConfig
	Jobs     JobsConfig
}

type AppConfig struct {
	Env         string
	Port        string
	CorsOrigins []string
	SeedData    bool
}

type DatabaseConfig struct {
	Driver   string
	URL      string
	LogLevel string
}

type ImageConfig struct {
	Store         string
	CloudName     string
	APIKey        string
	APISecret     string
	UploadDir     string
	PublicBaseURL string
	MaxBytes      int64
}

type LoggerConfig struct {
	Mode     string
	Filename string
}

type JobsConfig struct {
	// OrphanSweepSchedule is a cron spec; empty disables the sweep.
	OrphanSweepSchedule string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	dbURL := envOrDefault("DATABASE_URL", envOrDefault("MYSQL_URL", ""))
	driver := strings.ToLower(envOrDefault("DB_DRIVER", ""))
	if driver == "" {
		driver = detectDriver(dbURL)
	}

	maxBytes, err := cast.ToInt64E(envOrDefault("MAX_UPLOAD_BYTES", "5242880"))
	if err != nil {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES: %w", err)
	}

	sweep := envOrDefault("ORPHAN_SWEEP_SCHEDULE", "@daily")
	if strings.EqualFold(sweep, "off") {
		sweep = ""
	}

	cfg := &Config{
		App: AppConfig{
			Env:         envOrDefault("APP_ENV", "development"),
			Port:        envOrDefault("PORT", "8080"),
			CorsOrigins: parseCorsOrigins(os.Getenv("CORS_ORIGINS")),
			SeedData:    cast.ToBool(envOrDefault("SEED_DATA", "false")),
		},
		Database: DatabaseConfig{
			Driver:   driver,
			URL:      dbURL,
			LogLevel: envOrDefault("DB_LOG_LEVEL", "warn"),
		},
		Images: ImageConfig{
			Store:         strings.ToLower(envOrDefault("IMAGE_STORE", ImageStoreCloudinary)),
			CloudName:     envOrDefault("CLOUDINARY_CLOUD_NAME", envOrDefault("NEXT_PUBLIC_CLOUDINARY_CLOUD_NAME", "")),
			APIKey:        envOrDefault("CLOUDINARY_API_KEY", ""),
			APISecret:     envOrDefault("CLOUDINARY_API_SECRET", ""),
			UploadDir:     envOrDefault("UPLOAD_DIR", "uploads"),
			PublicBaseURL: envOrDefault("PUBLIC_BASE_URL", ""),
			MaxBytes:      maxBytes,
		},
		Logger: LoggerConfig{
			Mode:     envOrDefault("LOG_MODE", "development"),
			Filename: envOrDefault("LOG_FILE", ""),
		},
		Jobs: JobsConfig{OrphanSweepSchedule: sweep},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects a configuration the server cannot run with, so missing
// credentials stop startup instead of failing individual requests.
func (c *Config) Validate() error {
	var problems []string

	if c.Database.URL == "" {
		problems = append(problems, "DATABASE_URL is not set")
	}
	switch c.Database.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		problems = append(problems, fmt.Sprintf("unsupported DB_DRIVER %q", c.Database.Driver))
	}

	switch c.Images.Store {
	case ImageStoreCloudinary:
		if c.Images.CloudName == "" {
			problems = append(problems, "CLOUDINARY_CLOUD_NAME is not set")
		}
		if c.Images.APIKey == "" {
			problems = append(problems, "CLOUDINARY_API_KEY is not set")
		}
		if c.Images.APISecret == "" {
			problems = append(problems, "CLOUDINARY_API_SECRET is not set")
		}
	case ImageStoreLocal:
		if c.Images.UploadDir == "" {
			problems = append(problems, "UPLOAD_DIR is empty")
		}
	default:
		problems = append(problems, fmt.Sprintf("unsupported IMAGE_STORE %q", c.Images.Store))
	}

	if c.Images.MaxBytes <= 0 {
		problems = append(problems, "MAX_UPLOAD_BYTES must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func detectDriver(url string) string {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(url, "mysql://"):
		return DriverMySQL
	case strings.HasPrefix(url, "sqlite://"), strings.HasPrefix(url, "file:"), strings.HasSuffix(url, ".db"):
		return DriverSQLite
	case strings.Contains(url, "@tcp("):
		return DriverMySQL
	}
	return DriverPostgres
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
