package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the media pipeline.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"storehub-media"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel        string        `env:"MEDIA_LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	MetricsPort     int           `env:"MEDIA_METRICS_PORT" envDefault:"9290"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Database (required, no default)
	DatabaseURL string `env:"DB_POSTGRESQL_DSN,notEmpty"`

	// Database Connection Pool
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// Storage Backend Selection
	StorageBackend string `env:"MEDIA_STORAGE_BACKEND" envDefault:"s3"` // Options: "s3", "minio" or "local"

	// S3 Storage Configuration
	S3Endpoint       string `env:"MEDIA_S3_ENDPOINT"`
	S3PublicEndpoint string `env:"MEDIA_S3_PUBLIC_ENDPOINT"`
	S3Region         string `env:"MEDIA_S3_REGION" envDefault:"us-west-2"`
	S3Bucket         string `env:"MEDIA_S3_BUCKET"`
	S3AccessKeyID    string `env:"MEDIA_S3_ACCESS_KEY_ID"`
	S3SecretKey      string `env:"MEDIA_S3_SECRET_ACCESS_KEY"`
	S3UsePathStyle   bool   `env:"MEDIA_S3_USE_PATH_STYLE" envDefault:"true"`

	// MinIO Storage Configuration
	MinIOEndpoint  string `env:"MEDIA_MINIO_ENDPOINT" envDefault:"localhost:9000"`
	MinIOAccessKey string `env:"MEDIA_MINIO_ACCESS_KEY"`
	MinIOSecretKey string `env:"MEDIA_MINIO_SECRET_KEY"`
	MinIOBucket    string `env:"MEDIA_MINIO_BUCKET" envDefault:"storehub-media"`
	MinIOUseSSL    bool   `env:"MEDIA_MINIO_USE_SSL" envDefault:"false"`
	MinIOBaseURL   string `env:"MEDIA_MINIO_BASE_URL"`

	// Local Storage Configuration
	LocalStoragePath    string `env:"MEDIA_LOCAL_STORAGE_PATH"`
	LocalStorageBaseURL string `env:"MEDIA_LOCAL_STORAGE_BASE_URL"`

	// Queue Backend Selection
	QueueBackend  string `env:"MEDIA_QUEUE_BACKEND" envDefault:"memory"` // Options: "memory" or "redis"
	RedisAddr     string `env:"MEDIA_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"MEDIA_REDIS_PASSWORD"`
	RedisDB       int    `env:"MEDIA_REDIS_DB" envDefault:"0"`
	RedisKey      string `env:"MEDIA_REDIS_KEY" envDefault:"storehub:media:jobs"`

	// Worker Pool
	WorkerCount       int           `env:"MEDIA_WORKER_COUNT" envDefault:"5"`
	MediaStoreTimeout time.Duration `env:"MEDIA_STORE_TIMEOUT" envDefault:"30s"`

	// Media Constraints
	MaxImageBytes   int64 `env:"MEDIA_MAX_IMAGE_BYTES" envDefault:"5242880"`
	MaxVideoBytes   int64 `env:"MEDIA_MAX_VIDEO_BYTES" envDefault:"104857600"`
	MaxGalleryFiles int   `env:"MEDIA_MAX_GALLERY_FILES" envDefault:"8"`

	// Placeholder returned to callers while a job is in flight
	PlaceholderURL string `env:"MEDIA_PLACEHOLDER_URL" envDefault:"/static/media/processing.webp"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.S3Bucket = strings.TrimSpace(cfg.S3Bucket)
	cfg.S3AccessKeyID = strings.TrimSpace(cfg.S3AccessKeyID)
	cfg.S3SecretKey = strings.TrimSpace(cfg.S3SecretKey)
	cfg.S3Endpoint = strings.TrimSpace(cfg.S3Endpoint)
	cfg.S3PublicEndpoint = strings.TrimSpace(cfg.S3PublicEndpoint)

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 5
	}
	if cfg.MaxImageBytes <= 0 {
		cfg.MaxImageBytes = 5 * 1024 * 1024
	}
	if cfg.MaxVideoBytes <= 0 {
		cfg.MaxVideoBytes = 100 * 1024 * 1024
	}
	if cfg.MaxGalleryFiles <= 0 {
		cfg.MaxGalleryFiles = 8
	}
	return cfg, nil
}

// IsLocalStorage returns true if the local storage backend is configured.
func (c *Config) IsLocalStorage() bool {
	return strings.ToLower(strings.TrimSpace(c.StorageBackend)) == "local"
}

// IsMinIOStorage returns true if the MinIO storage backend is configured.
func (c *Config) IsMinIOStorage() bool {
	return strings.ToLower(strings.TrimSpace(c.StorageBackend)) == "minio"
}

// IsS3Storage returns true if the S3 storage backend is configured.
func (c *Config) IsS3Storage() bool {
	backend := strings.ToLower(strings.TrimSpace(c.StorageBackend))
	return backend == "" || backend == "s3"
}

// IsRedisQueue returns true if the durable redis queue backend is configured.
func (c *Config) IsRedisQueue() bool {
	return strings.ToLower(strings.TrimSpace(c.QueueBackend)) == "redis"
}
