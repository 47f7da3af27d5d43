package config

import "time"

// Storage backends selectable with STORAGE_BACKEND
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendS3       = "s3"
)

// Environment variable names
const (
	EnvSchemaVersion   = "ENV_SCHEMA_VERSION"
	EnvPort            = "PORT"
	EnvAPIKey          = "API_KEY"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
	EnvRateLimit       = "RATE_LIMIT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvLogDir          = "LOG_DIR"
	EnvEnvironment     = "ENVIRONMENT"
	EnvVersion         = "VERSION"
	EnvTickInterval    = "TICK_INTERVAL"
	EnvSaveInterval    = "SAVE_INTERVAL"
	EnvSaveSlot        = "SAVE_SLOT"
	EnvStorageBackend  = "STORAGE_BACKEND"
	EnvSaveDir         = "SAVE_DIR"
	EnvCatalogPath     = "CATALOG_PATH"
	EnvNotificationTTL = "NOTIFICATION_TTL"
	EnvWorkerCount     = "WORKER_COUNT"
	EnvDBUser          = "DB_USER"
	EnvDBPassword      = "DB_PASSWORD"
	EnvDBHost          = "DB_HOST"
	EnvDBPort          = "DB_PORT"
	EnvDBName          = "DB_NAME"
	EnvDBMaxConns      = "DB_MAX_CONNS"
	EnvDBMaxIdleTime   = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxLifetime   = "DB_MAX_CONN_LIFETIME"
	EnvS3Bucket        = "S3_BUCKET"
	EnvS3Prefix        = "S3_PREFIX"
	EnvS3Region        = "S3_REGION"
	EnvS3Endpoint      = "S3_ENDPOINT"
	EnvS3AccessKey     = "S3_ACCESS_KEY"
	EnvS3SecretKey     = "S3_SECRET_KEY"
	EnvS3PathStyle     = "S3_PATH_STYLE"
)

// Defaults
const (
	DefaultPort          = 8080
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultLogDir        = "logs"
	DefaultEnvironment   = "dev"
	DefaultVersion       = "dev"
	DefaultBackend       = BackendFile
	DefaultSaveDir       = "saves"
	DefaultRateLimit     = 6000
	DefaultWorkerCount   = 2
	DefaultDBMaxConns    = 5
	DefaultDBMaxIdleTime = 5 * time.Minute
	DefaultDBMaxLifetime = 30 * time.Minute
	DefaultS3Prefix      = "saves"
	DefaultS3Region      = "us-east-1"
)
