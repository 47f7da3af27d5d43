package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/GemClicker_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port           int `validate:"gte=1,lte=65535"`
	APIKey         string
	TrustedProxies []string `validate:"dive,ip"`
	RateLimit      int      `validate:"gte=0"`

	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string `validate:"required"`
	Environment string `validate:"required"`
	Version     string

	TickInterval    time.Duration `validate:"gte=10ms"`
	SaveInterval    time.Duration `validate:"gte=100ms"`
	NotificationTTL time.Duration `validate:"gt=0"`
	SaveSlot        string        `validate:"required,max=64,excludesall=/\\.:"`
	StorageBackend  string        `validate:"oneof=file memory postgres s3"`
	SaveDir         string        `validate:"required_if=StorageBackend file"`
	CatalogPath     string
	WorkerCount     int `validate:"gte=1,lte=64"`

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int           `validate:"gte=1"`
	DBMaxConnIdleTime time.Duration `validate:"gt=0"`
	DBMaxConnLifetime time.Duration `validate:"gt=0"`

	S3Bucket    string `validate:"required_if=StorageBackend s3"`
	S3Prefix    string
	S3Region    string
	S3Endpoint  string `validate:"omitempty,url"`
	S3AccessKey string
	S3SecretKey string
	S3PathStyle bool
}

// Load loads the configuration from environment variables. A .env file in the
// working directory is read first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),
		RateLimit:      getEnvAsInt(EnvRateLimit, DefaultRateLimit),

		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:      getEnv(EnvLogDir, DefaultLogDir),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		Version:     getEnv(EnvVersion, DefaultVersion),

		TickInterval:    getEnvAsDuration(EnvTickInterval, domain.DefaultTickInterval),
		SaveInterval:    getEnvAsDuration(EnvSaveInterval, domain.DefaultSaveInterval),
		NotificationTTL: getEnvAsDuration(EnvNotificationTTL, domain.DefaultNotificationTTL),
		SaveSlot:        getEnv(EnvSaveSlot, domain.DefaultSaveSlot),
		StorageBackend:  strings.ToLower(getEnv(EnvStorageBackend, DefaultBackend)),
		SaveDir:         getEnv(EnvSaveDir, DefaultSaveDir),
		CatalogPath:     getEnv(EnvCatalogPath, ""),
		WorkerCount:     getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),

		DBUser:            getEnv(EnvDBUser, "postgres"),
		DBPassword:        getEnv(EnvDBPassword, "postgres"),
		DBHost:            getEnv(EnvDBHost, "localhost"),
		DBPort:            getEnv(EnvDBPort, "5432"),
		DBName:            getEnv(EnvDBName, "gemclicker"),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxIdleTime, DefaultDBMaxIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxLifetime, DefaultDBMaxLifetime),

		S3Bucket:    getEnv(EnvS3Bucket, ""),
		S3Prefix:    getEnv(EnvS3Prefix, DefaultS3Prefix),
		S3Region:    getEnv(EnvS3Region, DefaultS3Region),
		S3Endpoint:  getEnv(EnvS3Endpoint, ""),
		S3AccessKey: getEnv(EnvS3AccessKey, ""),
		S3SecretKey: getEnv(EnvS3SecretKey, ""),
		S3PathStyle: getEnvAsBool(EnvS3PathStyle, false),
	}

	portStr := getEnv(EnvPort, strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and reports every violation at once.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), redact(fe)))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func redact(fe validator.FieldError) interface{} {
	switch fe.Field() {
	case "APIKey", "DBPassword", "S3SecretKey", "S3AccessKey":
		return "[REDACTED]"
	}
	return fe.Value()
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when it
// is unset or malformed.
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration ("100ms", "3s"), falling back to the
// default when it is unset or malformed.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty entries.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
