package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be set regardless of storage backend.
var RequiredEnvVars = []string{
	EnvSchemaVersion,
}

// BackendEnvVars lists the variables each storage backend needs.
var BackendEnvVars = map[string][]string{
	BackendPostgres: {EnvDBUser, EnvDBPassword, EnvDBHost, EnvDBPort, EnvDBName},
	BackendS3:       {EnvS3Bucket},
}

// ValidateEnv checks the schema version and that the variables required by
// the selected storage backend are set.
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	backend := strings.ToLower(getEnv(EnvStorageBackend, DefaultBackend))
	required := append(append([]string{}, RequiredEnvVars...), BackendEnvVars[backend]...)

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables for %s backend: %s", backend, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using example values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvDBPassword) == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv(EnvAPIKey) == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if os.Getenv(EnvAPIKey) == "" && strings.HasPrefix(os.Getenv(EnvEnvironment), "prod") {
		warnings = append(warnings, "API_KEY is empty in a production environment - the game API is unauthenticated")
	}

	return warnings, nil
}
