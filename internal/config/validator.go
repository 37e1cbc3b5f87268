package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this binary understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must always be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
}

// BackendEnvVars lists the variables each store backend requires
var BackendEnvVars = map[string][]string{
	StoreBackendFile:     {"SAVE_DIR"},
	StoreBackendPostgres: {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
	StoreBackendRedis:    {"REDIS_ADDR"},
}

// ValidateEnv checks the schema version and the variables required by the
// selected STORE_BACKEND.
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	backend := strings.ToLower(getEnv("STORE_BACKEND", StoreBackendFile))
	backendVars, ok := BackendEnvVars[backend]
	if !ok {
		return fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}

	var missing []string
	for _, envVar := range append(append([]string{}, RequiredEnvVars...), backendVars...) {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports risky but legal values
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if os.Getenv("API_KEY") == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if strings.HasPrefix(os.Getenv("AMQP_URL"), "amqp://guest:guest@") {
		warnings = append(warnings, "AMQP_URL uses the default guest credentials")
	}
	return warnings, nil
}

// Validate checks value ranges after Load
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be 1-65535, got %d", c.Port))
	}
	if _, ok := BackendEnvVars[c.StoreBackend]; !ok {
		errs = append(errs, fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}
	if c.AutosaveInterval <= 0 {
		errs = append(errs, errors.New("AUTOSAVE_INTERVAL must be positive"))
	}
	if c.PassiveTickInterval < 0 {
		errs = append(errs, errors.New("PASSIVE_TICK_INTERVAL must not be negative"))
	}
	if c.SessionCacheSize <= 0 {
		errs = append(errs, errors.New("SESSION_CACHE_SIZE must be positive"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.EventMaxRetries < 0 {
		errs = append(errs, errors.New("EVENT_MAX_RETRIES must not be negative"))
	}
	if c.DBMaxConns <= 0 {
		errs = append(errs, errors.New("DB_MAX_CONNS must be positive"))
	}
	if c.RedisDB < 0 {
		errs = append(errs, errors.New("REDIS_DB must not be negative"))
	}
	if c.WorkerCount <= 0 {
		errs = append(errs, errors.New("WORKER_COUNT must be positive"))
	}
	return errors.Join(errs...)
}
