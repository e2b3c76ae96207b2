// Package config provides configuration management for the pokeproxy
// application. It handles loading configuration from environment variables
// with sensible defaults and validates the configuration to ensure the
// proxy starts safely.
//
// Environment Variables:
//
// Application Settings:
//   - PORT: Server port (default: 8080)
//   - LOG_LEVEL: Logging level, consumed by the logging package (default: info)
//   - LOG_FILE: Optional log file path, consumed by the logging package
//
// Signature Verification:
//   - POKEPROXY_SECRET: Base64-encoded HMAC-SHA256 key (required)
//   - POKEPROXY_SIGNATURE_HEADER: Header carrying the signature (default: X-Grd-Signature)
//   - POKEPROXY_SIGNATURE_ENCODING: Signature encoding - "hex" or "base64" (default: hex)
//
// Routing:
//   - POKEPROXY_CONFIG: Path to the routing rules JSON file (required)
//
// Stream Handling:
//   - POKEPROXY_MAX_BODY_SIZE: Maximum accepted request body in bytes (default: 4096)
//   - POKEPROXY_FORWARD_TIMEOUT: End-to-end timeout for destination calls (default: 30s)
//
// Stats:
//   - POKEPROXY_STATS_MAX_ENDPOINTS: Destinations tracked before the least
//     recently updated entry is evicted (default: 1000)
//
// Example usage:
//
//	// Load configuration from environment
//	config := config.Load()
//
//	// Validate configuration
//	if err := config.Validate(); err != nil {
//		log.Fatalf("Invalid configuration: %v", err)
//	}
//
//	// Use configuration
//	server := &http.Server{
//		Addr: ":" + config.Port,
//	}
package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"time"

	"pokeproxy/internal/signature"
)

// Config holds all configuration values for the pokeproxy application.
// All string fields correspond to environment variables that can be set to
// override the default values.
//
// The configuration is loaded using the Load() function and should be
// validated using the Validate() method before use.
type Config struct {
	// Application settings
	Port string // Server port number

	// Signature verification
	Secret            string // Base64-encoded HMAC-SHA256 key (required)
	SignatureHeader   string // HTTP header carrying the signature
	SignatureEncoding string // Signature encoding: "hex" or "base64"

	// Routing
	RulesPath string // Path to the routing rules JSON file (required)

	// Stream handling
	MaxBodySize    string // Maximum accepted request body in bytes
	ForwardTimeout string // Destination call timeout (e.g. "30s", "1m")

	// Stats
	StatsMaxEndpoints string // Destinations tracked before LRU eviction
}

// Load creates a new Config instance with values loaded from environment variables.
// If an environment variable is not set, the corresponding default value is used.
//
// This function does not validate the configuration - call Validate() on the
// returned Config to ensure all required values are properly set and valid.
//
// Returns:
//   - *Config: A new configuration instance with values from environment variables
//
// Example:
//
//	config := config.Load()
//	if err := config.Validate(); err != nil {
//		log.Fatal("Configuration error:", err)
//	}
//
//	// Configuration is ready to use
//	fmt.Printf("Starting server on port %s\n", config.Port)
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		// Signature verification
		Secret:            getEnv("POKEPROXY_SECRET", ""),
		SignatureHeader:   getEnv("POKEPROXY_SIGNATURE_HEADER", signature.DefaultHeader),
		SignatureEncoding: getEnv("POKEPROXY_SIGNATURE_ENCODING", signature.EncodingHex),

		// Routing
		RulesPath: getEnv("POKEPROXY_CONFIG", ""),

		// Stream handling
		MaxBodySize:    getEnv("POKEPROXY_MAX_BODY_SIZE", "4096"),
		ForwardTimeout: getEnv("POKEPROXY_FORWARD_TIMEOUT", "30s"),

		// Stats
		StatsMaxEndpoints: getEnv("POKEPROXY_STATS_MAX_ENDPOINTS", "1000"),
	}
}

// getEnv retrieves an environment variable value or returns a default value if not set.
//
// Parameters:
//   - key: The environment variable name to look up
//   - defaultValue: The value to return if the environment variable is not set or empty
//
// Returns:
//   - string: The environment variable value or the default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Validate performs comprehensive validation on the configuration to ensure
// all required fields are present and all values are valid.
//
// This method checks:
//   - Required fields (POKEPROXY_SECRET, POKEPROXY_CONFIG)
//   - Field format validation (port, base64 secret, durations, sizes)
//   - Supported signature encodings
//
// The application should call this method after loading configuration and
// before starting to ensure safe operation. Validation failures abort
// startup; the proxy never serves with a partial configuration.
//
// Returns:
//   - error: A descriptive error if validation fails, nil if configuration is valid
//
// Example:
//
//	config := config.Load()
//	if err := config.Validate(); err != nil {
//		log.Fatalf("Configuration validation failed: %v", err)
//	}
//	// Configuration is safe to use
func (c *Config) Validate() error {
	// Validate required fields
	if c.Secret == "" {
		return fmt.Errorf("POKEPROXY_SECRET environment variable is required")
	}

	// The secret must decode before the verifier can be built
	if _, err := base64.StdEncoding.DecodeString(c.Secret); err != nil {
		return fmt.Errorf("POKEPROXY_SECRET must be valid base64: %v", err)
	}

	if c.RulesPath == "" {
		return fmt.Errorf("POKEPROXY_CONFIG environment variable is required")
	}

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a valid port number between 1 and 65535")
	}

	// Validate signature settings
	if c.SignatureHeader == "" {
		return fmt.Errorf("POKEPROXY_SIGNATURE_HEADER must not be empty")
	}

	switch c.SignatureEncoding {
	case signature.EncodingHex, signature.EncodingBase64:
		// Valid encodings
	default:
		return fmt.Errorf("POKEPROXY_SIGNATURE_ENCODING must be 'hex' or 'base64'")
	}

	// Validate stream handling limits
	if size, err := strconv.ParseInt(c.MaxBodySize, 10, 64); err != nil || size < 1 {
		return fmt.Errorf("POKEPROXY_MAX_BODY_SIZE must be a positive number of bytes")
	}

	if timeout, err := time.ParseDuration(c.ForwardTimeout); err != nil || timeout <= 0 {
		return fmt.Errorf("POKEPROXY_FORWARD_TIMEOUT must be a positive duration (e.g. '30s', '1m')")
	}

	// Validate stats capacity
	if limit, err := strconv.Atoi(c.StatsMaxEndpoints); err != nil || limit < 1 {
		return fmt.Errorf("POKEPROXY_STATS_MAX_ENDPOINTS must be a positive number")
	}

	return nil
}

// SecretBytes returns the decoded HMAC key.
//
// Returns:
//   - []byte: The raw key bytes decoded from the base64 secret
//   - error: The decode error for a malformed secret
func (c *Config) SecretBytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(c.Secret)
}

// SignatureConfig returns the signature verification settings in the form
// the signature package consumes.
func (c *Config) SignatureConfig() *signature.Config {
	return &signature.Config{
		Header:   c.SignatureHeader,
		Encoding: c.SignatureEncoding,
	}
}

// MaxBodyBytes returns the request body limit as a byte count.
// The value is trusted; Validate must have accepted the configuration first.
func (c *Config) MaxBodyBytes() int64 {
	size, _ := strconv.ParseInt(c.MaxBodySize, 10, 64)
	return size
}

// ForwardTimeoutDuration returns the destination call timeout as a Duration.
// The value is trusted; Validate must have accepted the configuration first.
func (c *Config) ForwardTimeoutDuration() time.Duration {
	timeout, _ := time.ParseDuration(c.ForwardTimeout)
	return timeout
}

// StatsCapacity returns the number of destinations tracked before eviction.
// The value is trusted; Validate must have accepted the configuration first.
func (c *Config) StatsCapacity() int {
	limit, _ := strconv.Atoi(c.StatsMaxEndpoints)
	return limit
}
