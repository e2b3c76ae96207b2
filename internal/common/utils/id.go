// Package utils provides small helper functions shared across the proxy.
//
// This package contains common utilities for ID generation used for
// request tracing and log correlation.
package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateRandomID generates a cryptographically secure random hex ID.
//
// Creates a random ID of the specified length using crypto/rand.
// The resulting string will contain hexadecimal characters (0-9, a-f).
// Each byte generates 2 hex characters, so length/2 bytes are generated;
// for odd lengths the result will be 1 character shorter.
func GenerateRandomID(length int) (string, error) {
	bytes := make([]byte, length/2)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// GenerateRequestID generates a unique request ID for tracing and correlation.
//
// Creates a request ID in the format: "req-{randomHex}-{timestamp}"
// where randomHex is a 16-character random hex string and timestamp
// is the current Unix timestamp.
//
// The request ID is designed to be:
//   - Unique across concurrent requests
//   - Sortable by creation time (timestamp suffix)
//   - Easily identifiable as a request ID (req- prefix)
func GenerateRequestID() (string, error) {
	id, err := GenerateRandomID(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return fmt.Sprintf("req-%s-%d", id, time.Now().Unix()), nil
}

// MustGenerateRequestID generates a request ID or panics on failure.
//
// Panics only if the system random number generator fails, which is
// treated as fatal.
func MustGenerateRequestID() string {
	id, err := GenerateRequestID()
	if err != nil {
		panic(fmt.Sprintf("failed to generate request ID: %v", err))
	}
	return id
}
