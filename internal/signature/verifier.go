package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// Verifier checks HMAC-SHA256 signatures computed over raw request bodies.
type Verifier struct {
	secret []byte
	config *Config
}

// NewVerifier creates a new signature verifier for the given shared secret.
// A nil config gets the defaults applied.
func NewVerifier(secret []byte, config *Config) *Verifier {
	if config == nil {
		config = &Config{}
	}
	config.SetDefaults()

	return &Verifier{
		secret: secret,
		config: config,
	}
}

// Header returns the name of the HTTP header the signature travels in.
func (v *Verifier) Header() string {
	return v.config.Header
}

// Verify reports whether provided is a valid signature over body.
//
// The provided value is decoded per the configured encoding; values
// that fail to decode or decode to the wrong width never match. The
// final comparison runs in constant time over the raw MAC bytes, so
// verification latency does not leak the position of the first
// mismatching byte.
func (v *Verifier) Verify(body []byte, provided string) bool {
	raw, err := v.decode(provided)
	if err != nil || len(raw) != sha256.Size {
		return false
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	expected := mac.Sum(nil)

	return hmac.Equal(raw, expected)
}

// Sign computes the signature for body in the configured encoding.
func (v *Verifier) Sign(body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	return v.encode(mac.Sum(nil))
}

func (v *Verifier) decode(s string) ([]byte, error) {
	switch v.config.Encoding {
	case EncodingBase64:
		return base64.StdEncoding.DecodeString(s)
	default:
		return hex.DecodeString(s)
	}
}

func (v *Verifier) encode(raw []byte) string {
	switch v.config.Encoding {
	case EncodingBase64:
		return base64.StdEncoding.EncodeToString(raw)
	default:
		return hex.EncodeToString(raw)
	}
}
