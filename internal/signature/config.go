package signature

// Supported signature encodings.
const (
	EncodingHex    = "hex"
	EncodingBase64 = "base64"
)

// DefaultHeader is the HTTP header carrying the signature.
const DefaultHeader = "X-Grd-Signature"

// Config represents the signature verification configuration
type Config struct {
	// Header is the HTTP header containing the signature
	Header string `json:"header"`

	// Encoding specifies how the signature is encoded
	// Options: "hex" (default), "base64"
	Encoding string `json:"encoding"`
}

// SetDefaults applies default values to the configuration
func (c *Config) SetDefaults() {
	if c.Header == "" {
		c.Header = DefaultHeader
	}

	if c.Encoding == "" {
		c.Encoding = EncodingHex
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Header == "" {
		return NewValidationError("header is required")
	}

	switch c.Encoding {
	case EncodingHex, EncodingBase64:
		// Valid
	default:
		return NewValidationError("unsupported encoding: %s", c.Encoding)
	}

	return nil
}
