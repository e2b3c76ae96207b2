// Package signature provides HMAC-SHA256 authentication for proxied records.
//
// Every record submitted to the proxy must carry a signature computed
// over the exact raw request body with a shared secret. The verifier
// recomputes the MAC and compares it against the decoded header value
// in constant time.
//
// # Configuration
//
// The verifier takes the raw secret bytes plus a small Config selecting
// the signature header and wire encoding:
//
//	{
//	  "header": "X-Grd-Signature",
//	  "encoding": "hex"
//	}
//
// Both fields have defaults; "base64" is accepted as an alternative
// encoding for senders that prefer it.
//
// # Usage
//
//	verifier := signature.NewVerifier(secret, nil)
//
//	sig := r.Header.Get(verifier.Header())
//	if !verifier.Verify(body, sig) {
//	    http.Error(w, "Invalid signature", http.StatusUnauthorized)
//	    return
//	}
//
// Verify is pure: it never logs, never errors, and treats malformed or
// truncated signature values as a plain mismatch.
//
// # Security Considerations
//
//   - Always use HTTPS so signatures cannot be replayed off the wire
//   - Keep the secret in environment configuration, never hardcode it
//   - Comparison uses crypto/hmac.Equal (constant time)
package signature
