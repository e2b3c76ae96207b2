// Package proxy delivers transformed records to downstream services.
//
// The forwarder owns the outbound half of the proxy contract: it rewrites
// the inbound headers for safe relaying (dropping the signature and every
// hop-by-hop header), labels the request with the matched rule's reason,
// and reports downstream failures as typed errors so the caller can map
// them to gateway status codes.
package proxy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	apperrors "pokeproxy/internal/common/errors"
	commonhttp "pokeproxy/internal/common/http"
	"pokeproxy/internal/signature"
)

// ReasonHeader carries the matched rule's human-readable reason to the
// downstream service.
const ReasonHeader = "X-Grd-Reason"

// hopByHopHeaders are connection-scoped headers that must not cross a
// proxy boundary (RFC 7230 section 6.1). "Te" is the canonical form of
// "TE".
var hopByHopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// Result is the downstream response after header filtering. The body is
// fully read and the underlying connection returned to the pool before
// Forward returns.
type Result struct {
	Status  int
	Headers http.Header
	Body    []byte
}

// Forwarder posts JSON record payloads to downstream destinations over a
// shared, connection-pooled HTTP client. It is safe for concurrent use.
type Forwarder struct {
	client          *http.Client
	signatureHeader string
}

// NewForwarder creates a forwarder using the given pooled client. A nil
// client falls back to the default pooled client and an empty signature
// header name falls back to the standard one.
func NewForwarder(client *http.Client, signatureHeader string) *Forwarder {
	if client == nil {
		client = commonhttp.NewDefaultHTTPClient()
	}
	if signatureHeader == "" {
		signatureHeader = signature.DefaultHeader
	}
	return &Forwarder{client: client, signatureHeader: signatureHeader}
}

// Forward POSTs body to destination with the inbound headers rewritten
// for relaying and the rule's reason attached. Downstream HTTP error
// statuses are not errors; they come back in the Result for the caller
// to pass through. The returned error is a timeout or connection error
// classified for gateway status mapping.
func (f *Forwarder) Forward(ctx context.Context, destination, reason string, body []byte, inbound http.Header) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, destination, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.ConnectionError(fmt.Sprintf("building request for %s", destination), err)
	}
	req.Header = f.buildHeaders(inbound, reason)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(err, destination)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err, destination)
	}

	return &Result{
		Status:  resp.StatusCode,
		Headers: filterHeaders(resp.Header, []string{"Content-Length"}),
		Body:    respBody,
	}, nil
}

// buildHeaders copies the inbound headers minus the signature header,
// the hop-by-hop set, and the entity headers the forwarder rewrites,
// then attaches the reason and the JSON content type.
func (f *Forwarder) buildHeaders(inbound http.Header, reason string) http.Header {
	out := filterHeaders(inbound, []string{
		f.signatureHeader,
		"Host",
		"Content-Length",
		"Content-Type",
	})
	out.Set(ReasonHeader, reason)
	out.Set("Content-Type", "application/json")
	return out
}

// filterHeaders returns a copy of h without the hop-by-hop headers, any
// header named by a Connection header, and the extra names given.
func filterHeaders(h http.Header, extra []string) http.Header {
	skip := make(map[string]bool, len(hopByHopHeaders)+len(extra))
	for _, name := range hopByHopHeaders {
		skip[name] = true
	}
	for _, value := range h.Values("Connection") {
		for _, token := range strings.Split(value, ",") {
			if token = strings.TrimSpace(token); token != "" {
				skip[http.CanonicalHeaderKey(token)] = true
			}
		}
	}
	for _, name := range extra {
		skip[http.CanonicalHeaderKey(name)] = true
	}

	out := make(http.Header, len(h))
	for name, values := range h {
		if skip[http.CanonicalHeaderKey(name)] {
			continue
		}
		for _, v := range values {
			out.Add(name, v)
		}
	}
	return out
}

// classifyTransportError distinguishes deadline expiry from every other
// transport failure so timeouts map to 504 instead of 502.
func classifyTransportError(err error, destination string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return apperrors.TimeoutError(fmt.Sprintf("forward to %s", destination))
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.TimeoutError(fmt.Sprintf("forward to %s", destination))
	}
	return apperrors.ConnectionError(fmt.Sprintf("forwarding to %s", destination), err)
}
