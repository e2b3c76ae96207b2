package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	apperrors "pokeproxy/internal/common/errors"
	"pokeproxy/internal/common/logging"
	"pokeproxy/internal/pokemon"
	"pokeproxy/internal/stats"
)

// Stream handler

// HandleStream receives one binary Pokemon record, validates its HMAC
// signature, matches it against the routing rules and proxies it as
// JSON to the matched destination.
// @Summary Proxy one Pokemon record
// @Description Validates the HMAC-SHA256 signature over the raw body, decodes the binary Pokemon record, matches it against the routing rules in order and forwards the record as snake_case JSON to the first matching destination. The downstream response is relayed back verbatim. Returns {"status": "no_match"} when no rule matches.
// @Tags stream
// @Accept octet-stream
// @Produce json
// @Param X-Grd-Signature header string true "HMAC-SHA256 signature of the request body"
// @Param payload body string true "Binary Pokemon record"
// @Success 200 {string} string "Proxied downstream response, or no_match status"
// @Failure 400 {object} map[string]string "Empty body, undecodable record or missing name"
// @Failure 401 {object} map[string]string "Missing or invalid signature"
// @Failure 413 {object} map[string]string "Request body too large"
// @Failure 500 {object} map[string]string "Proxy not fully initialized"
// @Failure 502 {object} map[string]string "Failed to connect to downstream service"
// @Failure 504 {object} map[string]string "Downstream service timeout"
// @Router /stream [post]
func (h *Handlers) HandleStream(w http.ResponseWriter, r *http.Request) {
	maxBody := h.config.MaxBodyBytes()

	// Reject oversized requests before reading when the length is known
	if r.ContentLength > maxBody {
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}

	provided := r.Header.Get(h.config.SignatureHeader)
	if provided == "" {
		writeError(w, http.StatusUnauthorized, "Missing "+h.config.SignatureHeader+" header")
		return
	}

	if h.verifier == nil {
		h.logger.Error("HMAC secret not configured", nil)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Read at most one byte past the limit so chunked bodies with no
	// Content-Length still get the size check
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody+1))
	if err != nil {
		h.logger.Warn("Failed to read request body", logging.Err(err))
		writeError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if int64(len(body)) > maxBody {
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}

	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, "Empty request body")
		return
	}

	if !h.verifier.Verify(body, provided) {
		writeError(w, http.StatusUnauthorized, "Invalid signature")
		return
	}

	rec, err := pokemon.Unmarshal(body)
	if err != nil {
		h.logger.Warn("Invalid protobuf data", logging.Err(err))
		writeError(w, http.StatusBadRequest, "Failed to parse protobuf")
		return
	}

	if rec.Name == "" {
		h.logger.Warn("Pokemon missing required field: name")
		writeError(w, http.StatusBadRequest, "Pokemon missing name field")
		return
	}

	h.logger.Info("Received Pokemon",
		logging.String("name", rec.Name),
		logging.Uint64("number", rec.Number),
	)

	if h.engine == nil {
		h.logger.Error("No routing config loaded", nil)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	matched := h.engine.Match(rec)
	if matched == nil {
		h.logger.Warn("No rule matched", logging.String("name", rec.Name))
		h.collector.Record(stats.DestinationUnmatched, true, len(body), 0, 0)
		writeJSON(w, http.StatusOK, map[string]string{"status": "no_match"})
		return
	}

	h.logger.Info("Matched rule",
		logging.String("reason", matched.Rule.Reason),
		logging.String("destination", matched.Rule.URL),
	)

	if h.forwarder == nil {
		h.logger.Error("HTTP client not initialized", nil)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		h.logger.Error("Failed to encode record", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Forward and always record stats, success or not
	start := time.Now()
	result, err := h.forwarder.Forward(r.Context(), matched.Rule.URL, matched.Rule.Reason, payload, r.Header)
	elapsedMs := float64(time.Since(start)) / float64(time.Millisecond)

	success := err == nil && result.Status < 400
	h.collector.Record(matched.Rule.URL, success, len(body), len(payload), elapsedMs)

	if err != nil {
		h.logger.Error("Forward failed", err, logging.String("destination", matched.Rule.URL))
		writeError(w, apperrors.HTTPStatus(err), forwardErrorMessage(err))
		return
	}

	for key, values := range result.Headers {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.WriteHeader(result.Status)
	if _, err := w.Write(result.Body); err != nil {
		h.logger.Warn("Failed to write response", logging.Err(err))
	}
}

// forwardErrorMessage maps a forward error to a client-facing message.
// Destination details stay in the logs.
func forwardErrorMessage(err error) string {
	switch apperrors.GetType(err) {
	case apperrors.ErrTypeTimeout:
		return "Downstream service timeout"
	case apperrors.ErrTypeConnection:
		return "Failed to connect to downstream service"
	default:
		return "Failed to forward request to downstream"
	}
}
