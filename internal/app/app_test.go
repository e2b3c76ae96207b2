package app

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "pokeproxy/docs"
	"pokeproxy/internal/config"
	"pokeproxy/internal/signature"
	"pokeproxy/internal/testutil"
)

// testSecret is "stream-test-secret" in base64.
const testSecret = "c3RyZWFtLXRlc3Qtc2VjcmV0"

func writeRules(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:              "8080",
		Secret:            testSecret,
		SignatureHeader:   "X-Grd-Signature",
		SignatureEncoding: "hex",
		RulesPath: writeRules(t, `{
		  "rules": [
		    {"url": "http://legends.internal:9000/ingest", "reason": "legendary pokemon", "match": ["legendary == true"]}
		  ]
		}`),
		MaxBodySize:       "4096",
		ForwardTimeout:    "5s",
		StatsMaxEndpoints: "100",
	}
}

func TestNew_WiresComponents(t *testing.T) {
	app, err := New(testConfig(t))
	require.NoError(t, err)
	defer app.Cleanup()

	assert.NotNil(t, app.Verifier)
	assert.NotNil(t, app.Collector)
	assert.NotNil(t, app.Forwarder)
	require.NotNil(t, app.Engine)
	assert.Equal(t, 1, app.Engine.Len())
}

func TestNew_StartupFailures(t *testing.T) {
	t.Run("secret not base64", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Secret = "not/base64!!"

		_, err := New(cfg)
		assert.Error(t, err)
	})

	t.Run("rules file missing", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.RulesPath = filepath.Join(t.TempDir(), "nope.json")

		_, err := New(cfg)
		assert.Error(t, err)
	})

	t.Run("ordering operator on string field", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.RulesPath = writeRules(t, `{
		  "rules": [{"url": "http://a", "reason": "r", "match": ["name > Mew"]}]
		}`)

		_, err := New(cfg)
		assert.Error(t, err, "bad predicates must abort startup, not surface at match time")
	})
}

// TestRoutes drives requests through the assembled router, so the mux
// wiring and both middlewares run exactly as in production.
func TestRoutes(t *testing.T) {
	app, err := New(testConfig(t))
	require.NoError(t, err)
	defer app.Cleanup()

	_, router := app.RunServer()

	do := func(method, path string, body []byte, header map[string]string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewReader(body))
		for k, v := range header {
			req.Header.Set(k, v)
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	t.Run("health", func(t *testing.T) {
		rr := do(http.MethodGet, "/health", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("stats starts empty", func(t *testing.T) {
		rr := do(http.MethodGet, "/stats", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{}`, rr.Body.String())
	})

	t.Run("stream rejects GET", func(t *testing.T) {
		rr := do(http.MethodGet, "/stream", nil, nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})

	t.Run("stream requires signature", func(t *testing.T) {
		rr := do(http.MethodPost, "/stream", []byte{0x08, 0x01}, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("signed record with no matching rule", func(t *testing.T) {
		secret, err := base64.StdEncoding.DecodeString(testSecret)
		require.NoError(t, err)
		verifier := signature.NewVerifier(secret, nil)

		wire := testutil.NewRecord().Wire()
		rr := do(http.MethodPost, "/stream", wire, map[string]string{
			"X-Grd-Signature": verifier.Sign(wire),
		})

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"no_match"}`, rr.Body.String())
	})

	t.Run("swagger ui", func(t *testing.T) {
		rr := do(http.MethodGet, "/swagger/index.html", nil, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
