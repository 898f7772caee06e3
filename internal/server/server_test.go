package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental/internal/config"
	"carrental/internal/handlers"
	"carrental/internal/security"
)

type noTokens struct{}

func (noTokens) ResolveToken(context.Context, string) (security.Identity, error) {
	return security.Identity{}, security.ErrInvalidToken
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.AppConfig{Environment: "test", AllowCORSOrigins: []string{"*"}}
	cfg.HTTP.Port = 8080
	public := security.NewPublicRoutes(config.DefaultPublicPaths)
	set := handlers.NewHandlerSet(zerolog.Nop(), "test", handlers.Services{}, public)

	return NewHTTPServer(cfg, zerolog.Nop(), set, noTokens{}, public).Handler()
}

func TestHealthIsPublicAndTagged(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "UP", body["status"])
}

func TestProtectedRouteNeedsToken(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer forged")
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "UNAUTHORIZED", body["status"])
}

func TestUnknownPublicPathIs404Envelope(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rentals/1/nothing", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["status"])
}

func TestNoAPIPrefix(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
