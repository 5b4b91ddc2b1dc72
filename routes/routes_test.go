package routes

import (
	"context"
	"encoding/json"
	"hotelpro-backend/config"
	"hotelpro-backend/controllers"
	"hotelpro-backend/metrics"
	"hotelpro-backend/store"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:     "router-secret",
		JWTExpiry:     time.Hour,
		AdminEmail:    "admin@hotelpro.local",
		AdminPassword: "let-me-in",
		CORSOrigins:   []string{"http://localhost:5173"},
	}
	registry := prometheus.NewRegistry()
	s := store.New(store.WithObserver(metrics.NewRecorder(registry)))
	require.NoError(t, s.InitializeData(context.Background()))

	auth, err := controllers.NewAuth(cfg)
	require.NoError(t, err)
	return SetupRouter(cfg, controllers.NewHandler(s, auth, zap.NewNop()), registry, zap.NewNop())
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"admin@hotelpro.local","password":"let-me-in"}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Token
}

func TestHealthAndMetrics(t *testing.T) {
	r := newRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `hotelpro_store_commands_total{command="seed",result="ok"} 1`)
	assert.Contains(t, w.Body.String(), `hotelpro_store_records{collection="halls"} 5`)
}

func TestAPIRequiresToken(t *testing.T) {
	r := newRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/halls", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/halls", nil)
	req.Header.Set("Authorization", "Bearer "+login(t, r))
	w = serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Grand Ballroom")

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+login(t, r))
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSeededPackagesAreServed(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/event-packages", nil)
	req.Header.Set("Authorization", "Bearer "+login(t, r))
	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)

	var packages []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &packages))
	assert.Len(t, packages, 3)
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/events", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := serve(r, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/events", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w = serve(r, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
