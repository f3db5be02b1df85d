package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"irms.fjp.io/irms/internal/api/handlers"
	"irms.fjp.io/irms/internal/api/middleware"
	"irms.fjp.io/irms/internal/config"
	"irms.fjp.io/irms/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

func testRouter(t *testing.T) (*gin.Engine, middleware.JWTConfig) {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			CORSOrigins: []string{"http://localhost:5173"},
		},
		Uploads: config.UploadsConfig{Dir: t.TempDir()},
	}
	jwtCfg := middleware.JWTConfig{
		SigningKey: []byte("router-test-key-123456789012345678901"),
		Issuer:     "fjp-irms",
		ExpiresIn:  time.Hour,
	}
	// No database behind the server: these tests only exercise routes that
	// are rejected by the auth layer before any handler runs.
	server := handlers.NewServer(handlers.ServerDeps{JWTCfg: jwtCfg})
	return newRouter(cfg, server, jwtCfg), jwtCfg
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router, _ := testRouter(t)

	for _, target := range []string{
		"/api/v1/resources",
		"/api/v1/history",
		"/api/v1/reports/overview",
		"/api/v1/users",
		"/api/v1/auth/me",
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want %d", target, w.Code, http.StatusUnauthorized)
		}
	}
}

func TestRouter_PublicRoutesSkipAuth(t *testing.T) {
	router, _ := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))
	if w.Code != http.StatusOK {
		t.Errorf("health live: status = %d, want %d", w.Code, http.StatusOK)
	}

	// Login is public but still validates its body.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("login without body: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestRouter_RoleGates(t *testing.T) {
	router, jwtCfg := testRouter(t)

	viewerToken, _, err := middleware.GenerateToken(jwtCfg, "user-1", "viewer", "Viewer")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	managerToken, _, err := middleware.GenerateToken(jwtCfg, "user-2", "manager", "Manager")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	tests := []struct {
		name   string
		method string
		target string
		token  string
		want   int
	}{
		{name: "viewer cannot create resources", method: http.MethodPost, target: "/api/v1/resources", token: viewerToken, want: http.StatusForbidden},
		{name: "viewer cannot read system history", method: http.MethodGet, target: "/api/v1/history", token: viewerToken, want: http.StatusForbidden},
		{name: "viewer cannot export", method: http.MethodPost, target: "/api/v1/reports/export", token: viewerToken, want: http.StatusForbidden},
		{name: "manager cannot delete resources", method: http.MethodDelete, target: "/api/v1/resources/res-1", token: managerToken, want: http.StatusForbidden},
		{name: "manager cannot manage users", method: http.MethodPost, target: "/api/v1/users", token: managerToken, want: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d body=%s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}
