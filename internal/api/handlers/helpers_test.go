package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"irms.fjp.io/irms/ent"
	"irms.fjp.io/irms/ent/resource"
	entuser "irms.fjp.io/irms/ent/user"
	"irms.fjp.io/irms/internal/api/middleware"
	"irms.fjp.io/irms/internal/history"
	"irms.fjp.io/irms/internal/pkg/logger"
	"irms.fjp.io/irms/internal/service"
	"irms.fjp.io/irms/internal/storage"
	"irms.fjp.io/irms/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

func testJWTConfig() middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey: []byte("behavior-test-key-12345678901234567890"),
		Issuer:     "fjp-irms",
		ExpiresIn:  time.Hour,
	}
}

// newBehaviorServer opens an isolated database schema and builds a Server
// wired like production.
func newBehaviorServer(t *testing.T, schema string) (*Server, *ent.Client) {
	t.Helper()

	client := testutil.OpenEntPostgres(t, schema)
	srv := NewServer(ServerDeps{
		EntClient: client,
		JWTCfg:    testJWTConfig(),
		History:   history.NewRecorder(client),
		Reports:   service.NewReportService(client, 6),
		CVs:       storage.NewCVStore(t.TempDir(), 10),
	})
	return srv, client
}

// newTestRouter registers every route with the error middleware and a stub
// auth layer that injects the given identity.
func newTestRouter(srv *Server, userID, role string) *gin.Engine {
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("username", userID)
		c.Set("role", role)
		c.Request = c.Request.WithContext(
			middleware.SetUserContext(c.Request.Context(), userID, userID, role),
		)
		c.Next()
	})

	router.POST("/auth/login", srv.Login)
	router.POST("/auth/logout", srv.Logout)
	router.GET("/auth/me", srv.GetCurrentUser)
	router.PUT("/auth/password", srv.UpdatePassword)

	router.GET("/resources", srv.ListResources)
	router.POST("/resources", srv.CreateResource)
	router.GET("/resources/:id", srv.GetResource)
	router.PUT("/resources/:id", srv.UpdateResource)
	router.DELETE("/resources/:id", srv.DeleteResource)
	router.POST("/resources/:id/cv", srv.UploadCV)

	router.GET("/history", srv.ListHistory)
	router.GET("/history/resource/:id", srv.ListResourceHistory)

	router.GET("/reports/overview", srv.GetOverviewReport)
	router.GET("/reports/department", srv.GetDepartmentReport)
	router.GET("/reports/skills", srv.GetSkillsReport)
	router.GET("/reports/trends", srv.GetTrendsReport)
	router.POST("/reports/export", srv.ExportReport)

	router.GET("/users", srv.ListUsers)
	router.POST("/users", srv.CreateUser)
	router.GET("/users/:id", srv.GetUser)
	router.PUT("/users/:id", srv.UpdateUser)
	router.DELETE("/users/:id", srv.DeleteUser)
	router.PUT("/users/:id/toggle-status", srv.ToggleUserStatus)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeItem(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Item    json.RawMessage `json:"item"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v body=%s", err, w.Body.String())
	}
	if !envelope.Success {
		t.Fatalf("success = false, body=%s", w.Body.String())
	}
	if err := json.Unmarshal(envelope.Item, out); err != nil {
		t.Fatalf("decode item: %v", err)
	}
}

type listEnvelope struct {
	Success     bool            `json:"success"`
	Items       json.RawMessage `json:"items"`
	Total       int             `json:"total"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder, items interface{}) listEnvelope {
	t.Helper()

	var envelope listEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode list envelope: %v body=%s", err, w.Body.String())
	}
	if !envelope.Success {
		t.Fatalf("success = false, body=%s", w.Body.String())
	}
	if err := json.Unmarshal(envelope.Items, items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	return envelope
}

func mustCreateUser(t *testing.T, client *ent.Client, id, username, role string) *ent.User {
	t.Helper()

	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u, err := client.User.Create().
		SetID(id).
		SetUsername(username).
		SetEmail(username + "@fjp.example.com").
		SetPasswordHash(hash).
		SetRole(entuser.Role(role)).
		Save(t.Context())
	if err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func mustCreateResource(t *testing.T, client *ent.Client, id, code, name, dept, status string, idleFrom time.Time, skills ...string) *ent.Resource {
	t.Helper()

	months, urgent := service.DeriveIdle(idleFrom, time.Now())
	r, err := client.Resource.Create().
		SetID(id).
		SetEmployeeCode(code).
		SetName(name).
		SetEmail(strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@fjp.example.com").
		SetDepartment(resource.Department(dept)).
		SetJobTitle("Engineer").
		SetSkills(skills).
		SetExperience("3 years").
		SetRate(20).
		SetStatus(resource.Status(status)).
		SetIdleFrom(idleFrom).
		SetIdleDuration(months).
		SetIsUrgent(urgent).
		SetCreatedBy("seed").
		Save(t.Context())
	if err != nil {
		t.Fatalf("create resource %s: %v", code, err)
	}
	return r
}

func monthsAgo(n int) time.Time {
	return time.Now().UTC().AddDate(0, -n, 0)
}
