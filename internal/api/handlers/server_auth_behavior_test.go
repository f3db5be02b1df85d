package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	entuser "irms.fjp.io/irms/ent/user"

	"irms.fjp.io/irms/ent/historyentry"
)

func TestLogin_SuccessIssuesTokenAndRecordsHistory(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "auth_login")
	router := newTestRouter(srv, "", "")
	u := mustCreateUser(t, client, "user-1", "alice", "Admin")

	w := doJSON(t, router, http.MethodPost, "/auth/login", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var body struct {
		Success bool    `json:"success"`
		Token   string  `json:"token"`
		User    APIUser `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success || body.Token == "" {
		t.Fatalf("login body = %s", w.Body.String())
	}
	if body.User.Username != "alice" || body.User.Role != "Admin" {
		t.Errorf("user = %+v", body.User)
	}

	claims, err := testJWTConfig().ValidateToken(body.Token)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if claims.UserID != u.ID || claims.Role != "Admin" {
		t.Errorf("claims = %+v", claims)
	}

	refreshed, err := client.User.Get(t.Context(), u.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if refreshed.LastLoginAt == nil {
		t.Error("last_login_at not set")
	}

	entry, err := client.HistoryEntry.Query().Only(t.Context())
	if err != nil {
		t.Fatalf("query history: %v", err)
	}
	if entry.Action != historyentry.ActionLOGIN || entry.ActorID != u.ID {
		t.Errorf("history entry = %+v", entry)
	}
}

func TestLogin_RejectsBadPasswordAndInactiveAccount(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "auth_login_reject")
	router := newTestRouter(srv, "", "")
	mustCreateUser(t, client, "user-1", "alice", "Admin")
	inactive := mustCreateUser(t, client, "user-2", "bob", "Viewer")
	if err := inactive.Update().SetStatus(entuser.StatusInactive).Exec(t.Context()); err != nil {
		t.Fatalf("deactivate user: %v", err)
	}

	w := doJSON(t, router, http.MethodPost, "/auth/login", map[string]string{
		"username": "alice",
		"password": "wrong-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad password: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	w = doJSON(t, router, http.MethodPost, "/auth/login", map[string]string{
		"username": "bob",
		"password": "secret123",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("inactive account: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	count, err := client.HistoryEntry.Query().Count(t.Context())
	if err != nil {
		t.Fatalf("count history: %v", err)
	}
	if count != 0 {
		t.Errorf("failed logins wrote %d history entries, want 0", count)
	}
}

func TestLogout_RecordsHistory(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "auth_logout")
	router := newTestRouter(srv, "user-1", "Viewer")

	w := doJSON(t, router, http.MethodPost, "/auth/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	entry, err := client.HistoryEntry.Query().Only(t.Context())
	if err != nil {
		t.Fatalf("query history: %v", err)
	}
	if entry.Action != historyentry.ActionLOGOUT || entry.ActorID != "user-1" {
		t.Errorf("history entry = %+v", entry)
	}
}

func TestGetCurrentUser(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "auth_me")
	mustCreateUser(t, client, "user-1", "alice", "Manager")
	router := newTestRouter(srv, "user-1", "Manager")

	w := doJSON(t, router, http.MethodGet, "/auth/me", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var me APIUser
	decodeItem(t, w, &me)
	if me.ID != "user-1" || me.Role != "Manager" {
		t.Errorf("me = %+v", me)
	}
}

func TestUpdatePassword_Flow(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "auth_password")
	mustCreateUser(t, client, "user-1", "alice", "Admin")
	router := newTestRouter(srv, "user-1", "Admin")

	w := doJSON(t, router, http.MethodPut, "/auth/password", map[string]string{
		"currentPassword": "wrong",
		"newPassword":     "newsecret",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong current password: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	w = doJSON(t, router, http.MethodPut, "/auth/password", map[string]string{
		"currentPassword": "secret123",
		"newPassword":     "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("short new password: status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	w = doJSON(t, router, http.MethodPut, "/auth/password", map[string]string{
		"currentPassword": "secret123",
		"newPassword":     "newsecret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("password change: status = %d body=%s", w.Code, w.Body.String())
	}

	// Old password no longer logs in, new one does.
	w = doJSON(t, router, http.MethodPost, "/auth/login", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("login with old password: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	w = doJSON(t, router, http.MethodPost, "/auth/login", map[string]string{
		"username": "alice",
		"password": "newsecret",
	})
	if w.Code != http.StatusOK {
		t.Errorf("login with new password: status = %d body=%s", w.Code, w.Body.String())
	}
}
