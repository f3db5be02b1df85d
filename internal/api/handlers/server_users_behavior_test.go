package handlers

import (
	"net/http"
	"testing"
)

func TestCreateUser_ValidationAndConflict(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "users_create")
	router := newTestRouter(srv, "admin-1", "Admin")
	mustCreateUser(t, client, "user-1", "alice", "RA")

	w := doJSON(t, router, http.MethodPost, "/users", map[string]string{
		"username": "ab",
		"email":    "not-an-email",
		"password": "123",
		"role":     "Boss",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid input: status = %d, want %d body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/users", map[string]string{
		"username": "alice",
		"email":    "alice2@fjp.example.com",
		"password": "secret123",
		"role":     "Viewer",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate username: status = %d, want %d body=%s", w.Code, http.StatusConflict, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/users", map[string]string{
		"username": "carol",
		"email":    "carol@fjp.example.com",
		"password": "secret123",
		"role":     "Manager",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("valid create: status = %d body=%s", w.Code, w.Body.String())
	}

	var created APIUser
	decodeItem(t, w, &created)
	if created.Username != "carol" || created.Role != "Manager" || created.Status != "Active" {
		t.Errorf("created user = %+v", created)
	}
}

func TestCreateUser_DefaultsToViewerRole(t *testing.T) {
	t.Parallel()

	srv, _ := newBehaviorServer(t, "users_default_role")
	router := newTestRouter(srv, "admin-1", "Admin")

	w := doJSON(t, router, http.MethodPost, "/users", map[string]string{
		"username": "dave",
		"email":    "dave@fjp.example.com",
		"password": "secret123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var created APIUser
	decodeItem(t, w, &created)
	if created.Role != "Viewer" {
		t.Errorf("default role = %q, want Viewer", created.Role)
	}
}

func TestUpdateUser_ChangesRoleAndRejectsBadEmail(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "users_update")
	router := newTestRouter(srv, "admin-1", "Admin")
	u := mustCreateUser(t, client, "user-1", "alice", "Viewer")

	w := doJSON(t, router, http.MethodPut, "/users/"+u.ID, map[string]string{
		"role": "RA",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var updated APIUser
	decodeItem(t, w, &updated)
	if updated.Role != "RA" {
		t.Errorf("role = %q, want RA", updated.Role)
	}

	w = doJSON(t, router, http.MethodPut, "/users/"+u.ID, map[string]string{
		"email": "broken",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad email: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestDeleteUser_RejectsSelfDeletion(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "users_delete_self")
	router := newTestRouter(srv, "admin-1", "Admin")
	mustCreateUser(t, client, "admin-1", "admin", "Admin")
	other := mustCreateUser(t, client, "user-2", "bob", "Viewer")

	w := doJSON(t, router, http.MethodDelete, "/users/admin-1", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("self delete: status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	w = doJSON(t, router, http.MethodDelete, "/users/"+other.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete other: status = %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/users/"+other.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get deleted: status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestToggleUserStatus(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "users_toggle")
	router := newTestRouter(srv, "admin-1", "Admin")
	u := mustCreateUser(t, client, "user-1", "alice", "Viewer")

	w := doJSON(t, router, http.MethodPut, "/users/"+u.ID+"/toggle-status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var toggled APIUser
	decodeItem(t, w, &toggled)
	if toggled.Status != "Inactive" {
		t.Errorf("status = %q, want Inactive", toggled.Status)
	}

	w = doJSON(t, router, http.MethodPut, "/users/"+u.ID+"/toggle-status", nil)
	decodeItem(t, w, &toggled)
	if toggled.Status != "Active" {
		t.Errorf("status after second toggle = %q, want Active", toggled.Status)
	}

	w = doJSON(t, router, http.MethodPut, "/users/admin-1/toggle-status", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("self toggle: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestListUsers_RoleFilter(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "users_list")
	router := newTestRouter(srv, "admin-1", "Admin")
	mustCreateUser(t, client, "user-1", "alice", "RA")
	mustCreateUser(t, client, "user-2", "bob", "Viewer")
	mustCreateUser(t, client, "user-3", "carol", "RA")

	var items []APIUser
	env := decodeList(t, doJSON(t, router, http.MethodGet, "/users?role=RA", nil), &items)
	if env.Total != 2 {
		t.Errorf("role=RA total = %d, want 2", env.Total)
	}

	w := doJSON(t, router, http.MethodGet, "/users?role=Boss", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown role: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
