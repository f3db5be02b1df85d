package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"irms.fjp.io/irms/ent/historyentry"
)

func TestCreateResource_DerivesIdleFieldsAndRecordsHistory(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "resource_create")
	router := newTestRouter(srv, "user-1", "RA")

	w := doJSON(t, router, http.MethodPost, "/resources", map[string]interface{}{
		"employeeCode": "FJP001",
		"name":         "Nguyen Van A",
		"email":        "a.nguyen@fjp.example.com",
		"department":   "IT",
		"jobTitle":     "Backend Engineer",
		"skills":       []string{"Go", "SQL"},
		"experience":   "5 years",
		"rate":         25.5,
		"idleFrom":     monthsAgo(3).Format(time.RFC3339),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusCreated, w.Body.String())
	}

	var created APIResource
	decodeItem(t, w, &created)
	if created.IdleDuration != 3 || !created.IsUrgent {
		t.Errorf("derived fields = (%d, %v), want (3, true)", created.IdleDuration, created.IsUrgent)
	}
	if created.Status != "Available" {
		t.Errorf("default status = %q, want Available", created.Status)
	}
	if created.CreatedBy != "user-1" {
		t.Errorf("createdBy = %q, want user-1", created.CreatedBy)
	}

	entry, err := client.HistoryEntry.Query().Only(t.Context())
	if err != nil {
		t.Fatalf("query history: %v", err)
	}
	if entry.Action != historyentry.ActionCREATE || entry.ResourceID != created.ID {
		t.Errorf("history entry = %+v", entry)
	}
	if entry.Changes != "Created resource: Nguyen Van A (FJP001)" {
		t.Errorf("changes = %q", entry.Changes)
	}
}

func TestCreateResource_RejectsDuplicateEmployeeCode(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "resource_dup_code")
	router := newTestRouter(srv, "user-1", "Admin")
	mustCreateResource(t, client, "res-1", "FJP001", "First Person", "IT", "Available", monthsAgo(1))

	w := doJSON(t, router, http.MethodPost, "/resources", map[string]interface{}{
		"employeeCode": "FJP001",
		"name":         "Second Person",
		"email":        "second@fjp.example.com",
		"department":   "QA",
		"jobTitle":     "Tester",
		"skills":       []string{"Testing"},
		"experience":   "2 years",
		"idleFrom":     monthsAgo(1).Format(time.RFC3339),
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusConflict, w.Body.String())
	}

	count, err := client.Resource.Query().Count(t.Context())
	if err != nil {
		t.Fatalf("count resources: %v", err)
	}
	if count != 1 {
		t.Errorf("resource count = %d, want 1", count)
	}

	historyCount, err := client.HistoryEntry.Query().Count(t.Context())
	if err != nil {
		t.Fatalf("count history: %v", err)
	}
	if historyCount != 0 {
		t.Errorf("history count = %d, want 0 after rejected create", historyCount)
	}
}

func TestCreateResource_ValidationErrors(t *testing.T) {
	t.Parallel()

	srv, _ := newBehaviorServer(t, "resource_validation")
	router := newTestRouter(srv, "user-1", "Admin")

	w := doJSON(t, router, http.MethodPost, "/resources", map[string]interface{}{
		"employeeCode": "",
		"name":         "No Code",
		"email":        "bad-email",
		"department":   "Marketing",
		"jobTitle":     "X",
		"idleFrom":     monthsAgo(1).Format(time.RFC3339),
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}

	var body struct {
		Success bool `json:"success"`
		Errors  []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	fields := map[string]bool{}
	for _, fe := range body.Errors {
		fields[fe.Field] = true
	}
	for _, want := range []string{"employeeCode", "email", "department", "skills"} {
		if !fields[want] {
			t.Errorf("missing field error for %q: %+v", want, body.Errors)
		}
	}
}

func TestUpdateResource_StatusChangeRederivesAndLogsTransition(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "resource_update")
	router := newTestRouter(srv, "user-2", "Admin")
	r := mustCreateResource(t, client, "res-1", "FJP001", "Nguyen Van A", "IT", "Available", monthsAgo(4))

	newIdleFrom := monthsAgo(1)
	w := doJSON(t, router, http.MethodPut, "/resources/"+r.ID, map[string]interface{}{
		"status":   "Assigned",
		"idleFrom": newIdleFrom.Format(time.RFC3339),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var updated APIResource
	decodeItem(t, w, &updated)
	if updated.Status != "Assigned" {
		t.Errorf("status = %q, want Assigned", updated.Status)
	}
	if updated.IdleDuration != 1 || updated.IsUrgent {
		t.Errorf("derived fields = (%d, %v), want (1, false)", updated.IdleDuration, updated.IsUrgent)
	}
	if updated.UpdatedBy != "user-2" {
		t.Errorf("updatedBy = %q, want user-2", updated.UpdatedBy)
	}

	entry, err := client.HistoryEntry.Query().Only(t.Context())
	if err != nil {
		t.Fatalf("query history: %v", err)
	}
	if entry.Action != historyentry.ActionUPDATE {
		t.Errorf("action = %q, want UPDATE", entry.Action)
	}
	if entry.Changes != "Status: Available → Assigned" {
		t.Errorf("changes = %q", entry.Changes)
	}
}

func TestUpdateResource_PlainEditGetsGenericSummary(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "resource_update_plain")
	router := newTestRouter(srv, "user-2", "RA")
	r := mustCreateResource(t, client, "res-1", "FJP001", "Nguyen Van A", "IT", "Available", monthsAgo(4))

	w := doJSON(t, router, http.MethodPut, "/resources/"+r.ID, map[string]interface{}{
		"notes": "Available from next sprint",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	entry, err := client.HistoryEntry.Query().Only(t.Context())
	if err != nil {
		t.Fatalf("query history: %v", err)
	}
	if entry.Changes != "Updated resource details" {
		t.Errorf("changes = %q", entry.Changes)
	}

	// Derived fields recomputed even when idleFrom untouched.
	got, err := client.Resource.Get(t.Context(), r.ID)
	if err != nil {
		t.Fatalf("get resource: %v", err)
	}
	if got.IdleDuration != 4 || !got.IsUrgent {
		t.Errorf("derived fields = (%d, %v), want (4, true)", got.IdleDuration, got.IsUrgent)
	}
}

func TestUpdateResource_NotFound(t *testing.T) {
	t.Parallel()

	srv, _ := newBehaviorServer(t, "resource_update_missing")
	router := newTestRouter(srv, "user-1", "Admin")

	w := doJSON(t, router, http.MethodPut, "/resources/res-missing", map[string]interface{}{
		"notes": "x",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusNotFound, w.Body.String())
	}
}

func TestDeleteResource_HardDeletesAndKeepsHistorySnapshot(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "resource_delete")
	router := newTestRouter(srv, "user-1", "Admin")
	r := mustCreateResource(t, client, "res-1", "FJP001", "Nguyen Van A", "IT", "Available", monthsAgo(4))

	w := doJSON(t, router, http.MethodDelete, "/resources/"+r.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/resources/"+r.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: status = %d, want %d", w.Code, http.StatusNotFound)
	}

	entry, err := client.HistoryEntry.Query().Only(t.Context())
	if err != nil {
		t.Fatalf("query history: %v", err)
	}
	if entry.Action != historyentry.ActionDELETE {
		t.Errorf("action = %q, want DELETE", entry.Action)
	}
	// Entry keeps the dangling reference and name snapshot.
	if entry.ResourceID != r.ID || entry.ResourceName != "Nguyen Van A" {
		t.Errorf("snapshot = (%q, %q)", entry.ResourceID, entry.ResourceName)
	}
	if entry.Changes != "Deleted resource: Nguyen Van A (FJP001)" {
		t.Errorf("changes = %q", entry.Changes)
	}

	// Resource history endpoint still serves the trail.
	w = doJSON(t, router, http.MethodGet, "/history/resource/"+r.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("resource history: status = %d body=%s", w.Code, w.Body.String())
	}
	var items []APIHistoryEntry
	env := decodeList(t, w, &items)
	if env.Total != 1 || len(items) != 1 {
		t.Fatalf("resource history total = %d items = %d, want 1", env.Total, len(items))
	}
}

func TestListResources_FiltersAndPagination(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "resource_list")
	router := newTestRouter(srv, "user-1", "Viewer")

	mustCreateResource(t, client, "res-1", "FJP001", "Alpha IT", "IT", "Available", monthsAgo(3), "Go")
	mustCreateResource(t, client, "res-2", "FJP002", "Beta IT", "IT", "Assigned", monthsAgo(0), "Java")
	mustCreateResource(t, client, "res-3", "FJP003", "Gamma QA", "QA", "Available", monthsAgo(5), "Go", "SQL")

	var items []APIResource

	env := decodeList(t, doJSON(t, router, http.MethodGet, "/resources?department=IT", nil), &items)
	if env.Total != 2 {
		t.Errorf("department=IT total = %d, want 2", env.Total)
	}

	env = decodeList(t, doJSON(t, router, http.MethodGet, "/resources?department=IT&urgent=true", nil), &items)
	if env.Total != 1 || items[0].EmployeeCode != "FJP001" {
		t.Errorf("department=IT urgent=true = %+v (total %d)", items, env.Total)
	}

	env = decodeList(t, doJSON(t, router, http.MethodGet, "/resources?search=gamma", nil), &items)
	if env.Total != 1 || items[0].EmployeeCode != "FJP003" {
		t.Errorf("search=gamma = %+v (total %d)", items, env.Total)
	}

	env = decodeList(t, doJSON(t, router, http.MethodGet, "/resources?skill=Go", nil), &items)
	if env.Total != 2 {
		t.Errorf("skill=Go total = %d, want 2", env.Total)
	}

	env = decodeList(t, doJSON(t, router, http.MethodGet, "/resources?page=2&limit=2", nil), &items)
	if env.Total != 3 || env.TotalPages != 2 || env.CurrentPage != 2 || len(items) != 1 {
		t.Errorf("pagination: total=%d pages=%d current=%d len=%d", env.Total, env.TotalPages, env.CurrentPage, len(items))
	}

	w := doJSON(t, router, http.MethodGet, "/resources?department=Marketing", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown department: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestUploadCV_StoresFileAndRecordsHistory(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "resource_cv")
	router := newTestRouter(srv, "user-1", "RA")
	r := mustCreateResource(t, client, "res-1", "FJP001", "Nguyen Van A", "IT", "Available", monthsAgo(1))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("cv", "profile.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("pdf bytes")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/resources/"+r.ID+"/cv", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var updated APIResource
	decodeItem(t, w, &updated)
	if updated.CvPath == "" {
		t.Error("cvPath is empty after upload")
	}

	entry, err := client.HistoryEntry.Query().Only(t.Context())
	if err != nil {
		t.Fatalf("query history: %v", err)
	}
	if entry.Action != historyentry.ActionCV_UPLOAD {
		t.Errorf("action = %q, want CV_UPLOAD", entry.Action)
	}
	if entry.Changes != "Uploaded CV for Nguyen Van A" {
		t.Errorf("changes = %q", entry.Changes)
	}
}
