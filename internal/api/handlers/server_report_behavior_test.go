package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"irms.fjp.io/irms/ent/historyentry"
)

func TestGetOverviewReport(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "report_overview")
	router := newTestRouter(srv, "user-1", "Viewer")

	mustCreateResource(t, client, "res-1", "FJP001", "Alpha", "IT", "Available", monthsAgo(3), "Go")
	mustCreateResource(t, client, "res-2", "FJP002", "Beta", "IT", "Assigned", monthsAgo(0), "Java")
	mustCreateResource(t, client, "res-3", "FJP003", "Gamma", "QA", "On Hold", monthsAgo(2), "Go")

	w := doJSON(t, router, http.MethodGet, "/reports/overview", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var stats struct {
		Total           int     `json:"total"`
		Urgent          int     `json:"urgent"`
		Available       int     `json:"available"`
		Assigned        int     `json:"assigned"`
		AvgIdleDuration float64 `json:"avgIdleDuration"`
	}
	decodeItem(t, w, &stats)
	if stats.Total != 3 || stats.Urgent != 2 || stats.Available != 1 || stats.Assigned != 1 {
		t.Errorf("overview = %+v", stats)
	}
	// (3 + 0 + 2) / 3 rounds to 1.7
	if stats.AvgIdleDuration != 1.7 {
		t.Errorf("avgIdleDuration = %v, want 1.7", stats.AvgIdleDuration)
	}
}

func TestGetDepartmentReport_SortedByCount(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "report_department")
	router := newTestRouter(srv, "user-1", "Viewer")

	mustCreateResource(t, client, "res-1", "FJP001", "Alpha", "QA", "Available", monthsAgo(1))
	mustCreateResource(t, client, "res-2", "FJP002", "Beta", "QA", "Assigned", monthsAgo(0))
	mustCreateResource(t, client, "res-3", "FJP003", "Gamma", "HR", "Available", monthsAgo(4))

	w := doJSON(t, router, http.MethodGet, "/reports/department", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var stats []struct {
		Department string `json:"department"`
		Count      int    `json:"count"`
		Urgent     int    `json:"urgent"`
	}
	decodeItem(t, w, &stats)
	if len(stats) != 2 || stats[0].Department != "QA" || stats[0].Count != 2 {
		t.Errorf("department report = %+v", stats)
	}
	if stats[1].Department != "HR" || stats[1].Urgent != 1 {
		t.Errorf("HR stats = %+v", stats[1])
	}
}

func TestGetSkillsReport(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "report_skills")
	router := newTestRouter(srv, "user-1", "Viewer")

	mustCreateResource(t, client, "res-1", "FJP001", "Alpha", "IT", "Available", monthsAgo(1), "Go", "SQL")
	mustCreateResource(t, client, "res-2", "FJP002", "Beta", "IT", "Available", monthsAgo(1), "Go")
	mustCreateResource(t, client, "res-3", "FJP003", "Gamma", "QA", "Available", monthsAgo(1), "SQL", "Go")

	w := doJSON(t, router, http.MethodGet, "/reports/skills", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var skills []struct {
		Skill string `json:"skill"`
		Count int    `json:"count"`
	}
	decodeItem(t, w, &skills)
	if len(skills) != 2 {
		t.Fatalf("skills = %+v, want 2 entries", skills)
	}
	if skills[0].Skill != "Go" || skills[0].Count != 3 {
		t.Errorf("top skill = %+v, want Go:3", skills[0])
	}
	if skills[1].Skill != "SQL" || skills[1].Count != 2 {
		t.Errorf("second skill = %+v, want SQL:2", skills[1])
	}
}

func TestGetTrendsReport(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "report_trends")
	router := newTestRouter(srv, "user-1", "Viewer")

	mustCreateResource(t, client, "res-1", "FJP001", "Alpha", "IT", "Available", monthsAgo(1))
	mustCreateResource(t, client, "res-2", "FJP002", "Beta", "IT", "Assigned", monthsAgo(1))

	w := doJSON(t, router, http.MethodGet, "/reports/trends", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var buckets []struct {
		Month    string `json:"month"`
		Total    int    `json:"total"`
		Assigned int    `json:"assigned"`
	}
	decodeItem(t, w, &buckets)
	if len(buckets) != 1 {
		t.Fatalf("buckets = %+v, want 1", buckets)
	}
	if buckets[0].Total != 2 || buckets[0].Assigned != 1 {
		t.Errorf("bucket = %+v", buckets[0])
	}
}

func TestExportReport_RecordsHistoryWithDownloadURL(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "report_export")
	router := newTestRouter(srv, "user-1", "Manager")

	w := doJSON(t, router, http.MethodPost, "/reports/export", map[string]string{
		"reportType": "overview",
		"format":     "xlsx",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool `json:"success"`
		Item    struct {
			DownloadURL string `json:"downloadUrl"`
		} `json:"item"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !strings.HasPrefix(body.Item.DownloadURL, "/exports/report-") || !strings.HasSuffix(body.Item.DownloadURL, ".xlsx") {
		t.Errorf("downloadUrl = %q", body.Item.DownloadURL)
	}

	entry, err := client.HistoryEntry.Query().Only(t.Context())
	if err != nil {
		t.Fatalf("query history: %v", err)
	}
	if entry.Action != historyentry.ActionEXPORT {
		t.Errorf("action = %q, want EXPORT", entry.Action)
	}
	if entry.Changes != "Exported overview report as xlsx" {
		t.Errorf("changes = %q", entry.Changes)
	}
	if entry.Metadata["format"] != "xlsx" {
		t.Errorf("metadata = %+v", entry.Metadata)
	}

	w = doJSON(t, router, http.MethodPost, "/reports/export", map[string]string{
		"reportType": "overview",
		"format":     "docx",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown format: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
