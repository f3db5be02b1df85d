package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"irms.fjp.io/irms/ent"
	"irms.fjp.io/irms/ent/historyentry"
)

func mustRecordEntry(t *testing.T, client *ent.Client, id, actorID string, action historyentry.Action, resourceID, changes string) {
	t.Helper()

	create := client.HistoryEntry.Create().
		SetID(id).
		SetActorID(actorID).
		SetAction(action)
	if resourceID != "" {
		create = create.SetResourceID(resourceID).SetResourceName("Some Resource")
	}
	if changes != "" {
		create = create.SetChanges(changes)
	}
	if _, err := create.Save(t.Context()); err != nil {
		t.Fatalf("create history entry %s: %v", id, err)
	}
}

func TestListHistory_FiltersByActionAndActor(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "history_list_filters")
	router := newTestRouter(srv, "user-1", "Admin")

	mustCreateUser(t, client, "user-1", "alice", "Admin")
	mustCreateUser(t, client, "user-2", "bob", "RA")
	mustRecordEntry(t, client, "h-1", "user-1", historyentry.ActionCREATE, "res-1", "Created resource: X (C1)")
	mustRecordEntry(t, client, "h-2", "user-2", historyentry.ActionUPDATE, "res-1", "Updated resource details")
	mustRecordEntry(t, client, "h-3", "user-2", historyentry.ActionLOGIN, "", "")

	var items []APIHistoryEntry

	env := decodeList(t, doJSON(t, router, http.MethodGet, "/history", nil), &items)
	if env.Total != 3 {
		t.Errorf("unfiltered total = %d, want 3", env.Total)
	}

	env = decodeList(t, doJSON(t, router, http.MethodGet, "/history?action=LOGIN", nil), &items)
	if env.Total != 1 || items[0].ID != "h-3" {
		t.Errorf("action=LOGIN items = %+v (total %d)", items, env.Total)
	}

	env = decodeList(t, doJSON(t, router, http.MethodGet, "/history?userId=user-2", nil), &items)
	if env.Total != 2 {
		t.Errorf("userId=user-2 total = %d, want 2", env.Total)
	}
	for _, it := range items {
		if it.ActorName != "bob" {
			t.Errorf("actorName = %q, want bob", it.ActorName)
		}
	}

	w := doJSON(t, router, http.MethodGet, "/history?action=NOPE", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown action: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestListHistory_DateRangeAndOrdering(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "history_list_dates")
	router := newTestRouter(srv, "user-1", "Admin")
	mustCreateUser(t, client, "user-1", "alice", "Admin")

	old := time.Now().UTC().AddDate(0, 0, -10)
	if _, err := client.HistoryEntry.Create().
		SetID("h-old").
		SetActorID("user-1").
		SetAction(historyentry.ActionCREATE).
		SetCreatedAt(old).
		Save(t.Context()); err != nil {
		t.Fatalf("create old entry: %v", err)
	}
	mustRecordEntry(t, client, "h-new", "user-1", historyentry.ActionUPDATE, "res-1", "Updated resource details")

	var items []APIHistoryEntry

	cutoff := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	env := decodeList(t, doJSON(t, router, http.MethodGet, "/history?startDate="+cutoff, nil), &items)
	if env.Total != 1 || items[0].ID != "h-new" {
		t.Errorf("startDate filter items = %+v (total %d)", items, env.Total)
	}

	env = decodeList(t, doJSON(t, router, http.MethodGet, "/history?endDate="+cutoff, nil), &items)
	if env.Total != 1 || items[0].ID != "h-old" {
		t.Errorf("endDate filter items = %+v (total %d)", items, env.Total)
	}

	// Newest first.
	env = decodeList(t, doJSON(t, router, http.MethodGet, "/history", nil), &items)
	if len(items) != 2 || items[0].ID != "h-new" {
		t.Errorf("ordering items = %+v", items)
	}

	w := doJSON(t, router, http.MethodGet, "/history?startDate=yesterday", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad startDate: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestListHistory_UnknownActorKeepsEntry(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "history_orphan_actor")
	router := newTestRouter(srv, "user-1", "Admin")

	mustRecordEntry(t, client, "h-1", "user-gone", historyentry.ActionDELETE, "res-gone", "Deleted resource: X (C1)")

	var items []APIHistoryEntry
	env := decodeList(t, doJSON(t, router, http.MethodGet, "/history", nil), &items)
	if env.Total != 1 {
		t.Fatalf("total = %d, want 1", env.Total)
	}
	if items[0].ActorName != "" || items[0].ActorID != "user-gone" {
		t.Errorf("orphan actor item = %+v", items[0])
	}
}

func TestListResourceHistory_Pagination(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorServer(t, "history_resource_paging")
	router := newTestRouter(srv, "user-1", "Viewer")
	mustCreateUser(t, client, "user-1", "alice", "Viewer")

	for i := 0; i < 25; i++ {
		mustRecordEntry(t, client, fmt.Sprintf("h-%02d", i), "user-1", historyentry.ActionUPDATE, "res-1", "Updated resource details")
	}
	mustRecordEntry(t, client, "h-other", "user-1", historyentry.ActionUPDATE, "res-2", "Updated resource details")

	var items []APIHistoryEntry
	env := decodeList(t, doJSON(t, router, http.MethodGet, "/history/resource/res-1", nil), &items)
	if env.Total != 25 || len(items) != 20 || env.TotalPages != 2 {
		t.Errorf("default page: total=%d len=%d pages=%d", env.Total, len(items), env.TotalPages)
	}

	env = decodeList(t, doJSON(t, router, http.MethodGet, "/history/resource/res-1?page=2", nil), &items)
	if len(items) != 5 || env.CurrentPage != 2 {
		t.Errorf("page 2: len=%d current=%d", len(items), env.CurrentPage)
	}
}
