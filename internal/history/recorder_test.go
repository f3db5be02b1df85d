package history

import (
	"context"
	"strings"
	"testing"

	"irms.fjp.io/irms/ent/historyentry"
	"irms.fjp.io/irms/internal/pkg/logger"
	"irms.fjp.io/irms/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestRecorderRecord_WritesEntry(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "history_recorder_record")
	rec := NewRecorder(client)
	ctx := context.Background()

	err := rec.RecordResourceAction(ctx, "user-1", historyentry.ActionCREATE,
		"res-1", "Nguyen Van A", "Created resource: Nguyen Van A (FJP001)")
	if err != nil {
		t.Fatalf("RecordResourceAction: %v", err)
	}

	entries, err := client.HistoryEntry.Query().All(ctx)
	if err != nil {
		t.Fatalf("query entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	e := entries[0]
	if !strings.HasPrefix(e.ID, "hist-") {
		t.Errorf("ID = %q, want hist- prefix", e.ID)
	}
	if e.ActorID != "user-1" || e.Action != historyentry.ActionCREATE {
		t.Errorf("entry = %+v", e)
	}
	if e.ResourceID != "res-1" || e.ResourceName != "Nguyen Van A" {
		t.Errorf("resource snapshot = (%q, %q)", e.ResourceID, e.ResourceName)
	}
	if e.Changes != "Created resource: Nguyen Van A (FJP001)" {
		t.Errorf("changes = %q", e.Changes)
	}
}

func TestRecorderRecordAuth_OmitsResourceFields(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "history_recorder_auth")
	rec := NewRecorder(client)
	ctx := context.Background()

	if err := rec.RecordAuth(ctx, "user-2", historyentry.ActionLOGIN); err != nil {
		t.Fatalf("RecordAuth: %v", err)
	}

	e, err := rec.client.HistoryEntry.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query entry: %v", err)
	}
	if e.ResourceID != "" || e.ResourceName != "" || e.Changes != "" {
		t.Errorf("auth entry carries resource fields: %+v", e)
	}
}

func TestRecorderRecordExport_CarriesMetadata(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "history_recorder_export")
	rec := NewRecorder(client)
	ctx := context.Background()

	err := rec.RecordExport(ctx, "user-3", "Exported overview report as xlsx",
		map[string]interface{}{"reportType": "overview", "format": "xlsx"})
	if err != nil {
		t.Fatalf("RecordExport: %v", err)
	}

	e, err := rec.client.HistoryEntry.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query entry: %v", err)
	}
	if e.Action != historyentry.ActionEXPORT {
		t.Errorf("action = %q, want EXPORT", e.Action)
	}
	if e.Metadata["format"] != "xlsx" {
		t.Errorf("metadata = %+v", e.Metadata)
	}
}
