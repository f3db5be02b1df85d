// Package history implements the append-only change log.
//
// History entries are immutable audit records. They are never updated or
// deleted, and they outlive the resources they reference.
package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"irms.fjp.io/irms/ent"
	"irms.fjp.io/irms/ent/historyentry"
	"irms.fjp.io/irms/internal/pkg/logger"
)

// Recorder appends entries to the history log.
type Recorder struct {
	client *ent.Client
}

// NewRecorder creates a new history Recorder.
func NewRecorder(client *ent.Client) *Recorder {
	return &Recorder{client: client}
}

// Entry carries everything one history row records. ResourceID and
// ResourceName snapshot the subject at write time; the resource itself may
// be deleted later.
type Entry struct {
	ActorID      string
	Action       historyentry.Action
	ResourceID   string
	ResourceName string
	Changes      string
	Metadata     map[string]interface{}
}

// Record appends one entry. Failures are logged and returned; callers that
// treat history as best-effort may ignore the error.
func (r *Recorder) Record(ctx context.Context, e Entry) error {
	create := r.client.HistoryEntry.Create().
		SetID(generateEntryID()).
		SetActorID(e.ActorID).
		SetAction(e.Action)

	if e.ResourceID != "" {
		create = create.SetResourceID(e.ResourceID)
	}
	if e.ResourceName != "" {
		create = create.SetResourceName(e.ResourceName)
	}
	if e.Changes != "" {
		create = create.SetChanges(e.Changes)
	}
	if len(e.Metadata) > 0 {
		create = create.SetMetadata(e.Metadata)
	}

	if _, err := create.Save(ctx); err != nil {
		logger.Error("Failed to write history entry",
			zap.String("action", string(e.Action)),
			zap.String("actor_id", e.ActorID),
			zap.String("resource_id", e.ResourceID),
			zap.Error(err),
		)
		return fmt.Errorf("write history entry: %w", err)
	}
	return nil
}

// RecordResourceAction appends an entry about a resource mutation.
func (r *Recorder) RecordResourceAction(ctx context.Context, actorID string, action historyentry.Action, resourceID, resourceName, changes string) error {
	return r.Record(ctx, Entry{
		ActorID:      actorID,
		Action:       action,
		ResourceID:   resourceID,
		ResourceName: resourceName,
		Changes:      changes,
	})
}

// RecordAuth appends a login or logout entry.
func (r *Recorder) RecordAuth(ctx context.Context, actorID string, action historyentry.Action) error {
	return r.Record(ctx, Entry{ActorID: actorID, Action: action})
}

// RecordExport appends a report export entry.
func (r *Recorder) RecordExport(ctx context.Context, actorID, changes string, metadata map[string]interface{}) error {
	return r.Record(ctx, Entry{
		ActorID:  actorID,
		Action:   historyentry.ActionEXPORT,
		Changes:  changes,
		Metadata: metadata,
	})
}

func generateEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("hist-%s", uuid.New().String())
	}
	return fmt.Sprintf("hist-%s", id.String())
}
